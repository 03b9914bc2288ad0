// Package http wires handlers, middleware, and routes into a Gin engine.
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	appkb "helpdesk/internal/application/knowledge"
	apptk "helpdesk/internal/application/ticket"
	"helpdesk/internal/application/triage"
	appuser "helpdesk/internal/application/user"
	"helpdesk/internal/infrastructure/config"
	"helpdesk/internal/interfaces/http/handlers/assist"
	"helpdesk/internal/interfaces/http/handlers/knowledge"
	"helpdesk/internal/interfaces/http/handlers/ticket"
	"helpdesk/internal/interfaces/http/handlers/user"
	"helpdesk/internal/interfaces/http/middleware"
	"helpdesk/internal/shared/logger"
)

type Router struct {
	engine           *gin.Engine
	ticketHandler    *ticket.Handler
	assistHandler    *assist.Handler
	knowledgeHandler *knowledge.Handler
	userHandler      *user.Handler
}

func NewRouter(
	ticketService *apptk.Service,
	triageService *triage.Service,
	knowledgeService *appkb.Service,
	userService *appuser.Service,
	cfg *config.Config,
	log logger.Interface,
) *Router {
	if cfg.Server.Mode != "" {
		gin.SetMode(cfg.Server.Mode)
	}
	engine := gin.New()

	engine.Use(middleware.Logger(log))
	engine.Use(middleware.Recovery())
	engine.Use(middleware.CORS(cfg.Server.AllowedOrigins))

	return &Router{
		engine:           engine,
		ticketHandler:    ticket.NewHandler(ticketService),
		assistHandler:    assist.NewHandler(triageService),
		knowledgeHandler: knowledge.NewHandler(knowledgeService),
		userHandler:      user.NewHandler(userService),
	}
}

// SetupRoutes configures all HTTP routes.
func (r *Router) SetupRoutes() {
	r.engine.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.engine.Group("/api")
	{
		tickets := api.Group("/tickets")
		{
			tickets.GET("", r.ticketHandler.ListTickets)
			tickets.POST("", r.ticketHandler.CreateTicket)
			tickets.GET("/:id", r.ticketHandler.GetTicket)
			tickets.PATCH("/:id", r.ticketHandler.UpdateTicket)
			tickets.DELETE("/:id", r.ticketHandler.DeleteTicket)
		}

		ai := api.Group("/ai")
		{
			ai.POST("/respond", r.assistHandler.Respond)
			ai.POST("/classify", r.assistHandler.Classify)
		}

		kb := api.Group("/knowledge")
		{
			kb.GET("", r.knowledgeHandler.ListEntries)
			kb.GET("/search", r.knowledgeHandler.SearchEntries)
		}

		users := api.Group("/users")
		{
			users.POST("", r.userHandler.CreateUser)
			users.GET("/:id", r.userHandler.GetUser)
		}
	}
}

// GetEngine returns the Gin engine.
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}
