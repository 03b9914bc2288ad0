package ticket

import (
	apptk "helpdesk/internal/application/ticket"
)

// CreateTicketRequest is the payload for POST /api/tickets. Every field is
// optional: missing values are substituted with defaults downstream, so
// intake never rejects a well-formed request.
type CreateTicketRequest struct {
	Subject     string `json:"subject"`
	Description string `json:"description"`
	Priority    string `json:"priority"`
	UserID      *uint  `json:"user_id"`
}

func (r *CreateTicketRequest) ToCommand() apptk.CreateTicketCommand {
	return apptk.CreateTicketCommand{
		Subject:     r.Subject,
		Description: r.Description,
		Priority:    r.Priority,
		UserID:      r.UserID,
	}
}

// UpdateTicketRequest is the payload for PATCH /api/tickets/:id. Absent
// fields are left untouched.
type UpdateTicketRequest struct {
	Subject     *string `json:"subject"`
	Description *string `json:"description"`
	Priority    *string `json:"priority" binding:"omitempty,oneof=low medium high urgent"`
	Status      *string `json:"status" binding:"omitempty,oneof=open in_progress resolved closed"`
}

func (r *UpdateTicketRequest) ToCommand() apptk.UpdateTicketCommand {
	return apptk.UpdateTicketCommand{
		Subject:     r.Subject,
		Description: r.Description,
		Priority:    r.Priority,
		Status:      r.Status,
	}
}
