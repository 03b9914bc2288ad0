// Package triage exposes classification and templated replies for ad-hoc
// queries, independent of storage.
package triage

import (
	"helpdesk/internal/domain/classification"
	"helpdesk/internal/shared/logger"
)

type Service struct {
	classifier *classification.Classifier
	logger     logger.Interface
}

func NewService(classifier *classification.Classifier, log logger.Interface) *Service {
	return &Service{
		classifier: classifier,
		logger:     log,
	}
}

// Classify returns the category for free text. Never fails.
func (s *Service) Classify(text string) string {
	return s.classifier.Classify(text)
}

// Respond classifies the query and renders the templated reply for that
// category. The classification is returned alongside the reply.
func (s *Service) Respond(query string) (response, category string) {
	category = s.classifier.Classify(query)
	response = classification.Respond(query, category)

	s.logger.Debug("query answered", "classification", category)
	return response, category
}
