package service

import (
	"context"

	"github.com/portfolio/backend/internal/model"
)

// ContactService defines the business logic for contact form submissions.
type ContactService interface {
	// Submit stores a validated submission and returns the id the store
	// assigned to it.
	Submit(ctx context.Context, msg *model.ContactSubmission) (string, error)
}
