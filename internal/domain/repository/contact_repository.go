package repository

import (
	"context"

	"gatehouse/internal/domain/entity"
)

// ContactRepository defines the operations for contact form persistence.
// Submissions are write-only within the application; nothing reads them back.
type ContactRepository interface {
	// Create persists a new contact form submission.
	Create(ctx context.Context, contact *entity.Contact) error
}
