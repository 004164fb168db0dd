package usecase

import (
	"context"

	"gatehouse/internal/domain/entity"
)

// SubmitContactInput defines the data accepted from the public contact form.
// Number and Subject are optional.
type SubmitContactInput struct {
	Name    string `json:"name" form:"name" validate:"required"`
	Email   string `json:"email" form:"email" validate:"required"`
	Number  string `json:"number" form:"number"`
	Subject string `json:"subject" form:"subject"`
	Message string `json:"message" form:"message" validate:"required"`
}

// SubmitContactOutput returns the stored submission.
type SubmitContactOutput struct {
	Contact *entity.Contact
}

// ContactUsecase defines the interface for contact form business operations.
type ContactUsecase interface {
	Submit(ctx context.Context, input *SubmitContactInput) (*SubmitContactOutput, error)
}
