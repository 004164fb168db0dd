package impl

import (
	"context"
	"log/slog"

	deliverycontext "gatehouse/internal/delivery/context"
	"gatehouse/internal/domain/entity"
	domainerrors "gatehouse/internal/domain/errors"
	"gatehouse/internal/domain/repository"
	"gatehouse/internal/usecase"
)

// contactService implements the ContactUsecase interface.
type contactService struct {
	contactRepo repository.ContactRepository
	logger      *slog.Logger
}

// NewContactService is the constructor for contactService.
func NewContactService(
	contactRepo repository.ContactRepository,
	logger *slog.Logger,
) usecase.ContactUsecase {
	return &contactService{
		contactRepo: contactRepo,
		logger:      logger,
	}
}

// Submit persists a contact form submission.
func (srv *contactService) Submit(ctx context.Context, input *usecase.SubmitContactInput) (*usecase.SubmitContactOutput, error) {
	logger := deliverycontext.GetLoggerOrDefault(ctx, srv.logger)

	newContact := &entity.Contact{
		Name:    input.Name,
		Email:   input.Email,
		Number:  input.Number,
		Subject: input.Subject,
		Message: input.Message,
	}

	if err := srv.contactRepo.Create(ctx, newContact); err != nil {
		logger.Error("Failed to save contact form data", "error", err)

		return nil, domainerrors.ErrContactSaveFailed.WrapMessage("failed to save contact form data")
	}

	logger.Info("Contact form data saved successfully", "contactID", newContact.ID)

	return &usecase.SubmitContactOutput{Contact: newContact}, nil
}
