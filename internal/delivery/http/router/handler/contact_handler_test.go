package handler

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"gatehouse/internal/domain/entity"
	domainerrors "gatehouse/internal/domain/errors"
	"gatehouse/internal/usecase"
)

func TestContactHandler_Submit_RedirectsToRoot(t *testing.T) {
	e := newTestEcho()
	uc := &MockContactUsecase{}
	h := NewContactHandler(uc, newDiscardLogger())

	uc.On("Submit", mock.Anything, &usecase.SubmitContactInput{
		Name:    "Bob",
		Email:   "b@x.com",
		Number:  "555-0100",
		Subject: "Hello",
		Message: "hi",
	}).Return(&usecase.SubmitContactOutput{Contact: &entity.Contact{Name: "Bob"}}, nil)

	rec := serveForm(e, h.Submit, "/submitContactForm",
		"name=Bob&email=b%40x.com&number=555-0100&subject=Hello&message=hi")

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/", rec.Header().Get("Location"))
	uc.AssertExpectations(t)
}

// number and subject are optional; leaving them out must not fail.
func TestContactHandler_Submit_OptionalFieldsAbsent(t *testing.T) {
	e := newTestEcho()
	uc := &MockContactUsecase{}
	h := NewContactHandler(uc, newDiscardLogger())

	uc.On("Submit", mock.Anything, &usecase.SubmitContactInput{
		Name:    "Bob",
		Email:   "b@x.com",
		Message: "hi",
	}).Return(&usecase.SubmitContactOutput{Contact: &entity.Contact{Name: "Bob"}}, nil)

	rec := serveForm(e, h.Submit, "/submitContactForm", "name=Bob&email=b%40x.com&message=hi")

	assert.Equal(t, http.StatusFound, rec.Code)
}

func TestContactHandler_Submit_MissingMessage(t *testing.T) {
	e := newTestEcho()
	uc := &MockContactUsecase{}
	h := NewContactHandler(uc, newDiscardLogger())

	rec := serveForm(e, h.Submit, "/submitContactForm", "name=Bob&email=b%40x.com")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	uc.AssertNotCalled(t, "Submit", mock.Anything, mock.Anything)
}

func TestContactHandler_Submit_StoreFailure(t *testing.T) {
	e := newTestEcho()
	uc := &MockContactUsecase{}
	h := NewContactHandler(uc, newDiscardLogger())

	uc.On("Submit", mock.Anything, mock.AnythingOfType("*usecase.SubmitContactInput")).
		Return(nil, domainerrors.ErrContactSaveFailed.WrapMessage("insert failed"))

	rec := serveForm(e, h.Submit, "/submitContactForm", "name=Bob&email=b%40x.com&message=hi")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Error saving contact form data", rec.Body.String())
}
