package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"gatehouse/internal/domain/entity"
)

// ContactModel is the document stored in the "contacts" collection.
// Number and subject are omitted from the document when empty.
type ContactModel struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Name      string             `bson:"name"`
	Email     string             `bson:"email"`
	Number    string             `bson:"number,omitempty"`
	Subject   string             `bson:"subject,omitempty"`
	Message   string             `bson:"message"`
	CreatedAt time.Time          `bson:"created_at"`
}

// FromContactDomain maps a pure domain entity to its persistence model.
func FromContactDomain(contact *entity.Contact) *ContactModel {
	return &ContactModel{
		Name:      contact.Name,
		Email:     contact.Email,
		Number:    contact.Number,
		Subject:   contact.Subject,
		Message:   contact.Message,
		CreatedAt: contact.CreatedAt,
	}
}

// ToContactDomain maps a persistence model back to a pure domain entity.
func (m *ContactModel) ToContactDomain() *entity.Contact {
	return &entity.Contact{
		ID:        m.ID.Hex(),
		Name:      m.Name,
		Email:     m.Email,
		Number:    m.Number,
		Subject:   m.Subject,
		Message:   m.Message,
		CreatedAt: m.CreatedAt,
	}
}
