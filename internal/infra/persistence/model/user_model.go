// Package model contains the persistence representations of the domain
// entities, tagged for the document store and mapped back and forth at the
// repository boundary.
package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"gatehouse/internal/domain/entity"
)

// UserModel is the document stored in the "users" collection.
// Username and email carry unique indexes created at startup.
type UserModel struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Username  string             `bson:"username"`
	Email     string             `bson:"email"`
	Password  string             `bson:"password"` // bcrypt hash, never the plaintext
	CreatedAt time.Time          `bson:"created_at"`
}

// FromUserDomain maps a pure domain entity to its persistence model.
func FromUserDomain(user *entity.User) *UserModel {
	return &UserModel{
		Username:  user.Username,
		Email:     user.Email,
		Password:  user.PasswordHash,
		CreatedAt: user.CreatedAt,
	}
}

// ToUserDomain maps a persistence model back to a pure domain entity.
func (m *UserModel) ToUserDomain() *entity.User {
	return &entity.User{
		ID:           m.ID.Hex(),
		Username:     m.Username,
		Email:        m.Email,
		PasswordHash: m.Password,
		CreatedAt:    m.CreatedAt,
	}
}
