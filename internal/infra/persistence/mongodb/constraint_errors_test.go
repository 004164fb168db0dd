package mongodb

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/mongo"
)

func TestIsUniqueConstraintViolation(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{
			name: "nil error",
			err:  nil,
			want: false,
		},
		{
			name: "write exception with duplicate key code",
			err: mongo.WriteException{
				WriteErrors: mongo.WriteErrors{
					{Code: duplicateKeyCode, Message: "E11000 duplicate key error collection: login.users index: username_1"},
				},
			},
			want: true,
		},
		{
			name: "command error with duplicate key code",
			err:  mongo.CommandError{Code: duplicateKeyCode, Message: "duplicate key"},
			want: true,
		},
		{
			name: "unstructured duplicate key message",
			err:  errors.New("E11000 duplicate key error"),
			want: true,
		},
		{
			name: "unrelated write exception",
			err: mongo.WriteException{
				WriteErrors: mongo.WriteErrors{
					{Code: 121, Message: "Document failed validation"},
				},
			},
			want: false,
		},
		{
			name: "unrelated error",
			err:  errors.New("connection refused"),
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isUniqueConstraintViolation(tt.err))
		})
	}
}
