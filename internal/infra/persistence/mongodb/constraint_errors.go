package mongodb

import (
	"strings"

	"go.mongodb.org/mongo-driver/mongo"
)

// duplicateKeyCode is the server error code for a unique index violation.
const duplicateKeyCode = 11000

// Helper functions for MongoDB error checking
func isUniqueConstraintViolation(err error) bool {
	if err == nil {
		return false
	}

	// Check for the driver's duplicate key classification
	if mongo.IsDuplicateKeyError(err) {
		return true
	}

	// Check error message for the duplicate key error code, for servers that
	// report the violation without a structured write error
	return strings.Contains(err.Error(), "E11000")
}
