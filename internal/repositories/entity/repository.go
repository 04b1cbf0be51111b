// Package entity persists finished characters
package entity

//go:generate mockgen -destination=mock/mock_store.go -package=entitymock github.com/KirkDiggler/paladin/internal/repositories/entity Store

import (
	"context"
	"strings"

	"github.com/KirkDiggler/paladin/internal/errors"
)

// MaxNameLength bounds entity names typed at the save prompt
const MaxNameLength = 15

// Store defines the interface for character persistence
type Store interface {
	// Save writes the record under the given name, replacing any earlier one
	// Returns errors.InvalidArgument for invalid names or a nil record
	// Returns errors.Internal for storage failures
	Save(ctx context.Context, input SaveInput) (*SaveOutput, error)

	// Load reads a record by name
	// Returns errors.InvalidArgument for invalid names
	// Returns errors.NotFound if nothing was saved under that name
	// Returns errors.Internal for storage or decoding failures
	Load(ctx context.Context, input LoadInput) (*LoadOutput, error)

	// Destination describes where a name would be written
	Destination(name string) string
}

// SaveInput defines the input for saving a record
type SaveInput struct {
	Name   string
	Record *Record
}

// SaveOutput defines the output for saving a record
type SaveOutput struct {
	Destination string
}

// LoadInput defines the input for loading a record
type LoadInput struct {
	Name string
}

// LoadOutput defines the output for loading a record
type LoadOutput struct {
	Record *Record
}

// ValidateName rejects names that are empty, too long or could escape the
// store's namespace
func ValidateName(name string) error {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("name", name, vb)
	if len([]rune(name)) > MaxNameLength {
		vb.Fieldf("name", "must be at most %d characters", MaxNameLength)
	}
	if strings.ContainsAny(name, `/\`) || strings.HasPrefix(name, ".") {
		vb.InvalidField("name", "must not contain path separators or start with a dot")
	}
	return vb.Build()
}
