package entity

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/KirkDiggler/paladin/internal/errors"
)

type fileStore struct {
	dir string
}

// FileConfig contains configuration for the file store
type FileConfig struct {
	Dir string
}

// Validate validates the FileConfig
func (cfg *FileConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("dir", cfg.Dir, vb)
	return vb.Build()
}

// NewFile creates a store that writes one JSON document per entity into a
// directory
func NewFile(cfg *FileConfig) (Store, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &fileStore{dir: cfg.Dir}, nil
}

func (f *fileStore) Destination(name string) string {
	return filepath.Join(f.dir, name)
}

func (f *fileStore) Save(_ context.Context, input SaveInput) (*SaveOutput, error) {
	if err := ValidateName(input.Name); err != nil {
		return nil, err
	}
	if input.Record == nil {
		return nil, errors.InvalidArgument("record cannot be nil")
	}

	data, err := json.MarshalIndent(input.Record, "", "    ")
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal entity record")
	}

	if err := os.MkdirAll(f.dir, 0o750); err != nil {
		return nil, errors.Wrapf(err, "failed to create entity directory %s", f.dir)
	}

	dest := f.Destination(input.Name)
	if err := os.WriteFile(dest, data, 0o600); err != nil {
		return nil, errors.Wrapf(err, "failed to write entity %s", dest)
	}

	return &SaveOutput{Destination: dest}, nil
}

func (f *fileStore) Load(_ context.Context, input LoadInput) (*LoadOutput, error) {
	if err := ValidateName(input.Name); err != nil {
		return nil, err
	}

	dest := f.Destination(input.Name)
	data, err := os.ReadFile(dest) // #nosec G304 -- name is validated above
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NotFoundf("entity %s not found", input.Name)
		}
		return nil, errors.Wrapf(err, "failed to read entity %s", dest)
	}

	var record Record
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal entity %s", dest)
	}

	return &LoadOutput{Record: &record}, nil
}
