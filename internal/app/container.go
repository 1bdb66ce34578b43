package app

import (
	"fmt"

	"github.com/spf13/afero"
	"go.uber.org/zap"

	"protoreq/internal/adapter/filestore"
	"protoreq/internal/config"
	"protoreq/internal/schema"
	"protoreq/internal/usecase/request"
)

// Container holds all application dependencies
type Container struct {
	Schema   *schema.Registry
	Store    *filestore.Store
	Requests *request.Usecase
}

// NewContainer creates and initializes all application dependencies
func NewContainer(cfg *config.Config, fs afero.Fs, l *zap.Logger) (*Container, error) {
	// Validate configuration before initializing any dependencies
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	// Load the schema registry first: without the descriptor set nothing
	// can be encoded or decoded.
	reg, err := schema.Load(fs, cfg.Schema.DescriptorPath, l)
	if err != nil {
		return nil, err
	}

	store := filestore.New(fs, l)

	return &Container{
		Schema:   reg,
		Store:    store,
		Requests: request.New(reg, store, l),
	}, nil
}
