// Package svc wires the long-lived dependencies every handler shares.
package svc

import (
	"fmt"

	"github.com/daybookhq/daybook/internal/ai"
	"github.com/daybookhq/daybook/internal/catalog"
	"github.com/daybookhq/daybook/internal/config"
	"github.com/daybookhq/daybook/internal/db"
	"github.com/daybookhq/daybook/internal/events"
	"github.com/daybookhq/daybook/internal/guide"
	"github.com/daybookhq/daybook/internal/logging"
	"github.com/daybookhq/daybook/internal/summary"
)

// ServiceContext holds the shared services: storage, the LLM provider,
// the exercise catalog, the turn engine, and the summarizer.
type ServiceContext struct {
	Config config.Config
	UserID string

	DB         *db.Store
	Provider   ai.Provider
	Catalog    *catalog.Catalog
	Engine     *guide.Engine
	Summarizer *summary.Summarizer
	Events     *events.Subject
}

// NewServiceContext builds the full dependency graph from config.
// It opens (and migrates) the database, so callers must Close it.
func NewServiceContext(c config.Config) (*ServiceContext, error) {
	if err := c.EnsureDataDir(); err != nil {
		return nil, fmt.Errorf("data dir: %w", err)
	}

	store, err := db.NewSQLite(c.DBPath())
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	subject := events.NewSubject()
	store.SetNotifier(subject)

	cat := catalog.Builtin()
	if c.CatalogPath != "" {
		cat, err = catalog.LoadFile(c.CatalogPath)
		if err != nil {
			store.Close()
			return nil, fmt.Errorf("load exercise catalog: %w", err)
		}
		logging.Infof("loaded exercise catalog from %s (%d exercises)", c.CatalogPath, len(cat.List()))
	}

	provider := ai.NewOpenAIProvider(c.OpenAI.APIKey, c.OpenAI.Model, c.OpenAI.BaseURL, c.RequestTimeout())

	return &ServiceContext{
		Config:     c,
		UserID:     c.UserID,
		DB:         store,
		Provider:   provider,
		Catalog:    cat,
		Engine:     guide.NewEngine(store, provider, cat, c.UserID, c.OpenAI.Temperature),
		Summarizer: summary.New(store, provider),
		Events:     subject,
	}, nil
}

// Close releases the service context's resources.
func (s *ServiceContext) Close() {
	if s.DB != nil {
		if err := s.DB.Close(); err != nil {
			logging.Warnf("closing database: %v", err)
		}
	}
}
