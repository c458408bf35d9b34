// Package module provides the report module implementation
package module

import (
	"vitalsum/internal/adapters/export"
	"vitalsum/internal/modkit"
	phttp "vitalsum/internal/platform/net/http"
	"vitalsum/internal/services/report/domain"
	"vitalsum/internal/services/report/ingest"
	"vitalsum/internal/services/report/output"
	"vitalsum/internal/services/report/service"
)

// Ports defines the report module ports
type Ports struct {
	Runner domain.RunnerPort
}

// Module implements the report module
type Module struct {
	deps  modkit.Deps
	ports Ports
}

// New constructs the report module
// It wires the export API client and the emitter into the pipeline service
// using config from deps.Cfg. It does not mount any routes.
func New(deps modkit.Deps) *Module {
	opts := FromConfig(deps.Cfg)

	client := export.NewClient(export.Options{
		BaseURL:   opts.BaseURL,
		UserAgent: opts.UserAgent,
		Timeout:   opts.HTTPTimeout,
	})

	svc := service.New(
		ingest.NewResolver(client),
		ingest.NewStreamOpener(client),
		output.New(),
	)

	m := &Module{deps: deps}
	m.ports = Ports{Runner: svc}
	return m
}

// Name returns the module name
func (m *Module) Name() string { return "report" }

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

// MountRoutes is a no-op as report has no routes
func (m *Module) MountRoutes(_ phttp.Router) {}
