// Package module wires the export API endpoints into the server
package module

import (
	"vitalsum/internal/modkit"
	phttp "vitalsum/internal/platform/net/http"
	exphttp "vitalsum/internal/services/exportapi/http"
	"vitalsum/internal/services/exportapi/repo"
)

// Ports defines the exportapi module ports
type Ports struct {
	Catalog interface {
		IDs() []string
	}
}

// Module implements the exportapi module
type Module struct {
	deps    modkit.Deps
	catalog *repo.Catalog
}

// New constructs the exportapi module over the builtin fixture catalog
func New(deps modkit.Deps) *Module {
	return &Module{deps: deps, catalog: repo.NewBuiltin()}
}

// Name returns the module name
func (m *Module) Name() string { return "exportapi" }

// Ports returns the module ports
func (m *Module) Ports() any { return Ports{Catalog: m.catalog} }

// MountRoutes mounts the export endpoints under /export
func (m *Module) MountRoutes(r phttp.Router) {
	r.Route("/export", func(rr phttp.Router) {
		exphttp.Register(rr, exphttp.Deps{Catalog: m.catalog})
	})
}
