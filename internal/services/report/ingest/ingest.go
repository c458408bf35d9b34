// Package ingest holds adapter shims for report pipeline ports.
package ingest

import (
	"context"

	"vitalsum/internal/adapters/export"
	"vitalsum/internal/services/report/domain"
)

// resolver implements domain.ResolverPort over the export API client
type resolver struct {
	c *export.Client
}

// NewResolver wraps an export client as a domain.ResolverPort
func NewResolver(c *export.Client) domain.ResolverPort { return resolver{c: c} }

func (r resolver) Resolve(ctx context.Context, exportID string) (domain.ExportDescriptor, error) {
	return r.c.Resolve(ctx, exportID)
}

// opener implements domain.StreamOpenerPort over the export API client
type opener struct {
	c *export.Client
}

// NewStreamOpener wraps an export client as a domain.StreamOpenerPort
func NewStreamOpener(c *export.Client) domain.StreamOpenerPort { return opener{c: c} }

func (o opener) OpenData(ctx context.Context, exportID, downloadID string) (domain.LineStream, error) {
	ds, err := o.c.OpenData(ctx, exportID, downloadID)
	if err != nil {
		return nil, err
	}
	return ds, nil
}
