// Package repo holds the in-memory catalog backing the export API
package repo

import "vitalsum/internal/services/exportapi/domain"

// Catalog is an immutable in-memory set of datasets keyed by export id.
// Serving order of export ids follows load order
type Catalog struct {
	order []string
	byID  map[string]domain.Dataset
}

// NewCatalog builds a catalog from the given datasets
func NewCatalog(datasets []domain.Dataset) *Catalog {
	c := &Catalog{byID: make(map[string]domain.Dataset, len(datasets))}
	for _, ds := range datasets {
		if _, dup := c.byID[ds.ExportID]; dup {
			continue
		}
		c.order = append(c.order, ds.ExportID)
		c.byID[ds.ExportID] = ds
	}
	return c
}

// NewBuiltin builds a catalog over the builtin fixture exports
func NewBuiltin() *Catalog {
	return NewCatalog(domain.BuiltinDatasets())
}

// Export returns the dataset for an export id
func (c *Catalog) Export(exportID string) (domain.Dataset, bool) {
	ds, ok := c.byID[exportID]
	return ds, ok
}

// IDs returns the known export ids in load order
func (c *Catalog) IDs() []string {
	out := make([]string, len(c.order))
	copy(out, c.order)
	return out
}
