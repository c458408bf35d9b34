// Package exportapi assembles the fixture export API served by vitalsum-exportd
package exportapi

import (
	"vitalsum/internal/modkit"
	mod "vitalsum/internal/modkit/module"
	phttp "vitalsum/internal/platform/net/http"
	expmod "vitalsum/internal/services/exportapi/module"
)

// Mount registers the export API modules and mounts their routes under r
func Mount(r phttp.Router, deps modkit.Deps) {
	mods := []modkit.Module{
		expmod.New(deps),
	}
	for _, m := range mods {
		mod.Register(m.Name(), m.Ports())
		m.MountRoutes(r)
	}
}
