// Package http serves the export catalog endpoints consumed by vitalsum-report
package http

import (
	stdhttp "net/http"

	"github.com/go-chi/chi/v5"

	perr "vitalsum/internal/platform/errors"
	phttp "vitalsum/internal/platform/net/http"
	"vitalsum/internal/platform/net/http/bind"
	"vitalsum/internal/services/exportapi/domain"
)

// Deps are the handler dependencies
type Deps struct {
	Catalog domain.CatalogPort
}

type handlers struct {
	deps Deps
}

// Register mounts the export routes
func Register(r phttp.Router, d Deps) {
	h := &handlers{deps: d}

	r.Get("/{export_id}", h.resolve)
	r.Get("/{export_id}/{download_id}/data", h.data)
}

// exportParams carries the path parameters of the resolve endpoint
type exportParams struct {
	ExportID string `json:"export_id" validate:"required"`
}

// dataParams carries the path parameters of the data endpoint
type dataParams struct {
	ExportID   string `json:"export_id"   validate:"required"`
	DownloadID string `json:"download_id" validate:"required"`
}

// ResolveResponse is the resolve payload inside the envelope data key
type ResolveResponse struct {
	DownloadIDs []string `json:"download_ids"`
}

func (h *handlers) resolve(w stdhttp.ResponseWriter, r *stdhttp.Request) {
	p := exportParams{ExportID: chi.URLParam(r, "export_id")}
	if err := bind.Struct(p); err != nil {
		phttp.RespondError(w, r, err)
		return
	}

	ds, ok := h.deps.Catalog.Export(p.ExportID)
	if !ok {
		phttp.RespondError(w, r, perr.NotFoundf("unknown export %q", p.ExportID))
		return
	}

	ids := ds.DownloadIDs()
	if ids == nil {
		ids = []string{}
	}
	phttp.RespondOK(w, r, ResolveResponse{DownloadIDs: ids})
}

func (h *handlers) data(w stdhttp.ResponseWriter, r *stdhttp.Request) {
	p := dataParams{
		ExportID:   chi.URLParam(r, "export_id"),
		DownloadID: chi.URLParam(r, "download_id"),
	}
	if err := bind.Struct(p); err != nil {
		phttp.RespondError(w, r, err)
		return
	}

	ds, ok := h.deps.Catalog.Export(p.ExportID)
	if !ok {
		phttp.RespondError(w, r, perr.NotFoundf("unknown export %q", p.ExportID))
		return
	}
	dl, ok := ds.Download(p.DownloadID)
	if !ok {
		phttp.RespondError(w, r, perr.NotFoundf("unknown download %q in export %q", p.DownloadID, p.ExportID))
		return
	}

	phttp.RespondText(w, stdhttp.StatusOK, dl.Body())
}
