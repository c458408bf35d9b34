package export

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	perr "vitalsum/internal/platform/errors"
)

// ExportDescriptor names an export and its ordered download ids.
// Read-only after construction; scoped to one pipeline run
type ExportDescriptor struct {
	ExportID    string
	DownloadIDs []string
}

// Resolve fetches export metadata and extracts the ordered download id list.
// The expected body shape is {"data": {"download_ids": [...]}}.
// Any export id string is accepted here; enumerating valid ids is a CLI concern
func (c *Client) Resolve(ctx context.Context, exportID string) (ExportDescriptor, error) {
	url := fmt.Sprintf("%s/export/%s", c.opts.BaseURL, exportID)
	c.log.Debug().Str("url", url).Msg("fetching export details")

	resp, err := c.get(ctx, url)
	if err != nil {
		return ExportDescriptor{}, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return ExportDescriptor{}, perr.MalformedResponsef(
			"export %s: unexpected status %d", exportID, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return ExportDescriptor{}, perr.Wrapf(err, perr.ErrorCodeNetwork, "read export %s body", exportID)
	}

	// Decode in two steps so an empty download list is distinguishable from a
	// missing key path
	var outer struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(body, &outer); err != nil {
		return ExportDescriptor{}, perr.Wrapf(err, perr.ErrorCodeMalformedResponse, "export %s: invalid JSON", exportID)
	}
	if len(outer.Data) == 0 {
		return ExportDescriptor{}, perr.MalformedResponsef("export %s: missing data key", exportID)
	}
	var inner struct {
		DownloadIDs *[]string `json:"download_ids"`
	}
	if err := json.Unmarshal(outer.Data, &inner); err != nil {
		return ExportDescriptor{}, perr.Wrapf(err, perr.ErrorCodeMalformedResponse, "export %s: invalid data object", exportID)
	}
	if inner.DownloadIDs == nil {
		return ExportDescriptor{}, perr.MalformedResponsef("export %s: missing download_ids key", exportID)
	}

	c.log.Debug().Str("export_id", exportID).Int("downloads", len(*inner.DownloadIDs)).Msg("resolved export")
	return ExportDescriptor{ExportID: exportID, DownloadIDs: *inner.DownloadIDs}, nil
}
