// Package output emits the final aggregation result as indented JSON
package output

import (
	"encoding/json"
	"io"
	"os"

	perr "vitalsum/internal/platform/errors"
	"vitalsum/internal/platform/logger"
	"vitalsum/internal/services/report/domain"
)

// Emitter writes the tally to stdout and optionally to a file.
// Emission is byte-idempotent: equal tallies produce identical text
type Emitter struct {
	// Stdout is the primary destination; defaults to os.Stdout
	Stdout io.Writer
}

// New returns an Emitter writing to the process stdout
func New() *Emitter { return &Emitter{Stdout: os.Stdout} }

// Emit serializes {"patients": ..., "totals": ...} with 2-space indentation.
// The text always goes to stdout; when outputPath is set the identical bytes
// are also written to the file, truncating any previous content.
// File failures map to the IO error code and are fatal for the run
func (e *Emitter) Emit(t *domain.Tally, outputPath string) error {
	data, err := json.MarshalIndent(t, "", "  ")
	if err != nil {
		// Tally marshalling has no failure modes in practice; classify anyway
		return perr.Wrap(err, perr.ErrorCodeIO, "marshal result")
	}
	data = append(data, '\n')

	w := e.Stdout
	if w == nil {
		w = os.Stdout
	}
	if _, err := w.Write(data); err != nil {
		return perr.Wrap(err, perr.ErrorCodeIO, "write result to stdout")
	}

	if outputPath != "" {
		logger.Get().Debug().Str("path", outputPath).Msg("writing output file")
		if err := os.WriteFile(outputPath, data, 0o644); err != nil {
			return perr.Wrapf(err, perr.ErrorCodeIO, "write result to %s", outputPath)
		}
	}
	return nil
}
