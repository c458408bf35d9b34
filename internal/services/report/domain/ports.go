package domain

import "context"

// RunnerPort is the public port exposed by the report module
type RunnerPort interface {
	// Run processes one export end to end: resolve, stream, aggregate, emit
	Run(ctx context.Context, exportID, outputPath string) error
}

// ResolverPort resolves an export id into its ordered download list
type ResolverPort interface {
	Resolve(ctx context.Context, exportID string) (ExportDescriptor, error)
}

// LineStream is a forward-only stream of raw data lines (header already gone)
type LineStream interface {
	// Next returns the next raw line; io.EOF when exhausted
	Next() (string, error)
	Close() error
	// Stats returns lines and bytes read so far; zeros if not supported
	Stats() (lines int, bytes int64)
}

// StreamOpenerPort opens the data stream for one download id
type StreamOpenerPort interface {
	OpenData(ctx context.Context, exportID, downloadID string) (LineStream, error)
}

// EmitterPort serializes the final tally to stdout and an optional file
type EmitterPort interface {
	Emit(t *Tally, outputPath string) error
}
