// Package service provides the report pipeline implementation
package service

import (
	"context"
	"io"

	"vitalsum/internal/core/rows"
	"vitalsum/internal/platform/logger"
	"vitalsum/internal/services/report/domain"
)

// Service implements the report pipeline: resolve -> stream -> parse ->
// aggregate -> emit, strictly sequential, one download at a time
type Service struct {
	Resolver domain.ResolverPort
	Streams  domain.StreamOpenerPort
	Emitter  domain.EmitterPort
}

// New constructs the report service
func New(resolver domain.ResolverPort, streams domain.StreamOpenerPort, emitter domain.EmitterPort) *Service {
	if resolver == nil {
		panic("report.Service requires a non nil Resolver")
	}
	if streams == nil {
		panic("report.Service requires a non nil StreamOpener")
	}
	if emitter == nil {
		panic("report.Service requires a non nil Emitter")
	}
	return &Service{Resolver: resolver, Streams: streams, Emitter: emitter}
}

// Run implements domain.RunnerPort. Any resolver, stream, or emit error
// aborts the run and propagates unmodified; malformed rows do not
func (s *Service) Run(ctx context.Context, exportID, outputPath string) error {
	log := logger.C(ctx)
	log.Debug().Str("export_id", exportID).Msg("starting to process export")

	desc, err := s.Resolver.Resolve(ctx, exportID)
	if err != nil {
		return err
	}
	log.Debug().Int("downloads", len(desc.DownloadIDs)).Msg("found downloads for export")

	tally := domain.NewTally()
	for i, downloadID := range desc.DownloadIDs {
		log.Debug().
			Str("download_id", downloadID).
			Int("position", i+1).
			Int("of", len(desc.DownloadIDs)).
			Msg("processing download")

		applied, skipped, err := s.drainDownload(ctx, exportID, downloadID, tally)
		if err != nil {
			return err
		}
		log.Debug().
			Str("download_id", downloadID).
			Int("rows", applied).
			Int("skipped", skipped).
			Msg("processed download")
	}

	log.Debug().
		Int("patients", len(tally.PatientIDs())).
		Int("events", tally.Events()).
		Msg("finished processing all downloads")

	return s.Emitter.Emit(tally, outputPath)
}

// drainDownload opens one data stream, consumes it fully, and closes it
// before returning; the stream never outlives its download iteration
func (s *Service) drainDownload(ctx context.Context, exportID, downloadID string, tally *domain.Tally) (applied, skipped int, err error) {
	stream, err := s.Streams.OpenData(ctx, exportID, downloadID)
	if err != nil {
		return 0, 0, err
	}
	defer func() {
		if cerr := stream.Close(); cerr != nil && err == nil {
			logger.C(ctx).Warn().Err(cerr).Str("download_id", downloadID).Msg("closing data stream failed")
		}
	}()

	log := logger.C(ctx)
	for {
		line, nerr := stream.Next()
		if nerr == io.EOF {
			return applied, skipped, nil
		}
		if nerr != nil {
			return applied, skipped, nerr
		}
		rec, ok := rows.Parse(line)
		if !ok {
			if rows.Malformed(line) {
				log.Debug().Str("line", line).Msg("skipping malformed row")
				skipped++
			}
			continue
		}
		tally.Apply(rec)
		applied++
	}
}
