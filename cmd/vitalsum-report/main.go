// Command vitalsum-report resolves a healthcare export, streams its data
// downloads, and prints per-patient event counts as JSON on stdout
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"

	"vitalsum/internal/core/version"
	"vitalsum/internal/modkit"
	"vitalsum/internal/modkit/module"
	"vitalsum/internal/platform/config"
	"vitalsum/internal/platform/logger"

	reportmod "vitalsum/internal/services/report/module"
)

// failExit is the process exit code for any pipeline failure
const failExit = 255

var knownExports = map[string]bool{"demo": true, "small": true, "large": true}

func mustSetEnv(key, val string) {
	if val != "" {
		_ = os.Setenv(key, val)
	}
}

func main() {
	var (
		fExport  = flag.String("export", "demo", "export id to aggregate: demo | small | large")
		fOutput  = flag.String("output", "", "optional file path for the JSON result")
		fBaseURL = flag.String("base-url", "", "export API base URL (overrides REPORT_BASE_URL)")
		fVerbose = flag.Bool("verbose", false, "enable debug logging")
		fTime    = flag.Bool("time", false, "log elapsed pipeline time on success")
		fVersion = flag.Bool("version", false, "print build info and exit")
	)
	flag.StringVar(fExport, "e", "demo", "short for -export")
	flag.StringVar(fOutput, "o", "", "short for -output")
	flag.Parse()

	if *fVersion {
		bi := version.Info()
		fmt.Printf("%s %s (%s, %s)\n", bi.Service, bi.Version, bi.Commit, bi.Date)
		return
	}

	opts := logger.FromEnv()
	if *fVerbose {
		opts.Level = "debug"
	}
	logger.Init(opts)
	l := logger.Get()

	if !knownExports[*fExport] {
		l.Error().Str("export_id", *fExport).Msg("unknown export id, want demo | small | large")
		os.Exit(failExit)
	}

	// surface the flag to the module's FromConfig
	mustSetEnv("REPORT_BASE_URL", *fBaseURL)

	root := config.New()
	deps := modkit.Deps{Cfg: root, Log: *l}

	rm := reportmod.New(deps)
	module.Register(rm.Name(), rm.Ports())

	runID := uuid.NewString()
	ctx := logger.WithRun(context.Background(), runID, *fExport)

	ports := rm.Ports().(reportmod.Ports)
	start := time.Now()
	if err := ports.Runner.Run(ctx, *fExport, *fOutput); err != nil {
		logger.C(ctx).Error().Err(err).Msg("report failed")
		os.Exit(failExit)
	}
	if *fTime {
		logger.C(ctx).Info().Dur("elapsed", time.Since(start)).Msg("report complete")
	}
}
