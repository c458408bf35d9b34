// Command vitalsum-exportd serves the fixture export API that
// vitalsum-report consumes: export resolution plus raw data downloads
package main

import (
	"context"

	"vitalsum/internal/modkit"
	"vitalsum/internal/platform/config"
	"vitalsum/internal/platform/logger"
	phttp "vitalsum/internal/platform/net/http"
	"vitalsum/internal/platform/net/middleware"

	"vitalsum/internal/services/exportapi"
)

func main() {
	// service-scoped config (EXPORTD_*)
	root := config.New()
	srvCfg := root.Prefix("EXPORTD_")

	// bring up logging early
	l := logger.Get()

	// http server (reads EXPORTD_ADDR, defaults to :8000)
	srv := phttp.NewServer(srvCfg)

	api := srv.Router()
	api.Use(
		middleware.RequestID,
		middleware.RecoverJSON,
		middleware.AccessLogZerolog(middleware.AccessLogOptions{Slow: srvCfg.MayDuration("SLOW", 0)}),
		middleware.CORS(middleware.CORSOptions{}),
	)

	api.Route("/api", func(r phttp.Router) {
		exportapi.Mount(r, modkit.Deps{Cfg: root, Log: *l})
	})

	if err := srv.Run(context.Background()); err != nil {
		l.Panic().Err(err).Msg("http server stopped")
	}
}
