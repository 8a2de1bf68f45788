package api

import (
	"context"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/jimyag/jbs/internal/jbs/config"
	"github.com/jimyag/jbs/internal/jbs/service"
	"github.com/rs/zerolog"
)

type API struct {
	engine *gin.Engine
	server *http.Server

	volume *Volume
}

func New(cfg *config.Config, volumeService *service.VolumeService) (*API, error) {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	engine := gin.New()
	// handler 通过 gin.Context 按 context.Context 取请求上下文和 logger
	engine.ContextWithFallback = true
	engine.Use(gin.Recovery(), RequestID(), RequestLogger(logger), AuthContext())

	api := &API{
		engine: engine,
		volume: NewVolume(volumeService, cfg.ImageCreateEnabled),
	}
	api.volume.RegisterRoutes(engine.Group(""))
	api.server = &http.Server{
		Addr:    cfg.Address,
		Handler: engine,
	}
	return api, nil
}

func (a *API) Run(ctx context.Context) error {
	return a.server.ListenAndServe()
}

func (a *API) Shutdown(ctx context.Context) error {
	return a.server.Shutdown(ctx)
}

func (a *API) Name() string {
	return "JBS API"
}
