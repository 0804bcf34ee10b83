package api

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/javi11/uudrive/internal/api/handlers"
	"github.com/javi11/uudrive/internal/history"
	"github.com/javi11/uudrive/internal/transcoder"
	sloggin "github.com/samber/slog-gin"
)

type api struct {
	r   *gin.Engine
	log *slog.Logger
}

// NewApi returns a new instance of the API with the given transcoder and
// history store. The API exposes the following endpoints:
// - POST /api/v1/encode: encodes a byte buffer into a uu document.
// - POST /api/v1/decode: decodes a uu document back into its file.
// - GET /api/v1/history: retrieves past transcode operations.
// - DELETE /api/v1/history/:id: deletes a history entry with the given ID.
func NewApi(tr *transcoder.Transcoder, h history.TranscodeHistory, log *slog.Logger, debug bool) *api {
	if !debug {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(sloggin.New(log))
	r.Use(gin.Recovery())

	v1 := r.Group("/api/v1")
	{
		v1.POST("/encode", handlers.BuildEncodeHandler(tr))
		v1.POST("/decode", handlers.BuildDecodeHandler(tr))
		v1.GET("/history", handlers.BuildGetHistoryHandler(h))
		v1.DELETE("/history/:id", handlers.BuildDeleteHistoryEntryHandler(h))
	}

	return &api{
		r:   r,
		log: log,
	}
}

func (a *api) Start(ctx context.Context, port string) {
	a.log.InfoContext(ctx, fmt.Sprintf("Api started at http://localhost:%v", port))
	err := a.r.Run(fmt.Sprintf(":%s", port))
	if err != nil {
		a.log.ErrorContext(ctx, "Failed to start API", "error", err)
		os.Exit(1)
	}
}
