// Package server exposes the simulation catalogs, quiz generation and the
// tutor over a JSON HTTP API.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/abhisek/proteinlab/internal/config"
	"github.com/abhisek/proteinlab/internal/quiz"
	"github.com/abhisek/proteinlab/internal/server/handler"
	"github.com/abhisek/proteinlab/internal/server/middleware"
	"github.com/abhisek/proteinlab/internal/server/response"
	"github.com/abhisek/proteinlab/internal/server/validator"
	"github.com/abhisek/proteinlab/internal/store"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// Deps are the services the API is built on.
type Deps struct {
	Quiz      *quiz.Service
	Tutor     *quiz.Tutor
	EventRepo store.EventRepo
	Log       zerolog.Logger
}

// NewRouter configures the Gin engine with all routes and middleware.
func NewRouter(cfg *config.Config, deps Deps) *gin.Engine {
	gin.SetMode(cfg.GinMode)
	validator.Setup()

	router := gin.New()
	router.Use(gin.Recovery())

	corsConfig := cors.DefaultConfig()
	if len(cfg.AllowedOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.AllowedOrigins
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "X-Request-ID"}
	corsConfig.ExposeHeaders = []string{"X-Request-ID"}
	corsConfig.MaxAge = 12 * time.Hour
	router.Use(cors.New(corsConfig))

	router.Use(response.RequestIDMiddleware())
	router.Use(middleware.RequestLogger(deps.Log))
	router.NoRoute(response.NotFound)

	router.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, gin.H{
			"status": "ok",
			"ai":     deps.Quiz.Available(),
		})
	})

	folding := handler.NewFoldingHandler()
	proteins := handler.NewProteinHandler()
	quizH := handler.NewQuizHandler(deps.Quiz, deps.EventRepo, deps.Log)
	tutorH := handler.NewTutorHandler(deps.Tutor)

	rate := cfg.AIRateLimit
	if rate <= 0 {
		rate = 20
	}
	aiLimiter := middleware.NewRateLimiter(rate, time.Minute)

	v1 := router.Group("/api/v1")
	{
		v1.GET("/folding/stages", folding.Stages)
		v1.GET("/folding/layout", folding.Layout)
		v1.GET("/folding/hemoglobin", folding.Hemoglobin)

		v1.GET("/proteins", proteins.List)
		v1.GET("/proteins/:id", proteins.Get)

		v1.POST("/quiz/results", quizH.SubmitResult)
		v1.GET("/quiz/results", quizH.Results)

		ai := v1.Group("")
		ai.Use(aiLimiter.Middleware())
		ai.POST("/quiz", quizH.Generate)
		ai.POST("/tutor", tutorH.Ask)
	}

	return router
}

// Run serves the API on cfg.ServerPort until ctx is cancelled, then shuts
// down gracefully.
func Run(ctx context.Context, cfg *config.Config, deps Deps) error {
	srv := &http.Server{
		Addr:              ":" + cfg.ServerPort,
		Handler:           NewRouter(cfg, deps),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		deps.Log.Info().Str("addr", srv.Addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	deps.Log.Info().Msg("shutting down HTTP server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
