package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/abhisek/proteinlab/internal/config"
	"github.com/abhisek/proteinlab/internal/logger"
	"github.com/abhisek/proteinlab/internal/quiz"
	"github.com/abhisek/proteinlab/internal/server"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the lab catalogs, quiz and tutor over HTTP",
	Long: `Start the JSON HTTP API. Configuration is read from the environment:
SERVER_PORT, GIN_MODE, LOG_LEVEL, LOG_FORMAT, ALLOWED_ORIGINS, REDIS_URL,
QUIZ_CACHE_TTL_MINUTES, AI_RATE_LIMIT_PER_MINUTE and PROTEINLAB_DB.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Load()
		log := logger.Setup(cfg.LogLevel, cfg.LogFormat, os.Stdout)

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}

		var opts []quiz.Option
		if cfg.RedisURL != "" {
			rdb, err := connectRedis(ctx, cfg.RedisURL)
			if err != nil {
				log.Warn().Err(err).Msg("redis unavailable, quiz cache disabled")
			} else {
				defer rdb.Close()
				opts = append(opts, quiz.WithCache(quiz.NewRedisCache(rdb, cfg.QuizCacheTTL)))
				log.Info().Dur("ttl", cfg.QuizCacheTTL).Msg("quiz cache enabled")
			}
		}

		svc := openServices(ctx, dbPath, log, opts...)
		defer svc.Close()

		return server.Run(ctx, cfg, server.Deps{
			Quiz:      svc.quiz,
			Tutor:     svc.tutor,
			EventRepo: svc.eventRepo,
			Log:       log,
		})
	},
}

func connectRedis(ctx context.Context, url string) (*redis.Client, error) {
	opt, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	rdb := redis.NewClient(opt)

	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		rdb.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return rdb, nil
}
