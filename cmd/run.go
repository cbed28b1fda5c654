package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/abhisek/proteinlab/internal/app"
	"github.com/abhisek/proteinlab/internal/llm"
	"github.com/abhisek/proteinlab/internal/logger"
	"github.com/abhisek/proteinlab/internal/quiz"
	"github.com/abhisek/proteinlab/internal/store"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// services are the long-lived dependencies shared by the TUI and the API.
type services struct {
	store        *store.Store
	eventRepo    store.EventRepo
	providerName string
	quiz         *quiz.Service
	tutor        *quiz.Tutor
}

// openServices opens the event store and builds the AI services. Neither a
// missing database nor a missing credential is fatal: the store degrades to
// a no-op repo and the quiz to its built-in questions.
func openServices(ctx context.Context, dbPath string, log zerolog.Logger, opts ...quiz.Option) *services {
	svc := &services{eventRepo: store.NopEventRepo{}}

	st, err := store.Open(dbPath)
	if err != nil {
		log.Warn().Err(err).Str("path", dbPath).Msg("event store unavailable, history will not be recorded")
	} else {
		svc.store = st
		svc.eventRepo = st.EventRepo()
	}

	cfg := quiz.DefaultConfig()
	opts = append([]quiz.Option{quiz.WithConfig(cfg)}, opts...)
	provider, llmCfg, err := llm.NewProviderFromEnv(ctx, svc.eventRepo, log)
	switch {
	case err == nil:
		svc.providerName = provider.Name()
		svc.quiz = quiz.NewService(quiz.NewGenerator(provider, cfg), log, opts...)
		svc.tutor = quiz.NewTutor(provider, cfg, log)
		log.Info().Str("provider", llmCfg.Provider).Msg("AI provider configured")
	case errors.Is(err, llm.ErrNoCredential):
		log.Info().Msg("no AI credential found, using built-in questions")
		svc.quiz = quiz.NewService(nil, log, opts...)
		svc.tutor = quiz.NewTutor(nil, cfg, log)
	default:
		log.Warn().Err(err).Str("provider", llmCfg.Provider).Msg("AI provider failed to initialise")
		svc.quiz = quiz.NewService(nil, log, opts...)
		svc.tutor = quiz.NewTutor(nil, cfg, log)
	}
	return svc
}

func (s *services) Close() error {
	if s.store == nil {
		return nil
	}
	return s.store.Close()
}

// appFlags are the TUI options set on the command line.
type appFlags struct {
	topic       string
	difficulty  string
	skipWelcome bool
}

// runApp opens the store, builds dependencies, and launches the TUI. Logs
// go to a file so they never draw over the screen.
func runApp(cmd *cobra.Command, flags appFlags) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	difficulty, err := quiz.ParseDifficulty(flags.difficulty)
	if err != nil {
		return err
	}

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}

	log, closeLog := tuiLogger(cmd)
	defer closeLog()

	svc := openServices(ctx, dbPath, log)
	defer svc.Close()

	if svc.providerName == "" {
		fmt.Fprintln(os.Stderr, "AI provider not configured: quizzes will use built-in questions.")
	}

	return app.Run(app.Options{
		Quiz:         svc.quiz,
		Tutor:        svc.tutor,
		EventRepo:    svc.eventRepo,
		Log:          log,
		ProviderName: svc.providerName,
		Topic:        flags.topic,
		Difficulty:   difficulty,
		SkipWelcome:  flags.skipWelcome,
	})
}

// tuiLogger writes JSON logs to the state directory. If the file cannot be
// opened logging is discarded.
func tuiLogger(cmd *cobra.Command) (zerolog.Logger, func()) {
	level, _ := cmd.Flags().GetString("log-level")

	path, err := logger.DefaultLogPath()
	if err != nil {
		return zerolog.Nop(), func() {}
	}
	f, err := logger.OpenFile(path)
	if err != nil {
		return logger.Setup(level, "json", io.Discard), func() {}
	}
	return logger.Setup(level, "json", f), func() { f.Close() }
}
