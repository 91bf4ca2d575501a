package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"storytutor/internal/api"
	"storytutor/internal/config"
	"storytutor/internal/evaluate"
	"storytutor/internal/llm"
	"storytutor/internal/logging"
	"storytutor/internal/rubric"
	"storytutor/internal/store"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the grading HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd)
	},
}

func runServe(cmd *cobra.Command) error {
	ctx := cmd.Context()

	cfg, log, err := loadConfigAndLogger(cmd)
	if err != nil {
		return err
	}

	registry, err := rubric.Default()
	if err != nil {
		return fmt.Errorf("build rubric registry: %w", err)
	}

	dbPath, err := resolveDBPath(cmd, cfg.DBPath)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	eventRepo := st.EventRepo()
	grader := buildGrader(ctx, cfg, eventRepo, log)

	engine := evaluate.NewEngine(registry, grader, eventRepo, log)
	server := api.NewServer(engine, registry, log)

	httpSrv := &http.Server{
		Addr:    cfg.Server.Bind,
		Handler: server.Router(cfg.Server.AllowedOrigins),
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("grading server listening", "bind", cfg.Server.Bind, "questions", registry.Len())
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-stop:
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()
	return httpSrv.Shutdown(shutdownCtx)
}

// buildGrader wires the LLM grader, or returns nil so every answer
// grades through the keyword fallback when no provider is configured.
func buildGrader(ctx context.Context, cfg *config.Config, eventRepo store.EventRepo, log *slog.Logger) *evaluate.Grader {
	llmCfg := cfg.LLMConfig()
	if err := llmCfg.Validate(); err != nil {
		// No STORYTUTOR_* key for the configured provider; probe the
		// standard API key env vars before giving up on LLM grading.
		discovered, ok := llm.DiscoverConfig()
		if !ok {
			log.Warn("LLM grading disabled, using keyword fallback only", "reason", err)
			return nil
		}
		discovered.Timeout = llmCfg.Timeout
		llmCfg = discovered
		log.Info("LLM provider discovered from environment", "provider", llmCfg.Provider)
	}

	provider, err := llm.NewProvider(ctx, llmCfg, eventRepo, log)
	if err != nil {
		log.Warn("LLM grading disabled, using keyword fallback only", "reason", err)
		return nil
	}

	graderCfg := evaluate.DefaultGraderConfig()
	graderCfg.Timeout = llmCfg.Timeout
	return evaluate.NewGrader(provider, graderCfg)
}

func loadConfigAndLogger(cmd *cobra.Command) (*config.Config, *slog.Logger, error) {
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		path = config.DefaultPath()
	}

	cfg, err := config.Load(path)
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}

	log, err := logging.New(logging.Options{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
	})
	if err != nil {
		return nil, nil, err
	}
	slog.SetDefault(log)

	return cfg, log, nil
}
