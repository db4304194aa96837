package cli

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/halim/aigate/internal/config"
	"github.com/halim/aigate/internal/logger"
	"github.com/halim/aigate/pkg/agent"
	"github.com/halim/aigate/pkg/aiconfig"
	"github.com/halim/aigate/pkg/gateway"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the aigate HTTP server",
	Long: `Start the aigate HTTP server. The LaunchDarkly client is initialized
once at startup from LD_SERVER_KEY; when the key is absent the server runs
for its whole lifetime without remote configuration.`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	// Load .env before anything reads the environment
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to load .env file: %w", err)
	}

	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if logLevel != "" {
		cfg.Logging.Level = logLevel
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	lg, err := logger.New(logger.Config{
		Level:     cfg.Logging.Level,
		File:      cfg.Logging.File,
		Console:   true,
		Pretty:    true,
		Redaction: cfg.Logging.Redaction,
	})
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer lg.Close()
	log := lg.GetZerolog()

	// Initialize the config service client once for the process lifetime.
	// An absent server key disables remote configuration entirely.
	var configClient aiconfig.Client
	if cfg.LaunchDarkly.ServerKey != "" {
		ldClient, err := aiconfig.NewLaunchDarklyClient(
			cfg.LaunchDarkly.ServerKey,
			time.Duration(cfg.LaunchDarkly.InitTimeoutSec)*time.Second,
			log,
		)
		if err != nil {
			return fmt.Errorf("failed to initialize LaunchDarkly client: %w", err)
		}
		defer ldClient.Close()
		configClient = ldClient

		log.Info().
			Str("project", cfg.LaunchDarkly.ProjectKey).
			Str("config_id", cfg.LaunchDarkly.AIConfigID).
			Msg("LaunchDarkly initialized")
	} else {
		log.Warn().Msg("LD_SERVER_KEY not set, running without LaunchDarkly")
	}

	resolver, err := aiconfig.NewResolver(aiconfig.ResolverConfig{
		Client:   configClient,
		ConfigID: cfg.LaunchDarkly.AIConfigID,
		Logger:   log,
	})
	if err != nil {
		return fmt.Errorf("failed to create resolver: %w", err)
	}

	factory := &agent.ProviderFactory{}
	provider, err := factory.NewProvider(cfg.Agent.Provider, providerAPIKey(cfg))
	if err != nil {
		return fmt.Errorf("failed to create provider: %w", err)
	}

	handler, err := gateway.NewHandler(gateway.HandlerConfig{
		Resolver: resolver,
		Provider: provider,
		Logger:   log,
	})
	if err != nil {
		return fmt.Errorf("failed to create handler: %w", err)
	}

	server, err := gateway.NewServer(gateway.ServerOptions{
		Host:               cfg.Server.Host,
		Port:               cfg.Server.Port,
		RateLimitPerMinute: cfg.Server.RateLimitPerMinute,
	}, handler, log)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		log.Info().Str("signal", sig.String()).Msg("Received shutdown signal")
		return server.Stop()
	case err := <-errCh:
		return err
	}
}

func providerAPIKey(cfg *config.Config) string {
	switch cfg.Agent.Provider {
	case "openai":
		return cfg.Agent.OpenAIAPIKey
	default:
		return cfg.Agent.AnthropicAPIKey
	}
}
