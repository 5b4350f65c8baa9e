package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/s0up4200/radarr-mcp/config"
	"github.com/s0up4200/radarr-mcp/radarr"
	"github.com/s0up4200/radarr-mcp/server"
)

var (
	cfgFile      string
	cfg          *config.Config
	logger       zerolog.Logger
	radarrClient *radarr.Client

	version   = "dev"
	buildTime = "unknown"

	// Command flags
	listenHost string
	listenPort int
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "radarr-mcp",
	Short: "An MCP server exposing Radarr movie management as tools",
	Long: `radarr-mcp serves the Model Context Protocol over HTTP, exposing your
Radarr instance as a set of tools and resources: searching and adding
movies, managing the download queue, indexers, and the release calendar.`,
	PersistentPreRunE: initializeApp,
	RunE:              runServe,
}

// SetVersion stores build metadata injected at link time.
func SetVersion(v, bt string) {
	version = v
	buildTime = bt
	rootCmd.Version = v
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")
	rootCmd.Flags().StringVar(&listenHost, "host", "", "address to listen on (overrides config)")
	rootCmd.Flags().IntVar(&listenPort, "port", 0, "port to listen on (overrides config)")

	// Add subcommands
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(testCmd)
	rootCmd.AddCommand(versionCmd)
}

// initializeApp initializes the configuration and clients
func initializeApp(cmd *cobra.Command, args []string) error {
	// Printing the version needs no config or upstream client.
	if cmd.Name() == "version" {
		return nil
	}

	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if cmd.Flags().Changed("host") {
		cfg.Server.Host = listenHost
	}
	if cmd.Flags().Changed("port") {
		cfg.Server.Port = listenPort
	}

	if err := config.Validate(cfg); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	logger = setupLogger(cfg.Logging)

	radarrClient, err = radarr.NewClient(cfg.Radarr.URL, cfg.Radarr.APIKey, logger)
	if err != nil {
		return fmt.Errorf("failed to create Radarr client: %w", err)
	}

	return nil
}

// setupLogger configures the zerolog logger
func setupLogger(cfg config.LoggingConfig) zerolog.Logger {
	level := zerolog.InfoLevel
	switch strings.ToLower(cfg.Level) {
	case "trace":
		level = zerolog.TraceLevel
	case "debug":
		level = zerolog.DebugLevel
	case "warn":
		level = zerolog.WarnLevel
	case "error":
		level = zerolog.ErrorLevel
	}

	zerolog.SetGlobalLevel(level)

	if cfg.Format == "json" {
		return zerolog.New(os.Stderr).With().Timestamp().Logger()
	}

	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
		NoColor:    !cfg.Color,
	}

	return zerolog.New(output).With().Timestamp().Logger()
}

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the MCP server",
	Long:  `Start the MCP server and serve tools and resources over streamable HTTP until interrupted.`,
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	defer radarrClient.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := server.New(radarrClient, cfg.Server, version, logger)

	if err := srv.ListenAndServe(ctx); err != nil {
		return fmt.Errorf("server error: %w", err)
	}

	logger.Info().Msg("Server stopped")
	return nil
}

// testCmd represents the test command
var testCmd = &cobra.Command{
	Use:   "test",
	Short: "Test connection to Radarr",
	Long:  `Test the connection to your Radarr instance and display basic information.`,
	RunE:  runTest,
}

func runTest(cmd *cobra.Command, args []string) error {
	defer radarrClient.Close()

	fmt.Printf("Testing connection to Radarr at %s...\n", cfg.Radarr.URL)

	ctx := context.Background()
	status, err := radarrClient.GetSystemStatus(ctx)
	if err != nil {
		return fmt.Errorf("failed to reach Radarr: %w", err)
	}

	fmt.Println("✓ Connection successful!")
	fmt.Printf("\nRadarr Information:\n")
	fmt.Printf("- Version: %s\n", status.Version)
	fmt.Printf("- OS: %s %s\n", status.OsName, status.OsVersion)
	fmt.Printf("- Branch: %s\n", status.Branch)

	movies, err := radarrClient.GetMovies(ctx)
	if err != nil {
		return fmt.Errorf("failed to get movies: %w", err)
	}
	fmt.Printf("- Total movies: %d\n", len(movies))

	return nil
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("radarr-mcp %s (built %s)\n", version, buildTime)
	},
}
