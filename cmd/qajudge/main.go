package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"qajudge/cmd/qajudge/chat"
	"qajudge/cmd/qajudge/ui"
	"qajudge/internal/config"
	"qajudge/internal/evaluator"
	"qajudge/internal/logging"
)

var (
	// Global flags
	verbose   bool
	serverURL string
	workspace string
	timeout   time.Duration

	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "qajudge",
	Short: "qajudge - LLM-as-a-Judge answer evaluation client",
	Long: `qajudge asks questions against an evaluation backend and renders the
answer together with its quality assessment: an LLM judge verdict with
scored criteria, objective NLP metrics, and a strengths/improvements
analysis.

Run without arguments to start the interactive chat interface.`,
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		// Interactive mode logs to a file so the TUI stays clean.
		log, err := logging.NewFileLogger(resolveWorkspace(), cfg.Debug || verbose)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		logger = log

		client := evaluator.New(cfg.ServerURL, cfg.Timeout(), log)
		return chat.Run(cfg, client, log)
	},
}

// askCmd submits one question and prints the full evaluation.
var askCmd = &cobra.Command{
	Use:   "ask [question]",
	Short: "Submit a single question and print the evaluated answer",
	Long: `Sends one question to the evaluation backend and prints the answer
with every assessment section expanded.

Example:
  qajudge ask "Explain quantum computing in simple terms"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAsk,
}

// statusCmd reports backend health.
var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Check the evaluation backend's health",
	RunE:  runStatus,
}

var saveConfig bool

// configCmd shows the effective configuration.
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the effective configuration",
	Long: `Prints the configuration after merging defaults, the workspace config
file, environment variables, and command-line flags. With --save, writes
the merged result back to .qajudge/config.json.`,
	RunE: runConfig,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&serverURL, "server", "", "Evaluation backend base URL (or set QAJUDGE_SERVER)")
	rootCmd.PersistentFlags().StringVarP(&workspace, "workspace", "w", "", "Workspace directory (default: current)")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 0, "Request timeout (overrides config)")

	configCmd.Flags().BoolVar(&saveConfig, "save", false, "Write the merged config to the workspace")

	rootCmd.AddCommand(askCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(configCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func resolveWorkspace() string {
	if workspace != "" {
		return workspace
	}
	cwd, err := os.Getwd()
	if err != nil {
		return "."
	}
	return cwd
}

// loadConfig reads the workspace config and applies flag overrides, which
// win over both the file and the environment.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(resolveWorkspace())
	if err != nil {
		return nil, err
	}
	if serverURL != "" {
		cfg.ServerURL = serverURL
	}
	if timeout > 0 {
		cfg.TimeoutSeconds = int(timeout.Seconds())
	}
	if verbose {
		cfg.Debug = true
	}
	return cfg, nil
}

func runAsk(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	log, err := logging.NewConsoleLogger(verbose)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	logger = log

	question := strings.TrimSpace(strings.Join(args, " "))
	if question == "" {
		return fmt.Errorf("question must not be empty")
	}

	client := evaluator.New(cfg.ServerURL, cfg.Timeout(), log)

	ctx, cancel := context.WithTimeout(cmd.Context(), cfg.Timeout())
	defer cancel()

	rec, err := client.Submit(ctx, question)
	if err != nil {
		return err
	}
	if rec == nil {
		return fmt.Errorf("question must not be empty")
	}

	styles := ui.NewStyles(ui.ThemeFor(cfg.Theme))
	fmt.Println(chat.RenderRecord(*rec, styles))
	return nil
}

func runConfig(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	fmt.Printf("Server:   %s\n", cfg.ServerURL)
	fmt.Printf("Timeout:  %ds\n", cfg.TimeoutSeconds)
	theme := cfg.Theme
	if theme == "" {
		theme = "auto"
	}
	fmt.Printf("Theme:    %s\n", theme)
	fmt.Printf("Debug:    %t\n", cfg.Debug)

	if saveConfig {
		if err := cfg.Save(resolveWorkspace()); err != nil {
			return fmt.Errorf("failed to save config: %w", err)
		}
		fmt.Printf("Saved to %s\n", config.Path(resolveWorkspace()))
	}
	return nil
}

func runStatus(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	log, err := logging.NewConsoleLogger(verbose)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	logger = log

	client := evaluator.New(cfg.ServerURL, cfg.Timeout(), log)

	ctx, cancel := context.WithTimeout(cmd.Context(), 15*time.Second)
	defer cancel()

	status, err := client.Health(ctx)
	if err != nil {
		return fmt.Errorf("backend unreachable at %s: %w", cfg.ServerURL, err)
	}

	styles := ui.NewStyles(ui.ThemeFor(cfg.Theme))
	fmt.Printf("Server:     %s\n", cfg.ServerURL)
	fmt.Printf("Status:     %s\n", status.Status)
	if status.EvaluatorReady {
		fmt.Printf("Evaluator:  %s\n", styles.Success.Render("ready"))
	} else {
		fmt.Printf("Evaluator:  %s\n", styles.Warning.Render("not ready"))
	}
	fmt.Printf("Env:        %s\n", status.Environment)
	fmt.Printf("Timestamp:  %s\n", status.Timestamp)
	return nil
}
