package main

import (
	"context"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/glabrego/newsdeck/internal/app"
	"github.com/glabrego/newsdeck/internal/config"
	"github.com/glabrego/newsdeck/internal/corpus"
	"github.com/glabrego/newsdeck/internal/logging"
	"github.com/glabrego/newsdeck/internal/storage"
	"github.com/glabrego/newsdeck/internal/tui"
)

var (
	dbPath    string
	logPath   string
	feedFiles []string
	seed      int64
	noMouse   bool
	verbose   bool

	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "newsdeck",
	Short: "Terminal news reader",
	Long: `NewsDeck is a terminal news reader with a category and search filterable
article grid, a trending topics sidebar and an article detail view.

Articles are generated at startup; local RSS/Atom files can be mixed in
with --feed. Run without arguments to start the interactive reader.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		logger, err = logging.New(cfg.LogPath, verbose)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: runReader,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "SQLite database path (or set NEWSDECK_DB_PATH; default in-memory)")
	rootCmd.PersistentFlags().StringVar(&logPath, "log", "", "Write JSON logs to this file (or set NEWSDECK_LOG_PATH)")
	rootCmd.PersistentFlags().StringArrayVar(&feedFiles, "feed", nil, "Local RSS/Atom file to import (repeatable, or set NEWSDECK_FEED_FILES)")
	rootCmd.PersistentFlags().Int64Var(&seed, "seed", 0, "Seed for generated timestamps (or set NEWSDECK_SEED; 0 uses the clock)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.Flags().BoolVar(&noMouse, "no-mouse", false, "Disable mouse support (or set NEWSDECK_MOUSE=off)")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(showCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadConfig reads the environment and applies any flags the user set.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.LoadFromEnv()
	if err != nil {
		return config.Config{}, fmt.Errorf("config error: %w", err)
	}
	flags := cmd.Flags()
	if flags.Changed("db") {
		cfg.DBPath = dbPath
	}
	if flags.Changed("log") {
		cfg.LogPath = logPath
	}
	if flags.Changed("feed") {
		cfg.FeedFiles = feedFiles
	}
	if flags.Changed("seed") {
		cfg.Seed = seed
	}
	if flags.Changed("no-mouse") {
		cfg.Mouse = !noMouse
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, fmt.Errorf("config error: %w", err)
	}
	return cfg, nil
}

// openStore seeds a fresh store with the startup corpus and returns the
// service reading from it.
func openStore(ctx context.Context, cfg config.Config) (*app.Service, func(), error) {
	start := time.Now()

	repo, err := storage.NewRepository(cfg.DBPath)
	if err != nil {
		return nil, nil, fmt.Errorf("storage init error: %w", err)
	}
	closeRepo := func() { _ = repo.Close() }

	if err := repo.Init(ctx); err != nil {
		closeRepo()
		return nil, nil, fmt.Errorf("storage schema error: %w", err)
	}
	if err := repo.CheckWritable(ctx); err != nil {
		closeRepo()
		return nil, nil, fmt.Errorf("storage write check failed (%w). Verify NEWSDECK_DB_PATH is writable: %s", err, cfg.DBPath)
	}

	catalog, err := corpus.DefaultCatalog()
	if err != nil {
		closeRepo()
		return nil, nil, fmt.Errorf("load catalog: %w", err)
	}
	now := time.Now()
	articles := catalog.Generate(now, corpus.NewRand(cfg.Seed, now))

	if len(cfg.FeedFiles) > 0 {
		imported, err := corpus.LoadFeedFiles(ctx, cfg.FeedFiles, now)
		if err != nil {
			closeRepo()
			return nil, nil, fmt.Errorf("import feed files: %w", err)
		}
		for _, failure := range imported.Failures {
			fmt.Fprintf(os.Stderr, "warning: could not import feed file %s (%v)\n", failure.Path, failure.Err)
			logger.Warn("feed file import failed", zap.String("path", failure.Path), zap.Error(failure.Err))
		}
		articles = append(articles, imported.Articles...)
		logger.Info("feed files imported",
			zap.Int("files", len(cfg.FeedFiles)),
			zap.Int("failed", len(imported.Failures)),
			zap.Int("articles", len(imported.Articles)))
	}

	service := app.NewService(repo)
	if err := service.Seed(ctx, articles, catalog.TrendingTopics()); err != nil {
		closeRepo()
		logger.Error("seed store failed", zap.Error(err))
		return nil, nil, err
	}
	logger.Info("store seeded",
		zap.String("db", cfg.DBPath),
		zap.Int("articles", len(articles)),
		zap.Duration("duration", time.Since(start)))
	return service, closeRepo, nil
}

func runReader(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), 15*time.Second)
	defer cancel()
	service, closeStore, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeStore()

	opts := []tea.ProgramOption{tea.WithAltScreen()}
	if cfg.Mouse {
		opts = append(opts, tea.WithMouseCellMotion())
	}
	program := tea.NewProgram(tui.NewModel(service, logger), opts...)
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("tui error: %w", err)
	}
	return nil
}
