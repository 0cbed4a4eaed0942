package main

import (
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/rpggio/wordbook/internal/command"
	"github.com/rpggio/wordbook/internal/config"
	"github.com/rpggio/wordbook/internal/domain/activity"
	"github.com/rpggio/wordbook/internal/domain/session"
	"github.com/rpggio/wordbook/internal/sqlite"
	"github.com/spf13/cobra"
)

type rootOptions struct {
	configPath string
	logLevel   string
	dates      bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "wordbook [dictionary-file]",
		Short: "Keep a personal dictionary from the command line",
		Long: `wordbook reads commands from standard input, one per line, and prints
each result. Type "help" at the prompt for the command list and "quit" to exit.

If a dictionary file is given it is opened before the first prompt.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts, args)
		},
	}

	cmd.Flags().StringVar(&opts.configPath, "config", "", "path to a YAML config file (default $WORDBOOK_CONFIG_PATH)")
	cmd.Flags().StringVar(&opts.logLevel, "log-level", "", "log level: debug, info, warn or error")
	cmd.Flags().BoolVar(&opts.dates, "dates", false, "start with date arguments enabled")

	return cmd
}

func run(cmd *cobra.Command, opts *rootOptions, args []string) error {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	if opts.logLevel != "" {
		cfg.Log.Level = opts.logLevel
	}
	if cmd.Flags().Changed("dates") {
		cfg.Dates.Enabled = opts.dates
	}

	// Logs stay off stdout, which carries command results.
	logWriter := cmd.ErrOrStderr()
	if cfg.Log.Path != "" {
		fileWriter, file, err := newLogFileWriter(cfg.Log.Path)
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "log file error: %v\n", err)
		} else {
			defer file.Close()
			logWriter = fileWriter
		}
	}
	logger := slog.New(slog.NewTextHandler(logWriter, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.Log.Level),
	}))

	db, err := sqlite.OpenJournal(cfg.Journal.Path)
	if err != nil {
		logger.Error("failed to open journal", "path", cfg.Journal.Path, "error", err)
		return fmt.Errorf("open journal: %w", err)
	}
	defer db.Close()

	activitySvc := activity.NewService(sqlite.NewActivityRepository(db), logger)
	router := command.NewRouter(sqlite.NewDictionaryStore(), activitySvc, logger)
	sess := session.New(uuid.NewString(), cfg.Dates.Enabled)

	logger.Info("session started", "session_id", sess.ID, "journal", cfg.Journal.Path, "dates", cfg.Dates.Enabled)

	ctx := cmd.Context()
	out := cmd.OutOrStdout()
	if len(args) == 1 {
		fmt.Fprintln(out, router.Receive(ctx, sess, "open "+args[0]))
	}

	if err := router.Run(ctx, sess, cmd.InOrStdin(), out); err != nil {
		logger.Error("command loop stopped", "error", err)
		return err
	}
	logger.Info("session ended", "session_id", sess.ID)
	return nil
}

func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}
