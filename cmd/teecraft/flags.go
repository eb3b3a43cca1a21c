package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alexisbeaulieu97/teecraft/internal/config"
	"github.com/alexisbeaulieu97/teecraft/internal/logger"
	"github.com/alexisbeaulieu97/teecraft/internal/submit"
	"github.com/alexisbeaulieu97/teecraft/internal/ui/theme"
)

// loadConfig resolves the configuration named by the root flags.
func loadConfig(flags *rootFlags) (*config.Config, error) {
	path := strings.TrimSpace(flags.configPath)
	if path != "" {
		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("config file does not exist: %w", err)
		}
		if info.IsDir() {
			return nil, fmt.Errorf("config path %s is a directory", path)
		}
	}
	return config.Load(path, flags.envFile)
}

// applyOverrides layers command-line flags over the loaded configuration.
func applyOverrides(cfg *config.Config, opts customizeOptions) error {
	if opts.Theme != "" {
		if _, ok := theme.Lookup(opts.Theme); !ok {
			return fmt.Errorf("unknown theme %q (see `teecraft themes`)", opts.Theme)
		}
		cfg.Theme = opts.Theme
	}
	if opts.Simple {
		cfg.Variant = "simple"
	}
	if opts.ArchiveDir != "" {
		cfg.Archive.Enabled = true
		cfg.Archive.Dir = opts.ArchiveDir
	}
	return nil
}

func newLogger(cfg *config.Config, verbose bool, w io.Writer) (*logger.Logger, error) {
	level := cfg.Logging.Level
	if verbose {
		level = "debug"
	}
	log, err := logger.New(logger.Options{
		Level:         level,
		HumanReadable: cfg.Logging.HumanReadable,
		Writer:        w,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}
	return log, nil
}

// newSubmitter always logs the snapshot and also archives it when enabled.
func newSubmitter(cfg *config.Config, log *logger.Logger) submit.Submitter {
	chain := submit.Chain{submit.NewLogSubmitter(log)}
	if cfg.Archive.Enabled {
		chain = append(chain, submit.NewArchiveSubmitter(submit.ArchiveOptions{
			Dir:         cfg.Archive.Dir,
			AuthorName:  cfg.Archive.AuthorName,
			AuthorEmail: cfg.Archive.AuthorEmail,
			Logger:      log,
		}))
	}
	return chain
}
