package main

import (
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/teecraft/internal/config"
	"github.com/alexisbeaulieu97/teecraft/internal/logger"
	"github.com/alexisbeaulieu97/teecraft/internal/tui/customizer"
	"github.com/alexisbeaulieu97/teecraft/internal/tui/shell"
)

type customizeOptions struct {
	Simple     bool
	Theme      string
	ArchiveDir string
}

var errNotTerminal = errors.New("customize needs an interactive terminal; use `teecraft submit` for scripted submissions")

var (
	stdoutIsTerminal   = func() bool { return term.IsTerminal(int(os.Stdout.Fd())) }
	customizeCmdRunner = runCustomize
)

func newCustomizeCmd(root *rootFlags) *cobra.Command {
	opts := &customizeOptions{}

	cmd := &cobra.Command{
		Use:   "customize",
		Short: "Open the interactive T-shirt customizer",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCustomizeCmd(cmd, root, *opts)
		},
	}
	bindCustomizeFlags(cmd, opts)

	return cmd
}

func bindCustomizeFlags(cmd *cobra.Command, opts *customizeOptions) {
	cmd.Flags().BoolVar(&opts.Simple, "simple", false, "Show the reduced form with measurements and build only")
	cmd.Flags().StringVar(&opts.Theme, "theme", "", "Initial theme name or slug")
	cmd.Flags().StringVar(&opts.ArchiveDir, "archive", "", "Also commit submissions to a git archive in this directory")
}

func runCustomizeCmd(cmd *cobra.Command, root *rootFlags, opts customizeOptions) error {
	cfg, err := loadConfig(root)
	if err != nil {
		return err
	}
	if err := applyOverrides(cfg, opts); err != nil {
		return err
	}
	if !stdoutIsTerminal() {
		return errNotTerminal
	}
	return customizeCmdRunner(cmd, cfg, root.verbose)
}

func runCustomize(cmd *cobra.Command, cfg *config.Config, verbose bool) error {
	logFile, err := logger.OpenFile(cfg.Logging.File)
	if err != nil {
		return err
	}
	defer logFile.Close()

	log, err := newLogger(cfg, verbose, logFile)
	if err != nil {
		return err
	}
	log = log.WithComponent("customize")
	log.WithFields(map[string]any{"theme": cfg.Theme, "variant": cfg.Variant, "archive": cfg.Archive.Enabled}).Info("customizer starting")

	m := shell.New(shell.Options{
		Theme:  cfg.Theme,
		Logger: log,
		Form: customizer.Options{
			Defaults:  cfg.FormDefaults(),
			Simple:    cfg.Simple(),
			Submitter: newSubmitter(cfg, log),
			SizeHint:  cfg.SizeHintBytes(),
			Context:   cmd.Context(),
		},
	})
	defer m.Close()

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(cmd.Context()))
	if _, err := p.Run(); err != nil {
		log.Error(err, "customizer failed")
		return fmt.Errorf("failed to run customizer: %w", err)
	}

	log.Info("customizer closed")
	return nil
}
