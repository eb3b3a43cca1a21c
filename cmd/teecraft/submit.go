package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/teecraft/internal/config"
	"github.com/alexisbeaulieu97/teecraft/internal/domain/customization"
	"github.com/alexisbeaulieu97/teecraft/internal/logger"
	"github.com/alexisbeaulieu97/teecraft/internal/preview"
	"github.com/alexisbeaulieu97/teecraft/internal/submit"
)

type submitOptions struct {
	Height     string
	Weight     string
	Build      string
	Text       string
	Image      string
	ArchiveDir string
}

func newSubmitCmd(root *rootFlags) *cobra.Command {
	opts := submitOptions{}

	cmd := &cobra.Command{
		Use:   "submit",
		Short: "Submit a customization without the interactive form",
		Long: `Submit a customization without the interactive form.

Unset flags keep the configured defaults. Values pass through the same
constraints as the form: text is cut to 3 lines and 120 characters, and
the build must be one of lean, regular, athletic or big.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(root)
			if err != nil {
				return err
			}
			if err := applyOverrides(cfg, customizeOptions{ArchiveDir: opts.ArchiveDir}); err != nil {
				return err
			}
			return runSubmit(cmd, cfg, root.verbose, opts)
		},
	}

	cmd.Flags().StringVar(&opts.Height, "height", "", "Height in cm")
	cmd.Flags().StringVar(&opts.Weight, "weight", "", "Weight in kg")
	cmd.Flags().StringVar(&opts.Build, "build", "", "Build: lean, regular, athletic or big")
	cmd.Flags().StringVar(&opts.Text, "text", "", "Text to print, \\n separates lines")
	cmd.Flags().StringVar(&opts.Image, "image", "", "Path to the print image")
	cmd.Flags().StringVar(&opts.ArchiveDir, "archive", "", "Also commit the submission to a git archive in this directory")

	return cmd
}

func runSubmit(cmd *cobra.Command, cfg *config.Config, verbose bool, opts submitOptions) error {
	log, err := newLogger(cfg, verbose, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	log = log.WithComponent("submit")

	req, err := buildRequest(cmd, cfg, opts, log)
	if err != nil {
		return err
	}

	if err := newSubmitter(cfg, log).Submit(cmd.Context(), req); err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), submit.Acknowledgement)
	return nil
}

// buildRequest applies the flags through the form setters, so the scripted
// path obeys the same constraints as the interactive one.
func buildRequest(cmd *cobra.Command, cfg *config.Config, opts submitOptions, log *logger.Logger) (customization.Request, error) {
	form := customization.NewForm(cfg.FormDefaults())
	changed := cmd.Flags().Changed

	if changed("height") {
		form.SetHeight(opts.Height)
	}
	if changed("weight") {
		form.SetWeight(opts.Weight)
	}
	if changed("build") {
		build, err := customization.ParseBuild(opts.Build)
		if err != nil {
			return customization.Request{}, err
		}
		if err := form.SetBuild(build); err != nil {
			return customization.Request{}, err
		}
	}
	if changed("text") {
		raw := unescapeNewlines(opts.Text)
		if accepted := form.SetText(raw); accepted != raw {
			log.WithFields(map[string]any{"accepted": accepted}).Warn("text truncated to fit the print area")
		}
	}
	if changed("image") {
		p := preview.Load(opts.Image, customization.OriginPicker)
		fields := map[string]any{"image": p.Ref.Source, "mime": p.MIME, "size": p.Ref.Size}
		if p.Broken {
			log.WithFields(fields).Error(p.Err, "image preview unavailable")
		}
		if p.Ref.ExceedsSizeHint(cfg.SizeHintBytes()) {
			log.WithFields(fields).Warn("image exceeds advertised size hint")
		}
		form.SetImage(p.Ref)
		p.Release()
	}

	req := form.Snapshot()
	if err := req.Validate(); err != nil {
		return customization.Request{}, err
	}
	return req, nil
}

// unescapeNewlines lets shells pass multi-line text as a single argument.
func unescapeNewlines(s string) string {
	return strings.ReplaceAll(s, `\n`, "\n")
}
