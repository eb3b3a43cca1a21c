package config

import (
	"github.com/alexisbeaulieu97/teecraft/internal/domain/customization"
)

// Config represents the full teecraft configuration document.
type Config struct {
	Theme   string  `yaml:"theme,omitempty" validate:"omitempty,theme_name"`
	Variant string  `yaml:"variant,omitempty" validate:"omitempty,oneof=full simple"`
	Form    Form    `yaml:"form"`
	Image   Image   `yaml:"image"`
	Archive Archive `yaml:"archive"`
	Logging Logging `yaml:"logging"`
}

// Form holds the values a freshly mounted form shows.
type Form struct {
	Height string `yaml:"height" validate:"numeric_string"`
	Weight string `yaml:"weight" validate:"numeric_string"`
	Build  string `yaml:"build" validate:"build"`
}

// Image configures the preview image.
type Image struct {
	Placeholder string `yaml:"placeholder" validate:"required,url"`
	SizeHintMB  int    `yaml:"size_hint_mb" validate:"min=1,max=1024"`
}

// Archive configures the git-backed submission archive.
type Archive struct {
	Enabled     bool   `yaml:"enabled"`
	Dir         string `yaml:"dir" validate:"required_if=Enabled true"`
	AuthorName  string `yaml:"author_name,omitempty"`
	AuthorEmail string `yaml:"author_email,omitempty" validate:"omitempty,email"`
}

// Logging configures the zerolog output.
type Logging struct {
	Level         string `yaml:"level" validate:"oneof=trace debug info warn error"`
	File          string `yaml:"file"`
	HumanReadable bool   `yaml:"human_readable"`
}

// Default returns the configuration used when no file is supplied.
func Default() Config {
	d := customization.DefaultDefaults()
	return Config{
		Theme:   "dark-modern",
		Variant: "full",
		Form: Form{
			Height: d.Height,
			Weight: d.Weight,
			Build:  string(d.Build),
		},
		Image: Image{
			Placeholder: d.PlaceholderImage,
			SizeHintMB:  10,
		},
		Archive: Archive{
			Dir:         "teecraft-submissions",
			AuthorName:  "teecraft",
			AuthorEmail: "teecraft@localhost",
		},
		Logging: Logging{
			Level:         "info",
			File:          "teecraft.log",
			HumanReadable: true,
		},
	}
}

// FormDefaults converts the form section into domain defaults.
func (c Config) FormDefaults() customization.Defaults {
	build, err := customization.ParseBuild(c.Form.Build)
	if err != nil {
		build = customization.BuildAthletic
	}
	return customization.Defaults{
		Height:           c.Form.Height,
		Weight:           c.Form.Weight,
		Build:            build,
		PlaceholderImage: c.Image.Placeholder,
	}
}

// SizeHintBytes returns the advertised image size limit in bytes.
func (c Config) SizeHintBytes() int64 {
	return int64(c.Image.SizeHintMB) << 20
}

// Simple reports whether the reduced form variant is selected.
func (c Config) Simple() bool {
	return c.Variant == "simple"
}
