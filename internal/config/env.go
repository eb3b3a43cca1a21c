package config

import (
	"errors"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	teeerrors "github.com/alexisbeaulieu97/teecraft/pkg/errors"
)

// Environment variables recognised as overrides.
const (
	EnvTheme            = "TEECRAFT_THEME"
	EnvLogLevel         = "TEECRAFT_LOG_LEVEL"
	EnvLogFile          = "TEECRAFT_LOG_FILE"
	EnvArchiveDir       = "TEECRAFT_ARCHIVE_DIR"
	EnvPlaceholderImage = "TEECRAFT_PLACEHOLDER_IMAGE"
	EnvSizeHintMB       = "TEECRAFT_IMAGE_SIZE_HINT_MB"
)

// ApplyEnv overlays environment overrides onto cfg. Values from envFile
// (a .env file, optional) are used when the process environment does not
// set the variable. Setting TEECRAFT_ARCHIVE_DIR enables the archive.
func ApplyEnv(cfg *Config, envFile string) error {
	fileValues := map[string]string{}
	if envFile != "" {
		values, err := godotenv.Read(envFile)
		switch {
		case err == nil:
			fileValues = values
		case errors.Is(err, fs.ErrNotExist):
		default:
			return teeerrors.NewParseError(envFile, 0, err)
		}
	}

	lookup := func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}
		v, ok := fileValues[key]
		return v, ok
	}

	if v, ok := lookup(EnvTheme); ok {
		cfg.Theme = v
	}
	if v, ok := lookup(EnvLogLevel); ok {
		cfg.Logging.Level = v
	}
	if v, ok := lookup(EnvLogFile); ok {
		cfg.Logging.File = v
	}
	if v, ok := lookup(EnvArchiveDir); ok && v != "" {
		cfg.Archive.Dir = v
		cfg.Archive.Enabled = true
	}
	if v, ok := lookup(EnvPlaceholderImage); ok {
		cfg.Image.Placeholder = v
	}
	if v, ok := lookup(EnvSizeHintMB); ok {
		mb, err := strconv.Atoi(v)
		if err != nil {
			return teeerrors.NewValidationError("image.size_hint_mb", "must be an integer", err)
		}
		cfg.Image.SizeHintMB = mb
	}
	return nil
}
