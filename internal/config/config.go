package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"time"

	"github.com/joho/godotenv"
)

const DefaultBaseURL = "https://api.openai.com/v1"

var (
	// ErrMissingAPIKey means no credential source is available at all.
	ErrMissingAPIKey = errors.New("OPENAI_API_KEY is required")

	// ErrInvalidArgument wraps every argument validation failure so the
	// caller can map it to a distinct exit code.
	ErrInvalidArgument = errors.New("invalid argument")
)

var sizeRegexp = regexp.MustCompile(`^\d+x\d+$`)

// Settings holds environment-supplied configuration.
type Settings struct {
	// APIKey is the OpenAI API key, taken from OPENAI_API_KEY.
	APIKey string

	// APIKeyParam names an SSM parameter holding the key. When set it
	// takes precedence over APIKey.
	APIKeyParam string

	// BaseURL is an alternate API endpoint.
	BaseURL string
}

// Params holds the per-run values from the command line.
type Params struct {
	Prompt       string
	Count        int
	Model        string
	Size         string
	Quality      string
	OutDir       string
	S3Bucket     string
	Distribution string
}

// Config is the immutable configuration for one run, built once at
// startup and handed to every component.
type Config struct {
	Settings
	Params
}

// LoadSettings reads environment configuration, consulting a .env file
// first if one is present.
func LoadSettings() (Settings, error) {
	_ = godotenv.Load()

	s := Settings{
		APIKey:      os.Getenv("OPENAI_API_KEY"),
		APIKeyParam: os.Getenv("OPENAI_API_KEY_PARAM"),
		BaseURL:     os.Getenv("OPENAI_BASE_URL"),
	}
	if s.BaseURL == "" {
		s.BaseURL = DefaultBaseURL
	}
	if s.APIKey == "" && s.APIKeyParam == "" {
		return Settings{}, ErrMissingAPIKey
	}
	return s, nil
}

func (p Params) Validate() error {
	if p.Count < 1 || p.Count > 50 {
		return fmt.Errorf("%w: count must be between 1 and 50, got %d", ErrInvalidArgument, p.Count)
	}
	if p.Model == "" {
		return fmt.Errorf("%w: model must not be empty", ErrInvalidArgument)
	}
	if !sizeRegexp.MatchString(p.Size) {
		return fmt.Errorf("%w: size must look like 1024x1024, got %q", ErrInvalidArgument, p.Size)
	}
	return nil
}

// DefaultOutDir returns a fresh timestamped directory path for one run.
// ~/Projects/tmp is preferred as the base when it already exists.
func DefaultOutDir() string {
	base := "tmp"
	if home, err := os.UserHomeDir(); err == nil {
		preferred := filepath.Join(home, "Projects", "tmp")
		if info, err := os.Stat(preferred); err == nil && info.IsDir() {
			base = preferred
		}
	}
	return filepath.Join(base, "imagebatch-"+time.Now().Format("2006-01-02-15-04-05"))
}
