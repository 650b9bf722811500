package entities

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	logger "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// Settings is the top-level configuration for chartsync.
type Settings struct {
	Assets  []AssetConfig `yaml:"assets"`
	Chart   ChartConfig   `yaml:"chart"`
	Imgur   ImgurConfig   `yaml:"imgur"`
	Publish PublishConfig `yaml:"publish"`
	WorkDir string        `yaml:"workdir"`
}

// AssetConfig names one tracked asset.
type AssetConfig struct {
	Symbol string `yaml:"symbol"`  // Display symbol, e.g. "ETH"
	CoinID string `yaml:"coin_id"` // CoinGecko coin identifier, e.g. "ethereum"
}

// ChartConfig holds chart rendering settings.
type ChartConfig struct {
	Days         int     `yaml:"days"`          // Price history window in days
	EMASpans     []int   `yaml:"ema_spans"`     // EMA spans to plot
	WidthInches  float64 `yaml:"width_inches"`  // Rendered image width
	HeightInches float64 `yaml:"height_inches"` // Rendered image height
	DPI          int     `yaml:"dpi"`           // Raster resolution in dots per inch
}

// ImgurConfig holds the image host credential.
type ImgurConfig struct {
	ClientID string `yaml:"client_id"` // Inline, ${ENV_VAR}, or file path
}

// PublishConfig describes the repository that stores the relay file.
type PublishConfig struct {
	RepoURL       string `yaml:"repo_url"`
	Branch        string `yaml:"branch"`
	Token         string `yaml:"token"` // Inline, ${ENV_VAR}, or file path
	RelayPath     string `yaml:"relay_path"`
	CommitMessage string `yaml:"commit_message"`
	AuthorName    string `yaml:"author_name"`
	AuthorEmail   string `yaml:"author_email"`
}

const (
	defaultDays         = 7
	defaultWidthInches  = 12
	defaultHeightInches = 7
	defaultDPI          = 300
	defaultBranch       = "main"
	defaultCommitMsg    = "Update chart URLs"
	defaultAuthorName   = "chartsync"
	defaultAuthorEmail  = "chartsync@users.noreply.github.com"
)

// envVarPattern matches ${VAR_NAME} placeholders.
var envVarPattern = regexp.MustCompile(`\$\{([^}]+)}`)

// NewSettings reads and parses a settings file, expanding environment
// variables in secret fields and resolving file-based tokens.
func NewSettings(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read settings file %q: %w", path, err)
	}

	var settings Settings
	if unmarshalErr := yaml.Unmarshal(data, &settings); unmarshalErr != nil {
		return nil, fmt.Errorf("failed to parse settings file: %w", unmarshalErr)
	}

	settings.Imgur.ClientID = resolveSecret(settings.Imgur.ClientID)
	settings.Publish.Token = resolveSecret(settings.Publish.Token)

	applyDefaults(&settings)

	if validateErr := validate(&settings); validateErr != nil {
		return nil, validateErr
	}

	return &settings, nil
}

// FindSettingsFile searches for a settings file in standard locations.
// Returns the path to the first file found or an error if none is found.
func FindSettingsFile() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = ""
	}

	locations := []string{
		".",
		".config",
		"configs",
	}
	if homeDir != "" {
		locations = append(
			locations,
			homeDir,
			filepath.Join(homeDir, ".config"),
		)
	}

	patterns := []string{
		".chartsync.yaml",
		".chartsync.yml",
		"chartsync.yaml",
		"chartsync.yml",
	}

	for _, loc := range locations {
		for _, pat := range patterns {
			p := filepath.Join(loc, pat)
			if _, statErr := os.Stat(p); statErr == nil {
				return p, nil
			}
		}
	}

	return "", errors.New("settings file not found in default locations")
}

// DefaultAssets returns the built-in asset set used when none is configured.
func DefaultAssets() []AssetConfig {
	return []AssetConfig{
		{Symbol: "ETH", CoinID: "ethereum"},
		{Symbol: "AVAX", CoinID: "avalanche-2"},
		{Symbol: "XLM", CoinID: "stellar"},
		{Symbol: "ONDO", CoinID: "ondo-finance"},
	}
}

// resolveSecret expands environment variable references (${VAR}) and, if the
// resulting string is a path to an existing file, reads the secret from the file.
func resolveSecret(raw string) string {
	if raw == "" {
		return raw
	}

	// Expand ${ENV_VAR} references
	resolved := envVarPattern.ReplaceAllStringFunc(raw, func(match string) string {
		varName := envVarPattern.FindStringSubmatch(match)[1]
		if val := os.Getenv(varName); val != "" {
			return val
		}
		logger.Warnf("Environment variable %q is not set", varName)
		return ""
	})

	// If the resolved value is a path to an existing file, read the secret from it
	if _, statErr := os.Stat(resolved); statErr == nil {
		data, readErr := os.ReadFile(resolved)
		if readErr != nil {
			logger.Warnf("Failed to read secret file %q: %v", resolved, readErr)
			return resolved
		}
		logger.Infof("Read secret from file %q", resolved)
		return strings.TrimSpace(string(data))
	}

	return resolved
}

func applyDefaults(settings *Settings) {
	if len(settings.Assets) == 0 {
		settings.Assets = DefaultAssets()
	}
	if settings.Chart.Days == 0 {
		settings.Chart.Days = defaultDays
	}
	if len(settings.Chart.EMASpans) == 0 {
		settings.Chart.EMASpans = []int{10, 20}
	}
	if settings.Chart.WidthInches == 0 {
		settings.Chart.WidthInches = defaultWidthInches
	}
	if settings.Chart.HeightInches == 0 {
		settings.Chart.HeightInches = defaultHeightInches
	}
	if settings.Chart.DPI == 0 {
		settings.Chart.DPI = defaultDPI
	}
	if settings.Publish.Branch == "" {
		settings.Publish.Branch = defaultBranch
	}
	if settings.Publish.RelayPath == "" {
		settings.Publish.RelayPath = RelayFileName
	}
	if settings.Publish.CommitMessage == "" {
		settings.Publish.CommitMessage = defaultCommitMsg
	}
	if settings.Publish.AuthorName == "" {
		settings.Publish.AuthorName = defaultAuthorName
	}
	if settings.Publish.AuthorEmail == "" {
		settings.Publish.AuthorEmail = defaultAuthorEmail
	}
	if settings.WorkDir == "" {
		settings.WorkDir = "."
	}
}

// validate checks structural configuration values. Credentials are checked
// per stage at execution time so that an unused credential may stay unset.
func validate(settings *Settings) error {
	for i, asset := range settings.Assets {
		if asset.Symbol == "" {
			return fmt.Errorf("assets[%d].symbol is required", i)
		}
		if asset.CoinID == "" {
			return fmt.Errorf("assets[%d].coin_id is required", i)
		}
	}

	for i, span := range settings.Chart.EMASpans {
		if span <= 0 {
			return fmt.Errorf("chart.ema_spans[%d] must be positive", i)
		}
	}

	if settings.Chart.Days <= 0 {
		return errors.New("chart.days must be positive")
	}

	if settings.Chart.DPI <= 0 {
		return errors.New("chart.dpi must be positive")
	}

	return nil
}
