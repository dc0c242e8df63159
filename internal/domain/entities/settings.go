package entities

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	defaultEnvironmentRoot = ".venv"
	defaultManifestPath    = "requirements.txt"
	defaultReportPath      = "outdated-dependencies.json"

	defaultCreateTimeout   = 10 * time.Minute
	defaultInstallTimeout  = 20 * time.Minute
	defaultOutdatedTimeout = 5 * time.Minute
)

// envVarPattern matches ${VAR_NAME} placeholders in settings values.
var envVarPattern = regexp.MustCompile(`\$\{([^}]+)}`)

// Settings is the top-level configuration for the tool. Every value has a
// working default, so running without a settings file is fine.
type Settings struct {
	Interpreter string              `yaml:"interpreter"` // explicit python binary, empty means discover
	Environment EnvironmentSettings `yaml:"environment"`
	Manifest    string              `yaml:"manifest"`
	Report      string              `yaml:"report"`
	Conda       CondaSettings       `yaml:"conda"`
	Install     InstallSettings     `yaml:"install"`
	Timeouts    TimeoutSettings     `yaml:"timeouts"`
}

// EnvironmentSettings selects the environment flavor and where it lives.
type EnvironmentSettings struct {
	Type string `yaml:"type"` // "venv" or "conda"
	Root string `yaml:"root"`
}

// CondaSettings configures conda mode.
type CondaSettings struct {
	Binary string `yaml:"binary"` // explicit conda binary, empty means discover
	Python string `yaml:"python"` // python pin for environment creation, e.g. "3.12"
}

// InstallSettings configures the installer invocation.
type InstallSettings struct {
	IndexURL   string   `yaml:"index_url"`
	ExtraArgs  []string `yaml:"extra_args"`
	UpgradePip bool     `yaml:"upgrade_pip"`
}

// TimeoutSettings bounds the external commands. Values are Go duration
// strings ("90s", "15m"); empty values fall back to the defaults.
type TimeoutSettings struct {
	Create   string `yaml:"create"`
	Install  string `yaml:"install"`
	Outdated string `yaml:"outdated"`
}

// DefaultSettings returns settings with every default applied.
func DefaultSettings() *Settings {
	//nolint:exhaustruct // zero values are the documented defaults
	return &Settings{
		Environment: EnvironmentSettings{
			Type: string(KindVenv),
			Root: defaultEnvironmentRoot,
		},
		Manifest: defaultManifestPath,
		Report:   defaultReportPath,
		Install: InstallSettings{
			UpgradePip: true,
		},
	}
}

// NewSettings reads and parses the settings file at path. Absent keys keep
// their defaults, ${ENV_VAR} placeholders are expanded after parsing.
func NewSettings(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read settings file %q: %w", path, err)
	}

	settings := DefaultSettings()
	if unmarshalErr := yaml.Unmarshal(data, settings); unmarshalErr != nil {
		return nil, fmt.Errorf("failed to parse settings file %q: %w", path, unmarshalErr)
	}

	settings.expandEnvVars()
	if validateErr := settings.validate(); validateErr != nil {
		return nil, fmt.Errorf("invalid settings file %q: %w", path, validateErr)
	}
	return settings, nil
}

// FindSettingsFile searches the standard locations for a settings file:
// the working directory first, then the user's config directory.
func FindSettingsFile() (string, error) {
	candidates := []string{"pyforge.yaml", "pyforge.yml"}
	if configDir, err := os.UserConfigDir(); err == nil {
		candidates = append(candidates,
			filepath.Join(configDir, "pyforge", "pyforge.yaml"),
			filepath.Join(configDir, "pyforge", "pyforge.yml"),
		)
	}

	for _, candidate := range candidates {
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
	}
	return "", errors.New("no settings file found in standard locations")
}

// Kind returns the configured environment flavor.
func (it *Settings) Kind() EnvironmentKind {
	return EnvironmentKind(it.Environment.Type)
}

func (it *Settings) expandEnvVars() {
	it.Interpreter = expandEnv(it.Interpreter)
	it.Environment.Root = expandEnv(it.Environment.Root)
	it.Manifest = expandEnv(it.Manifest)
	it.Report = expandEnv(it.Report)
	it.Conda.Binary = expandEnv(it.Conda.Binary)
	it.Install.IndexURL = expandEnv(it.Install.IndexURL)
	for i, arg := range it.Install.ExtraArgs {
		it.Install.ExtraArgs[i] = expandEnv(arg)
	}
}

func (it *Settings) validate() error {
	switch it.Kind() {
	case KindVenv, KindConda:
	default:
		return fmt.Errorf("unknown environment type %q (expected %q or %q)",
			it.Environment.Type, KindVenv, KindConda)
	}
	if it.Environment.Root == "" {
		return errors.New("environment root must not be empty")
	}
	if it.Manifest == "" {
		return errors.New("manifest path must not be empty")
	}
	if it.Report == "" {
		return errors.New("report path must not be empty")
	}

	for name, value := range map[string]string{
		"timeouts.create":   it.Timeouts.Create,
		"timeouts.install":  it.Timeouts.Install,
		"timeouts.outdated": it.Timeouts.Outdated,
	} {
		if value == "" {
			continue
		}
		if _, err := time.ParseDuration(value); err != nil {
			return fmt.Errorf("invalid duration for %s: %w", name, err)
		}
	}
	return nil
}

// CreateTimeout bounds environment creation.
func (it TimeoutSettings) CreateTimeout() time.Duration {
	return parseDuration(it.Create, defaultCreateTimeout)
}

// InstallTimeout bounds dependency installation.
func (it TimeoutSettings) InstallTimeout() time.Duration {
	return parseDuration(it.Install, defaultInstallTimeout)
}

// OutdatedTimeout bounds the outdated listing.
func (it TimeoutSettings) OutdatedTimeout() time.Duration {
	return parseDuration(it.Outdated, defaultOutdatedTimeout)
}

func parseDuration(value string, fallback time.Duration) time.Duration {
	if value == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		return fallback
	}
	return parsed
}

// expandEnv replaces ${VAR_NAME} placeholders with environment variable
// values, leaving placeholders for unset variables untouched.
func expandEnv(raw string) string {
	return envVarPattern.ReplaceAllStringFunc(raw, func(match string) string {
		name := envVarPattern.FindStringSubmatch(match)[1]
		if value, exists := os.LookupEnv(name); exists {
			return value
		}
		return match
	})
}
