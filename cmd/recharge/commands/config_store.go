package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/fivetwenty-io/recharge-client/internal/constants"
)

// Configuration keys shared by viper, the config file and RECHARGE_* env vars.
const (
	KeyAccessToken       = "access_token"
	KeyBaseURL           = "base_url"
	KeyOutput            = "output"
	KeyVerbose           = "verbose"
	KeyNoColor           = "no_color"
	KeyRetryMax          = "retry_max"
	KeyRequestsPerSecond = "requests_per_second"
	KeyCache             = "cache"
	KeyNATSURL           = "nats_url"
	KeyTokenName         = "token_name"
	KeyScopes            = "scopes"
)

// Config represents the CLI configuration.
type Config struct {
	AccessToken string `json:"access_token,omitempty" yaml:"access_token,omitempty"`
	BaseURL     string `json:"base_url,omitempty"     yaml:"base_url,omitempty"`

	// Global settings
	Output  string `json:"output,omitempty" yaml:"output,omitempty"`
	NoColor bool   `json:"no_color"         yaml:"no_color"`

	// Transport settings
	RetryMax          int     `json:"retry_max,omitempty"           yaml:"retry_max,omitempty"`
	RequestsPerSecond float64 `json:"requests_per_second,omitempty" yaml:"requests_per_second,omitempty"`

	// Cache is the token information cache backend: memory, nats or none.
	Cache   string `json:"cache,omitempty"    yaml:"cache,omitempty"`
	NATSURL string `json:"nats_url,omitempty" yaml:"nats_url,omitempty"`

	// Recorded at login for display only; scopes are checked against the API.
	TokenName string   `json:"token_name,omitempty" yaml:"token_name,omitempty"`
	Scopes    []string `json:"scopes,omitempty"     yaml:"scopes,omitempty"`
}

// ConfigPersister serializes writes to the config file.
type ConfigPersister struct {
	mutex sync.Mutex
}

var persister = &ConfigPersister{}

// ConfigDir returns ~/.recharge, creating it when missing.
func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}

	configDir := filepath.Join(home, constants.ConfigDirName)

	err = os.MkdirAll(configDir, constants.ConfigDirPerm)
	if err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}

	return configDir, nil
}

// ConfigPath returns the file the configuration is read from and saved to.
func ConfigPath() (string, error) {
	configFile := viper.ConfigFileUsed()
	if configFile != "" {
		return configFile, nil
	}

	configDir, err := ConfigDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(configDir, constants.ConfigFileName+"."+constants.ConfigFileType), nil
}

// loadConfig reads the effective configuration: flags, then env, then file.
func loadConfig() *Config {
	return &Config{
		AccessToken:       viper.GetString(KeyAccessToken),
		BaseURL:           viper.GetString(KeyBaseURL),
		Output:            viper.GetString(KeyOutput),
		NoColor:           viper.GetBool(KeyNoColor),
		RetryMax:          viper.GetInt(KeyRetryMax),
		RequestsPerSecond: viper.GetFloat64(KeyRequestsPerSecond),
		Cache:             viper.GetString(KeyCache),
		NATSURL:           viper.GetString(KeyNATSURL),
		TokenName:         viper.GetString(KeyTokenName),
		Scopes:            viper.GetStringSlice(KeyScopes),
	}
}

// Save writes config as YAML with owner-only permissions and refreshes viper.
func (p *ConfigPersister) Save(config *Config) error {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	configFile, err := ConfigPath()
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	err = os.WriteFile(configFile, data, constants.ConfigFilePerm)
	if err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	// WriteFile keeps the mode of an existing file.
	err = os.Chmod(configFile, constants.ConfigFilePerm)
	if err != nil {
		return fmt.Errorf("failed to set config file permissions: %w", err)
	}

	viper.Set(KeyAccessToken, config.AccessToken)
	viper.Set(KeyBaseURL, config.BaseURL)
	viper.Set(KeyOutput, config.Output)
	viper.Set(KeyNoColor, config.NoColor)
	viper.Set(KeyRetryMax, config.RetryMax)
	viper.Set(KeyRequestsPerSecond, config.RequestsPerSecond)
	viper.Set(KeyCache, config.Cache)
	viper.Set(KeyNATSURL, config.NATSURL)
	viper.Set(KeyTokenName, config.TokenName)
	viper.Set(KeyScopes, config.Scopes)

	return nil
}

func saveConfig(config *Config) error {
	return persister.Save(config)
}

// maskSecret keeps the last few characters of secret.
func maskSecret(secret string) string {
	if secret == "" {
		return ""
	}

	if len(secret) <= constants.MaskedSuffixLength*2 {
		return constants.MaskedSecret
	}

	return constants.MaskedSecret + secret[len(secret)-constants.MaskedSuffixLength:]
}
