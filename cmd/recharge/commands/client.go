package commands

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/viper"

	"github.com/fivetwenty-io/recharge-client/internal/constants"
	"github.com/fivetwenty-io/recharge-client/pkg/recharge"
	"github.com/fivetwenty-io/recharge-client/pkg/rechargeclient"
)

// buildClientConfig maps the CLI configuration onto a client configuration.
func buildClientConfig(config *Config) (*recharge.Config, error) {
	if config.AccessToken == "" {
		return nil, constants.ErrNotLoggedIn
	}

	verbose := viper.GetBool(KeyVerbose)

	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}

	logger := recharge.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	clientConfig := &recharge.Config{
		AccessToken:       config.AccessToken,
		BaseURL:           config.BaseURL,
		RetryMax:          config.RetryMax,
		RequestsPerSecond: config.RequestsPerSecond,
		HTTPTimeout:       constants.DefaultHTTPTimeout,
		Logger:            logger,
		Debug:             verbose,
		UserAgent:         "recharge-cli",
	}

	cacheType, err := recharge.ParseCacheType(config.Cache)
	if err != nil {
		return nil, err
	}

	cacheConfig := &recharge.CacheConfig{Type: cacheType}
	if cacheType == recharge.CacheTypeNATS {
		cacheConfig.NATS = &recharge.NATSKVConfig{URL: natsURL(config), TTL: recharge.DefaultTokenInfoTTL}
	}

	clientConfig.Cache, err = recharge.NewCacheFromConfig(cacheConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create token cache: %w", err)
	}

	return clientConfig, nil
}

// newClient creates a client from the effective configuration.
func newClient(ctx context.Context) (recharge.Client, error) {
	clientConfig, err := buildClientConfig(loadConfig())
	if err != nil {
		return nil, err
	}

	return rechargeclient.New(ctx, clientConfig)
}

func natsURL(config *Config) string {
	if config.NATSURL != "" {
		return config.NATSURL
	}

	return constants.DefaultNATSURL
}
