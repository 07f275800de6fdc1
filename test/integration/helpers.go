//go:build integration

package integration

import (
	"bytes"
	"os"
	"os/exec"
	"strings"
	"testing"
)

// TestConfig holds configuration for integration tests.
type TestConfig struct {
	AccessToken string
	BaseURL     string
	BinaryPath  string
	Verbose     bool
}

// LoadTestConfig loads configuration from environment variables.
func LoadTestConfig() *TestConfig {
	return &TestConfig{
		AccessToken: os.Getenv("RECHARGE_ACCESS_TOKEN"),
		BaseURL:     os.Getenv("RECHARGE_BASE_URL"),
		BinaryPath:  getBinaryPath(),
		Verbose:     os.Getenv("RECHARGE_VERBOSE") == "true",
	}
}

// getBinaryPath determines the path to the recharge binary.
func getBinaryPath() string {
	if path := os.Getenv("RECHARGE_BINARY_PATH"); path != "" {
		return path
	}

	// Try common locations
	candidates := []string{
		"../../recharge",
		"./recharge",
		"../recharge",
	}

	for _, candidate := range candidates {
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}

	return "recharge" // Fallback to PATH
}

// SkipIfMissingToken skips the test when no access token is configured.
func (config *TestConfig) SkipIfMissingToken(t *testing.T) {
	t.Helper()

	if config.AccessToken == "" {
		t.Skip("RECHARGE_ACCESS_TOKEN not set, skipping integration test")
	}
}

// SkipIfMissingBinary skips the test when the CLI binary cannot be found.
func (config *TestConfig) SkipIfMissingBinary(t *testing.T) {
	t.Helper()

	config.SkipIfMissingToken(t)

	if _, err := exec.LookPath(config.BinaryPath); err != nil {
		t.Skipf("recharge binary not found at %s, skipping integration test", config.BinaryPath)
	}
}

// CommandRunner runs the recharge binary with an isolated HOME.
type CommandRunner struct {
	config *TestConfig
	home   string
	t      *testing.T
}

// NewCommandRunner creates a new command runner.
func NewCommandRunner(config *TestConfig, t *testing.T) *CommandRunner {
	t.Helper()

	return &CommandRunner{
		config: config,
		home:   t.TempDir(),
		t:      t,
	}
}

// Run executes a recharge command and returns its output.
func (runner *CommandRunner) Run(args ...string) (stdout, stderr string, err error) {
	cmd := exec.Command(runner.config.BinaryPath, args...)

	var stdoutBuf, stderrBuf bytes.Buffer

	cmd.Stdout = &stdoutBuf
	cmd.Stderr = &stderrBuf
	cmd.Env = append(os.Environ(), "HOME="+runner.home)

	if runner.config.Verbose {
		runner.t.Logf("Running: %s %s", runner.config.BinaryPath, strings.Join(args, " "))
	}

	err = cmd.Run()
	stdout = stdoutBuf.String()
	stderr = stderrBuf.String()

	if runner.config.Verbose && err != nil {
		runner.t.Logf("Command failed: %v\nStdout: %s\nStderr: %s", err, stdout, stderr)
	}

	return stdout, stderr, err
}

// AssertJSONOutput verifies command output looks like JSON.
func AssertJSONOutput(t *testing.T, output string) {
	t.Helper()

	output = strings.TrimSpace(output)
	if !strings.HasPrefix(output, "{") && !strings.HasPrefix(output, "[") {
		t.Errorf("Output does not appear to be JSON: %s", output)
	}
}
