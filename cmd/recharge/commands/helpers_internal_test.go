package commands

import (
	"bufio"
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/recharge-client/internal/constants"
	"github.com/fivetwenty-io/recharge-client/pkg/recharge"
)

func TestParseQuery(t *testing.T) {
	t.Parallel()

	query, err := parseQuery([]string{"status=queued", "scheduled_at_min=2024-01-01", "ids=1,2"}, 25)
	require.NoError(t, err)
	assert.Equal(t, recharge.Query{
		"limit":            "25",
		"status":           "queued",
		"scheduled_at_min": "2024-01-01",
		"ids":              "1,2",
	}, query)

	_, err = parseQuery([]string{"status"}, 25)
	require.ErrorIs(t, err, constants.ErrInvalidQueryFormat)

	_, err = parseQuery([]string{"=x"}, 25)
	require.ErrorIs(t, err, constants.ErrInvalidQueryFormat)

	_, err = parseQuery(nil, 0)
	require.ErrorIs(t, err, constants.ErrInvalidLimit)

	_, err = parseQuery(nil, 251)
	require.ErrorIs(t, err, constants.ErrInvalidLimit)
}

func TestSetConfigValue(t *testing.T) {
	t.Parallel()

	config := &Config{}

	require.NoError(t, setConfigValue(config, KeyOutput, "yaml"))
	require.NoError(t, setConfigValue(config, KeyNoColor, "true"))
	require.NoError(t, setConfigValue(config, KeyRetryMax, "5"))
	require.NoError(t, setConfigValue(config, KeyRequestsPerSecond, "2.5"))
	require.NoError(t, setConfigValue(config, KeyCache, "nats"))
	require.NoError(t, setConfigValue(config, KeyNATSURL, "nats://nats:4222"))

	assert.Equal(t, &Config{
		Output:            "yaml",
		NoColor:           true,
		RetryMax:          5,
		RequestsPerSecond: 2.5,
		Cache:             "nats",
		NATSURL:           "nats://nats:4222",
	}, config)

	require.ErrorIs(t, setConfigValue(config, KeyOutput, "xml"), constants.ErrUnknownFormat)
	require.ErrorIs(t, setConfigValue(config, KeyRetryMax, "many"), constants.ErrInvalidConfigValue)
	require.ErrorIs(t, setConfigValue(config, KeyRequestsPerSecond, "-1"), constants.ErrInvalidConfigValue)
	require.ErrorIs(t, setConfigValue(config, KeyCache, "redis"), recharge.ErrUnsupportedCacheType)
	require.ErrorIs(t, setConfigValue(config, KeyAccessToken, "secret"), constants.ErrUnknownConfigKey)
}

func TestMaskSecret(t *testing.T) {
	t.Parallel()

	assert.Empty(t, maskSecret(""))
	assert.Equal(t, "***", maskSecret("short"))
	assert.Equal(t, "***cdef", maskSecret("sk_live_0123456789abcdef"))
}

func TestRenderObjects(t *testing.T) {
	t.Parallel()

	objects := []recharge.Object{
		{"id": float64(1), "status": "queued", "total_price": "10.00"},
		{"id": float64(2), "status": "skipped"},
	}

	var buffer bytes.Buffer

	require.NoError(t, renderObjects(&buffer, constants.FormatJSON, objects, []string{"id"}))

	var decoded []map[string]interface{}

	require.NoError(t, json.Unmarshal(buffer.Bytes(), &decoded))
	assert.Len(t, decoded, 2)

	buffer.Reset()
	require.NoError(t, renderObjects(&buffer, constants.FormatYAML, objects[:1], []string{"id"}))
	assert.Contains(t, buffer.String(), "total_price: \"10.00\"")

	buffer.Reset()
	require.NoError(t, renderObjects(&buffer, constants.FormatTable, objects, []string{"id", "total_price"}))
	assert.Contains(t, buffer.String(), "TOTAL PRICE")
	assert.Contains(t, buffer.String(), "10.00")
	assert.Contains(t, buffer.String(), constants.NotAvailable)

	buffer.Reset()
	require.NoError(t, renderObjects(&buffer, constants.FormatJSON, nil, []string{"id"}))
	assert.Equal(t, "[]\n", buffer.String())

	require.ErrorIs(t, renderObjects(&buffer, "xml", objects, nil), constants.ErrUnknownFormat)
}

func TestWriteJSONLines(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "charges.jsonl")
	objects := []recharge.Object{{"id": float64(1)}, {"id": float64(2)}, {"id": float64(3)}}

	written := 0

	require.NoError(t, writeJSONLines(path, objects, func() { written++ }))
	assert.Equal(t, 3, written)

	file, err := os.Open(path)
	require.NoError(t, err)

	defer func() { _ = file.Close() }()

	info, err := file.Stat()
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(constants.ExportFilePerm), info.Mode().Perm())

	var lines []string

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}

	assert.Equal(t, []string{`{"id":1}`, `{"id":2}`, `{"id":3}`}, lines)
}

func TestFindResourceGroup(t *testing.T) {
	t.Parallel()

	group, err := findResourceGroup("subs")
	require.NoError(t, err)
	assert.Equal(t, "subscriptions", group.name)

	_, err = findResourceGroup("planets")
	require.ErrorIs(t, err, constants.ErrUnknownResource)
	assert.True(t, strings.Contains(err.Error(), "webhooks"))
}

func TestPromptToken(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer

	token, err := promptToken(strings.NewReader("  sk_test_token \n"), &out)
	require.NoError(t, err)
	assert.Equal(t, "sk_test_token", token)

	token, err = promptToken(strings.NewReader("no-newline"), &out)
	require.NoError(t, err)
	assert.Equal(t, "no-newline", token)
}
