package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/recharge-client/internal/auth"
	internalhttp "github.com/fivetwenty-io/recharge-client/internal/http"
	"github.com/fivetwenty-io/recharge-client/pkg/recharge"
)

// TestAccessToken is the credential used by NewTestClient.
const TestAccessToken = "test-access-token"

// NewTestClient creates a client for baseURL without introspecting the
// token. With no scopes every known scope is granted. Retries are disabled.
func NewTestClient(baseURL string, scopes ...recharge.Scope) *Client {
	if len(scopes) == 0 {
		scopes = recharge.AllScopes()
	}

	session, _ := auth.NewSession(TestAccessToken)

	transport := internalhttp.NewClient(baseURL, session,
		internalhttp.WithRetryConfig(0, time.Millisecond, time.Millisecond))

	client := &Client{
		transport: transport,
		session:   session,
		guard:     auth.NewScopeGuard(scopes),
		logger:    recharge.NoopLogger{},
	}

	// Initialize resource clients
	client.initializeResourceClients()

	return client
}

// TestOperation describes one resource call against a fake server.
type TestOperation struct {
	Name string

	// Expected request. Query is compared only when set, Body only when
	// non-nil.
	Method  string
	Path    string
	Query   string
	Version recharge.Version
	Body    map[string]interface{}

	// Fake response. StatusCode defaults to 200.
	StatusCode int
	Response   interface{}

	// Scopes granted to the client. Empty grants every scope.
	Scopes []recharge.Scope

	Call func(ctx context.Context, c *Client) (interface{}, error)

	// Want is compared with the result when non-nil.
	Want interface{}

	// WantErr is matched with errors.Is. NoRequest asserts that the call
	// failed before reaching the server.
	WantErr   error
	NoRequest bool
}

// RunOperationTests runs each operation against its own server.
func RunOperationTests(t *testing.T, tests []TestOperation) {
	t.Helper()

	for _, testCase := range tests {
		t.Run(testCase.Name, func(t *testing.T) {
			t.Parallel()

			var hits int32

			server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
				atomic.AddInt32(&hits, 1)

				if testCase.Method != "" {
					assert.Equal(t, testCase.Method, request.Method)
				}

				if testCase.Path != "" {
					assert.Equal(t, testCase.Path, request.URL.EscapedPath())
				}

				if testCase.Query != "" {
					assert.Equal(t, testCase.Query, request.URL.RawQuery)
				}

				if testCase.Version != "" {
					assert.Equal(t, string(testCase.Version), request.Header.Get("X-Recharge-Version"))
				}

				assert.Equal(t, TestAccessToken, request.Header.Get("X-Recharge-Access-Token"))

				if testCase.Body != nil {
					var body map[string]interface{}

					assert.NoError(t, json.NewDecoder(request.Body).Decode(&body))
					assert.Equal(t, testCase.Body, body)
				}

				status := testCase.StatusCode
				if status == 0 {
					status = http.StatusOK
				}

				writer.Header().Set("Content-Type", "application/json")
				writer.WriteHeader(status)

				if testCase.Response != nil {
					_ = json.NewEncoder(writer).Encode(testCase.Response)
				}
			}))
			defer server.Close()

			client := NewTestClient(server.URL, testCase.Scopes...)

			result, err := testCase.Call(context.Background(), client)

			if testCase.NoRequest {
				assert.Equal(t, int32(0), atomic.LoadInt32(&hits))
			}

			if testCase.WantErr != nil {
				require.ErrorIs(t, err, testCase.WantErr)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, int32(1), atomic.LoadInt32(&hits))

			if testCase.Want != nil {
				assert.Equal(t, testCase.Want, result)
			}
		})
	}
}
