package auth_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/recharge-client/internal/auth"
	"github.com/fivetwenty-io/recharge-client/pkg/recharge"
)

func TestNewSession(t *testing.T) {
	t.Parallel()

	t.Run("requires a token", func(t *testing.T) {
		t.Parallel()

		_, err := auth.NewSession("")
		require.ErrorIs(t, err, auth.ErrAccessTokenRequired)
	})

	t.Run("defaults", func(t *testing.T) {
		t.Parallel()

		session, err := auth.NewSession("secret-token")
		require.NoError(t, err)
		assert.Equal(t, recharge.DefaultVersion, session.Version())
		assert.Equal(t, "secret-token", session.AccessToken())
		assert.NotContains(t, session.String(), "secret-token")
	})

	t.Run("options", func(t *testing.T) {
		t.Parallel()

		session, err := auth.NewSession("secret-token",
			auth.WithSessionUserAgent("my-agent"),
			auth.WithSessionVersion(recharge.Version202101))
		require.NoError(t, err)

		headers := session.Headers("")
		assert.Equal(t, "my-agent", headers.Get("User-Agent"))
		assert.Equal(t, "2021-01", headers.Get("X-Recharge-Version"))
	})
}

func TestSession_Headers(t *testing.T) {
	t.Parallel()

	session, err := auth.NewSession("secret-token")
	require.NoError(t, err)

	headers := session.Headers(recharge.Version202101)
	assert.Equal(t, "application/json", headers.Get("Accept"))
	assert.Equal(t, "application/json", headers.Get("Content-Type"))
	assert.Equal(t, "secret-token", headers.Get("X-Recharge-Access-Token"))
	assert.Equal(t, "2021-01", headers.Get("X-Recharge-Version"))
	assert.Equal(t, auth.DefaultUserAgent, headers.Get("User-Agent"))

	// Every call returns an independent header set.
	headers.Set("X-Custom", "value")
	assert.Empty(t, session.Headers("").Get("X-Custom"))
	assert.Equal(t, "2021-11", session.Headers("").Get("X-Recharge-Version"))
}

func TestSession_SetVersion(t *testing.T) {
	t.Parallel()

	session, err := auth.NewSession("secret-token")
	require.NoError(t, err)

	require.NoError(t, session.SetVersion(recharge.Version202101))
	assert.Equal(t, recharge.Version202101, session.Version())

	err = session.SetVersion("2020-01")
	require.ErrorIs(t, err, recharge.ErrUnknownVersion)
	assert.Equal(t, recharge.Version202101, session.Version())
}

func TestSession_ConcurrentVersionChanges(t *testing.T) {
	t.Parallel()

	session, err := auth.NewSession("secret-token")
	require.NoError(t, err)

	var wg sync.WaitGroup

	for i := range 50 {
		wg.Add(1)

		go func(i int) {
			defer wg.Done()

			version := recharge.Version202101
			if i%2 == 0 {
				version = recharge.Version202111
			}

			_ = session.SetVersion(version)

			// An explicit version is never affected by the session default.
			assert.Equal(t, string(version), session.Headers(version).Get("X-Recharge-Version"))
		}(i)
	}

	wg.Wait()
}
