//go:build unit

package api_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func jwtDuration(t *testing.T, s string) time.Duration {
	t.Helper()
	d, err := time.ParseDuration(s)
	require.NoError(t, err)
	return d
}
