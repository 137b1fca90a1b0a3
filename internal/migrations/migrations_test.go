package migrations

import (
	"io/fs"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrationsHaveUpAndDown(t *testing.T) {
	names, err := fs.Glob(FS, "*.sql")
	require.NoError(t, err)
	require.Len(t, names, 3)

	for _, name := range names {
		t.Run(name, func(t *testing.T) {
			body, err := fs.ReadFile(FS, name)
			require.NoError(t, err)
			assert.Contains(t, string(body), "-- +goose Up")
			assert.Contains(t, string(body), "-- +goose Down")
			assert.True(t, strings.HasPrefix(name, "0000"))
		})
	}
}
