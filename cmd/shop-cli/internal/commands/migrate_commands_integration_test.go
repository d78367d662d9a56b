//go:build integration
// +build integration

package commands

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/Mumbi286/DukaYetu/internal/pkg/config"
	"github.com/Mumbi286/DukaYetu/internal/pkg/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunMigrate_Idempotent(t *testing.T) {
	log, _ := testutil.NewBufferLogger(t)

	settings, err := config.DatabaseSettingsFromURL("sqlite:///" + filepath.Join(t.TempDir(), "shopapp.db"))
	require.NoError(t, err)

	var before bytes.Buffer
	require.NoError(t, runMigrate(&before, settings, true, log))
	assert.Contains(t, before.String(), "missing")
	assert.NotContains(t, before.String(), "present")

	for i := 0; i < 2; i++ {
		var out bytes.Buffer
		require.NoError(t, runMigrate(&out, settings, false, log))
		assert.NotContains(t, out.String(), "missing")
		assert.Contains(t, out.String(), "users")
	}
}
