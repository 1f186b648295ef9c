package logging

import (
	"os"
	"path/filepath"
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empdir.log")
	closer, err := Setup(path, "debug")
	require.NoError(t, err)
	t.Cleanup(func() { log.SetOutput(os.Stderr) })

	log.WithField("id", 7).Debug("hello from test")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "hello from test")
	assert.Contains(t, string(data), "id=7")
}

func TestSetupRejectsBadLevel(t *testing.T) {
	_, err := Setup("", "loud")
	require.Error(t, err)
}

func TestSetupWithoutPathDiscards(t *testing.T) {
	closer, err := Setup("", "info")
	require.NoError(t, err)
	t.Cleanup(func() { log.SetOutput(os.Stderr) })
	assert.NoError(t, closer.Close())
}
