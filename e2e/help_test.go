//go:build e2e && unix

package main

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestHelpCommand(t *testing.T) {
	t.Parallel()

	if _, err := os.Stat(binPath); os.IsNotExist(err) {
		t.Skip("Test binary not found - TestMain may not have run yet")
	}

	cmd := exec.Command(binPath, "--help")
	out, err := cmd.CombinedOutput()
	require.NoError(t, err, "Help command should run without error")

	output := string(out)
	require.Contains(t, output, "Usage")
	require.Contains(t, output, "--seed")
	require.Contains(t, output, "--plain")
}

func TestHelpPager(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	require.NoError(t, tf.StartWithSeed())
	require.True(t, tf.Ready())

	require.NoError(t, tf.SendKeys(KeyHelp))
	require.True(t, tf.SeePlain("Employee Database Help"), "help opens in the pager")

	// Leave the pager and make sure the UI comes back
	tf.Snapshot()
	require.NoError(t, tf.SendKeys(KeyQuit))
	time.Sleep(300 * time.Millisecond)
	require.True(t, tf.OutputContainsPlain("Employee List", 3*time.Second))
}

func TestPlainModeWithoutTerminal(t *testing.T) {
	t.Parallel()

	if _, err := os.Stat(binPath); os.IsNotExist(err) {
		t.Skip("Test binary not found - TestMain may not have run yet")
	}

	dir := t.TempDir()
	cmd := exec.Command(binPath,
		"--config", filepath.Join(dir, "config.toml"),
		"--log", "",
	)
	cmd.Env = append(os.Environ(), "HOME="+dir, "XDG_CONFIG_HOME="+dir)
	cmd.Stdin = strings.NewReader("search sharma\nquit\n")

	// Stdout is a pipe here, so the console frontend is used
	out, err := cmd.CombinedOutput()
	require.NoError(t, err)
	require.Contains(t, string(out), "Search Results")
	require.Contains(t, string(out), "Aarav Sharma")
}
