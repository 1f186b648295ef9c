package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"empdir/internal/config"
)

func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestSeedCommandPrintsDefaultSeed(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "missing.toml")

	out, _, err := execute(t, "", "seed", "--config", cfgPath)
	require.NoError(t, err)

	assert.Equal(t, 5, strings.Count(out, "[[employee]]"))
	assert.Contains(t, out, "Aarav Sharma")
}

func TestSeedCommandReportsSkipped(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "missing.toml")
	seedPath := writeFile(t, "seed.toml", `
[[employee]]
id = 1
name = "First"

[[employee]]
id = 1
name = "Again"
`)

	out, errOut, err := execute(t, "", "seed", "--config", cfgPath, "--seed", seedPath)
	require.NoError(t, err)

	assert.Equal(t, 1, strings.Count(out, "[[employee]]"))
	assert.Contains(t, out, "First")
	assert.Contains(t, errOut, "skipped record 1 (id 1)")
}

func TestSeedCommandMissingFile(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "missing.toml")

	_, _, err := execute(t, "", "seed", "--config", cfgPath, "--seed", "/nonexistent/seed.toml")
	assert.Error(t, err)
}

func TestSeedFlagOverridesConfigFile(t *testing.T) {
	fromConfig := writeFile(t, "config-seed.toml", `
[[employee]]
id = 1
name = "From Config"
`)
	fromFlag := writeFile(t, "flag-seed.toml", `
[[employee]]
id = 2
name = "From Flag"
`)
	cfgPath := writeFile(t, "config.toml", "seed_file = \""+fromConfig+"\"\n")

	out, _, err := execute(t, "", "seed", "--config", cfgPath)
	require.NoError(t, err)
	assert.Contains(t, out, "From Config")

	out, _, err = execute(t, "", "seed", "--config", cfgPath, "--seed", fromFlag)
	require.NoError(t, err)
	assert.Contains(t, out, "From Flag")
	assert.NotContains(t, out, "From Config")
}

func TestConfigInit(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "nested", "config.toml")

	out, _, err := execute(t, "", "config", "init", "--config", cfgPath)
	require.NoError(t, err)
	assert.Contains(t, out, cfgPath)

	cfg, err := config.NewConfigServiceAt(cfgPath).LoadFromPath(cfgPath)
	require.NoError(t, err)
	assert.Equal(t, config.DefaultConfig(), cfg)

	_, _, err = execute(t, "", "config", "init", "--config", cfgPath)
	assert.ErrorContains(t, err, "already exists")

	_, _, err = execute(t, "", "config", "init", "--config", cfgPath, "--force")
	assert.NoError(t, err)
}

func TestConfigPath(t *testing.T) {
	out, _, err := execute(t, "", "config", "path", "--config", "/tmp/x.toml")
	require.NoError(t, err)
	assert.Equal(t, "/tmp/x.toml\n", out)
}

func TestPlainRunDrivesConsole(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "missing.toml")
	seedPath := writeFile(t, "seed.toml", `
[[employee]]
id = 10
name = "Grace"
`)

	out, _, err := execute(t, "search grace\ndelete 10\ny\nlist\nquit\n",
		"--plain", "--config", cfgPath, "--seed", seedPath, "--log", "")
	require.NoError(t, err)

	assert.Contains(t, out, "Search Results")
	assert.Contains(t, out, "Employee deleted successfully!")
	assert.Contains(t, out, "(none)")
}

func TestInvalidLogLevel(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "missing.toml")

	_, _, err := execute(t, "", "--plain", "--config", cfgPath, "--log", "", "--log-level", "loud")
	assert.Error(t, err)
}
