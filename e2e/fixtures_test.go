//go:build e2e && unix

package main

import (
	"os"
	"path/filepath"
)

const testSeed = `
[[employee]]
id = 1
name = "Alice Moreau"
age = 31
email = "alice@example.com"

[[employee]]
id = 2
name = "Bob Okafor"
age = 45

[[employee]]
id = 3
name = "Alicia Keane"
age = 28
email = "alicia@example.com"
`

// CreateTestWorkspace creates an isolated directory for config, seed and log files
func (tf *TUITestFramework) CreateTestWorkspace() (string, error) {
	tf.workspace = tf.t.TempDir()
	return tf.workspace, nil
}

// WriteSeed writes the standard three-employee seed into the workspace
func (tf *TUITestFramework) WriteSeed() (string, error) {
	path := filepath.Join(tf.workspace, "seed.toml")
	return path, os.WriteFile(path, []byte(testSeed), 0644)
}

// StartWithSeed creates a workspace and seed, then starts the full-screen UI
func (tf *TUITestFramework) StartWithSeed(extraArgs ...string) error {
	if _, err := tf.CreateTestWorkspace(); err != nil {
		return err
	}
	seedPath, err := tf.WriteSeed()
	if err != nil {
		return err
	}
	args := []string{
		"--config", filepath.Join(tf.workspace, "config.toml"),
		"--seed", seedPath,
		"--log", filepath.Join(tf.workspace, "empdir.log"),
		"--log-level", "debug",
	}
	return tf.StartApp(append(args, extraArgs...)...)
}
