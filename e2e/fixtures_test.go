//go:build e2e && unix

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// CreateTestWorkspace creates a temporary directory used as $HOME for the app
func (tf *TUITestFramework) CreateTestWorkspace() (string, error) {
	tmpDir := tf.t.TempDir()
	tf.workspace = tmpDir
	return tmpDir, nil
}

// WriteCatalog writes a terms file into the workspace. Each line is
// "term" or "term\tdetail".
func (tf *TUITestFramework) WriteCatalog(name string, lines ...string) (string, error) {
	return tf.writeFile(name, strings.Join(lines, "\n")+"\n")
}

// WriteConfig writes a config file into the workspace
func (tf *TUITestFramework) WriteConfig(content string) (string, error) {
	return tf.writeFile("config.toml", content)
}

func (tf *TUITestFramework) writeFile(name, content string) (string, error) {
	if tf.workspace == "" {
		return "", fmt.Errorf("workspace not created")
	}
	path := filepath.Join(tf.workspace, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", name, err)
	}
	return path, nil
}
