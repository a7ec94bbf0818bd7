//go:build e2e && unix

package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestHistoryPersistsAcrossRuns(t *testing.T) {
	t.Parallel()
	dbPath := filepath.Join(t.TempDir(), "history.db")

	first := NewTUITest(t)
	startWithCatalog(t, first, "--history", dbPath)

	require.NoError(t, first.Search())
	require.NoError(t, first.Type("bern"))
	require.True(t, first.SeePlain("Bern  Switzerland"))
	require.NoError(t, first.Down())
	require.NoError(t, first.Enter())
	require.True(t, first.SeePlain("1 recent"))

	done := first.Wait()
	require.NoError(t, first.Quit())
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("app did not exit after quit")
	}
	first.Cleanup()

	_, err := os.Stat(dbPath)
	require.NoError(t, err, "History database should be created")

	second := NewTUITest(t)
	defer second.Cleanup()
	startWithCatalog(t, second, "--history", dbPath)
	require.True(t, second.SeePlain("1 recent"), "Recent search should be loaded from the database")

	require.NoError(t, second.Search())
	require.True(t, second.SeePlain("Recents"))
}
