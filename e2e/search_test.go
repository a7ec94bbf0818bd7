//go:build e2e && unix

package main

import (
	"testing"

	"github.com/stretchr/testify/require"
)

var cities = []string{
	"# test catalog",
	"Berlin\tGermany",
	"Bern\tSwitzerland",
	"Lisbon\tPortugal",
}

func startWithCatalog(t *testing.T, tf *TUITestFramework, args ...string) {
	t.Helper()
	_, err := tf.CreateTestWorkspace()
	require.NoError(t, err, "Failed to create test workspace")

	catalogPath, err := tf.WriteCatalog("cities.txt", cities...)
	require.NoError(t, err, "Failed to write catalog")

	require.NoError(t, tf.StartApp(append([]string{"--catalog", catalogPath}, args...)...), "Failed to start app")
	require.True(t, tf.Ready(), "Should receive ready signal")
	require.True(t, tf.SeePlain("tuisearch"), "Should show the title")
	require.True(t, tf.SeePlain("3 terms"), "Should load the catalog")
}

func TestSearchSelectsResult(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()
	startWithCatalog(t, tf)

	require.NoError(t, tf.Search())
	require.True(t, tf.SeePlain("Cancel"), "Cancel button shows while editing")

	require.NoError(t, tf.Type("lis"))
	require.True(t, tf.SeePlain("Lisbon  Portugal"), "Should list the matching term")
	require.True(t, tf.SeePlain(`1 match for "lis"`), "Should count the matches")

	require.NoError(t, tf.Down())
	require.NoError(t, tf.Enter())
	if !tf.SeePlain("Selected Lisbon (Portugal) from result") {
		tf.DumpTailOnFail(t, "search-select", 4096)
		t.Fatal("Should report the selection")
	}
}

func TestCommitTypedText(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()
	startWithCatalog(t, tf)

	require.NoError(t, tf.Search())
	require.NoError(t, tf.Type("nowhere"))
	require.NoError(t, tf.Enter())
	require.True(t, tf.SeePlain(`Searched for "nowhere" from keyboard`), "Should commit the typed text")
}

func TestCancelSearch(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()
	startWithCatalog(t, tf)

	require.NoError(t, tf.Search())
	require.NoError(t, tf.Type("ber"))
	require.True(t, tf.SeePlain("Bern  Switzerland"))

	require.NoError(t, tf.Cancel())
	require.True(t, tf.SeePlain("Search cancelled"), "Should report the cancel")
}

func TestRecentsAfterSelection(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()
	startWithCatalog(t, tf)

	require.NoError(t, tf.Search())
	require.NoError(t, tf.Type("berl"))
	require.True(t, tf.SeePlain("Berlin  Germany"))
	require.NoError(t, tf.Down())
	require.NoError(t, tf.Enter())
	require.True(t, tf.SeePlain("1 recent"), "Header should count the recent search")

	require.NoError(t, tf.Search())
	require.True(t, tf.SeePlain("Recents"), "Recents section should show on the next search")
}
