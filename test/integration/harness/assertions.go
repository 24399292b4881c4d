package harness

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// describe renders a result for failure messages
func describe(r CommandResult) string {
	return fmt.Sprintf("exit %d\nstdout:\n%s\nstderr:\n%s", r.ExitCode, r.Stdout, r.Stderr)
}

// AssertSuccess fails unless the command exited 0
func AssertSuccess(tb testing.TB, r CommandResult) {
	tb.Helper()
	assert.Zero(tb, r.ExitCode, describe(r))
}

// AssertFailure fails unless the command exited non-zero
func AssertFailure(tb testing.TB, r CommandResult) {
	tb.Helper()
	assert.NotZero(tb, r.ExitCode, describe(r))
}

// AssertExitCode fails unless the command exited with want
func AssertExitCode(tb testing.TB, r CommandResult, want int) {
	tb.Helper()
	assert.Equal(tb, want, r.ExitCode, describe(r))
}

// AssertStdoutContains fails unless stdout contains want
func AssertStdoutContains(tb testing.TB, r CommandResult, want string) {
	tb.Helper()
	assert.Contains(tb, r.Stdout, want, describe(r))
}

// AssertStderrContains fails unless stderr contains want
func AssertStderrContains(tb testing.TB, r CommandResult, want string) {
	tb.Helper()
	assert.Contains(tb, r.Stderr, want, describe(r))
}

// AssertValidJSON decodes stdout into target
func AssertValidJSON(tb testing.TB, r CommandResult, target any) {
	tb.Helper()
	require.NoError(tb, json.Unmarshal([]byte(r.Stdout), target), describe(r))
}

// Progress is the part of 'sessions progress --format json' the tests check
type Progress struct {
	GantryCompleted int `json:"gantryCompleted"`
	TotalCompleted  int `json:"totalCompleted"`
	TotalPositions  int `json:"totalPositions"`
}

// AssertProgress checks the completed counts printed by
// 'sessions progress --format json'
func AssertProgress(tb testing.TB, r CommandResult, gantryCompleted, totalCompleted int) Progress {
	tb.Helper()
	AssertSuccess(tb, r)
	var p Progress
	AssertValidJSON(tb, r, &p)
	assert.Equal(tb, gantryCompleted, p.GantryCompleted, "gantry positions completed")
	assert.Equal(tb, totalCompleted, p.TotalCompleted, "positions completed")
	return p
}

// ReadExportCSV parses the single {siteCode}_*.csv file in dir
func ReadExportCSV(tb testing.TB, dir, siteCode string) [][]string {
	tb.Helper()
	files, err := filepath.Glob(filepath.Join(dir, siteCode+"_*.csv"))
	require.NoError(tb, err)
	require.Len(tb, files, 1, "exports in %s", dir)

	f, err := os.Open(files[0])
	require.NoError(tb, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(tb, err, "export is not valid CSV")
	return rows
}
