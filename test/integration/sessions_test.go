package integration_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/fieldscan/test/integration/harness"
)

func TestSessionsStart(t *testing.T) {
	env := harness.NewTestEnvironment(t)
	addSite(t, env)

	result := harness.RunCommand(t, env, "sessions", "start", "L1234", "--notes", "back office")
	harness.AssertSuccess(t, result)
	harness.AssertStdoutContains(t, result, "started at Leeds Central (L1234), 5 over 1")

	list := harness.RunCommand(t, env, "sessions", "list")
	harness.AssertSuccess(t, list)
	harness.AssertStdoutContains(t, list, "active")
	harness.AssertStdoutContains(t, list, "0/")
}

func TestSessionsStart_UnknownSite(t *testing.T) {
	env := harness.NewTestEnvironment(t)

	result := harness.RunCommand(t, env, "sessions", "start", "L1234")
	harness.AssertFailure(t, result)
	harness.AssertStderrContains(t, result, "site not found")
}

func TestSessionsRecord(t *testing.T) {
	env := harness.NewTestEnvironment(t)
	id := startSession(t, env)

	result := recordPosition(t, env, id, "ctv-1", "--notes", "  loose bracket ")
	harness.AssertSuccess(t, result)
	harness.AssertStdoutContains(t, result, "CTV 1 recorded, 1/")

	result = recordPosition(t, env, id, "ctv-1")
	harness.AssertSuccess(t, result)
	harness.AssertStdoutContains(t, result, "CTV 1 replaced, 1/")

	view := harness.RunCommand(t, env, "sessions", "view", id, "--format", "json")
	harness.AssertSuccess(t, view)
	var session struct {
		ScanResults []struct {
			CaptureMethod string `json:"capture_method"`
			Notes         string `json:"notes"`
			PositionID    string `json:"position_id"`
			SerialNumber  string `json:"serial_number"`
		} `json:"scan_results"`
	}
	harness.AssertValidJSON(t, view, &session)
	require.Len(t, session.ScanResults, 1)
	assert.Equal(t, "ctv-1", session.ScanResults[0].PositionID)
	assert.Equal(t, "manual", session.ScanResults[0].CaptureMethod)
	assert.Equal(t, "AU0A1234567890", session.ScanResults[0].SerialNumber)
}

func TestSessionsRecord_SimulatedScan(t *testing.T) {
	env := harness.NewTestEnvironment(t)
	id := startSession(t, env)

	result := harness.RunCommand(t, env, "sessions", "record", id, "ctv-2", "--scan")
	harness.AssertSuccess(t, result)
	harness.AssertStdoutContains(t, result, "CTV 2 recorded")
}

func TestSessionsRecord_InvalidValuesRefused(t *testing.T) {
	env := harness.NewTestEnvironment(t)
	id := startSession(t, env)

	result := harness.RunCommand(t, env, "sessions", "record", id, "ctv-1",
		"--model", "43BDL4550D/00", "--serial", "AU0A1234567890", "--asset", "12")
	harness.AssertFailure(t, result)
	harness.AssertStderrContains(t, result, "Please ensure all data fields are valid")
}

func TestSessionsRecord_UnknownPosition(t *testing.T) {
	env := harness.NewTestEnvironment(t)
	id := startSession(t, env)

	result := recordPosition(t, env, id, "nowhere-1")
	harness.AssertFailure(t, result)
	harness.AssertStderrContains(t, result, "position not in session layout")
}

func TestSessionsComplete(t *testing.T) {
	env := harness.NewTestEnvironment(t)
	id := startSession(t, env)

	result := harness.RunCommand(t, env, "sessions", "complete", id)
	harness.AssertFailure(t, result)
	harness.AssertStderrContains(t, result, "session has incomplete positions")

	result = harness.RunCommand(t, env, "sessions", "complete", "--force", id)
	harness.AssertSuccess(t, result)
	harness.AssertStdoutContains(t, result, "completed")

	list := harness.RunCommand(t, env, "sessions", "list", "--status", "completed")
	harness.AssertSuccess(t, list)
	harness.AssertStdoutContains(t, list, id)
}

func TestSessionsProgress(t *testing.T) {
	env := harness.NewTestEnvironment(t)
	id := startSession(t, env)
	harness.AssertSuccess(t, recordPosition(t, env, id, "ctv-1"))

	result := harness.RunCommand(t, env, "sessions", "progress", id, "--format", "json")
	harness.AssertSuccess(t, result)
	progress := harness.AssertProgress(t, result, 1, 1)
	assert.Greater(t, progress.TotalPositions, progress.TotalCompleted)
}

func TestOfflineRecordAndSync(t *testing.T) {
	env := harness.NewTestEnvironment(t)
	id := startSession(t, env)

	result := harness.RunOffline(t, env, "sessions", "record", id, "ctv-1",
		"--model", "43BDL4550D/00", "--serial", "AU0A1234567890", "--asset", "123456")
	harness.AssertSuccess(t, result)
	harness.AssertStdoutContains(t, result, "offline, queued")

	status := harness.RunCommand(t, env, "sync", "--status")
	harness.AssertSuccess(t, status)
	harness.AssertStdoutContains(t, status, "1 update(s) queued")

	// Still forced offline: nothing replays
	result = harness.RunOffline(t, env, "sync")
	harness.AssertSuccess(t, result)
	harness.AssertStdoutContains(t, result, "Still offline, 1 update(s) remain queued")

	result = harness.RunCommand(t, env, "sync")
	harness.AssertSuccess(t, result)
	harness.AssertStdoutContains(t, result, "Applied 1 queued update(s), 0 remaining")

	progress := harness.RunCommand(t, env, "sessions", "progress", id, "--format", "json")
	harness.AssertSuccess(t, progress)
	harness.AssertProgress(t, progress, 1, 1)
}

func TestExport(t *testing.T) {
	env := harness.NewTestEnvironment(t)
	id := startSession(t, env)
	harness.AssertSuccess(t, recordPosition(t, env, id, "ctv-1"))

	result := harness.RunCommand(t, env, "export", id, "--columns", "position,serial_number")
	harness.AssertSuccess(t, result)
	harness.AssertStdoutContains(t, result, "Exported 1 result(s)")

	rows := harness.ReadExportCSV(t, env.ExportsPath(), "L1234")
	assert.Equal(t, [][]string{
		{"Position", "Serial_Number"},
		{"CTV 1", "AU0A1234567890"},
	}, rows)

	list := harness.RunCommand(t, env, "sessions", "list", "--status", "exported")
	harness.AssertSuccess(t, list)
	harness.AssertStdoutContains(t, list, id)
}

func TestExport_XLSXAndEmail(t *testing.T) {
	env := harness.NewTestEnvironment(t)
	id := startSession(t, env)
	harness.AssertSuccess(t, recordPosition(t, env, id, "ctv-1"))

	out := filepath.Join(env.Home, "out")
	result := harness.RunCommand(t, env, "export", id, "-f", "xlsx", "-o", out, "--no-mark-exported")
	harness.AssertSuccess(t, result)
	files, err := filepath.Glob(filepath.Join(out, "L1234_*.xlsx"))
	require.NoError(t, err)
	assert.Len(t, files, 1)

	email := harness.RunCommand(t, env, "export", id, "--email")
	harness.AssertSuccess(t, email)
	harness.AssertStdoutContains(t, email, "Subject: [L1234] Installation Report")

	list := harness.RunCommand(t, env, "sessions", "list", "--status", "active")
	harness.AssertSuccess(t, list)
	harness.AssertStdoutContains(t, list, id)
}

func TestTemplates(t *testing.T) {
	env := harness.NewTestEnvironment(t)

	result := harness.RunCommand(t, env, "templates", "save", "serials", "--columns", "serial_number", "--sort", "model")
	harness.AssertSuccess(t, result)
	harness.AssertStdoutContains(t, result, "Template 'serials' saved")

	list := harness.RunCommand(t, env, "templates", "list")
	harness.AssertSuccess(t, list)
	harness.AssertStdoutContains(t, list, "serials")
	harness.AssertStdoutContains(t, list, "model")
}
