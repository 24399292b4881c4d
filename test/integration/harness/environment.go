package harness

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// TestEnvironment is an isolated FIELDSCAN_HOME for one test
type TestEnvironment struct {
	Home string
	tb   testing.TB
}

// NewTestEnvironment creates a FIELDSCAN_HOME removed when the test ends
func NewTestEnvironment(tb testing.TB) *TestEnvironment {
	tb.Helper()
	return &TestEnvironment{Home: tb.TempDir(), tb: tb}
}

// Environ is the process environment without any FIELDSCAN_* setting of
// the developer's shell, pointed at the test home with debug logging off
func (e *TestEnvironment) Environ() []string {
	env := make([]string, 0, len(os.Environ())+2)
	for _, kv := range os.Environ() {
		if strings.HasPrefix(kv, "FIELDSCAN_") {
			continue
		}
		env = append(env, kv)
	}
	return append(env, "FIELDSCAN_HOME="+e.Home, "FIELDSCAN_DEBUG=")
}

// ExportsPath is the default export directory
func (e *TestEnvironment) ExportsPath() string {
	return filepath.Join(e.Home, "exports")
}

// SettingsPath is the settings.json of the test home
func (e *TestEnvironment) SettingsPath() string {
	return filepath.Join(e.Home, "settings.json")
}

// WriteFile writes name under the test home and returns its path
func (e *TestEnvironment) WriteFile(name, content string) string {
	e.tb.Helper()
	path := filepath.Join(e.Home, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		e.tb.Fatalf("write %s: %v", name, err)
	}
	return path
}
