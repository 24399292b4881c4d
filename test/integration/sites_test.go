package integration_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/fieldscan/test/integration/harness"
)

func TestSites(t *testing.T) {
	tests := []struct {
		name         string
		setup        func(t *testing.T, env *harness.TestEnvironment)
		args         []string
		argsFn       func(env *harness.TestEnvironment) []string
		wantExitCode int
		validate     func(t *testing.T, env *harness.TestEnvironment, result harness.CommandResult)
	}{
		{
			name:         "list without sites",
			args:         []string{"sites", "list"},
			wantExitCode: 0,
			validate: func(t *testing.T, env *harness.TestEnvironment, result harness.CommandResult) {
				harness.AssertStdoutContains(t, result, "No sites")
			},
		},
		{
			name:         "add site",
			args:         []string{"sites", "add", "l1234", "--name", "Leeds Central", "--brand", "Coral", "--address", "1 High Street", "-c", "5 over 1"},
			wantExitCode: 0,
			validate: func(t *testing.T, env *harness.TestEnvironment, result harness.CommandResult) {
				harness.AssertStdoutContains(t, result, "Site L1234 (Leeds Central) saved with 1 configuration(s)")

				list := harness.RunCommand(t, env, "sites", "list")
				harness.AssertSuccess(t, list)
				harness.AssertStdoutContains(t, list, "L1234")
				harness.AssertStdoutContains(t, list, "Coral")
			},
		},
		{
			name:         "add site with bad code fails",
			args:         []string{"sites", "add", "12345", "--name", "Nowhere", "--brand", "Coral", "--address", "x"},
			wantExitCode: 1,
			validate: func(t *testing.T, env *harness.TestEnvironment, result harness.CommandResult) {
				harness.AssertStderrContains(t, result, "code: Invalid format (e.g., L1234)")
			},
		},
		{
			name:         "show site by code",
			setup:        addSite,
			args:         []string{"sites", "show", "L1234", "--format", "json"},
			wantExitCode: 0,
			validate: func(t *testing.T, env *harness.TestEnvironment, result harness.CommandResult) {
				var out struct {
					Configurations []struct {
						ID             string `json:"id"`
						TotalPositions int    `json:"total_positions"`
					} `json:"configurations"`
					Fallback bool `json:"fallback"`
				}
				harness.AssertValidJSON(t, result, &out)
				require.Len(t, out.Configurations, 1)
				assert.Equal(t, "5-over-1-coral", out.Configurations[0].ID)
				assert.False(t, out.Fallback)
			},
		},
		{
			name:         "show unknown site fails",
			args:         []string{"sites", "show", "Z9999"},
			wantExitCode: 1,
			validate: func(t *testing.T, env *harness.TestEnvironment, result harness.CommandResult) {
				harness.AssertStderrContains(t, result, "site not found")
			},
		},
		{
			name: "import sites from yaml",
			setup: func(t *testing.T, env *harness.TestEnvironment) {
				env.WriteFile("sites.yaml", `sites:
  - name: Leeds Central
    code: L1234
    brand: Coral
    address: 1 High Street
    configurations:
      - name: 5 over 1
  - name: Broken
    code: BAD
    brand: Coral
    address: Nowhere
`)
			},
			argsFn: func(env *harness.TestEnvironment) []string {
				return []string{"sites", "import", filepath.Join(env.Home, "sites.yaml")}
			},
			wantExitCode: 0,
			validate: func(t *testing.T, env *harness.TestEnvironment, result harness.CommandResult) {
				harness.AssertStdoutContains(t, result, "Imported 1 site(s)")
				harness.AssertStdoutContains(t, result, "skipped BAD")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := harness.NewTestEnvironment(t)
			if tt.setup != nil {
				tt.setup(t, env)
			}

			args := tt.args
			if tt.argsFn != nil {
				args = tt.argsFn(env)
			}
			result := harness.RunCommand(t, env, args...)
			harness.AssertExitCode(t, result, tt.wantExitCode)

			if tt.validate != nil {
				tt.validate(t, env, result)
			}
		})
	}
}
