package harness

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sync"
	"testing"
	"time"
)

// commandTimeout bounds every CLI run; simulated scans finish well inside it
const commandTimeout = 30 * time.Second

// build is the fieldscan binary shared by the whole test run
var build struct {
	dir  string
	err  error
	once sync.Once
	path string
}

// CommandResult is the outcome of one CLI run
type CommandResult struct {
	ExitCode int
	Stderr   string
	Stdout   string
}

// BuildBinary compiles ./cmd once. Call it from TestMain.
func BuildBinary() (string, error) {
	build.once.Do(func() {
		root, err := moduleRoot()
		if err != nil {
			build.err = err
			return
		}
		build.dir, build.err = os.MkdirTemp("", "fieldscan-it-*")
		if build.err != nil {
			return
		}
		build.path = filepath.Join(build.dir, "fieldscan")

		cmd := exec.Command("go", "build", "-o", build.path, "./cmd")
		cmd.Dir = root
		out, err := cmd.CombinedOutput()
		if err != nil {
			build.err = fmt.Errorf("go build: %w\n%s", err, out)
		}
	})
	return build.path, build.err
}

// CleanupBinary removes the build directory. Call it from TestMain.
func CleanupBinary() {
	if build.dir != "" {
		_ = os.RemoveAll(build.dir)
	}
}

// RunCommand runs fieldscan with args inside env
func RunCommand(tb testing.TB, env *TestEnvironment, args ...string) CommandResult {
	tb.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, build.path, args...)
	cmd.Env = env.Environ()
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	result := CommandResult{}
	err := cmd.Run()

	var exitErr *exec.ExitError
	switch {
	case errors.Is(ctx.Err(), context.DeadlineExceeded):
		tb.Errorf("fieldscan %v timed out after %v", args, commandTimeout)
		result.ExitCode = -1
	case errors.As(err, &exitErr):
		result.ExitCode = exitErr.ExitCode()
	case err != nil:
		tb.Fatalf("fieldscan %v: %v", args, err)
	}

	result.Stdout = stdout.String()
	result.Stderr = stderr.String()
	return result
}

// RunOffline runs fieldscan with offline mode forced, so scan saves queue
func RunOffline(tb testing.TB, env *TestEnvironment, args ...string) CommandResult {
	tb.Helper()
	return RunCommand(tb, env, append([]string{"--offline"}, args...)...)
}

// moduleRoot walks up from the working directory to the go.mod
func moduleRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", errors.New("go.mod not found above the test directory")
		}
		dir = parent
	}
}
