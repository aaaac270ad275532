//go:build e2e

package e2e_test

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"
	"time"

	"github.com/rogpeppe/go-internal/testscript"
)

var stampBinary string

func TestMain(m *testing.M) {
	tmpDir, err := os.MkdirTemp("", "stamp-e2e-*")
	if err != nil {
		panic(err)
	}

	stampBinary = filepath.Join(tmpDir, "stamp")

	//nolint:gosec // Building binary with static arguments, not user input
	cmd := exec.Command("go", "build", "-o", stampBinary, "./cmd/stamp")
	cmd.Dir = ".."
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		panic("failed to build stamp binary: " + err.Error())
	}

	exitCode := m.Run()

	_ = os.RemoveAll(tmpDir)

	os.Exit(exitCode)
}

func TestScripts(t *testing.T) {
	testscript.Run(t, testscript.Params{
		Dir:   "testdata",
		Setup: setupE2E,
		Cmds: map[string]func(ts *testscript.TestScript, neg bool, args []string){
			"mtime": cmdMtime,
		},
	})
}

func setupE2E(env *testscript.Env) error {
	binDir := filepath.Dir(stampBinary)
	currentPath := env.Getenv("PATH")
	env.Setenv("PATH", binDir+string(os.PathListSeparator)+currentPath)
	return nil
}

// cmdMtime backdates a file's modification time by the given duration, so
// scripts can age archives past the retention window.
func cmdMtime(ts *testscript.TestScript, neg bool, args []string) {
	if neg {
		ts.Fatalf("unsupported: ! mtime")
	}
	if len(args) != 2 {
		ts.Fatalf("usage: mtime age file")
	}

	age, err := time.ParseDuration(args[0])
	ts.Check(err)

	when := time.Now().Add(-age)
	ts.Check(os.Chtimes(ts.MkAbs(args[1]), when, when))
}
