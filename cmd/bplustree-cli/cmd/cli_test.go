package cmd

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCLI(t *testing.T, dataFile string, args ...string) string {
	t.Helper()
	// pflag only assigns values present in args, so these must be reset by
	// hand between invocations of the same long-lived rootCmd.
	iterReverse = false
	iterFrom = ""
	rootCmd.SetArgs(append([]string{"--data-file", dataFile}, args...))

	r, w, err := os.Pipe()
	require.NoError(t, err)
	origStdout := os.Stdout
	os.Stdout = w
	defer func() { os.Stdout = origStdout }()

	runErr := rootCmd.Execute()

	w.Close()
	var buf bytes.Buffer
	_, _ = io.Copy(&buf, r)

	require.NoError(t, runErr, "command %v failed: %s", args, buf.String())
	return buf.String()
}

// runCLIExpectErr is runCLI's counterpart for commands expected to fail: it
// silences cobra's usage dump so a deliberate error doesn't clutter test
// output.
func runCLIExpectErr(t *testing.T, dataFile string, args ...string) error {
	t.Helper()
	iterReverse = false
	iterFrom = ""
	rootCmd.SetArgs(append([]string{"--data-file", dataFile}, args...))

	rootCmd.SilenceUsage = true
	rootCmd.SilenceErrors = true
	defer func() {
		rootCmd.SilenceUsage = false
		rootCmd.SilenceErrors = false
	}()

	return rootCmd.Execute()
}

func TestCLIPutGet(t *testing.T) {
	dataFile := filepath.Join(t.TempDir(), "tree.dat")

	runCLI(t, dataFile, "put", "alpha", "1")
	runCLI(t, dataFile, "put", "beta", "2")

	out := runCLI(t, dataFile, "get", "alpha")
	assert.Equal(t, "1\n", out)

	out = runCLI(t, dataFile, "get", "beta")
	assert.Equal(t, "2\n", out)
}

func TestCLIDelete(t *testing.T) {
	dataFile := filepath.Join(t.TempDir(), "tree.dat")

	runCLI(t, dataFile, "put", "k", "v")
	runCLI(t, dataFile, "delete", "k")

	err := runCLIExpectErr(t, dataFile, "get", "k")
	assert.Error(t, err, "key should be gone after delete")
}

func TestCLIIterAscending(t *testing.T) {
	dataFile := filepath.Join(t.TempDir(), "tree.dat")

	runCLI(t, dataFile, "put", "b", "2")
	runCLI(t, dataFile, "put", "a", "1")
	runCLI(t, dataFile, "put", "c", "3")

	out := runCLI(t, dataFile, "iter")
	assert.Equal(t, "a\t1\nb\t2\nc\t3\n", out)
}

func TestCLIIterReverse(t *testing.T) {
	dataFile := filepath.Join(t.TempDir(), "tree.dat")

	runCLI(t, dataFile, "put", "a", "1")
	runCLI(t, dataFile, "put", "b", "2")
	runCLI(t, dataFile, "put", "c", "3")

	out := runCLI(t, dataFile, "iter", "--reverse")
	assert.Equal(t, "c\t3\nb\t2\na\t1\n", out)
}

func TestCLISaveAndLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	original := filepath.Join(dir, "tree.dat")
	backup := filepath.Join(dir, "backup.dat")
	restored := filepath.Join(dir, "restored.dat")

	runCLI(t, original, "put", "a", "1")
	runCLI(t, original, "put", "b", "2")

	runCLI(t, original, "save", backup)
	runCLI(t, restored, "load", backup)

	out := runCLI(t, restored, "iter")
	assert.Equal(t, "a\t1\nb\t2\n", out)
}
