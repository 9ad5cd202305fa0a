// Package testutil provides testing utilities for the object pool packages.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"
)

// TestLogger creates a debug-level logger that writes to the test output.
func TestLogger(t *testing.T) *zap.Logger {
	return zaptest.NewLogger(t, zaptest.Level(zap.DebugLevel))
}

// WriteFile writes content to name inside a per-test temporary directory and
// returns the full path.
func WriteFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
	return path
}

// Counter hands out sequential IDs. Factories use it to count constructions.
type Counter struct {
	n int
}

// Next returns the next ID, starting at 1.
func (c *Counter) Next() int {
	c.n++
	return c.n
}

// Count returns how many IDs were handed out.
func (c *Counter) Count() int {
	return c.n
}

// Tracked implements both lifecycle hooks and counts their calls.
type Tracked struct {
	ID         int
	PreGets    int
	PreReturns int
	GetErr     error
	ReturnErr  error
}

// PreGetFromPool records the call and returns GetErr.
func (t *Tracked) PreGetFromPool() error {
	t.PreGets++
	return t.GetErr
}

// PreReturnToPool records the call and returns ReturnErr.
func (t *Tracked) PreReturnToPool() error {
	t.PreReturns++
	return t.ReturnErr
}

// GetHooked implements only the pre-get hook.
type GetHooked struct {
	ID      int
	PreGets int
}

// PreGetFromPool records the call.
func (g *GetHooked) PreGetFromPool() error {
	g.PreGets++
	return nil
}

// ReturnHooked implements only the pre-return hook.
type ReturnHooked struct {
	ID         int
	PreReturns int
	ReturnErr  error
}

// PreReturnToPool records the call and returns ReturnErr.
func (r *ReturnHooked) PreReturnToPool() error {
	r.PreReturns++
	return r.ReturnErr
}

// Plain has no lifecycle hooks.
type Plain struct {
	ID int
}
