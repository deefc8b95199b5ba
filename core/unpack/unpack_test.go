package unpack_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"naval-tables/core/unpack"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// fakeRunner writes the decoded sibling and records peak concurrency.
type fakeRunner struct {
	mu      sync.Mutex
	calls   []string
	active  atomic.Int32
	peak    atomic.Int32
	failFor string
}

func (f *fakeRunner) Run(ctx context.Context, rawPath string) error {
	n := f.active.Add(1)
	defer f.active.Add(-1)
	for {
		p := f.peak.Load()
		if n <= p || f.peak.CompareAndSwap(p, n) {
			break
		}
	}
	time.Sleep(10 * time.Millisecond)

	f.mu.Lock()
	f.calls = append(f.calls, filepath.Base(rawPath))
	f.mu.Unlock()

	if filepath.Base(rawPath) == f.failFor {
		return errors.New("decoder crashed")
	}
	return os.WriteFile(rawPath+"x", []byte("{}"), 0644)
}

func touch(t *testing.T, dir string, names ...string) {
	t.Helper()
	for _, n := range names {
		require.NoError(t, os.WriteFile(filepath.Join(dir, n), nil, 0644))
	}
}

func TestEnsureDecoded(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "a.blk", "b.blk", "c.blk", "c.blkx", "readme.txt")

	runner := &fakeRunner{}
	inv := unpack.NewInvoker(runner, 5, zap.NewNop())

	summary, err := inv.EnsureDecoded(context.Background(), dir)
	require.NoError(t, err)

	assert.Equal(t, unpack.Summary{Found: 3, Skipped: 1, Invoked: 2}, summary)
	sort.Strings(runner.calls)
	assert.Equal(t, []string{"a.blk", "b.blk"}, runner.calls)
	assert.FileExists(t, filepath.Join(dir, "a.blkx"))
}

func TestEnsureDecoded_Idempotent(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "a.blk")

	runner := &fakeRunner{}
	inv := unpack.NewInvoker(runner, 5, zap.NewNop())

	_, err := inv.EnsureDecoded(context.Background(), dir)
	require.NoError(t, err)
	summary, err := inv.EnsureDecoded(context.Background(), dir)
	require.NoError(t, err)

	assert.Equal(t, 1, summary.Skipped)
	assert.Len(t, runner.calls, 1)
}

func TestEnsureDecoded_BoundedConcurrency(t *testing.T) {
	dir := t.TempDir()
	for i := 0; i < 20; i++ {
		touch(t, dir, string(rune('a'+i))+".blk")
	}

	runner := &fakeRunner{}
	inv := unpack.NewInvoker(runner, 5, zap.NewNop())

	summary, err := inv.EnsureDecoded(context.Background(), dir)
	require.NoError(t, err)
	assert.Equal(t, 20, summary.Invoked)
	assert.LessOrEqual(t, runner.peak.Load(), int32(5))
}

func TestEnsureDecoded_FailuresAreNotPropagated(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "bad.blk", "good.blk")

	runner := &fakeRunner{failFor: "bad.blk"}
	inv := unpack.NewInvoker(runner, 0, zap.NewNop())

	summary, err := inv.EnsureDecoded(context.Background(), dir)
	require.NoError(t, err)
	assert.Equal(t, 2, summary.Invoked)
	assert.Equal(t, 1, summary.Failed)
	assert.FileExists(t, filepath.Join(dir, "good.blkx"))
}

func TestEnsureDecoded_MissingDir(t *testing.T) {
	inv := unpack.NewInvoker(&fakeRunner{}, 5, zap.NewNop())
	_, err := inv.EnsureDecoded(context.Background(), filepath.Join(t.TempDir(), "nope"))
	assert.Error(t, err)
}

func TestNewCommandRunner(t *testing.T) {
	r, err := unpack.NewCommandRunner("python blk_unpack_ng.py")
	require.NoError(t, err)
	assert.Equal(t, "python", r.Name)
	assert.Equal(t, []string{"blk_unpack_ng.py"}, r.Args)

	_, err = unpack.NewCommandRunner("   ")
	assert.Error(t, err)
}
