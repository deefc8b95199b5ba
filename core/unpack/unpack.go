package unpack

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"sync/atomic"

	"naval-tables/core/blk"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// DefaultWorkers is the number of decoder processes allowed to run concurrently.
const DefaultWorkers = 5

// Runner runs the decoder for one raw file.
type Runner interface {
	Run(ctx context.Context, rawPath string) error
}

// CommandRunner runs an external command with the raw path appended as last argument.
type CommandRunner struct {
	Name string
	Args []string
}

// NewCommandRunner splits a command line like "python blk_unpack_ng.py" into a runner.
func NewCommandRunner(command string) (*CommandRunner, error) {
	fields := strings.Fields(command)
	if len(fields) == 0 {
		return nil, fmt.Errorf("empty decoder command")
	}
	return &CommandRunner{Name: fields[0], Args: fields[1:]}, nil
}

// Run executes the decoder. Output is discarded.
func (r *CommandRunner) Run(ctx context.Context, rawPath string) error {
	args := append(append([]string{}, r.Args...), rawPath)
	return exec.CommandContext(ctx, r.Name, args...).Run()
}

// Summary counts what happened during EnsureDecoded.
type Summary struct {
	Found   int
	Skipped int
	Invoked int
	Failed  int
}

// Invoker decodes raw files through a Runner with bounded concurrency.
type Invoker struct {
	runner  Runner
	workers int
	logger  *zap.Logger
}

// NewInvoker creates an Invoker. workers <= 0 falls back to DefaultWorkers.
func NewInvoker(runner Runner, workers int, logger *zap.Logger) *Invoker {
	if workers <= 0 {
		workers = DefaultWorkers
	}
	return &Invoker{runner: runner, workers: workers, logger: logger}
}

// EnsureDecoded invokes the decoder for every raw file in dir lacking a decoded sibling.
// It only fails when dir cannot be listed.
func (i *Invoker) EnsureDecoded(ctx context.Context, dir string) (Summary, error) {
	raws, err := blk.Glob(dir, blk.RawExt)
	if err != nil {
		return Summary{}, fmt.Errorf("failed to list %s: %w", dir, err)
	}

	summary := Summary{Found: len(raws)}
	var invoked, failed atomic.Int64

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(i.workers)

	for _, raw := range raws {
		decoded := blk.DecodedPath(raw)
		if _, err := os.Stat(decoded); err == nil {
			summary.Skipped++
			continue
		}

		g.Go(func() error {
			i.logger.Info("Unpacking", zap.String("file", raw), zap.String("target", decoded))
			invoked.Add(1)
			if err := i.runner.Run(gctx, raw); err != nil {
				failed.Add(1)
				i.logger.Warn("Decoder failed", zap.String("file", raw), zap.Error(err))
			}
			return nil
		})
	}

	_ = g.Wait()

	summary.Invoked = int(invoked.Load())
	summary.Failed = int(failed.Load())
	return summary, nil
}
