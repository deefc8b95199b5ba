package cmd

import (
	"fmt"

	"naval-tables/core/config"
	"naval-tables/core/logger"
	"naval-tables/core/unpack"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// unpackCmd represents the unpack command
var unpackCmd = &cobra.Command{
	Use:   "unpack <dir>...",
	Short: "Decode raw .blk files that lack a .blkx sibling",
	Long:  `Runs the configured decoder (UNPACK_DECODER) on every raw file without a decoded sibling, with at most UNPACK_WORKERS processes at once.`,
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig(".")
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		logg, err := logger.New(&cfg.Log)
		if err != nil {
			return fmt.Errorf("failed to create logger: %w", err)
		}
		defer logg.Sync()

		invoker, err := newInvoker(cfg.Unpack, logg)
		if err != nil {
			return err
		}
		if invoker == nil {
			logg.Warn("Unpacking is disabled")
			return nil
		}

		for _, dir := range args {
			summary, err := invoker.EnsureDecoded(cmd.Context(), dir)
			if err != nil {
				return err
			}
			logg.Info("Unpack finished",
				zap.String("dir", dir),
				zap.Int("found", summary.Found),
				zap.Int("skipped", summary.Skipped),
				zap.Int("invoked", summary.Invoked),
				zap.Int("failed", summary.Failed),
			)
		}
		return nil
	},
}

// newInvoker builds the decoder pool from config. It returns nil when unpacking is disabled.
func newInvoker(cfg unpack.Config, logg *zap.Logger) (*unpack.Invoker, error) {
	if cfg.Disabled {
		return nil, nil
	}
	runner, err := unpack.NewCommandRunner(cfg.Decoder)
	if err != nil {
		return nil, fmt.Errorf("invalid decoder command: %w", err)
	}
	return unpack.NewInvoker(runner, cfg.Workers, logg), nil
}

func init() {
	RootCmd.AddCommand(unpackCmd)
}
