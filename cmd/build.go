package cmd

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"time"
	"unicode/utf8"

	"naval-tables/core/config"
	"naval-tables/core/logger"
	"naval-tables/core/storage"
	"naval-tables/feature/render"
	"naval-tables/feature/weapons"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// buildCmd represents the build command
var buildCmd = &cobra.Command{
	Use:   "build <weapons-dir>",
	Short: "Build the naval weapon table",
	Long: `Decodes missing files, joins weapons with ships, translations and battle ratings,
and renders one row per shell. The table goes to stdout unless --output is set.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		startTime := time.Now()
		flags := cmd.Flags()

		cfg, err := config.LoadConfig(".")
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		logg, err := logger.New(&cfg.Log)
		if err != nil {
			return fmt.Errorf("failed to create logger: %w", err)
		}
		defer logg.Sync()

		formatName, _ := flags.GetString("format")
		format, err := render.ParseFormat(formatName)
		if err != nil {
			return err
		}
		output, _ := flags.GetString("output")
		if format == render.FormatXLSX && output == "" {
			return fmt.Errorf("xlsx output requires --output")
		}

		opts := render.DefaultOptions()
		opts.Format = format
		opts.WikiBaseURL = cfg.Table.WikiBaseURL
		opts.RawNames, _ = flags.GetBool("raw-names")
		opts.CSVCRLF, _ = flags.GetBool("csv-crlf")
		opts.ListSeparator, _ = flags.GetString("list-separator")
		delimiter, _ := flags.GetString("csv-delimiter")
		if utf8.RuneCountInString(delimiter) != 1 {
			return fmt.Errorf("--csv-delimiter must be a single character, got %q", delimiter)
		}
		opts.CSVDelimiter, _ = utf8.DecodeRuneInString(delimiter)

		filter := weapons.DefaultFilter()
		filter.EconomySuffix = cfg.Table.EconomySuffix
		filter.MinCaliberMm, _ = flags.GetFloat64("min-caliber")
		filter.MaxCaliberMm, _ = flags.GetFloat64("max-caliber")

		unitsDir, _ := flags.GetString("units-dir")

		invoker, err := newInvoker(cfg.Unpack, logg)
		if err != nil {
			return err
		}

		svc := weapons.NewService(cfg.Table, invoker, logg)
		records, err := svc.Run(cmd.Context(), weapons.Request{
			WeaponsDir: args[0],
			UnitsDir:   unitsDir,
			Filter:     filter,
		})
		if err != nil {
			return err
		}

		var buf bytes.Buffer
		if err := render.Render(&buf, records, opts); err != nil {
			return fmt.Errorf("failed to render table: %w", err)
		}

		if output == "" {
			if _, err := os.Stdout.Write(buf.Bytes()); err != nil {
				return err
			}
		} else {
			if err := os.WriteFile(output, buf.Bytes(), 0644); err != nil {
				return fmt.Errorf("failed to write %s: %w", output, err)
			}
			logg.Info("Table written", zap.String("file", output))
		}

		if upload, _ := flags.GetBool("upload"); upload {
			name := "weapons" + format.Extension()
			if output != "" {
				name = filepath.Base(output)
			}
			client, err := storage.NewClient(cfg.Storage)
			if err != nil {
				return fmt.Errorf("failed to create storage client: %w", err)
			}
			key, err := storage.NewPublisher(client, cfg.Storage).Publish(cmd.Context(), name, format.ContentType(), buf.Bytes())
			if err != nil {
				return err
			}
			logg.Info("Table uploaded", zap.String("bucket", cfg.Storage.Bucket), zap.String("key", key))
		}

		logg.Info("Build completed",
			zap.Int("records", len(records)),
			zap.String("format", string(format)),
			zap.Duration("execution_time", time.Since(startTime)),
		)
		return nil
	},
}

func init() {
	buildCmd.Flags().String("units-dir", "", "Directory with ship files (defaults to TABLE_UNITS_DIR)")
	buildCmd.Flags().StringP("format", "f", string(render.FormatWiki), "Output format: wiki, html, json, csv or xlsx")
	buildCmd.Flags().StringP("output", "o", "", "Output file (stdout when empty)")
	buildCmd.Flags().Bool("raw-names", false, "Print internal keys instead of translated names")
	buildCmd.Flags().Float64("min-caliber", weapons.DefaultMinCaliberMm, "Smallest caliber in mm")
	buildCmd.Flags().Float64("max-caliber", weapons.DefaultMaxCaliberMm, "Largest caliber in mm")
	buildCmd.Flags().String("csv-delimiter", ";", "CSV field delimiter")
	buildCmd.Flags().Bool("csv-crlf", false, "Terminate CSV lines with CRLF")
	buildCmd.Flags().String("list-separator", ", ", "Separator for list values in CSV cells")
	buildCmd.Flags().Bool("upload", false, "Publish the rendered table to object storage")
	RootCmd.AddCommand(buildCmd)
}
