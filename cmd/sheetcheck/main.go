// Package main provides the CLI entry point for sheetcheck.
package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/boost-qa/sheetcheck/internal/config"
	"github.com/boost-qa/sheetcheck/internal/logging"
	"github.com/boost-qa/sheetcheck/pkg/sheetcheck"
	"github.com/boost-qa/sheetcheck/pkg/sheetcheck/output"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	outputPath string
	pretty     bool
	envName    string
	logLevel   string
	envFile    string

	threshold      float64
	sheets         []string
	sheetName      string
	columnName     string
	expected       []string
	minHeaderCells int
	skipColumns    int

	cfg *config.Config
)

// errValidation marks a completed check that found problems.
var errValidation = errors.New("header validation failed")

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "sheetcheck",
		Short: "Inspect payment batch workbooks",
		Long: `sheetcheck locates bold header rows in payment batch workbooks and
extracts header labels, column values and grouped transactions as JSON.`,
		SilenceUsage:      true,
		PersistentPreRunE: setup,
	}

	rootCmd.PersistentFlags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: stdout)")
	rootCmd.PersistentFlags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	rootCmd.PersistentFlags().StringVar(&envName, "env", "", "Environment: DEV, UAT, PROD (default: $ENVIRONMENT or DEV)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (default: $LOG_LEVEL or info)")
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", "", "Load environment variables from this file")

	rootCmd.AddCommand(newHeadersCmd(), newRowsCmd(), newValueCmd(), newValidateCmd(), newTransactionsCmd())
	return rootCmd
}

func setup(cmd *cobra.Command, args []string) error {
	loaded, err := config.Load(envFile)
	if err != nil {
		return err
	}
	if envName != "" {
		loaded.Environment = envName
	}
	if logLevel != "" {
		loaded.LogLevel = logLevel
	}
	if err := loaded.Validate(); err != nil {
		return err
	}
	cfg = loaded

	logging.Setup(os.Stderr, cfg.IsProduction(), cfg.LogLevel)
	if cfg.EnvFileLoaded {
		log.Debug().Msg("Loaded environment variables from .env file.")
	}
	log.Debug().Str("environment", cfg.Environment).Msg("Configuration loaded")
	return nil
}

func newHeadersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "headers [input.xlsx]",
		Short: "Detect the header row of every sheet",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			inputPath := args[0]
			if err := checkInput(inputPath); err != nil {
				return err
			}

			wb, err := sheetcheck.ExtractWorkbookHeaders(inputPath, extractOptions(cmd))
			if err != nil {
				return fmt.Errorf("extraction failed: %w", err)
			}
			for _, h := range wb.Headers {
				log.Info().
					Str("sheet", h.Sheet).
					Int("row", h.R).
					Str("headers", strings.Join(nonEmpty(h.Labels), ", ")).
					Msg("Extracted headers")
			}
			return writeJSON(wb)
		},
	}
	cmd.Flags().Float64Var(&threshold, "threshold", 0, "Minimum bold share of a header row (default: $SHEETCHECK_BOLD_THRESHOLD or 0.5)")
	cmd.Flags().StringSliceVar(&sheets, "sheet", nil, "Restrict to these sheets (repeatable)")
	return cmd
}

func newRowsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rows [input.xlsx]",
		Short: "Print the data rows below a sheet's header",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			inputPath := args[0]
			if err := checkInput(inputPath); err != nil {
				return err
			}

			rows, err := sheetcheck.DataRows(inputPath, sheetName, extractOptions(cmd))
			if err != nil {
				return fmt.Errorf("extraction failed: %w", err)
			}
			return writeJSON(rows)
		},
	}
	cmd.Flags().Float64Var(&threshold, "threshold", 0, "Minimum bold share of a header row")
	cmd.Flags().StringVar(&sheetName, "sheet", "", "Sheet name")
	_ = cmd.MarkFlagRequired("sheet")
	return cmd
}

func newValueCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "value [input.xlsx]",
		Short: "Print a column's value from the first data row",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			inputPath := args[0]
			if err := checkInput(inputPath); err != nil {
				return err
			}

			value, err := sheetcheck.ColumnValue(inputPath, sheetName, columnName, extractOptions(cmd))
			if err != nil {
				return fmt.Errorf("lookup failed: %w", err)
			}
			log.Info().Str("sheet", sheetName).Str("column", columnName).Str("value", value).Msg("Column value")
			return writeOutput([]byte(value + "\n"))
		},
	}
	cmd.Flags().Float64Var(&threshold, "threshold", 0, "Minimum bold share of a header row")
	cmd.Flags().StringVar(&sheetName, "sheet", "", "Sheet name")
	cmd.Flags().StringVar(&columnName, "column", "", "Text the column label contains, e.g. \"total amount\"")
	_ = cmd.MarkFlagRequired("sheet")
	_ = cmd.MarkFlagRequired("column")
	return cmd
}

func newValidateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate [input.xlsx]",
		Short: "Check that a sheet's header has the expected labels",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			inputPath := args[0]
			if err := checkInput(inputPath); err != nil {
				return err
			}

			missing, err := sheetcheck.ValidateHeaders(inputPath, sheetName, expected, extractOptions(cmd))
			if err != nil {
				return fmt.Errorf("validation failed: %w", err)
			}
			if len(missing) > 0 {
				log.Error().Str("sheet", sheetName).Strs("missing", missing).Msg("Expected headers not found")
				return fmt.Errorf("%w: missing %s", errValidation, strings.Join(missing, ", "))
			}
			log.Info().Str("sheet", sheetName).Int("checked", len(expected)).Msg("All expected headers present")
			return nil
		},
	}
	cmd.Flags().Float64Var(&threshold, "threshold", 0, "Minimum bold share of a header row")
	cmd.Flags().StringVar(&sheetName, "sheet", "", "Sheet name")
	cmd.Flags().StringSliceVar(&expected, "expect", nil, "Expected header labels (comma separated or repeatable)")
	_ = cmd.MarkFlagRequired("sheet")
	_ = cmd.MarkFlagRequired("expect")
	return cmd
}

func newTransactionsCmd() *cobra.Command {
	defaults := sheetcheck.DefaultTransactionOptions()
	cmd := &cobra.Command{
		Use:   "transactions [input.xlsx]",
		Short: "Group a transactions sheet into payments and invoices",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			inputPath := args[0]
			if err := checkInput(inputPath); err != nil {
				return err
			}

			opts := sheetcheck.DefaultTransactionOptions()
			opts.Sheet = cfg.TransactionSheet
			if cmd.Flags().Changed("sheet") {
				opts.Sheet = sheetName
			}
			opts.Params.MinHeaderCells = minHeaderCells
			opts.Params.SkipColumns = skipColumns

			set, err := sheetcheck.ExtractTransactions(inputPath, opts)
			if err != nil {
				return fmt.Errorf("extraction failed: %w", err)
			}
			log.Info().Str("sheet", set.Sheet).Int("transactions", len(set.Transactions)).Msg("Grouped transactions")
			return writeJSON(set)
		},
	}
	cmd.Flags().StringVar(&sheetName, "sheet", defaults.Sheet, "Transactions sheet name")
	cmd.Flags().IntVar(&minHeaderCells, "min-header-cells", defaults.Params.MinHeaderCells, "A header row has more than this many non-empty cells")
	cmd.Flags().IntVar(&skipColumns, "skip-columns", defaults.Params.SkipColumns, "Leading columns to ignore")
	return cmd
}

// checkInput fails early when the input file is missing.
func checkInput(inputPath string) error {
	if _, err := os.Stat(inputPath); os.IsNotExist(err) {
		return fmt.Errorf("file not found: %s", inputPath)
	}
	log.Debug().Str("file", inputPath).Msg("Reading workbook")
	return nil
}

func extractOptions(cmd *cobra.Command) sheetcheck.Options {
	opts := sheetcheck.DefaultOptions()
	opts.BoldThreshold = cfg.BoldThreshold
	if cmd.Flags().Changed("threshold") {
		opts.BoldThreshold = threshold
	}
	opts.Sheets = sheets
	return opts
}

func writeJSON(v interface{}) error {
	jsonData, err := output.ToJSON(v, pretty)
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}
	return writeOutput(append(jsonData, '\n'))
}

func writeOutput(data []byte) error {
	if outputPath == "" {
		_, err := os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(outputPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func nonEmpty(labels []string) []string {
	var out []string
	for _, l := range labels {
		if l != "" {
			out = append(out, l)
		}
	}
	return out
}
