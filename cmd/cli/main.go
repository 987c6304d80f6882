package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"godunn/adapters/excel"
	"godunn/domain/core"
	"godunn/domain/dataset"
	"godunn/internal/analysis"
	"godunn/internal/config"
	"godunn/internal/printer"
	"godunn/internal/report"

	"github.com/joho/godotenv"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

func main() {
	// Load .env if present; environment wins over file values
	_ = godotenv.Load()

	rootCmd := &cobra.Command{
		Use:           "godunn",
		Short:         "Dunn post-hoc testing with compact letter displays",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		newLettersCmd(),
		newPairsCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type runFlags struct {
	alpha        float64
	adjust       string
	partitionCol string
	groupCol     string
	valueCol     string
	order        []string
}

func (f *runFlags) register(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&f.alpha, "alpha", 0, "significance level (default from ALPHA, else 0.05)")
	cmd.Flags().StringVar(&f.adjust, "adjust", "", "p-value adjustment: holm or bonferroni")
	cmd.Flags().StringVar(&f.partitionCol, "partition-col", "", "column partitioning the dataset")
	cmd.Flags().StringVar(&f.groupCol, "group-col", "", "column naming the compared groups")
	cmd.Flags().StringVar(&f.valueCol, "value-col", "", "column holding the measured values")
	cmd.Flags().StringSliceVar(&f.order, "order", nil, "presentation order of group labels")
}

// options merges env config with flag overrides
func (f *runFlags) options() (report.Options, error) {
	cfg, err := config.Load()
	if err != nil {
		return report.Options{}, err
	}

	opts := report.Options{
		Alpha:           cfg.Analysis.Alpha,
		Adjust:          analysis.AdjustMethod(cfg.Analysis.AdjustMethod),
		PartitionColumn: cfg.Report.PartitionColumn,
		GroupColumn:     cfg.Report.GroupColumn,
		ValueColumn:     cfg.Report.ValueColumn,
		CategoryOrder:   cfg.Report.CategoryOrder,
	}
	if f.alpha != 0 {
		opts.Alpha = f.alpha
	}
	if f.adjust != "" {
		opts.Adjust = analysis.AdjustMethod(f.adjust)
	}
	if f.partitionCol != "" {
		opts.PartitionColumn = f.partitionCol
	}
	if f.groupCol != "" {
		opts.GroupColumn = f.groupCol
	}
	if f.valueCol != "" {
		opts.ValueColumn = f.valueCol
	}
	if len(f.order) > 0 {
		opts.CategoryOrder = f.order
	}
	return opts, nil
}

func loadTable(args []string) (*dataset.Table, error) {
	path := ""
	if len(args) > 0 {
		path = args[0]
	} else {
		path = os.Getenv("INPUT_FILE")
	}
	if path == "" {
		return nil, printer.Error("no input file", "Pass a .xlsx/.csv path or set INPUT_FILE.")
	}
	printer.Info("reading %s\n", path)
	return excel.NewDataReader(path).ReadData()
}

// reportError maps driver errors to CLI behavior: an all-degenerate dataset
// is a warning, not a failure; other data-shape problems get a readable
// message instead of a bare error chain.
func reportError(err error) error {
	if errors.Is(err, core.ErrInsufficientGroups) {
		printer.Warning("no partition had two or more non-empty groups\n")
		return nil
	}
	if core.IsDataShapeError(err) {
		return printer.Error("dataset problem", err.Error())
	}
	return err
}

func newLettersCmd() *cobra.Command {
	flags := &runFlags{}

	cmd := &cobra.Command{
		Use:   "letters [file]",
		Short: "Compute per-group compact letter displays for each partition",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := flags.options()
			if err != nil {
				return err
			}
			table, err := loadTable(args)
			if err != nil {
				return err
			}

			rep, err := report.ComputeLettersPerGroup(table, opts)
			if err != nil {
				return reportError(err)
			}

			out := tablewriter.NewWriter(os.Stdout)
			out.SetHeader([]string{opts.PartitionColumn, opts.GroupColumn, "Letters", "Mean", "N"})
			for _, row := range rep.Rows {
				out.Append([]string{
					row.Partition,
					row.Group,
					row.Letters,
					strconv.FormatFloat(row.Mean, 'f', 3, 64),
					strconv.Itoa(row.N),
				})
			}
			out.Render()

			printer.Success("report %s at %s: %d rows (alpha=%g, adjust=%s)\n",
				rep.ID, rep.GeneratedAt.Time().Format(time.RFC3339), len(rep.Rows), rep.Alpha, rep.Adjust)
			return nil
		},
	}

	flags.register(cmd)
	return cmd
}

func newPairsCmd() *cobra.Command {
	flags := &runFlags{}

	cmd := &cobra.Command{
		Use:   "pairs [file]",
		Short: "Print adjusted pairwise p-values per partition",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := flags.options()
			if err != nil {
				return err
			}
			table, err := loadTable(args)
			if err != nil {
				return err
			}

			rows, err := report.ComputePairwise(table, opts)
			if err != nil {
				return reportError(err)
			}

			out := tablewriter.NewWriter(os.Stdout)
			out.SetHeader([]string{opts.PartitionColumn, "Group A", "Group B", "Adjusted p"})
			for _, row := range rows {
				out.Append([]string{
					row.Partition,
					row.GroupA,
					row.GroupB,
					strconv.FormatFloat(row.PValue, 'g', 4, 64),
				})
			}
			out.Render()
			return nil
		},
	}

	flags.register(cmd)
	return cmd
}
