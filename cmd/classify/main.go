package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"SignalEngine/internal/domain/models"
	"SignalEngine/internal/services/classify"
	"SignalEngine/internal/usecase"
	"SignalEngine/pkg/config"
)

type options struct {
	file    string
	regime  string
	format  string
	cfgFile string
	boost   float64
	damping float64
}

func main() {
	if err := newRootCmd(os.Stdin, os.Stdout).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(stdin io.Reader, stdout io.Writer) *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:   "classify",
		Short: "Classify an analytics dashboard payload",
		Long: `Reads a dashboard payload (JSON) and prints confidence ratings,
regime-adjusted walls, trend state and level progress.

Examples:
  classify --file spy.json
  curl -s $BACKEND/api/dashboard/SPY | classify --regime "High Volatility"
  classify --file spy.json --format json`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts, stdin, stdout)
		},
	}

	cmd.Flags().StringVar(&opts.file, "file", "-", "payload file path, - for stdin")
	cmd.Flags().StringVar(&opts.regime, "regime", "", "override the payload's regime label")
	cmd.Flags().StringVar(&opts.format, "format", "table", "output format: table, json")
	cmd.Flags().StringVar(&opts.cfgFile, "config", "", "optional config file for regime factors")
	cmd.Flags().Float64Var(&opts.boost, "boost", classify.RegimeBoostFactor, "high volatility strength factor")
	cmd.Flags().Float64Var(&opts.damping, "damping", classify.RegimeDampingFactor, "low volatility strength factor")

	return cmd
}

func run(cmd *cobra.Command, opts options, stdin io.Reader, stdout io.Writer) error {
	if opts.format != "table" && opts.format != "json" {
		return fmt.Errorf("unknown format %q: use table or json", opts.format)
	}

	boost, damping := opts.boost, opts.damping
	if opts.cfgFile != "" {
		cfg, err := config.Load(opts.cfgFile)
		if err != nil {
			return err
		}
		if !cmd.Flags().Changed("boost") {
			boost = cfg.Classify.RegimeBoost
		}
		if !cmd.Flags().Changed("damping") {
			damping = cfg.Classify.RegimeDamping
		}
	}

	if err := config.ValidateRegimeFactors(boost, damping); err != nil {
		return err
	}

	payload, err := readPayload(opts.file, stdin)
	if err != nil {
		return err
	}

	c := usecase.NewClassifier(classify.NewRegimeAdjuster(boost, damping), nil)
	out := c.ClassifyDashboard(payload, opts.regime)

	if opts.format == "json" {
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}
	printTables(stdout, out)
	return nil
}

func readPayload(path string, stdin io.Reader) (models.DashboardPayload, error) {
	var r io.Reader = stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return models.DashboardPayload{}, fmt.Errorf("open payload: %w", err)
		}
		defer f.Close()
		r = f
	}

	var p models.DashboardPayload
	if err := json.NewDecoder(r).Decode(&p); err != nil {
		return models.DashboardPayload{}, fmt.Errorf("decode payload: %w", err)
	}
	return p, nil
}

func printTables(w io.Writer, d *models.ClassifiedDashboard) {
	fmt.Fprintf(w, "%s  price=%s  regime=%s (%s)  trend=%s\n\n",
		orDash(d.Symbol), num(d.Price), d.Regime, orDash(d.RegimeLabel), d.Trend)

	if len(d.Comparisons) > 0 {
		table := tablewriter.NewTable(w,
			tablewriter.WithHeader([]string{"Horizon", "Confidence", "Score", "Reasons"}),
		)
		for _, c := range d.Comparisons {
			table.Append([]string{
				orDash(string(c.Horizon)),
				string(c.Rating.Level),
				fmt.Sprintf("%.1f", c.Rating.Score),
				c.Summary,
			})
		}
		table.Render()
		fmt.Fprintln(w)
	}

	if len(d.Walls) > 0 {
		table := tablewriter.NewTable(w,
			tablewriter.WithHeader([]string{"Strike", "Type", "Timeframe", "Raw", "Adjusted", "Opacity", "Border"}),
		)
		for _, wv := range d.Walls {
			table.Append([]string{
				fmt.Sprintf("%.2f", wv.Strike),
				string(wv.Type),
				string(wv.Timeframe),
				fmt.Sprintf("%.0f", wv.RawStrength),
				fmt.Sprintf("%.1f", wv.AdjustedStrength),
				fmt.Sprintf("%.2f", wv.Opacity),
				fmt.Sprintf("%dpx", wv.BorderWidth),
			})
		}
		table.Render()
		fmt.Fprintln(w)
	}

	table := tablewriter.NewTable(w,
		tablewriter.WithHeader([]string{"Level", "Target", "Progress", "Bucket"}),
	)
	for _, lp := range d.Progress.Levels {
		table.Append([]string{lp.Level, num(lp.Target), lp.Glyphs, fmt.Sprintf("%d", lp.Bucket)})
	}
	table.Render()

	if len(d.Percentiles) > 0 {
		fmt.Fprintln(w)
		names := make([]string, 0, len(d.Percentiles))
		for name := range d.Percentiles {
			names = append(names, name)
		}
		sort.Strings(names)

		table := tablewriter.NewTable(w,
			tablewriter.WithHeader([]string{"Percentile", "Band"}),
		)
		for _, name := range names {
			table.Append([]string{name, string(d.Percentiles[name])})
		}
		table.Render()
	}
}

func num(v *float64) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprintf("%.2f", *v)
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
