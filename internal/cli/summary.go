package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/quwatro/internal/waver"
	"github.com/mesh-intelligence/quwatro/pkg/types"
)

// usageDay is one high-usage day in the summary report.
type usageDay struct {
	Date   string  `json:"date"`
	Liters float64 `json:"liters"`
}

// summaryReport is the WaVer summary as printed by "quwatro summary".
type summaryReport struct {
	Days            int        `json:"days"`
	GrandTotal      float64    `json:"grand_total_liters"`
	Average         *float64   `json:"average_liters,omitempty"`
	ThresholdLiters float64    `json:"threshold_liters"`
	HighUsageDays   []usageDay `json:"high_usage_days"`
}

func newSummaryCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Print the WaVer usage summary and high-usage days",
		Long:  "Replay the water usage log and print the day count, grand total, average\nand the days above the high-usage threshold.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			report, found, err := buildSummary(s.waVer())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if s.flags.jsonMode {
				return writeJSON(out, report)
			}
			if !found {
				fmt.Fprintln(out, waver.NoDataMessage)
				return nil
			}
			printSummary(out, report)
			return nil
		},
	}
}

// buildSummary replays the usage log. found is false when no log exists
// yet, in which case the report is empty.
func buildSummary(t *waver.Tracker) (summaryReport, bool, error) {
	report := summaryReport{
		ThresholdLiters: t.Threshold(),
		HighUsageDays:   []usageDay{},
	}
	sum, err := t.Summary()
	if errors.Is(err, types.ErrNotFound) {
		return report, false, nil
	}
	if err != nil {
		return report, false, err
	}

	report.Days = sum.Count
	report.GrandTotal = sum.Total
	if avg, ok := sum.Average(); ok {
		report.Average = &avg
	}
	for _, u := range sum.Breaches {
		report.HighUsageDays = append(report.HighUsageDays, usageDay{Date: u.Date, Liters: u.Total()})
	}
	return report, true, nil
}

func printSummary(out io.Writer, r summaryReport) {
	fmt.Fprintf(out, "Total recorded days: %d\n", r.Days)
	fmt.Fprintf(out, "Grand total usage: %.2f liters\n", r.GrandTotal)
	if r.Average != nil {
		fmt.Fprintf(out, "Average daily usage: %.2f liters\n", *r.Average)
	} else {
		fmt.Fprintln(out, "No usage data available.")
	}

	fmt.Fprintf(out, "\nDays with high water usage (>%g liters):\n", r.ThresholdLiters)
	if len(r.HighUsageDays) == 0 {
		fmt.Fprintln(out, "None")
		return
	}
	for _, d := range r.HighUsageDays {
		fmt.Fprintf(out, "- %s: %.2f liters\n", d.Date, d.Liters)
	}
}

func writeJSON(out io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal output: %w", err)
	}
	_, err = fmt.Fprintln(out, string(data))
	return err
}
