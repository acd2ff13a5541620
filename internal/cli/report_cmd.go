package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/teletrack/teletrack-cli/internal/cli/formatter"
	"github.com/teletrack/teletrack-cli/internal/domain"
)

const dateLayout = "2006-01-02"

func newReportCmd(app *App) *cobra.Command {
	var week, month bool
	var fromStr, toStr, format, output string

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Build an hours report for a period",
		Long: `Build an hours report for the current week, the current month or a
custom date range. Sessions crossing midnight count toward each day
only for the hours that fall on it.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			now := time.Now()

			var report *domain.Report
			var err error
			switch {
			case (fromStr != "") != (toStr != ""):
				return fmt.Errorf("--from and --to must be used together")
			case fromStr != "" && (week || month):
				return fmt.Errorf("--from/--to cannot be combined with --week or --month")
			case fromStr != "":
				var from, to time.Time
				if from, err = time.ParseInLocation(dateLayout, fromStr, time.Local); err != nil {
					return fmt.Errorf("invalid --from, expected %q: %w", dateLayout, err)
				}
				if to, err = time.ParseInLocation(dateLayout, toStr, time.Local); err != nil {
					return fmt.Errorf("invalid --to, expected %q: %w", dateLayout, err)
				}
				report, err = app.Reports.BuildCustom(ctx, from, to)
			case month:
				report, err = app.Reports.BuildMonthly(ctx, now)
			default:
				report, err = app.Reports.BuildWeekly(ctx, now)
			}
			if err != nil {
				return err
			}

			if format == "" {
				fmt.Print(formatter.RenderReport(report))
				return nil
			}
			written, err := app.Reports.Export(report, format, output)
			if err != nil {
				return err
			}
			fmt.Printf("Wrote %s\n", written)
			return nil
		},
	}

	cmd.Flags().BoolVar(&week, "week", false, "Current week (default)")
	cmd.Flags().BoolVar(&month, "month", false, "Current month")
	cmd.Flags().StringVar(&fromStr, "from", "", "Range start (YYYY-MM-DD)")
	cmd.Flags().StringVar(&toStr, "to", "", "Range end (YYYY-MM-DD)")
	cmd.Flags().StringVar(&format, "export", "", "Export format: pdf, csv, json, yaml, md")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file (default derived from the period)")
	cmd.MarkFlagsMutuallyExclusive("week", "month")

	return cmd
}
