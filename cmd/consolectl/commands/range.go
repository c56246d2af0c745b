package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/m04kA/SMC-SalonConsole/internal/daterange"
	"github.com/m04kA/SMC-SalonConsole/internal/domain"
)

// RangeCmd печатает диапазон дат для периода фильтра
func RangeCmd(app *AppContext) *cobra.Command {
	var (
		weekStart string
		tz        string
		start     string
		end       string
		at        string
	)

	cmd := &cobra.Command{
		Use:     "range [period]",
		Short:   "Print the date range for a filter period",
		Example: `  consolectl range "This week" --week-start monday --tz Europe/Moscow`,
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			loc, err := time.LoadLocation(tz)
			if err != nil {
				return fmt.Errorf("invalid timezone %q: %w", tz, err)
			}

			day, ok := daterange.ParseWeekday(weekStart)
			if !ok {
				return fmt.Errorf("invalid week start %q", weekStart)
			}

			now := time.Now().In(loc)
			if at != "" {
				now, err = time.ParseInLocation(time.RFC3339, at, loc)
				if err != nil {
					return fmt.Errorf("invalid --now value: %w", err)
				}
				now = now.In(loc)
			}

			token := domain.TokenToday
			if len(args) == 1 {
				token = daterange.ParseToken(args[0])
			}
			if !token.IsKnown() {
				app.Logger.Warn("range: unknown period %q, using %s", token, domain.TokenToday)
				fmt.Fprintf(app.Out, "Unknown period %q, falling back to %s\n", token, domain.TokenToday)
				token = domain.TokenToday
			}

			var custom *domain.DateRange
			if start != "" || end != "" {
				if token != domain.TokenCustom {
					return fmt.Errorf("--start and --end are only allowed with the Custom period")
				}
				custom, err = parseCustomRange(start, end, loc)
				if err != nil {
					return err
				}
			}

			r := daterange.NewResolver(day).Resolve(token, now, custom)

			fmt.Fprintf(app.Out, "Period: %s\n", token)
			fmt.Fprintf(app.Out, "Start:  %s\n", r.Start.Format(time.RFC3339Nano))
			fmt.Fprintf(app.Out, "End:    %s\n", r.End.Format(time.RFC3339Nano))
			return nil
		},
	}

	cmd.Flags().StringVar(&weekStart, "week-start", "sunday", "First day of the week")
	cmd.Flags().StringVar(&tz, "tz", "Local", "IANA timezone used for calendar math")
	cmd.Flags().StringVar(&start, "start", "", "Custom range start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&end, "end", "", "Custom range end date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&at, "now", "", "Reference time in RFC3339 (defaults to current time)")

	return cmd
}

func parseCustomRange(start, end string, loc *time.Location) (*domain.DateRange, error) {
	if start == "" || end == "" {
		return nil, fmt.Errorf("--start and --end must be given together")
	}

	s, err := time.ParseInLocation(domain.DateFormat, start, loc)
	if err != nil {
		return nil, fmt.Errorf("invalid --start: %w", err)
	}
	e, err := time.ParseInLocation(domain.DateFormat, end, loc)
	if err != nil {
		return nil, fmt.Errorf("invalid --end: %w", err)
	}
	if e.Before(s) {
		return nil, fmt.Errorf("--end is before --start")
	}

	// Конец включительный: до последней миллисекунды дня
	return &domain.DateRange{
		Start: s,
		End:   e.AddDate(0, 0, 1).Add(-time.Millisecond),
	}, nil
}
