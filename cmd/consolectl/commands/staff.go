package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/m04kA/SMC-SalonConsole/internal/compatibility"
	"github.com/m04kA/SMC-SalonConsole/internal/domain"
)

// StaffCmd печатает сотрудников точки, совместимых с набором услуг
func StaffCmd(app *AppContext) *cobra.Command {
	var (
		companyID  int64
		locationID int64
		serviceIDs []int64
	)

	cmd := &cobra.Command{
		Use:     "staff",
		Short:   "List staff able to perform the given services at a location",
		Example: `  consolectl staff --company 1 --location 2 --services 10,20`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			source, closeFn, err := app.OpenRoster()
			if err != nil {
				return fmt.Errorf("failed to open roster source: %w", err)
			}
			if closeFn != nil {
				defer closeFn()
			}

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}

			roster, err := source.GetRoster(ctx, companyID)
			if err != nil {
				return fmt.Errorf("failed to load roster: %w", err)
			}
			app.Logger.Info("staff: company=%d, roster=%d", companyID, len(roster))

			for _, serviceID := range serviceIDs {
				fmt.Fprintf(app.Out, "Service %d: %s\n", serviceID,
					formatStaff(compatibility.StaffForService(roster, locationID, serviceID)))
			}

			common := compatibility.StaffForAllServices(roster, locationID, serviceIDs)
			fmt.Fprintf(app.Out, "All services: %s\n", formatStaff(common))
			if len(common) > 0 {
				fmt.Fprintln(app.Out, "Same staff: available")
			} else {
				fmt.Fprintln(app.Out, "Same staff: not available")
			}
			return nil
		},
	}

	cmd.Flags().Int64Var(&companyID, "company", 0, "Company ID")
	cmd.Flags().Int64Var(&locationID, "location", 0, "Location ID")
	cmd.Flags().Int64SliceVar(&serviceIDs, "services", nil, "Comma separated service IDs")
	_ = cmd.MarkFlagRequired("company")
	_ = cmd.MarkFlagRequired("location")
	_ = cmd.MarkFlagRequired("services")

	return cmd
}

func formatStaff(staff []*domain.StaffMember) string {
	if len(staff) == 0 {
		return "-"
	}

	names := make([]string, 0, len(staff))
	for _, s := range staff {
		names = append(names, fmt.Sprintf("%s (#%d)", s.Name, s.ID))
	}
	return strings.Join(names, ", ")
}
