package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

// InvalidateRosterCmd удаляет закешированный состав сотрудников компании
func InvalidateRosterCmd(app *AppContext) *cobra.Command {
	var companyID int64

	cmd := &cobra.Command{
		Use:     "invalidate-roster",
		Short:   "Drop the cached staff roster of a company",
		Example: `  consolectl invalidate-roster --company 1`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if companyID <= 0 {
				return fmt.Errorf("--company must be positive")
			}

			cache, closeFn, err := app.OpenRosterCache()
			if err != nil {
				return fmt.Errorf("failed to open roster cache: %w", err)
			}
			if closeFn != nil {
				defer closeFn()
			}

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}

			if err := cache.Invalidate(ctx, companyID); err != nil {
				return err
			}

			app.Logger.Info("invalidate-roster: company=%d", companyID)
			fmt.Fprintf(app.Out, "Roster cache cleared for company %d\n", companyID)
			return nil
		},
	}

	cmd.Flags().Int64Var(&companyID, "company", 0, "Company ID")
	_ = cmd.MarkFlagRequired("company")

	return cmd
}
