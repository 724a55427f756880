package main

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/jask/cafferot/internal/database"
	"github.com/jask/cafferot/internal/service"
	"github.com/jask/cafferot/internal/ui"
)

func resetCmd() *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Delete every café, cafferot and event",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if !yes {
				ui.Warn.Fprintln(out, "  this wipes all data; rerun with --yes to confirm")
				return errors.New("reset not confirmed")
			}
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			db, err := database.OpenMigrated(cfg.Database.Path)
			if err != nil {
				return err
			}
			defer db.Close()

			m := &service.MaintenanceService{DB: db}
			if err := m.Reset(cmd.Context()); err != nil {
				return err
			}
			ui.Good.Fprintf(out, "  %s data wiped\n", ui.StatusIcon(true))
			return nil
		},
	}
	cmd.Flags().BoolVar(&yes, "yes", false, "confirm the wipe")
	return cmd
}
