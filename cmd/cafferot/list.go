package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/jask/cafferot/internal/database/repository"
	"github.com/jask/cafferot/internal/layout"
	"github.com/jask/cafferot/internal/service"
	"github.com/jask/cafferot/internal/ui"
)

func listCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List the cafés on the map and their slots",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			db, err := openStore(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer db.Close()

			feed := &service.Feed{Cafes: repository.NewCafeRepo(db), OwnerID: cfg.UI.OwnerID}
			snap, err := feed.Poll(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			ui.Table(out, []string{"slot", "name", "level", "ring", "displayed"}, mapRows(snap))
			if hidden := len(snap.Nearby) - layout.Capacity(); hidden > 0 {
				ui.Warn.Fprintf(out, "\n  %d café(s) do not fit on the map\n", hidden)
			}
			return nil
		},
	}
}

// mapRows lays the snapshot out the way the map places it.
func mapRows(snap service.Snapshot) [][]string {
	rows := [][]string{row(0, snap.Primary.Name, snap.Primary.Level, layout.Center.Ring().String(), snap.Primary.SubItemCount())}
	for i, c := range snap.Nearby {
		if i >= layout.Capacity() {
			rows = append(rows, row(-1, c.Name, c.Level, "hidden", c.SubItemCount()))
			continue
		}
		rows = append(rows, row(i+1, c.Name, c.Level, layout.MustSlotAt(i+1).Ring().String(), c.SubItemCount()))
	}
	return rows
}

func row(slot int, name string, level int, ring string, displayed int) []string {
	s := "-"
	if slot >= 0 {
		s = strconv.Itoa(slot)
	}
	return []string{s, name, strconv.Itoa(level), ring, fmt.Sprintf("%d/5", min(displayed, 5))}
}
