package main

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/spf13/cobra"

	"github.com/jask/cafferot/internal/database/repository"
	"github.com/jask/cafferot/internal/sample"
	"github.com/jask/cafferot/internal/ui"
)

func seedCmd() *cobra.Command {
	var (
		count int
		seed  int64
	)
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Create the demo map and optionally add random cafés",
		Args:  cobra.NoArgs,
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

			out := cmd.OutOrStdout()
			ui.Banner(out, "seeding")
			if count > 0 {
				if seed == 0 {
					seed = time.Now().UnixNano()
				}
				repos := sample.Repos{Cafes: repository.NewCafeRepo(db), Cafferots: repository.NewCafferotRepo(db)}
				added, err := sample.Seed(cmd.Context(), repos, count, rand.New(rand.NewSource(seed)))
				if err != nil {
					return fmt.Errorf("sample cafes: %w", err)
				}
				for _, c := range added {
					fmt.Fprintf(out, "  %s %s %s\n", ui.StatusIcon(true), c.Name, ui.Subtle.Sprintf("Lv.%d, %d on display", c.Level, c.SubItemCount()))
				}
			}
			n, err := repository.NewCafeRepo(db).Count(cmd.Context())
			if err != nil {
				return fmt.Errorf("count cafes: %w", err)
			}
			ui.Good.Fprintf(out, "\n  %d cafés in %s\n", n, cfg.Database.Path)
			return nil
		},
	}
	cmd.Flags().IntVar(&count, "sample", 0, "number of random cafés to add")
	cmd.Flags().Int64Var(&seed, "seed", 0, "random seed for --sample (default: time based)")
	return cmd
}
