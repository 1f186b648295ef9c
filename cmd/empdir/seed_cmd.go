package main

import (
	"github.com/spf13/cobra"

	"empdir/internal/seed"
)

func newSeedCmd(global *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Print the initial employee list as TOML",
		Long: "Print the employees the editor would start with, after dropping records " +
			"with a missing id or name and repeated ids. Dropped records are reported on stderr.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd, global)
			if err != nil {
				return err
			}
			res, err := seed.Load(cfg.SeedFile)
			if err != nil {
				return err
			}
			writeSkipped(cmd.ErrOrStderr(), res.Skipped)
			return seed.Write(cmd.OutOrStdout(), res.Employees)
		},
	}
}
