// SPDX-License-Identifier: MIT

package cli

import (
	"github.com/spf13/cobra"

	"github.com/dstoeckel/ball/internal/molio"
)

// matchCommand creates the match command.
func (c *CLI) matchCommand() *cobra.Command {
	var flags searchFlags

	cmd := &cobra.Command{
		Use:   "match <query> <target>",
		Short: "Match a query molecule against a target molecule",
		Long: `Match loads two molecule files (.toml or .yaml, optionally .gz or .zst)
and searches for an isomorphism (iso), an embedding of the query in the target
(sub) or their maximum common substructure (mcs).`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := flags.resolve(cmd, c.cfg)
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)

			q, err := molio.Load(args[0])
			if err != nil {
				return err
			}
			t, err := molio.Load(args[1])
			if err != nil {
				return err
			}

			prog := newProgress(logger)
			res, err := runSearch(ctx, logger, cfg, q, t)
			if err != nil {
				return err
			}
			prog.done("search finished", "mode", res.Mode, "found", res.Found)

			return render(cmd.OutOrStdout(), cfg.Format, []Result{res})
		},
	}
	flags.register(cmd, false)

	return cmd
}
