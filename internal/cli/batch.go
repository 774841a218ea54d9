// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/dstoeckel/ball/internal/molio"
)

// batchCommand creates the batch command. Each target is an independent
// search; up to --workers of them run at once.
func (c *CLI) batchCommand() *cobra.Command {
	var flags searchFlags

	cmd := &cobra.Command{
		Use:   "batch <query> <target>...",
		Short: "Match one query molecule against many targets",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := flags.resolve(cmd, c.cfg)
			if err != nil {
				return err
			}
			logger := loggerFromContext(cmd.Context())

			q, err := molio.Load(args[0])
			if err != nil {
				return err
			}
			targets := args[1:]
			results := make([]Result, len(targets))

			prog := newProgress(logger)
			g, ctx := errgroup.WithContext(cmd.Context())
			g.SetLimit(cfg.Workers)
			for i, path := range targets {
				g.Go(func() error {
					t, err := molio.Load(path)
					if err != nil {
						return err
					}
					res, err := runSearch(ctx, logger.With("target", t.Name), cfg, q, t)
					if err != nil {
						return fmt.Errorf("batch %s: %w", path, err)
					}
					results[i] = res
					return nil
				})
			}
			if err := g.Wait(); err != nil {
				return err
			}

			var found int
			for _, r := range results {
				if r.Found {
					found++
				}
			}
			prog.done("batch finished", "targets", len(targets), "found", found)

			return render(cmd.OutOrStdout(), cfg.Format, results)
		},
	}
	flags.register(cmd, true)

	return cmd
}
