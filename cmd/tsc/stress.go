package main

import (
	"fmt"
	"github.com/piercep/thread-safe-collections/pkg/common/fmtx"
	"github.com/piercep/thread-safe-collections/pkg/common/stringsx"
	"github.com/piercep/thread-safe-collections/pkg/stress"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"strings"
)

func (c *CLI) stressCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "stress",
		Aliases: []string{"bench"},
		Short:   "Hits thread-safe stack concurrently and verifies its properties",
		Run: func(cmd *cobra.Command, args []string) {
			reports, err := c.tsc.StressRunner().Run(cmd.Context())
			if err != nil {
				c.Error(err)
				return
			}
			c.SetOutput("reports", reports)
			if c.outputFormat == fmtx.Text && len(c.outputValue) == 0 {
				_, _ = fmt.Fprint(c.tsc.Output(), fmtx.TblRows("stress reports", stress.ReportColumns(), lo.Map(reports, func(r stress.Report, _ int) map[string]any {
					return r.Row()
				})))
			}
			failed := lo.FilterMap(reports, func(r stress.Report, _ int) (string, bool) { return r.Scenario, !r.Passed })
			passed := stringsx.PercentExplained(len(reports)-len(failed), len(reports), 0)
			if len(failed) > 0 {
				c.Fail(fmt.Sprintf("stress scenarios failed: %s (passed %s)", strings.Join(failed, ", "), passed))
				return
			}
			c.Ok(fmt.Sprintf("stress scenarios passed: %s", passed))
		},
	}
	cv := c.config.Values()
	cmd.Flags().StringVarP(&(cv.Stress.Scenarios), "scenario", "s", cv.Stress.Scenarios, "Scenario name pattern, e.g. 'push*' or '{clear,unique}'")
	cmd.Flags().IntVarP(&(cv.Stress.Workers), "workers", "w", cv.Stress.Workers, "Number of concurrent writers")
	cmd.Flags().IntVarP(&(cv.Stress.Readers), "readers", "r", cv.Stress.Readers, "Number of concurrent readers")
	cmd.Flags().IntVarP(&(cv.Stress.Operations), "operations", "n", cv.Stress.Operations, "Number of operations per worker")
	cmd.Flags().IntVar(&(cv.Stress.Batch), "batch", cv.Stress.Batch, "Number of values pushed at once by batch scenarios")
	cmd.Flags().DurationVar(&(cv.Stress.LockWaitWarn), "lock-wait-warn", cv.Stress.LockWaitWarn, "Warn about lock acquisitions waiting longer (0 disables)")
	cmd.AddCommand(c.stressListCmd())
	return cmd
}

func (c *CLI) stressListCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "Lists available stress scenarios",
		Run: func(cmd *cobra.Command, args []string) {
			c.SetOutput("scenarios", lo.Map(stress.Scenarios(), func(s stress.Scenario, _ int) map[string]any {
				return map[string]any{
					"name":        s.Name,
					"description": s.Description,
					"operations":  s.Planned(c.tsc.StressOpts()),
				}
			}))
			c.Ok("stress scenarios listed")
		},
	}
}
