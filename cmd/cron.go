package cmd

import (
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"storefront.GO/config"
	"storefront.GO/cron"
	_ "storefront.GO/cron/jobs"
)

var jobName string

var cronStartCmd = &cobra.Command{
	Use:   "cron:start",
	Short: "Start the cron scheduler or run a single job by name",
	RunE: func(c *cobra.Command, args []string) error {
		out := c.OutOrStdout()
		if jobName != "" {
			j, ok := cron.Jobs()[jobName]
			if !ok {
				return fmt.Errorf("unknown job: %s", jobName)
			}
			fmt.Fprintf(out, "Running cron job: %s\n", jobName)
			j.Run(args...)
			return nil
		}
		fmt.Fprintln(out, "Starting cron scheduler...")
		sched, err := cron.StartCron(config.Logger())
		if err != nil {
			return err
		}
		defer func() { <-sched.Stop().Done() }()
		fmt.Fprintln(out, "Cron scheduler started. Press Ctrl+C to exit.")
		ctx, stop := signal.NotifyContext(c.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()
		<-ctx.Done()
		return nil
	},
}

var cronListCmd = &cobra.Command{
	Use:   "cron:list",
	Short: "List registered cron jobs",
	Run: func(c *cobra.Command, args []string) {
		jobs := cron.Jobs()
		for _, name := range cron.Names() {
			fmt.Fprintf(c.OutOrStdout(), "%-20s %-12s %s\n", name, jobs[name].Schedule, jobs[name].Description)
		}
	},
}

func init() {
	cronStartCmd.Flags().StringVarP(&jobName, "job", "j", "", "Run a single cron job by name and exit")
	rootCmd.AddCommand(cronStartCmd)
	rootCmd.AddCommand(cronListCmd)
}
