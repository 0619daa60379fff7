// ABOUTME: Dashboard CLI command: the mobile stats summary
package cli

import (
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/imocrm/imocrm/api"
)

// DashboardCommand prints the agent dashboard counters.
func DashboardCommand(client *api.Client, args []string) error {
	fs := flag.NewFlagSet("dashboard", flag.ExitOnError)
	_ = fs.Parse(args)

	ctx, cancel := commandContext()
	defer cancel()

	stats, err := client.DashboardStats(ctx)
	if err != nil {
		return fmt.Errorf("failed to load dashboard: %w", err)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "Active properties\t", stats.ActiveProperties)
	_, _ = fmt.Fprintln(w, "New leads\t", stats.NewLeads)
	_, _ = fmt.Fprintln(w, "Upcoming visits\t", stats.UpcomingVisits)
	_, _ = fmt.Fprintln(w, "Converted leads\t", stats.ConvertedLeads)
	_, _ = fmt.Fprintln(w, "Sold this month\t", stats.SoldThisMonth)
	_ = w.Flush()

	return nil
}
