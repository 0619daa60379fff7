// ABOUTME: Visit lifecycle CLI commands backed by the mobile endpoints
package cli

import (
	"context"
	"flag"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/imocrm/imocrm/api"
)

// ListVisitsCommand lists the authenticated agent's upcoming visits.
func ListVisitsCommand(client *api.Client, args []string) error {
	fs := flag.NewFlagSet("list-visits", flag.ExitOnError)
	_ = fs.Parse(args)

	ctx, cancel := commandContext()
	defer cancel()

	visits, err := client.UpcomingVisits(ctx)
	if err != nil {
		return fmt.Errorf("failed to list visits: %w", err)
	}

	if len(visits) == 0 {
		fmt.Println("No upcoming visits")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "SCHEDULED\tPROPERTY\tLEAD\tSTATUS\tID")
	_, _ = fmt.Fprintln(w, "---------\t--------\t----\t------\t--")

	for _, v := range visits {
		_, _ = fmt.Fprintf(w, "%s\t%d\t%d\t%s\t%d\n",
			v.ScheduledAt.Local().Format("2006-01-02 15:04"), v.PropertyID, v.LeadID, v.Status, v.ID)
	}
	_ = w.Flush()

	fmt.Printf("\nTotal: %d visit(s)\n", len(visits))
	return nil
}

// CheckInVisitCommand marks arrival at a visit.
func CheckInVisitCommand(client *api.Client, args []string) error {
	return visitActionCommand(args, "check-in", func(ctx context.Context, id int64) error {
		visit, err := client.CheckInVisit(ctx, id)
		if err != nil {
			return err
		}
		fmt.Printf("✓ Checked in to visit %d (status: %s)\n", visit.ID, visit.Status)
		return nil
	})
}

// CheckOutVisitCommand completes a visit.
func CheckOutVisitCommand(client *api.Client, args []string) error {
	return visitActionCommand(args, "check-out", func(ctx context.Context, id int64) error {
		visit, err := client.CheckOutVisit(ctx, id)
		if err != nil {
			return err
		}
		fmt.Printf("✓ Checked out of visit %d (status: %s)\n", visit.ID, visit.Status)
		return nil
	})
}

// CancelVisitCommand cancels a visit.
func CancelVisitCommand(client *api.Client, args []string) error {
	return visitActionCommand(args, "cancel", func(ctx context.Context, id int64) error {
		visit, err := client.CancelVisit(ctx, id)
		if err != nil {
			return err
		}
		fmt.Printf("✓ Visit %d cancelled\n", visit.ID)
		return nil
	})
}

// RescheduleVisitCommand moves a visit to a new time.
func RescheduleVisitCommand(client *api.Client, args []string) error {
	fs := flag.NewFlagSet("reschedule-visit", flag.ExitOnError)
	at := fs.String("at", "", "New time, RFC 3339 (required)")
	_ = fs.Parse(args)

	id, err := parseIDArg(fs, "visit")
	if err != nil {
		return err
	}
	if *at == "" {
		return fmt.Errorf("--at is required")
	}
	when, err := time.Parse(time.RFC3339, *at)
	if err != nil {
		return fmt.Errorf("invalid --at value: %w", err)
	}

	ctx, cancel := commandContext()
	defer cancel()

	visit, err := client.RescheduleVisit(ctx, id, when)
	if err != nil {
		return fmt.Errorf("failed to reschedule visit: %w", err)
	}

	fmt.Printf("✓ Visit %d rescheduled to %s\n", visit.ID, visit.ScheduledAt.Local().Format("2006-01-02 15:04"))
	return nil
}

func visitActionCommand(args []string, name string, run func(ctx context.Context, id int64) error) error {
	fs := flag.NewFlagSet(name, flag.ExitOnError)
	_ = fs.Parse(args)

	id, err := parseIDArg(fs, "visit")
	if err != nil {
		return err
	}

	ctx, cancel := commandContext()
	defer cancel()

	if err := run(ctx, id); err != nil {
		return fmt.Errorf("visit %s failed: %w", name, err)
	}
	return nil
}
