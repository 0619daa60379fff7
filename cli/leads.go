// ABOUTME: Lead CLI commands
// ABOUTME: Buyer leads can carry search criteria with tri-state amenities
package cli

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/imocrm/imocrm/api"
	"github.com/imocrm/imocrm/forms"
	"github.com/imocrm/imocrm/models"
)

// AddLeadCommand creates a new lead.
func AddLeadCommand(client *api.Client, args []string) error {
	fs := flag.NewFlagSet("add-lead", flag.ExitOnError)
	name := fs.String("name", "", "Lead name (required)")
	email := fs.String("email", "", "Email address (required)")
	phone := fs.String("phone", "", "Phone number")
	source := fs.String("source", "", "Origin: website, portal, referral, phone, walk_in")
	status := fs.String("status", "", "Status (default: new)")
	agent := fs.String("agent", "", "Assigned agent ID")
	notes := fs.String("notes", "", "Notes about the lead")
	buyer := fs.Bool("buyer", false, "Mark as buyer lead with criteria")
	budgetMin := fs.String("budget-min", "", "Criteria: minimum budget")
	budgetMax := fs.String("budget-max", "", "Criteria: maximum budget")
	criteriaDistricts := fs.String("criteria-districts", "", "Criteria: comma-separated districts")
	criteriaTypes := fs.String("criteria-types", "", "Criteria: comma-separated property types")
	garage := fs.Bool("garage", false, "Criteria: garage required")
	elevator := fs.Bool("elevator", false, "Criteria: elevator required")
	_ = fs.Parse(args)

	draft := forms.NewLeadDraft()
	draft.Name = *name
	draft.Email = *email
	draft.Phone = *phone
	draft.Source = *source
	if *status != "" {
		draft.Status = *status
	}
	draft.AssignedAgent = *agent
	draft.Notes = *notes
	draft.Buyer = *buyer
	if *buyer {
		draft.Criteria.BudgetMin = *budgetMin
		draft.Criteria.BudgetMax = *budgetMax
		draft.Criteria.Districts = splitList(*criteriaDistricts)
		draft.Criteria.PropertyTypes = splitList(*criteriaTypes)
		if *garage {
			draft.Criteria.Garage = models.Required
		}
		if *elevator {
			draft.Criteria.Elevator = models.Required
		}
	}

	payload, errs := draft.Submission()
	if !errs.OK() {
		return fmt.Errorf("validação falhou: %s", strings.Join(errs, "; "))
	}

	ctx, cancel := commandContext()
	defer cancel()

	created, err := client.CreateLead(ctx, payload)
	if err != nil {
		return fmt.Errorf("failed to create lead: %w", err)
	}

	fmt.Printf("✓ Lead created: %s (ID: %d)\n", created.Name, created.ID)
	if created.Criteria != nil {
		fmt.Println("  Buyer criteria attached")
	}
	return nil
}

// ListLeadsCommand lists leads.
func ListLeadsCommand(client *api.Client, args []string) error {
	fs := flag.NewFlagSet("list-leads", flag.ExitOnError)
	query := fs.String("query", "", "Search by name, email or phone")
	status := fs.String("status", "", "Filter by status")
	limit := fs.Int("limit", 50, "Maximum results")
	_ = fs.Parse(args)

	ctx, cancel := commandContext()
	defer cancel()

	leads, err := client.ListLeads(ctx, api.ListOptions{
		Search: *query,
		Status: *status,
		Limit:  *limit,
	})
	if err != nil {
		return fmt.Errorf("failed to list leads: %w", err)
	}

	if len(leads) == 0 {
		fmt.Println("No leads found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "NAME\tEMAIL\tPHONE\tSOURCE\tSTATUS\tID")
	_, _ = fmt.Fprintln(w, "----\t-----\t-----\t------\t------\t--")

	for _, l := range leads {
		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%d\n",
			l.Name, l.Email, orDash(l.Phone), orDash(l.Source), l.Status, l.ID)
	}
	_ = w.Flush()

	fmt.Printf("\nTotal: %d lead(s)\n", len(leads))
	return nil
}

// UpdateLeadCommand updates a lead. Untouched fields keep their stored
// values; the full record always goes back in one request.
func UpdateLeadCommand(client *api.Client, args []string) error {
	fs := flag.NewFlagSet("update-lead", flag.ExitOnError)
	name := fs.String("name", "", "Lead name")
	email := fs.String("email", "", "Email address")
	phone := fs.String("phone", "", "Phone number")
	status := fs.String("status", "", "Status")
	agent := fs.String("agent", "", "Assigned agent ID")
	notes := fs.String("notes", "", "Notes about the lead")
	_ = fs.Parse(args)

	id, err := parseIDArg(fs, "lead")
	if err != nil {
		return err
	}

	ctx, cancel := commandContext()
	defer cancel()

	existing, err := client.GetLead(ctx, id)
	if err != nil {
		return fmt.Errorf("lead not found: %w", err)
	}

	draft := forms.LeadDraftFrom(existing)
	if *name != "" {
		draft.Name = *name
	}
	if *email != "" {
		draft.Email = *email
	}
	if *phone != "" {
		draft.Phone = *phone
	}
	if *status != "" {
		draft.Status = *status
	}
	if *agent != "" {
		draft.AssignedAgent = *agent
	}
	if *notes != "" {
		draft.Notes = *notes
	}

	payload, errs := draft.Submission()
	if !errs.OK() {
		return fmt.Errorf("validação falhou: %s", strings.Join(errs, "; "))
	}

	updated, err := client.UpdateLead(ctx, id, payload)
	if err != nil {
		return fmt.Errorf("failed to update lead: %w", err)
	}

	fmt.Printf("✓ Lead updated: %s (ID: %d)\n", updated.Name, updated.ID)
	return nil
}

// DeleteLeadCommand deletes a lead.
func DeleteLeadCommand(client *api.Client, args []string) error {
	fs := flag.NewFlagSet("delete-lead", flag.ExitOnError)
	_ = fs.Parse(args)

	id, err := parseIDArg(fs, "lead")
	if err != nil {
		return err
	}

	ctx, cancel := commandContext()
	defer cancel()

	if err := client.DeleteLead(ctx, id); err != nil {
		return fmt.Errorf("failed to delete lead: %w", err)
	}

	fmt.Printf("✓ Lead deleted: %d\n", id)
	return nil
}
