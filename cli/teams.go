// ABOUTME: Team CLI commands
package cli

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/imocrm/imocrm/api"
	"github.com/imocrm/imocrm/forms"
)

// AddTeamCommand creates a new team.
func AddTeamCommand(client *api.Client, args []string) error {
	fs := flag.NewFlagSet("add-team", flag.ExitOnError)
	name := fs.String("name", "", "Team name (required)")
	description := fs.String("description", "", "Team description")
	manager := fs.String("manager", "", "Manager agent ID")
	_ = fs.Parse(args)

	draft := forms.NewTeamDraft()
	draft.Name = *name
	draft.Description = *description
	draft.Manager = *manager

	payload, errs := draft.Submission()
	if !errs.OK() {
		return fmt.Errorf("validação falhou: %s", strings.Join(errs, "; "))
	}

	ctx, cancel := commandContext()
	defer cancel()

	created, err := client.CreateTeam(ctx, payload)
	if err != nil {
		return fmt.Errorf("failed to create team: %w", err)
	}

	fmt.Printf("✓ Team created: %s (ID: %d)\n", created.Name, created.ID)
	return nil
}

// ListTeamsCommand lists teams.
func ListTeamsCommand(client *api.Client, args []string) error {
	fs := flag.NewFlagSet("list-teams", flag.ExitOnError)
	query := fs.String("query", "", "Search by name or description")
	limit := fs.Int("limit", 50, "Maximum results")
	_ = fs.Parse(args)

	ctx, cancel := commandContext()
	defer cancel()

	teams, err := client.ListTeams(ctx, api.ListOptions{Search: *query, Limit: *limit})
	if err != nil {
		return fmt.Errorf("failed to list teams: %w", err)
	}

	if len(teams) == 0 {
		fmt.Println("No teams found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "NAME\tDESCRIPTION\tMANAGER\tID")
	_, _ = fmt.Fprintln(w, "----\t-----------\t-------\t--")

	for _, t := range teams {
		manager := "-"
		if t.ManagerID != nil {
			manager = strconv.FormatInt(*t.ManagerID, 10)
		}
		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%d\n", t.Name, orDash(t.Description), manager, t.ID)
	}
	_ = w.Flush()

	fmt.Printf("\nTotal: %d team(s)\n", len(teams))
	return nil
}

// UpdateTeamCommand updates a team.
func UpdateTeamCommand(client *api.Client, args []string) error {
	fs := flag.NewFlagSet("update-team", flag.ExitOnError)
	name := fs.String("name", "", "Team name")
	description := fs.String("description", "", "Team description")
	manager := fs.String("manager", "", "Manager agent ID")
	_ = fs.Parse(args)

	id, err := parseIDArg(fs, "team")
	if err != nil {
		return err
	}

	ctx, cancel := commandContext()
	defer cancel()

	existing, err := client.GetTeam(ctx, id)
	if err != nil {
		return fmt.Errorf("team not found: %w", err)
	}

	draft := forms.TeamDraftFrom(existing)
	if *name != "" {
		draft.Name = *name
	}
	if *description != "" {
		draft.Description = *description
	}
	if *manager != "" {
		draft.Manager = *manager
	}

	payload, errs := draft.Submission()
	if !errs.OK() {
		return fmt.Errorf("validação falhou: %s", strings.Join(errs, "; "))
	}

	updated, err := client.UpdateTeam(ctx, id, payload)
	if err != nil {
		return fmt.Errorf("failed to update team: %w", err)
	}

	fmt.Printf("✓ Team updated: %s (ID: %d)\n", updated.Name, updated.ID)
	return nil
}

// DeleteTeamCommand deletes a team.
func DeleteTeamCommand(client *api.Client, args []string) error {
	fs := flag.NewFlagSet("delete-team", flag.ExitOnError)
	_ = fs.Parse(args)

	id, err := parseIDArg(fs, "team")
	if err != nil {
		return err
	}

	ctx, cancel := commandContext()
	defer cancel()

	if err := client.DeleteTeam(ctx, id); err != nil {
		return fmt.Errorf("failed to delete team: %w", err)
	}

	fmt.Printf("✓ Team deleted: %d\n", id)
	return nil
}
