// ABOUTME: Agent CLI commands
// ABOUTME: Agents are provisioned server-side; only profiles are editable
package cli

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/imocrm/imocrm/api"
	"github.com/imocrm/imocrm/forms"
)

// ListAgentsCommand lists agents.
func ListAgentsCommand(client *api.Client, args []string) error {
	fs := flag.NewFlagSet("list-agents", flag.ExitOnError)
	query := fs.String("query", "", "Search by name, email or phone")
	limit := fs.Int("limit", 50, "Maximum results")
	_ = fs.Parse(args)

	ctx, cancel := commandContext()
	defer cancel()

	agents, err := client.ListAgents(ctx, api.ListOptions{Search: *query, Limit: *limit})
	if err != nil {
		return fmt.Errorf("failed to list agents: %w", err)
	}

	if len(agents) == 0 {
		fmt.Println("No agents found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "NAME\tEMAIL\tPHONE\tROLE\tID")
	_, _ = fmt.Fprintln(w, "----\t-----\t-----\t----\t--")

	for _, a := range agents {
		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\n", a.Name, a.Email, orDash(a.Phone), a.Role, a.ID)
	}
	_ = w.Flush()

	fmt.Printf("\nTotal: %d agent(s)\n", len(agents))
	return nil
}

// ShowAgentCommand prints one agent profile.
func ShowAgentCommand(client *api.Client, args []string) error {
	fs := flag.NewFlagSet("show-agent", flag.ExitOnError)
	_ = fs.Parse(args)

	id, err := parseIDArg(fs, "agent")
	if err != nil {
		return err
	}

	ctx, cancel := commandContext()
	defer cancel()

	agent, err := client.GetAgent(ctx, id)
	if err != nil {
		return fmt.Errorf("agent not found: %w", err)
	}

	fmt.Printf("%s (ID: %d)\n", agent.Name, agent.ID)
	fmt.Printf("  Email: %s\n", agent.Email)
	fmt.Printf("  Phone: %s\n", orDash(agent.Phone))
	fmt.Printf("  Role: %s\n", agent.Role)
	if agent.LicenseNumber != "" {
		fmt.Printf("  License: %s\n", agent.LicenseNumber)
	}
	if agent.Bio != "" {
		fmt.Printf("  Bio: %s\n", agent.Bio)
	}
	if agent.Website != "" {
		fmt.Printf("  Website: %s\n", agent.Website)
	}
	return nil
}

// UpdateAgentCommand updates an agent profile.
func UpdateAgentCommand(client *api.Client, args []string) error {
	fs := flag.NewFlagSet("update-agent", flag.ExitOnError)
	name := fs.String("name", "", "Agent name")
	email := fs.String("email", "", "Email address")
	phone := fs.String("phone", "", "Phone number")
	bio := fs.String("bio", "", "Public bio")
	license := fs.String("license", "", "Professional license number")
	website := fs.String("website", "", "Website URL")
	facebook := fs.String("facebook", "", "Facebook URL")
	instagram := fs.String("instagram", "", "Instagram URL")
	linkedin := fs.String("linkedin", "", "LinkedIn URL")
	_ = fs.Parse(args)

	id, err := parseIDArg(fs, "agent")
	if err != nil {
		return err
	}

	ctx, cancel := commandContext()
	defer cancel()

	existing, err := client.GetAgent(ctx, id)
	if err != nil {
		return fmt.Errorf("agent not found: %w", err)
	}

	draft := forms.AgentDraftFrom(existing)
	if *name != "" {
		draft.Name = *name
	}
	if *email != "" {
		draft.Email = *email
	}
	if *phone != "" {
		draft.Phone = *phone
	}
	if *bio != "" {
		draft.Bio = *bio
	}
	if *license != "" {
		draft.LicenseNumber = *license
	}
	if *website != "" {
		draft.Website = *website
	}
	if *facebook != "" {
		draft.Facebook = *facebook
	}
	if *instagram != "" {
		draft.Instagram = *instagram
	}
	if *linkedin != "" {
		draft.LinkedIn = *linkedin
	}

	payload, errs := draft.Submission()
	if !errs.OK() {
		return fmt.Errorf("validação falhou: %s", strings.Join(errs, "; "))
	}

	updated, err := client.UpdateAgent(ctx, id, payload)
	if err != nil {
		return fmt.Errorf("failed to update agent: %w", err)
	}

	fmt.Printf("✓ Agent updated: %s (ID: %d)\n", updated.Name, updated.ID)
	return nil
}
