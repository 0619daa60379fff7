// ABOUTME: Session CLI commands: login, logout and whoami
// ABOUTME: Login verifies the credential against /auth/me before storing it
package cli

import (
	"flag"
	"fmt"

	"github.com/imocrm/imocrm/api"
	"github.com/imocrm/imocrm/models"
	"github.com/imocrm/imocrm/session"
)

// LoginCommand verifies a session token and persists it.
func LoginCommand(client *api.Client, store *session.Store, args []string) error {
	fs := flag.NewFlagSet("login", flag.ExitOnError)
	token := fs.String("token", "", "Session token issued by the backend (required)")
	_ = fs.Parse(args)

	if *token == "" {
		return fmt.Errorf("--token is required")
	}

	client.SetSessionToken(*token)

	ctx, cancel := commandContext()
	defer cancel()

	me, err := client.Me(ctx)
	if err != nil {
		return fmt.Errorf("failed to verify session: %w", err)
	}
	if me == nil {
		return fmt.Errorf("credencial inválida ou expirada")
	}

	state := &session.State{
		Token: *token,
		Email: me.Email,
		Role:  models.ParseRole(me.Role),
	}
	if err := store.Save(state); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}

	fmt.Printf("✓ Logged in as %s (%s)\n", state.Email, state.Role)
	return nil
}

// LogoutCommand discards the stored session.
func LogoutCommand(store *session.Store, args []string) error {
	fs := flag.NewFlagSet("logout", flag.ExitOnError)
	_ = fs.Parse(args)

	if err := store.Clear(); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}

	fmt.Println("✓ Logged out")
	return nil
}

// WhoAmICommand prints the stored identity and re-checks it against
// the backend.
func WhoAmICommand(client *api.Client, store *session.Store, args []string) error {
	fs := flag.NewFlagSet("whoami", flag.ExitOnError)
	_ = fs.Parse(args)

	state, err := store.Load()
	if err != nil {
		return fmt.Errorf("failed to load session: %w", err)
	}
	if state == nil {
		fmt.Println("Not logged in")
		return nil
	}

	ctx, cancel := commandContext()
	defer cancel()

	me, err := client.Me(ctx)
	if err != nil {
		return fmt.Errorf("failed to verify session: %w", err)
	}
	if me == nil {
		fmt.Printf("%s (%s) - session expired, login again\n", state.Email, state.Role)
		return nil
	}

	perms := state.Permissions()
	fmt.Printf("%s (%s)\n", me.Email, models.ParseRole(me.Role))
	fmt.Printf("  Manage teams: %v\n", perms.CanManageTeams)
	fmt.Printf("  Manage agents: %v\n", perms.CanManageAgents)
	fmt.Printf("  Delete records: %v\n", perms.CanDeleteRecords)
	fmt.Printf("  Publish listings: %v\n", perms.CanPublish)
	return nil
}
