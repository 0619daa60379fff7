// ABOUTME: Entry point for the imocrm terminal client
// ABOUTME: Routes to the TUI or CLI commands based on arguments
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/imocrm/imocrm/api"
	"github.com/imocrm/imocrm/cli"
	"github.com/imocrm/imocrm/models"
	"github.com/imocrm/imocrm/session"
	"github.com/imocrm/imocrm/tui"
)

const version = "0.3.1"

func main() {
	showVersion := flag.Bool("version", false, "Show version and exit")
	apiURL := flag.String("api-url", "", "Backend base URL (default: config or "+session.DefaultAPIURL+")")

	_ = flag.CommandLine.Parse(os.Args[1:])

	if *showVersion {
		fmt.Printf("imocrm version %s\n", version)
		os.Exit(0)
	}

	args := flag.Args()
	if len(args) == 0 {
		printUsage()
		os.Exit(0)
	}

	cfg, err := session.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *apiURL != "" {
		cfg.APIURL = *apiURL
	}

	client := api.NewClient(cfg.APIURL)
	store := session.NewStore()

	command := args[0]
	commandArgs := args[1:]

	switch command {
	case "login":
		if err := cli.LoginCommand(client, store, commandArgs); err != nil {
			log.Fatalf("Error: %v", err)
		}
		return
	case "logout":
		if err := cli.LogoutCommand(store, commandArgs); err != nil {
			log.Fatalf("Error: %v", err)
		}
		return
	case "whoami":
		attachSession(client, store)
		if err := cli.WhoAmICommand(client, store, commandArgs); err != nil {
			log.Fatalf("Error: %v", err)
		}
		return
	}

	// Everything below talks to protected endpoints.
	state := attachSession(client, store)

	switch command {
	case "tui":
		perms := state.Permissions()
		p := tea.NewProgram(tui.NewModel(client, perms), tea.WithAltScreen())
		if _, err := p.Run(); err != nil {
			log.Fatalf("TUI failed: %v", err)
		}

	case "crm":
		if len(commandArgs) == 0 {
			fmt.Println("Error: crm requires a subcommand")
			printUsage()
			os.Exit(1)
		}

		crmCommand := commandArgs[0]
		crmArgs := commandArgs[1:]

		switch crmCommand {
		// Property commands
		case "add-property":
			fatalOnErr(cli.AddPropertyCommand(client, crmArgs))
		case "list-properties":
			fatalOnErr(cli.ListPropertiesCommand(client, crmArgs))
		case "update-property":
			fatalOnErr(cli.UpdatePropertyCommand(client, crmArgs))
		case "delete-property":
			fatalOnErr(cli.DeletePropertyCommand(client, crmArgs))
		case "upload-images":
			fatalOnErr(cli.UploadImagesCommand(client, crmArgs))
		case "upload-video":
			fatalOnErr(cli.UploadVideoCommand(client, crmArgs))

		// Lead commands
		case "add-lead":
			fatalOnErr(cli.AddLeadCommand(client, crmArgs))
		case "list-leads":
			fatalOnErr(cli.ListLeadsCommand(client, crmArgs))
		case "update-lead":
			fatalOnErr(cli.UpdateLeadCommand(client, crmArgs))
		case "delete-lead":
			fatalOnErr(cli.DeleteLeadCommand(client, crmArgs))

		// Team commands
		case "add-team":
			fatalOnErr(cli.AddTeamCommand(client, crmArgs))
		case "list-teams":
			fatalOnErr(cli.ListTeamsCommand(client, crmArgs))
		case "update-team":
			fatalOnErr(cli.UpdateTeamCommand(client, crmArgs))
		case "delete-team":
			fatalOnErr(cli.DeleteTeamCommand(client, crmArgs))

		// Agent commands
		case "list-agents":
			fatalOnErr(cli.ListAgentsCommand(client, crmArgs))
		case "show-agent":
			fatalOnErr(cli.ShowAgentCommand(client, crmArgs))
		case "update-agent":
			fatalOnErr(cli.UpdateAgentCommand(client, crmArgs))

		default:
			fmt.Printf("Unknown crm command: %s\n\n", crmCommand)
			printUsage()
			os.Exit(1)
		}

	case "visits":
		if len(commandArgs) == 0 {
			fatalOnErr(cli.ListVisitsCommand(client, nil))
			return
		}

		visitCommand := commandArgs[0]
		visitArgs := commandArgs[1:]

		switch visitCommand {
		case "list":
			fatalOnErr(cli.ListVisitsCommand(client, visitArgs))
		case "check-in":
			fatalOnErr(cli.CheckInVisitCommand(client, visitArgs))
		case "check-out":
			fatalOnErr(cli.CheckOutVisitCommand(client, visitArgs))
		case "cancel":
			fatalOnErr(cli.CancelVisitCommand(client, visitArgs))
		case "reschedule":
			fatalOnErr(cli.RescheduleVisitCommand(client, visitArgs))
		default:
			fmt.Printf("Unknown visits command: %s\n\n", visitCommand)
			printUsage()
			os.Exit(1)
		}

	case "dashboard":
		fatalOnErr(cli.DashboardCommand(client, commandArgs))

	default:
		fmt.Printf("Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}
}

// attachSession loads the stored session into the client. Commands run
// fine without one; the backend answers 401 and the error surfaces.
func attachSession(client *api.Client, store *session.Store) *session.State {
	state, err := store.Load()
	if err != nil {
		log.Fatalf("Failed to load session: %v", err)
	}
	if state != nil {
		client.SetSessionToken(state.Token)
		return state
	}
	return &session.State{Role: models.RoleAgent}
}

func fatalOnErr(err error) {
	if err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func printUsage() {
	fmt.Printf(`imocrm v%s - Real estate CRM terminal client

USAGE:
  imocrm [global flags] <command> [subcommand] [flags]

GLOBAL FLAGS:
  --version              Show version and exit
  --api-url <url>        Backend base URL (default: %s)

COMMANDS:
  login                  Store a session token
  logout                 Discard the stored session
  whoami                 Show the active identity and capabilities
  tui                    Full-screen terminal backoffice
  crm                    CRM management commands
  visits                 Visit lifecycle commands
  dashboard              Agent dashboard counters

SESSION:
  imocrm login --token <token>    Verify and store a session token
  imocrm logout
  imocrm whoami

CRM COMMANDS:
  imocrm crm add-property      Create a property listing
    --reference <ref>            Internal reference (required)
    --title <title>              Listing title (required)
    --business-type <type>       sale or rent (required)
    --property-type <type>       e.g. apartment (required)
    --price <price>              Asking price (required)
    --district <name>            District (required)
    --municipality <name>        Municipality (required)
    --images <a.jpg,b.jpg>       Local images to upload (at least one image required)

  imocrm crm list-properties   List properties
    --query <text>               Search by reference, title or address
    --status <status>            AVAILABLE, RESERVED, SOLD or CANCELLED
    --limit <n>                  Max results (default: 50)

  imocrm crm update-property [flags] <id>   Update a property
  imocrm crm delete-property <id>           Delete a property
  imocrm crm upload-images <id> <files...>  Upload images
  imocrm crm upload-video <id> <file>       Upload a video

  imocrm crm add-lead          Create a lead
    --name <name>                Lead name (required)
    --email <email>              Email address (required)
    --buyer                      Attach buyer criteria
    --budget-min / --budget-max  Criteria budget range

  imocrm crm list-leads        List leads
  imocrm crm update-lead [flags] <id>
  imocrm crm delete-lead <id>

  imocrm crm add-team          Create a team (leader or admin)
  imocrm crm list-teams        List teams
  imocrm crm update-team [flags] <id>
  imocrm crm delete-team <id>

  imocrm crm list-agents       List agents
  imocrm crm show-agent <id>   Show one agent profile
  imocrm crm update-agent [flags] <id>   Update a profile (admin)

VISIT COMMANDS:
  imocrm visits                List upcoming visits
  imocrm visits check-in <id>
  imocrm visits check-out <id>
  imocrm visits cancel <id>
  imocrm visits reschedule --at <rfc3339> <id>

EXAMPLES:
  imocrm login --token eyJhbGci...
  imocrm crm add-property --reference REF-001 --title "T2 em Alvalade" \
    --business-type sale --property-type apartment --price 250000 \
    --district Lisboa --municipality Lisboa --images foto1.jpg
  imocrm crm list-leads --status new
  imocrm visits check-in 17
  imocrm tui

`, version, session.DefaultAPIURL)
}
