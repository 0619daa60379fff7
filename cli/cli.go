// ABOUTME: Shared helpers for the CLI commands
package cli

import (
	"context"
	"flag"
	"fmt"
	"strconv"
	"time"
)

const commandTimeout = 30 * time.Second

func commandContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), commandTimeout)
}

// parseIDArg reads the first positional argument as a record id.
func parseIDArg(fs *flag.FlagSet, what string) (int64, error) {
	if len(fs.Args()) < 1 {
		return 0, fmt.Errorf("%s ID is required", what)
	}
	id, err := strconv.ParseInt(fs.Args()[0], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s ID: %w", what, err)
	}
	return id, nil
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
