package cli

import (
	"context"
	"os"
	"strconv"

	"github.com/dmitrijs2005/blogsync/internal/client/store"
)

// Connect interactively collects host, port and API key and saves them as the
// session configuration. The key is read without echo and never printed back.
func (a *App) Connect(ctx context.Context) error {
	host, err := GetSimpleText(a.reader, "Server host", os.Stdout)
	if err != nil {
		a.log.Error(ctx, "input error", "error", err)
		return err
	}

	rawPort, err := GetSimpleText(a.reader, "Server port (empty for default)", os.Stdout)
	if err != nil {
		a.log.Error(ctx, "input error", "error", err)
		return err
	}
	port := store.DefaultPort
	if rawPort != "" {
		port, err = strconv.Atoi(rawPort)
		if err != nil {
			printlnFn("Port must be a number")
			return err
		}
	}

	apiKey, err := GetAPIKey(os.Stdout)
	if err != nil {
		a.log.Error(ctx, "input error", "error", err)
		return err
	}

	if err := a.state.SaveConfiguration(ctx, host, port, apiKey); err != nil {
		a.log.Error(ctx, "error saving configuration", "error", err)
		return err
	}

	printlnFn("Connected.")
	return nil
}

// Disconnect wipes the stored configuration and returns the session to its
// unconfigured state. The server is not contacted.
func (a *App) Disconnect(ctx context.Context) error {
	if err := a.state.ClearConfiguration(ctx); err != nil {
		a.log.Error(ctx, "error clearing configuration", "error", err)
		return err
	}
	a.Mode = ModeDisabled
	printlnFn("Disconnected.")
	return nil
}

// Status prints the connection details (never the API key).
func (a *App) Status(ctx context.Context) error {
	if !a.isConfigured() {
		printlnFn("Not connected. Use 'connect' to configure a server.")
		return nil
	}
	printlnFn("Server:", a.state.Host()+":"+strconv.Itoa(a.state.Port()))
	printlnFn("Mode:", string(a.Mode))
	return nil
}
