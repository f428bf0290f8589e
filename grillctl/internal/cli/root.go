// Package cli wires the grillctl commands onto the views.
package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"mikes-grill/grillctl/internal/api"
	"mikes-grill/grillctl/internal/session"
	"mikes-grill/grillctl/internal/views"
)

const notLoggedInHint = "Not logged in. Run `grillctl login` first."

type app struct {
	server      string
	sessionFile string
	assumeYes   bool

	in *bufio.Reader
}

func (a *app) store() *session.Store {
	return session.NewStore(a.sessionFile)
}

func (a *app) client() *api.Client {
	return api.NewClient(a.server, a.store())
}

// confirmer asks on out and reads y/N from the command's input.
func (a *app) confirmer(out io.Writer) views.Confirmer {
	return views.ConfirmFunc(func(prompt string) bool {
		if a.assumeYes {
			return true
		}
		fmt.Fprintf(out, "%s [y/N]: ", prompt)
		answer, _ := a.in.ReadString('\n')
		answer = strings.ToLower(strings.TrimSpace(answer))
		return answer == "y" || answer == "yes"
	})
}

func (a *app) readLine(out io.Writer, prompt string) string {
	fmt.Fprint(out, prompt)
	line, _ := a.in.ReadString('\n')
	return strings.TrimRight(line, "\r\n")
}

// NewRootCommand builds the command tree. Prompts read from the command's input.
func NewRootCommand() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           "grillctl",
		Short:         "Browse and manage the Mike's Grill site",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			a.in = bufio.NewReader(cmd.InOrStdin())
		},
	}

	defaultServer := os.Getenv("GRILL_SERVER")
	if defaultServer == "" {
		defaultServer = "http://localhost:8080"
	}
	root.PersistentFlags().StringVar(&a.server, "server", defaultServer, "site origin")
	root.PersistentFlags().StringVar(&a.sessionFile, "session-file", session.DefaultPath(), "where the login session is kept")
	root.PersistentFlags().BoolVarP(&a.assumeYes, "yes", "y", false, "answer yes to confirmations")

	root.AddCommand(
		newLoginCommand(a),
		newLogoutCommand(a),
		newPublicCommand(a),
		newContactCommand(a),
		newMenuCommand(a),
		newCategoriesCommand(a),
		newHoursCommand(a),
		newHeroCommand(a),
		newContactsCommand(a),
		newUsersCommand(a),
	)
	return root
}

// Execute runs grillctl against the process streams and returns the exit code.
func Execute() int {
	root := NewRootCommand()
	if err := root.Execute(); err != nil {
		fmt.Fprintln(root.ErrOrStderr(), describe(err))
		return 1
	}
	return 0
}

func describe(err error) string {
	switch {
	case errors.Is(err, session.ErrNotLoggedIn):
		return notLoggedInHint
	case errors.Is(err, views.ErrCancelled):
		return "Cancelled."
	default:
		return err.Error()
	}
}
