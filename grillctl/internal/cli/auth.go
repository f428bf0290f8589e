package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"mikes-grill/grillctl/internal/views"
)

func newLoginCommand(a *app) *cobra.Command {
	var username, password string
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in as an admin",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if username == "" {
				username = a.readLine(out, "Username: ")
			}
			if password == "" {
				password = a.readLine(out, "Password: ")
			}
			s, err := views.NewLoginView(a.client(), a.store()).Login(cmd.Context(), username, password)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "Logged in as %s.\n", s.Username)
			return nil
		},
	}
	cmd.Flags().StringVar(&username, "username", "", "admin username")
	cmd.Flags().StringVar(&password, "password", "", "admin password (prompted when omitted)")
	return cmd
}

func newLogoutCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "End the admin session",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := views.NewLoginView(a.client(), a.store()).Logout(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Logged out.")
			return nil
		},
	}
}
