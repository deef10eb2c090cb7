package main

import (
	"fmt"
	"os"
	"strings"

	"ads-dental-admin/cmd/bootstrap"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "ads-dental-admin",
		Short: "ADS Dental administration dashboard",
	}

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(loginCmd())
	rootCmd.AddCommand(logoutCmd())
	rootCmd.AddCommand(whoamiCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the dashboard server",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Initialize application with all dependencies
			app, err := bootstrap.New()
			if err != nil {
				logrus.Fatalf("Failed to initialize application: %v", err)
			}
			return app.Run()
		},
	}
}

// loginCmd signs in and saves the session for the next serve.
func loginCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in and save the session",
		RunE: func(cmd *cobra.Command, args []string) error {
			username, _ := cmd.Flags().GetString("username")
			password, _ := cmd.Flags().GetString("password")
			if username == "" || password == "" {
				return fmt.Errorf("--username and --password are required")
			}

			app, err := bootstrap.New()
			if err != nil {
				return err
			}
			defer app.Close()

			session, err := app.Session.Login(cmd.Context(), username, password)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Signed in as %s (%s)\n", session.User.Username, strings.Join(session.User.Roles, ", "))
			return nil
		},
	}
	cmd.Flags().String("username", "", "Username or email")
	cmd.Flags().String("password", "", "Password")
	return cmd
}

func logoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the saved session",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := bootstrap.New()
			if err != nil {
				return err
			}
			defer app.Close()

			if err := app.Session.Logout(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Signed out")
			return nil
		},
	}
}

func whoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the saved session",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := bootstrap.New()
			if err != nil {
				return err
			}
			defer app.Close()

			session, err := app.Session.Restore(cmd.Context())
			if err != nil {
				return err
			}
			if session == nil {
				fmt.Fprintln(cmd.OutOrStdout(), "Not signed in")
				return nil
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "User:  %s <%s>\n", session.User.Username, session.User.Email)
			fmt.Fprintf(out, "Roles: %s\n", strings.Join(session.User.Roles, ", "))
			if session.ExpiresAt != nil {
				fmt.Fprintf(out, "Token expires: %s\n", session.ExpiresAt.Format("2006-01-02 15:04 MST"))
			}
			return nil
		},
	}
}
