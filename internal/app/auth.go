package app

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/hubctl/internal/config"
	"github.com/blackwell-systems/hubctl/internal/logger"
)

func newLoginCmd() *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in to the Hub and store the session",
		RunE: func(cmd *cobra.Command, args []string) error {
			var err error
			if email == "" {
				if email, err = prompt("Email: "); err != nil {
					return err
				}
			}
			if password == "" {
				if password, err = prompt("Password: "); err != nil {
					return err
				}
			}

			token, err := client.Login(cmd.Context(), email, password)
			if err != nil {
				return err
			}
			if err := config.SaveSession(token); err != nil {
				warn("session not persisted: %v", err)
			}

			user, err := client.Me(cmd.Context())
			if err != nil {
				ok("logged in")
				return nil
			}
			log.Info("logged in", logger.String("user", user.ID))
			ok("logged in as %s <%s>", user.Name, user.Email)
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Account email")
	cmd.Flags().StringVar(&password, "password", "", "Account password (prompted if omitted)")
	return cmd
}

func newSignupCmd() *cobra.Command {
	var name, email, password string

	cmd := &cobra.Command{
		Use:   "signup",
		Short: "Create a Hub account and log in",
		RunE: func(cmd *cobra.Command, args []string) error {
			var err error
			if name == "" {
				if name, err = prompt("Name: "); err != nil {
					return err
				}
			}
			if email == "" {
				if email, err = prompt("Email: "); err != nil {
					return err
				}
			}
			if password == "" {
				if password, err = prompt("Password: "); err != nil {
					return err
				}
			}

			token, err := client.Signup(cmd.Context(), name, email, password)
			if err != nil {
				return err
			}
			if err := config.SaveSession(token); err != nil {
				warn("session not persisted: %v", err)
			}
			ok("account created, logged in as %s", email)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Display name")
	cmd.Flags().StringVar(&email, "email", "", "Account email")
	cmd.Flags().StringVar(&password, "password", "", "Account password (prompted if omitted)")
	return cmd
}

func newLogoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Log out and clear the stored session",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := client.Logout(cmd.Context()); err != nil {
				// The server call is best effort: the local session is
				// cleared regardless so a dead server cannot pin a login.
				warn("server logout failed: %v", err)
			}
			if err := config.ClearSession(); err != nil {
				return err
			}
			ok("logged out")
			return nil
		},
	}
}

func newWhoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the identity behind the current session",
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := client.Me(cmd.Context())
			if err != nil {
				return err
			}
			header("%s", user.Name)
			fmt.Printf("  email: %s\n", user.Email)
			fmt.Printf("  id:    %s\n", user.ID)
			return nil
		},
	}
}

func prompt(label string) (string, error) {
	fmt.Print(label)
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}
