package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Crusty-Banana/medbot-client/internal/api"
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Sign in to the backend",
	RunE: func(cmd *cobra.Command, args []string) error {
		email, err := cmd.Flags().GetString("email")
		if err != nil {
			return err
		}
		password, err := cmd.Flags().GetString("password")
		if err != nil {
			return err
		}
		if email == "" {
			email, err = promptLine("Email: ")
			if err != nil {
				return err
			}
		}
		if password == "" {
			password, err = promptLine("Password: ")
			if err != nil {
				return err
			}
		}

		user, err := session.Login(cmd.Context(), email, password)
		if err != nil {
			return err
		}
		if user != nil {
			fmt.Printf("%s %s %s\n", tr("signed_in_as"), user.FirstName, user.LastName)
		} else {
			fmt.Println(tr("signed_in_as"), email)
		}
		return nil
	},
}

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Create a new account and sign in",
	RunE: func(cmd *cobra.Command, args []string) error {
		email, _ := cmd.Flags().GetString("email")
		password, _ := cmd.Flags().GetString("password")
		firstName, _ := cmd.Flags().GetString("first-name")
		lastName, _ := cmd.Flags().GetString("last-name")
		vietnamese, _ := cmd.Flags().GetBool("vietnamese")

		var err error
		if email == "" {
			if email, err = promptLine("Email: "); err != nil {
				return err
			}
		}
		if password == "" {
			if password, err = promptLine("Password: "); err != nil {
				return err
			}
		}

		req := api.RegisterRequest{
			Email:       email,
			Password:    password,
			FirstName:   firstName,
			LastName:    lastName,
			Preferences: &api.Preferences{IsVietnamese: vietnamese},
		}
		if err := client.Register(cmd.Context(), req); err != nil {
			return err
		}

		// Registration does not issue tokens; sign in right away.
		if _, err := session.Login(cmd.Context(), email, password); err != nil {
			return fmt.Errorf("account created but login failed: %w", err)
		}
		fmt.Println(tr("signed_in_as"), email)
		return nil
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Sign out and discard local credentials",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := session.Logout(cmd.Context()); err != nil {
			return err
		}
		fmt.Println(tr("logout"))
		return nil
	},
}

func promptLine(prompt string) (string, error) {
	fmt.Fprint(os.Stderr, prompt)
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func init() {
	loginCmd.Flags().String("email", "", "account email")
	loginCmd.Flags().String("password", "", "account password (prompted when omitted)")

	registerCmd.Flags().String("email", "", "account email")
	registerCmd.Flags().String("password", "", "account password (prompted when omitted)")
	registerCmd.Flags().String("first-name", "", "first name")
	registerCmd.Flags().String("last-name", "", "last name")
	registerCmd.Flags().Bool("vietnamese", false, "use Vietnamese as the assistant language")
}
