package command

import (
	"fmt"

	"mrp/cmd/cli/authentication"

	"github.com/spf13/cobra"
)

// auth.go handles authentication commands: register, login, logout and whoami.

// authCmd represents the auth command for authentication related subcommands
var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Authentication commands",
	Long:  `Authenticate with the MRP API server. Supports registration, login, logout.`,
}

// registerCmd represents the register command
var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Register a new account",
	RunE: func(cmd *cobra.Command, args []string) error {
		username, _ := cmd.Flags().GetString("username")
		password, _ := cmd.Flags().GetString("password")

		user, err := newClient().Register(username, password)
		if err != nil {
			return fmt.Errorf("registration process failed: %w", err)
		}

		fmt.Println("✓ Registration successful! Please login to continue.")
		fmt.Printf("UserID: %d\n", user.ID)
		return nil
	},
}

// loginCmd represents the login command
var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Login and store the session token",
	RunE: func(cmd *cobra.Command, args []string) error {
		username, _ := cmd.Flags().GetString("username")
		password, _ := cmd.Flags().GetString("password")

		sessionToken, err := newClient().Login(username, password)
		if err != nil {
			return fmt.Errorf("login process failed: %w", err)
		}

		if err := authentication.StoreToken(&authentication.StoredCredentials{Username: username, Token: sessionToken}); err != nil {
			// no keyring available, the token can still be passed with --token
			fmt.Printf("Could not store token: %v\n", err)
			fmt.Printf("Token: %s\n", sessionToken)
		}
		fmt.Println("✓ Successfully logged in!")
		return nil
	},
}

// logoutCmd represents the logout command
var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Forget the stored session token",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := authentication.DeleteToken(); err != nil {
			return err
		}
		fmt.Println("✓ Successfully logged out.")
		return nil
	},
}

// whoamiCmd prints the profile of the logged in user
var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the current user",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newAuthedClient()
		if err != nil {
			return err
		}
		user, err := c.Me()
		if err != nil {
			return err
		}
		fmt.Printf("%d\t%s\n", user.ID, user.Username)
		return nil
	},
}

// init function to add auth commands to root command
func init() {
	authCmd.AddCommand(registerCmd, loginCmd, logoutCmd, whoamiCmd)

	for _, cmd := range []*cobra.Command{registerCmd, loginCmd} {
		cmd.Flags().StringP("username", "u", "", "Username")
		cmd.Flags().StringP("password", "p", "", "Password")
		cmd.MarkFlagRequired("username")
		cmd.MarkFlagRequired("password")
	}
}
