package command

// root.go defines the root command for the mrp CLI application.
// set up the global flags here.

import (
	"fmt"
	"os"
	"strconv"

	"mrp/cmd/cli/authentication"
	"mrp/cmd/cli/command/client"

	"github.com/spf13/cobra"
)

var (
	apiURL string // Global flag for API server URL
	token  string // bearer token, overrides the one stored by `auth login`
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "mrp",
	Short: "mrp - Media Rating Platform command line client",
	Long: `mrp is a client for the Media Rating Platform API. Use it to:
- Register and log in
- Create, update and delete media entries
- Rate media, like and confirm ratings
- Keep a list of favorites

Use "mrp [command] --help" to see all available commands.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err) // Print error to standard error
		os.Exit(1)
	}
}

func init() {
	defaultAPI := os.Getenv("MRP_API_URL")
	if defaultAPI == "" {
		defaultAPI = "http://localhost:8080"
	}

	// Global persistent flags = available to all subcommands
	rootCmd.PersistentFlags().StringVar(&apiURL, "api", defaultAPI, "API server URL (env MRP_API_URL)")
	rootCmd.PersistentFlags().StringVar(&token, "token", os.Getenv("MRP_TOKEN"), "bearer token (env MRP_TOKEN), defaults to the stored login")

	rootCmd.AddCommand(authCmd, mediaCmd, ratingCmd, favoriteCmd)
}

// newClient returns an API client without credentials.
func newClient() *client.HTTPClient {
	return client.NewHTTPClient(apiURL)
}

// newAuthedClient returns an API client carrying the --token flag or the stored login token.
func newAuthedClient() (*client.HTTPClient, error) {
	c := newClient()
	if token != "" {
		c.SetToken(token)
		return c, nil
	}
	creds, err := authentication.GetToken()
	if err != nil {
		return nil, err
	}
	c.SetToken(creds.Token)
	return c, nil
}

func parseIDArg(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", arg)
	}
	return id, nil
}
