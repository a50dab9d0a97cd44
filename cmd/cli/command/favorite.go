package command

import (
	"fmt"

	"github.com/spf13/cobra"
)

var favoriteCmd = &cobra.Command{
	Use:   "favorite",
	Short: "Manage your favorite media",
}

var favoriteAddCmd = &cobra.Command{
	Use:   "add <media-id>",
	Short: "Add a media entry to your favorites",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseIDArg(args[0])
		if err != nil {
			return err
		}
		c, err := newAuthedClient()
		if err != nil {
			return err
		}
		if err := c.AddFavorite(id); err != nil {
			return err
		}
		fmt.Printf("✓ Media %d is a favorite\n", id)
		return nil
	},
}

var favoriteRemoveCmd = &cobra.Command{
	Use:   "remove <media-id>",
	Short: "Remove a media entry from your favorites",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseIDArg(args[0])
		if err != nil {
			return err
		}
		c, err := newAuthedClient()
		if err != nil {
			return err
		}
		if err := c.RemoveFavorite(id); err != nil {
			return err
		}
		fmt.Printf("✓ Media %d removed from favorites\n", id)
		return nil
	},
}

var favoriteListCmd = &cobra.Command{
	Use:   "list",
	Short: "List your favorites",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newAuthedClient()
		if err != nil {
			return err
		}
		list, err := c.ListFavorites()
		if err != nil {
			return err
		}
		printMedia(list)
		return nil
	},
}

func init() {
	favoriteCmd.AddCommand(favoriteAddCmd, favoriteRemoveCmd, favoriteListCmd)
}
