package command

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"mrp/internal/microservices/http-api/dto"

	"github.com/spf13/cobra"
)

var mediaCmd = &cobra.Command{
	Use:   "media",
	Short: "Browse and manage media entries",
}

var mediaListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all media entries",
	RunE: func(cmd *cobra.Command, args []string) error {
		list, err := newClient().ListMedia()
		if err != nil {
			return err
		}
		printMedia(list)
		return nil
	},
}

var mediaGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show one media entry",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseIDArg(args[0])
		if err != nil {
			return err
		}
		m, err := newClient().GetMedia(id)
		if err != nil {
			return err
		}
		printMedia([]dto.MediaResponse{*m})
		if m.Description != "" {
			fmt.Println()
			fmt.Println(m.Description)
		}
		return nil
	},
}

var mediaCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a media entry owned by you",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newAuthedClient()
		if err != nil {
			return err
		}
		req := mediaRequestFromFlags(cmd)
		m, err := c.CreateMedia(&req)
		if err != nil {
			return err
		}
		fmt.Printf("✓ Created media %d\n", m.ID)
		return nil
	},
}

var mediaUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Replace the content of a media entry you created",
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
		req := mediaRequestFromFlags(cmd)
		if err := c.UpdateMedia(id, &req); err != nil {
			return err
		}
		fmt.Printf("✓ Updated media %d\n", id)
		return nil
	},
}

var mediaDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a media entry you created, with its ratings",
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
		if err := c.DeleteMedia(id); err != nil {
			return err
		}
		fmt.Printf("✓ Deleted media %d\n", id)
		return nil
	},
}

func init() {
	mediaCmd.AddCommand(mediaListCmd, mediaGetCmd, mediaCreateCmd, mediaUpdateCmd, mediaDeleteCmd)

	for _, cmd := range []*cobra.Command{mediaCreateCmd, mediaUpdateCmd} {
		cmd.Flags().StringP("title", "t", "", "Title")
		cmd.Flags().StringP("description", "d", "", "Description")
		cmd.Flags().String("type", "", "Media type (movie, series, game)")
		cmd.Flags().Int("year", 0, "Release year")
		cmd.Flags().StringSlice("genres", nil, "Comma separated genres")
		cmd.Flags().Int("age", 0, "Age restriction")
		cmd.MarkFlagRequired("title")
	}
}

func mediaRequestFromFlags(cmd *cobra.Command) dto.MediaRequest {
	var req dto.MediaRequest
	req.Title, _ = cmd.Flags().GetString("title")
	req.Description, _ = cmd.Flags().GetString("description")
	req.MediaType, _ = cmd.Flags().GetString("type")
	req.Genres, _ = cmd.Flags().GetStringSlice("genres")
	if cmd.Flags().Changed("year") {
		year, _ := cmd.Flags().GetInt("year")
		req.ReleaseYear = &year
	}
	if cmd.Flags().Changed("age") {
		age, _ := cmd.Flags().GetInt("age")
		req.AgeRestriction = &age
	}
	return req
}

func printMedia(list []dto.MediaResponse) {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTITLE\tTYPE\tYEAR\tGENRES\tSCORE\tCREATOR")
	for _, m := range list {
		year := "-"
		if m.ReleaseYear != nil {
			year = fmt.Sprint(*m.ReleaseYear)
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%.2f\t%d\n",
			m.ID, m.Title, m.MediaType, year, strings.Join(m.Genres, ","), m.AverageScore, m.CreatorID)
	}
	w.Flush()
}
