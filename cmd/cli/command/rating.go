package command

import (
	"fmt"
	"os"
	"text/tabwriter"

	"mrp/internal/microservices/http-api/dto"

	"github.com/spf13/cobra"
)

var ratingCmd = &cobra.Command{
	Use:   "rating",
	Short: "Rate media and interact with ratings",
}

var rateCmd = &cobra.Command{
	Use:   "rate <media-id>",
	Short: "Rate a media entry from 1 to 5 stars, replacing your earlier rating",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		mediaID, err := parseIDArg(args[0])
		if err != nil {
			return err
		}
		c, err := newAuthedClient()
		if err != nil {
			return err
		}

		req := dto.RateRequest{}
		req.Stars, _ = cmd.Flags().GetInt("stars")
		if cmd.Flags().Changed("comment") {
			comment, _ := cmd.Flags().GetString("comment")
			req.Comment = &comment
		}

		rating, created, err := c.Rate(mediaID, &req)
		if err != nil {
			return err
		}
		if created {
			fmt.Printf("✓ Rating %d created\n", rating.ID)
		} else {
			fmt.Printf("✓ Rating %d updated\n", rating.ID)
		}
		return nil
	},
}

var ratingListCmd = &cobra.Command{
	Use:   "list [media-id]",
	Short: "List the ratings of a media entry, or your own ratings without an id",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var (
			ratings []dto.RatingResponse
			err     error
		)
		if len(args) == 0 {
			c, cerr := newAuthedClient()
			if cerr != nil {
				return cerr
			}
			ratings, err = c.MyRatings()
		} else {
			mediaID, perr := parseIDArg(args[0])
			if perr != nil {
				return perr
			}
			ratings, err = newClient().ListRatings(mediaID)
		}
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tMEDIA\tUSER\tSTARS\tLIKES\tCONFIRMED\tCOMMENT")
		for _, r := range ratings {
			comment := ""
			if r.Comment != nil {
				comment = *r.Comment
			}
			fmt.Fprintf(w, "%d\t%d\t%d\t%d\t%d\t%t\t%s\n", r.ID, r.MediaID, r.UserID, r.Stars, r.Likes, r.Confirmed, comment)
		}
		return w.Flush()
	},
}

var likeCmd = &cobra.Command{
	Use:   "like <rating-id>",
	Short: "Like a rating",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withRating(args[0], func(id int64, c ratingClient) error {
			likes, err := c.LikeRating(id)
			if err != nil {
				return err
			}
			fmt.Printf("✓ Rating %d now has %d likes\n", id, likes)
			return nil
		})
	},
}

var confirmCmd = &cobra.Command{
	Use:   "confirm <rating-id>",
	Short: "Publish the comment of a rating on media you created",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withRating(args[0], func(id int64, c ratingClient) error {
			if err := c.ConfirmRating(id); err != nil {
				return err
			}
			fmt.Printf("✓ Rating %d confirmed\n", id)
			return nil
		})
	},
}

var ratingDeleteCmd = &cobra.Command{
	Use:   "delete <rating-id>",
	Short: "Delete one of your ratings",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withRating(args[0], func(id int64, c ratingClient) error {
			if err := c.DeleteRating(id); err != nil {
				return err
			}
			fmt.Printf("✓ Rating %d deleted\n", id)
			return nil
		})
	},
}

type ratingClient interface {
	LikeRating(id int64) (int, error)
	ConfirmRating(id int64) error
	DeleteRating(id int64) error
}

func withRating(arg string, fn func(id int64, c ratingClient) error) error {
	id, err := parseIDArg(arg)
	if err != nil {
		return err
	}
	c, err := newAuthedClient()
	if err != nil {
		return err
	}
	return fn(id, c)
}

func init() {
	ratingCmd.AddCommand(rateCmd, ratingListCmd, likeCmd, confirmCmd, ratingDeleteCmd)

	rateCmd.Flags().IntP("stars", "s", 0, "Stars from 1 to 5")
	rateCmd.Flags().StringP("comment", "c", "", "Optional comment, shown once the media creator confirms it")
	rateCmd.MarkFlagRequired("stars")
}
