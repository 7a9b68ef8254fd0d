package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func postCmd() *cobra.Command {
	var imagePath string

	cmd := &cobra.Command{
		Use:   "post <content>",
		Short: "Publish a post, optionally with an image",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var image []byte
			if imagePath != "" {
				b, err := os.ReadFile(imagePath)
				if err != nil {
					return err
				}
				image = b
			}
			if err := appCtx.Feed.Create(currentIdentity(), args[0], image); err != nil {
				return err
			}
			fmt.Println("Post created successfully!")
			return nil
		},
	}
	cmd.Flags().StringVar(&imagePath, "image", "", "path to an image to attach")
	return cmd
}

func feedCmd() *cobra.Command {
	var shuffle bool

	cmd := &cobra.Command{
		Use:   "feed",
		Short: "Print the feed",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			posts, err := appCtx.Feed.Feed(shuffle)
			if err != nil {
				return err
			}
			for _, p := range posts {
				fmt.Printf("%s: %s", p.Author, p.Content)
				if len(p.Image) > 0 {
					fmt.Printf(" [image, %d bytes]", len(p.Image))
				}
				fmt.Println()
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&shuffle, "shuffle", false, "shuffle the feed order")
	return cmd
}
