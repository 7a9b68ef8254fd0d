package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"socialcosmos/internal/domain"
)

func bioCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "bio <text>",
		Short: "Update the current identity's bio",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := appCtx.Credentials.UpdateBio(currentIdentity(), args[0]); err != nil {
				return err
			}
			fmt.Println("Bio updated successfully!")
			return nil
		},
	}
}

func profileCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "profile [username]",
		Short: "Show a profile's username and bio",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			username := currentIdentity()
			if len(args) == 1 {
				username = domain.Username(args[0])
			}
			p, err := appCtx.Credentials.Profile(username)
			if err != nil {
				return err
			}
			fmt.Printf("Username: %s\n", p.Username)
			fmt.Printf("Bio: %s\n", p.Bio)
			return nil
		},
	}
}

func usersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "users",
		Short: "List registered usernames",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			names, err := appCtx.Credentials.ListUsernames()
			if err != nil {
				return err
			}
			for _, name := range names {
				fmt.Println(name)
			}
			return nil
		},
	}
}
