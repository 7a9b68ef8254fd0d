package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"socialcosmos/internal/domain"
)

func registerCmd() *cobra.Command {
	var password, confirm string

	cmd := &cobra.Command{
		Use:   "register <username>",
		Short: "Create a profile",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			username := domain.Username(args[0])
			if err := appCtx.Credentials.Register(username, password, confirm); err != nil {
				return err
			}
			fmt.Println("Registration successful! You can now log in.")
			return nil
		},
	}
	cmd.Flags().StringVarP(&password, "password", "p", "", "password")
	cmd.Flags().StringVar(&confirm, "confirm", "", "password confirmation")
	_ = cmd.MarkFlagRequired("password")
	_ = cmd.MarkFlagRequired("confirm")
	return cmd
}
