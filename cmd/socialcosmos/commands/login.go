package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"socialcosmos/internal/domain"
)

func loginCmd() *cobra.Command {
	var password string
	var remember bool

	cmd := &cobra.Command{
		Use:   "login <username>",
		Short: "Authenticate; --remember keeps the session on disk",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			username := domain.Username(args[0])
			result, err := appCtx.Sessions.Login(username, password, remember)
			if err != nil {
				return err
			}
			fmt.Println("Login successful!")
			if remember {
				if err := rememberSessionToken(result.SessionToken); err != nil {
					return err
				}
				fmt.Printf("Logged in as %s (session remembered)\n", result.Username)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&password, "password", "p", "", "password")
	cmd.Flags().BoolVar(&remember, "remember", false, "remember this login")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

func whoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Print the current identity",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println(currentIdentity())
			return nil
		},
	}
}
