package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"socialcosmos/internal/domain"
)

func chatCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "chat <peer> <message>",
		Short: "Send a chat message to a peer",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			peer := domain.Username(args[0])
			if err := appCtx.Chat.Send(currentIdentity(), peer, args[1]); err != nil {
				return err
			}
			fmt.Println("Message sent successfully!")
			return nil
		},
	}
}

func historyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "history <peer>",
		Short: "Print the shared thread with a peer",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			peer := domain.Username(args[0])
			messages, err := appCtx.Chat.History(currentIdentity(), peer)
			if err != nil {
				return err
			}
			if len(messages) == 0 {
				fmt.Println("No chat history available.")
				return nil
			}
			for _, m := range messages {
				fmt.Printf("%s: %s\n", m.Sender, m.Content)
			}
			return nil
		},
	}
}
