package commands

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"socialcosmos/internal/domain"
)

// call allocates a placeholder room identifier. Media and signaling are the
// job of the external WebRTC component the front end embeds.
func callCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "call <peer>",
		Short: "Allocate a placeholder video-call room for a peer",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			peer := domain.Username(args[0])
			if _, err := appCtx.Credentials.Profile(peer); err != nil {
				return err
			}
			fmt.Printf("Video call room for %s and %s: room-%s\n",
				currentIdentity(), peer, uuid.NewString())
			return nil
		},
	}
}
