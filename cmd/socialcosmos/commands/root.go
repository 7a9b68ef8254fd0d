package commands

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"socialcosmos/internal/app"
	"socialcosmos/internal/domain"
)

var (
	home   string
	appCtx *app.Wire
)

func Execute() error {
	root := &cobra.Command{
		Use:   "socialcosmos",
		Short: "SocialCosmos social networking CLI",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if home == "" {
				dir, err := os.UserHomeDir()
				if err != nil {
					return err
				}
				home = filepath.Join(dir, ".socialcosmos")
			}
			cfg, err := app.FromEnv()
			if err != nil {
				return err
			}
			cfg.DataDir = home
			appCtx, err = app.NewWire(cfg)
			return err
		},
	}

	root.PersistentFlags().StringVar(&home, "home", "", "data dir (default ~/.socialcosmos)")

	root.AddCommand(
		registerCmd(), loginCmd(), whoamiCmd(),
		postCmd(), feedCmd(),
		bioCmd(), profileCmd(), usersCmd(),
		chatCmd(), historyCmd(), callCmd(),
	)
	return root.Execute()
}

func sessionTokenPath() string { return filepath.Join(home, "session.token") }

// currentIdentity resolves the acting identity from the remembered session
// token, falling back to Anonymous.
func currentIdentity() domain.Username {
	b, err := os.ReadFile(sessionTokenPath())
	if err != nil {
		return domain.Anonymous
	}
	return appCtx.Sessions.Identity(strings.TrimSpace(string(b)))
}

func rememberSessionToken(token string) error {
	return os.WriteFile(sessionTokenPath(), []byte(token), 0o600)
}
