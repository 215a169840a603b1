package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/Kiruse/kayring/internal/app"
)

var (
	dir    string
	appCtx *app.Wire
)

func Execute() error {
	root := &cobra.Command{
		Use:          "kayring",
		Short:        "Local encrypted keyring for cryptocurrency private keys",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if dir == "" {
				dir = os.Getenv("KAYRING_DIR")
			}
			if dir == "" {
				home, err := os.UserHomeDir()
				if err != nil {
					return fmt.Errorf("could not determine the keystore directory: %w", err)
				}
				dir = filepath.Join(home, ".kayring")
			}
			appCtx = app.NewWire(app.Config{Dir: dir})
			return nil
		},
	}

	root.PersistentFlags().StringVar(&dir, "dir", "", "keystore directory (default $KAYRING_DIR or ~/.kayring)")

	root.AddCommand(setCmd(), getCmd(), listCmd(), cloneCmd())
	return root.Execute()
}
