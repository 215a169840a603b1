package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Kiruse/kayring/internal/util/memzero"
)

func getCmd() *cobra.Command {
	var (
		password string
		silent   bool
	)

	cmd := &cobra.Command{
		Use:   "get <name>",
		Short: "Decrypt and print a stored private key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]

			pw, err := resolvePassword(cmd.Flags().Changed("password"), password, silent, false)
			if err != nil {
				return err
			}

			value, err := appCtx.Keyring.Get(name, pw)
			if err != nil {
				return err
			}
			defer memzero.Zero(value)

			fmt.Println(encodeValue(value))
			return nil
		},
	}

	cmd.Flags().StringVarP(&password, "password", "p", "", "encryption password (default $KAYRING_PASSWORD)")
	cmd.Flags().BoolVarP(&silent, "silent", "s", false, "do not output logs or prompt for input")

	return cmd
}
