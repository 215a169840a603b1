package commands

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/Kiruse/kayring/internal/domain"
	"github.com/Kiruse/kayring/internal/util/memzero"
)

func setCmd() *cobra.Command {
	var (
		value    string
		password string
		silent   bool
		force    bool
		echo     bool
		rounds   uint32
	)

	cmd := &cobra.Command{
		Use:   "set <name>",
		Short: "Encrypt and store a private key under a name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]

			pw, err := resolvePassword(cmd.Flags().Changed("password"), password, silent, true)
			if err != nil {
				return err
			}

			hexValue, err := resolveValue(cmd.Flags().Changed("value"), value, silent)
			if err != nil {
				return err
			}
			raw, err := decodeValue(hexValue)
			if err != nil {
				return err
			}
			defer memzero.Zero(raw)

			if !silent {
				color.Cyan("Encrypting...")
			}
			if err := appCtx.Keyring.Set(name, raw, pw, rounds, force); err != nil {
				return err
			}

			if echo {
				fmt.Println(hexValue)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&value, "value", "", "private key to store as a 0x-prefixed hex string (default $KAYRING_VALUE)")
	cmd.Flags().StringVarP(&password, "password", "p", "", "encryption password (default $KAYRING_PASSWORD)")
	cmd.Flags().BoolVarP(&silent, "silent", "s", false, "do not output logs or prompt for input; --value becomes required")
	cmd.Flags().BoolVarP(&force, "force", "f", false, "overwrite the key if it already exists")
	cmd.Flags().BoolVar(&echo, "echo", false, "echo the private key back out, for initialize-and-get scenarios")
	cmd.Flags().Uint32VarP(&rounds, "derivation-rounds", "d", defaultRounds(), "number of rounds to derive the encryption key")

	return cmd
}

// resolveValue returns the hex-encoded value for set: the --value flag wins,
// then KAYRING_VALUE, then an interactive prompt. Under silent a missing
// value is an error, never a prompt.
func resolveValue(flagSet bool, flagVal string, silent bool) (string, error) {
	if flagSet {
		return flagVal, nil
	}
	if v, ok := os.LookupEnv("KAYRING_VALUE"); ok {
		return v, nil
	}
	if silent {
		return "", fmt.Errorf("%w in silent mode", domain.ErrMissingValue)
	}
	return readSecret("Enter value:")
}
