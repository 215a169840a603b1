package commands

import (
	"github.com/spf13/cobra"
)

func cloneCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "clone <from> <to>",
		Short: "Duplicate a stored key without decrypting it",
		Long: "Clone copies the encrypted keystore byte-for-byte, so no password is\n" +
			"needed and the clone decrypts under the same password as the original.",
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return appCtx.Keyring.Clone(args[0], args[1], force)
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "overwrite the key if it already exists")

	return cmd
}
