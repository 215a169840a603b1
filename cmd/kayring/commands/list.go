package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Print the names of all stored keys",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			names, err := appCtx.Keyring.List()
			if err != nil {
				return err
			}
			fmt.Println(strings.Join(names, ", "))
			return nil
		},
	}
}
