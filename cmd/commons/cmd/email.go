package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	cmnerror "github.com/msto63/commons/foundation/core/error"
	cmnvalidation "github.com/msto63/commons/foundation/core/validation"
)

var emailCmd = &cobra.Command{
	Use:   "email <address>...",
	Short: "Validate email addresses",
	Long:  `Prints one line per address and fails when any address is invalid.`,
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		invalid := 0
		for _, address := range args {
			status := "valid"
			if !cmnvalidation.IsValidEmail(address) {
				status = "invalid"
				invalid++
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", address, status)
		}

		if invalid > 0 {
			return cmnerror.IllegalArgument(fmt.Sprintf("%d of %d addresses are invalid", invalid, len(args)))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(emailCmd)
}
