package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/msto63/commons/foundation/utils/base64x"
)

var base64Cmd = &cobra.Command{
	Use:   "base64",
	Short: "Base64 conversions",
	Long: `Converts between text, hex and base64.

Encoders produce the URL-safe alphabet without padding. Decoders accept
standard or URL-safe input, padded or not.`,
}

var base64EncodeCmd = &cobra.Command{
	Use:   "encode <text>",
	Short: "Encode text as URL-safe base64",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), base64x.FromString(args[0]))
	},
}

var base64DecodeCmd = &cobra.Command{
	Use:   "decode <base64>",
	Short: "Decode base64 to text",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := base64x.ToString(args[0])
		return printResult(cmd, result, err)
	},
}

var base64FromHexCmd = &cobra.Command{
	Use:   "from-hex <hex>",
	Short: "Encode a hex string as base64",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := base64x.FromHex(args[0])
		return printResult(cmd, result, err)
	},
}

var base64ToHexCmd = &cobra.Command{
	Use:   "to-hex <base64>",
	Short: "Decode base64 to a hex string",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := base64x.ToHex(args[0])
		return printResult(cmd, result, err)
	},
}

var base64URLCmd = &cobra.Command{
	Use:   "url <base64>",
	Short: "Convert base64 to the URL-safe unpadded form",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), base64x.ToURLFormat(args[0]))
	},
}

var base64UnURLCmd = &cobra.Command{
	Use:   "unurl <base64>",
	Short: "Convert URL-safe base64 to the standard padded form",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), base64x.FromURLFormat(args[0]))
	},
}

func init() {
	base64Cmd.AddCommand(base64EncodeCmd)
	base64Cmd.AddCommand(base64DecodeCmd)
	base64Cmd.AddCommand(base64FromHexCmd)
	base64Cmd.AddCommand(base64ToHexCmd)
	base64Cmd.AddCommand(base64URLCmd)
	base64Cmd.AddCommand(base64UnURLCmd)
	rootCmd.AddCommand(base64Cmd)
}

func printResult(cmd *cobra.Command, result string, err error) error {
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), result)
	return nil
}
