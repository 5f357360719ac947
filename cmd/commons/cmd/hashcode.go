package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	cmnerror "github.com/msto63/commons/foundation/core/error"
	"github.com/msto63/commons/foundation/utils/hashx"
)

var hashCodeType string

var hashCodeCmd = &cobra.Command{
	Use:   "hashcode <value>",
	Short: "Hash code of a string, number or boolean",
	Long: `Prints the hash code of the value. Strings use the 31-multiplier rolling
hash, numbers are returned unchanged and booleans map to 1231 or 1237.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		value, err := parseHashCodeValue(args[0], hashCodeType)
		if err != nil {
			return err
		}

		code, err := hashx.HashCode(value)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), strconv.FormatFloat(code, 'f', -1, 64))
		return nil
	},
}

func init() {
	hashCodeCmd.Flags().StringVarP(&hashCodeType, "type", "t", "string", "value type: string, number or bool")
	rootCmd.AddCommand(hashCodeCmd)
}

func parseHashCodeValue(arg, typ string) (interface{}, error) {
	switch typ {
	case "string":
		return arg, nil
	case "number":
		f, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return nil, cmnerror.IllegalArgument("invalid number " + arg).WithCause(err)
		}
		return f, nil
	case "bool":
		b, err := strconv.ParseBool(arg)
		if err != nil {
			return nil, cmnerror.IllegalArgument("invalid bool " + arg).WithCause(err)
		}
		return b, nil
	default:
		return nil, cmnerror.IllegalArgument("unsupported type " + typ)
	}
}
