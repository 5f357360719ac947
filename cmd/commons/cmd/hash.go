package cmd

import (
	"context"
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"

	cmnerror "github.com/msto63/commons/foundation/core/error"
	"github.com/msto63/commons/foundation/utils/hashx"
	"github.com/msto63/commons/pkg/core/async"
)

var (
	hashHexInput bool
	hashEach     bool
)

var hashCmd = &cobra.Command{
	Use:   "hash",
	Short: "Compute digests",
	Long: `Computes SHA-256 based digests. Arguments are hashed as UTF-8 text,
or as raw bytes with --hex. Results are printed as lowercase hex.`,
}

var hashSHA256Cmd = &cobra.Command{
	Use:   "sha256 <input>...",
	Short: "SHA-256 of the concatenated inputs",
	Long: `Prints the SHA-256 of all inputs concatenated in order.
With --each every input is hashed on its own, concurrently, one digest per line.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSHA256,
}

var hashTwiceCmd = &cobra.Command{
	Use:   "twice <input>",
	Short: "SHA-256 applied twice",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return printDigest(cmd, args[0], hashx.HashTwice)
	},
}

var hashRIPEMD160Cmd = &cobra.Command{
	Use:   "ripemd160 <input>",
	Short: "RIPEMD-160 of the SHA-256",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return printDigest(cmd, args[0], hashx.SHA256RIPEMD160)
	},
}

func init() {
	hashCmd.PersistentFlags().BoolVar(&hashHexInput, "hex", false, "treat inputs as hex encoded bytes")
	hashSHA256Cmd.Flags().BoolVar(&hashEach, "each", false, "hash every input separately")

	hashCmd.AddCommand(hashSHA256Cmd)
	hashCmd.AddCommand(hashTwiceCmd)
	hashCmd.AddCommand(hashRIPEMD160Cmd)
	rootCmd.AddCommand(hashCmd)
}

func runSHA256(cmd *cobra.Command, args []string) error {
	inputs := make([][]byte, len(args))
	for i, arg := range args {
		data, err := hashInput(arg)
		if err != nil {
			return err
		}
		inputs[i] = data
	}

	if !hashEach {
		fmt.Fprintln(cmd.OutOrStdout(), hashx.EncodeToString(inputs...))
		return nil
	}

	futures := make([]*async.Future[string], len(inputs))
	for i, data := range inputs {
		futures[i] = async.Promisify(func(reject func(error)) string {
			return hashx.EncodeToString(data)
		})
	}

	digests, err := async.AwaitAll(commandContext(cmd), futures...)
	if err != nil {
		return err
	}
	for _, digest := range digests {
		fmt.Fprintln(cmd.OutOrStdout(), digest)
	}
	return nil
}

func printDigest(cmd *cobra.Command, arg string, digest func([]byte) []byte) error {
	data, err := hashInput(arg)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), hex.EncodeToString(digest(data)))
	return nil
}

func hashInput(arg string) ([]byte, error) {
	if !hashHexInput {
		return []byte(arg), nil
	}
	data, err := hex.DecodeString(arg)
	if err != nil {
		return nil, cmnerror.IllegalArgument("invalid hex input " + arg).WithCause(err)
	}
	return data, nil
}

// commandContext returns the command context or a background context
func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
