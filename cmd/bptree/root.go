package main

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "bptree [flags] [keys...]",
	Short: "Build a B-tree or B+tree from keys and print it",
	Long: `bptree inserts keys into an order-m B-tree (variant "classic") or
B+tree with linked leaves (variant "linked"), deletes keys again if
requested, and prints the resulting tree.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		conf := setupConfig(cmd.Flags())
		if err := setupTracing(conf); err != nil {
			return err
		}
		opts, err := optionsFromConfig(conf, cmd.Flags())
		if err != nil {
			return err
		}
		return run(cmd.Context(), opts, args, cmd.OutOrStdout(), cmd.ErrOrStderr())
	},
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	flags := rootCmd.Flags()
	flags.IntP("order", "m", 0, "tree order, i.e. the number of keys which makes a node split (default 4)")
	flags.StringP("variant", "v", "", "tree variant: classic | linked (default linked)")
	flags.BoolP("numeric", "n", false, "parse keys as integers")
	flags.StringP("file", "f", "", "load words from a text file (.html/.htm: text content of HTML)")
	flags.StringSliceP("delete", "d", nil, "keys to delete after loading")
	flags.StringP("format", "o", "text", "output format: text | dot | stats | keys")
	flags.String("trace", "", "trace level for tracer 'bptree': Error | Info | Debug")
	flags.Bool("check", false, "verify tree invariants and fail if any is violated")
}
