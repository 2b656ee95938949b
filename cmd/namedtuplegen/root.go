package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

const version = "v0.1.0"

// Flag names double as viper keys.
const (
	flagConfig  = "config"
	flagFile    = "file"
	flagOutput  = "output"
	flagPackage = "package"
	flagVerbose = "verbose"
	flagLang    = "lang"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "namedtuplegen",
		Short: "Generate named tuple types from a schema manifest",
		Long: `namedtuplegen reads a manifest listing named tuple schemas (ordered keys
with Go value types) and writes Go source declaring a tag type, a schema,
typed field handles and a constructor for each of them.

Settings are read from .namedtuplegen.yaml in the working directory and
from NAMEDTUPLEGEN_* environment variables; flags take precedence.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	pf := root.PersistentFlags()
	pf.String(flagConfig, "", "config file (default: ./.namedtuplegen.yaml)")
	pf.BoolP(flagVerbose, "v", false, "log progress to stderr")
	pf.String(flagLang, "", "language of issue messages (en, ja)")

	root.AddCommand(newGenerateCmd())
	root.AddCommand(newCheckCmd())
	root.AddCommand(newVersionCmd())
	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "namedtuplegen "+version)
		},
	}
}
