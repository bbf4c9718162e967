package main

import (
	"github.com/spf13/cobra"
)

var cliName = "nysagen"

var rootCmd = &cobra.Command{
	Use:   cliName,
	Short: "nysagen translates Solidity contracts into target smart-contract source",
	Long:  `nysagen is a source-to-source compiler: it reads a Solidity AST and emits a target token stream for one of its backends`,
	Args:  cobra.ExactArgs(0),
}

func main() {
	rootCmd.Execute() //nolint
}

func init() {
	rootCmd.AddCommand(compileCmd)
	rootCmd.AddCommand(inspectCmd)

	rootCmd.PersistentFlags().String("dir", "${HOME}/.nysagen", "directory holding nysagen.json, if any")

	compileCmd.Flags().String("backend", "", "override the configured backend (wasm-module|env-threaded)")
	compileCmd.Flags().String("out", "-", "output file, or - for stdout")

	inspectCmd.Flags().String("out", "-", "output file, or - for stdout")
}
