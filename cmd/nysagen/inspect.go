package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/odradev/nysa-go/internal/ir"
	"github.com/odradev/nysa-go/internal/solidity"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect [path|-]",
	Short: "Dump the built IR package as JSON",
	Long:  `inspect reads a Solidity AST the same way compile does, builds the IR, and prints it as indented JSON for debugging the linearization and builder passes`,
	Args:  cobra.ExactArgs(1),
	RunE:  runInspect,
}

func runInspect(cmd *cobra.Command, args []string) error {
	outPath, err := cmd.Flags().GetString("out")
	if err != nil {
		return fmt.Errorf("reading --out: %w", err)
	}

	data, err := readInput(args[0])
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	var unit solidity.SourceUnit
	if err := jsonAPI.Unmarshal(data, &unit); err != nil {
		return fmt.Errorf("decoding Solidity AST: %w", err)
	}

	pkg, err := ir.NewBuilder().Build(&unit)
	if err != nil {
		return fmt.Errorf("building IR: %w", err)
	}
	ir.AssignErrorCodes(pkg)

	out, err := jsonAPI.MarshalIndent(pkg, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling IR: %w", err)
	}

	if outPath == "-" {
		_, err := os.Stdout.Write(append(out, '\n'))
		return err
	}
	return os.WriteFile(outPath, out, 0o644)
}
