package main

import (
	"fmt"
	"io"
	"os"
	"time"

	jsoniter "github.com/json-iterator/go"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/odradev/nysa-go/buildinfo"
	"github.com/odradev/nysa-go/internal/assembly"
	"github.com/odradev/nysa-go/internal/codegen"
	"github.com/odradev/nysa-go/internal/codegen/envthreaded"
	"github.com/odradev/nysa-go/internal/codegen/pathstack"
	"github.com/odradev/nysa-go/internal/codegen/wasmmodule"
	"github.com/odradev/nysa-go/internal/ir"
	"github.com/odradev/nysa-go/internal/solidity"
	"github.com/odradev/nysa-go/pkg/logging"
	"github.com/odradev/nysa-go/pkg/metrics"
)

var jsonAPI = jsoniter.ConfigCompatibleWithStandardLibrary

var compileCmd = &cobra.Command{
	Use:   "compile [path|-]",
	Short: "Compile a Solidity AST into target source text",
	Long:  `compile reads a tagged-union JSON Solidity AST from a file or stdin, lowers it through the IR, and writes one backend's generated source`,
	Args:  cobra.ExactArgs(1),
	RunE:  runCompile,
}

func runCompile(cmd *cobra.Command, args []string) error {
	dirPath, err := cmd.Root().PersistentFlags().GetString("dir")
	if err != nil {
		return fmt.Errorf("reading --dir: %w", err)
	}
	dirPath = os.ExpandEnv(dirPath)
	conf := setupConfig(dirPath)
	logging.SetupLogger(buildinfo.GetSummary().Version, conf.Log.Debug, conf.Log.Human)

	backendName, err := cmd.Flags().GetString("backend")
	if err != nil {
		return fmt.Errorf("reading --backend: %w", err)
	}
	if backendName != "" {
		conf.Backend = backendName
	}

	outPath, err := cmd.Flags().GetString("out")
	if err != nil {
		return fmt.Errorf("reading --out: %w", err)
	}

	data, err := readInput(args[0])
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	stage := logging.Stage("compile")
	timer := prometheusTimer()

	var unit solidity.SourceUnit
	if err := jsonAPI.Unmarshal(data, &unit); err != nil {
		metrics.LinearizationErrors.Inc()
		return fmt.Errorf("decoding Solidity AST: %w", err)
	}

	pkg, err := ir.NewBuilder().Build(&unit)
	if err != nil {
		metrics.LinearizationErrors.Inc()
		return fmt.Errorf("building IR: %w", err)
	}
	ir.AssignErrorCodes(pkg)

	backend, err := resolveBackend(conf)
	if err != nil {
		return err
	}

	runID := uuid.New().String()
	result, err := assembly.Assemble(backend, pkg, runID, time.Now())
	if err != nil {
		return fmt.Errorf("assembling %s output: %w", backend.Name(), err)
	}
	timer()
	metrics.ContractsCompiled.Add(float64(len(pkg.Contracts)))

	stage.Info().
		Str("backend", backend.Name()).
		Str("run_id", runID).
		Int("contracts", len(pkg.Contracts)).
		Msg("compile finished")

	if err := writeOutput(outPath, result.Source); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}

	if conf.Metrics.Dump {
		if err := metrics.Dump(os.Stderr); err != nil {
			log.Error().Err(err).Msg("dumping metrics")
		}
	}
	return nil
}

func prometheusTimer() func() {
	t := time.Now()
	return func() { metrics.CompileDuration.Observe(time.Since(t).Seconds()) }
}

func pathStackConfig(conf *config) pathstack.Config {
	return pathstack.Config{MaxStackSize: conf.PathStack.MaxStackSize, Emit: conf.PathStack.Emit}
}

func resolveBackend(conf *config) (codegen.Backend, error) {
	cfg := pathStackConfig(conf)
	switch conf.Backend {
	case "wasm-module":
		b := wasmmodule.New()
		b.Config = cfg
		return b, nil
	case "env-threaded":
		b := envthreaded.New()
		b.Config = cfg
		return b, nil
	default:
		return nil, fmt.Errorf("unknown backend %q (want wasm-module or env-threaded)", conf.Backend)
	}
}

func readInput(path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}

func writeOutput(path, content string) error {
	if path == "-" {
		_, err := fmt.Fprint(os.Stdout, content)
		return err
	}
	return os.WriteFile(path, []byte(content), 0o644)
}
