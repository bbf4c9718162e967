package main

import (
	"encoding/json"
	"os"
	"path"
	"strings"

	"github.com/omeid/uconfig"
	"github.com/omeid/uconfig/plugins"
	"github.com/omeid/uconfig/plugins/file"
	"github.com/rs/zerolog/log"
)

// configFilename is the filename of the config file automatically loaded
// from the directory passed via --dir, if present.
var configFilename = "nysagen.json"

// config is the Parser trait's configuration surface: which backend to target, whether to
// emit the path-stack virtual-dispatch shim, and how deep its stack runs.
type config struct {
	Backend string `default:"wasm-module" env:"NYSAGEN_BACKEND"`

	PathStack struct {
		Emit         bool `default:"true"  env:"NYSAGEN_EMIT_PATH_STACK"`
		MaxStackSize int  `default:"8"     env:"NYSAGEN_MAX_STACK_SIZE"`
	}

	Log struct {
		Human bool `default:"false" env:"NYSAGEN_LOG_HUMAN"`
		Debug bool `default:"false" env:"NYSAGEN_LOG_DEBUG"`
	}

	Metrics struct {
		Dump bool `default:"false" env:"NYSAGEN_METRICS_DUMP"`
	}
}

// setupConfig loads defaults, then a config file under dirPath when one
// exists, then environment overrides.
func setupConfig(dirPath string) *config {
	var confPlugins []plugins.Plugin
	fullPath := path.Join(dirPath, configFilename)
	configFileBytes, err := os.ReadFile(fullPath)
	if os.IsNotExist(err) {
		log.Debug().Str("config_file_path", fullPath).Msg("config file not found, using defaults")
	} else if err != nil {
		log.Fatal().Str("config_file_path", fullPath).Err(err).Msg("opening config file")
	} else {
		fileStr := os.ExpandEnv(string(configFileBytes))
		confPlugins = append(confPlugins, file.NewReader(strings.NewReader(fileStr), json.Unmarshal))
	}

	conf := &config{}
	c, err := uconfig.Classic(&conf, file.Files{}, confPlugins...)
	if err != nil {
		c.Usage()
		log.Fatal().Err(err).Msg("invalid configuration")
	}
	return conf
}
