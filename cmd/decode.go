// Copyright 2025 The packetd Authors
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package cmd

import (
	"bytes"
	"fmt"
	"os"
	"text/template"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/OakMolecule/fountain-codes"
	"github.com/OakMolecule/fountain-codes/confengine"
	"github.com/OakMolecule/fountain-codes/logger"
)

// decodeCmdConfig holds the flags the decode command accepts. It mirrors
// the configuration surface an equivalent YAML document would carry
// (message, blockSize, holdGranularity, seed, logger.level,
// logger.filename).
type decodeCmdConfig struct {
	ConfigPath      string
	Message         string
	BlockSize       int
	HoldGranularity int
	Seed            int64
	LogLevel        string
	LogFilename     string
}

// yaml synthesizes an in-memory config document equivalent to the flags,
// for the no-config-file path.
func (c *decodeCmdConfig) yaml() []byte {
	text := `
message: {{ printf "%q" .Message }}
blockSize: {{ .BlockSize }}
holdGranularity: {{ .HoldGranularity }}
seed: {{ .Seed }}
logger:
  level: {{ printf "%q" .LogLevel }}
  filename: {{ printf "%q" .LogFilename }}
`
	tpl, err := template.New("decodeConfig").Parse(text)
	if err != nil {
		return nil
	}

	var buf bytes.Buffer
	if err := tpl.Execute(&buf, c); err != nil {
		return nil
	}
	return buf.Bytes()
}

var decodeConfig decodeCmdConfig

type decodeSettings struct {
	Message         string `config:"message"`
	BlockSize       int    `config:"blockSize"`
	HoldGranularity int    `config:"holdGranularity"`
	Seed            int64  `config:"seed"`
}

type loggerSettings struct {
	Level    string `config:"level"`
	Filename string `config:"filename"`
}

var decodeCmd = &cobra.Command{
	Use:   "decode",
	Short: "Reconstruct a message from a simulated stream of fountain packets",
	Example: "  # fountain decode --message 'Hello there you jammy little bugger!' --block-size 20\n" +
		"  # fountain decode --config fountain.yaml",
	RunE: func(cmd *cobra.Command, args []string) error {
		var cfg *confengine.Config
		var err error
		if decodeConfig.ConfigPath != "" {
			cfg, err = confengine.LoadConfigPath(decodeConfig.ConfigPath)
		} else {
			cfg, err = confengine.LoadContent(decodeConfig.yaml())
		}
		if err != nil {
			return errors.Wrap(err, "failed to load config")
		}

		var settings decodeSettings
		if err := cfg.Unpack(&settings); err != nil {
			return errors.Wrap(err, "failed to unpack config")
		}

		var logSettings loggerSettings
		if err := cfg.UnpackChild("logger", &logSettings); err != nil {
			return errors.Wrap(err, "failed to unpack logger config")
		}

		if err := applyFlagOverrides(cmd, &settings, &logSettings); err != nil {
			return errors.Wrap(err, "failed to apply flag overrides")
		}

		log := buildLogger(logSettings)

		seed := settings.Seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}

		runID := uuid.New().String()
		log.Infof("decode run %s starting: blockSize=%d holdGranularity=%d", runID, settings.BlockSize, settings.HoldGranularity)

		result, err := fountain.Decode([]byte(settings.Message), settings.BlockSize, fountain.Options{
			Seed:            seed,
			HoldGranularity: settings.HoldGranularity,
			Logger:          log,
		})
		if err != nil {
			return errors.Wrap(err, "decode failed")
		}

		fmt.Printf("decoded message: %s\n", result.Message)
		fmt.Printf("packets pulled:  %d\n", result.PacketsPulled)
		return nil
	},
}

// applyFlagOverrides lets an explicitly-set flag win over the same key
// loaded from --config: an operator re-running a known-good config file
// with one field tweaked shouldn't need to edit the file. Only flags the
// user actually passed (cmd.Flags().Changed) are considered -- an unset
// flag must never clobber a value the config file supplied.
func applyFlagOverrides(cmd *cobra.Command, settings *decodeSettings, logSettings *loggerSettings) error {
	overrides := confengine.NewOptions()
	if cmd.Flags().Changed("message") {
		overrides.Merge("message", decodeConfig.Message)
	}
	if cmd.Flags().Changed("block-size") {
		overrides.Merge("blockSize", decodeConfig.BlockSize)
	}
	if cmd.Flags().Changed("hold-granularity") {
		overrides.Merge("holdGranularity", decodeConfig.HoldGranularity)
	}
	if cmd.Flags().Changed("seed") {
		overrides.Merge("seed", decodeConfig.Seed)
	}
	if cmd.Flags().Changed("log-level") {
		overrides.Merge("level", decodeConfig.LogLevel)
	}
	if cmd.Flags().Changed("log-file") {
		overrides.Merge("filename", decodeConfig.LogFilename)
	}

	if _, ok := overrides["message"]; ok {
		v, err := overrides.GetString("message")
		if err != nil {
			return err
		}
		settings.Message = v
	}
	if _, ok := overrides["blockSize"]; ok {
		v, err := overrides.GetInt("blockSize")
		if err != nil {
			return err
		}
		settings.BlockSize = v
	}
	if _, ok := overrides["holdGranularity"]; ok {
		v, err := overrides.GetInt("holdGranularity")
		if err != nil {
			return err
		}
		settings.HoldGranularity = v
	}
	if _, ok := overrides["seed"]; ok {
		v, err := overrides.GetInt64("seed")
		if err != nil {
			return err
		}
		settings.Seed = v
	}
	if _, ok := overrides["level"]; ok {
		v, err := overrides.GetString("level")
		if err != nil {
			return err
		}
		logSettings.Level = v
	}
	if _, ok := overrides["filename"]; ok {
		v, err := overrides.GetString("filename")
		if err != nil {
			return err
		}
		logSettings.Filename = v
	}
	return nil
}

func buildLogger(s loggerSettings) logger.Logger {
	level := s.Level
	if level == "" {
		level = string(logger.LevelInfo)
	}
	return logger.New(logger.Options{
		Stdout:   s.Filename == "",
		Level:    level,
		Filename: s.Filename,
	})
}

func init() {
	decodeCmd.Flags().StringVar(&decodeConfig.ConfigPath, "config", "", "Path to a YAML config file (explicitly set flags override its values)")
	decodeCmd.Flags().StringVar(&decodeConfig.Message, "message", "Hello there you jammy little bugger!", "Source message to encode and decode")
	decodeCmd.Flags().IntVar(&decodeConfig.BlockSize, "block-size", 20, "Bytes per source block")
	decodeCmd.Flags().IntVar(&decodeConfig.HoldGranularity, "hold-granularity", fountain.DefaultHoldGranularity, "Hold growth step, in packets")
	decodeCmd.Flags().Int64Var(&decodeConfig.Seed, "seed", 0, "RNG seed (0 derives one from the current time)")
	decodeCmd.Flags().StringVar(&decodeConfig.LogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	decodeCmd.Flags().StringVar(&decodeConfig.LogFilename, "log-file", "", "Log file path (empty logs to stdout)")

	rootCmd.AddCommand(decodeCmd)
}
