/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package fmt provides the fmt command for tailsort.
package fmt

import (
	"fmt"
	"io"
	"io/fs"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"bennypowers.dev/tailsort/config"
	"bennypowers.dev/tailsort/engine"
	tailfs "bennypowers.dev/tailsort/fs"
	"bennypowers.dev/tailsort/internal/logger"
)

// Cmd is the fmt cobra command.
var Cmd = &cobra.Command{
	Use:   "fmt [files...]",
	Short: "Rewrite files with sorted classes",
	Long: `Sort the Tailwind classes in the given files, in place. With no
arguments, the files matched by the config include globs are formatted.

Examples:
  # Format specific files
  tailsort fmt index.html src/App.vue

  # Format everything the config includes
  tailsort fmt

  # Print the result instead of writing
  tailsort fmt --stdout index.html`,
	Args: cobra.ArbitraryArgs,
	RunE: run,
}

func init() {
	Cmd.Flags().Bool("stdout", false, "Print formatted output instead of writing files")
}

func run(cmd *cobra.Command, args []string) error {
	toStdout, _ := cmd.Flags().GetBool("stdout")

	filesystem := tailfs.NewOSFileSystem()
	cfg, files, err := resolve(filesystem, args)
	if err != nil {
		return err
	}

	if toStdout {
		// Keep stdout machine-readable.
		logger.SetOutput(io.Discard)
	}

	eng := engine.New(cfg)
	changedCount := 0

	for _, path := range files {
		out, changed, err := eng.FormatFile(filesystem, path)
		if err != nil {
			return fmt.Errorf("error formatting %s: %w", path, err)
		}

		if toStdout {
			fmt.Print(out)
			continue
		}

		if !changed {
			continue
		}

		mode := fs.FileMode(0644)
		if info, err := filesystem.Stat(path); err == nil {
			mode = info.Mode()
		}
		if err := filesystem.WriteFile(path, []byte(out), mode); err != nil {
			return fmt.Errorf("error writing %s: %w", path, err)
		}
		logger.Info("formatted %s", path)
		changedCount++
	}

	if !toStdout {
		logger.Info("%d of %d files changed", changedCount, len(files))
	}
	return nil
}

// resolve loads the configuration, applies flag overrides, and decides the
// file list: explicit arguments win, then the config include globs.
func resolve(filesystem tailfs.FileSystem, args []string) (*config.Config, []string, error) {
	cfg := config.LoadOrDefault(filesystem, ".")

	if attrs := viper.GetStringSlice("attributes"); len(attrs) > 0 {
		cfg.Attributes = attrs
	}
	if fns := viper.GetStringSlice("functions"); len(fns) > 0 {
		cfg.Functions = fns
	}

	files := args
	if len(files) == 0 {
		expanded, err := cfg.ExpandInclude(filesystem, ".")
		if err != nil {
			return nil, nil, fmt.Errorf("error expanding include globs: %w", err)
		}
		files = expanded
	}
	if len(files) == 0 {
		return nil, nil, fmt.Errorf("no files specified and no include globs in config")
	}

	return cfg, files, nil
}
