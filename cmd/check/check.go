/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package check provides the check command for tailsort.
package check

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"bennypowers.dev/tailsort/config"
	"bennypowers.dev/tailsort/engine"
	tailfs "bennypowers.dev/tailsort/fs"
	"bennypowers.dev/tailsort/internal/logger"
)

// Cmd is the check cobra command. It exits non-zero when any file's
// classes are not in canonical order, without writing anything.
var Cmd = &cobra.Command{
	Use:   "check [files...]",
	Short: "Verify classes are sorted without writing",
	Long: `Check whether the Tailwind classes in the given files are already in
canonical order. Files that would change are listed; the exit status is
non-zero when any are found, which makes check suitable for CI.`,
	Args: cobra.ArbitraryArgs,
	RunE: run,
}

func run(cmd *cobra.Command, args []string) error {
	filesystem := tailfs.NewOSFileSystem()

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
			return fmt.Errorf("error expanding include globs: %w", err)
		}
		files = expanded
	}
	if len(files) == 0 {
		return fmt.Errorf("no files specified and no include globs in config")
	}

	eng := engine.New(cfg)
	var unsorted []string

	for _, path := range files {
		_, changed, err := eng.FormatFile(filesystem, path)
		if err != nil {
			return fmt.Errorf("error checking %s: %w", path, err)
		}
		if changed {
			unsorted = append(unsorted, path)
		}
	}

	for _, path := range unsorted {
		fmt.Println(path)
	}
	if len(unsorted) > 0 {
		return fmt.Errorf("%d of %d files need formatting", len(unsorted), len(files))
	}

	logger.Info("%d files checked, all sorted", len(files))
	return nil
}
