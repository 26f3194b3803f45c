/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package sort provides the sort command for tailsort.
package sort

import (
	"bufio"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"bennypowers.dev/tailsort/sorter"
)

// Cmd is the sort cobra command. It sorts raw class strings rather than
// whole documents, for scripting and debugging.
var Cmd = &cobra.Command{
	Use:   "sort [classes...]",
	Short: "Sort raw class strings",
	Long: `Sort space-separated class strings into canonical order, one result
per line. With no arguments, lines are read from stdin.

Examples:
  tailsort sort "z-10 p-4 mt-2"
  echo "hover:bg-blue-500 bg-red-500" | tailsort sort`,
	Args: cobra.ArbitraryArgs,
	RunE: run,
}

func run(cmd *cobra.Command, args []string) error {
	if len(args) > 0 {
		for _, arg := range args {
			fmt.Println(sorter.SortString(arg))
		}
		return nil
	}

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		fmt.Println(sorter.SortString(scanner.Text()))
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("error reading stdin: %w", err)
	}
	return nil
}
