/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package cmd provides CLI commands for tailsort.
package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"bennypowers.dev/tailsort/cmd/check"
	fmtcmd "bennypowers.dev/tailsort/cmd/fmt"
	sortcmd "bennypowers.dev/tailsort/cmd/sort"
	"bennypowers.dev/tailsort/cmd/version"
)

var rootCmd = &cobra.Command{
	Use:   "tailsort",
	Short: "Sort Tailwind CSS utility classes in markup files",
	Long:  `tailsort rewrites class attributes and utility-function calls in HTML, JSX, TSX, Vue, Svelte and Astro files so their Tailwind classes follow the recommended order. Everything outside the class lists is preserved byte for byte.`,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringArray("attr", nil, "Attribute names to sort (overrides config)")
	rootCmd.PersistentFlags().StringArray("fn", nil, "Function names to sort (overrides config)")

	// Flags and config file share keys through viper.
	_ = viper.BindPFlag("attributes", rootCmd.PersistentFlags().Lookup("attr"))
	_ = viper.BindPFlag("functions", rootCmd.PersistentFlags().Lookup("fn"))

	rootCmd.AddCommand(fmtcmd.Cmd)
	rootCmd.AddCommand(check.Cmd)
	rootCmd.AddCommand(sortcmd.Cmd)
	rootCmd.AddCommand(version.Cmd)
}
