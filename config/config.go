/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package config provides configuration loading for tailsort.
package config

// Config represents the tailsort configuration.
type Config struct {
	// Enabled disables all rewriting when false.
	Enabled bool `yaml:"enabled" json:"enabled"`

	// Attributes are the markup attribute names whose values are class
	// lists. An explicitly empty list disables attribute matching.
	Attributes []string `yaml:"attributes" json:"attributes"`

	// Functions are the utility-function names whose string arguments are
	// class lists. An explicitly empty list disables call matching.
	Functions []string `yaml:"functions" json:"functions"`

	// Include are doublestar glob patterns formatted when the fmt and
	// check commands receive no file arguments.
	Include []string `yaml:"include" json:"include"`
}

// DefaultAttributes are the attribute names matched without configuration.
var DefaultAttributes = []string{"class", "className"}

// DefaultFunctions are the function names matched without configuration.
var DefaultFunctions = []string{"classnames", "clsx", "ctl", "cva", "tw"}

// Default returns a config with default values.
func Default() *Config {
	return &Config{
		Enabled:    true,
		Attributes: append([]string(nil), DefaultAttributes...),
		Functions:  append([]string(nil), DefaultFunctions...),
	}
}
