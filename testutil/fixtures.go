/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package testutil provides testing utilities for tailsort.
package testutil

import (
	"flag"
	"os"
	"path/filepath"
	"testing"
)

// updateGolden enables updating golden files with actual output when -update flag is set.
var updateGolden = flag.Bool("update", false, "update golden files with actual output")

// LoadFixtureFile reads a single fixture file and returns its content.
func LoadFixtureFile(t *testing.T, fixturePath string) []byte {
	t.Helper()

	// Try multiple possible paths since Go test changes working directory.
	possiblePaths := []string{
		filepath.Join("testdata", fixturePath),
		filepath.Join("..", "testdata", fixturePath),
		filepath.Join("..", "..", "testdata", fixturePath),
	}

	for _, path := range possiblePaths {
		content, err := os.ReadFile(path)
		if err == nil {
			return content
		}
	}
	t.Fatalf("Failed to read fixture %s (tried all paths)", fixturePath)
	return nil
}

// AssertGolden compares actual output to the golden file, updating the
// golden file first when -update is set.
func AssertGolden(t *testing.T, goldenPath string, actual []byte) {
	t.Helper()

	if *updateGolden {
		updateGoldenFile(t, goldenPath, actual)
	}

	want := LoadFixtureFile(t, goldenPath)
	if string(want) != string(actual) {
		t.Errorf("output does not match golden file %s\ngot:\n%s\nwant:\n%s",
			goldenPath, actual, want)
	}
}

// updateGoldenFile writes actual output to the golden file.
func updateGoldenFile(t *testing.T, goldenPath string, actual []byte) {
	t.Helper()

	possiblePaths := []string{
		filepath.Join("testdata", goldenPath),
		filepath.Join("..", "testdata", goldenPath),
		filepath.Join("..", "..", "testdata", goldenPath),
	}

	var targetPath string
	for _, path := range possiblePaths {
		if _, err := os.Stat(filepath.Dir(path)); err == nil {
			targetPath = path
			break
		}
	}
	if targetPath == "" {
		targetPath = possiblePaths[0]
	}

	if err := os.MkdirAll(filepath.Dir(targetPath), 0755); err != nil {
		t.Fatalf("Failed to create directory for golden file %s: %v", goldenPath, err)
	}
	if err := os.WriteFile(targetPath, actual, 0644); err != nil {
		t.Fatalf("Failed to write golden file %s: %v", goldenPath, err)
	}
	t.Logf("Updated golden file: %s", targetPath)
}
