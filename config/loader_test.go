/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package config

import (
	"reflect"
	"testing"

	"bennypowers.dev/tailsort/internal/mapfs"
)

func TestLoadYAML(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddFile(".config/tailsort.yaml", `
enabled: true
attributes:
  - class
  - classList
functions:
  - cn
include:
  - "src/**/*.html"
`, 0644)

	cfg, err := Load(mfs, ".")
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg == nil {
		t.Fatal("Load() returned nil config")
	}

	if !cfg.Enabled {
		t.Error("expected enabled")
	}
	if !reflect.DeepEqual(cfg.Attributes, []string{"class", "classList"}) {
		t.Errorf("Attributes = %v", cfg.Attributes)
	}
	if !reflect.DeepEqual(cfg.Functions, []string{"cn"}) {
		t.Errorf("Functions = %v", cfg.Functions)
	}
	if !reflect.DeepEqual(cfg.Include, []string{"src/**/*.html"}) {
		t.Errorf("Include = %v", cfg.Include)
	}
}

func TestLoadJSONWithComments(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddFile(".config/tailsort.json", `{
  // sorting disabled while migrating
  "enabled": false,
  "functions": ["clsx"],
}`, 0644)

	cfg, err := Load(mfs, ".")
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.Enabled {
		t.Error("expected disabled")
	}
	if !reflect.DeepEqual(cfg.Functions, []string{"clsx"}) {
		t.Errorf("Functions = %v", cfg.Functions)
	}
}

func TestLoadAbsentFieldsKeepDefaults(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddFile(".config/tailsort.yaml", "include: [\"**/*.vue\"]\n", 0644)

	cfg, err := Load(mfs, ".")
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if !cfg.Enabled {
		t.Error("enabled must default to true")
	}
	if !reflect.DeepEqual(cfg.Attributes, DefaultAttributes) {
		t.Errorf("Attributes = %v, want defaults", cfg.Attributes)
	}
	if !reflect.DeepEqual(cfg.Functions, DefaultFunctions) {
		t.Errorf("Functions = %v, want defaults", cfg.Functions)
	}
}

func TestLoadExplicitEmptyListDisablesSource(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddFile(".config/tailsort.yaml", "functions: []\n", 0644)

	cfg, err := Load(mfs, ".")
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if len(cfg.Functions) != 0 {
		t.Errorf("Functions = %v, want empty", cfg.Functions)
	}
	if !reflect.DeepEqual(cfg.Attributes, DefaultAttributes) {
		t.Errorf("Attributes = %v, want defaults", cfg.Attributes)
	}
}

func TestLoadMissingConfig(t *testing.T) {
	cfg, err := Load(mapfs.New(), ".")
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg != nil {
		t.Error("missing config must return nil, not an error")
	}
}

func TestLoadOrDefault(t *testing.T) {
	cfg := LoadOrDefault(mapfs.New(), ".")
	if cfg == nil {
		t.Fatal("LoadOrDefault() returned nil")
	}
	if !reflect.DeepEqual(cfg, Default()) {
		t.Errorf("got %+v, want defaults", cfg)
	}
}

func TestLoadExtensionPriority(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddFile(".config/tailsort.yaml", "functions: [fromyaml]\n", 0644)
	mfs.AddFile(".config/tailsort.json", `{"functions": ["fromjson"]}`, 0644)

	cfg, err := Load(mfs, ".")
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if !reflect.DeepEqual(cfg.Functions, []string{"fromyaml"}) {
		t.Errorf("Functions = %v, yaml must win", cfg.Functions)
	}
}

func TestExpandInclude(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddFile("src/index.html", "", 0644)
	mfs.AddFile("src/nested/deep/App.vue", "", 0644)
	mfs.AddFile("src/styles.css", "", 0644)
	mfs.AddFile("README.md", "", 0644)

	cfg := Default()
	cfg.Include = []string{"src/**/*.html", "src/**/*.vue"}

	files, err := cfg.ExpandInclude(mfs, ".")
	if err != nil {
		t.Fatalf("ExpandInclude() error: %v", err)
	}

	want := []string{"src/index.html", "src/nested/deep/App.vue"}
	if !reflect.DeepEqual(files, want) {
		t.Errorf("ExpandInclude() = %v, want %v", files, want)
	}
}

func TestExpandIncludeLiteralPath(t *testing.T) {
	cfg := Default()
	cfg.Include = []string{"exact/path.html"}

	files, err := cfg.ExpandInclude(mapfs.New(), ".")
	if err != nil {
		t.Fatalf("ExpandInclude() error: %v", err)
	}
	if !reflect.DeepEqual(files, []string{"exact/path.html"}) {
		t.Errorf("ExpandInclude() = %v", files)
	}
}
