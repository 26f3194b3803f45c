/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package engine_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bennypowers.dev/tailsort/config"
	"bennypowers.dev/tailsort/dialect"
	"bennypowers.dev/tailsort/engine"
	"bennypowers.dev/tailsort/testutil"
)

func TestFormatGolden(t *testing.T) {
	tests := []struct {
		name    string
		fixture string
		dialect dialect.Dialect
	}{
		{"svelte component", "component.svelte", dialect.Svelte},
		{"astro page", "page.astro", dialect.Astro},
	}

	e := engine.New(config.Default())

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := testutil.LoadFixtureFile(t, tt.fixture)

			got, changed := e.Format(string(input), tt.dialect)
			require.True(t, changed, "fixture should need formatting")

			testutil.AssertGolden(t, tt.fixture+".golden", []byte(got))

			// Formatting the formatted output must be a no-op.
			again, changed := e.Format(got, tt.dialect)
			assert.False(t, changed)
			assert.Equal(t, got, again)
		})
	}
}
