/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package sorter

import (
	"strings"
	"testing"

	"bennypowers.dev/tailsort/extract"
)

func TestSortString(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"category order", "z-10 p-4 mt-2", "mt-2 p-4 z-10"},
		{"variants last within category", "hover:bg-blue-500 bg-red-500", "bg-red-500 hover:bg-blue-500"},
		{"important last", "!text-red-500 text-blue-500", "text-blue-500 !text-red-500"},
		{"negative after positive", "-mt-4 mt-4 pt-4", "mt-4 -mt-4 pt-4"},
		{"responsive breakpoints", "xl:text-xl md:text-md text-base", "text-base md:text-md xl:text-xl"},
		{"arbitrary after plain", "w-[100px] w-full", "w-full w-[100px]"},
		{"mixed complex", "z-10 hover:bg-blue-500 p-4 mt-2 !font-bold md:text-lg -mb-4 bg-white",
			"mt-2 -mb-4 p-4 z-10 md:text-lg bg-white hover:bg-blue-500 !font-bold"},
		{"empty", "", ""},
		{"whitespace only", "   ", ""},
		{"single class", "text-red-500", "text-red-500"},
		{"irregular whitespace normalized", "  p-4   mt-2 ", "mt-2 p-4"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SortString(tt.input); got != tt.want {
				t.Errorf("SortString(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestSortStringIdempotent(t *testing.T) {
	inputs := []string{
		"z-10 hover:bg-blue-500 p-4 mt-2 !font-bold md:text-lg -mb-4 bg-white",
		"shadow-lg rounded-lg p-6 bg-white text-gray-900 hover:shadow-xl transition-shadow",
		"flex items-center justify-between w-full h-16 px-4 bg-gray-800 text-white",
	}

	for _, input := range inputs {
		once := SortString(input)
		if twice := SortString(once); twice != once {
			t.Errorf("SortString not idempotent for %q: %q != %q", input, twice, once)
		}
	}
}

func TestSortStringPreservesTokens(t *testing.T) {
	input := "text-red-500 bg-blue-500 p-4 sm:hover:!-mt-[20px]"
	result := SortString(input)

	got := strings.Fields(result)
	if len(got) != 4 {
		t.Fatalf("expected 4 tokens, got %d", len(got))
	}
	for _, tok := range strings.Fields(input) {
		if !strings.Contains(" "+result+" ", " "+tok+" ") {
			t.Errorf("token %q lost or altered in %q", tok, result)
		}
	}
}

func TestSortStringStableForDuplicates(t *testing.T) {
	// Identical tokens have identical keys; stable sort keeps their order
	// (and their count).
	if got := SortString("p-4 p-4 mt-2"); got != "mt-2 p-4 p-4" {
		t.Errorf("got %q", got)
	}
}

func TestRewrite(t *testing.T) {
	content := `<div class="z-10 p-4" id="a"><span class="b-x">x</span></div>`

	edits := []Edit{
		{Match: extract.Match{Start: 12, End: 20, Value: "z-10 p-4"}, Text: "p-4 z-10"},
	}

	out, changed := Rewrite(content, edits)
	if !changed {
		t.Fatal("expected change")
	}
	want := `<div class="p-4 z-10" id="a"><span class="b-x">x</span></div>`
	if out != want {
		t.Errorf("got %q, want %q", out, want)
	}
}

func TestRewriteUnchanged(t *testing.T) {
	content := `<div class="p-4 z-10">x</div>`

	edits := []Edit{
		{Match: extract.Match{Start: 12, End: 20, Value: "p-4 z-10"}, Text: "p-4 z-10"},
	}

	out, changed := Rewrite(content, edits)
	if changed {
		t.Error("identical substitutions must report unchanged")
	}
	if out != content {
		t.Error("unchanged rewrite must return the original content")
	}
}

func TestRewriteLengthShift(t *testing.T) {
	// Substitutions that change length must not corrupt later spans.
	content := `a "one two" b "three four" c`
	edits := []Edit{
		{Match: extract.Match{Start: 3, End: 10, Value: "one two"}, Text: "two one plus"},
		{Match: extract.Match{Start: 15, End: 25, Value: "three four"}, Text: "x"},
	}

	out, changed := Rewrite(content, edits)
	if !changed {
		t.Fatal("expected change")
	}
	if out != `a "two one plus" b "x" c` {
		t.Errorf("got %q", out)
	}
}

func TestRewriteNoEdits(t *testing.T) {
	out, changed := Rewrite("anything", nil)
	if changed || out != "anything" {
		t.Error("no edits must report unchanged")
	}
}
