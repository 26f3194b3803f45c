/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package class provides parsing and ordering of Tailwind CSS utility classes.
package class

import "strings"

// Class represents a single utility class decomposed into its components.
// String() reassembles the components into the original class text exactly.
type Class struct {
	// Raw is the original class text as written in the document.
	Raw string

	// Variants are the colon-delimited prefixes, in original order
	// (e.g., ["sm", "hover"] for "sm:hover:bg-blue-500").
	Variants []string

	// Important is true when the core starts with "!".
	Important bool

	// Negative is true when the core (after "!") starts with "-".
	Negative bool

	// Property is the utility prefix (e.g., "bg" for "bg-blue-500").
	// For arbitrary-value classes it is the verbatim text before the
	// opening bracket, including any trailing dash (e.g., "mt-").
	Property string

	// Value is the scale value following the property (e.g., "blue-500").
	Value string

	// HasValue distinguishes an empty value ("mt-") from no value ("block").
	HasValue bool

	// Arbitrary is the interior of a bracketed value (e.g., "20px" for
	// "mt-[20px]").
	Arbitrary string

	// HasArbitrary is true when the class carries a bracketed value.
	HasArbitrary bool
}

// Parse decomposes a single class token. It is a pure function of the
// token's text and never fails: unrecognized utilities simply keep the
// whole core as Property.
func Parse(raw string) *Class {
	c := &Class{Raw: raw}

	core := raw
	if i := strings.LastIndexByte(core, ':'); i >= 0 {
		c.Variants = strings.Split(core[:i], ":")
		core = core[i+1:]
	}

	if strings.HasPrefix(core, "!") {
		c.Important = true
		core = core[1:]
	}
	if strings.HasPrefix(core, "-") {
		c.Negative = true
		core = core[1:]
	}

	// Bracketed suffix: everything before the bracket stays verbatim in
	// Property so that String() reproduces the original text.
	if i := strings.IndexByte(core, '['); i >= 0 && strings.HasSuffix(core, "]") {
		c.Property = core[:i]
		c.Arbitrary = core[i+1 : len(core)-1]
		c.HasArbitrary = true
		return c
	}

	prefix, rest, ok := splitKnownPrefix(core)
	if !ok {
		c.Property = core
		return c
	}
	c.Property = prefix
	c.Value = rest
	c.HasValue = true
	return c
}

// splitKnownPrefix matches the longest known property prefix against the
// core. A prefix matches only at a dash boundary, so "mt" never matches
// "mtx-4".
func splitKnownPrefix(core string) (prefix, rest string, ok bool) {
	segments := strings.Split(core, "-")
	for n := len(segments) - 1; n >= 1; n-- {
		candidate := strings.Join(segments[:n], "-")
		if _, known := categoryRanks[candidate]; known {
			return candidate, strings.Join(segments[n:], "-"), true
		}
	}
	return "", "", false
}

// String reassembles the class from its components. For every parsed
// class, c.String() == c.Raw.
func (c *Class) String() string {
	var sb strings.Builder
	for _, v := range c.Variants {
		sb.WriteString(v)
		sb.WriteByte(':')
	}
	if c.Important {
		sb.WriteByte('!')
	}
	if c.Negative {
		sb.WriteByte('-')
	}
	sb.WriteString(c.Property)
	if c.HasValue {
		sb.WriteByte('-')
		sb.WriteString(c.Value)
	}
	if c.HasArbitrary {
		sb.WriteByte('[')
		sb.WriteString(c.Arbitrary)
		sb.WriteByte(']')
	}
	return sb.String()
}

// base returns the core of the class without variants or the important
// and negative markers. Used as the final comparison tie-break.
func (c *Class) base() string {
	var sb strings.Builder
	sb.WriteString(c.Property)
	if c.HasValue {
		sb.WriteByte('-')
		sb.WriteString(c.Value)
	}
	if c.HasArbitrary {
		sb.WriteByte('[')
		sb.WriteString(c.Arbitrary)
		sb.WriteByte(']')
	}
	return sb.String()
}

// categoryKey returns the lookup key for the category table: the first
// dash-delimited segment of the property.
func (c *Class) categoryKey() string {
	p := strings.TrimSuffix(c.Property, "-")
	if i := strings.IndexByte(p, '-'); i >= 0 {
		p = p[:i]
	}
	return p
}
