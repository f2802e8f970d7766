// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Chertolet926
// Source: github.com/Chertolet926/excel-parser

package excelparser

import (
	"fmt"

	"github.com/woozymasta/pathrules"
)

// FilterSet selects archive entries by exact path or glob pattern.
// Rules are validated at insertion time and evaluated as a logical OR:
// a path matches when it equals one of the exact paths or matches at least
// one glob pattern. An empty set matches nothing; to load every entry,
// omit the filter from Options instead.
type FilterSet struct {
	// exact holds normalized exact-match paths.
	exact map[string]struct{}
	// rules keeps glob patterns in insertion order for matcher compilation.
	rules []pathrules.Rule
	// matcher is the compiled glob matcher; nil while no glob rules exist.
	matcher *pathrules.Matcher
}

// NewFilterSet creates an empty filter set.
func NewFilterSet() *FilterSet {
	return &FilterSet{exact: make(map[string]struct{})}
}

// AddExact adds an exact path rule and returns the receiver for chaining.
// The path is normalized first; an empty path or a ".." segment fails with
// ErrInvalidPattern and leaves the set unchanged.
func (f *FilterSet) AddExact(path string) (*FilterSet, error) {
	normalized, err := validateRulePath(path)
	if err != nil {
		return nil, err
	}

	if f.exact == nil {
		f.exact = make(map[string]struct{})
	}

	f.exact[normalized] = struct{}{}
	return f, nil
}

// AddGlob adds a glob pattern rule ("*" any run within a segment, "?" one
// character, "**" across segments) and returns the receiver for chaining.
// The pattern is validated and compiled immediately; a malformed pattern
// fails with ErrInvalidPattern and leaves the set unchanged.
func (f *FilterSet) AddGlob(pattern string) (*FilterSet, error) {
	normalized, err := validateRulePath(pattern)
	if err != nil {
		return nil, err
	}

	rules := append(f.rules, pathrules.Rule{
		Action:  pathrules.ActionInclude,
		Pattern: normalized,
	})

	matcher, err := pathrules.NewMatcher(rules, pathrules.MatcherOptions{
		DefaultAction: pathrules.ActionExclude,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: compile %q: %w", ErrInvalidPattern, pattern, err)
	}

	f.rules = rules
	f.matcher = matcher
	return f, nil
}

// Matches reports whether a normalized path satisfies at least one rule.
func (f *FilterSet) Matches(path string) bool {
	if f == nil {
		return false
	}

	if _, ok := f.exact[path]; ok {
		return true
	}

	if f.matcher == nil {
		return false
	}

	return f.matcher.Included(path, false)
}

// IsEmpty reports whether the set contains no rules.
func (f *FilterSet) IsEmpty() bool {
	return f == nil || (len(f.exact) == 0 && len(f.rules) == 0)
}
