// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Chertolet926
// Source: github.com/Chertolet926/excel-parser

package excelparser

// Options configures ZipFS construction.
type Options struct {
	// Filter selects which archive entries are materialized.
	// Nil means no filtering: every non-directory entry is loaded.
	// A non-nil empty filter matches nothing and yields an empty file system.
	Filter *FilterSet `json:"-" yaml:"-"`
	// MaxExtractedSize bounds the total decompressed size of loaded entries
	// in bytes. Only entries that pass Filter count against the limit.
	// Zero means unlimited.
	MaxExtractedSize int64 `json:"max_extracted_size,omitempty" yaml:"max_extracted_size,omitempty"`
	// MaxArchiveSize bounds the raw archive size in bytes before any entry
	// is read. Zero means unlimited.
	MaxArchiveSize int64 `json:"max_archive_size,omitempty" yaml:"max_archive_size,omitempty"`
}

// FuzzyMatch is one scored shared-string search result.
type FuzzyMatch struct {
	// Index is the shared-string table index of the matched entry.
	Index int `json:"index" yaml:"index"`
	// Score is the match score; higher is better.
	Score int `json:"score" yaml:"score"`
}
