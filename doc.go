// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Chertolet926
// Source: github.com/Chertolet926/excel-parser

/*
Package excelparser provides the container-access layer beneath a
spreadsheet-document parser: an in-memory, filterable, size-bounded virtual
file system over a ZIP archive (ZipFS) and an immutable, fuzzy-searchable
shared-string table (SharedStrings) built from one extracted XML part.

Both structures are built once and frozen: construction is a single pass
and all-or-nothing, and afterwards any number of goroutines may read one
shared instance without locks.

# Archive file system

Open an .xlsx container and load only the parts the parser needs,
examples below use filter rules compiled via github.com/woozymasta/pathrules:

	filter, err := excelparser.NewFilterSet().AddExact("xl/sharedStrings.xml")
	if err != nil {
	    return err
	}
	if filter, err = filter.AddGlob("xl/worksheets/*.xml"); err != nil {
	    return err
	}

	fs, err := excelparser.OpenWithOptions("book.xlsx", excelparser.Options{
	    Filter:           filter,
	    MaxExtractedSize: 100 << 20,
	})
	if err != nil {
	    return err
	}

	data, ok := fs.Get("xl/sharedStrings.xml")
	for _, path := range fs.List("xl/worksheets") {
	    // one stored worksheet part per path
	}
	_, _ = data, ok

The extracted-size ceiling counts only filtered-in decompressed content, so
an archive of unknown total size stays safe to open as long as the shape of
the needed parts is known. An independent raw bound is available via
Options.MaxArchiveSize.

# Shared strings

Parse the shared-string part and search it:

	shared, err := excelparser.ParseSharedStrings(data)
	if err != nil {
	    return err
	}

	for _, match := range shared.FuzzyFind("math", 0) {
	    text, _ := shared.Get(match.Index)
	    // match.Score: >=100 exact, 50..99 case-folded, 1..49 subsequence
	    _ = text
	}

To amortize matcher configuration across many searches:

	matcher := excelparser.NewMatcher().CaseSensitive(true)
	results := shared.FuzzyFindWithMatcher(matcher, "Math", 100)
	_ = results
*/
package excelparser
