// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Chertolet926
// Source: github.com/Chertolet926/excel-parser

package excelparser

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"sort"
	"strings"
)

// SharedStrings is the immutable shared-string table of one workbook,
// parsed from xl/sharedStrings.xml. Entry order matches the order of
// <si> elements in the source, so the slice index is the shared-string
// index referenced by cell values.
//
// After ParseSharedStrings returns, the table holds no mutable state and
// is safe for unsynchronized concurrent reads.
type SharedStrings struct {
	// strings stores table entries in document order.
	strings []string
}

// ParseSharedStrings parses shared-strings XML in a single streaming pass.
//
// Expected shape:
//
//	<sst>
//	  <si><t>First string</t></si>
//	  <si><r><t>Second </t></r><r><t>string</t></r></si>
//	</sst>
//
// Each <si> becomes one table entry; the text of every <t> nested under it
// concatenates in document order with no separator, so rich-text run
// boundaries vanish from the logical string. Malformed XML fails with an
// error wrapping ErrMalformedSharedStrings and no table is returned.
func ParseSharedStrings(data []byte) (*SharedStrings, error) {
	decoder := xml.NewDecoder(bytes.NewReader(data))

	var entries []string
	var current strings.Builder
	inItem := false
	textDepth := 0

	for {
		token, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrMalformedSharedStrings, err)
		}

		switch tok := token.(type) {
		case xml.StartElement:
			switch tok.Name.Local {
			case "si":
				inItem = true
				current.Reset()
			case "t":
				if inItem {
					textDepth++
				}
			}
		case xml.EndElement:
			switch tok.Name.Local {
			case "si":
				if inItem {
					entries = append(entries, current.String())
					inItem = false
				}
			case "t":
				if textDepth > 0 {
					textDepth--
				}
			}
		case xml.CharData:
			if textDepth > 0 {
				current.Write(tok)
			}
		}
	}

	return &SharedStrings{strings: entries}, nil
}

// Get returns the shared string at the given zero-based index.
func (s *SharedStrings) Get(index int) (string, bool) {
	if index < 0 || index >= len(s.strings) {
		return "", false
	}

	return s.strings[index], true
}

// Len returns the number of entries in the table.
func (s *SharedStrings) Len() int {
	return len(s.strings)
}

// FuzzyFind scores every table entry against query with a default
// case-insensitive matcher and returns entries scoring at least threshold,
// ordered by descending score; equal scores order by ascending index.
// Threshold 0 admits every entry that is at least a subsequence match.
func (s *SharedStrings) FuzzyFind(query string, threshold int) []FuzzyMatch {
	return s.FuzzyFindWithMatcher(NewMatcher(), query, threshold)
}

// FuzzyFindWithMatcher is FuzzyFind with caller-supplied matcher
// configuration, letting one configured Matcher serve many searches.
func (s *SharedStrings) FuzzyFindWithMatcher(matcher *Matcher, query string, threshold int) []FuzzyMatch {
	if matcher == nil {
		matcher = NewMatcher()
	}

	var results []FuzzyMatch
	for i, entry := range s.strings {
		score, ok := matcher.Score(entry, query)
		if !ok || score < threshold {
			continue
		}

		results = append(results, FuzzyMatch{Index: i, Score: score})
	}

	sort.Slice(results, func(a, b int) bool {
		if results[a].Score != results[b].Score {
			return results[a].Score > results[b].Score
		}

		return results[a].Index < results[b].Index
	})

	return results
}

// FuzzyFindIndices returns only the indices of FuzzyFind results, in the
// same order.
func (s *SharedStrings) FuzzyFindIndices(query string, threshold int) []int {
	matches := s.FuzzyFind(query, threshold)
	out := make([]int, len(matches))
	for i, match := range matches {
		out[i] = match.Index
	}

	return out
}
