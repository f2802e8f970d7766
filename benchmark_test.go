// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Chertolet926
// Source: github.com/Chertolet926/excel-parser

package excelparser

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/klauspost/compress/zip"
)

const (
	benchArchiveEntries = 128
	benchTableEntries   = 4096
)

var (
	// benchLenSink prevents compiler elimination in lookup benchmark loops.
	benchLenSink int
	// benchMatchSink prevents compiler elimination in fuzzy benchmark loops.
	benchMatchSink int
)

// createBenchArchive builds an in-memory archive with n worksheet-like parts.
func createBenchArchive(b *testing.B, n int) []byte {
	b.Helper()

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for i := 0; i < n; i++ {
		fw, err := zw.Create(fmt.Sprintf("xl/worksheets/sheet%d.xml", i))
		if err != nil {
			b.Fatal(err)
		}
		if _, err := fw.Write([]byte(strings.Repeat("<row/>", 64))); err != nil {
			b.Fatal(err)
		}
	}
	if err := zw.Close(); err != nil {
		b.Fatal(err)
	}

	return buf.Bytes()
}

// createBenchTable builds a shared-strings table with n entries.
func createBenchTable(b *testing.B, n int) *SharedStrings {
	b.Helper()

	var sb strings.Builder
	sb.WriteString("<sst>")
	for i := 0; i < n; i++ {
		fmt.Fprintf(&sb, "<si><t>Course %d Advanced Mathematics</t></si>", i)
	}
	sb.WriteString("</sst>")

	shared, err := ParseSharedStrings([]byte(sb.String()))
	if err != nil {
		b.Fatal(err)
	}

	return shared
}

func BenchmarkNewZipFS(b *testing.B) {
	data := createBenchArchive(b, benchArchiveEntries)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		fs, err := New(bytes.NewReader(data), int64(len(data)), Options{})
		if err != nil {
			b.Fatal(err)
		}
		benchLenSink = fs.Len()
	}
}

func BenchmarkZipFSList(b *testing.B) {
	data := createBenchArchive(b, benchArchiveEntries)
	fs, err := New(bytes.NewReader(data), int64(len(data)), Options{})
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		benchLenSink = len(fs.List("xl/worksheets"))
	}
}

func BenchmarkParseSharedStrings(b *testing.B) {
	var sb strings.Builder
	sb.WriteString("<sst>")
	for i := 0; i < benchTableEntries; i++ {
		fmt.Fprintf(&sb, "<si><r><t>part %d </t></r><r><t>tail</t></r></si>", i)
	}
	sb.WriteString("</sst>")
	data := []byte(sb.String())

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		shared, err := ParseSharedStrings(data)
		if err != nil {
			b.Fatal(err)
		}
		benchLenSink = shared.Len()
	}
}

func BenchmarkFuzzyFind(b *testing.B) {
	shared := createBenchTable(b, benchTableEntries)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		benchMatchSink = len(shared.FuzzyFind("math", 0))
	}
}
