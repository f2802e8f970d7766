// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Chertolet926
// Source: github.com/Chertolet926/excel-parser

package excelparser

import "errors"

// Sentinel errors for archive and shared-strings operations. Use errors.Is in callers.
var (
	// ErrInvalidPattern means a filter path or glob pattern is empty or contains a ".." segment.
	ErrInvalidPattern = errors.New("invalid filter pattern")
	// ErrInvalidArchive means the ZIP container structure is malformed or an entry cannot be read.
	ErrInvalidArchive = errors.New("invalid ZIP archive")
	// ErrArchiveTooLarge means archive content exceeds a configured size limit.
	ErrArchiveTooLarge = errors.New("archive exceeds size limit")
	// ErrNilReader means the byte source is nil.
	ErrNilReader = errors.New("reader is nil")
	// ErrMalformedSharedStrings means the shared-strings XML cannot be parsed.
	ErrMalformedSharedStrings = errors.New("malformed shared strings XML")
)
