// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Chertolet926
// Source: github.com/Chertolet926/excel-parser

package excelparser

import (
	"fmt"
	"path"
	"strings"
)

// NormalizePath converts an archive/internal path to normalized slash-separated form.
// It trims spaces, accepts both "/" and "\", removes leading "./" and "/", and cleans "." segments.
func NormalizePath(raw string) string {
	raw = normalizePathForMatching(raw)
	raw = strings.TrimPrefix(raw, "/")
	raw = path.Clean("/" + raw)
	raw = strings.TrimPrefix(raw, "/")
	if raw == "." {
		return ""
	}

	return strings.TrimSuffix(raw, "/")
}

// normalizePathForMatching normalizes user/input paths for matcher use.
func normalizePathForMatching(path string) string {
	path = strings.TrimSpace(path)
	path = strings.ReplaceAll(path, `\`, `/`)
	path = strings.TrimPrefix(path, "./")
	return path
}

// normalizeDirPath strips leading and trailing slashes from a directory path.
func normalizeDirPath(dir string) string {
	dir = normalizePathForMatching(dir)
	return strings.Trim(dir, "/")
}

// hasTraversalSegment reports whether a slash-separated path contains a ".." segment.
func hasTraversalSegment(path string) bool {
	for path != "" {
		segment := path
		if idx := strings.IndexByte(path, '/'); idx >= 0 {
			segment = path[:idx]
			path = path[idx+1:]
		} else {
			path = ""
		}

		if segment == ".." {
			return true
		}
	}

	return false
}

// validateRulePath validates and normalizes a filter rule path or glob pattern.
// Rules are not path.Clean-ed so that wildcard characters survive untouched.
func validateRulePath(raw string) (string, error) {
	normalized := strings.TrimPrefix(normalizePathForMatching(raw), "/")
	if normalized == "" {
		return "", fmt.Errorf("%w: empty path", ErrInvalidPattern)
	}

	if hasTraversalSegment(normalized) {
		return "", fmt.Errorf("%w: path traversal not allowed in %q", ErrInvalidPattern, raw)
	}

	return normalized, nil
}
