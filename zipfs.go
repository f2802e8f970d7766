// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Chertolet926
// Source: github.com/Chertolet926/excel-parser

package excelparser

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/klauspost/compress/zip"
)

// ZipFS is an in-memory virtual file system built from one ZIP archive.
//
// Construction walks the central directory once, decompresses every entry
// that passes the configured filter, and freezes the result. After New
// returns, a ZipFS holds no mutable state and is safe for unsynchronized
// concurrent reads.
type ZipFS struct {
	// entries maps normalized path to fully materialized entry content.
	entries map[string][]byte
	// paths holds all stored paths in ascending lexicographic order.
	paths []string
	// totalSize is the total decompressed size of stored entries in bytes.
	totalSize int64
}

// Open opens a ZIP file by path and loads every non-directory entry.
func Open(path string) (*ZipFS, error) {
	return OpenWithOptions(path, Options{})
}

// OpenWithOptions opens a ZIP file by path and loads entries using explicit options.
func OpenWithOptions(path string, opts Options) (*ZipFS, error) {
	f, size, err := openFileWithSize(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	return New(f, size, opts)
}

// New builds a ZipFS from a random-access byte source of known size.
//
// Construction is all-or-nothing: a malformed archive, an unreadable entry,
// or a crossed size limit fails the whole call and no ZipFS is returned.
func New(ra io.ReaderAt, size int64, opts Options) (*ZipFS, error) {
	if ra == nil {
		return nil, ErrNilReader
	}

	if opts.MaxArchiveSize > 0 && size > opts.MaxArchiveSize {
		return nil, fmt.Errorf("%w: archive size %d exceeds limit %d", ErrArchiveTooLarge, size, opts.MaxArchiveSize)
	}

	zr, err := zip.NewReader(ra, size)
	if err != nil && !errors.Is(err, zip.ErrInsecurePath) {
		// Insecure names are handled below: loadEntries drops any entry
		// with an absolute or traversal path instead of failing the build.
		return nil, fmt.Errorf("%w: %w", ErrInvalidArchive, err)
	}

	fs := &ZipFS{entries: make(map[string][]byte, len(zr.File))}
	if err := fs.loadEntries(zr, opts); err != nil {
		return nil, err
	}

	fs.paths = make([]string, 0, len(fs.entries))
	for path := range fs.entries {
		fs.paths = append(fs.paths, path)
	}
	sort.Strings(fs.paths)

	return fs, nil
}

// Get returns the content of one stored entry by normalized exact path.
// A miss means the path was absent from the archive or filtered out at
// construction time; the two cases are indistinguishable. The returned
// slice is shared and must not be modified.
func (fs *ZipFS) Get(path string) ([]byte, bool) {
	content, ok := fs.entries[NormalizePath(path)]
	return content, ok
}

// Contains reports whether a stored entry exists at the given path.
func (fs *ZipFS) Contains(path string) bool {
	_, ok := fs.entries[NormalizePath(path)]
	return ok
}

// List returns the full paths of all stored entries under dir at any
// nesting depth, in ascending lexicographic order. An empty dir lists
// every stored entry.
func (fs *ZipFS) List(dir string) []string {
	normalized := normalizeDirPath(dir)
	if normalized == "" {
		out := make([]string, len(fs.paths))
		copy(out, fs.paths)
		return out
	}

	prefix := normalized + "/"
	start := sort.SearchStrings(fs.paths, prefix)
	end := start
	for end < len(fs.paths) && strings.HasPrefix(fs.paths[end], prefix) {
		end++
	}

	out := make([]string, end-start)
	copy(out, fs.paths[start:end])
	return out
}

// Paths returns all stored paths in ascending lexicographic order.
func (fs *ZipFS) Paths() []string {
	out := make([]string, len(fs.paths))
	copy(out, fs.paths)
	return out
}

// Len returns the number of stored entries.
func (fs *ZipFS) Len() int {
	return len(fs.entries)
}

// TotalSize returns the total decompressed size of stored entries in bytes.
func (fs *ZipFS) TotalSize() int64 {
	return fs.totalSize
}

// loadEntries walks the central directory and materializes matching entries.
func (fs *ZipFS) loadEntries(zr *zip.Reader, opts Options) error {
	for _, file := range zr.File {
		if file.FileInfo().IsDir() {
			continue
		}

		raw := strings.TrimPrefix(normalizePathForMatching(file.Name), "/")
		if raw == "" || strings.HasSuffix(raw, "/") || hasTraversalSegment(raw) {
			continue
		}

		name := NormalizePath(file.Name)
		if name == "" {
			continue
		}

		if opts.Filter != nil && !opts.Filter.Matches(name) {
			continue
		}

		content, err := readEntryContent(file, opts.MaxExtractedSize, fs.totalSize)
		if err != nil {
			return err
		}

		if prev, ok := fs.entries[name]; ok {
			// Later central-directory records win for duplicate names.
			fs.totalSize -= int64(len(prev))
		}

		fs.entries[name] = content
		fs.totalSize += int64(len(content))
	}

	return nil
}

// readEntryContent decompresses one entry, bounding accumulated output size.
func readEntryContent(file *zip.File, limit int64, accumulated int64) ([]byte, error) {
	rc, err := file.Open()
	if err != nil {
		return nil, fmt.Errorf("%w: open entry %q: %w", ErrInvalidArchive, file.Name, err)
	}
	defer func() { _ = rc.Close() }()

	if limit <= 0 {
		content, err := io.ReadAll(rc)
		if err != nil {
			return nil, fmt.Errorf("%w: read entry %q: %w", ErrInvalidArchive, file.Name, err)
		}

		return content, nil
	}

	// Read one byte past the remaining budget so a crossing is observable
	// without trusting the size declared in the entry header.
	remaining := limit - accumulated
	content, err := io.ReadAll(io.LimitReader(rc, remaining+1))
	if err != nil {
		return nil, fmt.Errorf("%w: read entry %q: %w", ErrInvalidArchive, file.Name, err)
	}

	if int64(len(content)) > remaining {
		return nil, fmt.Errorf("%w: extracted size %d exceeds limit %d",
			ErrArchiveTooLarge, accumulated+int64(len(content)), limit)
	}

	return content, nil
}

// openFileWithSize opens a file and returns a handle plus current size.
func openFileWithSize(path string) (*os.File, int64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, fmt.Errorf("open archive: %w", err)
	}

	fi, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, 0, fmt.Errorf("stat: %w", err)
	}

	return f, fi.Size(), nil
}
