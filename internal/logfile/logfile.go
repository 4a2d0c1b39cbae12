package logfile

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

const (
	initialBufferSize = 64 * 1024

	// DefaultMaxLineBytes bounds a single line when no limit is configured.
	DefaultMaxLineBytes = 1024 * 1024
)

// Compression identifies how a log file is encoded on disk.
type Compression string

const (
	CompressionNone Compression = "none"
	CompressionGzip Compression = "gzip"
	CompressionZstd Compression = "zstd"
)

// ErrInvalidUTF8 is wrapped by ReadError when a line is not valid UTF-8.
var ErrInvalidUTF8 = errors.New("stream did not contain valid UTF-8")

// OpenError reports that a log file could not be opened.
type OpenError struct {
	Path string
	Err  error
}

func (e *OpenError) Error() string {
	return fmt.Sprintf("open log file %q: %v", e.Path, e.Err)
}

func (e *OpenError) Unwrap() error { return e.Err }

// ReadError reports a failure while reading a line from an open log file.
type ReadError struct {
	Path string
	Line int // 1-based number of the line that failed
	Err  error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("read line %d of %q: %v", e.Line, e.Path, e.Err)
}

func (e *ReadError) Unwrap() error { return e.Err }

// Options tune how a file is read.
type Options struct {
	MaxLineBytes int // zero uses DefaultMaxLineBytes
}

// Reader yields the lines of a log file one at a time.
type Reader struct {
	path        string
	compression Compression
	file        *os.File
	decoder     io.Closer
	scanner     *bufio.Scanner
	lineNo      int
	err         error
}

// Open opens the file at path for line-by-line reading. Files ending in .gz
// or .zst are decompressed transparently.
func Open(path string, opts Options) (*Reader, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, &OpenError{Path: path, Err: err}
	}
	if info, err := file.Stat(); err != nil {
		_ = file.Close()
		return nil, &OpenError{Path: path, Err: err}
	} else if info.IsDir() {
		_ = file.Close()
		return nil, &OpenError{Path: path, Err: errors.New("is a directory")}
	}

	r := &Reader{path: path, file: file, compression: DetectCompression(path)}

	var src io.Reader = file
	switch r.compression {
	case CompressionGzip:
		gz, err := gzip.NewReader(file)
		if err != nil {
			_ = file.Close()
			return nil, &OpenError{Path: path, Err: fmt.Errorf("gzip header: %w", err)}
		}
		r.decoder = gz
		src = gz
	case CompressionZstd:
		dec, err := zstd.NewReader(file)
		if err != nil {
			_ = file.Close()
			return nil, &OpenError{Path: path, Err: fmt.Errorf("zstd decoder: %w", err)}
		}
		r.decoder = dec.IOReadCloser()
		src = dec
	}

	maxLine := opts.MaxLineBytes
	if maxLine <= 0 {
		maxLine = DefaultMaxLineBytes
	}
	r.scanner = bufio.NewScanner(src)
	r.scanner.Buffer(make([]byte, 0, min(initialBufferSize, maxLine)), maxLine)
	return r, nil
}

// DetectCompression infers the encoding from the file extension.
func DetectCompression(path string) Compression {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".gz":
		return CompressionGzip
	case ".zst", ".zstd":
		return CompressionZstd
	default:
		return CompressionNone
	}
}

// Next advances to the next line. It returns false at end of input or on the
// first read failure; call Err to tell them apart.
func (r *Reader) Next() (string, bool) {
	if r.err != nil {
		return "", false
	}
	if !r.scanner.Scan() {
		if err := r.scanner.Err(); err != nil {
			r.err = &ReadError{Path: r.path, Line: r.lineNo + 1, Err: err}
		}
		return "", false
	}
	r.lineNo++
	raw := r.scanner.Bytes()
	if !utf8.Valid(raw) {
		r.err = &ReadError{Path: r.path, Line: r.lineNo, Err: ErrInvalidUTF8}
		return "", false
	}
	return string(raw), true
}

// Err returns the read failure that stopped Next, if any.
func (r *Reader) Err() error {
	return r.err
}

// Path returns the path the reader was opened with.
func (r *Reader) Path() string {
	return r.path
}

// Compression reports how the file is being decoded.
func (r *Reader) Compression() Compression {
	return r.compression
}

// Close releases the decoder and the underlying file.
func (r *Reader) Close() error {
	if r.decoder != nil {
		_ = r.decoder.Close()
	}
	if err := r.file.Close(); err != nil {
		return fmt.Errorf("close log: %w", err)
	}
	return nil
}
