// Package logfile opens log files and yields their lines one at a time.
//
// # Overview
//
// A Reader wraps an *os.File and a bufio.Scanner. Lines are returned without
// their trailing newline; a trailing carriage return is dropped too, so CRLF
// files read the same as LF files.
//
//	r, err := logfile.Open("/var/log/app.log", logfile.Options{})
//	if err != nil {
//		return err // *logfile.OpenError
//	}
//	defer r.Close()
//
//	for {
//		line, ok := r.Next()
//		if !ok {
//			break
//		}
//		// ...
//	}
//	if err := r.Err(); err != nil {
//		return err // *logfile.ReadError
//	}
//
// # Compression
//
// The file extension selects a decoder:
//
//   - .gz: gzip (klauspost/compress/gzip)
//   - .zst, .zstd: Zstandard (klauspost/compress/zstd)
//   - anything else: read as-is
//
// # Error Handling
//
// Open returns *OpenError when the path is missing, unreadable, a directory,
// or carries a corrupt compression header. Next stops at the first failure
// and Err returns a *ReadError naming the path and 1-based line number.
// Read failures include I/O errors, lines longer than Options.MaxLineBytes
// (bufio.ErrTooLong), corrupt compressed data, and lines that are not valid
// UTF-8 (ErrInvalidUTF8).
//
// The reader does not retry and does not skip bad lines.
package logfile
