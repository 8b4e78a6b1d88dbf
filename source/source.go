/*
File    : gomatch/source/source.go
*/

// Package source acquires the file-backed Stream a script run lexes from,
// guaranteeing the underlying file handle is released on every exit path
// (normal completion, parse/runtime error, or panic) rather than leaking
// it across a long-running interpreter session.
package source

import (
	"os"

	"github.com/gomatch-lang/gomatch/lexer"
)

// Open opens path and wraps it in a lexer.FileStream carrying path as the
// stream's Filename (so later diagnostics can show the offending line).
// The returned close func must be deferred by the caller immediately;
// Open never closes the handle itself on the success path.
func Open(path string) (stream *lexer.FileStream, closeFn func() error, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	return lexer.NewFileStream(f, path), f.Close, nil
}

// Run opens path, builds its Stream, and passes it to fn, guaranteeing
// the file is closed when fn returns regardless of how it returns.
func Run(path string, fn func(*lexer.FileStream) error) error {
	stream, closeFn, err := Open(path)
	if err != nil {
		return err
	}
	defer closeFn()
	return fn(stream)
}
