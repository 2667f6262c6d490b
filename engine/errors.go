package engine

import "fmt"

// InitError is returned if an engine cannot be initialized with the
// settings given.
type InitError struct {
	Setting string // name of the offending setting
	Err     error
}

func (e *InitError) Error() string {
	return fmt.Sprintf("engine: cannot initialize, invalid %s: %v", e.Setting, e.Err)
}

func (e *InitError) Unwrap() error {
	return e.Err
}

// OpenError is returned if a font face cannot be opened: the file is
// missing or unreadable, it is not a font, or it does not contain a face
// with the index asked for.
type OpenError struct {
	Path  string
	Index int
	Err   error
}

func (e *OpenError) Error() string {
	return fmt.Sprintf("engine: cannot open face %d of %s: %v", e.Index, e.Path, e.Err)
}

func (e *OpenError) Unwrap() error {
	return e.Err
}

// EncodingError is returned for font paths which cannot be handed to the
// file system, i.e. paths containing NUL bytes.
type EncodingError struct {
	Path string
	Err  error
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("engine: font path %q not representable: %v", e.Path, e.Err)
}

func (e *EncodingError) Unwrap() error {
	return e.Err
}
