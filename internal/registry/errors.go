package registry

import (
	"errors"
	"fmt"
	"strings"
)

// Registry errors. The typed errors below carry the identifying detail and
// match these sentinels via errors.Is.
var (
	ErrNotFound            = errors.New("data file not found")
	ErrRegistryUnavailable = errors.New("could not locate default sources")
	ErrMalformedSource     = errors.New("malformed default source")
	ErrMalformedLookup     = errors.New("malformed lookup table")
)

// NotFoundError reports a file or source directory that resolves in no tier.
type NotFoundError struct {
	Source   string
	Filename string
}

func (e *NotFoundError) Error() string {
	switch {
	case e.Source != "" && e.Filename != "":
		return fmt.Sprintf("cannot find file %q for source %q", e.Filename, e.Source)
	case e.Source != "":
		return fmt.Sprintf("cannot find source %q", e.Source)
	default:
		return fmt.Sprintf("cannot find %q", e.Filename)
	}
}

func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }

// MalformedSourceError reports a source whose .txt file is missing required
// header keys. Missing holds the absent keys in contract order.
type MalformedSourceError struct {
	Source  string
	File    string
	Missing []string
}

func (e *MalformedSourceError) Error() string {
	return fmt.Sprintf("source %q: file %q is missing required header keys: %s",
		e.Source, e.File, strings.Join(e.Missing, ", "))
}

func (e *MalformedSourceError) Is(target error) bool { return target == ErrMalformedSource }

// MalformedLookupError reports an elements.json that exists but does not
// parse as JSON.
type MalformedLookupError struct {
	Path string
	Err  error
}

func (e *MalformedLookupError) Error() string {
	return fmt.Sprintf("lookup table %s: %v", e.Path, e.Err)
}

func (e *MalformedLookupError) Is(target error) bool { return target == ErrMalformedLookup }

func (e *MalformedLookupError) Unwrap() error { return e.Err }
