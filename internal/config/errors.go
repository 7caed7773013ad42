package config

import (
	"errors"
	"fmt"
)

var (
	// ErrConfigRead matches any *ReadError.
	ErrConfigRead = errors.New("config read failed")

	// ErrConfigParse matches any *ParseError.
	ErrConfigParse = errors.New("config parse failed")
)

// ReadError reports a config file that exists but cannot be read.
// A missing file is not an error.
type ReadError struct {
	Path string
	Err  error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("read config %s: %v", e.Path, e.Err)
}

func (e *ReadError) Unwrap() error { return e.Err }

func (e *ReadError) Is(target error) bool { return target == ErrConfigRead }

// ParseError reports malformed or schema-invalid config content.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse config %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

func (e *ParseError) Is(target error) bool { return target == ErrConfigParse }
