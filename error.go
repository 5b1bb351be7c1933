package main

import "errors"

var (
	ErrCouldNotResolvePath = errors.New("could not resolve path")
	ErrMissingArguments    = errors.New("missing arguments")
	ErrUnknownCommand      = errors.New("command not recognised")
	ErrJobFileExists       = errors.New("not overwriting existing job file")
	ErrInvalidJobName      = errors.New("job and index names must be plain file names")
)
