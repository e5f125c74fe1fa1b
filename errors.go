package fb

import (
	"fmt"

	"github.com/go-errors/errors"
)

// Stage identifies the initialization step that failed. Its numeric value
// doubles as the process exit status used by the fbdisp command.
type Stage int

const (
	StageOpen Stage = iota + 1
	StageFixInfo
	StageVarInfo
	StageSize
	StageMap
	StageFormat
)

func (s Stage) String() string {
	switch s {
	case StageOpen:
		return "opening framebuffer"
	case StageFixInfo:
		return "reading fixed info"
	case StageVarInfo:
		return "reading variable info"
	case StageSize:
		return "verifying size"
	case StageMap:
		return "mapping framebuffer"
	case StageFormat:
		return "checking pixel format"
	}
	return fmt.Sprintf("stage(%d)", int(s))
}

var (
	ErrClosed            = errors.New("framebuffer closed")
	ErrNoDevice          = errors.New("display is not backed by a device")
	ErrUnsupportedFormat = errors.New("unsupported pixel format")
	ErrSizeMismatch      = errors.New("size mismatch")
)

// InitError reports a failed Open.
type InitError struct {
	Stage Stage
	Path  string
	Err   error
}

func (e *InitError) Error() string {
	return fmt.Sprintf("%s %s: %s", e.Stage, e.Path, e.Err)
}

func (e *InitError) Unwrap() error { return e.Err }

// ExitCode is the status the process should terminate with.
func (e *InitError) ExitCode() int { return int(e.Stage) }

func initError(stage Stage, path string, err error) error {
	return errors.Wrap(&InitError{Stage: stage, Path: path, Err: err}, 1)
}
