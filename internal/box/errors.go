package box

import "errors"

// ErrBuild is matched by every *BuildError.
var ErrBuild = errors.New("cannot build an encrypted box")

// BuildError is returned by Builder.Build when the builder is not ready.
type BuildError struct {
	Reason string
}

func (e *BuildError) Error() string {
	return ErrBuild.Error() + ": " + e.Reason
}

// Is makes every BuildError match ErrBuild.
func (e *BuildError) Is(target error) bool {
	return target == ErrBuild
}
