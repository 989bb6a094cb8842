package gpu

import "fmt"

// BuildError reports a shader stage that failed to compile or a program that
// failed to link, together with the driver's info log.
type BuildError struct {
	Stage string // "vertex", "fragment" or "link"
	Log   string
}

func (e *BuildError) Error() string {
	return fmt.Sprintf("%s: %s", e.Stage, e.Log)
}
