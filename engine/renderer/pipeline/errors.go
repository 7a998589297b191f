package pipeline

import "fmt"

// ConfigurationError reports a pipeline that cannot be built as requested: no
// device to draw with, a quad that failed to upload, or a pass whose shader
// was never successfully compiled.
type ConfigurationError struct {
	Msg string
	Err error
}

func (e *ConfigurationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("pipeline: %s: %v", e.Msg, e.Err)
	}
	return "pipeline: " + e.Msg
}

func (e *ConfigurationError) Unwrap() error {
	return e.Err
}
