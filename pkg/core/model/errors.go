package model

import "fmt"

// InputError reports a malformed scene or directory entry. Input errors are
// raised before any scoring happens and are not recoverable inside the engine.
type InputError struct {
	SceneNumber string
	Field       string
	Reason      string
}

func (e *InputError) Error() string {
	if e.SceneNumber == "" {
		return fmt.Sprintf("invalid input: %s: %s", e.Field, e.Reason)
	}
	return fmt.Sprintf("invalid scene %q: %s: %s", e.SceneNumber, e.Field, e.Reason)
}

// ConfigurationError reports an invalid engine constant
type ConfigurationError struct {
	Field  string
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("invalid configuration: %s: %s", e.Field, e.Reason)
}
