package database

import "fmt"

// The toolkit surfaces driver failures as one of a small set of error
// types so that callers (and tests) can branch on the failure class with
// errors.As instead of matching message strings.

// ConfigurationError reports invalid connection settings or a failure to
// establish the initial connection.
type ConfigurationError struct {
	Msg string
	Err error
}

func (e *ConfigurationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.Err)
	}
	return e.Msg
}

func (e *ConfigurationError) Unwrap() error { return e.Err }

// SchemaError reports a failure during schema inference, including a
// requested collection that does not exist.
type SchemaError struct {
	Msg string
	Err error
}

func (e *SchemaError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.Err)
	}
	return e.Msg
}

func (e *SchemaError) Unwrap() error { return e.Err }

// ValidationError reports a malformed query document that could not be
// validated at all (as opposed to a query that validated with findings).
type ValidationError struct {
	Msg string
	Err error
}

func (e *ValidationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.Err)
	}
	return e.Msg
}

func (e *ValidationError) Unwrap() error { return e.Err }

// ExecutionError reports a failure while running a find query.
type ExecutionError struct {
	Msg string
	Err error
}

func (e *ExecutionError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.Err)
	}
	return e.Msg
}

func (e *ExecutionError) Unwrap() error { return e.Err }
