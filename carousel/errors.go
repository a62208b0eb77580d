package carousel

import "fmt"

// ConfigurationError is returned when a carousel cannot be constructed.
type ConfigurationError struct {
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("carousel configuration: %s", e.Reason)
}

// InvalidIndexError is returned when a jump targets an index outside [0, Count).
type InvalidIndexError struct {
	Index int
	Count int
}

func (e *InvalidIndexError) Error() string {
	return fmt.Sprintf("slide index %d out of range [0,%d)", e.Index, e.Count)
}
