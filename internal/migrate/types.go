package migrate

import (
	"fmt"

	"struct-migrator/internal/common"
	"struct-migrator/internal/shape"
)

// Strategy describes how a target field obtains its value.
type Strategy int

const (
	// StrategyCopy - copied unchanged from the common source field.
	StrategyCopy Strategy = iota
	// StrategyDefault - set to the default captured at derive time.
	StrategyDefault
)

// String returns a human-readable strategy name.
func (s Strategy) String() string {
	switch s {
	case StrategyCopy:
		return "copy"
	case StrategyDefault:
		return "default"
	default:
		return common.UnknownStr
	}
}

// Step is the resolved plan for one target field.
type Step struct {
	// Target is the field being populated.
	Target shape.Field
	// Strategy says where the value comes from.
	Strategy Strategy
	// SourceIndex is the index of the field in the source shape (StrategyCopy only).
	SourceIndex int
	// Default is the captured default value (StrategyDefault only).
	Default any
}

// Explanation describes the step in words.
func (s Step) Explanation() string {
	switch s.Strategy {
	case StrategyCopy:
		return fmt.Sprintf("copied from source field #%d", s.SourceIndex)
	case StrategyDefault:
		return fmt.Sprintf("default for %s: %#v", s.Target.Type, s.Default)
	default:
		return common.UnknownStr
	}
}
