package diagnostic

import (
	"errors"
	"fmt"
	"strings"

	"struct-migrator/internal/common"
)

// Diagnostic codes.
const (
	CodeDuplicateFieldName     = "duplicate_field_name"
	CodeMissingDefaultProvider = "missing_default_provider"
	CodeInvalidDefault         = "invalid_default"
	CodeIncompleteMigration    = "incomplete_migration"
	CodeUnknownShape           = "unknown_shape"
	CodeInvalidDefinition      = "invalid_definition"
	CodeFieldDropped           = "field_dropped"
	CodeTypeChanged            = "type_changed"
	CodePossibleRename         = "possible_rename"
)

var (
	// ErrDuplicateFieldName is matched by errors for shapes declaring a field name twice.
	ErrDuplicateFieldName = errors.New("duplicate field name")
	// ErrMissingDefaultProvider is matched by errors for added fields whose type has no default.
	ErrMissingDefaultProvider = errors.New("missing default provider")
	// ErrInvalidDefault is matched when a provider's value does not fit its field type.
	ErrInvalidDefault = errors.New("invalid default")
	// ErrIncompleteMigration is matched when a target field is left unsourced.
	ErrIncompleteMigration = errors.New("incomplete migration")
	// ErrUnknownShape is matched when a definition refers to an undeclared shape.
	ErrUnknownShape = errors.New("unknown shape")
	// ErrInvalidDefinition is matched by structural definition file errors.
	ErrInvalidDefinition = errors.New("invalid definition")
)

var sentinels = map[string]error{
	CodeDuplicateFieldName:     ErrDuplicateFieldName,
	CodeMissingDefaultProvider: ErrMissingDefaultProvider,
	CodeInvalidDefault:         ErrInvalidDefault,
	CodeIncompleteMigration:    ErrIncompleteMigration,
	CodeUnknownShape:           ErrUnknownShape,
	CodeInvalidDefinition:      ErrInvalidDefinition,
}

// Error is a single coded failure. It identifies the shape pair and the
// field involved so callers can fix the shapes or the registry and re-derive.
type Error struct {
	Code     string
	TypePair string
	Field    string
	Type     string
	Message  string
}

// Error implements error.
func (e *Error) Error() string {
	return e.diagnostic().String()
}

// Is reports whether target is the sentinel for the error's code.
func (e *Error) Is(target error) bool {
	s, ok := sentinels[e.Code]
	return ok && s == target
}

func (e *Error) diagnostic() Diagnostic {
	msg := e.Message
	if e.Type != "" {
		msg = fmt.Sprintf("%s (type %s)", msg, e.Type)
	}

	return Diagnostic{
		Severity:  DiagnosticError,
		Code:      e.Code,
		Message:   msg,
		TypePair:  e.TypePair,
		FieldPath: e.Field,
	}
}

// Diagnostics holds all diagnostic information from a derivation.
type Diagnostics struct {
	Errors   []Diagnostic
	Warnings []Diagnostic
	Infos    []Diagnostic

	errs []error
}

// Diagnostic represents a single diagnostic message.
type Diagnostic struct {
	// Severity of the diagnostic.
	Severity DiagnosticSeverity
	// Code is a unique identifier for this type of diagnostic.
	Code string
	// Message is the human-readable description.
	Message string
	// TypePair identifies which shape pair this relates to (if any).
	TypePair string
	// FieldPath identifies which field this relates to (if any).
	FieldPath string
	// Suggestions are potential fixes or alternatives.
	Suggestions []string
}

// DiagnosticSeverity represents the severity level of a diagnostic.
type DiagnosticSeverity int

const (
	DiagnosticInfo DiagnosticSeverity = iota
	DiagnosticWarning
	DiagnosticError
)

// String returns a human-readable severity name.
func (s DiagnosticSeverity) String() string {
	switch s {
	case DiagnosticInfo:
		return "info"
	case DiagnosticWarning:
		return "warning"
	case DiagnosticError:
		return "error"
	default:
		return common.UnknownStr
	}
}

// Fail records a coded error.
func (d *Diagnostics) Fail(e *Error) {
	d.Errors = append(d.Errors, e.diagnostic())
	d.errs = append(d.errs, e)
}

// AddError adds an error diagnostic.
func (d *Diagnostics) AddError(code, message, typePair, fieldPath string) {
	d.Fail(&Error{Code: code, Message: message, TypePair: typePair, Field: fieldPath})
}

// AddWarning adds a warning diagnostic.
func (d *Diagnostics) AddWarning(code, message, typePair, fieldPath string) {
	d.Warnings = append(d.Warnings, Diagnostic{
		Severity:  DiagnosticWarning,
		Code:      code,
		Message:   message,
		TypePair:  typePair,
		FieldPath: fieldPath,
	})
}

// AddInfo adds an info diagnostic.
func (d *Diagnostics) AddInfo(code, message, typePair, fieldPath string, suggestions ...string) {
	d.Infos = append(d.Infos, Diagnostic{
		Severity:    DiagnosticInfo,
		Code:        code,
		Message:     message,
		TypePair:    typePair,
		FieldPath:   fieldPath,
		Suggestions: suggestions,
	})
}

// HasErrors returns true if there are any error diagnostics.
func (d *Diagnostics) HasErrors() bool {
	return len(d.Errors) > 0
}

// Merge merges another Diagnostics instance into this one.
func (d *Diagnostics) Merge(other Diagnostics) {
	d.Errors = append(d.Errors, other.Errors...)
	d.Warnings = append(d.Warnings, other.Warnings...)
	d.Infos = append(d.Infos, other.Infos...)
	d.errs = append(d.errs, other.errs...)
}

// All returns every diagnostic ordered by severity, errors first.
func (d *Diagnostics) All() []Diagnostic {
	all := make([]Diagnostic, 0, len(d.Errors)+len(d.Warnings)+len(d.Infos))
	all = append(all, d.Errors...)
	all = append(all, d.Warnings...)

	return append(all, d.Infos...)
}

// Err returns the recorded errors joined, or nil if there are none.
// Each joined error is a *Error, so errors.Is and errors.As see through it.
func (d *Diagnostics) Err() error {
	return errors.Join(d.errs...)
}

// String returns a formatted diagnostic string.
func (d Diagnostic) String() string {
	var prefix []string
	if d.TypePair != "" {
		prefix = append(prefix, "["+d.TypePair+"]")
	}

	if d.FieldPath != "" {
		prefix = append(prefix, d.FieldPath)
	}

	msg := d.Message
	if d.Code != "" {
		msg = fmt.Sprintf("[%s] %s", d.Code, msg)
	}

	if len(d.Suggestions) > 0 {
		msg += " (did you mean " + strings.Join(d.Suggestions, ", ") + "?)"
	}

	if len(prefix) > 0 {
		return strings.Join(prefix, " ") + ": " + msg
	}

	return msg
}
