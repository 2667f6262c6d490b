package ot

import (
	"fmt"
	"slices"
)

// ErrorSeverity tells how much of a font is still usable after a parsing error.
type ErrorSeverity int

const (
	// SeverityCritical errors make the font unusable, e.g. a missing 'head' table.
	SeverityCritical ErrorSeverity = iota
	// SeverityMajor errors void a damaged sub-table. Queries touching it yield zero values.
	SeverityMajor
	// SeverityMinor errors may be ignored.
	SeverityMinor
)

var severityNames = [...]string{
	SeverityCritical: "CRITICAL",
	SeverityMajor:    "MAJOR",
	SeverityMinor:    "MINOR",
}

func (s ErrorSeverity) String() string {
	if s < 0 || int(s) >= len(severityNames) {
		return "UNKNOWN"
	}
	return severityNames[s]
}

// FontError is an issue found while parsing a table. Parsing continues after
// non-critical errors; the font keeps a record of them.
type FontError struct {
	Table    Tag    // e.g. "MATH"
	Section  string // e.g. "MathKernInfo"
	Issue    string
	Severity ErrorSeverity
	Offset   uint32 // within the table, 0 if unknown
}

func (e FontError) Error() string {
	return fmt.Sprintf("[%s] %s/%s%s: %s", e.Severity, e.Table, e.Section, at(e.Offset), e.Issue)
}

// FontWarning is an oddity in a font which does not affect any query.
type FontWarning struct {
	Table  Tag
	Issue  string
	Offset uint32
}

func (w FontWarning) String() string {
	return fmt.Sprintf("[WARNING] %s%s: %s", w.Table, at(w.Offset), w.Issue)
}

func at(offset uint32) string {
	if offset == 0 {
		return ""
	}
	return fmt.Sprintf(" at offset %d", offset)
}

// Errors returns the errors recorded while parsing the font.
func (otf *Font) Errors() []FontError {
	return slices.Clone(otf.parseErrors)
}

// Warnings returns the warnings recorded while parsing the font.
func (otf *Font) Warnings() []FontWarning {
	return slices.Clone(otf.parseWarnings)
}

// CriticalErrors returns the recorded errors of critical severity. A font
// returned by Parse never has any, but fonts assembled otherwise may.
func (otf *Font) CriticalErrors() []FontError {
	var critical []FontError
	for _, err := range otf.parseErrors {
		if err.Severity == SeverityCritical {
			critical = append(critical, err)
		}
	}
	return critical
}

// errorCollector gathers issues during a parse run. They are handed to the
// font once parsing succeeded.
type errorCollector struct {
	errors   []FontError
	warnings []FontWarning
}

func (ec *errorCollector) addError(table Tag, section string, issue string, severity ErrorSeverity, offset uint32) {
	err := FontError{Table: table, Section: section, Issue: issue, Severity: severity, Offset: offset}
	tracer().Infof("font error %s", err)
	ec.errors = append(ec.errors, err)
}

func (ec *errorCollector) addWarning(table Tag, issue string, offset uint32) {
	ec.warnings = append(ec.warnings, FontWarning{Table: table, Issue: issue, Offset: offset})
}

func (ec *errorCollector) hasCriticalErrors() bool {
	return slices.ContainsFunc(ec.errors, func(err FontError) bool {
		return err.Severity == SeverityCritical
	})
}

func (ec *errorCollector) moveTo(otf *Font) {
	otf.parseErrors = append(otf.parseErrors, ec.errors...)
	otf.parseWarnings = append(otf.parseWarnings, ec.warnings...)
	ec.errors, ec.warnings = nil, nil
}
