package ot

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestErrorSeverity(t *testing.T) {
	tests := []struct {
		severity ErrorSeverity
		expected string
	}{
		{SeverityCritical, "CRITICAL"},
		{SeverityMajor, "MAJOR"},
		{SeverityMinor, "MINOR"},
		{ErrorSeverity(999), "UNKNOWN"},
	}
	for _, tt := range tests {
		if result := tt.severity.String(); result != tt.expected {
			t.Errorf("ErrorSeverity(%d).String() = %q; want %q", tt.severity, result, tt.expected)
		}
	}
}

func TestFontError(t *testing.T) {
	tests := []struct {
		name     string
		err      FontError
		expected string
	}{
		{
			name: "Error with offset",
			err: FontError{
				Table:    T("MATH"),
				Section:  "MathKernInfo",
				Issue:    "Buffer too small",
				Severity: SeverityMajor,
				Offset:   1234,
			},
			expected: "[MAJOR] MATH/MathKernInfo at offset 1234: Buffer too small",
		},
		{
			name: "Error without offset",
			err: FontError{
				Table:    T("head"),
				Section:  "Missing",
				Issue:    "missing required table",
				Severity: SeverityCritical,
			},
			expected: "[CRITICAL] head/Missing: missing required table",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := tt.err.Error(); result != tt.expected {
				t.Errorf("FontError.Error() = %q; want %q", result, tt.expected)
			}
		})
	}
}

func TestFontWarning(t *testing.T) {
	w := FontWarning{Table: T("OS/2"), Issue: "too small"}
	if w.String() != "[WARNING] OS/2: too small" {
		t.Errorf("unexpected warning format %q", w.String())
	}
	w.Offset = 8
	if w.String() != "[WARNING] OS/2 at offset 8: too small" {
		t.Errorf("unexpected warning format %q", w.String())
	}
}

func TestErrorCollector(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "font.opentype")
	defer teardown()
	//
	ec := &errorCollector{}
	ec.addWarning(T("head"), "odd units per em", 18)
	ec.addError(T("MATH"), "MathVariants", "broken", SeverityMajor, 0)
	if ec.hasCriticalErrors() {
		t.Errorf("did not expect critical errors")
	}
	ec.addError(T("maxp"), "Size", "too small", SeverityCritical, 0)
	if !ec.hasCriticalErrors() {
		t.Errorf("expected critical errors")
	}
	otf := &Font{}
	ec.moveTo(otf)
	if len(otf.Errors()) != 2 || len(otf.Warnings()) != 1 || len(otf.CriticalErrors()) != 1 {
		t.Errorf("expected 2 errors, 1 critical, and 1 warning on font")
	}
	if len(ec.errors) != 0 || len(ec.warnings) != 0 {
		t.Errorf("expected collector to be empty after move")
	}
}
