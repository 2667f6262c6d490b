package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/npillmayer/mathfont/otface"
	"github.com/pterm/pterm"
	"golang.org/x/text/unicode/bidi"
)

var errNoGlyph = errors.New("glyph argument missing")

// parseGlyph reads a glyph argument: "#123" is a glyph ID, "U+221A" a
// code-point, anything else a single character.
func parseGlyph(face *otface.Face, arg string) (otface.GlyphID, error) {
	switch {
	case arg == "":
		return 0, errNoGlyph
	case strings.HasPrefix(arg, "#") && len(arg) > 1:
		n, err := strconv.ParseUint(arg[1:], 10, 32)
		if err != nil {
			return 0, fmt.Errorf("invalid glyph ID %q", arg)
		}
		return otface.GlyphID(n), nil
	case len(arg) > 2 && strings.EqualFold(arg[:2], "U+"):
		n, err := strconv.ParseUint(arg[2:], 16, 32)
		if err != nil {
			return 0, fmt.Errorf("invalid code-point %q", arg)
		}
		return lookupRune(face, rune(n))
	case utf8.RuneCountInString(arg) == 1:
		r, _ := utf8.DecodeRuneInString(arg)
		return lookupRune(face, r)
	}
	return 0, fmt.Errorf("cannot interpret %q as a glyph", arg)
}

func lookupRune(face *otface.Face, r rune) (otface.GlyphID, error) {
	gid, ok := face.GlyphIndex(r).Unwrap()
	if !ok {
		return 0, fmt.Errorf("no glyph for %U", r)
	}
	return gid, nil
}

// parseDirection reads a direction argument; an empty argument yields dflt.
func parseDirection(arg string, dflt otface.Direction) (otface.Direction, error) {
	if arg == "" {
		return dflt, nil
	}
	return otface.ParseDirection(arg)
}

// textDirection guesses the direction of a text from the bidi class of
// its first run.
func textDirection(text string) otface.Direction {
	p := bidi.Paragraph{}
	_, _ = p.SetString(text, bidi.DefaultDirection(bidi.Neutral))
	ordering, err := p.Order()
	if err != nil || ordering.NumRuns() == 0 {
		return otface.LTR
	}
	run := ordering.Run(0)
	return otface.DirectionFromBidi(run.Direction())
}

// constantsOp prints math constants. An argument filters constants by
// name, e.g. "constants:radical".
func constantsOp(intp *Intp, op *Op) (error, bool) {
	filter := strings.ToLower(op.arg)
	data := [][]string{{"Constant", "Value"}}
	for c := otface.ScriptPercentScaleDown; int(c) < otface.MathConstantCount; c++ {
		if filter != "" && !strings.Contains(strings.ToLower(c.String()), filter) {
			continue
		}
		data = append(data, []string{c.String(), fmt.Sprintf("%d", intp.math.MathConstant(c))})
	}
	if len(data) == 1 {
		return fmt.Errorf("no constant matches %q", op.arg), false
	}
	return pterm.DefaultTable.WithHasHeader().WithData(data).Render(), false
}

func glyphOp(intp *Intp, op *Op) (error, bool) {
	g, err := parseGlyph(intp.math, op.arg)
	if err != nil {
		return err, false
	}
	data := [][]string{
		{"Glyph", fmt.Sprintf("%d", g)},
		{"Italics correction", fmt.Sprintf("%d", intp.math.ItalicsCorrection(g))},
		{"Top accent attachment", fmt.Sprintf("%d", intp.math.TopAccentAttachment(g))},
		{"Extended shape", fmt.Sprintf("%v", intp.math.IsExtendedShape(g))},
		{"Vertical variants", fmt.Sprintf("%d", intp.math.GlyphVariants(g, otface.TTB).Len())},
		{"Horizontal variants", fmt.Sprintf("%d", intp.math.GlyphVariants(g, otface.LTR).Len())},
	}
	return pterm.DefaultTable.WithData(data).Render(), false
}

// variantsOp prints the size variants of a glyph, e.g. "variants:√:ttb".
func variantsOp(intp *Intp, op *Op) (error, bool) {
	g, err := parseGlyph(intp.math, op.arg)
	if err != nil {
		return err, false
	}
	dir, err := parseDirection(op.format, otface.TTB)
	if err != nil {
		return err, false
	}
	seq := intp.math.GlyphVariants(g, dir)
	if seq.Len() == 0 {
		pterm.Info.Printf("glyph %d has no %s variants\n", g, dir)
		return nil, false
	}
	data := [][]string{{"#", "Glyph", "Advance"}}
	i := 0
	for v := range seq.All() {
		data = append(data, []string{fmt.Sprintf("%d", i), fmt.Sprintf("%d", v.Glyph), fmt.Sprintf("%d", v.Advance)})
		i++
	}
	return pterm.DefaultTable.WithHasHeader().WithData(data).Render(), false
}

// assemblyOp prints the parts of a glyph assembly, e.g. "assembly:[".
func assemblyOp(intp *Intp, op *Op) (error, bool) {
	g, err := parseGlyph(intp.math, op.arg)
	if err != nil {
		return err, false
	}
	dir, err := parseDirection(op.format, otface.TTB)
	if err != nil {
		return err, false
	}
	assembly := intp.math.GlyphAssembly(g, dir)
	if len(assembly.Parts) == 0 {
		pterm.Info.Printf("glyph %d has no %s assembly\n", g, dir)
		return nil, false
	}
	pterm.Printf("italics correction: %d, min connector overlap: %d\n",
		assembly.ItalicsCorrection, intp.math.MinConnectorOverlap(dir))
	data := [][]string{{"Glyph", "Start", "End", "Advance", "Extender"}}
	for _, p := range assembly.Parts {
		data = append(data, []string{
			fmt.Sprintf("%d", p.Glyph),
			fmt.Sprintf("%d", p.StartConnectorLength),
			fmt.Sprintf("%d", p.EndConnectorLength),
			fmt.Sprintf("%d", p.FullAdvance),
			fmt.Sprintf("%v", p.Extender),
		})
	}
	return pterm.DefaultTable.WithHasHeader().WithData(data).Render(), false
}

// kernOp prints the math kerning of a glyph at all four corners, for a
// correction height, e.g. "kern:A:300".
func kernOp(intp *Intp, op *Op) (error, bool) {
	g, err := parseGlyph(intp.math, op.arg)
	if err != nil {
		return err, false
	}
	height := 0
	if op.format != "" {
		if height, err = strconv.Atoi(op.format); err != nil {
			return fmt.Errorf("correction height not numeric: %q", op.format), false
		}
	}
	data := [][]string{{"Corner", "Kern"}}
	for _, c := range []otface.KernCorner{otface.TopRight, otface.TopLeft, otface.BottomRight, otface.BottomLeft} {
		data = append(data, []string{c.String(), fmt.Sprintf("%d", intp.math.GlyphKerning(g, int32(height), c))})
	}
	return pterm.DefaultTable.WithHasHeader().WithData(data).Render(), false
}

// measureOp shapes a text and prints its extent, e.g. "measure:Test:rtl".
// Without a direction, the direction is guessed from the text.
func measureOp(intp *Intp, op *Op) (error, bool) {
	text, ok := op.hasArg()
	if !ok {
		return errors.New("nothing to measure"), false
	}
	dir, err := parseDirection(op.format, textDirection(text))
	if err != nil {
		return err, false
	}
	run := intp.math.Measure(text, dir)
	data := [][]string{{"Glyph", "x-advance", "y-advance", "x-offset", "y-offset"}}
	for _, p := range run.Glyphs {
		data = append(data, []string{
			fmt.Sprintf("%d", p.Glyph),
			fmt.Sprintf("%d", p.XAdvance), fmt.Sprintf("%d", p.YAdvance),
			fmt.Sprintf("%d", p.XOffset), fmt.Sprintf("%d", p.YOffset),
		})
	}
	if err := pterm.DefaultTable.WithHasHeader().WithData(data).Render(); err != nil {
		return err, false
	}
	pterm.Printf("%q %s: width %d, height %d\n", text, dir, run.Width, run.Height)
	return nil, false
}
