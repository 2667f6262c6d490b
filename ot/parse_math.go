package ot

import "fmt"

// --- MATH table ------------------------------------------------------------

// The MATH table header is
//
//	uint16   majorVersion             1
//	uint16   minorVersion             0
//	Offset16 mathConstantsOffset      from the beginning of MATH
//	Offset16 mathGlyphInfoOffset      from the beginning of MATH
//	Offset16 mathVariantsOffset       from the beginning of MATH
//
// Every sub-table is decoded separately. A damaged sub-table is recorded
// as a major error and left void; the font and the rest of MATH stay usable.
func parseMath(tag Tag, b binarySegm, offset, size uint32, ec *errorCollector) (Table, error) {
	if size < 10 {
		ec.addError(tag, "Header", fmt.Sprintf("MATH table too small: %d bytes", size), SeverityMajor, offset)
		return newTable(tag, b, offset, size), nil
	}
	t := newMathTable(tag, b, offset, size)
	t.MajorVersion = b.U16(0)
	t.MinorVersion = b.U16(2)
	tracer().Debugf("MATH table version %d.%d", t.MajorVersion, t.MinorVersion)
	if t.MajorVersion != 1 {
		ec.addWarning(tag, fmt.Sprintf("unexpected MATH version %d.%d", t.MajorVersion, t.MinorVersion), offset)
	}
	mathError := func(section string, err error) {
		ec.addError(tag, section, err.Error(), SeverityMajor, offset)
	}
	// MathConstants
	if link, _ := parseLink16(b, 4, b, "MathConstants"); link.IsNull() {
		mathError("MathConstants", errFontFormat("missing MathConstants"))
	} else if mc, err := parseMathConstants(link); err != nil {
		mathError("MathConstants", err)
	} else {
		t.Constants = mc
	}
	// MathGlyphInfo
	if link, _ := parseLink16(b, 6, b, "MathGlyphInfo"); !link.IsNull() {
		if gi, err := link.Jump(); err != nil {
			mathError("MathGlyphInfo", err)
		} else {
			t.GlyphInfo = parseMathGlyphInfo(gi, func(section string, err error) {
				mathError(section, err)
			})
		}
	}
	// MathVariants
	if link, _ := parseLink16(b, 8, b, "MathVariants"); !link.IsNull() {
		if mv, err := link.Jump(); err != nil {
			mathError("MathVariants", err)
		} else if t.Variants, err = parseMathVariants(mv); err != nil {
			mathError("MathVariants", err)
		}
	}
	return t, nil
}

func parseMathConstants(link link16) (MathConstants, error) {
	b, err := link.Jump()
	if err != nil {
		return MathConstants{}, err
	}
	data, err := b.view(0, mathConstantsSize)
	if err != nil {
		return MathConstants{}, fmt.Errorf("MathConstants need %d bytes, have %d", mathConstantsSize, len(b))
	}
	return MathConstants{data: data}, nil
}

// MathGlyphInfo consists of four optional sub-tables:
//
//	Offset16 mathItalicsCorrectionInfoOffset
//	Offset16 mathTopAccentAttachmentOffset
//	Offset16 extendedShapeCoverageOffset
//	Offset16 mathKernInfoOffset
//
// with offsets from the beginning of MathGlyphInfo.
func parseMathGlyphInfo(b binarySegm, report func(string, error)) MathGlyphInfo {
	info := MathGlyphInfo{}
	var err error
	if sub, ok := subTable(b, 0, "MathItalicsCorrectionInfo", report); ok {
		if info.ItalicsCorrection, err = parseMathValueTable(sub, "MathItalicsCorrectionInfo"); err != nil {
			report("MathItalicsCorrectionInfo", err)
		}
	}
	if sub, ok := subTable(b, 2, "MathTopAccentAttachment", report); ok {
		if info.TopAccentAttachment, err = parseMathValueTable(sub, "MathTopAccentAttachment"); err != nil {
			report("MathTopAccentAttachment", err)
		}
	}
	if sub, ok := subTable(b, 4, "ExtendedShapeCoverage", report); ok {
		if info.ExtendedShapes, err = parseCoverage(sub); err != nil {
			report("ExtendedShapeCoverage", err)
		}
	}
	if sub, ok := subTable(b, 6, "MathKernInfo", report); ok {
		if info.KernInfo, err = parseMathKernInfo(sub); err != nil {
			report("MathKernInfo", err)
		}
	}
	return info
}

// subTable follows an optional link. NULL links are not an error.
func subTable(b binarySegm, at int, name string, report func(string, error)) (binarySegm, bool) {
	link, err := parseLink16(b, at, b, name)
	if err != nil {
		report(name, err)
		return nil, false
	}
	if link.IsNull() {
		return nil, false
	}
	sub, err := link.Jump()
	if err != nil {
		report(name, err)
		return nil, false
	}
	return sub, true
}

// parseMathValueTable reads a coverage offset, followed by a count and
// count MathValueRecords (int16 value, Offset16 device table).
func parseMathValueTable(b binarySegm, name string) (MathValueTable, error) {
	cov, err := parseRequiredCoverage(b, 0, name)
	if err != nil {
		return MathValueTable{}, err
	}
	values, err := parseArray16(b, 2, 4, name)
	if err != nil {
		return MathValueTable{}, err
	}
	return MathValueTable{Coverage: cov, values: values}, nil
}

func parseRequiredCoverage(b binarySegm, at int, name string) (Coverage, error) {
	link, err := parseLink16(b, at, b, name+"/Coverage")
	if err != nil {
		return Coverage{}, err
	}
	if link.IsNull() {
		return Coverage{}, errFontFormat(name + " without coverage")
	}
	cb, err := link.Jump()
	if err != nil {
		return Coverage{}, err
	}
	return parseCoverage(cb)
}

// MathKernInfo is
//
//	Offset16 mathKernCoverageOffset
//	uint16   mathKernCount
//	MathKernInfoRecord mathKernInfoRecords[mathKernCount]
//
// with each record holding four offsets to MathKern tables, from the
// beginning of MathKernInfo. Every kern table is checked here, lookups
// later on may then rely on well-formed data.
func parseMathKernInfo(b binarySegm) (MathKernInfo, error) {
	cov, err := parseRequiredCoverage(b, 0, "MathKernInfo")
	if err != nil {
		return MathKernInfo{}, err
	}
	records, err := parseArray16(b, 2, 8, "MathKernInfoRecords")
	if err != nil {
		return MathKernInfo{}, err
	}
	ki := MathKernInfo{Coverage: cov, records: records, base: b}
	for i := 0; i < records.Len(); i++ {
		for corner := TopRight; corner <= BottomLeft; corner++ {
			if _, err := ki.kernAt(i, corner); err != nil {
				return MathKernInfo{}, fmt.Errorf("kern record %d/%s: %w", i, corner, err)
			}
		}
	}
	return ki, nil
}

// MathKern is
//
//	uint16          heightCount
//	MathValueRecord correctionHeight[heightCount]
//	MathValueRecord kernValues[heightCount+1]
func parseMathKern(b binarySegm) (MathKern, error) {
	n, err := b.u16(0)
	if err != nil {
		return MathKern{}, err
	}
	if n > MaxKernHeightsCnt {
		return MathKern{}, errFontFormat(fmt.Sprintf("MathKern height count %d exceeds limit", n))
	}
	heights, err := parseArray(b, 2, int(n), 4, "correctionHeight")
	if err != nil {
		return MathKern{}, err
	}
	kerns, err := parseArray(b, 2+4*int(n), int(n)+1, 4, "kernValues")
	if err != nil {
		return MathKern{}, err
	}
	assertEqualInt("MathKern value count", kerns.Len(), heights.Len()+1)
	return MathKern{heights: heights, kerns: kerns}, nil
}

// MathVariants is
//
//	UFWORD   minConnectorOverlap
//	Offset16 vertGlyphCoverageOffset
//	Offset16 horizGlyphCoverageOffset
//	uint16   vertGlyphCount
//	uint16   horizGlyphCount
//	Offset16 vertGlyphConstructionOffsets[vertGlyphCount]
//	Offset16 horizGlyphConstructionOffsets[horizGlyphCount]
//
// with offsets from the beginning of MathVariants.
func parseMathVariants(b binarySegm) (MathVariants, error) {
	if b.Size() < 10 {
		return MathVariants{}, errFontFormat("MathVariants header too small")
	}
	mv := MathVariants{MinConnectorOverlap: b.U16(0), base: b}
	vcount, hcount := int(b.U16(6)), int(b.U16(8))
	var err error
	if mv.vertConstructions, err = parseArray(b, 10, vcount, 2, "vertGlyphConstruction"); err != nil {
		return MathVariants{}, err
	}
	if mv.horizConstructions, err = parseArray(b, 10+2*vcount, hcount, 2, "horizGlyphConstruction"); err != nil {
		return MathVariants{}, err
	}
	if vcount > 0 {
		if mv.vertCoverage, err = parseRequiredCoverage(b, 2, "MathVariants/vertical"); err != nil {
			return MathVariants{}, err
		}
	}
	if hcount > 0 {
		if mv.horizCoverage, err = parseRequiredCoverage(b, 4, "MathVariants/horizontal"); err != nil {
			return MathVariants{}, err
		}
	}
	for _, constructions := range []array{mv.vertConstructions, mv.horizConstructions} {
		for i := 0; i < constructions.Len(); i++ {
			if _, err := mv.constructionAt(constructions, i); err != nil {
				return MathVariants{}, fmt.Errorf("%s %d: %w", constructions.name, i, err)
			}
		}
	}
	tracer().Debugf("MathVariants: %d vertical, %d horizontal constructions", vcount, hcount)
	return mv, nil
}

// MathGlyphConstruction is
//
//	Offset16 glyphAssemblyOffset      from the beginning of MathGlyphConstruction, may be NULL
//	uint16   variantCount
//	MathGlyphVariantRecord mathGlyphVariantRecord[variantCount]
func parseMathGlyphConstruction(b binarySegm) (MathGlyphConstruction, error) {
	c := MathGlyphConstruction{}
	var err error
	if c.variants, err = parseArray16(b, 2, 4, "MathGlyphVariantRecords"); err != nil {
		return c, err
	}
	link, err := parseLink16(b, 0, b, "GlyphAssembly")
	if err != nil || link.IsNull() {
		return c, err
	}
	ab, err := link.Jump()
	if err != nil {
		return c, err
	}
	if c.assembly, err = parseGlyphAssembly(ab); err != nil {
		return c, err
	}
	c.hasParts = true
	return c, nil
}

// GlyphAssembly is
//
//	MathValueRecord italicsCorrection
//	uint16          partCount
//	GlyphPart       partRecords[partCount]
func parseGlyphAssembly(b binarySegm) (GlyphAssemblyTable, error) {
	italics, err := b.i16(0)
	if err != nil {
		return GlyphAssemblyTable{}, err
	}
	parts, err := parseArray16(b, 4, 10, "GlyphPartRecords")
	if err != nil {
		return GlyphAssemblyTable{}, err
	}
	return GlyphAssemblyTable{ItalicsCorrection: italics, parts: parts}, nil
}
