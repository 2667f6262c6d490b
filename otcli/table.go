package main

import (
	"fmt"
	"strings"

	"github.com/npillmayer/mathfont/engine"
	"github.com/npillmayer/mathfont/ot"
	"github.com/npillmayer/mathfont/otquery"
	"github.com/pterm/pterm"
)

func infoOp(intp *Intp, op *Op) (error, bool) {
	otf := intp.math.OpenType()
	names := otquery.NameInfo(otf)
	metrics := otquery.FontMetrics(otf)
	data := [][]string{
		{"Property", "Value"},
		{"Family", names["family"]},
		{"Subfamily", names["subfamily"]},
		{"Version", names["version"]},
		{"Face index", fmt.Sprintf("%d", intp.math.Index())},
		{"Units per em", fmt.Sprintf("%d", intp.math.Upem())},
		{"Glyphs", fmt.Sprintf("%d", intp.math.GlyphCount())},
		{"Ascent", fmt.Sprintf("%d", intp.math.Ascent())},
		{"Descent", fmt.Sprintf("%d", intp.math.Descent())},
		{"Line gap", fmt.Sprintf("%d", metrics.LineGap)},
	}
	if w, h := intp.face.PixelSize(); h > 0 {
		data = append(data, []string{"Pixel size", fmt.Sprintf("%d x %d", w, h)})
	}
	if err := pterm.DefaultTable.WithHasHeader().WithData(data).Render(); err != nil {
		return err, false
	}
	printMathInfo(otquery.MathInfo(otf))
	return nil, false
}

func printMathInfo(info otquery.MathTableInfo) {
	for _, err := range info.Errors {
		pterm.Error.Println(err.Error())
	}
	if !info.HasData {
		pterm.Info.Println("font has no MATH data")
		return
	}
	data := [][]string{
		{"MATH", "Value"},
		{"Version", fmt.Sprintf("%d.%d", info.MajorVersion, info.MinorVersion)},
		{"Constants", fmt.Sprintf("%v", info.HasConstants)},
		{"Italics corrections", fmt.Sprintf("%d", info.ItalicsCorrections)},
		{"Top accent attachments", fmt.Sprintf("%d", info.TopAccents)},
		{"Extended shapes", fmt.Sprintf("%d", info.ExtendedShapes)},
		{"Kerned glyphs", fmt.Sprintf("%d", info.KernedGlyphs)},
		{"Vertical constructions", fmt.Sprintf("%d", info.VerticalGlyphs)},
		{"Horizontal constructions", fmt.Sprintf("%d", info.HorizontalGlyphs)},
		{"Min connector overlap", fmt.Sprintf("%d", info.MinConnectorOverlap)},
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

// tablesOp lists the tables of the font, or sets the pixel size of the
// raster face with "tables:raster:<px>".
func tablesOp(intp *Intp, op *Op) (error, bool) {
	if arg, ok := op.hasArg(); ok && strings.EqualFold(arg, "raster") {
		return setRasterSize(intp.face, op.format), false
	}
	otf := intp.math.OpenType()
	data := [][]string{{"Tag", "Offset", "Size"}}
	for _, tag := range otf.TableTags() {
		off, size := otf.Table(tag).Extent()
		data = append(data, []string{tag.String(), fmt.Sprintf("%d", off), fmt.Sprintf("%d", size)})
	}
	if err := pterm.DefaultTable.WithHasHeader().WithData(data).Render(); err != nil {
		return err, false
	}
	if head, ok := otquery.HeadInfo(otf); ok {
		pterm.Printf("head: revision %.3f, created %s\n", head.Revision(), head.CreatedTime().Format("2006-01-02"))
	}
	if maxp, ok := otquery.MaxPInfo(otf); ok {
		pterm.Printf("maxp: version %s, %d glyphs\n", maxp.Version(), maxp.NumGlyphs)
	}
	if math := otf.Table(ot.T("MATH")); math == nil {
		pterm.Info.Println("no MATH table")
	}
	return nil, false
}

func setRasterSize(face *engine.FontFace, px string) error {
	var size int
	if _, err := fmt.Sscanf(px, "%d", &size); err != nil {
		return fmt.Errorf("pixel size not numeric: %q", px)
	}
	if err := face.SetPixelSize(0, size); err != nil {
		return err
	}
	m, _ := face.RasterMetrics()
	pterm.Printf("raster face at %d px: ascent %d, descent %d, height %d\n",
		size, m.Ascent.Ceil(), m.Descent.Ceil(), m.Height.Ceil())
	return nil
}
