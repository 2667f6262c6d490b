package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/mathfont/engine"
	"github.com/npillmayer/mathfont/otface"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/pterm/pterm"
)

// tracer traces with key 'font.cli'
func tracer() tracing.Trace {
	return tracing.Select("font.cli")
}

var traceLevels = map[string]tracing.TraceLevel{
	"Debug": tracing.LevelDebug,
	"Info":  tracing.LevelInfo,
	"Error": tracing.LevelError,
}

func main() {
	initDisplay()
	tlevel := flag.String("trace", "Info", "Trace level [Debug|Info|Error]")
	fontname := flag.String("font", "", "Font to load (file name or path)")
	index := flag.Int("index", 0, "Face index within a font collection")
	dpi := flag.Int("dpi", 72, "Resolution of the raster face")
	flag.Parse()
	level, ok := traceLevels[*tlevel]
	if !ok {
		pterm.Error.Printf("invalid trace level: %s\n", *tlevel)
		os.Exit(5)
	}
	conf := testconfig.Conf{
		"tracing.adapter": "go",
		"trace.font.cli":  *tlevel,
		"trace.font.math": "Error",
		"raster.dpi":      strconv.Itoa(*dpi),
		"raster.hinting":  "full",
	}
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		pterm.Error.Println("cannot configure tracing")
		os.Exit(1)
	}
	tracing.SetTraceSelector(trace2go.Selector())
	tracer().SetTraceLevel(level)
	pterm.Info.Println("OpenType MATH inspector")

	e, err := engine.InitFromConfig(conf)
	if err != nil {
		tracer().Errorf(err.Error())
		os.Exit(3)
	}
	intp, err := newIntp(e, *fontname, *index)
	e.Release() // the face holds its own reference
	if err != nil {
		tracer().Errorf(err.Error())
		os.Exit(4)
	}
	defer intp.face.Close()
	repl, err := readline.New("math > ")
	if err != nil {
		tracer().Errorf(err.Error())
		os.Exit(3)
	}
	defer repl.Close()
	pterm.Info.Println("Quit with <ctrl>D")
	intp.run(repl)
}

func initDisplay() {
	pterm.EnableDebugMessages()
	pterm.Info.Prefix = pterm.Prefix{
		Text:  " !  ",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

// Intp interprets commands against one font face.
type Intp struct {
	face *engine.FontFace
	math *otface.Face
}

// newIntp opens a font by file name or path. Names which are not paths are
// looked up in the font directories of the host.
func newIntp(e *engine.Engine, fontname string, index int) (*Intp, error) {
	if fontname == "" {
		return nil, errors.New("no font given, use flag -font")
	}
	pf, err := otface.LookupPlatformFont(fontname)
	if err != nil {
		return nil, fmt.Errorf("cannot locate font %s: %w", fontname, err)
	}
	face, err := engine.Open(e, pf.Path, index)
	if err != nil {
		return nil, err
	}
	intp := &Intp{face: face, math: face.ShapingFace()}
	tracer().Infof("loaded font %s", face.Name())
	if !intp.math.HasOTMathTable() {
		pterm.Warning.Println("font has no MATH table")
	}
	return intp, nil
}

func (intp *Intp) String() string {
	if intp == nil || intp.face == nil {
		return "()"
	}
	return fmt.Sprintf("( font=%s )", intp.face.Name())
}

// run reads and executes lines until EOF or quit.
func (intp *Intp) run(repl *readline.Instance) {
	for {
		pterm.Println(intp.String())
		line, err := repl.Readline()
		if err != nil { // io.EOF or interrupt
			break
		}
		ops, err := parseCommand(line)
		if err != nil {
			pterm.Error.Println(err)
			continue
		}
		if intp.execute(ops) {
			break
		}
	}
	pterm.Info.Println("Good bye!")
}

// --- Commands ---------------------------------------------------------

// Op is one operation of a command line, e.g. "variants:√:ttb" with arg
// "√" and format "ttb".
type Op struct {
	code   int
	arg    string
	format string
}

type opFunc func(*Intp, *Op) (err error, quit bool)

const (
	QUIT int = iota
	HELP
	INFO
	TABLES
	CONSTANTS
	GLYPH
	VARIANTS
	ASSEMBLY
	KERN
	MEASURE
)

// operations is indexed by op code.
var operations = []struct {
	name string
	fn   opFunc
}{
	QUIT:      {"quit", quitOp},
	HELP:      {"help", helpOp},
	INFO:      {"info", infoOp},
	TABLES:    {"tables", tablesOp},
	CONSTANTS: {"constants", constantsOp},
	GLYPH:     {"glyph", glyphOp},
	VARIANTS:  {"variants", variantsOp},
	ASSEMBLY:  {"assembly", assemblyOp},
	KERN:      {"kern", kernOp},
	MEASURE:   {"measure", measureOp},
}

const maxOps = 32

// parseCommand splits a line into operations. Operations are separated by
// blanks, arguments by colons, e.g. "glyph:√ variants:√:ttb kern:A:300".
// Unknown operations turn into help; quit ends the line.
func parseCommand(line string) ([]Op, error) {
	steps := strings.Fields(line)
	if len(steps) > maxOps {
		return nil, fmt.Errorf("too many operations in one line: %d", len(steps))
	}
	ops := make([]Op, 0, len(steps))
	for _, step := range steps {
		parts := strings.SplitN(step, ":", 3)
		op := Op{code: opCode(parts[0])}
		if len(parts) > 1 {
			op.arg = parts[1]
		}
		if len(parts) > 2 {
			op.format = parts[2]
		}
		tracer().Debugf("%s %q %q", operations[op.code].name, op.arg, op.format)
		ops = append(ops, op)
		if op.code == QUIT {
			break
		}
	}
	return ops, nil
}

func opCode(name string) int {
	for code, op := range operations {
		if strings.EqualFold(op.name, name) {
			return code
		}
	}
	return HELP
}

// execute runs operations in order and stops at the first error.
func (intp *Intp) execute(ops []Op) (quit bool) {
	for i := range ops {
		err, quit := operations[ops[i].code].fn(intp, &ops[i])
		if err != nil {
			pterm.Error.Println(err)
			return false
		}
		if quit {
			return true
		}
	}
	return false
}

func quitOp(*Intp, *Op) (error, bool) {
	return nil, true
}

func (op *Op) hasArg() (string, bool) {
	return op.arg, op.arg != ""
}
