/*
Package fontload loads scalable fonts from files, for the rasterizing side
of a font face. Fonts are parsed by x/image/font/sfnt; collections are
supported by face index.
*/
package fontload

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/flopp/go-findfont"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/image/font/sfnt"
)

// tracer writes to trace with key 'font.load'
func tracer() tracing.Trace {
	return tracing.Select("font.load")
}

// ErrNulInPath flags a file path which cannot be handed to the file system.
var ErrNulInPath = errors.New("font path contains NUL byte")

// ScalableFont is a parsed scalable font with original bytes and SFNT view.
type ScalableFont struct {
	Fontname string
	Filepath string
	Index    int        // face index within a collection
	Binary   []byte     // raw data of the complete file
	SFNT     *sfnt.Font // the rasterizer's view of the face
}

// CheckPath checks if a path is representable for the file system.
func CheckPath(path string) error {
	if strings.IndexByte(path, 0) >= 0 {
		return ErrNulInPath
	}
	return nil
}

// LoadScalableFont loads face number index of an OpenType font (TTF, OTF)
// or font collection (TTC, OTC) from a file.
func LoadScalableFont(path string, index int) (*ScalableFont, error) {
	if err := CheckPath(path); err != nil {
		return nil, err
	}
	bytez, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	f, err := ParseScalableFont(bytez, index)
	if err != nil {
		return nil, err
	}
	f.Filepath = path
	return f, nil
}

// ParseScalableFont parses face number index of a font binary from memory.
func ParseScalableFont(fbytes []byte, index int) (*ScalableFont, error) {
	coll, err := sfnt.ParseCollection(fbytes)
	if err != nil {
		return nil, err
	}
	if index < 0 || index >= coll.NumFonts() {
		return nil, fmt.Errorf("face index %d out of range, font has %d faces", index, coll.NumFonts())
	}
	f := &ScalableFont{Binary: fbytes, Index: index}
	if f.SFNT, err = coll.Font(index); err != nil {
		return nil, err
	}
	if f.Fontname, err = f.SFNT.Name(nil, sfnt.NameIDFull); err != nil {
		tracer().Debugf("font has no full name: %v", err)
		f.Fontname = ""
	} else {
		tracer().Debugf("loaded and parsed SFNT %s", f.Fontname)
	}
	return f, nil
}

// Locate finds a font file by name. Names which are readable files are
// returned unchanged; otherwise the user and system font directories are
// searched.
func Locate(name string) (string, error) {
	if err := CheckPath(name); err != nil {
		return "", err
	}
	path, err := findfont.Find(name)
	if err != nil {
		return "", err
	}
	tracer().Infof("located font %s at %s", name, path)
	return path, nil
}

// FontData returns the raw bytes of the font file.
func (sf *ScalableFont) FontData() []byte {
	return sf.Binary
}

// FaceIndex returns the index of the face within its file.
func (sf *ScalableFont) FaceIndex() int {
	return sf.Index
}
