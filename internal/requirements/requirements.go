// Package requirements reads and classifies pip-style requirements files.
// Each line is either blank, a comment, or a single dependency specifier
// that is passed to the package manager verbatim.
package requirements

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/reqmig/reqmig/internal/errors"
)

// DefaultPath is the conventional location of the requirements file.
const DefaultPath = "requirements.txt"

// Kind classifies a single line of a requirements file.
type Kind int

const (
	// KindBlank is an empty or whitespace-only line.
	KindBlank Kind = iota
	// KindComment is a line whose trimmed form starts with '#'.
	KindComment
	// KindSpec is a dependency specifier line.
	KindSpec
)

// String returns the string representation of the kind.
func (k Kind) String() string {
	switch k {
	case KindBlank:
		return "blank"
	case KindComment:
		return "comment"
	case KindSpec:
		return "spec"
	default:
		return "unknown"
	}
}

// Line is a single classified line from a requirements file.
type Line struct {
	// Number is the 1-based line number in the source file.
	Number int
	// Raw is the line exactly as it appeared in the file.
	Raw string
	// Kind is the classification of the line.
	Kind Kind
	// Spec is the trimmed dependency specifier for KindSpec lines,
	// empty otherwise. No further parsing or validation is done; the
	// specifier is handed to the package manager as-is.
	Spec string
}

// File is a parsed requirements file.
type File struct {
	// Path is the source path, empty when parsed from a reader.
	Path string
	// Lines holds every line of the file in original order.
	Lines []Line
}

// Counts holds per-kind line tallies for a parsed file.
type Counts struct {
	Blank   int
	Comment int
	Spec    int
}

// Parse reads a requirements file from r and classifies every line.
func Parse(r io.Reader) (*File, error) {
	f := &File{Lines: []Line{}}

	scanner := bufio.NewScanner(r)
	num := 0
	for scanner.Scan() {
		num++
		raw := scanner.Text()
		f.Lines = append(f.Lines, classify(num, raw))
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, errors.ErrRequirements, "failed to scan requirements file")
	}

	return f, nil
}

// ReadFile opens and parses the requirements file at path.
// A missing file yields a typed not-found error before any line is processed.
func ReadFile(path string) (*File, error) {
	r, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.RequirementsNotFound(path)
		}
		return nil, errors.RequirementsReadError(path, err)
	}
	defer r.Close()

	f, err := Parse(r)
	if err != nil {
		return nil, err
	}
	f.Path = path
	return f, nil
}

// classify trims and classifies a single raw line.
func classify(num int, raw string) Line {
	line := Line{Number: num, Raw: raw}

	trimmed := strings.TrimSpace(raw)
	switch {
	case trimmed == "":
		line.Kind = KindBlank
	case strings.HasPrefix(trimmed, "#"):
		line.Kind = KindComment
	default:
		line.Kind = KindSpec
		line.Spec = trimmed
	}

	return line
}

// Specs returns the dependency specifiers in original file order.
func (f *File) Specs() []string {
	specs := make([]string, 0, len(f.Lines))
	for _, l := range f.Lines {
		if l.Kind == KindSpec {
			specs = append(specs, l.Spec)
		}
	}
	return specs
}

// Counts returns per-kind line tallies.
func (f *File) Counts() Counts {
	var c Counts
	for _, l := range f.Lines {
		switch l.Kind {
		case KindBlank:
			c.Blank++
		case KindComment:
			c.Comment++
		case KindSpec:
			c.Spec++
		}
	}
	return c
}
