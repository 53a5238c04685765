// Package matrixio loads cost matrices for the hungarian command.
//
// Accepted inputs, YAML or JSON:
//
//	[[2500, 4000, 3500], [4000, 6000, 3500], [2000, 4000, 2500]]
//
//	costs:
//	  - [2500, 4000, 3500]
//	  - [4000, 6000, 3500]
//	algorithm: munkres-padded
//	reducer: rows
//
//	problems:
//	  - [[4, 1], [2, 3]]
//	  - [[7]]
//
// Cell values are not checked here; assignment.Validate owns that.
package matrixio

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/goccy/go-yaml"
)

var (
	// ErrEmpty is returned when the input holds no matrix.
	ErrEmpty = errors.New("matrixio: empty input")

	// ErrAmbiguous is returned when a document sets both costs and problems.
	ErrAmbiguous = errors.New("matrixio: document sets both costs and problems")
)

// Input is a decoded input file.
type Input struct {
	// Problems holds one matrix per problem, in file order.
	Problems [][][]int

	// Algorithm and Reducer are optional overrides named in the document.
	Algorithm string
	Reducer   string
}

type document struct {
	Costs     [][]int   `yaml:"costs"`
	Problems  [][][]int `yaml:"problems"`
	Algorithm string    `yaml:"algorithm"`
	Reducer   string    `yaml:"reducer"`
}

// Load reads path, or stdin when path is "" or "-".
func Load(path string, stdin io.Reader) (*Input, error) {
	if path == "" || path == "-" {
		in, err := Read(stdin)
		if err != nil {
			return nil, fmt.Errorf("reading stdin: %w", err)
		}

		return in, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	in, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	return in, nil
}

// Read decodes one input from r.
func Read(r io.Reader) (*Input, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	return Parse(data)
}

// Parse decodes data as a bare matrix or a document.
func Parse(data []byte) (*Input, error) {
	switch leading(data) {
	case 0:
		return nil, ErrEmpty
	case '[', '-':
		var costs [][]int
		if err := yaml.Unmarshal(data, &costs); err != nil {
			return nil, fmt.Errorf("decoding matrix: %w", err)
		}
		if len(costs) == 0 {
			return nil, ErrEmpty
		}

		return &Input{Problems: [][][]int{costs}}, nil
	}

	var doc document
	if err := yaml.UnmarshalWithOptions(data, &doc, yaml.DisallowUnknownField()); err != nil {
		return nil, fmt.Errorf("decoding document: %w", err)
	}

	in := &Input{Algorithm: doc.Algorithm, Reducer: doc.Reducer}
	switch {
	case len(doc.Costs) > 0 && len(doc.Problems) > 0:
		return nil, ErrAmbiguous
	case len(doc.Costs) > 0:
		in.Problems = [][][]int{doc.Costs}
	case len(doc.Problems) > 0:
		in.Problems = doc.Problems
	default:
		return nil, ErrEmpty
	}

	return in, nil
}

// leading returns the first significant byte of data, skipping whitespace,
// comment lines and a document marker. It returns 0 for blank input.
func leading(data []byte) byte {
	for len(data) > 0 {
		data = bytes.TrimLeft(data, " \t\r\n")
		switch {
		case len(data) == 0:
			return 0
		case data[0] == '#', bytes.HasPrefix(data, []byte("---")):
			i := bytes.IndexByte(data, '\n')
			if i < 0 {
				return 0
			}
			data = data[i+1:]
		default:
			return data[0]
		}
	}

	return 0
}
