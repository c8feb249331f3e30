package step

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/bimshape/ifcgml/model"
)

// ReadFile opens and reads a STEP physical file into an element graph.
func ReadFile(path string) (*model.Model, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()
	return Read(f, filepath.Base(path))
}

// Read reads a STEP physical file from r. sourceName labels the model for
// external references in the output document.
func Read(r io.Reader, sourceName string) (*model.Model, error) {
	file, err := Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", sourceName, err)
	}
	m := build(file, sourceName)
	return m, nil
}
