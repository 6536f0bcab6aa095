package input

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// EnvRoot names the environment variable overriding the inputs directory.
const EnvRoot = "QUESTGRID_INPUTS"

// DefaultRoot is used when EnvRoot is unset.
const DefaultRoot = "inputs"

var (
	// ErrInputNotFound indicates the input file for a Key does not exist.
	ErrInputNotFound = errors.New("input: file not found")
	// ErrBadKey indicates a Key with a non-positive field.
	ErrBadKey = errors.New("input: event, quest and part must be positive")
)

// Key identifies one puzzle input.
type Key struct {
	Event int // event number, e.g. 2024
	Quest int // quest (day) number, 1-based
	Part  int // part number, 1-based
}

// Validate returns ErrBadKey if any field is not positive.
func (k Key) Validate() error {
	if k.Event <= 0 || k.Quest <= 0 || k.Part <= 0 {
		return fmt.Errorf("%w: %+v", ErrBadKey, k)
	}

	return nil
}

// String formats k as "e<event> q<quest> p<part>".
func (k Key) String() string {
	return fmt.Sprintf("e%d q%02d p%d", k.Event, k.Quest, k.Part)
}

// Root returns the inputs directory: $QUESTGRID_INPUTS if set, else DefaultRoot.
func Root() string {
	if dir := os.Getenv(EnvRoot); dir != "" {
		return dir
	}

	return DefaultRoot
}

// Path returns the file path of k's input under root.
func Path(root string, k Key) string {
	name := fmt.Sprintf("everybody_codes_e%d_q%02d_p%d.txt", k.Event, k.Quest, k.Part)

	return filepath.Join(root, name)
}

// Load reads k's input from root and trims surrounding whitespace.
func Load(root string, k Key) (string, error) {
	if err := k.Validate(); err != nil {
		return "", err
	}

	return ReadFile(Path(root, k))
}

// ReadFile reads an arbitrary input file, trimming surrounding whitespace.
// A missing file yields an error wrapping ErrInputNotFound.
func ReadFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", fmt.Errorf("%w: %s", ErrInputNotFound, path)
	}
	if err != nil {
		return "", fmt.Errorf("input: read %s: %w", path, err)
	}

	return strings.TrimSpace(string(data)), nil
}

// MustLoad is Load that panics on failure.
func MustLoad(root string, k Key) string {
	s, err := Load(root, k)
	if err != nil {
		panic(err)
	}

	return s
}
