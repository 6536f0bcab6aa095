package maze

import (
	"errors"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/katalvlaran/questgrid/grid"
)

// CostMode selects how a step between two cells is priced.
type CostMode string

const (
	// CostUnit prices every step at 1.
	CostUnit CostMode = "unit"
	// CostLevel prices a step at 1 + circular level difference.
	CostLevel CostMode = "level"
)

// ErrBadRules indicates an invalid Rules value.
var ErrBadRules = errors.New("maze: invalid rules")

// Rules describes how to read a map and price its moves.
type Rules struct {
	Start        string   `toml:"start"`        // runes marking start cells
	Goal         string   `toml:"goal"`         // rune marking the single goal cell
	Open         string   `toml:"open"`         // runes marking plain floor
	Connectivity int      `toml:"connectivity"` // 4 or 8
	Cost         CostMode `toml:"cost"`         // "unit" or "level"
	Levels       int      `toml:"levels"`       // dial size for CostLevel
}

// DefaultRules returns the rules of a plain S-to-E maze:
// Start="S", Goal="E", Open=".", Connectivity=4, Cost=unit, Levels=10.
func DefaultRules() Rules {
	return Rules{
		Start:        "S",
		Goal:         "E",
		Open:         ".",
		Connectivity: 4,
		Cost:         CostUnit,
		Levels:       10,
	}
}

// LoadRules decodes a TOML rules file on top of DefaultRules, so the file
// only needs the keys it changes, and validates the result.
func LoadRules(path string) (Rules, error) {
	r := DefaultRules()
	md, err := toml.DecodeFile(path, &r)
	if err != nil {
		return Rules{}, fmt.Errorf("maze: decode %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Rules{}, fmt.Errorf("%w: unknown keys %v in %s", ErrBadRules, undecoded, path)
	}
	if err = r.Validate(); err != nil {
		return Rules{}, err
	}

	return r, nil
}

// Validate checks the rules for consistency.
func (r Rules) Validate() error {
	switch {
	case r.Start == "":
		return fmt.Errorf("%w: start must not be empty", ErrBadRules)
	case len([]rune(r.Goal)) != 1:
		return fmt.Errorf("%w: goal must be exactly one rune, got %q", ErrBadRules, r.Goal)
	case strings.ContainsAny(r.Start, r.Goal):
		return fmt.Errorf("%w: goal %q is also a start rune", ErrBadRules, r.Goal)
	case r.Connectivity != 4 && r.Connectivity != 8:
		return fmt.Errorf("%w: connectivity must be 4 or 8, got %d", ErrBadRules, r.Connectivity)
	case r.Cost != CostUnit && r.Cost != CostLevel:
		return fmt.Errorf("%w: unknown cost mode %q", ErrBadRules, r.Cost)
	case r.Cost == CostLevel && r.Levels <= 0:
		return fmt.Errorf("%w: levels must be positive, got %d", ErrBadRules, r.Levels)
	}

	return nil
}

// conn maps the numeric connectivity onto grid.Connectivity.
func (r Rules) conn() grid.Connectivity {
	if r.Connectivity == 8 {
		return grid.Conn8
	}

	return grid.Conn4
}

func (r Rules) isStart(c rune) bool { return strings.ContainsRune(r.Start, c) }

func (r Rules) isGoal(c rune) bool { return strings.ContainsRune(r.Goal, c) }

// passable reports whether a cell holding c can be entered.
func (r Rules) passable(c rune) bool {
	if r.isStart(c) || r.isGoal(c) || strings.ContainsRune(r.Open, c) {
		return true
	}

	return r.Cost == CostLevel && isDigit(c)
}

// level returns the dial position of c. Start, goal and open cells sit at 0
// even when the rules name a digit for them, as do all other non-digits.
func (r Rules) level(c rune) int {
	if r.isStart(c) || r.isGoal(c) || strings.ContainsRune(r.Open, c) {
		return 0
	}
	if isDigit(c) {
		return int(c - '0')
	}

	return 0
}

// stepCost prices moving from a cell holding a to a cell holding b.
func (r Rules) stepCost(a, b rune) int64 {
	if r.Cost != CostLevel {
		return 1
	}
	l := r.Levels
	diff := ((r.level(a)-r.level(b))%l + l) % l

	return int64(min(diff, l-diff) + 1)
}

func isDigit(c rune) bool { return c >= '0' && c <= '9' }
