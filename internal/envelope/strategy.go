package envelope

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownStrategy is returned by ParseStrategy for names outside the
// strategy set.
var ErrUnknownStrategy = errors.New("unknown strategy")

// Strategy is a named decision rule. The set is closed: only the values
// declared below are valid.
type Strategy int

const (
	// Reactive switches envelopes whenever the peeked slip was ordinary.
	Reactive Strategy = iota
	// Stubborn keeps the original envelope regardless of what it saw.
	Stubborn
)

var strategyNames = map[Strategy]string{
	Reactive: "reactive",
	Stubborn: "stubborn",
}

// Strategies returns every strategy in report order.
func Strategies() []Strategy {
	return []Strategy{Reactive, Stubborn}
}

// ParseStrategy resolves a strategy by name (case-insensitive).
func ParseStrategy(name string) (Strategy, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for s, sn := range strategyNames {
		if sn == n {
			return s, nil
		}
	}
	return 0, fmt.Errorf("%w: %q (valid: reactive, stubborn)", ErrUnknownStrategy, name)
}

// String returns the playstyle name.
func (s Strategy) String() string {
	if n, ok := strategyNames[s]; ok {
		return n
	}
	return fmt.Sprintf("Strategy(%d)", int(s))
}

// MarshalText implements encoding.TextMarshaler.
func (s Strategy) MarshalText() ([]byte, error) {
	if _, ok := strategyNames[s]; !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownStrategy, int(s))
	}
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Strategy) UnmarshalText(b []byte) error {
	parsed, err := ParseStrategy(string(b))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// Decide returns the final choice given the pair, the current choice and
// whether the peeked slip was desirable. Decide is pure.
func (s Strategy) Decide(_ Pair, choice Choice, peeked bool) Choice {
	switch s {
	case Reactive:
		if !peeked {
			return Switch(choice)
		}
		return choice
	default:
		return choice
	}
}
