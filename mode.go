package dirdiff

import (
	"fmt"

	"github.com/spf13/pflag"
)

// Mode selects what counts as equal content.
type Mode int

const (
	// Exact requires identical bytes and identical length.
	Exact Mode = iota
	// RCSTagTolerant treats RCS keyword tags like "$Id: ... $" as equal
	// regardless of their content.
	RCSTagTolerant
	// BKTagTolerant ignores the rest of every line after a "BK Id: " marker.
	BKTagTolerant
)

var modeNames = [...]string{
	Exact:          "none",
	RCSTagTolerant: "rcs-tolerant",
	BKTagTolerant:  "bk-tolerant",
}

var _ pflag.Value = (*Mode)(nil)

func (m Mode) String() string {
	if m < 0 || int(m) >= len(modeNames) {
		return fmt.Sprintf("Mode(%d)", int(m))
	}
	return modeNames[m]
}

// ParseMode accepts the names printed by Mode.String and the short forms
// "exact", "rcs" and "bk".
func ParseMode(s string) (Mode, error) {
	switch s {
	case "none", "exact", "":
		return Exact, nil
	case "rcs-tolerant", "rcs":
		return RCSTagTolerant, nil
	case "bk-tolerant", "bk":
		return BKTagTolerant, nil
	}
	return Exact, fmt.Errorf("unknown compare mode '%s'", s)
}

// Set implements pflag.Value
func (m *Mode) Set(s string) (err error) {
	*m, err = ParseMode(s)
	return err
}

// Type implements pflag.Value
func (m *Mode) Type() string { return "mode" }

func (m Mode) MarshalText() ([]byte, error) {
	if m < 0 || int(m) >= len(modeNames) {
		return nil, fmt.Errorf("invalid compare mode %d", int(m))
	}
	return []byte(modeNames[m]), nil
}

func (m *Mode) UnmarshalText(text []byte) error { return m.Set(string(text)) }
