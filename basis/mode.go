package basis

import (
	"fmt"
	"strings"
)

// Mode selects how a leaf basis turns a sample stream into a model matrix.
type Mode int

const (
	// ModeEvaluate evaluates the basis functions at the samples.
	ModeEvaluate Mode = iota

	// ModeConvolve convolves the basis functions with the samples. It is
	// reserved; see [Convolver].
	ModeConvolve
)

var modeNames = map[Mode]string{
	ModeEvaluate: "evaluate",
	ModeConvolve: "convolve",
}

// ParseMode returns the mode with the given name ("evaluate" or "convolve").
func ParseMode(s string) (Mode, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for m, n := range modeNames {
		if n == name {
			return m, nil
		}
	}
	return 0, fmt.Errorf("%w: evaluation mode must be \"evaluate\" or \"convolve\": %q", ErrConfig, s)
}

func (m Mode) String() string {
	if n, ok := modeNames[m]; ok {
		return n
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

func (m Mode) valid() bool {
	_, ok := modeNames[m]
	return ok
}
