package BSpline

import (
	"fmt"
	"strings"
)

type KnotType uint8

const (
	Open KnotType = iota
	Periodic
)

var (
	KnotNames = map[string]KnotType{
		"open":     Open,
		"clamped":  Open,
		"periodic": Periodic,
		"uniform":  Periodic,
	}
	KnotPrintNames = []string{"Open", "Periodic"}
)

func (kt KnotType) Print() (txt string) {
	if int(kt) >= len(KnotPrintNames) {
		txt = "Unknown"
		return
	}
	txt = KnotPrintNames[kt]
	return
}

func (kt KnotType) String() string { return kt.Print() }

func NewKnotType(label string) (kt KnotType, err error) {
	var ok bool
	label = strings.ToLower(strings.TrimSpace(label))
	if kt, ok = KnotNames[label]; !ok {
		err = fmt.Errorf("unable to use knot type named %q", label)
	}
	return
}

// correctBoundary patches the order 1 indicator row at the right end of the
// evaluation domain, where the half-open interval test leaves it empty.
// N is 0-based: slot i of the 1-based convention lives at N[i-1].
func (kt KnotType) correctBoundary(t float64, npts int, x, N []float64) {
	switch kt {
	case Periodic:
		// The periodic domain ends at x[npts+1], inside the extended vector.
		// The slot after it wraps across the seam and has to be suppressed.
		if t == x[npts] {
			N[npts-1] = 1
			if npts < len(N) {
				N[npts] = 0
			}
		}
	default:
		if t == x[len(x)-1] {
			N[npts-1] = 1
		}
	}
}
