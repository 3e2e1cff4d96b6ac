package gapgen

import (
	"fmt"
	"strings"
)

// Placement selects how gap start times are drawn.
type Placement int

const (
	// PlacementRandom draws every start uniformly over the series.
	PlacementRandom Placement = iota
	// PlacementRandomPoisson lays gaps out one after the other, separated by
	// exponentially distributed spans of valid data.
	PlacementRandomPoisson
	// PlacementPeriodic puts one gap every 1/GapFrequency seconds.
	PlacementPeriodic
)

var placementNames = map[Placement]string{
	PlacementRandom:        "random",
	PlacementRandomPoisson: "random_poisson",
	PlacementPeriodic:      "periodic",
}

func (p Placement) String() string {
	if name, ok := placementNames[p]; ok {
		return name
	}

	return fmt.Sprintf("Placement(%d)", int(p))
}

// Valid reports whether p is a known placement.
func (p Placement) Valid() bool {
	_, ok := placementNames[p]
	return ok
}

// ParsePlacement maps a gap type name to its Placement. "random-poisson" and
// "poisson" are accepted for PlacementRandomPoisson.
func ParsePlacement(name string) (Placement, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "random":
		return PlacementRandom, nil
	case "random_poisson", "random-poisson", "poisson":
		return PlacementRandomPoisson, nil
	case "periodic":
		return PlacementPeriodic, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownGapType, name)
	}
}
