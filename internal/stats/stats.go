package stats

import "fmt"

// Attribute is one of the three scoring channels.
type Attribute string

const (
	Smile Attribute = "Smile"
	Pure  Attribute = "Pure"
	Cool  Attribute = "Cool"
)

// Attributes lists the channels in vector order.
var Attributes = [3]Attribute{Smile, Pure, Cool}

// Index returns the position of a in a StatVector, or -1 if a is not a channel.
func (a Attribute) Index() int {
	switch a {
	case Smile:
		return 0
	case Pure:
		return 1
	case Cool:
		return 2
	}
	return -1
}

// StatVector holds one value per attribute in Smile, Pure, Cool order.
// The usual ordering min <= non-idolized <= idolized is not enforced.
type StatVector [3]int

// Get returns the value for attribute a. Unknown attributes read as 0.
func (v StatVector) Get(a Attribute) int {
	i := a.Index()
	if i < 0 {
		return 0
	}
	return v[i]
}

// GameMaxStats is the highest value any card in the pool reaches per attribute.
type GameMaxStats map[Attribute]int

// Validate reports ErrMissingMaxStats when an attribute is absent or not positive.
func (m GameMaxStats) Validate() error {
	for _, a := range Attributes {
		v, ok := m[a]
		if !ok {
			return fmt.Errorf("%w: no entry for %s", ErrMissingMaxStats, a)
		}
		if v <= 0 {
			return fmt.Errorf("%w: %s is %d", ErrMissingMaxStats, a, v)
		}
	}
	return nil
}

// Vector returns the maxima as a StatVector. Call Validate first.
func (m GameMaxStats) Vector() StatVector {
	return StatVector{m[Smile], m[Pure], m[Cool]}
}
