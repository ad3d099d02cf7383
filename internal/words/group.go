package words

import "strings"

// MaxPlaces is the number of three-digit groups below one quadrillion.
const MaxPlaces = 5

const groupBase = 1000

// Group is a three-digit segment of a dollar amount and its place index
// (0 units, 1 thousands, ... 4 trillions).
type Group struct {
	Value uint16
	Place int
}

// Decompose splits dollars into base-1000 groups, least significant first.
// Zero-valued groups are kept so that places stay aligned; zero yields no groups.
func Decompose(dollars uint64) []Group {
	var groups []Group
	for place := 0; dollars > 0; place++ {
		groups = append(groups, Group{Value: uint16(dollars % groupBase), Place: place})
		dollars /= groupBase
	}
	return groups
}

// Words renders the group followed by its place name, or "" for a zero group.
func (g Group) Words() string {
	w := Hundreds(g.Value)
	if w == "" {
		return ""
	}
	if name := PlaceName(g.Place); name != "" {
		return w + " " + name
	}
	return w
}

// Hundreds renders n in [0, 999] in English words. Zero renders as "".
func Hundreds(n uint16) string {
	if n >= groupBase {
		return ""
	}
	var b strings.Builder
	if n >= 100 {
		b.WriteString(digits[n/100])
		b.WriteString(" hundred")
		n %= 100
		if n > 0 {
			b.WriteByte(' ')
		}
	}
	switch {
	case n >= 20:
		b.WriteString(tens[n/10])
		if ones := n % 10; ones > 0 {
			b.WriteByte('-')
			b.WriteString(digits[ones])
		}
	case n >= 10:
		b.WriteString(teens[n-10])
	default:
		b.WriteString(digits[n])
	}
	return b.String()
}

// PlaceName returns the magnitude word for a group place, "" for units
// and for places outside the supported range.
func PlaceName(place int) string {
	if place < 0 || place >= MaxPlaces {
		return ""
	}
	return places[place]
}
