package pitch

// EdgeSet is a bitmask of the box borders drawn for one mora position.
// Bottom marks a low-pitch mora, Top a high-pitch one, and Left a pitch
// transition at the left boundary of the mora's box; adjoining bordered
// boxes then form the conventional staircase diagram.
type EdgeSet uint8

const (
	EdgeTop EdgeSet = 1 << iota
	EdgeBottom
	EdgeLeft
)

// Has reports whether e contains every edge in mask.
func (e EdgeSet) Has(mask EdgeSet) bool { return e&mask == mask }

// Edges computes the border edges for every mora of reading plus one
// synthetic trailing position that carries the pitch of the following
// particle. The result always has MoraCount(reading)+1 entries.
func Edges(reading string, accent Accent) []EdgeSet {
	n := MoraCount(reading)
	out := make([]EdgeSet, 0, n+1)
	for i := 0; i < n; i++ {
		out = append(out, moraEdges(i, n, accent))
	}
	return append(out, particleEdges(accent))
}

// moraEdges resolves the table for real mora position i of n.
func moraEdges(i, n int, accent Accent) EdgeSet {
	switch accent.Kind {
	case Heiban:
		switch {
		case i == 0:
			return EdgeBottom
		case i == 1:
			return EdgeLeft | EdgeTop
		default:
			return EdgeTop
		}
	case Atamadaka:
		switch {
		case i == 0:
			return EdgeTop
		case i == 1:
			return EdgeLeft | EdgeBottom
		default:
			return EdgeBottom
		}
	case Nakadaka:
		// Drop >= 2 holds by construction, so the i == 1 arm never
		// shadows the drop position.
		switch {
		case i == 0:
			return EdgeBottom
		case i == 1:
			return EdgeLeft | EdgeTop
		case i < accent.Drop:
			return EdgeTop
		case i == accent.Drop:
			return EdgeLeft | EdgeBottom
		default:
			return EdgeBottom
		}
	case Odaka:
		switch {
		case i == 0 && n == 1:
			return EdgeTop
		case i == 0:
			return EdgeBottom
		case i == 1:
			return EdgeLeft | EdgeTop
		default:
			return EdgeTop
		}
	}
	return 0
}

// particleEdges resolves the trailing particle position, which does not
// depend on the mora count.
func particleEdges(accent Accent) EdgeSet {
	switch accent.Kind {
	case Heiban:
		return EdgeTop
	case Atamadaka, Nakadaka:
		return EdgeBottom
	case Odaka:
		return EdgeLeft | EdgeBottom
	}
	return 0
}
