package kakari

// Analysis is the result of analyzing one sentence: the morphemes it was
// computed from, their dependency edges and the extracted roles.
type Analysis struct {
	// Text is the raw sentence when it is known (empty for pre-tokenized input).
	Text      string           `json:"text,omitempty"`
	Morphemes []Morpheme       `json:"morphemes"`
	Edges     []DependencyEdge `json:"edges"`
	Roles     RoleResult       `json:"roles"`
}

// Analyze resolves the dependency edges of morphemes and extracts roles from
// them. It never fails; an empty sentence yields empty edges and roles.
func Analyze(morphemes []Morpheme) *Analysis {
	if morphemes == nil {
		morphemes = []Morpheme{}
	}
	edges := Resolve(morphemes)
	return &Analysis{
		Morphemes: morphemes,
		Edges:     edges,
		Roles:     Extract(morphemes, edges),
	}
}

// Heads returns, for each morpheme, the index it attaches to, or -1 for the
// sentence-final morpheme.
func (a *Analysis) Heads() []int {
	heads := make([]int, len(a.Morphemes))
	for i := range heads {
		heads[i] = -1
	}
	for _, e := range a.Edges {
		heads[e.FromIndex] = e.ToIndex
	}
	return heads
}

// RolesAt returns every role element citing morpheme index i, in category
// order.
func (a *Analysis) RolesAt(i int) []RoleElement {
	var out []RoleElement
	for _, c := range Categories {
		for _, el := range a.Roles[c] {
			for _, idx := range el.MorphemeIndices {
				if idx == i {
					out = append(out, el)
					break
				}
			}
		}
	}
	return out
}
