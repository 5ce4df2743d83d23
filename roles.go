package kakari

// Category is a semantic role.
type Category string

const (
	Who   Category = "who"
	What  Category = "what"
	When  Category = "when"
	Where Category = "where"
	Why   Category = "why"
	How   Category = "how"
)

// Categories lists every role in output order.
var Categories = []Category{Who, What, When, Where, Why, How}

// Confidence scores attached by each rule. They identify the rule that fired
// rather than estimate a probability.
const (
	confidenceMarkedSubject   = 0.8
	confidenceUnmarkedSubject = 0.4
	confidenceSubjectFloor    = 0.3
	confidenceVerb            = 0.7
	confidenceObject          = 0.8
	confidenceTimeNoun        = 0.9
	confidenceTimeAdverb      = 0.8
	confidenceLocation        = 0.8
	confidenceRegion          = 0.9
	confidenceReason          = 0.7
	confidenceManner          = 0.7
	confidenceMethod          = 0.6
)

// RoleElement is one role assignment. MorphemeIndices point into the
// sentence the element was extracted from.
type RoleElement struct {
	Category        Category `json:"category"`
	Text            string   `json:"text"`
	MorphemeIndices []int    `json:"morpheme_indices"`
	Confidence      float64  `json:"confidence"`
}

// RoleResult holds the elements of every category. All six keys are always
// present; elements keep sentence order and are never deduplicated.
type RoleResult map[Category][]RoleElement

func newRoleResult() RoleResult {
	r := make(RoleResult, len(Categories))
	for _, c := range Categories {
		r[c] = []RoleElement{}
	}
	return r
}

// extractor is a single role pass over a sentence.
type extractor func(morphemes []Morpheme) []RoleElement

var extractors = []struct {
	category Category
	run      extractor
}{
	{Who, extractWho},
	{What, extractWhat},
	{When, extractWhen},
	{Where, extractWhere},
	{Why, extractWhy},
	{How, extractHow},
}

// Extract runs the six role passes over morphemes. The edges returned by
// Resolve are accepted but no current rule reads them.
func Extract(morphemes []Morpheme, _ []DependencyEdge) RoleResult {
	result := newRoleResult()
	for _, e := range extractors {
		if els := e.run(morphemes); len(els) > 0 {
			result[e.category] = els
		}
	}
	return result
}

func element(c Category, text string, confidence float64, indices ...int) RoleElement {
	return RoleElement{Category: c, Text: text, MorphemeIndices: indices, Confidence: confidence}
}

func isPersonCandidate(m Morpheme) bool {
	if m.POS == POSPronoun {
		return true
	}
	if m.POS != POSNoun {
		return false
	}
	return m.POSDetail1 == DetailProperNoun ||
		m.POSDetail1 == DetailPronoun ||
		personNouns.substringOf(m.Surface)
}

func extractWho(morphemes []Morpheme) []RoleElement {
	var out []RoleElement
	for i, m := range morphemes {
		if !isPersonCandidate(m) {
			continue
		}
		confidence := confidenceUnmarkedSubject
		if followedBy(morphemes, i, subjectMarkers) {
			confidence = confidenceMarkedSubject
		}
		if confidence <= confidenceSubjectFloor {
			continue
		}
		out = append(out, element(Who, m.Surface, confidence, i))
	}
	return out
}

func extractWhat(morphemes []Morpheme) []RoleElement {
	var out []RoleElement
	for i, m := range morphemes {
		switch {
		case m.POS == POSVerb:
			out = append(out, element(What, m.Lemma(), confidenceVerb, i))
		case m.POS == POSNoun && followedBy(morphemes, i, objectMarkers):
			out = append(out, element(What, m.Surface, confidenceObject, i))
		}
	}
	return out
}

func extractWhen(morphemes []Morpheme) []RoleElement {
	var out []RoleElement
	for i, m := range morphemes {
		switch {
		case m.POS == POSNoun && timeNouns.substringOf(m.Surface):
			out = append(out, element(When, m.Surface, confidenceTimeNoun, i))
		case m.POS == POSAdverb && timeAdverbs.has(m.Surface):
			out = append(out, element(When, m.Surface, confidenceTimeAdverb, i))
		}
	}
	return out
}

func extractWhere(morphemes []Morpheme) []RoleElement {
	var out []RoleElement
	for i, m := range morphemes {
		if m.POS != POSNoun {
			continue
		}
		// A region followed by a location marker yields both elements.
		if followedBy(morphemes, i, locationMarkers) {
			out = append(out, element(Where, m.Surface, confidenceLocation, i))
		}
		if m.POSDetail1 == DetailProperNoun && m.POSDetail2 == DetailRegion {
			out = append(out, element(Where, m.Surface, confidenceRegion, i))
		}
	}
	return out
}

func extractWhy(morphemes []Morpheme) []RoleElement {
	var out []RoleElement
	for i, m := range morphemes {
		if i == 0 || m.POS != POSParticle || !reasonMarkers.has(m.Surface) {
			continue
		}
		out = append(out, element(Why, morphemes[i-1].Surface, confidenceReason, i-1, i))
	}
	return out
}

func extractHow(morphemes []Morpheme) []RoleElement {
	var out []RoleElement
	for i, m := range morphemes {
		switch {
		case m.POS == POSAdverb && mannerAdverbs.has(m.Surface):
			out = append(out, element(How, m.Surface, confidenceManner, i))
		case m.POS == POSNoun && followedBy(morphemes, i, methodMarkers):
			out = append(out, element(How, m.Surface, confidenceMethod, i))
		}
	}
	return out
}
