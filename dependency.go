package kakari

// Label is the relation category of a dependency edge.
type Label string

const (
	LabelCase      Label = "case-relation"
	LabelAdnominal Label = "adnominal-modification"
	LabelAdverbial Label = "adverbial-modification"
	LabelPredicate Label = "predicate-relation"
	LabelGeneral   Label = "general-dependency"
)

// DependencyEdge attaches the morpheme at FromIndex to a later morpheme at
// ToIndex. Indices point into the sentence slice the edge was resolved from.
type DependencyEdge struct {
	FromIndex int   `json:"from_index"`
	ToIndex   int   `json:"to_index"`
	Label     Label `json:"label"`
}

// attachmentRule lists the categories a source morpheme may attach to,
// scanned left to right from the next morpheme. An empty list always
// attaches to the sentence-final morpheme.
type attachmentRule struct {
	source  PartOfSpeech
	targets []PartOfSpeech
}

var attachmentRules = []attachmentRule{
	{POSNoun, []PartOfSpeech{POSParticle, POSVerb, POSAdjective}},
	{POSVerb, []PartOfSpeech{POSAuxiliaryVerb, POSSymbol}},
	{POSAdjective, []PartOfSpeech{POSNoun, POSAuxiliaryVerb}},
	{POSAdverb, []PartOfSpeech{POSVerb, POSAdjective}},
	{POSParticle, []PartOfSpeech{POSVerb, POSAdjective, POSNoun}},
	{POSAuxiliaryVerb, nil},
}

// defaultTargets applies to any category without its own rule.
var defaultTargets = []PartOfSpeech{POSVerb, POSNoun, POSAdjective}

// labelRule maps an ordered (from, to) category pair to a label.
type labelRule struct {
	from, to PartOfSpeech
	label    Label
}

// labelRules are evaluated in order; the first match wins.
var labelRules = []labelRule{
	{POSNoun, POSParticle, LabelCase},
	{POSAdjective, POSNoun, LabelAdnominal},
	{POSAdverb, POSVerb, LabelAdverbial},
	{POSParticle, POSVerb, LabelCase},
	{POSVerb, POSAuxiliaryVerb, LabelPredicate},
}

// Resolve attaches every morpheme except the last to a following morpheme
// and labels the relation. It returns len(morphemes)-1 edges, or none for
// sentences shorter than two morphemes.
func Resolve(morphemes []Morpheme) []DependencyEdge {
	if len(morphemes) < 2 {
		return []DependencyEdge{}
	}
	edges := make([]DependencyEdge, 0, len(morphemes)-1)
	for i := 0; i < len(morphemes)-1; i++ {
		t := findTarget(morphemes, i)
		edges = append(edges, DependencyEdge{
			FromIndex: i,
			ToIndex:   t,
			Label:     labelFor(morphemes[i].POS, morphemes[t].POS),
		})
	}
	return edges
}

// targetsFor returns the attachment categories for a source category.
func targetsFor(pos PartOfSpeech) []PartOfSpeech {
	for _, r := range attachmentRules {
		if r.source == pos {
			return r.targets
		}
	}
	return defaultTargets
}

// findTarget returns the index of the first morpheme after i whose category
// is an attachment target of morphemes[i], falling back to the last index.
func findTarget(morphemes []Morpheme, i int) int {
	last := len(morphemes) - 1
	targets := targetsFor(morphemes[i].POS)
	for j := i + 1; j < last; j++ {
		if containsPOS(targets, morphemes[j].POS) {
			return j
		}
	}
	return last
}

// labelFor returns the label of an edge between the two categories.
func labelFor(from, to PartOfSpeech) Label {
	for _, r := range labelRules {
		if r.from == from && r.to == to {
			return r.label
		}
	}
	return LabelGeneral
}

func containsPOS(set []PartOfSpeech, pos PartOfSpeech) bool {
	for _, p := range set {
		if p == pos {
			return true
		}
	}
	return false
}
