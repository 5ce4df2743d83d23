package kakari

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func m(surface string, pos PartOfSpeech) Morpheme {
	return Morpheme{Surface: surface, POS: pos, BasicForm: surface}
}

func TestResolveScenario(t *testing.T) {
	sentence := loadSentences(t)[0]
	edges := Resolve(sentence)
	require.Len(t, edges, len(sentence)-1)

	tests := []struct {
		from  int
		to    int
		label Label
	}{
		{0, 1, LabelCase},
		{1, 2, LabelGeneral},
		{2, 3, LabelCase},
		{5, 7, LabelGeneral},
		{6, 9, LabelAdverbial},
		{8, 9, LabelCase},
		{9, 10, LabelPredicate},
		{10, 12, LabelGeneral},
		{11, 12, LabelGeneral},
	}
	for _, tt := range tests {
		e := edges[tt.from]
		assert.Equal(t, tt.from, e.FromIndex)
		assert.Equal(t, tt.to, e.ToIndex, "target of %d (%s)", tt.from, sentence[tt.from].Surface)
		assert.Equal(t, tt.label, e.Label, "label of %d (%s)", tt.from, sentence[tt.from].Surface)
	}
}

func TestResolveShortInput(t *testing.T) {
	assert.Empty(t, Resolve(nil))
	assert.Empty(t, Resolve([]Morpheme{}))
	assert.Empty(t, Resolve([]Morpheme{m("猫", POSNoun)}))

	edges := Resolve([]Morpheme{m("猫", POSNoun), m("だ", POSAuxiliaryVerb)})
	require.Len(t, edges, 1)
	assert.Equal(t, DependencyEdge{FromIndex: 0, ToIndex: 1, Label: LabelGeneral}, edges[0])
}

func TestResolveInvariants(t *testing.T) {
	for _, sentence := range loadSentences(t) {
		edges := Resolve(sentence)
		n := len(sentence)
		require.Len(t, edges, n-1)
		seen := make(map[int]bool)
		for _, e := range edges {
			assert.Greater(t, e.ToIndex, e.FromIndex)
			assert.Less(t, e.ToIndex, n)
			assert.NotEqual(t, n-1, e.FromIndex)
			assert.False(t, seen[e.FromIndex], "duplicate edge from %d", e.FromIndex)
			seen[e.FromIndex] = true
		}
		assert.Equal(t, edges, Resolve(sentence), "resolve is deterministic")
	}
}

func TestFindTargetFallsBackToLast(t *testing.T) {
	tests := []struct {
		name      string
		morphemes []Morpheme
		want      int
	}{
		{
			name:      "noun without particle or predicate",
			morphemes: []Morpheme{m("本", POSNoun), m("猫", POSNoun), m("。", POSSymbol)},
			want:      2,
		},
		{
			name:      "auxiliary always attaches to last",
			morphemes: []Morpheme{m("だ", POSAuxiliaryVerb), m("走る", POSVerb), m("。", POSSymbol)},
			want:      2,
		},
		{
			name:      "adjective to following noun",
			morphemes: []Morpheme{m("赤い", POSAdjective), m("花", POSNoun), m("だ", POSAuxiliaryVerb)},
			want:      1,
		},
		{
			name:      "default category scans for a predicate or noun",
			morphemes: []Morpheme{m("その", POSPrenominal), m("が", POSParticle), m("花", POSNoun), m("。", POSSymbol)},
			want:      2,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, findTarget(tt.morphemes, 0))
		})
	}
}

func TestLabelFor(t *testing.T) {
	tests := []struct {
		from, to PartOfSpeech
		want     Label
	}{
		{POSNoun, POSParticle, LabelCase},
		{POSAdjective, POSNoun, LabelAdnominal},
		{POSAdverb, POSVerb, LabelAdverbial},
		{POSParticle, POSVerb, LabelCase},
		{POSVerb, POSAuxiliaryVerb, LabelPredicate},
		{POSParticle, POSNoun, LabelGeneral},
		{POSAdverb, POSAdjective, LabelGeneral},
		{POSSymbol, POSVerb, LabelGeneral},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, labelFor(tt.from, tt.to), "%s -> %s", tt.from, tt.to)
	}
}
