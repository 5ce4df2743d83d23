package kakari

import "strings"

// PartOfSpeech is the coarse grammatical category of a morpheme, using the
// IPADIC top-level tag as its value.
type PartOfSpeech string

const (
	POSNoun          PartOfSpeech = "名詞"
	POSVerb          PartOfSpeech = "動詞"
	POSAdjective     PartOfSpeech = "形容詞"
	POSAdverb        PartOfSpeech = "副詞"
	POSParticle      PartOfSpeech = "助詞"
	POSAuxiliaryVerb PartOfSpeech = "助動詞"
	POSSymbol        PartOfSpeech = "記号"
	POSPronoun       PartOfSpeech = "代名詞"
	POSNumeral       PartOfSpeech = "数詞"
	POSPrenominal    PartOfSpeech = "連体詞"
	POSConjunction   PartOfSpeech = "接続詞"
	POSInterjection  PartOfSpeech = "感動詞"
	POSPrefix        PartOfSpeech = "接頭詞"
	POSFiller        PartOfSpeech = "フィラー"
	POSOther         PartOfSpeech = "その他"
)

// Finer subcategories consulted by the role rules.
const (
	DetailProperNoun = "固有名詞"
	DetailPronoun    = "代名詞"
	DetailRegion     = "地域"
)

// Morpheme is one tagged unit of tokenizer output. Its position in the
// sentence slice is the only identity it has.
type Morpheme struct {
	Surface        string       `json:"surface"`
	POS            PartOfSpeech `json:"pos"`
	POSDetail1     string       `json:"pos_detail_1,omitempty"`
	POSDetail2     string       `json:"pos_detail_2,omitempty"`
	POSDetail3     string       `json:"pos_detail_3,omitempty"`
	ConjugatedType string       `json:"conjugated_type,omitempty"`
	ConjugatedForm string       `json:"conjugated_form,omitempty"`
	BasicForm      string       `json:"basic_form,omitempty"`
	Reading        string       `json:"reading,omitempty"`
	Pronunciation  string       `json:"pronunciation,omitempty"`
}

// Lemma returns the basic form, or the surface when the dictionary had none
// (unknown words).
func (m Morpheme) Lemma() string {
	if m.BasicForm != "" {
		return m.BasicForm
	}
	return m.Surface
}

// morphemeFromFeatures decodes an IPADIC feature vector
// (pos, detail1-3, ctype, cform, base, reading, pronunciation).
// Unknown words carry only the first seven fields.
func morphemeFromFeatures(surface string, features []string) Morpheme {
	field := func(i int) string {
		if i >= len(features) {
			return ""
		}
		f := strings.TrimSpace(features[i])
		if f == "*" {
			return ""
		}
		return f
	}
	return Morpheme{
		Surface:        surface,
		POS:            PartOfSpeech(field(0)),
		POSDetail1:     field(1),
		POSDetail2:     field(2),
		POSDetail3:     field(3),
		ConjugatedType: field(4),
		ConjugatedForm: field(5),
		BasicForm:      field(6),
		Reading:        field(7),
		Pronunciation:  field(8),
	}
}

// features is the inverse of morphemeFromFeatures, with "*" for blanks.
func (m Morpheme) features() []string {
	out := []string{
		string(m.POS), m.POSDetail1, m.POSDetail2, m.POSDetail3,
		m.ConjugatedType, m.ConjugatedForm, m.BasicForm, m.Reading, m.Pronunciation,
	}
	for i, f := range out {
		if f == "" {
			out[i] = "*"
		}
	}
	return out
}
