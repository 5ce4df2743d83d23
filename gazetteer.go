package kakari

import "strings"

// wordSet is an immutable set of literal words, built once at package init.
type wordSet map[string]struct{}

func newWordSet(words ...string) wordSet {
	s := make(wordSet, len(words))
	for _, w := range words {
		s[w] = struct{}{}
	}
	return s
}

// has reports exact membership.
func (s wordSet) has(w string) bool {
	_, ok := s[w]
	return ok
}

// substringOf reports whether any word of the set occurs inside text.
func (s wordSet) substringOf(text string) bool {
	for w := range s {
		if strings.Contains(text, w) {
			return true
		}
	}
	return false
}

// Particle markers checked one morpheme to the right of a candidate.
var (
	subjectMarkers  = newWordSet("は", "が")
	objectMarkers   = newWordSet("を")
	locationMarkers = newWordSet("で", "に", "から", "へ")
	methodMarkers   = newWordSet("で", "により")
	reasonMarkers   = newWordSet("ので", "から", "ため")
)

// Gazetteers. Noun lists match by substring, adverb lists by equality.
var (
	personNouns = newWordSet(
		"人", "方", "者", "学生", "先生", "生徒", "子供", "友達", "彼", "彼女",
		"私", "僕", "俺", "母", "父", "兄", "姉", "弟", "妹", "家族",
		"社長", "医者", "さん", "様", "君",
	)
	timeNouns = newWordSet(
		"今日", "昨日", "明日", "今", "朝", "昼", "夜", "夕方", "午前", "午後",
		"今年", "去年", "来年", "今月", "先月", "来月", "今週", "先週", "来週",
		"毎日", "週末", "時間", "曜日",
	)
	timeAdverbs = newWordSet(
		"すぐ", "もう", "まだ", "いつも", "時々", "よく", "さっき", "先程",
		"今度", "やがて", "既に", "しばらく", "ずっと", "いつか",
	)
	mannerAdverbs = newWordSet(
		"ゆっくり", "はっきり", "しっかり", "きちんと", "ちゃんと", "そっと",
		"じっと", "すっかり", "ぐっすり", "どんどん", "こっそり", "一生懸命",
	)
)

// followedBy reports whether the morpheme right after index i has a surface
// in markers. It is false at the end of the sentence.
func followedBy(morphemes []Morpheme, i int, markers wordSet) bool {
	if i+1 >= len(morphemes) {
		return false
	}
	return markers.has(morphemes[i+1].Surface)
}
