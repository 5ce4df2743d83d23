package kakari

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteCoNLL(t *testing.T) {
	a := Analyze(loadSentences(t)[0])
	a.Text = "先生が教室で学生にゆっくり英語を教えました。"

	var buf bytes.Buffer
	require.NoError(t, WriteCoNLL(&buf, a))

	lines := strings.Split(buf.String(), "\n")
	assert.Equal(t, "# text = "+a.Text, lines[0])
	// comment, 13 rows, blank separator, trailing newline
	require.Len(t, lines, 16)
	assert.Equal(t, "", lines[14])

	for i, line := range lines[1:14] {
		cols := strings.Split(line, "\t")
		require.Len(t, cols, 10, "row %d", i)
		assert.Equal(t, a.Morphemes[i].Surface, cols[1])
	}

	first := strings.Split(lines[1], "\t")
	assert.Equal(t, []string{"1", "先生", "先生", "NOUN", "名詞-一般", "_", "2", "case-relation", "_", "Reading=センセイ|Role=who:0.8"}, first)

	verb := strings.Split(lines[10], "\t")
	assert.Equal(t, "教える", verb[2])
	assert.Equal(t, "Form=連用形|Type=一段", verb[5])
	assert.Equal(t, "11", verb[6])
	assert.Equal(t, "predicate-relation", verb[7])

	last := strings.Split(lines[13], "\t")
	assert.Equal(t, "PUNCT", last[3])
	assert.Equal(t, "0", last[6])
	assert.Equal(t, "root", last[7])
}

func TestWriteCoNLLHeadsMatchEdges(t *testing.T) {
	for _, sentence := range loadSentences(t) {
		a := Analyze(sentence)
		var buf bytes.Buffer
		require.NoError(t, WriteCoNLL(&buf, a))
		rows := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
		require.Len(t, rows, len(sentence))
		for _, e := range a.Edges {
			cols := strings.Split(rows[e.FromIndex], "\t")
			assert.Equal(t, e.ToIndex+1, atoi(t, cols[6]))
			assert.Equal(t, string(e.Label), cols[7])
		}
	}
}

func atoi(t *testing.T, s string) int {
	t.Helper()
	n := 0
	for _, r := range s {
		require.True(t, r >= '0' && r <= '9', "not a number: %q", s)
		n = n*10 + int(r-'0')
	}
	return n
}
