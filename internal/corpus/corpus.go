// Package corpus generates lorem-ipsum style filler text for size-driven benchmarks.
package corpus

import (
	"math/rand/v2"
	"strings"
)

// Words is the Latin filler vocabulary. It contains "magnam", the default search term.
var Words = []string{
	"adipisci", "aliquam", "amet", "consectetur", "dolor", "dolore", "dolorem",
	"eius", "est", "et", "incidunt", "ipsum", "labore", "magnam", "modi", "neque",
	"non", "numquam", "porro", "quaerat", "qui", "quia", "quisquam", "sed", "sit",
	"tempora", "ut", "velit", "voluptatem",
}

// Shape bounds, inclusive.
const (
	minSentenceWords   = 8
	maxSentenceWords   = 15
	minParagraphPhrase = 5
	maxParagraphPhrase = 9
	minTextParagraphs  = 1
	maxTextParagraphs  = 4

	// estTextBytes is the mean Text length, used to presize Blob.
	estTextBytes = 1350
	// maxGrowHint bounds the Blob preallocation; larger blobs grow on demand.
	maxGrowHint = 1 << 30
)

// Generator produces pseudo-random filler text. It is not safe for concurrent use.
type Generator struct {
	rnd *rand.Rand
}

// New returns a Generator. A zero seed draws a random one, so every run differs;
// any other seed yields the same sequence of texts on every run.
func New(seed uint64) *Generator {
	if seed == 0 {
		return &Generator{rnd: rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))}
	}
	return &Generator{rnd: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// Sentence returns one capitalised sentence ending with a period.
func (g *Generator) Sentence() string {
	var b strings.Builder
	g.writeSentence(&b)
	return b.String()
}

// Paragraph returns several sentences separated by single spaces.
func (g *Generator) Paragraph() string {
	var b strings.Builder
	g.writeParagraph(&b)
	return b.String()
}

// Text returns one or more paragraphs separated by a blank line.
func (g *Generator) Text() string {
	var b strings.Builder
	g.writeText(&b)
	return b.String()
}

// Blob concatenates n texts without separators. n <= 0 yields "".
func (g *Generator) Blob(n int) string {
	if n <= 0 {
		return ""
	}
	var b strings.Builder
	b.Grow(growHint(n))
	for range n {
		g.writeText(&b)
	}
	return b.String()
}

// growHint is the builder preallocation for n texts, capped at maxGrowHint.
func growHint(n int) int {
	if n > maxGrowHint/estTextBytes {
		return maxGrowHint
	}
	return n * estTextBytes
}

func (g *Generator) writeText(b *strings.Builder) {
	n := g.between(minTextParagraphs, maxTextParagraphs)
	for i := range n {
		if i > 0 {
			b.WriteString("\n\n")
		}
		g.writeParagraph(b)
	}
}

func (g *Generator) writeParagraph(b *strings.Builder) {
	n := g.between(minParagraphPhrase, maxParagraphPhrase)
	for i := range n {
		if i > 0 {
			b.WriteByte(' ')
		}
		g.writeSentence(b)
	}
}

func (g *Generator) writeSentence(b *strings.Builder) {
	n := g.between(minSentenceWords, maxSentenceWords)
	for i := range n {
		w := Words[g.rnd.IntN(len(Words))]
		if i == 0 {
			b.WriteString(strings.ToUpper(w[:1]))
			b.WriteString(w[1:])
		} else {
			b.WriteByte(' ')
			b.WriteString(w)
		}
		if i < n-1 && i > 0 && g.rnd.IntN(8) == 0 {
			b.WriteByte(',')
		}
	}
	b.WriteByte('.')
}

func (g *Generator) between(lo, hi int) int {
	return lo + g.rnd.IntN(hi-lo+1)
}
