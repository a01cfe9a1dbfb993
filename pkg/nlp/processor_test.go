package nlp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tagsOf(tokens []Token) []Tag {
	tags := make([]Tag, 0, len(tokens))
	for _, token := range tokens {
		tags = append(tags, token.Tag)
	}
	return tags
}

func chunkTexts(chunks []Chunk) []string {
	texts := make([]string, 0, len(chunks))
	for _, chunk := range chunks {
		texts = append(texts, chunk.Text)
	}
	return texts
}

func TestEngine_Tokenize(t *testing.T) {
	engine := NewEngine()

	tokens := engine.Tokenize("What's the price of Laptop XPS 15?")
	require.Len(t, tokens, 9)

	assert.Equal(t, "What", tokens[0].Text)
	assert.Equal(t, "'s", tokens[1].Text)
	assert.Equal(t, "Laptop", tokens[5].Text)
	assert.Equal(t, 20, tokens[5].Start)
	assert.Equal(t, 26, tokens[5].End)

	assert.Equal(t, []Tag{
		TagPronoun, TagParticle, TagDeterminer, TagNoun, TagAdposition,
		TagProperNoun, TagProperNoun, TagNumber, TagPunct,
	}, tagsOf(tokens))
}

func TestEngine_Tokenize_UnknownLowercaseWords(t *testing.T) {
	engine := NewEngine()

	tokens := engine.Tokenize("xyzzy plugh")
	assert.Equal(t, []Tag{TagOther, TagOther}, tagsOf(tokens))
}

func TestEngine_Tokenize_SuffixRules(t *testing.T) {
	engine := NewEngine()

	tests := []struct {
		word string
		tag  Tag
	}{
		{word: "quickly", tag: TagAdverb},
		{word: "running", tag: TagVerb},
		{word: "classification", tag: TagNoun},
		{word: "wireless", tag: TagAdjective},
		{word: "printer", tag: TagNoun},
		{word: "gadgets", tag: TagNoun},
		{word: "glass", tag: TagOther},
		{word: "nan", tag: TagOther},
		{word: "x1", tag: TagNoun},
		{word: "café", tag: TagOther},
	}

	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			tokens := engine.Tokenize("the " + tt.word)
			require.Len(t, tokens, 2)
			assert.Equal(t, tt.tag, tokens[1].Tag)
		})
	}
}

func TestEngine_Tokenize_NormalizesAccents(t *testing.T) {
	engine := NewEngine()

	tokens := engine.Tokenize("Catálogo")
	require.Len(t, tokens, 1)
	assert.Equal(t, "catalogo", tokens[0].Norm)
	assert.Equal(t, "Catálogo", tokens[0].Text)
}

func TestEngine_NounChunks(t *testing.T) {
	engine := NewEngine()

	tests := []struct {
		name     string
		text     string
		expected []string
	}{
		{
			name:     "model number stays with proper noun",
			text:     "What's the price of Laptop XPS 15?",
			expected: []string{"the price", "Laptop XPS 15"},
		},
		{
			name:     "determiner opens chunk",
			text:     "list all products",
			expected: []string{"all products"},
		},
		{
			name:     "pronouns are not chunks",
			text:     "Tell me about Dell laptops",
			expected: []string{"Dell laptops"},
		},
		{
			name:     "adjective modifiers",
			text:     "show me the cheapest wireless printer",
			expected: []string{"the cheapest wireless printer"},
		},
		{
			name:     "unknown words produce nothing",
			text:     "xyzzy plugh",
			expected: []string{},
		},
		{
			name:     "empty input",
			text:     "",
			expected: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, chunkTexts(engine.NounChunks(tt.text)))
		})
	}
}

func TestChunk_HasProperNoun(t *testing.T) {
	engine := NewEngine()

	chunks := engine.NounChunks("Tell me about Dell laptops and the old chairs")
	require.Len(t, chunks, 2)
	assert.True(t, chunks[0].HasProperNoun())
	assert.False(t, chunks[1].HasProperNoun())
}

func TestDefault_ReturnsSingleEngine(t *testing.T) {
	assert.Same(t, Default(), Default())
}

func TestEngine_ConcurrentUse(t *testing.T) {
	engine := Default()
	done := make(chan []string, 8)

	for i := 0; i < 8; i++ {
		go func() {
			done <- chunkTexts(engine.NounChunks("search for the Acme blender"))
		}()
	}

	for i := 0; i < 8; i++ {
		assert.Equal(t, []string{"the Acme blender"}, <-done)
	}
}
