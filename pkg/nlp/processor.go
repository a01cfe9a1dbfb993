package nlp

import (
	"regexp"
	"strconv"
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var tokenPattern = regexp.MustCompile(`(?i)[\p{L}\p{N}]+(?:[-.][\p{L}\p{N}]+)*|['’](?:s|t|ll|re|ve|d|m)\b|[^\s\p{L}\p{N}]`)

var (
	defaultEngine *Engine
	once          sync.Once
)

// Engine is a lexicon and suffix driven part-of-speech tagger with a base
// noun-phrase chunker. It holds no per-call state and is safe for concurrent use.
type Engine struct {
	lexicon map[string]Tag
}

func NewEngine() *Engine {
	return &Engine{
		lexicon: buildLexicon(),
	}
}

// Default returns the process-wide engine, building the lexicon on first use.
func Default() *Engine {
	once.Do(func() {
		defaultEngine = NewEngine()
	})

	return defaultEngine
}

func (e *Engine) Tokenize(text string) []Token {
	locations := tokenPattern.FindAllStringIndex(text, -1)
	tokens := make([]Token, 0, len(locations))

	sentenceStart := true
	for _, loc := range locations {
		raw := text[loc[0]:loc[1]]
		normalized := e.normalize(raw)

		tokens = append(tokens, Token{
			Text:  raw,
			Norm:  normalized,
			Tag:   e.tag(raw, normalized, sentenceStart),
			Start: loc[0],
			End:   loc[1],
		})

		sentenceStart = raw == "." || raw == "!" || raw == "?"
	}

	return tokens
}

func (e *Engine) NounChunks(text string) []Chunk {
	tokens := e.Tokenize(text)

	var chunks []Chunk
	i := 0
	for i < len(tokens) {
		if !canOpenChunk(tokens[i].Tag) {
			i++
			continue
		}

		start := i
		for i < len(tokens) && tokens[i].Tag == TagDeterminer {
			i++
		}
		for i < len(tokens) && canContinueChunk(tokens[i].Tag) {
			i++
		}

		lastNominal := -1
		for j := i - 1; j >= start; j-- {
			if tokens[j].IsNominal() {
				lastNominal = j
				break
			}
		}

		if lastNominal < 0 {
			continue
		}

		// model numbers: "Laptop XPS 15"
		end := lastNominal
		if tokens[lastNominal].Tag == TagProperNoun {
			for end+1 < i && tokens[end+1].Tag == TagNumber {
				end++
			}
		}

		members := make([]Token, end-start+1)
		copy(members, tokens[start:end+1])

		chunks = append(chunks, Chunk{
			Text:   text[tokens[start].Start:tokens[end].End],
			Tokens: members,
		})
		i = end + 1
	}

	return chunks
}

func (e *Engine) tag(raw, normalized string, sentenceStart bool) Tag {
	if tag, ok := e.lexicon[normalized]; ok {
		if tag == TagNoun && (isAcronym(raw) || (!sentenceStart && isCapitalized(raw))) {
			return TagProperNoun
		}
		return tag
	}

	first, _ := utf8.DecodeRuneInString(raw)
	if !unicode.IsLetter(first) && !unicode.IsDigit(first) {
		return TagPunct
	}

	if unicode.IsDigit(first) {
		if _, err := strconv.ParseFloat(normalized, 64); err == nil {
			return TagNumber
		}
	}

	if isCapitalized(raw) {
		return TagProperNoun
	}

	if strings.IndexFunc(raw, unicode.IsDigit) >= 0 {
		return TagNoun
	}

	for _, rule := range suffixRules {
		if len(normalized) >= rule.minLen && strings.HasSuffix(normalized, rule.suffix) {
			return rule.tag
		}
	}

	if isPlural(normalized) {
		return TagNoun
	}

	return TagOther
}

func (e *Engine) normalize(text string) string {
	text = strings.ToLower(text)

	t := transform.Chain(norm.NFD, transform.RemoveFunc(isMn), norm.NFC)
	result, _, err := transform.String(t, text)
	if err != nil {
		return text
	}

	return strings.ReplaceAll(result, "’", "'")
}

func canOpenChunk(tag Tag) bool {
	return tag == TagDeterminer || canContinueChunk(tag)
}

func canContinueChunk(tag Tag) bool {
	switch tag {
	case TagAdjective, TagNumber, TagNoun, TagProperNoun:
		return true
	}
	return false
}

func isMn(r rune) bool {
	return unicode.Is(unicode.Mn, r)
}

func isCapitalized(text string) bool {
	first, _ := utf8.DecodeRuneInString(text)
	return unicode.IsUpper(first)
}

func isAcronym(text string) bool {
	letters := 0
	for _, r := range text {
		if unicode.IsLetter(r) {
			if !unicode.IsUpper(r) {
				return false
			}
			letters++
		}
	}
	return letters >= 2
}

func isPlural(word string) bool {
	if len(word) <= 3 || !strings.HasSuffix(word, "s") {
		return false
	}
	for _, ending := range []string{"ss", "us", "is"} {
		if strings.HasSuffix(word, ending) {
			return false
		}
	}
	return true
}
