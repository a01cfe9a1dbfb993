package nlp

type Tag string

const (
	TagNoun        Tag = "NOUN"
	TagProperNoun  Tag = "PROPN"
	TagPronoun     Tag = "PRON"
	TagDeterminer  Tag = "DET"
	TagAdjective   Tag = "ADJ"
	TagAdverb      Tag = "ADV"
	TagAdposition  Tag = "ADP"
	TagAuxiliary   Tag = "AUX"
	TagVerb        Tag = "VERB"
	TagConjunction Tag = "CCONJ"
	TagParticle    Tag = "PART"
	TagNumber      Tag = "NUM"
	TagPunct       Tag = "PUNCT"
	TagOther       Tag = "X"
)

// Token is a single word or punctuation mark. Start and End are byte offsets
// into the parsed text.
type Token struct {
	Text  string `json:"text"`
	Norm  string `json:"norm"`
	Tag   Tag    `json:"tag"`
	Start int    `json:"start"`
	End   int    `json:"end"`
}

func (t Token) IsNominal() bool {
	return t.Tag == TagNoun || t.Tag == TagProperNoun
}

// Chunk is a base noun phrase: optional determiners and modifiers ending in a
// noun or proper noun.
type Chunk struct {
	Text   string  `json:"text"`
	Tokens []Token `json:"tokens"`
}

func (c Chunk) HasProperNoun() bool {
	for _, token := range c.Tokens {
		if token.Tag == TagProperNoun {
			return true
		}
	}
	return false
}

// Parser is the shallow-parse capability consumed by the entity extractor.
type Parser interface {
	Tokenize(text string) []Token
	NounChunks(text string) []Chunk
}
