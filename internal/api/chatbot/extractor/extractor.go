package extractor

import (
	"regexp"
	"strconv"
	"strings"

	"CatalogChatbot/pkg/nlp"
)

type fieldPatterns struct {
	field    Field
	patterns []*regexp.Regexp
}

var (
	searchVerbPatterns = compileAll(
		`find\s+([\p{L}\p{N}_\s]+)`,
		`search\s+for\s+([\p{L}\p{N}_\s]+)`,
		`looking\s+for\s+([\p{L}\p{N}_\s]+)`,
	)

	supplierPatterns = compileAll(
		`(?:supplier|vendor)\s+([\p{L}\s]+?)(?:\s+(?:email|phone|contact|address)|$)`,
		`(?:email|phone|contact|address)\s+(?:of|for)\s+(?:supplier|vendor)\s+([\p{L}\s]+)(?:\?|$)`,
		`(?:email|phone|contact|address)\s+(?:of|for)\s+([\p{L}\s]+)(?:\?|$)`,
	)

	pricePatterns = compileAll(
		`price\s+of\s+([\p{L}\p{N}_\s]+?)(?:\?|$)`,
		`how\s+much\s+(?:is|does|costs?)\s+([\p{L}\p{N}_\s]+?)(?:\?|$)`,
		`what(?:'s|\s+is)\s+the\s+price\s+of\s+([\p{L}\p{N}_\s]+?)(?:\?|$)`,
	)

	// First field with any hit wins.
	requestedFieldPatterns = []fieldPatterns{
		{field: FieldEmail, patterns: compileAll(`email\s+(?:id|address)`, `e-?mail`)},
		{field: FieldPhone, patterns: compileAll(`phone\s+(?:number|no\.?)`, `contact\s+number`)},
		{field: FieldAddress, patterns: compileAll(`address`, `location`)},
		{field: FieldPrice, patterns: compileAll(`price`, `cost`, `how much`)},
		{field: FieldStock, patterns: compileAll(`stock`, `inventory`, `available`)},
	}

	quantityPattern = regexp.MustCompile(`(?i)(\d+)\s+(?:products?|items?|users?)`)

	chunkSkipTerms = []string{"product", "category", "user", "database", "list", "all", "email", "phone"}
)

// Extractor pulls product, supplier, field and quantity entities out of a
// single message. It keeps no state between calls.
type Extractor struct {
	parser nlp.Parser
}

func New(parser nlp.Parser) *Extractor {
	return &Extractor{parser: parser}
}

func (e *Extractor) Extract(text string) Entities {
	var entities Entities

	entities.ProductName = firstCapture(searchVerbPatterns, text)
	entities.SupplierName = firstCapture(supplierPatterns, text)

	if name := firstCapture(pricePatterns, text); name != "" {
		entities.ProductName = name
	}

	entities.RequestedField = requestedField(text)

	if match := quantityPattern.FindStringSubmatch(text); match != nil {
		if quantity, err := strconv.Atoi(match[1]); err == nil {
			entities.Quantity = &quantity
		}
	}

	if entities.ProductName == "" && entities.SupplierName == "" && e.parser != nil {
		e.fromNounChunks(text, &entities)
	}

	return entities
}

func (e *Extractor) fromNounChunks(text string, entities *Entities) {
	for _, chunk := range e.parser.NounChunks(text) {
		if containsAny(strings.ToLower(chunk.Text), chunkSkipTerms) {
			continue
		}

		if chunk.HasProperNoun() {
			entities.SupplierName = chunk.Text
		} else {
			entities.ProductName = chunk.Text
		}
		return
	}
}

func requestedField(text string) Field {
	for _, candidate := range requestedFieldPatterns {
		for _, re := range candidate.patterns {
			if re.MatchString(text) {
				return candidate.field
			}
		}
	}
	return ""
}

// firstCapture returns the trimmed first group of the first pattern that
// yields a non-empty capture.
func firstCapture(patterns []*regexp.Regexp, text string) string {
	for _, re := range patterns {
		match := re.FindStringSubmatch(text)
		if match == nil {
			continue
		}
		if captured := strings.TrimSpace(match[1]); captured != "" {
			return captured
		}
	}
	return ""
}

func containsAny(text string, terms []string) bool {
	for _, term := range terms {
		if strings.Contains(text, term) {
			return true
		}
	}
	return false
}

func compileAll(exprs ...string) []*regexp.Regexp {
	compiled := make([]*regexp.Regexp, 0, len(exprs))
	for _, expr := range exprs {
		compiled = append(compiled, regexp.MustCompile("(?i)"+expr))
	}
	return compiled
}
