package intent

import (
	"regexp"
	"strings"
)

// Consulted only when no library pattern matched.
var (
	contactInfoFallback = regexp.MustCompile(`(email|phone|contact|address)\s+(?:of|for|details)`)
	priceFallback       = regexp.MustCompile(`(price|cost|how much)`)
)

type Classifier struct {
	library *Library
}

func NewClassifier(library *Library) *Classifier {
	return &Classifier{library: library}
}

// Classify maps text to the first matching intent of the library, then to
// the contact-info and price heuristics, and finally to Unknown. The result
// depends only on text.
func (c *Classifier) Classify(text string) Intent {
	lowered := strings.ToLower(text)

	if matched, ok := c.library.Match(lowered); ok {
		return matched
	}

	if contactInfoFallback.MatchString(lowered) {
		return SupplierContact
	}

	if priceFallback.MatchString(lowered) {
		return ProductPrice
	}

	return Unknown
}
