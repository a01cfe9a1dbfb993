package extractor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"CatalogChatbot/pkg/nlp"
)

type countingParser struct {
	nlp.Parser
	calls int
}

func (p *countingParser) NounChunks(text string) []nlp.Chunk {
	p.calls++
	return p.Parser.NounChunks(text)
}

func intPtr(v int) *int {
	return &v
}

func TestExtractor_Extract(t *testing.T) {
	extractor := New(nlp.NewEngine())

	tests := []struct {
		name     string
		text     string
		expected Entities
	}{
		{
			name:     "search verb",
			text:     "find wireless mouse",
			expected: Entities{ProductName: "wireless mouse"},
		},
		{
			name:     "search for",
			text:     "search for Dell monitors please",
			expected: Entities{ProductName: "Dell monitors please"},
		},
		{
			name: "price question overwrites search verb",
			text: "find a laptop, what's the price of Laptop XPS 15",
			expected: Entities{
				ProductName:    "Laptop XPS 15",
				RequestedField: FieldPrice,
			},
		},
		{
			name: "price question with trailing question mark",
			text: "What's the price of Laptop XPS 15?",
			expected: Entities{
				ProductName:    "Laptop XPS 15",
				RequestedField: FieldPrice,
			},
		},
		{
			name:     "accented search verb",
			text:     "find crème brûlée torch",
			expected: Entities{ProductName: "crème brûlée torch"},
		},
		{
			name:     "accented search for",
			text:     "search for Müller blender",
			expected: Entities{ProductName: "Müller blender"},
		},
		{
			name: "accented price question",
			text: "What's the price of Café Latte Maker?",
			expected: Entities{
				ProductName:    "Café Latte Maker",
				RequestedField: FieldPrice,
			},
		},
		{
			name: "accented supplier",
			text: "Give email id of supplier Zoë Brontë",
			expected: Entities{
				SupplierName:   "Zoë Brontë",
				RequestedField: FieldEmail,
			},
		},
		{
			name: "supplier before field keyword",
			text: "Give email id of supplier Avantika Patil",
			expected: Entities{
				SupplierName:   "Avantika Patil",
				RequestedField: FieldEmail,
			},
		},
		{
			name: "phone number of supplier",
			text: "Get phone number of supplier Tech Solutions",
			expected: Entities{
				SupplierName:   "Tech Solutions",
				RequestedField: FieldPhone,
			},
		},
		{
			name: "field of bare name",
			text: "What is the address of Globex?",
			expected: Entities{
				SupplierName:   "Globex",
				RequestedField: FieldAddress,
			},
		},
		{
			name: "stock field",
			text: "Is the old desk available",
			expected: Entities{
				ProductName:    "the old desk",
				RequestedField: FieldStock,
			},
		},
		{
			name:     "quantity",
			text:     "Show me 5 products",
			expected: Entities{Quantity: intPtr(5)},
		},
		{
			name:     "proper noun chunk becomes supplier",
			text:     "Tell me about Dell laptops",
			expected: Entities{SupplierName: "Dell laptops"},
		},
		{
			name:     "common noun chunk becomes product",
			text:     "I want the cheapest wireless printer",
			expected: Entities{ProductName: "the cheapest wireless printer"},
		},
		{
			name:     "skip terms",
			text:     "list all products",
			expected: Entities{},
		},
		{
			name:     "empty capture is ignored",
			text:     "find   ",
			expected: Entities{},
		},
		{
			name:     "nothing recognisable",
			text:     "xyzzy plugh",
			expected: Entities{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, extractor.Extract(tt.text))
		})
	}
}

func TestExtractor_Extract_IsIdempotent(t *testing.T) {
	extractor := New(nlp.Default())

	text := "Give email id of supplier Avantika Patil"
	assert.Equal(t, extractor.Extract(text), extractor.Extract(text))
}

func TestExtractor_NounChunksOnlyWithoutNames(t *testing.T) {
	parser := &countingParser{Parser: nlp.NewEngine()}
	extractor := New(parser)

	extractor.Extract("find wireless mouse")
	extractor.Extract("Give email id of supplier Avantika Patil")
	assert.Equal(t, 0, parser.calls)

	extractor.Extract("I want the cheapest wireless printer")
	assert.Equal(t, 1, parser.calls)
}

func TestExtractor_WithoutParser(t *testing.T) {
	extractor := New(nil)

	entities := extractor.Extract("I want the cheapest wireless printer")
	assert.Equal(t, Entities{}, entities)
}

func TestEntities_List(t *testing.T) {
	entities := Entities{
		ProductName:    "Laptop XPS 15",
		SupplierName:   "Acme",
		RequestedField: FieldPrice,
		Quantity:       intPtr(3),
	}

	list := entities.List()
	require.Len(t, list, 4)
	assert.Equal(t, []Labeled{
		{Label: "product_name", Text: "Laptop XPS 15"},
		{Label: "supplier_name", Text: "Acme"},
		{Label: "requested_field", Text: "price"},
		{Label: "quantity", Text: "3"},
	}, list)

	assert.Empty(t, Entities{}.List())
}
