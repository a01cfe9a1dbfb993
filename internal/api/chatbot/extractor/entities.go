package extractor

import "strconv"

// Field names the attribute a message asks for.
type Field string

const (
	FieldEmail    Field = "email"
	FieldPhone    Field = "phone"
	FieldAddress  Field = "address"
	FieldPrice    Field = "price"
	FieldStock    Field = "stock"
	FieldCategory Field = "category"
)

func (f Field) String() string {
	return string(f)
}

// Entities holds at most one value of each kind. Empty strings and a nil
// Quantity mean the kind was not found.
type Entities struct {
	ProductName    string
	SupplierName   string
	RequestedField Field
	Quantity       *int
}

type Labeled struct {
	Label string
	Text  string
}

func (e Entities) HasProductName() bool {
	return e.ProductName != ""
}

func (e Entities) HasSupplierName() bool {
	return e.SupplierName != ""
}

// List flattens the entities into label/text pairs in a fixed order.
func (e Entities) List() []Labeled {
	list := make([]Labeled, 0, 4)

	if e.ProductName != "" {
		list = append(list, Labeled{Label: "product_name", Text: e.ProductName})
	}
	if e.SupplierName != "" {
		list = append(list, Labeled{Label: "supplier_name", Text: e.SupplierName})
	}
	if e.RequestedField != "" {
		list = append(list, Labeled{Label: "requested_field", Text: e.RequestedField.String()})
	}
	if e.Quantity != nil {
		list = append(list, Labeled{Label: "quantity", Text: strconv.Itoa(*e.Quantity)})
	}

	return list
}
