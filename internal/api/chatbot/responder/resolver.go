package responder

import (
	"context"
	"errors"
	"strconv"

	"CatalogChatbot/internal/api/chatbot/extractor"
)

var (
	ErrAttributeNotFound = errors.New("attribute not found")
	ErrUnsupportedField  = errors.New("unsupported field")
)

// ResolveProductAttribute returns the price, stock or category of the first
// product whose name or category contains name.
func ResolveProductAttribute(ctx context.Context, store CatalogStore, name string, field extractor.Field) (string, error) {
	switch field {
	case extractor.FieldPrice, extractor.FieldStock, extractor.FieldCategory:
	default:
		return "", ErrUnsupportedField
	}

	products, err := store.FindProductsByNameOrCategory(ctx, name)
	if err != nil {
		return "", err
	}
	if len(products) == 0 {
		return "", ErrAttributeNotFound
	}

	product := products[0]

	var value string
	switch field {
	case extractor.FieldPrice:
		value = product.Price
	case extractor.FieldStock:
		value = strconv.Itoa(product.Stock)
	case extractor.FieldCategory:
		value = product.Category
	}

	if value == "" {
		return "", ErrAttributeNotFound
	}
	return value, nil
}

// ResolveSupplierAttribute returns the email, phone or address of the first
// supplier whose name contains name.
func ResolveSupplierAttribute(ctx context.Context, store CatalogStore, name string, field extractor.Field) (string, error) {
	switch field {
	case extractor.FieldEmail, extractor.FieldPhone, extractor.FieldAddress:
	default:
		return "", ErrUnsupportedField
	}

	suppliers, err := store.FindSuppliersByName(ctx, name)
	if err != nil {
		return "", err
	}
	if len(suppliers) == 0 {
		return "", ErrAttributeNotFound
	}

	supplier := suppliers[0]

	var value string
	switch field {
	case extractor.FieldEmail:
		value = supplier.Email
	case extractor.FieldPhone:
		value = supplier.Phone
	case extractor.FieldAddress:
		value = supplier.Address
	}

	if value == "" {
		return "", ErrAttributeNotFound
	}
	return value, nil
}
