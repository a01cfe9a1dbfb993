package responder

import (
	"context"
	"errors"

	"CatalogChatbot/internal/api/chatbot/extractor"
	"CatalogChatbot/internal/api/chatbot/intent"
)

const (
	defaultListLimit = 10
	maxListLimit     = 100
)

type turn struct {
	text     string
	intent   intent.Intent
	entities extractor.Entities
}

type rule struct {
	name   string
	match  func(t turn) bool
	handle func(ctx context.Context, store CatalogStore, t turn) (string, error)
}

func whenIntent(i intent.Intent) func(turn) bool {
	return func(t turn) bool {
		return t.intent == i
	}
}

// Evaluated top to bottom; the first rule whose match returns true answers.
var rules = []rule{
	{
		name: "supplier_attribute",
		match: func(t turn) bool {
			return t.intent == intent.SupplierContact && t.entities.HasSupplierName()
		},
		handle: supplierAttribute,
	},
	{
		name: "product_attribute",
		match: func(t turn) bool {
			return t.intent == intent.ProductPrice && t.entities.HasProductName()
		},
		handle: productAttribute,
	},
	{name: "list_products", match: whenIntent(intent.ListProducts), handle: listProducts},
	{name: "product_categories", match: whenIntent(intent.ProductCategories), handle: listCategories},
	{name: "out_of_stock", match: whenIntent(intent.OutOfStock), handle: listOutOfStock},
	{name: "product_count", match: whenIntent(intent.ProductCount), handle: countProducts},
	{name: "brands", match: whenIntent(intent.Brands), handle: listBrands},
	{name: "list_users", match: whenIntent(intent.ListUsers), handle: listUsers},
	{name: "user_permissions", match: whenIntent(intent.UserPermissions), handle: listUserPermissions},
	{name: "suppliers", match: whenIntent(intent.Suppliers), handle: listSuppliers},
	{
		name: "product_search",
		match: func(t turn) bool {
			return t.intent == intent.ProductSearch && t.entities.HasProductName()
		},
		handle: searchProducts,
	},
	{name: "database_info", match: whenIntent(intent.DatabaseInfo), handle: databaseOverview},
	{
		name:  "help",
		match: whenIntent(intent.Help),
		handle: func(context.Context, CatalogStore, turn) (string, error) {
			return helpText, nil
		},
	},
	{
		name: "implicit_product_search",
		match: func(t turn) bool {
			return t.entities.HasProductName()
		},
		handle: searchProducts,
	},
	{
		name: "implicit_supplier_lookup",
		match: func(t turn) bool {
			return t.entities.HasSupplierName()
		},
		handle: lookupSuppliers,
	},
	{
		name:  "echo",
		match: func(turn) bool { return true },
		handle: func(_ context.Context, _ CatalogStore, t turn) (string, error) {
			return echoText(t.text), nil
		},
	},
}

func supplierAttribute(ctx context.Context, store CatalogStore, t turn) (string, error) {
	name := t.entities.SupplierName
	field := t.entities.RequestedField
	if field == "" {
		field = extractor.FieldEmail
	}

	value, err := ResolveSupplierAttribute(ctx, store, name, field)
	if errors.Is(err, ErrAttributeNotFound) || errors.Is(err, ErrUnsupportedField) {
		return supplierApologyText(name, field), nil
	}
	if err != nil {
		return "", err
	}

	return supplierAttributeText(name, field, value), nil
}

func productAttribute(ctx context.Context, store CatalogStore, t turn) (string, error) {
	name := t.entities.ProductName
	field := t.entities.RequestedField
	if field == "" {
		field = extractor.FieldPrice
	}

	value, err := ResolveProductAttribute(ctx, store, name, field)
	if errors.Is(err, ErrAttributeNotFound) || errors.Is(err, ErrUnsupportedField) {
		return productApologyText(name, field), nil
	}
	if err != nil {
		return "", err
	}

	return productAttributeText(name, field, value), nil
}

func listProducts(ctx context.Context, store CatalogStore, t turn) (string, error) {
	products, err := store.ListProducts(ctx, listLimit(t.entities))
	if err != nil {
		return "", err
	}
	if len(products) == 0 {
		return noProducts, nil
	}
	return productListHeader + bulletList(products, productLine), nil
}

func listCategories(ctx context.Context, store CatalogStore, _ turn) (string, error) {
	categories, err := store.ListCategories(ctx)
	if err != nil {
		return "", err
	}
	if len(categories) == 0 {
		return noCategories, nil
	}
	return categoryListHeader + bulletList(categories, categoryLine), nil
}

func listOutOfStock(ctx context.Context, store CatalogStore, _ turn) (string, error) {
	products, err := store.ListOutOfStock(ctx)
	if err != nil {
		return "", err
	}
	if len(products) == 0 {
		return allInStock, nil
	}
	return outOfStockHeader + bulletList(products, productNameLine), nil
}

func countProducts(ctx context.Context, store CatalogStore, _ turn) (string, error) {
	total, err := store.CountProducts(ctx)
	if err != nil {
		return "", err
	}

	inStock, err := store.CountInStock(ctx)
	if err != nil {
		return "", err
	}

	return productCountText(total, inStock), nil
}

func listBrands(ctx context.Context, store CatalogStore, _ turn) (string, error) {
	brands, err := store.ListBrands(ctx)
	if err != nil {
		return "", err
	}
	if len(brands) == 0 {
		return noBrands, nil
	}
	return brandListHeader + bulletList(brands, brandLine), nil
}

func listUsers(ctx context.Context, store CatalogStore, t turn) (string, error) {
	users, err := store.ListUsers(ctx, listLimit(t.entities))
	if err != nil {
		return "", err
	}
	if len(users) == 0 {
		return noUsers, nil
	}
	return userListHeader + bulletList(users, userLine), nil
}

func listUserPermissions(ctx context.Context, store CatalogStore, _ turn) (string, error) {
	permissions, err := store.ListUserPermissions(ctx, nil)
	if err != nil {
		return "", err
	}
	if len(permissions) == 0 {
		return noUserPermissions, nil
	}
	return permissionsHeader + bulletList(permissions, permissionLine), nil
}

func listSuppliers(ctx context.Context, store CatalogStore, _ turn) (string, error) {
	suppliers, err := store.ListSuppliers(ctx)
	if err != nil {
		return "", err
	}
	if len(suppliers) == 0 {
		return noSuppliers, nil
	}
	return supplierListHeader + bulletList(suppliers, supplierLine), nil
}

func searchProducts(ctx context.Context, store CatalogStore, t turn) (string, error) {
	products, err := store.FindProductsByNameOrCategory(ctx, t.entities.ProductName)
	if err != nil {
		return "", err
	}
	return productMatchesText(t.entities.ProductName, products), nil
}

func lookupSuppliers(ctx context.Context, store CatalogStore, t turn) (string, error) {
	suppliers, err := store.FindSuppliersByName(ctx, t.entities.SupplierName)
	if err != nil {
		return "", err
	}
	return supplierMatchesText(t.entities.SupplierName, suppliers), nil
}

func databaseOverview(ctx context.Context, store CatalogStore, _ turn) (string, error) {
	counts, err := store.CountCatalog(ctx)
	if err != nil {
		return "", err
	}
	return databaseOverviewText(counts), nil
}

// listLimit uses a quantity entity ("show 5 products") as the row limit.
func listLimit(entities extractor.Entities) int {
	if entities.Quantity == nil {
		return defaultListLimit
	}

	limit := *entities.Quantity
	switch {
	case limit < 1:
		return 1
	case limit > maxListLimit:
		return maxListLimit
	}
	return limit
}
