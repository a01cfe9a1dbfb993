package responder

import (
	"context"

	"CatalogChatbot/internal/entity"
)

// CatalogStore is the read side of the catalog the generator answers from.
// Name lookups are case-insensitive substring matches and return records in
// primary-key order.
type CatalogStore interface {
	ListProducts(ctx context.Context, limit int) ([]entity.Product, error)
	ListCategories(ctx context.Context) ([]entity.Category, error)
	ListBrands(ctx context.Context) ([]entity.Brand, error)
	ListUsers(ctx context.Context, limit int) ([]entity.User, error)
	ListSuppliers(ctx context.Context) ([]entity.Supplier, error)
	CountProducts(ctx context.Context) (int, error)
	CountInStock(ctx context.Context) (int, error)
	ListOutOfStock(ctx context.Context) ([]entity.Product, error)
	ListUserPermissions(ctx context.Context, userID *int64) ([]entity.UserPermission, error)
	FindProductsByNameOrCategory(ctx context.Context, substr string) ([]entity.Product, error)
	FindSuppliersByName(ctx context.Context, substr string) ([]entity.Supplier, error)
	CountCatalog(ctx context.Context) (entity.CatalogCounts, error)
}
