package responder

import (
	"context"

	"CatalogChatbot/internal/entity"
)

type fakeStore struct {
	products    []entity.Product
	outOfStock  []entity.Product
	categories  []entity.Category
	brands      []entity.Brand
	users       []entity.User
	permissions []entity.UserPermission
	suppliers   []entity.Supplier
	total       int
	inStock     int
	counts      entity.CatalogCounts
	err         error

	calls      []string
	lastLimit  int
	lastSubstr string
}

func (s *fakeStore) record(call string) error {
	s.calls = append(s.calls, call)
	return s.err
}

func (s *fakeStore) ListProducts(_ context.Context, limit int) ([]entity.Product, error) {
	s.lastLimit = limit
	return s.products, s.record("ListProducts")
}

func (s *fakeStore) ListCategories(context.Context) ([]entity.Category, error) {
	return s.categories, s.record("ListCategories")
}

func (s *fakeStore) ListBrands(context.Context) ([]entity.Brand, error) {
	return s.brands, s.record("ListBrands")
}

func (s *fakeStore) ListUsers(_ context.Context, limit int) ([]entity.User, error) {
	s.lastLimit = limit
	return s.users, s.record("ListUsers")
}

func (s *fakeStore) ListSuppliers(context.Context) ([]entity.Supplier, error) {
	return s.suppliers, s.record("ListSuppliers")
}

func (s *fakeStore) CountProducts(context.Context) (int, error) {
	return s.total, s.record("CountProducts")
}

func (s *fakeStore) CountInStock(context.Context) (int, error) {
	return s.inStock, s.record("CountInStock")
}

func (s *fakeStore) ListOutOfStock(context.Context) ([]entity.Product, error) {
	return s.outOfStock, s.record("ListOutOfStock")
}

func (s *fakeStore) ListUserPermissions(context.Context, *int64) ([]entity.UserPermission, error) {
	return s.permissions, s.record("ListUserPermissions")
}

func (s *fakeStore) FindProductsByNameOrCategory(_ context.Context, substr string) ([]entity.Product, error) {
	s.lastSubstr = substr
	return s.products, s.record("FindProductsByNameOrCategory")
}

func (s *fakeStore) FindSuppliersByName(_ context.Context, substr string) ([]entity.Supplier, error) {
	s.lastSubstr = substr
	return s.suppliers, s.record("FindSuppliersByName")
}

func (s *fakeStore) CountCatalog(context.Context) (entity.CatalogCounts, error) {
	return s.counts, s.record("CountCatalog")
}
