package chatbotRepository

import (
	"CatalogChatbot/internal/entity"
	"context"
	"database/sql"
)

type ProductDB struct {
	ID         int64          `db:"id"`
	Name       sql.NullString `db:"name"`
	Price      sql.NullString `db:"price"`
	Category   sql.NullString `db:"category"`
	Stock      sql.NullInt64  `db:"stock"`
	CategoryID sql.NullInt64  `db:"category_id"`
	CreatedAt  sql.NullTime   `db:"created_at"`
}

type CategoryDB struct {
	ID          int64          `db:"id"`
	Name        sql.NullString `db:"name"`
	Description sql.NullString `db:"description"`
}

type BrandDB struct {
	ID          int64          `db:"id"`
	Name        sql.NullString `db:"name"`
	Description sql.NullString `db:"description"`
}

type UserDB struct {
	ID        int64          `db:"id"`
	Username  sql.NullString `db:"username"`
	Email     sql.NullString `db:"email"`
	FirstName sql.NullString `db:"first_name"`
	LastName  sql.NullString `db:"last_name"`
	IsActive  sql.NullBool   `db:"is_active"`
}

type UserPermissionDB struct {
	ID         int64          `db:"id"`
	UserID     int64          `db:"user_id"`
	ModuleName sql.NullString `db:"module_name"`
	CanCreate  sql.NullBool   `db:"can_create"`
	CanRead    sql.NullBool   `db:"can_read"`
	CanUpdate  sql.NullBool   `db:"can_update"`
	CanDelete  sql.NullBool   `db:"can_delete"`
}

type SupplierDB struct {
	ID      int64          `db:"id"`
	Name    sql.NullString `db:"name"`
	Email   sql.NullString `db:"email"`
	Phone   sql.NullString `db:"phone"`
	Address sql.NullString `db:"address"`
}

func (r *catalogRepository) ListProducts(ctx context.Context, limit int) ([]entity.Product, error) {
	var rows []ProductDB
	argsKV := map[string]interface{}{
		"limit": limit,
	}

	if err := selectNamed(ctx, r.q, r.log, "ListProducts", &rows, queryListProducts, argsKV); err != nil {
		return nil, err
	}

	return r.makeProducts(rows), nil
}

func (r *catalogRepository) ListOutOfStock(ctx context.Context) ([]entity.Product, error) {
	var rows []ProductDB

	if err := selectNamed(ctx, r.q, r.log, "ListOutOfStock", &rows, queryListOutOfStock, map[string]interface{}{}); err != nil {
		return nil, err
	}

	return r.makeProducts(rows), nil
}

func (r *catalogRepository) FindProductsByNameOrCategory(ctx context.Context, substr string) ([]entity.Product, error) {
	var rows []ProductDB
	argsKV := map[string]interface{}{
		"pattern": containsPattern(substr),
	}

	if err := selectNamed(ctx, r.q, r.log, "FindProductsByNameOrCategory", &rows, queryFindProductsByNameOrCategory, argsKV); err != nil {
		return nil, err
	}

	return r.makeProducts(rows), nil
}

func (r *catalogRepository) CountProducts(ctx context.Context) (int, error) {
	var total int

	if err := scanNamed(ctx, r.q, r.log, "CountProducts", queryCountProducts, map[string]interface{}{}, &total); err != nil {
		return 0, err
	}

	return total, nil
}

func (r *catalogRepository) CountInStock(ctx context.Context) (int, error) {
	var total int

	if err := scanNamed(ctx, r.q, r.log, "CountInStock", queryCountInStock, map[string]interface{}{}, &total); err != nil {
		return 0, err
	}

	return total, nil
}

func (r *catalogRepository) ListCategories(ctx context.Context) ([]entity.Category, error) {
	var rows []CategoryDB

	if err := selectNamed(ctx, r.q, r.log, "ListCategories", &rows, queryListCategories, map[string]interface{}{}); err != nil {
		return nil, err
	}

	categories := make([]entity.Category, 0, len(rows))
	for _, row := range rows {
		categories = append(categories, entity.Category{
			ID:          row.ID,
			Name:        row.Name.String,
			Description: row.Description.String,
		})
	}

	return categories, nil
}

func (r *catalogRepository) ListBrands(ctx context.Context) ([]entity.Brand, error) {
	var rows []BrandDB

	if err := selectNamed(ctx, r.q, r.log, "ListBrands", &rows, queryListBrands, map[string]interface{}{}); err != nil {
		return nil, err
	}

	brands := make([]entity.Brand, 0, len(rows))
	for _, row := range rows {
		brands = append(brands, entity.Brand{
			ID:          row.ID,
			Name:        row.Name.String,
			Description: row.Description.String,
		})
	}

	return brands, nil
}

func (r *catalogRepository) ListUsers(ctx context.Context, limit int) ([]entity.User, error) {
	var rows []UserDB
	argsKV := map[string]interface{}{
		"limit": limit,
	}

	if err := selectNamed(ctx, r.q, r.log, "ListUsers", &rows, queryListUsers, argsKV); err != nil {
		return nil, err
	}

	users := make([]entity.User, 0, len(rows))
	for _, row := range rows {
		users = append(users, entity.User{
			ID:        row.ID,
			Username:  row.Username.String,
			Email:     row.Email.String,
			FirstName: row.FirstName.String,
			LastName:  row.LastName.String,
			IsActive:  row.IsActive.Bool,
		})
	}

	return users, nil
}

// ListUserPermissions lists every permission row, or only those of userID
// when it is not nil.
func (r *catalogRepository) ListUserPermissions(ctx context.Context, userID *int64) ([]entity.UserPermission, error) {
	var rows []UserPermissionDB

	query := queryListUserPermissions
	argsKV := map[string]interface{}{}
	if userID != nil {
		query = queryListUserPermissionsByUser
		argsKV["user_id"] = *userID
	}

	if err := selectNamed(ctx, r.q, r.log, "ListUserPermissions", &rows, query, argsKV); err != nil {
		return nil, err
	}

	permissions := make([]entity.UserPermission, 0, len(rows))
	for _, row := range rows {
		permissions = append(permissions, entity.UserPermission{
			ID:         row.ID,
			UserID:     row.UserID,
			ModuleName: row.ModuleName.String,
			CanCreate:  row.CanCreate.Bool,
			CanRead:    row.CanRead.Bool,
			CanUpdate:  row.CanUpdate.Bool,
			CanDelete:  row.CanDelete.Bool,
		})
	}

	return permissions, nil
}

func (r *catalogRepository) ListSuppliers(ctx context.Context) ([]entity.Supplier, error) {
	var rows []SupplierDB

	if err := selectNamed(ctx, r.q, r.log, "ListSuppliers", &rows, queryListSuppliers, map[string]interface{}{}); err != nil {
		return nil, err
	}

	return r.makeSuppliers(rows), nil
}

func (r *catalogRepository) FindSuppliersByName(ctx context.Context, substr string) ([]entity.Supplier, error) {
	var rows []SupplierDB
	argsKV := map[string]interface{}{
		"pattern": containsPattern(substr),
	}

	if err := selectNamed(ctx, r.q, r.log, "FindSuppliersByName", &rows, queryFindSuppliersByName, argsKV); err != nil {
		return nil, err
	}

	return r.makeSuppliers(rows), nil
}

func (r *catalogRepository) CountCatalog(ctx context.Context) (entity.CatalogCounts, error) {
	var counts entity.CatalogCounts

	err := scanNamed(ctx, r.q, r.log, "CountCatalog", queryCountCatalog, map[string]interface{}{},
		&counts.Products, &counts.Categories, &counts.Brands, &counts.Users, &counts.Suppliers)
	if err != nil {
		return entity.CatalogCounts{}, err
	}

	return counts, nil
}

func (r *catalogRepository) makeProducts(rows []ProductDB) []entity.Product {
	products := make([]entity.Product, 0, len(rows))
	for _, row := range rows {
		products = append(products, entity.Product{
			ID:         row.ID,
			Name:       row.Name.String,
			Price:      row.Price.String,
			Category:   row.Category.String,
			Stock:      int(row.Stock.Int64),
			CategoryID: row.CategoryID.Int64,
			CreatedAt:  row.CreatedAt.Time,
		})
	}
	return products
}

func (r *catalogRepository) makeSuppliers(rows []SupplierDB) []entity.Supplier {
	suppliers := make([]entity.Supplier, 0, len(rows))
	for _, row := range rows {
		suppliers = append(suppliers, entity.Supplier{
			ID:      row.ID,
			Name:    row.Name.String,
			Email:   row.Email.String,
			Phone:   row.Phone.String,
			Address: row.Address.String,
		})
	}
	return suppliers
}
