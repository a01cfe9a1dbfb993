package intent

type Intent string

const (
	ListProducts        Intent = "list_products"
	ProductCategories   Intent = "product_categories"
	OutOfStock          Intent = "out_of_stock"
	ProductCount        Intent = "product_count"
	Brands              Intent = "brands"
	ProductSearch       Intent = "product_search"
	ProductPrice        Intent = "product_price"
	ProductDetails      Intent = "product_details"
	InventoryManagement Intent = "inventory_management"
	StockAlerts         Intent = "stock_alerts"
	ListUsers           Intent = "list_users"
	UserPermissions     Intent = "user_permissions"
	UserManagement      Intent = "user_management"
	Suppliers           Intent = "suppliers"
	SupplierContact     Intent = "supplier_contact"
	SupplierOrders      Intent = "supplier_orders"
	DatabaseInfo        Intent = "database_info"
	Help                Intent = "help"
	Unknown             Intent = "unknown"
)

var known = map[Intent]struct{}{
	ListProducts:        {},
	ProductCategories:   {},
	OutOfStock:          {},
	ProductCount:        {},
	Brands:              {},
	ProductSearch:       {},
	ProductPrice:        {},
	ProductDetails:      {},
	InventoryManagement: {},
	StockAlerts:         {},
	ListUsers:           {},
	UserPermissions:     {},
	UserManagement:      {},
	Suppliers:           {},
	SupplierContact:     {},
	SupplierOrders:      {},
	DatabaseInfo:        {},
	Help:                {},
}

// IsKnown reports whether i belongs to the closed set a pattern library may
// declare. Unknown is the classifier's sentinel and is not declarable.
func (i Intent) IsKnown() bool {
	_, ok := known[i]
	return ok
}

func (i Intent) String() string {
	return string(i)
}
