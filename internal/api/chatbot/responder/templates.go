package responder

import (
	"fmt"
	"strings"

	"CatalogChatbot/internal/api/chatbot/extractor"
	"CatalogChatbot/internal/entity"
)

const helpText = "I can help you with information from our e-commerce database. Try asking:\n" +
	"- List all products\n" +
	"- Show product categories\n" +
	"- Show brands\n" +
	"- List all users\n" +
	"- Show out of stock products\n" +
	"- How many products do we have?\n" +
	"- Show user permissions\n" +
	"- Show suppliers\n" +
	"- Search for a specific product\n" +
	"- Give me the email id of supplier [Name]\n" +
	"- What's the price of [Product Name]?\n" +
	"- Get phone number of supplier [Name]"

const (
	noProducts         = "No products found in the database."
	noCategories       = "No product categories found in the database."
	allInStock         = "All products are currently in stock."
	noBrands           = "No brands found in the database."
	noUsers            = "No users found in the database."
	noUserPermissions  = "No user permissions found in the database."
	noSuppliers        = "No suppliers found in the database."
	productListHeader  = "Here are the products in our database:\n"
	categoryListHeader = "Here are the product categories:\n"
	outOfStockHeader   = "Out of stock products:\n"
	brandListHeader    = "Here are the brands in our database:\n"
	userListHeader     = "Here are the users in our system:\n"
	permissionsHeader  = "User permissions:\n"
	supplierListHeader = "Here are our suppliers:\n"
)

func bulletList[T any](items []T, line func(T) string) string {
	lines := make([]string, 0, len(items))
	for _, item := range items {
		lines = append(lines, line(item))
	}
	return strings.Join(lines, "\n")
}

func productLine(p entity.Product) string {
	return fmt.Sprintf("- %s: $%s, Stock: %d", p.Name, p.Price, p.Stock)
}

func productNameLine(p entity.Product) string {
	return "- " + p.Name
}

func categoryLine(c entity.Category) string {
	return fmt.Sprintf("- %s: %s", c.Name, c.Description)
}

func brandLine(b entity.Brand) string {
	return fmt.Sprintf("- %s: %s", b.Name, b.Description)
}

func userLine(u entity.User) string {
	return fmt.Sprintf("- %s (%s %s, %s)", u.Username, u.FirstName, u.LastName, u.Email)
}

func permissionLine(p entity.UserPermission) string {
	return fmt.Sprintf("- User %d, Module: %s, Rights: %s", p.UserID, p.ModuleName, p.Rights())
}

func supplierLine(s entity.Supplier) string {
	return fmt.Sprintf("- %s (Email: %s, Phone: %s)", s.Name, s.Email, s.Phone)
}

func supplierDetailLine(s entity.Supplier) string {
	return fmt.Sprintf("- Name: %s\n  Email: %s\n  Phone: %s\n  Address: %s", s.Name, s.Email, s.Phone, s.Address)
}

func supplierFieldLabel(field extractor.Field) string {
	switch field {
	case extractor.FieldEmail:
		return "email address"
	case extractor.FieldPhone:
		return "phone number"
	}
	return field.String()
}

func supplierAttributeText(name string, field extractor.Field, value string) string {
	return fmt.Sprintf("The %s of supplier %s is: %s", supplierFieldLabel(field), name, value)
}

func supplierApologyText(name string, field extractor.Field) string {
	return fmt.Sprintf("Sorry, I couldn't find the %s for supplier '%s'. Please check the name and try again.", field, name)
}

func productAttributeText(name string, field extractor.Field, value string) string {
	return fmt.Sprintf("The %s of %s is: %s", field, name, value)
}

func productApologyText(name string, field extractor.Field) string {
	return fmt.Sprintf("Sorry, I couldn't find the %s for product '%s'. Please check the name and try again.", field, name)
}

func productCountText(total, inStock int) string {
	return fmt.Sprintf("There are %d products in total, with %d currently in stock.", total, inStock)
}

func productMatchesText(name string, products []entity.Product) string {
	if len(products) == 0 {
		return fmt.Sprintf("No products found matching '%s'.", name)
	}
	return fmt.Sprintf("Found these products matching '%s':\n%s", name, bulletList(products, productLine))
}

func supplierMatchesText(name string, suppliers []entity.Supplier) string {
	if len(suppliers) == 0 {
		return fmt.Sprintf("No suppliers found matching '%s'.", name)
	}
	return fmt.Sprintf("Found supplier information for '%s':\n%s", name, bulletList(suppliers, supplierDetailLine))
}

func databaseOverviewText(counts entity.CatalogCounts) string {
	return fmt.Sprintf("Database overview:\n- %d products\n- %d product categories\n- %d brands\n- %d users\n- %d suppliers",
		counts.Products, counts.Categories, counts.Brands, counts.Users, counts.Suppliers)
}

func echoText(text string) string {
	return fmt.Sprintf("I received your message: '%s'. I can provide information about products, "+
		"categories, brands, users, and suppliers in our database. Type 'help' to see what I can do.", text)
}
