package entity

import "time"

type Product struct {
	ID         int64     `json:"id"`
	Name       string    `json:"name"`
	Price      string    `json:"price"`
	Category   string    `json:"category"`
	Stock      int       `json:"stock"`
	CategoryID int64     `json:"category_id"`
	CreatedAt  time.Time `json:"created_at"`
}

type Category struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

type Brand struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

type User struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	IsActive  bool   `json:"is_active"`
}

type UserPermission struct {
	ID         int64  `json:"id"`
	UserID     int64  `json:"user_id"`
	ModuleName string `json:"module_name"`
	CanCreate  bool   `json:"can_create"`
	CanRead    bool   `json:"can_read"`
	CanUpdate  bool   `json:"can_update"`
	CanDelete  bool   `json:"can_delete"`
}

// Rights renders the permission flags as a CRUD mask, "-" for a missing right.
func (p UserPermission) Rights() string {
	flags := []struct {
		set    bool
		letter byte
	}{
		{p.CanCreate, 'C'},
		{p.CanRead, 'R'},
		{p.CanUpdate, 'U'},
		{p.CanDelete, 'D'},
	}

	mask := make([]byte, 0, len(flags))
	for _, flag := range flags {
		if flag.set {
			mask = append(mask, flag.letter)
		} else {
			mask = append(mask, '-')
		}
	}
	return string(mask)
}

type Supplier struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

type CatalogCounts struct {
	Products   int `json:"products"`
	Categories int `json:"categories"`
	Brands     int `json:"brands"`
	Users      int `json:"users"`
	Suppliers  int `json:"suppliers"`
}
