package chatbotRepository

const (
	queryListProducts = `
		SELECT
			id,
			name,
			CAST(price AS TEXT) AS price,
			category,
			stock,
			category_id,
			created_at
		FROM products
		ORDER BY id ASC
		LIMIT :limit
	`

	queryListOutOfStock = `
		SELECT
			id,
			name,
			CAST(price AS TEXT) AS price,
			category,
			stock,
			category_id,
			created_at
		FROM products
		WHERE stock = 0
		ORDER BY id ASC
	`

	queryFindProductsByNameOrCategory = `
		SELECT
			id,
			name,
			CAST(price AS TEXT) AS price,
			category,
			stock,
			category_id,
			created_at
		FROM products
		WHERE name ILIKE :pattern ESCAPE '\'
			OR category ILIKE :pattern ESCAPE '\'
		ORDER BY id ASC
	`

	queryCountProducts = `
		SELECT COUNT(*)
		FROM products
	`

	queryCountInStock = `
		SELECT COUNT(*)
		FROM products
		WHERE stock > 0
	`

	queryListCategories = `
		SELECT
			id,
			name,
			description
		FROM product_categories
		ORDER BY id ASC
	`

	queryListBrands = `
		SELECT
			id,
			name,
			description
		FROM brands
		ORDER BY id ASC
	`

	queryListUsers = `
		SELECT
			id,
			username,
			email,
			first_name,
			last_name,
			is_active
		FROM users
		ORDER BY id ASC
		LIMIT :limit
	`

	queryListUserPermissions = `
		SELECT
			id,
			user_id,
			module_name,
			can_create,
			can_read,
			can_update,
			can_delete
		FROM user_permissions
		ORDER BY id ASC
	`

	queryListUserPermissionsByUser = `
		SELECT
			id,
			user_id,
			module_name,
			can_create,
			can_read,
			can_update,
			can_delete
		FROM user_permissions
		WHERE user_id = :user_id
		ORDER BY id ASC
	`

	queryListSuppliers = `
		SELECT
			id,
			name,
			email,
			phone,
			address
		FROM suppliers
		ORDER BY id ASC
	`

	queryFindSuppliersByName = `
		SELECT
			id,
			name,
			email,
			phone,
			address
		FROM suppliers
		WHERE name ILIKE :pattern ESCAPE '\'
		ORDER BY id ASC
	`

	queryCountCatalog = `
		SELECT
			(SELECT COUNT(*) FROM products) AS products,
			(SELECT COUNT(*) FROM product_categories) AS categories,
			(SELECT COUNT(*) FROM brands) AS brands,
			(SELECT COUNT(*) FROM users) AS users,
			(SELECT COUNT(*) FROM suppliers) AS suppliers
	`

	queryCreateMessage = `
		INSERT INTO messages (
			content,
			is_user
		) VALUES (
			:content,
			:is_user
		)
		RETURNING id, created_at
	`

	queryGetRecentMessages = `
		SELECT
			id,
			content,
			is_user,
			created_at
		FROM messages
		ORDER BY created_at DESC, id DESC
		LIMIT :limit
	`

	queryGetTopSuggestions = `
		SELECT
			id,
			content,
			usage_count
		FROM suggestions
		ORDER BY usage_count DESC, id ASC
		LIMIT :limit
	`

	queryCreateSuggestion = `
		INSERT INTO suggestions (
			content
		) VALUES (
			:content
		)
		RETURNING id, usage_count
	`

	querySeedSuggestion = `
		INSERT INTO suggestions (
			content
		) VALUES (
			:content
		)
		ON CONFLICT (content) DO NOTHING
	`

	queryIncrementSuggestionUsage = `
		UPDATE suggestions
		SET usage_count = usage_count + 1
		WHERE content = :content
	`
)
