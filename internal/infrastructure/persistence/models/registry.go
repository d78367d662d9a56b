package models

// Registry returns every persisted model in dependency order
func Registry() []interface{} {
	return []interface{}{
		&UserModel{},
		&ProductModel{},
		&CartItemModel{},
	}
}

// TableNames returns the table of every registered model, in Registry order
func TableNames() []string {
	return []string{
		UserModel{}.TableName(),
		ProductModel{}.TableName(),
		CartItemModel{}.TableName(),
	}
}
