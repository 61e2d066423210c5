package repository

import "gorm.io/gorm"

// Migrate creates or updates the schema for every table the repositories
// use. The row models stay private; this is the only migration entry point.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&userModel{},
		&orderModel{},
		&pendenciaModel{},
		&alertaModel{},
		&vehicleModel{},
		&savedFilterModel{},
	)
}
