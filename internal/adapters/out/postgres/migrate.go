package postgres

import (
	"pizzeria/internal/adapters/out/postgres/orderrepo"
	"pizzeria/internal/adapters/out/postgres/pizzarepo"

	"gorm.io/gorm"
)

// Migrate creates or updates the schema for every persistence DTO.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.CustomerDTO{},
		&orderrepo.PizzaItemDTO{},
		&pizzarepo.PizzaDTO{},
	)
}
