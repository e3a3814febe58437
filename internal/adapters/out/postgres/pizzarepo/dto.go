// Package pizzarepo provides the data transfer object and repository for the
// pizza catalog.
package pizzarepo

import (
	"time"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/model/pizza"

	"github.com/google/uuid"
)

// PizzaDTO represents the database structure for catalog entries. The
// unique index on name backs up the application-level duplicate check
// against concurrent inserts.
type PizzaDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"not null;uniqueIndex"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName specifies the database table name for catalog entries.
func (PizzaDTO) TableName() string {
	return "pizzas"
}

func fromDomain(aggregate *pizza.Pizza) PizzaDTO {
	return PizzaDTO{
		ID:   aggregate.ID().Bytes(),
		Name: aggregate.Name(),
	}
}

func toDomain(dto PizzaDTO) (*pizza.Pizza, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return pizza.RestorePizza(id, dto.Name)
}
