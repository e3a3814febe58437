package orderrepo

import (
	"context"
	"errors"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/model/order"
	"pizzeria/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderRepository implements OrderRepository using GORM. The aggregate's
// three tables are always written together; callers wrap multi-row writes in
// a unit of work so they land in one transaction.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order aggregate: the order row, the customer record and
// every line item.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	orderDTO, customerDTO, itemDTOs := fromDomain(aggregate)

	if err := r.db.WithContext(ctx).Create(&orderDTO).Error; err != nil {
		return err
	}
	if err := r.db.WithContext(ctx).Create(&customerDTO).Error; err != nil {
		return err
	}
	if len(itemDTOs) > 0 {
		if err := r.db.WithContext(ctx).Create(&itemDTOs).Error; err != nil {
			return err
		}
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves the order row's mutable fields. Line items and the customer
// record are left alone; use ReplaceItems for item changes.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	orderDTO, _, _ := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ?", orderDTO.ID).
		Select("status", "delivery").
		Updates(&orderDTO)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// ReplaceItems deletes every stored line item of the order and inserts the
// aggregate's current item set. Full replacement, never a merge.
func (r *GormOrderRepository) ReplaceItems(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	orderID := aggregate.ID().Bytes()
	if err := r.db.WithContext(ctx).
		Where("order_id = ?", orderID).
		Delete(&PizzaItemDTO{}).Error; err != nil {
		return err
	}

	itemDTOs := itemsFromDomain(aggregate)
	if len(itemDTOs) > 0 {
		if err := r.db.WithContext(ctx).Create(&itemDTOs).Error; err != nil {
			return err
		}
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves the complete aggregate by order id.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var orderDTO OrderDTO
	if err := r.db.WithContext(ctx).First(&orderDTO, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	var customerDTO CustomerDTO
	if err := r.db.WithContext(ctx).First(&customerDTO, "order_id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("customer for order", id.String())
		}
		return nil, err
	}

	var itemDTOs []PizzaItemDTO
	if err := r.db.WithContext(ctx).
		Order("created_at").
		Find(&itemDTOs, "order_id = ?", id.Bytes()).Error; err != nil {
		return nil, err
	}

	return toDomain(orderDTO, customerDTO, itemDTOs)
}

// Delete removes the order together with its customer record and line items.
// Children go first so the delete never leaves orphaned rows behind.
func (r *GormOrderRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	orderID := id.Bytes()
	if err := r.db.WithContext(ctx).
		Where("order_id = ?", orderID).
		Delete(&PizzaItemDTO{}).Error; err != nil {
		return err
	}
	if err := r.db.WithContext(ctx).
		Where("order_id = ?", orderID).
		Delete(&CustomerDTO{}).Error; err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Where("id = ?", orderID).Delete(&OrderDTO{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order", id.String())
	}

	return nil
}
