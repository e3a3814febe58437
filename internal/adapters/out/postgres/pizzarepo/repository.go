package pizzarepo

import (
	"context"
	"errors"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/model/pizza"
	"pizzeria/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// uniqueViolation is the Postgres error code for unique constraint breaches.
const uniqueViolation = "23505"

// isUniqueViolation classifies driver errors. Connections opened through
// database/sql report *pq.Error; connections opened through the gorm driver
// directly report *pgconn.PgError.
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && string(pqErr.Code) == uniqueViolation {
		return true
	}

	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}

// ErrDuplicateName indicates an insert collided with an existing catalog
// entry of the same name.
var ErrDuplicateName = errors.New("pizza name already exists")

// GormPizzaRepository implements PizzaRepository using GORM.
type GormPizzaRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormPizzaRepository creates a new GORM pizza catalog repository.
func NewGormPizzaRepository(db *gorm.DB, tracker aggregateTracker) *GormPizzaRepository {
	return &GormPizzaRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new catalog entry. A name collision with a concurrent insert
// surfaces as ErrDuplicateName via the unique index.
func (r *GormPizzaRepository) Add(ctx context.Context, aggregate *pizza.Pizza) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicateName
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a catalog entry by id.
func (r *GormPizzaRepository) Get(ctx context.Context, id kernel.UUID) (*pizza.Pizza, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto PizzaDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("pizza", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByName retrieves a catalog entry by its unique name.
func (r *GormPizzaRepository) GetByName(ctx context.Context, name string) (*pizza.Pizza, error) {
	if name == "" {
		return nil, errs.NewValueIsRequiredError("name")
	}

	var dto PizzaDTO
	if err := r.db.WithContext(ctx).First(&dto, "name = ?", name).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("pizza", name)
		}
		return nil, err
	}

	return toDomain(dto)
}
