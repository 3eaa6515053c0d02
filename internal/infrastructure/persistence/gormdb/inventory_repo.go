package gormdb

import (
	"context"

	"gorm.io/gorm"

	"github.com/xiebiao/library/internal/domain/book"
	"github.com/xiebiao/library/internal/domain/listing"
	apperrors "github.com/xiebiao/library/pkg/errors"
)

var inventoryCollection = collection{
	table:    "inventories",
	filters:  map[string]filterSpec{"book": {column: "book_id", kind: filterInt}},
	ordering: map[string]string{"id": "id"},
}

// inventoryRepository 库存仓储实现(GORM)
type inventoryRepository struct {
	db *gorm.DB
}

// NewInventoryRepository 创建库存仓储
func NewInventoryRepository(db *gorm.DB) book.InventoryRepository {
	return &inventoryRepository{db: db}
}

func (r *inventoryRepository) FindByBookID(ctx context.Context, bookID uint) (*book.Inventory, error) {
	var model InventoryModel
	err := dbFrom(ctx, r.db).Where("book_id = ?", bookID).First(&model).Error
	if err != nil {
		if isNotFound(err) {
			return nil, book.ErrInventoryNotFound
		}
		return nil, apperrors.Wrap(err, "find inventory")
	}
	return toInventoryEntity(&model), nil
}

func (r *inventoryRepository) Create(ctx context.Context, inv *book.Inventory) error {
	model := toInventoryModel(inv)
	if err := dbFrom(ctx, r.db).Create(model).Error; err != nil {
		return apperrors.Wrap(err, "create inventory")
	}
	inv.ID = model.ID
	return nil
}

func (r *inventoryRepository) Update(ctx context.Context, inv *book.Inventory) error {
	err := dbFrom(ctx, r.db).Model(&InventoryModel{}).Where("id = ?", inv.ID).Updates(map[string]any{
		"owned":     inv.Owned,
		"available": inv.Available,
	}).Error
	if err != nil {
		return apperrors.Wrap(err, "update inventory")
	}
	return nil
}

func (r *inventoryRepository) List(ctx context.Context, params listing.Params) ([]*book.Inventory, int64, error) {
	base := dbFrom(ctx, r.db).Model(&InventoryModel{})
	models, total, err := paginate[InventoryModel](base, inventoryCollection, params, nil)
	if err != nil {
		return nil, 0, err
	}

	items := make([]*book.Inventory, len(models))
	for i := range models {
		items[i] = toInventoryEntity(&models[i])
	}
	return items, total, nil
}

func toInventoryModel(inv *book.Inventory) *InventoryModel {
	return &InventoryModel{
		ID:        inv.ID,
		BookID:    inv.BookID,
		Owned:     uint(inv.Owned),
		Available: uint(inv.Available),
	}
}

func toInventoryEntity(model *InventoryModel) *book.Inventory {
	return &book.Inventory{
		ID:        model.ID,
		BookID:    model.BookID,
		Owned:     int(model.Owned),
		Available: int(model.Available),
	}
}
