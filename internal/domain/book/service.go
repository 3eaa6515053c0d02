package book

import (
	"context"
	"errors"

	"github.com/xiebiao/library/internal/domain/listing"
)

// Service 图书领域服务接口
// 设计说明:
// 1. 写操作保证图书和库存一致：创建时必须带库存，更新时未提交库存则保持不变
// 2. 库存校验在任何写入之前完成，图书和库存的写入处于同一事务
// 3. 读操作不经过上述规则，直接查询仓储
type Service interface {
	// Create 创建图书和库存
	// 错误优先级：ErrMissingInventory → ErrInvalidInventory → ErrInvalidBook
	Create(ctx context.Context, p Payload) (*Book, error)

	// Update 全量更新，未提交的图书字段恢复默认值
	// 提交库存时owned和available都必须给出
	Update(ctx context.Context, id uint, p Payload) (*Book, error)

	// PartialUpdate 部分更新，只修改提交的字段
	// 库存按"已存值+提交值"合并后再校验
	PartialUpdate(ctx context.Context, id uint, p Payload) (*Book, error)

	// Delete 删除图书，级联删除库存和关联行
	Delete(ctx context.Context, id uint) error

	Get(ctx context.Context, id uint) (*Book, error)
	List(ctx context.Context, params ListParams) ([]*Book, int64, error)

	GetInventory(ctx context.Context, bookID uint) (*Inventory, error)
	ListInventory(ctx context.Context, params listing.Params) ([]*Inventory, int64, error)
}

type service struct {
	repo        Repository
	inventories InventoryRepository
	tx          TxManager
}

// NewService 创建图书领域服务
func NewService(repo Repository, inventories InventoryRepository, tx TxManager) Service {
	return &service{repo: repo, inventories: inventories, tx: tx}
}

func (s *service) Create(ctx context.Context, p Payload) (*Book, error) {
	p = NormalizeInventory(p)

	// 1. 库存必填
	if _, ok := p[KeyInventory]; !ok {
		return nil, ErrMissingInventory
	}

	// 2. 库存两项都必须给出且满足不变式
	patch, err := parseInventory(p)
	if err != nil {
		return nil, err
	}
	if patch.Owned == nil || patch.Available == nil || !ValidInventory(*patch.Owned, *patch.Available) {
		return nil, ErrInvalidInventory
	}

	// 3. 图书字段
	fields, err := DecodeFields(p)
	if err != nil {
		return nil, err
	}
	b := &Book{}
	fields.Replace(b)
	if err := ValidateBook(b); err != nil {
		return nil, err
	}

	// 4. 同一事务内写入图书和库存
	err = s.tx.Transaction(ctx, func(ctx context.Context) error {
		if err := s.repo.Create(ctx, b); err != nil {
			return err
		}
		inv := &Inventory{BookID: b.ID, Owned: *patch.Owned, Available: *patch.Available}
		if err := s.inventories.Create(ctx, inv); err != nil {
			return err
		}
		b.Inventory = inv
		return nil
	})
	if err != nil {
		return nil, err
	}
	return b, nil
}

func (s *service) Update(ctx context.Context, id uint, p Payload) (*Book, error) {
	return s.update(ctx, id, p, false)
}

func (s *service) PartialUpdate(ctx context.Context, id uint, p Payload) (*Book, error) {
	return s.update(ctx, id, p, true)
}

// update 全量/部分更新的共同流程
// 校验全部通过后才写入，任何一步失败整个事务回滚
func (s *service) update(ctx context.Context, id uint, p Payload, partial bool) (*Book, error) {
	var updated *Book
	err := s.tx.Transaction(ctx, func(ctx context.Context) error {
		b, err := s.repo.FindByID(ctx, id)
		if err != nil {
			return err
		}

		// 1. 图书字段
		fields, err := DecodeFields(p)
		if err != nil {
			return err
		}
		if partial {
			fields.Merge(b)
		} else {
			fields.Replace(b)
		}
		if err := ValidateBook(b); err != nil {
			return err
		}

		// 2. 库存(只有请求涉及库存时才处理，否则保持原值)
		var inv *Inventory
		if TouchesInventory(p) {
			inv, err = s.mergeInventory(ctx, b.ID, NormalizeInventory(p), partial)
			if err != nil {
				return err
			}
		}

		// 3. 写入
		if err := s.repo.Update(ctx, b); err != nil {
			return err
		}
		if inv != nil {
			if inv.ID == 0 {
				err = s.inventories.Create(ctx, inv)
			} else {
				err = s.inventories.Update(ctx, inv)
			}
			if err != nil {
				return err
			}
			b.Inventory = inv
		}
		updated = b
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// mergeInventory 计算更新后的库存
// 全量更新要求owned和available都提交；部分更新缺失的一项沿用已存值。
// 不变式针对合并后的结果校验。图书还没有库存记录时返回待创建的新记录(ID为0)。
func (s *service) mergeInventory(ctx context.Context, bookID uint, p Payload, partial bool) (*Inventory, error) {
	patch, err := parseInventory(p)
	if err != nil {
		return nil, err
	}

	current, err := s.inventories.FindByBookID(ctx, bookID)
	if err != nil && !errors.Is(err, ErrInventoryNotFound) {
		return nil, err
	}

	merged := &Inventory{BookID: bookID}
	if current != nil {
		*merged = *current
	}

	if !partial && (patch.Owned == nil || patch.Available == nil) {
		return nil, ErrInvalidInventory
	}
	if current == nil && (patch.Owned == nil || patch.Available == nil) {
		return nil, ErrInvalidInventory
	}
	if patch.Owned != nil {
		merged.Owned = *patch.Owned
	}
	if patch.Available != nil {
		merged.Available = *patch.Available
	}

	if !ValidInventory(merged.Owned, merged.Available) {
		return nil, ErrInvalidInventory
	}
	return merged, nil
}

func (s *service) Delete(ctx context.Context, id uint) error {
	return s.tx.Transaction(ctx, func(ctx context.Context) error {
		return s.repo.Delete(ctx, id)
	})
}

func (s *service) Get(ctx context.Context, id uint) (*Book, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *service) List(ctx context.Context, params ListParams) ([]*Book, int64, error) {
	return s.repo.List(ctx, params)
}

func (s *service) GetInventory(ctx context.Context, bookID uint) (*Inventory, error) {
	return s.inventories.FindByBookID(ctx, bookID)
}

func (s *service) ListInventory(ctx context.Context, params listing.Params) ([]*Inventory, int64, error) {
	return s.inventories.List(ctx, params)
}
