package book

import (
	"context"

	"github.com/xiebiao/library/internal/domain/listing"
)

// Repository 图书仓储接口(依赖倒置原则)
// 设计说明:
// 1. 由domain层定义接口,infrastructure层实现
// 2. 所有方法都从ctx中取事务,在TxManager.Transaction内调用即参与同一事务
type Repository interface {
	// Create 创建图书(不含库存和关联)
	Create(ctx context.Context, book *Book) error

	// FindByID 根据ID查找图书,同时加载作者、分类和库存
	// 如果不存在,返回ErrBookNotFound
	FindByID(ctx context.Context, id uint) (*Book, error)

	// Update 保存图书的全部标量字段
	Update(ctx context.Context, book *Book) error

	// Delete 删除图书及其库存和关联行(作者、分类本身保留)
	Delete(ctx context.Context, id uint) error

	// List 过滤、排序、分页查询
	List(ctx context.Context, params ListParams) ([]*Book, int64, error)

	// GetOrCreate 以全部标量字段为自然键查找,不存在则创建(批量导入使用)
	GetOrCreate(ctx context.Context, book *Book) (created bool, err error)

	// AttachAuthors 关联作者(已存在的关联忽略)
	AttachAuthors(ctx context.Context, bookID uint, authorIDs []uint) error

	// AttachGenres 关联分类(已存在的关联忽略)
	AttachGenres(ctx context.Context, bookID uint, genreIDs []uint) error
}

// InventoryRepository 库存仓储接口
type InventoryRepository interface {
	// FindByBookID 如果不存在,返回ErrInventoryNotFound
	FindByBookID(ctx context.Context, bookID uint) (*Inventory, error)

	Create(ctx context.Context, inventory *Inventory) error

	Update(ctx context.Context, inventory *Inventory) error

	// List 按id分页
	List(ctx context.Context, params listing.Params) ([]*Inventory, int64, error)
}

// TxManager 事务管理器
// fn内通过ctx执行的仓储操作处于同一事务,fn返回error时回滚
type TxManager interface {
	Transaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// ListParams 图书列表查询参数
// AuthorID/GenreID非零时只查询该作者/分类的图书(嵌套浏览)
type ListParams struct {
	listing.Params
	AuthorID uint
	GenreID  uint
}
