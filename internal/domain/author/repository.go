package author

import (
	"context"

	"github.com/xiebiao/library/internal/domain/listing"
)

// Repository 作者仓储接口
// 实现位于infrastructure/persistence/gormdb
type Repository interface {
	// Create 创建作者
	Create(ctx context.Context, author *Author) error

	// FindByID 根据ID查找作者
	// 如果不存在，返回ErrAuthorNotFound
	FindByID(ctx context.Context, id uint) (*Author, error)

	// Update 更新作者
	Update(ctx context.Context, author *Author) error

	// Delete 删除作者，同时移除与图书的关联(不删除图书)
	Delete(ctx context.Context, id uint) error

	// List 分页查询，支持name过滤和id/name排序
	List(ctx context.Context, params listing.Params) ([]*Author, int64, error)

	// ListByGenre 查询写过某分类图书的作者(去重，按id排序)
	ListByGenre(ctx context.Context, genreID uint, params listing.Params) ([]*Author, int64, error)

	// GetOrCreate 按名称查找，不存在则创建
	// created表示本次是否新建
	GetOrCreate(ctx context.Context, name string) (author *Author, created bool, err error)
}
