package genre

import (
	"context"

	"github.com/xiebiao/library/internal/domain/listing"
)

// Repository 分类仓储接口
type Repository interface {
	// Create 创建分类，名称重复返回ErrGenreDuplicate
	Create(ctx context.Context, genre *Genre) error

	// FindByID 如果不存在，返回ErrGenreNotFound
	FindByID(ctx context.Context, id uint) (*Genre, error)

	// FindByName 如果不存在，返回ErrGenreNotFound
	FindByName(ctx context.Context, name string) (*Genre, error)

	// Update 更新分类，名称重复返回ErrGenreDuplicate
	Update(ctx context.Context, genre *Genre) error

	// Delete 删除分类，同时移除与图书的关联
	Delete(ctx context.Context, id uint) error

	// List 分页查询，支持name过滤和id/name排序
	List(ctx context.Context, params listing.Params) ([]*Genre, int64, error)

	// ListByAuthor 查询某作者图书所属的分类(去重，按id排序)
	ListByAuthor(ctx context.Context, authorID uint, params listing.Params) ([]*Genre, int64, error)

	// GetOrCreate 按名称查找，不存在则创建
	GetOrCreate(ctx context.Context, name string) (genre *Genre, created bool, err error)
}
