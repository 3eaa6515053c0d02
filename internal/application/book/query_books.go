package book

import (
	"context"

	"github.com/xiebiao/library/internal/domain/book"
	"github.com/xiebiao/library/internal/domain/listing"
)

// QueryBooksUseCase 图书和库存的只读查询
// 读操作不经过写规则，直接委托领域服务
type QueryBooksUseCase struct {
	bookService book.Service
}

// NewQueryBooksUseCase 创建查询用例
func NewQueryBooksUseCase(bookService book.Service) *QueryBooksUseCase {
	return &QueryBooksUseCase{bookService: bookService}
}

// BookPage 一页图书
type BookPage struct {
	Books []*book.Book
	Total int64
}

// InventoryPage 一页库存
type InventoryPage struct {
	Items []*book.Inventory
	Total int64
}

// Get 图书详情
func (uc *QueryBooksUseCase) Get(ctx context.Context, id uint) (*book.Book, error) {
	return uc.bookService.Get(ctx, id)
}

// List 过滤、排序、分页
func (uc *QueryBooksUseCase) List(ctx context.Context, params book.ListParams) (*BookPage, error) {
	books, total, err := uc.bookService.List(ctx, params)
	if err != nil {
		return nil, err
	}
	return &BookPage{Books: books, Total: total}, nil
}

// GetInventory 某本书的库存
func (uc *QueryBooksUseCase) GetInventory(ctx context.Context, bookID uint) (*book.Inventory, error) {
	return uc.bookService.GetInventory(ctx, bookID)
}

// ListInventory 库存列表
func (uc *QueryBooksUseCase) ListInventory(ctx context.Context, params listing.Params) (*InventoryPage, error) {
	items, total, err := uc.bookService.ListInventory(ctx, params)
	if err != nil {
		return nil, err
	}
	return &InventoryPage{Items: items, Total: total}, nil
}
