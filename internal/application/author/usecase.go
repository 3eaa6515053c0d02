package author

import (
	"context"

	"go.uber.org/zap"

	"github.com/xiebiao/library/internal/domain/author"
	"github.com/xiebiao/library/internal/domain/book"
	"github.com/xiebiao/library/internal/domain/genre"
	"github.com/xiebiao/library/internal/domain/listing"
)

// AuthorUseCase 作者管理和按作者浏览
// 嵌套列表(作者的图书、作者的分类)先确认作者存在，再按id排序分页
type AuthorUseCase struct {
	authorService author.Service
	bookService   book.Service
	genreService  genre.Service
	logger        *zap.Logger
}

// NewAuthorUseCase 创建用例
func NewAuthorUseCase(
	authorService author.Service,
	bookService book.Service,
	genreService genre.Service,
	logger *zap.Logger,
) *AuthorUseCase {
	return &AuthorUseCase{
		authorService: authorService,
		bookService:   bookService,
		genreService:  genreService,
		logger:        logger,
	}
}

// AuthorPage 一页作者
type AuthorPage struct {
	Authors []*author.Author
	Total   int64
}

// Create 新建作者
func (uc *AuthorUseCase) Create(ctx context.Context, name string) (*author.Author, error) {
	a, err := uc.authorService.Create(ctx, name)
	if err != nil {
		return nil, err
	}
	uc.logger.Info("作者已创建", zap.Uint("author_id", a.ID))
	return a, nil
}

// Get 作者详情
func (uc *AuthorUseCase) Get(ctx context.Context, id uint) (*author.Author, error) {
	return uc.authorService.Get(ctx, id)
}

// Rename 修改作者姓名(PUT和PATCH只有name一个字段，语义相同)
func (uc *AuthorUseCase) Rename(ctx context.Context, id uint, name string) (*author.Author, error) {
	return uc.authorService.Rename(ctx, id, name)
}

// Delete 删除作者，图书关联随之解除
func (uc *AuthorUseCase) Delete(ctx context.Context, id uint) error {
	if err := uc.authorService.Delete(ctx, id); err != nil {
		return err
	}
	uc.logger.Info("作者已删除", zap.Uint("author_id", id))
	return nil
}

// List 作者列表
func (uc *AuthorUseCase) List(ctx context.Context, params listing.Params) (*AuthorPage, error) {
	authors, total, err := uc.authorService.List(ctx, params)
	if err != nil {
		return nil, err
	}
	return &AuthorPage{Authors: authors, Total: total}, nil
}

// ListBooks 作者的图书
func (uc *AuthorUseCase) ListBooks(ctx context.Context, id uint, params listing.Params) ([]*book.Book, int64, error) {
	if _, err := uc.authorService.Get(ctx, id); err != nil {
		return nil, 0, err
	}
	params.Filters, params.Ordering = nil, nil
	return uc.bookService.List(ctx, book.ListParams{Params: params, AuthorID: id})
}

// ListGenres 作者涉及的分类(去重)
func (uc *AuthorUseCase) ListGenres(ctx context.Context, id uint, params listing.Params) ([]*genre.Genre, int64, error) {
	if _, err := uc.authorService.Get(ctx, id); err != nil {
		return nil, 0, err
	}
	return uc.genreService.ListByAuthor(ctx, id, params)
}
