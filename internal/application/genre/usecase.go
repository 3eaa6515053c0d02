package genre

import (
	"context"

	"go.uber.org/zap"

	"github.com/xiebiao/library/internal/domain/author"
	"github.com/xiebiao/library/internal/domain/book"
	"github.com/xiebiao/library/internal/domain/genre"
	"github.com/xiebiao/library/internal/domain/listing"
)

// GenreUseCase 分类管理和按分类浏览
type GenreUseCase struct {
	genreService  genre.Service
	bookService   book.Service
	authorService author.Service
	logger        *zap.Logger
}

// NewGenreUseCase 创建用例
func NewGenreUseCase(
	genreService genre.Service,
	bookService book.Service,
	authorService author.Service,
	logger *zap.Logger,
) *GenreUseCase {
	return &GenreUseCase{
		genreService:  genreService,
		bookService:   bookService,
		authorService: authorService,
		logger:        logger,
	}
}

// GenrePage 一页分类
type GenrePage struct {
	Genres []*genre.Genre
	Total  int64
}

// Create 新建分类，名称唯一
func (uc *GenreUseCase) Create(ctx context.Context, name string) (*genre.Genre, error) {
	g, err := uc.genreService.Create(ctx, name)
	if err != nil {
		return nil, err
	}
	uc.logger.Info("分类已创建", zap.Uint("genre_id", g.ID), zap.String("name", g.Name))
	return g, nil
}

func (uc *GenreUseCase) Get(ctx context.Context, id uint) (*genre.Genre, error) {
	return uc.genreService.Get(ctx, id)
}

func (uc *GenreUseCase) Rename(ctx context.Context, id uint, name string) (*genre.Genre, error) {
	return uc.genreService.Rename(ctx, id, name)
}

func (uc *GenreUseCase) Delete(ctx context.Context, id uint) error {
	if err := uc.genreService.Delete(ctx, id); err != nil {
		return err
	}
	uc.logger.Info("分类已删除", zap.Uint("genre_id", id))
	return nil
}

func (uc *GenreUseCase) List(ctx context.Context, params listing.Params) (*GenrePage, error) {
	genres, total, err := uc.genreService.List(ctx, params)
	if err != nil {
		return nil, err
	}
	return &GenrePage{Genres: genres, Total: total}, nil
}

// ListBooks 分类下的图书
func (uc *GenreUseCase) ListBooks(ctx context.Context, id uint, params listing.Params) ([]*book.Book, int64, error) {
	if _, err := uc.genreService.Get(ctx, id); err != nil {
		return nil, 0, err
	}
	params.Filters, params.Ordering = nil, nil
	return uc.bookService.List(ctx, book.ListParams{Params: params, GenreID: id})
}

// ListAuthors 分类下的作者(去重)
func (uc *GenreUseCase) ListAuthors(ctx context.Context, id uint, params listing.Params) ([]*author.Author, int64, error) {
	if _, err := uc.genreService.Get(ctx, id); err != nil {
		return nil, 0, err
	}
	return uc.authorService.ListByGenre(ctx, id, params)
}
