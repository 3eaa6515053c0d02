package gormdb

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/xiebiao/library/internal/domain/author"
	"github.com/xiebiao/library/internal/domain/book"
	"github.com/xiebiao/library/internal/domain/genre"
	apperrors "github.com/xiebiao/library/pkg/errors"
)

// bookAuthorModel book_authors关联表(由many2many自动迁移创建)
type bookAuthorModel struct {
	BookID   uint `gorm:"primaryKey"`
	AuthorID uint `gorm:"primaryKey"`
}

func (bookAuthorModel) TableName() string {
	return "book_authors"
}

// bookGenreModel book_genres关联表
type bookGenreModel struct {
	BookID  uint `gorm:"primaryKey"`
	GenreID uint `gorm:"primaryKey"`
}

func (bookGenreModel) TableName() string {
	return "book_genres"
}

var bookCollection = collection{
	table: "books",
	filters: map[string]filterSpec{
		"isbn":         {column: "isbn"},
		"title":        {column: "title"},
		"type":         {column: "type"},
		"edition":      {column: "edition"},
		"pages":        {column: "pages", kind: filterInt},
		"rating":       {column: "rating", kind: filterFloat},
		"rating_count": {column: "rating_count", kind: filterInt},
		"review_count": {column: "review_count", kind: filterInt},
		"author__name": {apply: func(db *gorm.DB, v any) *gorm.DB {
			return db.Where("books.id IN (?)", subquery(db).Model(&bookAuthorModel{}).
				Select("book_authors.book_id").
				Joins("JOIN authors ON authors.id = book_authors.author_id").
				Where("authors.name = ?", v))
		}},
		"genre__name": {apply: func(db *gorm.DB, v any) *gorm.DB {
			return db.Where("books.id IN (?)", subquery(db).Model(&bookGenreModel{}).
				Select("book_genres.book_id").
				Joins("JOIN genres ON genres.id = book_genres.genre_id").
				Where("genres.name = ?", v))
		}},
	},
	ordering: map[string]string{
		"id":      "id",
		"title":   "title",
		"pages":   "pages",
		"rating":  "rating",
		"edition": "edition",
	},
}

// bookRepository 图书仓储实现(GORM)
// 设计说明:
// 1. 实现domain/book/repository.go定义的接口
// 2. 负责domain实体与GORM模型之间的转换
// 3. 通过dbFrom(ctx)参与TxManager开启的事务
type bookRepository struct {
	db *gorm.DB
}

// NewBookRepository 创建图书仓储
func NewBookRepository(db *gorm.DB) book.Repository {
	return &bookRepository{db: db}
}

// Create 创建图书(只写标量字段)
func (r *bookRepository) Create(ctx context.Context, b *book.Book) error {
	model := toBookModel(b)
	if err := dbFrom(ctx, r.db).Omit(clause.Associations).Create(model).Error; err != nil {
		return apperrors.Wrap(err, "create book")
	}
	b.ID = model.ID
	return nil
}

// FindByID 根据ID查找图书
func (r *bookRepository) FindByID(ctx context.Context, id uint) (*book.Book, error) {
	var model BookModel
	err := withBookRelations(dbFrom(ctx, r.db)).First(&model, id).Error
	if err != nil {
		if isNotFound(err) {
			return nil, book.ErrBookNotFound
		}
		return nil, apperrors.Wrap(err, "find book")
	}
	return toBookEntity(&model), nil
}

// Update 更新全部标量字段
// 用map显式列出字段，零值和NULL也会写入
func (r *bookRepository) Update(ctx context.Context, b *book.Book) error {
	err := dbFrom(ctx, r.db).Model(&BookModel{}).Where("id = ?", b.ID).Updates(map[string]any{
		"isbn":         b.ISBN,
		"title":        b.Title,
		"type":         string(b.Type),
		"edition":      b.Edition,
		"pages":        b.Pages,
		"rating":       b.Rating,
		"rating_count": b.RatingCount,
		"review_count": b.ReviewCount,
		"image_url":    b.ImageURL,
		"description":  b.Description,
	}).Error
	if err != nil {
		return apperrors.Wrap(err, "update book")
	}
	return nil
}

// Delete 删除图书
// 先删库存和关联行，再删图书本身；调用方负责开启事务
func (r *bookRepository) Delete(ctx context.Context, id uint) error {
	db := dbFrom(ctx, r.db)

	var model BookModel
	if err := db.Select("id").First(&model, id).Error; err != nil {
		if isNotFound(err) {
			return book.ErrBookNotFound
		}
		return apperrors.Wrap(err, "find book")
	}

	if err := db.Where("book_id = ?", id).Delete(&InventoryModel{}).Error; err != nil {
		return apperrors.Wrap(err, "delete inventory")
	}
	if err := db.Where("book_id = ?", id).Delete(&bookAuthorModel{}).Error; err != nil {
		return apperrors.Wrap(err, "detach authors")
	}
	if err := db.Where("book_id = ?", id).Delete(&bookGenreModel{}).Error; err != nil {
		return apperrors.Wrap(err, "detach genres")
	}
	if err := db.Delete(&model).Error; err != nil {
		return apperrors.Wrap(err, "delete book")
	}
	return nil
}

// List 过滤、排序、分页查询
func (r *bookRepository) List(ctx context.Context, params book.ListParams) ([]*book.Book, int64, error) {
	db := dbFrom(ctx, r.db)
	base := db.Model(&BookModel{})

	if params.AuthorID != 0 {
		base = base.Where("books.id IN (?)", subquery(db).Model(&bookAuthorModel{}).
			Select("book_id").Where("author_id = ?", params.AuthorID))
	}
	if params.GenreID != 0 {
		base = base.Where("books.id IN (?)", subquery(db).Model(&bookGenreModel{}).
			Select("book_id").Where("genre_id = ?", params.GenreID))
	}

	models, total, err := paginate[BookModel](base, bookCollection, params.Params, withBookRelations)
	if err != nil {
		return nil, 0, err
	}

	books := make([]*book.Book, len(models))
	for i := range models {
		books[i] = toBookEntity(&models[i])
	}
	return books, total, nil
}

// GetOrCreate 以全部标量字段为自然键
func (r *bookRepository) GetOrCreate(ctx context.Context, b *book.Book) (bool, error) {
	db := dbFrom(ctx, r.db)

	var model BookModel
	err := db.Where(map[string]any{
		"isbn":         b.ISBN,
		"title":        b.Title,
		"type":         string(b.Type),
		"edition":      b.Edition,
		"pages":        b.Pages,
		"rating":       b.Rating,
		"rating_count": b.RatingCount,
		"review_count": b.ReviewCount,
		"image_url":    b.ImageURL,
		"description":  b.Description,
	}).Order("id").First(&model).Error
	if err == nil {
		b.ID = model.ID
		return false, nil
	}
	if !isNotFound(err) {
		return false, apperrors.Wrap(err, "find book")
	}

	if err := r.Create(ctx, b); err != nil {
		return false, err
	}
	return true, nil
}

// AttachAuthors 写入关联行，已存在的忽略
func (r *bookRepository) AttachAuthors(ctx context.Context, bookID uint, authorIDs []uint) error {
	if len(authorIDs) == 0 {
		return nil
	}
	rows := make([]bookAuthorModel, len(authorIDs))
	for i, id := range authorIDs {
		rows[i] = bookAuthorModel{BookID: bookID, AuthorID: id}
	}
	err := dbFrom(ctx, r.db).Clauses(clause.OnConflict{DoNothing: true}).Create(&rows).Error
	if err != nil {
		return apperrors.Wrap(err, "attach authors")
	}
	return nil
}

// AttachGenres 写入关联行，已存在的忽略
func (r *bookRepository) AttachGenres(ctx context.Context, bookID uint, genreIDs []uint) error {
	if len(genreIDs) == 0 {
		return nil
	}
	rows := make([]bookGenreModel, len(genreIDs))
	for i, id := range genreIDs {
		rows[i] = bookGenreModel{BookID: bookID, GenreID: id}
	}
	err := dbFrom(ctx, r.db).Clauses(clause.OnConflict{DoNothing: true}).Create(&rows).Error
	if err != nil {
		return apperrors.Wrap(err, "attach genres")
	}
	return nil
}

// withBookRelations 预加载作者、分类和库存
func withBookRelations(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Authors", func(db *gorm.DB) *gorm.DB { return db.Order("authors.id") }).
		Preload("Genres", func(db *gorm.DB) *gorm.DB { return db.Order("genres.id") }).
		Preload("Inventory")
}

// =========================================
// 辅助函数:模型转换
// =========================================

// toBookModel 领域实体 → GORM模型(不含关联)
func toBookModel(b *book.Book) *BookModel {
	return &BookModel{
		ID:          b.ID,
		ISBN:        b.ISBN,
		Title:       b.Title,
		Type:        string(b.Type),
		Edition:     b.Edition,
		Pages:       b.Pages,
		Rating:      b.Rating,
		RatingCount: b.RatingCount,
		ReviewCount: b.ReviewCount,
		ImageURL:    b.ImageURL,
		Description: b.Description,
	}
}

// toBookEntity GORM模型 → 领域实体
func toBookEntity(model *BookModel) *book.Book {
	b := &book.Book{
		ID:          model.ID,
		ISBN:        model.ISBN,
		Title:       model.Title,
		Type:        book.Format(model.Type),
		Edition:     model.Edition,
		Pages:       model.Pages,
		Rating:      model.Rating,
		RatingCount: model.RatingCount,
		ReviewCount: model.ReviewCount,
		ImageURL:    model.ImageURL,
		Description: model.Description,
		Authors:     make([]author.Author, len(model.Authors)),
		Genres:      make([]genre.Genre, len(model.Genres)),
	}
	for i, a := range model.Authors {
		b.Authors[i] = author.Author{ID: a.ID, Name: a.Name}
	}
	for i, g := range model.Genres {
		b.Genres[i] = genre.Genre{ID: g.ID, Name: g.Name}
	}
	if model.Inventory != nil {
		b.Inventory = toInventoryEntity(model.Inventory)
	}
	return b
}
