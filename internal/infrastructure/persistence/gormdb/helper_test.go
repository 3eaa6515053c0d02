package gormdb

import (
	"context"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/xiebiao/library/internal/domain/book"
)

// newTestDB 每个测试一个独立的内存库
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, AutoMigrate(db))
	return db
}

type testStore struct {
	db          *gorm.DB
	tx          *TxManager
	books       book.Repository
	inventories book.InventoryRepository
	authors     *authorRepository
	genres      *genreRepository
}

func newTestStore(t *testing.T) *testStore {
	db := newTestDB(t)
	return &testStore{
		db:          db,
		tx:          NewTxManager(db),
		books:       NewBookRepository(db),
		inventories: NewInventoryRepository(db),
		authors:     &authorRepository{db: db},
		genres:      &genreRepository{db: db},
	}
}

// seedBook 创建图书、库存并关联作者和分类
func (s *testStore) seedBook(t *testing.T, b *book.Book, owned, available int, authors, genres []string) *book.Book {
	t.Helper()
	ctx := context.Background()

	require.NoError(t, s.books.Create(ctx, b))
	require.NoError(t, s.inventories.Create(ctx, &book.Inventory{BookID: b.ID, Owned: owned, Available: available}))

	var authorIDs, genreIDs []uint
	for _, name := range authors {
		a, _, err := s.authors.GetOrCreate(ctx, name)
		require.NoError(t, err)
		authorIDs = append(authorIDs, a.ID)
	}
	for _, name := range genres {
		g, _, err := s.genres.GetOrCreate(ctx, name)
		require.NoError(t, err)
		genreIDs = append(genreIDs, g.ID)
	}
	require.NoError(t, s.books.AttachAuthors(ctx, b.ID, authorIDs))
	require.NoError(t, s.books.AttachGenres(ctx, b.ID, genreIDs))
	return b
}

func intPtr(n int) *int { return &n }

func floatPtr(f float64) *float64 { return &f }
