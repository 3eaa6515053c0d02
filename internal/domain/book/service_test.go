package book

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/xiebiao/library/internal/domain/listing"
)

// =========================================
// Mock
// =========================================

type mockRepository struct {
	mock.Mock
}

func (m *mockRepository) Create(ctx context.Context, b *Book) error {
	args := m.Called(ctx, b)
	if args.Error(0) == nil {
		b.ID = 42
	}
	return args.Error(0)
}

func (m *mockRepository) FindByID(ctx context.Context, id uint) (*Book, error) {
	args := m.Called(ctx, id)
	if b, ok := args.Get(0).(*Book); ok {
		return b, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockRepository) Update(ctx context.Context, b *Book) error {
	return m.Called(ctx, b).Error(0)
}

func (m *mockRepository) Delete(ctx context.Context, id uint) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockRepository) List(ctx context.Context, params ListParams) ([]*Book, int64, error) {
	args := m.Called(ctx, params)
	return args.Get(0).([]*Book), args.Get(1).(int64), args.Error(2)
}

func (m *mockRepository) GetOrCreate(ctx context.Context, b *Book) (bool, error) {
	args := m.Called(ctx, b)
	return args.Bool(0), args.Error(1)
}

func (m *mockRepository) AttachAuthors(ctx context.Context, bookID uint, ids []uint) error {
	return m.Called(ctx, bookID, ids).Error(0)
}

func (m *mockRepository) AttachGenres(ctx context.Context, bookID uint, ids []uint) error {
	return m.Called(ctx, bookID, ids).Error(0)
}

type mockInventoryRepository struct {
	mock.Mock
}

func (m *mockInventoryRepository) FindByBookID(ctx context.Context, bookID uint) (*Inventory, error) {
	args := m.Called(ctx, bookID)
	if inv, ok := args.Get(0).(*Inventory); ok {
		return inv, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockInventoryRepository) Create(ctx context.Context, inv *Inventory) error {
	return m.Called(ctx, inv).Error(0)
}

func (m *mockInventoryRepository) Update(ctx context.Context, inv *Inventory) error {
	return m.Called(ctx, inv).Error(0)
}

func (m *mockInventoryRepository) List(ctx context.Context, params listing.Params) ([]*Inventory, int64, error) {
	args := m.Called(ctx, params)
	return args.Get(0).([]*Inventory), args.Get(1).(int64), args.Error(2)
}

// fakeTx 直接执行fn，记录是否被调用
type fakeTx struct {
	calls int
}

func (f *fakeTx) Transaction(ctx context.Context, fn func(ctx context.Context) error) error {
	f.calls++
	return fn(ctx)
}

type fixture struct {
	repo *mockRepository
	inv  *mockInventoryRepository
	tx   *fakeTx
	svc  Service
}

func newFixture() *fixture {
	f := &fixture{
		repo: new(mockRepository),
		inv:  new(mockInventoryRepository),
		tx:   &fakeTx{},
	}
	f.svc = NewService(f.repo, f.inv, f.tx)
	return f
}

func storedBook() *Book {
	rating := 4.5
	return &Book{
		ID:        7,
		Title:     "The Left Hand of Darkness",
		Type:      FormatPaperback,
		Edition:   "Ace",
		Rating:    &rating,
		Inventory: &Inventory{ID: 3, BookID: 7, Owned: 1, Available: 1},
	}
}

// =========================================
// Create
// =========================================

func TestService_Create(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	f.repo.On("Create", ctx, mock.AnythingOfType("*book.Book")).Return(nil)
	f.inv.On("Create", ctx, &Inventory{BookID: 42, Owned: 2, Available: 1}).Return(nil)

	b, err := f.svc.Create(ctx, Payload{
		"title":     "Dune",
		"pages":     "",
		"inventory": map[string]any{"owned": json.Number("2"), "available": json.Number("1")},
	})
	require.NoError(t, err)
	assert.Equal(t, uint(42), b.ID)
	assert.Nil(t, b.Pages)
	require.NotNil(t, b.Inventory)
	assert.Equal(t, 2, b.Inventory.Owned)
	assert.Equal(t, 1, f.tx.calls)
	f.repo.AssertExpectations(t)
	f.inv.AssertExpectations(t)
}

func TestService_Create_DottedKeys(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	f.repo.On("Create", ctx, mock.AnythingOfType("*book.Book")).Return(nil)
	f.inv.On("Create", ctx, &Inventory{BookID: 42, Owned: 3, Available: 3}).Return(nil)

	_, err := f.svc.Create(ctx, Payload{
		"title":               "Dune",
		"inventory.owned":     "3",
		"inventory.available": "3",
	})
	require.NoError(t, err)
	f.inv.AssertExpectations(t)
}

func TestService_Create_Failures(t *testing.T) {
	tests := []struct {
		name    string
		payload Payload
		wantErr error
	}{
		{
			name:    "missing inventory even with complete book",
			payload: Payload{"title": "Dune", "isbn": "9780441172719", "pages": 412},
			wantErr: ErrMissingInventory,
		},
		{
			name:    "available exceeds owned",
			payload: Payload{"title": "Dune", "inventory": map[string]any{"owned": 1, "available": 2}},
			wantErr: ErrInvalidInventory,
		},
		{
			name:    "owned missing",
			payload: Payload{"title": "Dune", "inventory.available": "1"},
			wantErr: ErrInvalidInventory,
		},
		{
			name:    "inventory checked before book fields",
			payload: Payload{"inventory": map[string]any{"owned": 0, "available": 0}},
			wantErr: ErrInvalidInventory,
		},
		{
			name:    "missing title",
			payload: Payload{"inventory": map[string]any{"owned": 1, "available": 1}},
			wantErr: ErrInvalidBook,
		},
		{
			name:    "bad type",
			payload: Payload{"title": "Dune", "type": "Scroll", "inventory": map[string]any{"owned": 1, "available": 1}},
			wantErr: ErrInvalidBook,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()

			_, err := f.svc.Create(context.Background(), tt.payload)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Zero(t, f.tx.calls, "nothing may be persisted")
			f.repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
			f.inv.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		})
	}
}

func TestService_Create_StoreError(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	storeErr := errors.New("disk I/O error")

	f.repo.On("Create", ctx, mock.AnythingOfType("*book.Book")).Return(nil)
	f.inv.On("Create", ctx, mock.AnythingOfType("*book.Inventory")).Return(storeErr)

	_, err := f.svc.Create(ctx, Payload{"title": "Dune", "inventory": map[string]any{"owned": 1, "available": 1}})
	assert.ErrorIs(t, err, storeErr)
}

// =========================================
// Update
// =========================================

func TestService_Update_PreservesInventoryWhenAbsent(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	b := storedBook()

	f.repo.On("FindByID", ctx, uint(7)).Return(b, nil)
	f.repo.On("Update", ctx, b).Return(nil)

	updated, err := f.svc.Update(ctx, 7, Payload{"title": "Changed"})
	require.NoError(t, err)

	assert.Equal(t, "Changed", updated.Title)
	assert.Empty(t, updated.Edition, "full update resets absent fields")
	assert.Nil(t, updated.Rating)
	assert.Equal(t, &Inventory{ID: 3, BookID: 7, Owned: 1, Available: 1}, updated.Inventory)
	f.inv.AssertNotCalled(t, "FindByBookID", mock.Anything, mock.Anything)
	f.inv.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestService_Update_WithInventory(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	b := storedBook()

	f.repo.On("FindByID", ctx, uint(7)).Return(b, nil)
	f.repo.On("Update", ctx, b).Return(nil)
	f.inv.On("FindByBookID", ctx, uint(7)).Return(&Inventory{ID: 3, BookID: 7, Owned: 1, Available: 1}, nil)
	f.inv.On("Update", ctx, &Inventory{ID: 3, BookID: 7, Owned: 5, Available: 4}).Return(nil)

	_, err := f.svc.Update(ctx, 7, Payload{
		"title":     "Changed",
		"inventory": map[string]any{"owned": 5, "available": 4},
	})
	require.NoError(t, err)
	f.inv.AssertExpectations(t)
}

func TestService_Update_RequiresBothInventoryFields(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	f.repo.On("FindByID", ctx, uint(7)).Return(storedBook(), nil)
	f.inv.On("FindByBookID", ctx, uint(7)).Return(&Inventory{ID: 3, BookID: 7, Owned: 1, Available: 1}, nil)

	_, err := f.svc.Update(ctx, 7, Payload{"title": "Changed", "inventory.owned": "4"})
	assert.ErrorIs(t, err, ErrInvalidInventory)
	f.repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestService_Update_InvalidInventoryLeavesBookUnchanged(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	f.repo.On("FindByID", ctx, uint(7)).Return(storedBook(), nil)
	f.inv.On("FindByBookID", ctx, uint(7)).Return(&Inventory{ID: 3, BookID: 7, Owned: 1, Available: 1}, nil)

	_, err := f.svc.Update(ctx, 7, Payload{
		"title":     "Changed",
		"inventory": map[string]any{"owned": 1, "available": 2},
	})
	assert.ErrorIs(t, err, ErrInvalidInventory)
	f.repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	f.inv.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestService_Update_InvalidBook(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	f.repo.On("FindByID", ctx, uint(7)).Return(storedBook(), nil)

	// 全量更新缺少title
	_, err := f.svc.Update(ctx, 7, Payload{
		"edition":   "2nd",
		"inventory": map[string]any{"owned": 1, "available": 2},
	})
	assert.ErrorIs(t, err, ErrInvalidBook, "book errors take precedence over inventory errors")
	f.repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestService_Update_NotFound(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	f.repo.On("FindByID", ctx, uint(99)).Return(nil, ErrBookNotFound)

	_, err := f.svc.Update(ctx, 99, Payload{"title": "x"})
	assert.ErrorIs(t, err, ErrBookNotFound)
}

func TestService_Update_CreatesMissingInventory(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	b := storedBook()
	b.Inventory = nil

	f.repo.On("FindByID", ctx, uint(7)).Return(b, nil)
	f.repo.On("Update", ctx, b).Return(nil)
	f.inv.On("FindByBookID", ctx, uint(7)).Return(nil, ErrInventoryNotFound)
	f.inv.On("Create", ctx, &Inventory{BookID: 7, Owned: 2, Available: 2}).Return(nil)

	_, err := f.svc.Update(ctx, 7, Payload{"title": "x", "inventory": map[string]any{"owned": 2, "available": 2}})
	require.NoError(t, err)
	f.inv.AssertExpectations(t)
}

// =========================================
// PartialUpdate
// =========================================

func TestService_PartialUpdate_TitleOnly(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	b := storedBook()

	f.repo.On("FindByID", ctx, uint(7)).Return(b, nil)
	f.repo.On("Update", ctx, b).Return(nil)

	updated, err := f.svc.PartialUpdate(ctx, 7, Payload{"title": "Changed"})
	require.NoError(t, err)
	assert.Equal(t, "Changed", updated.Title)
	assert.Equal(t, "Ace", updated.Edition)
	require.NotNil(t, updated.Rating)
	assert.Equal(t, 4.5, *updated.Rating)
	assert.Equal(t, 1, updated.Inventory.Owned)
}

func TestService_PartialUpdate_MergesWithStoredOwned(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	b := storedBook()

	f.repo.On("FindByID", ctx, uint(7)).Return(b, nil)
	f.repo.On("Update", ctx, b).Return(nil)
	f.inv.On("FindByBookID", ctx, uint(7)).Return(&Inventory{ID: 3, BookID: 7, Owned: 1, Available: 1}, nil)
	f.inv.On("Update", ctx, &Inventory{ID: 3, BookID: 7, Owned: 1, Available: 0}).Return(nil)

	updated, err := f.svc.PartialUpdate(ctx, 7, Payload{"inventory.available": "0"})
	require.NoError(t, err)
	assert.Equal(t, 1, updated.Inventory.Owned)
	assert.Equal(t, 0, updated.Inventory.Available)
	f.inv.AssertExpectations(t)
}

func TestService_PartialUpdate_ChecksMergedPair(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	f.repo.On("FindByID", ctx, uint(7)).Return(storedBook(), nil)
	f.inv.On("FindByBookID", ctx, uint(7)).Return(&Inventory{ID: 3, BookID: 7, Owned: 1, Available: 0}, nil)

	// (2, 2)单独看是合法的，但与已存的owned=1合并后不合法
	_, err := f.svc.PartialUpdate(ctx, 7, Payload{"inventory": map[string]any{"available": 2}})
	assert.ErrorIs(t, err, ErrInvalidInventory)
	f.repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	f.inv.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestService_PartialUpdate_NoStoredInventory(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	f.repo.On("FindByID", ctx, uint(7)).Return(storedBook(), nil)
	f.inv.On("FindByBookID", ctx, uint(7)).Return(nil, ErrInventoryNotFound)

	_, err := f.svc.PartialUpdate(ctx, 7, Payload{"inventory.available": 1})
	assert.ErrorIs(t, err, ErrInvalidInventory)
}

func TestService_PartialUpdate_InvalidBlankTitle(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	f.repo.On("FindByID", ctx, uint(7)).Return(storedBook(), nil)

	_, err := f.svc.PartialUpdate(ctx, 7, Payload{"title": ""})
	assert.ErrorIs(t, err, ErrInvalidBook)
}

// =========================================
// Delete / reads
// =========================================

func TestService_Delete(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	f.repo.On("Delete", ctx, uint(7)).Return(nil)
	f.repo.On("Delete", ctx, uint(8)).Return(ErrBookNotFound)

	assert.NoError(t, f.svc.Delete(ctx, 7))
	assert.ErrorIs(t, f.svc.Delete(ctx, 8), ErrBookNotFound)
	assert.Equal(t, 2, f.tx.calls)
}

func TestService_List(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	params := ListParams{Params: listing.Params{Page: 1, PageSize: 20}, AuthorID: 2}

	f.repo.On("List", ctx, params).Return([]*Book{storedBook()}, int64(1), nil)

	books, total, err := f.svc.List(ctx, params)
	require.NoError(t, err)
	assert.Len(t, books, 1)
	assert.Equal(t, int64(1), total)
}
