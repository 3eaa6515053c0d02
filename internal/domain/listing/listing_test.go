package listing

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	apperrors "github.com/xiebiao/library/pkg/errors"
)

func TestParams_Normalize(t *testing.T) {
	p := Params{}.Normalize()
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, DefaultPageSize, p.PageSize)
	assert.Equal(t, 0, p.Offset())

	p = Params{Page: 3, PageSize: 10}.Normalize()
	assert.Equal(t, 20, p.Offset())
}

func TestParams_CheckPage(t *testing.T) {
	tests := []struct {
		name    string
		page    int
		total   int64
		wantErr bool
	}{
		{"first page of empty set", 1, 0, false},
		{"last partial page", 3, 45, false},
		{"past the end", 4, 45, true},
		{"second page of exact fit", 2, 20, true},
		{"zero page", 0, 100, true},
		{"huge page", math.MaxInt, 45, true},
		{"huge page of empty set", math.MaxInt, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Params{Page: tt.page, PageSize: 20}.CheckPage(tt.total)
			if tt.wantErr {
				assert.ErrorIs(t, err, apperrors.ErrInvalidPage)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestParams_HasNext(t *testing.T) {
	assert.True(t, Params{Page: 1, PageSize: 20}.HasNext(21))
	assert.False(t, Params{Page: 1, PageSize: 20}.HasNext(20))
	assert.False(t, Params{Page: 2, PageSize: 20}.HasNext(40))
	assert.False(t, Params{Page: math.MaxInt, PageSize: 20}.HasNext(40))
}

func TestParams_PageCount(t *testing.T) {
	assert.Equal(t, int64(1), Params{PageSize: 2}.PageCount(0))
	assert.Equal(t, int64(2), Params{PageSize: 2}.PageCount(3))
	assert.Equal(t, int64(2), Params{PageSize: 2}.PageCount(4))
}

func TestParseOrdering(t *testing.T) {
	assert.Equal(t, []string{"-rating", "title"}, ParseOrdering("-rating, title,,-"))
	assert.Empty(t, ParseOrdering(""))

	name, desc := OrderField("-pages")
	assert.Equal(t, "pages", name)
	assert.True(t, desc)

	name, desc = OrderField("id")
	assert.Equal(t, "id", name)
	assert.False(t, desc)
}
