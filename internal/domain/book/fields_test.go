package book

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(n int) *int { return &n }
func floatPtr(f float64) *float64 { return &f }

func TestDecodeFields_JSONNumbers(t *testing.T) {
	f, err := DecodeFields(Payload{
		"title":        "Dune",
		"pages":        json.Number("412"),
		"rating":       json.Number("4.25"),
		"rating_count": json.Number("10"),
		"author":       []any{"ignored"},
	})
	require.NoError(t, err)

	b := &Book{}
	f.Replace(b)
	assert.Equal(t, "Dune", b.Title)
	assert.Equal(t, intPtr(412), b.Pages)
	assert.Equal(t, floatPtr(4.25), b.Rating)
	assert.Equal(t, intPtr(10), b.RatingCount)
	assert.Nil(t, b.ReviewCount)
}

func TestDecodeFields_FormStrings(t *testing.T) {
	f, err := DecodeFields(Payload{
		"title":        "Dune",
		"pages":        "412",
		"rating":       "",
		"review_count": "",
	})
	require.NoError(t, err)

	assert.True(t, f.Has("rating"))
	assert.True(t, f.Has("review_count"))
	assert.Nil(t, f.Rating, "empty string means no value")
	assert.Nil(t, f.ReviewCount)
	assert.Equal(t, intPtr(412), f.Pages)
}

func TestDecodeFields_Invalid(t *testing.T) {
	_, err := DecodeFields(Payload{"pages": "many"})
	assert.ErrorIs(t, err, ErrInvalidBook)

	_, err = DecodeFields(Payload{"title": nil})
	assert.ErrorIs(t, err, ErrInvalidBook)
}

func TestFields_Merge(t *testing.T) {
	b := &Book{Title: "Old", Edition: "1st", Pages: intPtr(100), Rating: floatPtr(3.5)}

	f, err := DecodeFields(Payload{"title": "New", "pages": nil})
	require.NoError(t, err)
	f.Merge(b)

	assert.Equal(t, "New", b.Title)
	assert.Equal(t, "1st", b.Edition)
	assert.Nil(t, b.Pages, "explicit null clears the field")
	assert.Equal(t, floatPtr(3.5), b.Rating)
}

func TestFields_Replace_ResetsAbsent(t *testing.T) {
	b := &Book{Title: "Old", Edition: "1st", Pages: intPtr(100), Type: FormatHardcover}

	f, err := DecodeFields(Payload{"title": "New"})
	require.NoError(t, err)
	f.Replace(b)

	assert.Equal(t, "New", b.Title)
	assert.Empty(t, b.Edition)
	assert.Equal(t, FormatNone, b.Type)
	assert.Nil(t, b.Pages)
}

func TestValidateBook(t *testing.T) {
	tests := []struct {
		name  string
		book  Book
		valid bool
	}{
		{"minimal", Book{Title: "Dune"}, true},
		{"all formats", Book{Title: "Dune", Type: FormatKindle, ISBN: "978-0-441-17271-9"}, true},
		{"blank title", Book{Title: "  "}, false},
		{"missing title", Book{}, false},
		{"unknown type", Book{Title: "Dune", Type: "Scroll"}, false},
		{"type is case sensitive", Book{Title: "Dune", Type: "paperback"}, false},
		{"blank type", Book{Title: "Dune", Type: FormatNone}, true},
		{"isbn too long", Book{Title: "Dune", ISBN: strings.Repeat("9", 21)}, false},
		{"negative pages", Book{Title: "Dune", Pages: intPtr(-1)}, false},
		{"zero pages", Book{Title: "Dune", Pages: intPtr(0)}, true},
		{"negative review count", Book{Title: "Dune", ReviewCount: intPtr(-3)}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateBook(&tt.book)
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrInvalidBook)
			}
		})
	}
}

func TestFormat_Valid(t *testing.T) {
	for _, f := range []Format{FormatNone, FormatKindle, FormatHardcover, FormatEbook, FormatPaperback} {
		assert.True(t, f.Valid())
	}
	assert.False(t, Format("paperback").Valid())
}
