package loader

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/xiebiao/library/internal/domain/book"
)

// CSV列名
const (
	colAuthors     = "book_authors"
	colGenres      = "genres"
	colDesc        = "book_desc"
	colEdition     = "book_edition"
	colFormat      = "book_format"
	colISBN        = "book_isbn"
	colPages       = "book_pages"
	colRating      = "book_rating"
	colRatingCount = "book_rating_count"
	colReviewCount = "book_review_count"
	colTitle       = "book_title"
	colImageURL    = "image_url"
)

var requiredColumns = []string{
	colAuthors, colGenres, colDesc, colEdition, colFormat, colISBN,
	colPages, colRating, colRatingCount, colReviewCount, colTitle, colImageURL,
}

// nameSeparator 作者、分类列内多个名字的分隔符
const nameSeparator = "|"

// header 列名到下标的映射
type header map[string]int

func parseHeader(fields []string) (header, error) {
	h := make(header, len(fields))
	for i, f := range fields {
		// 去掉UTF-8 BOM
		h[strings.TrimPrefix(strings.TrimSpace(f), "\ufeff")] = i
	}
	for _, col := range requiredColumns {
		if _, ok := h[col]; !ok {
			return nil, errors.Errorf("missing column %q", col)
		}
	}
	return h, nil
}

// row 解析后的一行
type row struct {
	book    *book.Book
	authors []string
	genres  []string
}

func (h header) parseRow(record []string) (*row, error) {
	get := func(col string) string {
		if i := h[col]; i < len(record) {
			return record[i]
		}
		return ""
	}

	pages, err := parsePages(get(colPages))
	if err != nil {
		return nil, err
	}
	rating, err := strconv.ParseFloat(strings.TrimSpace(get(colRating)), 64)
	if err != nil {
		return nil, errors.Wrap(err, colRating)
	}
	ratingCount, err := strconv.Atoi(strings.TrimSpace(get(colRatingCount)))
	if err != nil {
		return nil, errors.Wrap(err, colRatingCount)
	}
	reviewCount, err := strconv.Atoi(strings.TrimSpace(get(colReviewCount)))
	if err != nil {
		return nil, errors.Wrap(err, colReviewCount)
	}

	return &row{
		book: &book.Book{
			ISBN:        get(colISBN),
			Title:       get(colTitle),
			Type:        book.Format(get(colFormat)),
			Edition:     get(colEdition),
			Pages:       pages,
			Rating:      &rating,
			RatingCount: &ratingCount,
			ReviewCount: &reviewCount,
			ImageURL:    get(colImageURL),
			Description: get(colDesc),
		},
		authors: splitNames(get(colAuthors)),
		genres:  splitNames(get(colGenres)),
	}, nil
}

// parsePages "304 pages" 取第一个数字，空值为nil
func parsePages(raw string) (*int, error) {
	fields := strings.Fields(raw)
	if len(fields) == 0 {
		return nil, nil
	}
	n, err := strconv.Atoi(fields[0])
	if err != nil {
		return nil, errors.Wrap(err, colPages)
	}
	return &n, nil
}

// splitNames 按|拆分，忽略空名字，保留首次出现顺序
func splitNames(raw string) []string {
	var names []string
	seen := make(map[string]bool)
	for _, name := range strings.Split(raw, nameSeparator) {
		name = strings.TrimSpace(name)
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		names = append(names, name)
	}
	return names
}
