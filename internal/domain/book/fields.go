package book

import (
	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
	"github.com/go-viper/mapstructure/v2"
)

// 图书字段名(与JSON字段一致)
const (
	fieldISBN        = "isbn"
	fieldTitle       = "title"
	fieldType        = "type"
	fieldEdition     = "edition"
	fieldPages       = "pages"
	fieldRating      = "rating"
	fieldRatingCount = "rating_count"
	fieldReviewCount = "review_count"
	fieldImageURL    = "image_url"
	fieldDescription = "description"
)

var (
	textFields    = []string{fieldISBN, fieldTitle, fieldType, fieldEdition, fieldImageURL, fieldDescription}
	numericFields = []string{fieldPages, fieldRating, fieldRatingCount, fieldReviewCount}
)

// Fields 请求中提交的图书字段
// 指针为nil有两种含义：未提交，或数值字段提交了null/空串。
// 二者由present区分。
type Fields struct {
	ISBN        *string  `mapstructure:"isbn"`
	Title       *string  `mapstructure:"title"`
	Type        *string  `mapstructure:"type"`
	Edition     *string  `mapstructure:"edition"`
	Pages       *int     `mapstructure:"pages"`
	Rating      *float64 `mapstructure:"rating"`
	RatingCount *int     `mapstructure:"rating_count"`
	ReviewCount *int     `mapstructure:"review_count"`
	ImageURL    *string  `mapstructure:"image_url"`
	Description *string  `mapstructure:"description"`

	present map[string]bool
}

// DecodeFields 解析Payload中的图书字段
// 未知字段(id、author、genre、inventory等)直接忽略。
// 数值字段提交空串视为"无值"，表单无法表达省略的数值字段。
func DecodeFields(p Payload) (*Fields, error) {
	f := &Fields{present: make(map[string]bool)}
	input := make(map[string]any)

	for _, k := range textFields {
		v, ok := p[k]
		if !ok {
			continue
		}
		if v == nil {
			// 文本字段不允许null
			return nil, ErrInvalidBook
		}
		f.present[k] = true
		input[k] = v
	}
	for _, k := range numericFields {
		v, ok := p[k]
		if !ok {
			continue
		}
		f.present[k] = true
		if s, isStr := v.(string); v == nil || (isStr && s == "") {
			continue
		}
		input[k] = v
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           f,
	})
	if err != nil {
		return nil, ErrInvalidBook.WithCause(err)
	}
	if err := decoder.Decode(input); err != nil {
		return nil, ErrInvalidBook.WithCause(err)
	}
	return f, nil
}

// Has 字段是否出现在请求中
func (f *Fields) Has(name string) bool {
	return f.present[name]
}

// Replace 全量替换：未提交的字段恢复默认值(空串或null)
func (f *Fields) Replace(b *Book) {
	b.ISBN = stringOrEmpty(f.ISBN)
	b.Title = stringOrEmpty(f.Title)
	b.Type = Format(stringOrEmpty(f.Type))
	b.Edition = stringOrEmpty(f.Edition)
	b.Pages = f.Pages
	b.Rating = f.Rating
	b.RatingCount = f.RatingCount
	b.ReviewCount = f.ReviewCount
	b.ImageURL = stringOrEmpty(f.ImageURL)
	b.Description = stringOrEmpty(f.Description)
}

// Merge 部分更新：只修改请求中出现的字段
func (f *Fields) Merge(b *Book) {
	if f.Has(fieldISBN) {
		b.ISBN = *f.ISBN
	}
	if f.Has(fieldTitle) {
		b.Title = *f.Title
	}
	if f.Has(fieldType) {
		b.Type = Format(*f.Type)
	}
	if f.Has(fieldEdition) {
		b.Edition = *f.Edition
	}
	if f.Has(fieldPages) {
		b.Pages = f.Pages
	}
	if f.Has(fieldRating) {
		b.Rating = f.Rating
	}
	if f.Has(fieldRatingCount) {
		b.RatingCount = f.RatingCount
	}
	if f.Has(fieldReviewCount) {
		b.ReviewCount = f.ReviewCount
	}
	if f.Has(fieldImageURL) {
		b.ImageURL = *f.ImageURL
	}
	if f.Has(fieldDescription) {
		b.Description = *f.Description
	}
}

func stringOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// bookRules 图书字段约束
type bookRules struct {
	ISBN        string `validate:"max=20"`
	Title       string `validate:"notblank"`
	Type        Format `validate:"book_format"`
	Pages       *int   `validate:"omitempty,min=0"`
	RatingCount *int   `validate:"omitempty,min=0"`
	ReviewCount *int   `validate:"omitempty,min=0"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// notblank不在默认规则集中
	_ = v.RegisterValidation("notblank", validators.NotBlank)
	_ = v.RegisterValidation("book_format", func(fl validator.FieldLevel) bool {
		return Format(fl.Field().String()).Valid()
	})
	return v
}

// ValidateBook 校验图书实体，失败返回ErrInvalidBook
func ValidateBook(b *Book) error {
	err := validate.Struct(bookRules{
		ISBN:        b.ISBN,
		Title:       b.Title,
		Type:        b.Type,
		Pages:       b.Pages,
		RatingCount: b.RatingCount,
		ReviewCount: b.ReviewCount,
	})
	if err != nil {
		return ErrInvalidBook.WithCause(err)
	}
	return nil
}
