package genre

import (
	"strings"
	"unicode/utf8"
)

// MaxNameLength 分类名称最大长度(字符数)
const MaxNameLength = 50

// Genre 分类实体
// 名称是自然键，数据库层有唯一索引
type Genre struct {
	ID   uint
	Name string
}

// NewGenre 创建分类(工厂方法)
func NewGenre(name string) (*Genre, error) {
	if err := ValidateName(name); err != nil {
		return nil, err
	}
	return &Genre{Name: name}, nil
}

// ValidateName 名称非空且不超过50个字符
func ValidateName(name string) error {
	if strings.TrimSpace(name) == "" || utf8.RuneCountInString(name) > MaxNameLength {
		return ErrInvalidGenre
	}
	return nil
}
