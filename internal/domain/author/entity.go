package author

import "strings"

// Author 作者实体
// 名称不唯一，批量导入时以名称作为自然键去重
type Author struct {
	ID   uint
	Name string
}

// NewAuthor 创建作者(工厂方法)
func NewAuthor(name string) (*Author, error) {
	a := &Author{Name: name}
	if err := a.Validate(); err != nil {
		return nil, err
	}
	return a, nil
}

// Validate 名称不能为空
func (a *Author) Validate() error {
	if strings.TrimSpace(a.Name) == "" {
		return ErrInvalidAuthor
	}
	return nil
}

// Rename 修改名称
func (a *Author) Rename(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrInvalidAuthor
	}
	a.Name = name
	return nil
}
