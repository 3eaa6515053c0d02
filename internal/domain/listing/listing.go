// Package listing 定义集合查询(过滤、排序、分页)的参数约定
//
// 图书、作者、分类的列表接口共用这一套参数，
// 具体的SQL拼装由persistence层根据各集合的白名单完成。
package listing

import (
	"strings"

	apperrors "github.com/xiebiao/library/pkg/errors"
)

// DefaultPageSize 未配置api.page_size时的每页数量
const DefaultPageSize = 20

// Params 列表查询参数
type Params struct {
	Filters  map[string]string // 精确匹配过滤，key为字段名(如author__name)
	Ordering []string          // 排序字段，"-"前缀表示降序
	Page     int               // 页码(从1开始)
	PageSize int               // 每页数量
}

// Normalize 填充默认值
func (p Params) Normalize() Params {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.PageSize < 1 {
		p.PageSize = DefaultPageSize
	}
	return p
}

// Offset 当前页的偏移量，只在CheckPage通过后调用，此时不会溢出
func (p Params) Offset() int {
	return (p.Page - 1) * p.PageSize
}

// PageCount 总页数，空结果集也算1页
func (p Params) PageCount(total int64) int64 {
	if total <= 0 {
		return 1
	}
	size := int64(p.PageSize)
	return (total + size - 1) / size
}

// CheckPage 校验页码是否落在结果集范围内
// 第1页总是合法的(即使结果为空)，超出末页返回ErrInvalidPage。
// 只比较页码，不计算偏移量，超大页码不会溢出。
func (p Params) CheckPage(total int64) error {
	if p.Page < 1 || int64(p.Page) > p.PageCount(total) {
		return apperrors.ErrInvalidPage
	}
	return nil
}

// HasNext 是否存在下一页
func (p Params) HasNext(total int64) bool {
	return int64(p.Page) < p.PageCount(total)
}

// ParseOrdering 解析ordering参数，如"-rating,title"
func ParseOrdering(raw string) []string {
	var fields []string
	for _, f := range strings.Split(raw, ",") {
		f = strings.TrimSpace(f)
		if f == "" || f == "-" {
			continue
		}
		fields = append(fields, f)
	}
	return fields
}

// OrderField 拆分排序字段，返回字段名和是否降序
func OrderField(f string) (name string, desc bool) {
	if strings.HasPrefix(f, "-") {
		return f[1:], true
	}
	return f, false
}
