package gormdb

import (
	"fmt"
	"strconv"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/xiebiao/library/internal/domain/listing"
	apperrors "github.com/xiebiao/library/pkg/errors"
)

// filterKind 过滤值的类型，查询参数都是字符串，按类型转换后再比较
type filterKind int

const (
	filterString filterKind = iota
	filterInt
	filterFloat
)

// filterSpec 单个过滤字段
// apply非空时用它构造条件(跨表过滤)，否则按column精确匹配
type filterSpec struct {
	column string
	kind   filterKind
	apply  func(db *gorm.DB, value any) *gorm.DB
}

// collection 集合的查询白名单
// 不在白名单里的过滤、排序字段直接忽略
type collection struct {
	table    string
	filters  map[string]filterSpec
	ordering map[string]string // 排序字段 → 列名
}

// filter 追加过滤条件
func (c collection) filter(db *gorm.DB, filters map[string]string) (*gorm.DB, error) {
	for name, raw := range filters {
		spec, ok := c.filters[name]
		if !ok {
			continue
		}
		value, err := parseFilterValue(spec.kind, raw)
		if err != nil {
			return nil, apperrors.New(apperrors.ErrCodeInvalidParams, fmt.Sprintf("invalid value for %s", name)).WithCause(err)
		}
		if spec.apply != nil {
			db = spec.apply(db, value)
			continue
		}
		db = db.Where(clause.Eq{Column: clause.Column{Table: c.table, Name: spec.column}, Value: value})
	}
	return db, nil
}

func parseFilterValue(kind filterKind, raw string) (any, error) {
	switch kind {
	case filterInt:
		return strconv.Atoi(raw)
	case filterFloat:
		return strconv.ParseFloat(raw, 64)
	default:
		return raw, nil
	}
}

// order 追加排序，最后总是按id升序保证分页稳定
func (c collection) order(db *gorm.DB, ordering []string) *gorm.DB {
	for _, f := range ordering {
		name, desc := listing.OrderField(f)
		column, ok := c.ordering[name]
		if !ok {
			continue
		}
		db = db.Order(clause.OrderByColumn{Column: clause.Column{Table: c.table, Name: column}, Desc: desc})
	}
	return db.Order(clause.OrderByColumn{Column: clause.Column{Table: c.table, Name: "id"}})
}

// paginate 过滤 + 计数 + 排序 + 分页
// base是已经限定了Model(以及嵌套浏览条件)的查询；
// find非空时在取数据前调用，用于Preload。
func paginate[M any](base *gorm.DB, c collection, params listing.Params, find func(*gorm.DB) *gorm.DB) ([]M, int64, error) {
	params = params.Normalize()

	q, err := c.filter(base, params.Filters)
	if err != nil {
		return nil, 0, err
	}
	// Session之后的链式调用都会复制Statement，Count和Find互不影响
	q = q.Session(&gorm.Session{})

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, apperrors.Wrapf(err, "count %s", c.table)
	}
	if err := params.CheckPage(total); err != nil {
		return nil, 0, err
	}

	rows := c.order(q, params.Ordering).Limit(params.PageSize).Offset(params.Offset())
	if find != nil {
		rows = find(rows)
	}

	var models []M
	if err := rows.Find(&models).Error; err != nil {
		return nil, 0, apperrors.Wrapf(err, "list %s", c.table)
	}
	return models, total, nil
}

// subquery 基于同一连接(事务)的新查询
func subquery(db *gorm.DB) *gorm.DB {
	return db.Session(&gorm.Session{NewDB: true})
}
