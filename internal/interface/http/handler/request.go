package handler

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"

	"github.com/xiebiao/library/internal/domain/book"
	"github.com/xiebiao/library/internal/domain/listing"
	"github.com/xiebiao/library/internal/infrastructure/config"
	"github.com/xiebiao/library/internal/interface/http/dto"
	apperrors "github.com/xiebiao/library/pkg/errors"
)

// multipart表单在内存中保留的最大字节数
const maxMultipartMemory = 8 << 20

// maxBodyBytes 请求体上限，JSON和表单共用
const maxBodyBytes = maxMultipartMemory

// 保留的查询参数，其余参数都当作过滤条件
const (
	queryPage     = "page"
	queryOrdering = "ordering"
)

// bindPayload 把请求体解码成Payload
// JSON保留原始数字(json.Number)，表单每个key取第一个值；
// 字段是否出现由领域层判断，所以这里不能绑定到结构体。
func bindPayload(c *gin.Context) (book.Payload, error) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBodyBytes)

	switch c.ContentType() {
	case binding.MIMEPOSTForm:
		if err := c.Request.ParseForm(); err != nil {
			return nil, apperrors.ErrBindError.WithCause(err)
		}
		return formPayload(c.Request.PostForm), nil
	case binding.MIMEMultipartPOSTForm:
		if err := c.Request.ParseMultipartForm(maxMultipartMemory); err != nil {
			return nil, apperrors.ErrBindError.WithCause(err)
		}
		return formPayload(c.Request.MultipartForm.Value), nil
	}

	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		return nil, apperrors.ErrBindError.WithCause(err)
	}
	if len(bytes.TrimSpace(body)) == 0 {
		return book.Payload{}, nil
	}

	decoder := json.NewDecoder(bytes.NewReader(body))
	decoder.UseNumber()
	var raw any
	if err := decoder.Decode(&raw); err != nil {
		return nil, apperrors.ErrBindError.WithCause(err)
	}
	obj, ok := raw.(map[string]any)
	if !ok {
		return nil, apperrors.ErrBindError
	}
	return book.Payload(obj), nil
}

func formPayload(values map[string][]string) book.Payload {
	p := make(book.Payload, len(values))
	for k, v := range values {
		if len(v) > 0 {
			p[k] = v[0]
		}
	}
	return p
}

// bindName 作者/分类请求体中的name
// present为false表示请求体没有name字段
func bindName(c *gin.Context) (name string, present bool, err error) {
	p, err := bindPayload(c)
	if err != nil {
		return "", false, err
	}
	v, ok := p["name"]
	if !ok {
		return "", false, nil
	}
	s, ok := v.(string)
	if !ok {
		return "", true, apperrors.ErrBindError
	}
	return s, true, nil
}

// parseID 路径参数id，非法值按资源不存在处理
func parseID(c *gin.Context, notFound error) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, notFound
	}
	return uint(id), nil
}

// =========================================
// 分页
// =========================================

// Pager 解析列表查询参数并构造分页响应
type Pager struct {
	pageSize int
}

// NewPager 每页数量来自api.page_size
func NewPager(cfg *config.Config) *Pager {
	return &Pager{pageSize: cfg.API.PageSize}
}

// Params 从查询串解析过滤、排序和页码
// 页码不是正整数时返回ErrInvalidPage
func (p *Pager) Params(c *gin.Context) (listing.Params, error) {
	params := listing.Params{Page: 1, PageSize: p.pageSize}

	query := c.Request.URL.Query()
	if raw := query.Get(queryPage); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil || page < 1 {
			return params, apperrors.ErrInvalidPage
		}
		params.Page = page
	}
	params.Ordering = listing.ParseOrdering(query.Get(queryOrdering))

	for key, values := range query {
		if key == queryPage || key == queryOrdering || len(values) == 0 {
			continue
		}
		if params.Filters == nil {
			params.Filters = make(map[string]string)
		}
		params.Filters[key] = values[0]
	}
	return params.Normalize(), nil
}

// newPage 构造分页响应，next/previous保留其他查询参数
func newPage[T any](c *gin.Context, params listing.Params, total int64, results []T) dto.Page[T] {
	page := dto.Page[T]{Count: total, Results: results}
	if params.HasNext(total) {
		next := pageURL(c, params.Page+1)
		page.Next = &next
	}
	if params.Page > 1 {
		prev := pageURL(c, params.Page-1)
		page.Previous = &prev
	}
	return page
}

// pageURL 当前请求的绝对URL，替换page参数；第1页不带page
func pageURL(c *gin.Context, page int) string {
	scheme := "http"
	if c.Request.TLS != nil {
		scheme = "https"
	}
	if proto := c.GetHeader("X-Forwarded-Proto"); proto != "" {
		scheme = proto
	}

	query := c.Request.URL.Query()
	if page > 1 {
		query.Set(queryPage, strconv.Itoa(page))
	} else {
		query.Del(queryPage)
	}

	u := url.URL{
		Scheme:   scheme,
		Host:     c.Request.Host,
		Path:     c.Request.URL.Path,
		RawQuery: query.Encode(),
	}
	return u.String()
}
