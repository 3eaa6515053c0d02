package handler

import (
	"github.com/gin-gonic/gin"

	appbook "github.com/xiebiao/library/internal/application/book"
	"github.com/xiebiao/library/internal/domain/book"
	"github.com/xiebiao/library/internal/interface/http/dto"
	"github.com/xiebiao/library/pkg/response"
)

// BookHandler 图书HTTP处理器
type BookHandler struct {
	createBookUseCase *appbook.CreateBookUseCase
	updateBookUseCase *appbook.UpdateBookUseCase
	deleteBookUseCase *appbook.DeleteBookUseCase
	queryBooksUseCase *appbook.QueryBooksUseCase
	pager             *Pager
}

// NewBookHandler 创建图书处理器
func NewBookHandler(
	createBookUseCase *appbook.CreateBookUseCase,
	updateBookUseCase *appbook.UpdateBookUseCase,
	deleteBookUseCase *appbook.DeleteBookUseCase,
	queryBooksUseCase *appbook.QueryBooksUseCase,
	pager *Pager,
) *BookHandler {
	return &BookHandler{
		createBookUseCase: createBookUseCase,
		updateBookUseCase: updateBookUseCase,
		deleteBookUseCase: deleteBookUseCase,
		queryBooksUseCase: queryBooksUseCase,
		pager:             pager,
	}
}

// ListBooks 图书列表
// @Summary      图书列表
// @Description  支持精确过滤(isbn,title,type,edition,pages,rating,rating_count,review_count,author__name,genre__name)
// @Description  和排序(ordering=id,title,pages,rating,edition，"-"前缀降序)
// @Tags         图书
// @Produce      json
// @Param        page          query int    false "页码"
// @Param        ordering      query string false "排序字段" example(-rating,title)
// @Param        author__name  query string false "作者姓名"
// @Param        genre__name   query string false "分类名称"
// @Success      200 {object} dto.Page[dto.BookResponse]
// @Failure      400 {object} response.ErrorBody "过滤值类型错误"
// @Failure      404 {object} response.ErrorBody "页码无效"
// @Router       /books/ [get]
func (h *BookHandler) ListBooks(c *gin.Context) {
	params, err := h.pager.Params(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	result, err := h.queryBooksUseCase.List(c.Request.Context(), book.ListParams{Params: params})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, newPage(c, params, result.Total, dto.NewBookResponses(result.Books)))
}

// GetBook 图书详情
// @Summary      图书详情
// @Tags         图书
// @Produce      json
// @Param        id path int true "图书ID"
// @Success      200 {object} dto.BookResponse
// @Failure      404 {object} response.ErrorBody "图书不存在"
// @Router       /books/{id}/ [get]
func (h *BookHandler) GetBook(c *gin.Context) {
	id, err := parseID(c, book.ErrBookNotFound)
	if err != nil {
		response.Error(c, err)
		return
	}

	b, err := h.queryBooksUseCase.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, dto.NewBookResponse(b))
}

// CreateBook 创建图书
// @Summary      创建图书
// @Description  必须同时提交库存inventory{owned,available}，也接受表单字段inventory.owned/inventory.available
// @Tags         图书
// @Accept       json,x-www-form-urlencoded,mpfd
// @Produce      json
// @Param        request body dto.BookRequest true "图书信息"
// @Success      201 {object} response.StatusBody
// @Failure      400 {object} response.ErrorBody "缺少库存 / 库存不合法 / 图书数据不合法"
// @Router       /books/ [post]
func (h *BookHandler) CreateBook(c *gin.Context) {
	payload, err := bindPayload(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	if _, err := h.createBookUseCase.Execute(c.Request.Context(), payload); err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c)
}

// UpdateBook 全量更新图书
// @Summary      全量更新图书
// @Description  未提交的字段重置为默认值；提交inventory时owned和available都必填，不提交则库存保持不变
// @Tags         图书
// @Accept       json,x-www-form-urlencoded,mpfd
// @Produce      json
// @Param        id      path int             true "图书ID"
// @Param        request body dto.BookRequest true "图书信息"
// @Success      204
// @Failure      400 {object} response.ErrorBody "图书数据不合法 / 库存不合法"
// @Failure      404 {object} response.ErrorBody "图书不存在"
// @Router       /books/{id}/ [put]
func (h *BookHandler) UpdateBook(c *gin.Context) {
	h.update(c, false)
}

// PartialUpdateBook 部分更新图书
// @Summary      部分更新图书
// @Description  只修改提交的字段；库存只提交一项时与已存储的另一项合并后校验
// @Tags         图书
// @Accept       json,x-www-form-urlencoded,mpfd
// @Produce      json
// @Param        id      path int             true "图书ID"
// @Param        request body dto.BookRequest true "图书信息"
// @Success      204
// @Failure      400 {object} response.ErrorBody "图书数据不合法 / 库存不合法"
// @Failure      404 {object} response.ErrorBody "图书不存在"
// @Router       /books/{id}/ [patch]
func (h *BookHandler) PartialUpdateBook(c *gin.Context) {
	h.update(c, true)
}

func (h *BookHandler) update(c *gin.Context, partial bool) {
	id, err := parseID(c, book.ErrBookNotFound)
	if err != nil {
		response.Error(c, err)
		return
	}
	payload, err := bindPayload(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	_, err = h.updateBookUseCase.Execute(c.Request.Context(), appbook.UpdateBookRequest{
		ID:      id,
		Payload: payload,
		Partial: partial,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

// DeleteBook 删除图书(连同库存)
// @Summary      删除图书
// @Tags         图书
// @Param        id path int true "图书ID"
// @Success      204
// @Failure      404 {object} response.ErrorBody "图书不存在"
// @Router       /books/{id}/ [delete]
func (h *BookHandler) DeleteBook(c *gin.Context) {
	id, err := parseID(c, book.ErrBookNotFound)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.deleteBookUseCase.Execute(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}
