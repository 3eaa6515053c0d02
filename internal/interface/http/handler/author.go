package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	appauthor "github.com/xiebiao/library/internal/application/author"
	"github.com/xiebiao/library/internal/domain/author"
	"github.com/xiebiao/library/internal/interface/http/dto"
	"github.com/xiebiao/library/pkg/response"
)

// AuthorHandler 作者HTTP处理器
type AuthorHandler struct {
	authorUseCase *appauthor.AuthorUseCase
	pager         *Pager
}

// NewAuthorHandler 创建作者处理器
func NewAuthorHandler(authorUseCase *appauthor.AuthorUseCase, pager *Pager) *AuthorHandler {
	return &AuthorHandler{authorUseCase: authorUseCase, pager: pager}
}

// ListAuthors 作者列表
// @Summary      作者列表
// @Tags         作者
// @Produce      json
// @Param        page     query int    false "页码"
// @Param        name     query string false "姓名精确匹配"
// @Param        ordering query string false "排序字段(id,name)"
// @Success      200 {object} dto.Page[dto.AuthorResponse]
// @Failure      404 {object} response.ErrorBody "页码无效"
// @Router       /authors/ [get]
func (h *AuthorHandler) ListAuthors(c *gin.Context) {
	params, err := h.pager.Params(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	result, err := h.authorUseCase.List(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, newPage(c, params, result.Total, dto.NewAuthorResponses(result.Authors)))
}

// CreateAuthor 新建作者
// @Summary      新建作者
// @Tags         作者
// @Accept       json,x-www-form-urlencoded
// @Produce      json
// @Param        request body dto.NameRequest true "作者姓名"
// @Success      201 {object} dto.AuthorResponse
// @Failure      400 {object} response.ErrorBody "姓名不能为空"
// @Router       /authors/ [post]
func (h *AuthorHandler) CreateAuthor(c *gin.Context) {
	name, _, err := bindName(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	a, err := h.authorUseCase.Create(c.Request.Context(), name)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.CreatedWith(c, dto.AuthorResponse{ID: a.ID, Name: a.Name})
}

// GetAuthor 作者详情
// @Summary      作者详情
// @Tags         作者
// @Produce      json
// @Param        id path int true "作者ID"
// @Success      200 {object} dto.AuthorResponse
// @Failure      404 {object} response.ErrorBody "作者不存在"
// @Router       /authors/{id}/ [get]
func (h *AuthorHandler) GetAuthor(c *gin.Context) {
	id, err := parseID(c, author.ErrAuthorNotFound)
	if err != nil {
		response.Error(c, err)
		return
	}

	a, err := h.authorUseCase.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, dto.AuthorResponse{ID: a.ID, Name: a.Name})
}

// UpdateAuthor 修改作者
// PATCH未提交name时原样返回
// @Summary      修改作者
// @Tags         作者
// @Accept       json,x-www-form-urlencoded
// @Produce      json
// @Param        id      path int             true "作者ID"
// @Param        request body dto.NameRequest true "作者姓名"
// @Success      200 {object} dto.AuthorResponse
// @Failure      400 {object} response.ErrorBody "姓名不能为空"
// @Failure      404 {object} response.ErrorBody "作者不存在"
// @Router       /authors/{id}/ [put]
// @Router       /authors/{id}/ [patch]
func (h *AuthorHandler) UpdateAuthor(c *gin.Context) {
	id, err := parseID(c, author.ErrAuthorNotFound)
	if err != nil {
		response.Error(c, err)
		return
	}
	name, present, err := bindName(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	var a *author.Author
	if !present && c.Request.Method == http.MethodPatch {
		a, err = h.authorUseCase.Get(c.Request.Context(), id)
	} else {
		a, err = h.authorUseCase.Rename(c.Request.Context(), id, name)
	}
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, dto.AuthorResponse{ID: a.ID, Name: a.Name})
}

// DeleteAuthor 删除作者(只解除与图书的关联，不删除图书)
// @Summary      删除作者
// @Tags         作者
// @Param        id path int true "作者ID"
// @Success      204
// @Failure      404 {object} response.ErrorBody "作者不存在"
// @Router       /authors/{id}/ [delete]
func (h *AuthorHandler) DeleteAuthor(c *gin.Context) {
	id, err := parseID(c, author.ErrAuthorNotFound)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.authorUseCase.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

// ListAuthorBooks 作者的图书
// @Summary      作者的图书
// @Tags         作者
// @Produce      json
// @Param        id   path  int true  "作者ID"
// @Param        page query int false "页码"
// @Success      200 {object} dto.Page[dto.BookResponse]
// @Failure      404 {object} response.ErrorBody "作者不存在 / 页码无效"
// @Router       /authors/{id}/books/ [get]
func (h *AuthorHandler) ListAuthorBooks(c *gin.Context) {
	id, err := parseID(c, author.ErrAuthorNotFound)
	if err != nil {
		response.Error(c, err)
		return
	}
	params, err := h.pager.Params(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	books, total, err := h.authorUseCase.ListBooks(c.Request.Context(), id, params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, newPage(c, params, total, dto.NewBookResponses(books)))
}

// ListAuthorGenres 作者涉及的分类
// @Summary      作者涉及的分类
// @Tags         作者
// @Produce      json
// @Param        id   path  int true  "作者ID"
// @Param        page query int false "页码"
// @Success      200 {object} dto.Page[dto.GenreResponse]
// @Failure      404 {object} response.ErrorBody "作者不存在 / 页码无效"
// @Router       /authors/{id}/genres/ [get]
func (h *AuthorHandler) ListAuthorGenres(c *gin.Context) {
	id, err := parseID(c, author.ErrAuthorNotFound)
	if err != nil {
		response.Error(c, err)
		return
	}
	params, err := h.pager.Params(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	genres, total, err := h.authorUseCase.ListGenres(c.Request.Context(), id, params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, newPage(c, params, total, dto.NewGenreResponses(genres)))
}
