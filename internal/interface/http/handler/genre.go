package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	appgenre "github.com/xiebiao/library/internal/application/genre"
	"github.com/xiebiao/library/internal/domain/genre"
	"github.com/xiebiao/library/internal/interface/http/dto"
	"github.com/xiebiao/library/pkg/response"
)

// GenreHandler 分类HTTP处理器
type GenreHandler struct {
	genreUseCase *appgenre.GenreUseCase
	pager        *Pager
}

// NewGenreHandler 创建分类处理器
func NewGenreHandler(genreUseCase *appgenre.GenreUseCase, pager *Pager) *GenreHandler {
	return &GenreHandler{genreUseCase: genreUseCase, pager: pager}
}

// ListGenres 分类列表
// @Summary      分类列表
// @Tags         分类
// @Produce      json
// @Param        page     query int    false "页码"
// @Param        name     query string false "名称精确匹配"
// @Param        ordering query string false "排序字段(id,name)"
// @Success      200 {object} dto.Page[dto.GenreResponse]
// @Failure      404 {object} response.ErrorBody "页码无效"
// @Router       /genres/ [get]
func (h *GenreHandler) ListGenres(c *gin.Context) {
	params, err := h.pager.Params(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	result, err := h.genreUseCase.List(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, newPage(c, params, result.Total, dto.NewGenreResponses(result.Genres)))
}

// CreateGenre 新建分类
// @Summary      新建分类
// @Tags         分类
// @Accept       json,x-www-form-urlencoded
// @Produce      json
// @Param        request body dto.NameRequest true "分类名称(最多50字符，唯一)"
// @Success      201 {object} dto.GenreResponse
// @Failure      400 {object} response.ErrorBody "名称不合法 / 名称已存在"
// @Router       /genres/ [post]
func (h *GenreHandler) CreateGenre(c *gin.Context) {
	name, _, err := bindName(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	g, err := h.genreUseCase.Create(c.Request.Context(), name)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.CreatedWith(c, dto.GenreResponse{ID: g.ID, Name: g.Name})
}

// GetGenre 分类详情
// @Summary      分类详情
// @Tags         分类
// @Produce      json
// @Param        id path int true "分类ID"
// @Success      200 {object} dto.GenreResponse
// @Failure      404 {object} response.ErrorBody "分类不存在"
// @Router       /genres/{id}/ [get]
func (h *GenreHandler) GetGenre(c *gin.Context) {
	id, err := parseID(c, genre.ErrGenreNotFound)
	if err != nil {
		response.Error(c, err)
		return
	}

	g, err := h.genreUseCase.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, dto.GenreResponse{ID: g.ID, Name: g.Name})
}

// UpdateGenre 修改分类
// @Summary      修改分类
// @Tags         分类
// @Accept       json,x-www-form-urlencoded
// @Produce      json
// @Param        id      path int             true "分类ID"
// @Param        request body dto.NameRequest true "分类名称"
// @Success      200 {object} dto.GenreResponse
// @Failure      400 {object} response.ErrorBody "名称不合法 / 名称已存在"
// @Failure      404 {object} response.ErrorBody "分类不存在"
// @Router       /genres/{id}/ [put]
// @Router       /genres/{id}/ [patch]
func (h *GenreHandler) UpdateGenre(c *gin.Context) {
	id, err := parseID(c, genre.ErrGenreNotFound)
	if err != nil {
		response.Error(c, err)
		return
	}
	name, present, err := bindName(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	var g *genre.Genre
	if !present && c.Request.Method == http.MethodPatch {
		g, err = h.genreUseCase.Get(c.Request.Context(), id)
	} else {
		g, err = h.genreUseCase.Rename(c.Request.Context(), id, name)
	}
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, dto.GenreResponse{ID: g.ID, Name: g.Name})
}

// DeleteGenre 删除分类
// @Summary      删除分类
// @Tags         分类
// @Param        id path int true "分类ID"
// @Success      204
// @Failure      404 {object} response.ErrorBody "分类不存在"
// @Router       /genres/{id}/ [delete]
func (h *GenreHandler) DeleteGenre(c *gin.Context) {
	id, err := parseID(c, genre.ErrGenreNotFound)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.genreUseCase.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

// ListGenreBooks 分类下的图书
// @Summary      分类下的图书
// @Tags         分类
// @Produce      json
// @Param        id   path  int true  "分类ID"
// @Param        page query int false "页码"
// @Success      200 {object} dto.Page[dto.BookResponse]
// @Failure      404 {object} response.ErrorBody "分类不存在 / 页码无效"
// @Router       /genres/{id}/books/ [get]
func (h *GenreHandler) ListGenreBooks(c *gin.Context) {
	id, err := parseID(c, genre.ErrGenreNotFound)
	if err != nil {
		response.Error(c, err)
		return
	}
	params, err := h.pager.Params(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	books, total, err := h.genreUseCase.ListBooks(c.Request.Context(), id, params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, newPage(c, params, total, dto.NewBookResponses(books)))
}

// ListGenreAuthors 分类下的作者
// @Summary      分类下的作者
// @Tags         分类
// @Produce      json
// @Param        id   path  int true  "分类ID"
// @Param        page query int false "页码"
// @Success      200 {object} dto.Page[dto.AuthorResponse]
// @Failure      404 {object} response.ErrorBody "分类不存在 / 页码无效"
// @Router       /genres/{id}/authors/ [get]
func (h *GenreHandler) ListGenreAuthors(c *gin.Context) {
	id, err := parseID(c, genre.ErrGenreNotFound)
	if err != nil {
		response.Error(c, err)
		return
	}
	params, err := h.pager.Params(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	authors, total, err := h.genreUseCase.ListAuthors(c.Request.Context(), id, params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, newPage(c, params, total, dto.NewAuthorResponses(authors)))
}
