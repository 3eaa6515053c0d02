package handler

import (
	"github.com/gin-gonic/gin"

	appbook "github.com/xiebiao/library/internal/application/book"
	"github.com/xiebiao/library/internal/domain/book"
	"github.com/xiebiao/library/internal/interface/http/dto"
	"github.com/xiebiao/library/pkg/response"
)

// InventoryHandler 库存只读接口
// 库存的修改只能通过图书接口，保证不变式不被绕过
type InventoryHandler struct {
	queryBooksUseCase *appbook.QueryBooksUseCase
	pager             *Pager
}

func NewInventoryHandler(queryBooksUseCase *appbook.QueryBooksUseCase, pager *Pager) *InventoryHandler {
	return &InventoryHandler{queryBooksUseCase: queryBooksUseCase, pager: pager}
}

// ListInventory 库存列表
// @Summary      库存列表
// @Tags         库存
// @Produce      json
// @Param        page query int false "页码"
// @Param        book query int false "图书ID"
// @Success      200 {object} dto.Page[dto.InventoryItem]
// @Failure      404 {object} response.ErrorBody "页码无效"
// @Router       /inventory/ [get]
func (h *InventoryHandler) ListInventory(c *gin.Context) {
	params, err := h.pager.Params(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	result, err := h.queryBooksUseCase.ListInventory(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, newPage(c, params, result.Total, dto.NewInventoryItems(result.Items)))
}

// GetInventory 某本书的库存
// @Summary      图书库存
// @Tags         库存
// @Produce      json
// @Param        id path int true "图书ID"
// @Success      200 {object} dto.InventoryItem
// @Failure      404 {object} response.ErrorBody "库存不存在"
// @Router       /inventory/{id}/ [get]
func (h *InventoryHandler) GetInventory(c *gin.Context) {
	id, err := parseID(c, book.ErrInventoryNotFound)
	if err != nil {
		response.Error(c, err)
		return
	}

	inv, err := h.queryBooksUseCase.GetInventory(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, dto.NewInventoryItem(inv))
}
