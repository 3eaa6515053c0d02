package dto

import (
	"github.com/xiebiao/library/internal/domain/book"
)

// BookResponse 图书详情/列表项
// author、genre为只读的嵌套对象；没有库存记录时inventory为null
type BookResponse struct {
	ID          uint               `json:"id" example:"1"`
	ISBN        string             `json:"isbn" example:"9780439023481"`
	Title       string             `json:"title" example:"The Hunger Games"`
	Type        string             `json:"type" example:"Hardcover"`
	Edition     string             `json:"edition" example:"First Edition"`
	Pages       *int               `json:"pages" example:"374"`
	Rating      *float64           `json:"rating" example:"4.33"`
	RatingCount *int               `json:"rating_count" example:"5519135"`
	ReviewCount *int               `json:"review_count" example:"160706"`
	ImageURL    string             `json:"image_url" example:"https://images.example.com/hunger-games.jpg"`
	Description string             `json:"description"`
	Author      []AuthorResponse   `json:"author"`
	Genre       []GenreResponse    `json:"genre"`
	Inventory   *InventoryResponse `json:"inventory"`
}

// InventoryResponse 库存(嵌套在图书中)
type InventoryResponse struct {
	Available int `json:"available" example:"2"`
	Owned     int `json:"owned" example:"3"`
}

// InventoryItem 库存列表项，带图书id
type InventoryItem struct {
	Book      uint `json:"book" example:"1"`
	Available int  `json:"available" example:"2"`
	Owned     int  `json:"owned" example:"3"`
}

// BookRequest 图书写请求(仅用于文档)
// 实际请求体按原始JSON/表单解码，字段出现与否本身有语义(PUT重置、PATCH保留)
type BookRequest struct {
	ISBN        string            `json:"isbn" example:"9780439023481"`
	Title       string            `json:"title" example:"The Hunger Games"`
	Type        string            `json:"type" enums:"Kindle Edition,Hardcover,ebook,Paperback" example:"Hardcover"`
	Edition     string            `json:"edition"`
	Pages       *int              `json:"pages" example:"374"`
	Rating      *float64          `json:"rating" example:"4.33"`
	RatingCount *int              `json:"rating_count"`
	ReviewCount *int              `json:"review_count"`
	ImageURL    string            `json:"image_url"`
	Description string            `json:"description"`
	Inventory   InventoryResponse `json:"inventory"`
}

// NewBookResponse 领域实体 → 响应
func NewBookResponse(b *book.Book) BookResponse {
	resp := BookResponse{
		ID:          b.ID,
		ISBN:        b.ISBN,
		Title:       b.Title,
		Type:        string(b.Type),
		Edition:     b.Edition,
		Pages:       b.Pages,
		Rating:      b.Rating,
		RatingCount: b.RatingCount,
		ReviewCount: b.ReviewCount,
		ImageURL:    b.ImageURL,
		Description: b.Description,
		Author:      make([]AuthorResponse, len(b.Authors)),
		Genre:       make([]GenreResponse, len(b.Genres)),
	}
	for i, a := range b.Authors {
		resp.Author[i] = AuthorResponse{ID: a.ID, Name: a.Name}
	}
	for i, g := range b.Genres {
		resp.Genre[i] = GenreResponse{ID: g.ID, Name: g.Name}
	}
	if b.Inventory != nil {
		resp.Inventory = &InventoryResponse{
			Available: b.Inventory.Available,
			Owned:     b.Inventory.Owned,
		}
	}
	return resp
}

// NewBookResponses 列表转换
func NewBookResponses(books []*book.Book) []BookResponse {
	out := make([]BookResponse, len(books))
	for i, b := range books {
		out[i] = NewBookResponse(b)
	}
	return out
}

// NewInventoryItem 库存实体 → 列表项
func NewInventoryItem(inv *book.Inventory) InventoryItem {
	return InventoryItem{Book: inv.BookID, Available: inv.Available, Owned: inv.Owned}
}

func NewInventoryItems(items []*book.Inventory) []InventoryItem {
	out := make([]InventoryItem, len(items))
	for i, inv := range items {
		out[i] = NewInventoryItem(inv)
	}
	return out
}
