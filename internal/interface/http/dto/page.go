package dto

// Page 分页响应
// next/previous为相邻页的绝对URL，到边界时为null
type Page[T any] struct {
	Count    int64   `json:"count" example:"42"`
	Next     *string `json:"next" example:"http://localhost:8080/books/?page=3"`
	Previous *string `json:"previous" example:"http://localhost:8080/books/"`
	Results  []T     `json:"results"`
}
