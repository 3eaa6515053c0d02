package dto

import (
	"github.com/xiebiao/library/internal/domain/author"
	"github.com/xiebiao/library/internal/domain/genre"
)

// AuthorResponse 作者
type AuthorResponse struct {
	ID   uint   `json:"id" example:"1"`
	Name string `json:"name" example:"Suzanne Collins"`
}

// GenreResponse 分类
type GenreResponse struct {
	ID   uint   `json:"id" example:"1"`
	Name string `json:"name" example:"Young Adult"`
}

// NameRequest 作者/分类写请求
type NameRequest struct {
	Name string `json:"name" form:"name" example:"Science Fiction"`
}

func NewAuthorResponses(authors []*author.Author) []AuthorResponse {
	out := make([]AuthorResponse, len(authors))
	for i, a := range authors {
		out[i] = AuthorResponse{ID: a.ID, Name: a.Name}
	}
	return out
}

func NewGenreResponses(genres []*genre.Genre) []GenreResponse {
	out := make([]GenreResponse, len(genres))
	for i, g := range genres {
		out[i] = GenreResponse{ID: g.ID, Name: g.Name}
	}
	return out
}
