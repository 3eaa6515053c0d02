package book

import (
	"github.com/xiebiao/library/internal/domain/author"
	"github.com/xiebiao/library/internal/domain/genre"
)

// Format 图书装帧类型
type Format string

const (
	FormatNone      Format = ""
	FormatKindle    Format = "Kindle Edition"
	FormatHardcover Format = "Hardcover"
	FormatEbook     Format = "ebook"
	FormatPaperback Format = "Paperback"
)

// Valid 是否为允许的取值(空值表示未知)
func (f Format) Valid() bool {
	switch f {
	case FormatNone, FormatKindle, FormatHardcover, FormatEbook, FormatPaperback:
		return true
	}
	return false
}

// Book 图书实体(聚合根)
// 设计说明:
// 1. ISBN不是业务主键：可以为空，也允许重复
// 2. 可选的数值字段用指针表示，nil即"未填写"(区别于0)
// 3. 作者、分类是共享实体，图书只持有引用
// 4. Inventory与图书一对一，随图书创建和删除
type Book struct {
	ID          uint
	ISBN        string
	Title       string
	Type        Format
	Edition     string
	Pages       *int
	Rating      *float64
	RatingCount *int
	ReviewCount *int
	ImageURL    string
	Description string

	Authors   []author.Author
	Genres    []genre.Genre
	Inventory *Inventory
}

// Inventory 库存实体
// 不变式：Owned >= 1 且 0 <= Available <= Owned
type Inventory struct {
	ID        uint
	BookID    uint
	Owned     int // 馆藏册数
	Available int // 可借册数
}
