package dto

import (
	"time"

	"github.com/xiebiao/library/internal/domain/book"
)

// AddBookRequest HTTP图书录入请求
// validator tag说明:
// - required: 必填字段
// - min/max: 数值范围校验
type AddBookRequest struct {
	ISBN          string `json:"isbn" binding:"required,max=20" example:"9787115428028"`
	Title         string `json:"title" binding:"required,max=200" example:"Go语言实战"`
	Author        string `json:"author" binding:"required,max=100" example:"威廉·肯尼迪"`
	TotalQuantity int    `json:"total_quantity" binding:"required,min=1,max=9999" example:"3"`
}

// UpdateBookRequest HTTP图书修改请求
// 总数调低到在借数量以下会被拒绝(40005)
type UpdateBookRequest struct {
	ISBN          string `json:"isbn" binding:"required,max=20" example:"9787115428028"`
	Title         string `json:"title" binding:"required,max=200" example:"Go语言实战(第2版)"`
	Author        string `json:"author" binding:"required,max=100" example:"威廉·肯尼迪"`
	TotalQuantity int    `json:"total_quantity" binding:"required,min=1,max=9999" example:"5"`
}

// BookResponse HTTP图书响应
type BookResponse struct {
	ID                uint   `json:"id" example:"1"`
	ISBN              string `json:"isbn" example:"9787115428028"`
	Title             string `json:"title" example:"Go语言实战"`
	Author            string `json:"author" example:"威廉·肯尼迪"`
	TotalQuantity     int    `json:"total_quantity" example:"3"`     // 馆藏副本总数
	AvailableQuantity int    `json:"available_quantity" example:"2"` // 当前可借副本数
	CreatedAt         string `json:"created_at" example:"2026-01-15 10:30:00"`
	UpdatedAt         string `json:"updated_at" example:"2026-01-15 10:30:00"`
}

// ListBooksRequest HTTP图书列表请求
type ListBooksRequest struct {
	Page     int    `form:"page" binding:"omitempty,min=1" example:"1"`
	PageSize int    `form:"page_size" binding:"omitempty,min=1,max=100" example:"20"`
	Keyword  string `form:"keyword" binding:"omitempty,max=100" example:"Go"`
}

// ListBooksResponse HTTP图书列表响应
type ListBooksResponse struct {
	List  []BookResponse `json:"list"`
	Total int64          `json:"total" example:"100"`
	Page  int            `json:"page" example:"1"`
	Size  int            `json:"size" example:"20"`
}

// ToBookResponse 领域实体 → HTTP响应
func ToBookResponse(b *book.Book) BookResponse {
	return BookResponse{
		ID:                b.ID,
		ISBN:              b.ISBN,
		Title:             b.Title,
		Author:            b.Author,
		TotalQuantity:     b.TotalQuantity,
		AvailableQuantity: b.AvailableQuantity,
		CreatedAt:         FormatTime(b.CreatedAt),
		UpdatedAt:         FormatTime(b.UpdatedAt),
	}
}

// FormatTime 统一的时间展示格式
func FormatTime(t time.Time) string {
	return t.Format("2006-01-02 15:04:05")
}
