package book

import (
	"context"

	"github.com/xiebiao/library/internal/domain/book"
)

// AddBookUseCase 图书录入用例
// 设计说明:
// 1. 应用层负责用例编排,协调领域服务完成业务流程
// 2. 此用例比较简单,只需调用领域服务即可
type AddBookUseCase struct {
	bookService book.Service
}

// NewAddBookUseCase 创建图书录入用例
func NewAddBookUseCase(bookService book.Service) *AddBookUseCase {
	return &AddBookUseCase{
		bookService: bookService,
	}
}

// AddBookRequest 录入请求DTO
type AddBookRequest struct {
	ISBN          string // ISBN号
	Title         string // 书名
	Author        string // 作者
	TotalQuantity int    // 馆藏副本总数
}

// Execute 执行图书录入用例
// 业务规则校验(非空检查、数量下限、ISBN重复)由领域服务负责
func (uc *AddBookUseCase) Execute(ctx context.Context, req AddBookRequest) (*book.Book, error) {
	return uc.bookService.AddBook(ctx, req.ISBN, req.Title, req.Author, req.TotalQuantity)
}
