package book

import (
	"context"
	"errors"
	"strings"

	"github.com/xiebiao/library/internal/domain/book"
	apperrors "github.com/xiebiao/library/pkg/errors"
)

// TxManager 事务管理接口(由infrastructure/persistence/mysql实现)
type TxManager interface {
	Transaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// UpdateBookUseCase 图书信息修改用例
// 修改馆藏总数会与在借数量比较,必须在事务内锁定图书行,
// 防止与并发的借书事务读到不一致的计数
type UpdateBookUseCase struct {
	bookRepo  book.Repository
	txManager TxManager
}

// NewUpdateBookUseCase 创建图书修改用例
func NewUpdateBookUseCase(bookRepo book.Repository, txManager TxManager) *UpdateBookUseCase {
	return &UpdateBookUseCase{
		bookRepo:  bookRepo,
		txManager: txManager,
	}
}

// UpdateBookRequest 修改请求DTO
type UpdateBookRequest struct {
	ID            uint   // 图书ID
	ISBN          string // ISBN号
	Title         string // 书名
	Author        string // 作者
	TotalQuantity int    // 馆藏副本总数
}

// Execute 执行图书修改用例
// 业务规则:
// 1. 新的馆藏总数不能低于当前在借数量
// 2. 可借数随总数同步调整: available = newTotal - activeLoans
// 3. 修改ISBN时检查新ISBN未被占用
func (uc *UpdateBookUseCase) Execute(ctx context.Context, req UpdateBookRequest) (*book.Book, error) {
	req.ISBN = strings.TrimSpace(req.ISBN)
	if req.ISBN == "" {
		return nil, book.ErrInvalidISBN
	}
	if strings.TrimSpace(req.Title) == "" {
		return nil, apperrors.New(apperrors.ErrCodeInvalidParams, "书名不能为空")
	}
	if strings.TrimSpace(req.Author) == "" {
		return nil, apperrors.New(apperrors.ErrCodeInvalidParams, "作者不能为空")
	}

	var updated *book.Book
	err := uc.txManager.Transaction(ctx, func(txCtx context.Context) error {
		// 1. 锁定图书行,冻结在借计数
		b, err := uc.bookRepo.LockByID(txCtx, req.ID)
		if err != nil {
			return err
		}

		// 2. ISBN变更时检查唯一性
		if req.ISBN != b.ISBN {
			existing, err := uc.bookRepo.FindByISBN(txCtx, req.ISBN)
			if err != nil && !errors.Is(err, book.ErrBookNotFound) {
				return err
			}
			if existing != nil && existing.ID != b.ID {
				return book.ErrISBNDuplicate
			}
			b.ISBN = req.ISBN
		}

		// 3. 修改总数(实体方法内做在借数量下限检查)
		if err := b.ChangeTotalQuantity(req.TotalQuantity); err != nil {
			return err
		}

		b.UpdateInfo(req.Title, req.Author)

		if err := uc.bookRepo.Update(txCtx, b); err != nil {
			return err
		}

		updated = b
		return nil
	})

	if err != nil {
		return nil, err
	}
	return updated, nil
}
