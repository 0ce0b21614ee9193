package book

import (
	"context"

	"github.com/xiebiao/library/internal/domain/book"
)

// DeleteBookUseCase 图书删除用例
// 删除前必须确认没有在借副本,检查和删除放在同一事务内,
// 防止检查通过后、删除提交前又有新的借出
type DeleteBookUseCase struct {
	bookRepo  book.Repository
	txManager TxManager
}

// NewDeleteBookUseCase 创建图书删除用例
func NewDeleteBookUseCase(bookRepo book.Repository, txManager TxManager) *DeleteBookUseCase {
	return &DeleteBookUseCase{
		bookRepo:  bookRepo,
		txManager: txManager,
	}
}

// Execute 执行图书删除用例
// 业务规则: 图书仍有在借副本(available < total)时拒绝删除
func (uc *DeleteBookUseCase) Execute(ctx context.Context, id uint) error {
	return uc.txManager.Transaction(ctx, func(txCtx context.Context) error {
		// 锁定图书行,冻结在借计数
		b, err := uc.bookRepo.LockByID(txCtx, id)
		if err != nil {
			return err
		}

		if b.ActiveLoans() > 0 {
			return book.ErrBookHasActiveLoans
		}

		return uc.bookRepo.Delete(txCtx, id)
	})
}
