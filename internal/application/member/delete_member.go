package member

import (
	"context"

	"github.com/xiebiao/library/internal/domain/member"
)

// TxManager 事务管理接口(由infrastructure/persistence/mysql实现)
type TxManager interface {
	Transaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// DeleteMemberUseCase 读者注销用例
// 注销前必须确认没有未归还借阅,检查和删除放在同一事务内,
// 防止检查通过后、删除提交前又借出新书
type DeleteMemberUseCase struct {
	memberRepo member.Repository
	txManager  TxManager
}

// NewDeleteMemberUseCase 创建读者注销用例
func NewDeleteMemberUseCase(memberRepo member.Repository, txManager TxManager) *DeleteMemberUseCase {
	return &DeleteMemberUseCase{
		memberRepo: memberRepo,
		txManager:  txManager,
	}
}

// Execute 执行读者注销用例
// 业务规则: 读者仍有未归还借阅(active_loans > 0)时拒绝注销
func (uc *DeleteMemberUseCase) Execute(ctx context.Context, id uint) error {
	return uc.txManager.Transaction(ctx, func(txCtx context.Context) error {
		// 锁定读者行,冻结在借计数
		m, err := uc.memberRepo.LockByID(txCtx, id)
		if err != nil {
			return err
		}

		if m.HasActiveLoans() {
			return member.ErrMemberHasActiveLoan
		}

		return uc.memberRepo.Delete(txCtx, id)
	})
}
