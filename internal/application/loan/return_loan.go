package loan

import (
	"context"
	"time"

	"github.com/xiebiao/library/internal/domain/book"
	"github.com/xiebiao/library/internal/domain/loan"
	"github.com/xiebiao/library/internal/domain/member"
	"github.com/xiebiao/library/pkg/metrics"
)

// ReturnLoanUseCase 还书用例
// 与借书对称:锁定借阅行 → 状态迁移 → 反向调整计数
type ReturnLoanUseCase struct {
	loanRepo   loan.Repository
	memberRepo member.Repository
	bookRepo   book.Repository
	txManager  TxManager
}

// NewReturnLoanUseCase 创建还书用例
func NewReturnLoanUseCase(
	loanRepo loan.Repository,
	memberRepo member.Repository,
	bookRepo book.Repository,
	txManager TxManager,
) *ReturnLoanUseCase {
	return &ReturnLoanUseCase{
		loanRepo:   loanRepo,
		memberRepo: memberRepo,
		bookRepo:   bookRepo,
		txManager:  txManager,
	}
}

// Execute 执行还书用例
// 核心问题:重复归还
// 场景:同一条借阅记录被并发提交两次归还
// 处理:先SELECT FOR UPDATE锁定借阅行再检查状态,
// 第二个请求看到RETURNED状态后被拒绝,计数只回补一次
func (uc *ReturnLoanUseCase) Execute(ctx context.Context, loanID uint) (*loan.Loan, error) {
	start := time.Now()

	var returned *loan.Loan
	err := uc.txManager.Transaction(ctx, func(txCtx context.Context) error {
		// 1. 锁定借阅行(防止并发归还)
		l, err := uc.loanRepo.LockByID(txCtx, loanID)
		if err != nil {
			return err
		}

		// 2. 状态迁移:ACTIVE → RETURNED
		// MarkReturned内部拒绝重复归还(RETURNED是终态)
		if err := l.MarkReturned(); err != nil {
			return err
		}

		if err := uc.loanRepo.Update(txCtx, l); err != nil {
			return err
		}

		// 3. 反向调整计数
		// 加锁顺序与借书一致(先读者行后图书行),避免与并发借书事务交叉死锁
		// 守卫UPDATE保证在借数不为负、可借数不超过总数
		if err := uc.memberRepo.AdjustActiveLoans(txCtx, l.MemberID, -1); err != nil {
			return err
		}
		if err := uc.bookRepo.AdjustAvailable(txCtx, l.BookID, +1); err != nil {
			return err
		}

		returned = l
		return nil
	})

	metrics.ObserveHistogram(metrics.LoanTransactionDuration, time.Since(start).Seconds())
	metrics.IncCounterVec(metrics.LoanReturnsTotal, map[string]string{"result": checkoutResult(err)})

	if err != nil {
		return nil, err
	}
	return returned, nil
}
