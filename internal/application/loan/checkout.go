package loan

import (
	"context"
	"time"

	"github.com/xiebiao/library/internal/domain/book"
	"github.com/xiebiao/library/internal/domain/loan"
	"github.com/xiebiao/library/internal/domain/member"
	apperrors "github.com/xiebiao/library/pkg/errors"
	"github.com/xiebiao/library/pkg/metrics"
)

// TxManager 事务管理接口
// 设计说明: 接口定义在使用方(应用层),由infrastructure/persistence/mysql
// 的TxManager实现;单元测试时用Fake替换,不依赖真实数据库
type TxManager interface {
	Transaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// CheckoutUseCase 借书用例
// 这是整个系统最核心的用例:
// 涉及事务处理、悲观锁并发控制、多条业务规则校验
type CheckoutUseCase struct {
	loanRepo   loan.Repository
	memberRepo member.Repository
	bookRepo   book.Repository
	txManager  TxManager
}

// NewCheckoutUseCase 创建借书用例
func NewCheckoutUseCase(
	loanRepo loan.Repository,
	memberRepo member.Repository,
	bookRepo book.Repository,
	txManager TxManager,
) *CheckoutUseCase {
	return &CheckoutUseCase{
		loanRepo:   loanRepo,
		memberRepo: memberRepo,
		bookRepo:   bookRepo,
		txManager:  txManager,
	}
}

// CheckoutRequest 借书请求DTO
type CheckoutRequest struct {
	MemberID uint // 读者ID
	BookID   uint // 图书ID
}

// Execute 执行借书用例
// 核心问题:最后一本书的并发借出
// 场景:某书可借副本只剩1本,两个读者同时借
// 错误实现:
//  1. 查询可借数 → 1本
//  2. 判断够不够 → 够
//  3. 扣减可借数 → available = available - 1
//     结果:两个请求都通过了步骤2,最后借出2本(可借数变成-1!)
//
// 正确实现:悲观锁
//  1. SELECT FOR UPDATE 锁定读者行和图书行(固定顺序:先读者后图书,避免死锁)
//  2. 检查借阅上限、可借副本、重复借阅
//  3. 创建ACTIVE借阅记录
//  4. 可借数-1、读者在借数+1(守卫UPDATE兜底)
//  5. COMMIT释放锁
func (uc *CheckoutUseCase) Execute(ctx context.Context, req CheckoutRequest) (*loan.Loan, error) {
	start := time.Now()

	var created *loan.Loan
	err := uc.txManager.Transaction(ctx, func(txCtx context.Context) error {
		// ========================================
		// 步骤1:锁定读者与图书(悲观锁)
		// ========================================
		// 所有借还事务都按"先读者后图书"的顺序加锁,避免交叉死锁
		m, err := uc.memberRepo.LockByID(txCtx, req.MemberID)
		if err != nil {
			return err
		}

		b, err := uc.bookRepo.LockByID(txCtx, req.BookID)
		if err != nil {
			return err
		}

		// ========================================
		// 步骤2:业务规则校验(必须在锁定后检查)
		// ========================================
		// 规则1:读者同时在借不能超过上限(3本)
		if !m.CanBorrow() {
			return member.ErrLoanLimitReached
		}

		// 规则2:图书必须有可借副本
		if !b.HasAvailableCopy() {
			return book.ErrNoCopiesAvailable
		}

		// 规则3:同一读者不能重复借同一本书
		count, err := uc.loanRepo.CountActiveByMemberAndBook(txCtx, req.MemberID, req.BookID)
		if err != nil {
			return err
		}
		if count > 0 {
			return loan.ErrDuplicateLoan
		}

		// ========================================
		// 步骤3:创建借阅记录 + 调整计数
		// ========================================
		l := loan.NewLoan(req.MemberID, req.BookID)
		if err := uc.loanRepo.Create(txCtx, l); err != nil {
			return err
		}

		// 守卫UPDATE是第二道防线:即使上面的检查被绕过,
		// 数据库层也不会让计数越界
		if err := uc.bookRepo.AdjustAvailable(txCtx, req.BookID, -1); err != nil {
			return err
		}
		if err := uc.memberRepo.AdjustActiveLoans(txCtx, req.MemberID, +1); err != nil {
			return err
		}

		created = l
		return nil
	})

	metrics.ObserveHistogram(metrics.LoanTransactionDuration, time.Since(start).Seconds())
	metrics.IncCounterVec(metrics.LoanCheckoutsTotal, map[string]string{"result": checkoutResult(err)})

	if err != nil {
		return nil, err
	}
	return created, nil
}

// checkoutResult 将用例结果映射为指标标签
func checkoutResult(err error) string {
	switch {
	case err == nil:
		return "success"
	case isRejection(err):
		return "rejected"
	default:
		return "error"
	}
}

// isRejection 业务规则拒绝(4xxxx),区别于系统错误(5xxxx)
func isRejection(err error) bool {
	return apperrors.IsAppError(err) && apperrors.GetAppError(err).Code < 50000
}
