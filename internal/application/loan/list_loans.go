package loan

import (
	"context"

	"github.com/xiebiao/library/internal/domain/loan"
	"github.com/xiebiao/library/internal/domain/member"
)

// ListLoansUseCase 借阅查询用例(只读,不走事务)
type ListLoansUseCase struct {
	loanRepo   loan.Repository
	memberRepo member.Repository
}

// NewListLoansUseCase 创建借阅查询用例
func NewListLoansUseCase(loanRepo loan.Repository, memberRepo member.Repository) *ListLoansUseCase {
	return &ListLoansUseCase{
		loanRepo:   loanRepo,
		memberRepo: memberRepo,
	}
}

// ListAll 查询全部借阅记录(含已归还)
// 读者姓名与书名在查询时联表得出,不存在于loans表
func (uc *ListLoansUseCase) ListAll(ctx context.Context) ([]*loan.Detail, error) {
	return uc.loanRepo.ListDetailed(ctx)
}

// ListActiveByMember 查询某读者的全部在借记录
// 读者不存在时返回404,与"读者存在但无在借"(空列表)区分开
func (uc *ListLoansUseCase) ListActiveByMember(ctx context.Context, memberID uint) ([]*loan.Detail, error) {
	if _, err := uc.memberRepo.FindByID(ctx, memberID); err != nil {
		return nil, err
	}
	return uc.loanRepo.ListActiveByMember(ctx, memberID)
}
