package member

import (
	"context"

	"github.com/xiebiao/library/internal/domain/member"
)

// ListMembersUseCase 读者查询用例(只读)
type ListMembersUseCase struct {
	memberService member.Service
}

// NewListMembersUseCase 创建读者查询用例
func NewListMembersUseCase(memberService member.Service) *ListMembersUseCase {
	return &ListMembersUseCase{
		memberService: memberService,
	}
}

// ListMembersRequest 列表查询请求DTO
type ListMembersRequest struct {
	Page     int    // 页码(从1开始)
	PageSize int    // 每页数量
	Keyword  string // 搜索关键词(姓名/证件号/邮箱)
}

// Execute 分页查询读者列表
func (uc *ListMembersUseCase) Execute(ctx context.Context, req ListMembersRequest) ([]*member.Member, int64, error) {
	if req.Page < 1 {
		req.Page = 1
	}
	if req.PageSize < 1 || req.PageSize > 100 {
		req.PageSize = 20
	}
	return uc.memberService.ListMembers(ctx, member.ListParams{
		Page:     req.Page,
		PageSize: req.PageSize,
		Keyword:  req.Keyword,
	})
}

// Get 查询单个读者
func (uc *ListMembersUseCase) Get(ctx context.Context, id uint) (*member.Member, error) {
	return uc.memberService.GetMember(ctx, id)
}
