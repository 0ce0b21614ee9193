package member

import (
	"context"

	"github.com/xiebiao/library/internal/domain/member"
)

// UpdateMemberUseCase 读者信息修改用例
// 只修改档案字段(姓名/证件号/邮箱),不触碰在借计数,无需事务
type UpdateMemberUseCase struct {
	memberService member.Service
}

// NewUpdateMemberUseCase 创建读者修改用例
func NewUpdateMemberUseCase(memberService member.Service) *UpdateMemberUseCase {
	return &UpdateMemberUseCase{
		memberService: memberService,
	}
}

// UpdateMemberRequest 修改请求DTO
type UpdateMemberRequest struct {
	ID                     uint   // 读者ID
	Name                   string // 姓名
	IdentificationDocument string // 证件号
	Email                  string // 邮箱
}

// Execute 执行读者修改用例
func (uc *UpdateMemberUseCase) Execute(ctx context.Context, req UpdateMemberRequest) (*member.Member, error) {
	return uc.memberService.UpdateMember(ctx, req.ID, req.Name, req.IdentificationDocument, req.Email)
}
