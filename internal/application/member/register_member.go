package member

import (
	"context"

	"github.com/xiebiao/library/internal/domain/member"
)

// RegisterMemberUseCase 读者注册用例
// 字段校验与证件号/邮箱唯一性检查由领域服务负责
type RegisterMemberUseCase struct {
	memberService member.Service
}

// NewRegisterMemberUseCase 创建读者注册用例
func NewRegisterMemberUseCase(memberService member.Service) *RegisterMemberUseCase {
	return &RegisterMemberUseCase{
		memberService: memberService,
	}
}

// RegisterMemberRequest 注册请求DTO
type RegisterMemberRequest struct {
	Name                   string // 姓名
	IdentificationDocument string // 证件号
	Email                  string // 邮箱
}

// Execute 执行读者注册用例
func (uc *RegisterMemberUseCase) Execute(ctx context.Context, req RegisterMemberRequest) (*member.Member, error) {
	return uc.memberService.Register(ctx, req.Name, req.IdentificationDocument, req.Email)
}
