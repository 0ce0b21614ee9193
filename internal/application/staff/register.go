package staff

import (
	"context"

	"github.com/xiebiao/library/internal/domain/staff"
)

// RegisterUseCase 管理员注册用例
// 字段校验(邮箱格式、密码强度)与加密由领域服务负责
type RegisterUseCase struct {
	staffService staff.Service
}

// NewRegisterUseCase 创建注册用例
func NewRegisterUseCase(staffService staff.Service) *RegisterUseCase {
	return &RegisterUseCase{
		staffService: staffService,
	}
}

// Execute 执行注册
func (uc *RegisterUseCase) Execute(ctx context.Context, req RegisterRequest) (*RegisterResponse, error) {
	s, err := uc.staffService.Register(ctx, req.Email, req.Password, req.Name)
	if err != nil {
		return nil, err
	}

	// 领域实体 → 应用层DTO(不返回密码字段)
	return &RegisterResponse{
		ID:    s.ID,
		Email: s.Email,
		Name:  s.Name,
	}, nil
}

// RegisterRequest 注册请求
type RegisterRequest struct {
	Email    string
	Password string
	Name     string
}

// RegisterResponse 注册响应
type RegisterResponse struct {
	ID    uint   `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}
