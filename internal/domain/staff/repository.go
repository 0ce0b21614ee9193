package staff

import (
	"context"
)

// Repository 管理员账号仓储接口
type Repository interface {
	// Create 创建账号
	// 注意: 如果邮箱已存在,应返回ErrEmailDuplicate
	Create(ctx context.Context, staff *Staff) error

	// FindByID 根据ID查找账号
	FindByID(ctx context.Context, id uint) (*Staff, error)

	// FindByEmail 根据邮箱查找账号
	FindByEmail(ctx context.Context, email string) (*Staff, error)
}
