package staff

import (
	apperrors "github.com/xiebiao/library/pkg/errors"
)

// 管理员账号领域错误定义
var (
	// ErrStaffNotFound 管理员账号不存在
	ErrStaffNotFound = apperrors.New(apperrors.ErrCodeStaffNotFound, "账号不存在")

	// ErrEmailDuplicate 邮箱已被注册
	ErrEmailDuplicate = apperrors.New(apperrors.ErrCodeEmailDuplicate, "该邮箱已被注册")
)
