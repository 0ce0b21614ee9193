package staff

import (
	"time"
)

// Staff 图书管理员账号实体(聚合根)
// 设计说明:
// 1. 管理员账号只用于系统登录鉴权,与读者(member)是两个独立概念
// 2. 密码已加密存储(bcrypt),不暴露明文
// 3. 领域实体不依赖GORM tag(infrastructure层的Repository实现时会处理映射)
type Staff struct {
	ID        uint
	Email     string
	Password  string // bcrypt哈希值
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewStaff 创建新管理员账号(工厂方法)
// hashedPassword必须是bcrypt加密后的密码
func NewStaff(email, hashedPassword, name string) *Staff {
	now := time.Now()
	return &Staff{
		Email:     email,
		Password:  hashedPassword,
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
