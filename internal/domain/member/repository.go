package member

import (
	"context"
)

// Repository 读者仓储接口
// 设计说明:
// 1. 接口定义在domain层(依赖倒置原则)
// 2. 具体实现在infrastructure/persistence/mysql层
// 3. 便于单元测试(Mock此接口)
type Repository interface {
	// Create 创建读者
	Create(ctx context.Context, member *Member) error

	// FindByID 根据ID查找读者
	FindByID(ctx context.Context, id uint) (*Member, error)

	// FindByDocument 根据证件号查找读者
	FindByDocument(ctx context.Context, document string) (*Member, error)

	// FindByEmail 根据邮箱查找读者
	FindByEmail(ctx context.Context, email string) (*Member, error)

	// Update 更新读者信息
	Update(ctx context.Context, member *Member) error

	// Delete 删除读者(软删除)
	Delete(ctx context.Context, id uint) error

	// List 查询读者列表
	List(ctx context.Context, params ListParams) ([]*Member, int64, error)

	// LockByID 悲观锁查询读者(用于借还事务)
	LockByID(ctx context.Context, id uint) (*Member, error)

	// AdjustActiveLoans 调整在借计数(原子操作,仅供借还事务调用)
	// delta为+1(借出)或-1(归还)
	// 守卫条件: 调整后必须满足 0 <= active_loans <= MaxActiveLoans,
	// 行存在但守卫不满足时返回不变量破坏错误(内部Bug,不应出现)
	AdjustActiveLoans(ctx context.Context, id uint, delta int) error
}

// ListParams 列表查询参数
type ListParams struct {
	Page     int    // 页码(从1开始,0表示不分页)
	PageSize int    // 每页数量
	Keyword  string // 搜索关键词(搜索姓名、证件号、邮箱)
}
