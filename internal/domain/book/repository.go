package book

import (
	"context"
)

// Repository 图书仓储接口(依赖倒置原则)
// 设计说明:
// 1. 由domain层定义接口,infrastructure层实现
// 2. 便于Mock测试,不依赖具体数据库实现
type Repository interface {
	// Create 创建图书
	Create(ctx context.Context, book *Book) error

	// FindByID 根据ID查找图书
	FindByID(ctx context.Context, id uint) (*Book, error)

	// FindByISBN 根据ISBN查找图书
	FindByISBN(ctx context.Context, isbn string) (*Book, error)

	// Update 更新图书信息
	Update(ctx context.Context, book *Book) error

	// Delete 删除图书(软删除)
	Delete(ctx context.Context, id uint) error

	// List 查询图书列表(支持关键词搜索)
	List(ctx context.Context, params ListParams) ([]*Book, int64, error)

	// LockByID 悲观锁查询图书(用于借还事务)
	// 使用SELECT FOR UPDATE锁定行,防止并发借出导致超借
	LockByID(ctx context.Context, id uint) (*Book, error)

	// AdjustAvailable 调整可借副本数(原子操作,仅供借还事务调用)
	// delta为+1(归还)或-1(借出)
	// 守卫条件: 调整后必须满足 0 <= available_quantity <= total_quantity,
	// 行存在但守卫不满足时返回不变量破坏错误(内部Bug,不应出现)
	AdjustAvailable(ctx context.Context, id uint, delta int) error
}

// ListParams 列表查询参数
type ListParams struct {
	Page     int    // 页码(从1开始,0表示不分页)
	PageSize int    // 每页数量
	Keyword  string // 搜索关键词(搜索标题、作者、ISBN)
}
