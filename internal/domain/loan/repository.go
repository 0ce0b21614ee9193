package loan

import (
	"context"
)

// Repository 借阅台账仓储接口
// 设计说明:
// 1. 由domain层定义接口,infrastructure层实现
// 2. ListDetailed返回的读模型在SQL层联表得出,不做任何缓存
type Repository interface {
	// Create 创建借阅记录
	Create(ctx context.Context, loan *Loan) error

	// LockByID 悲观锁查询借阅记录(用于归还事务)
	// 锁定借阅行,防止并发归还同一条记录
	LockByID(ctx context.Context, id uint) (*Loan, error)

	// Update 更新借阅记录(归还时写入状态与归还日期)
	Update(ctx context.Context, loan *Loan) error

	// ListDetailed 查询全部借阅记录(附带读者姓名与书名)
	// 展示字段每次读取时从当前Member/Book状态联表计算,不落库
	ListDetailed(ctx context.Context) ([]*Detail, error)

	// ListActiveByMember 查询某读者的全部在借记录
	ListActiveByMember(ctx context.Context, memberID uint) ([]*Detail, error)

	// CountActiveByMemberAndBook 统计某读者对某图书的在借记录数
	// 用于借出时的重复借阅检查
	CountActiveByMemberAndBook(ctx context.Context, memberID, bookID uint) (int64, error)
}
