package book

import (
	"time"
)

// Book 图书实体(聚合根)
// DDD设计说明:
// 1. Book是馆藏聚合的根实体,包含图书的核心属性
// 2. ISBN作为业务唯一标识(数据库层保证唯一性)
// 3. TotalQuantity是馆藏副本总数,AvailableQuantity是当前可借副本数
// 4. 核心不变量: 0 <= AvailableQuantity <= TotalQuantity,
//    且 TotalQuantity - AvailableQuantity 恒等于该书的在借(ACTIVE)记录数
type Book struct {
	ID                uint
	ISBN              string // ISBN号(国际标准书号)
	Title             string // 书名
	Author            string // 作者
	TotalQuantity     int    // 馆藏副本总数
	AvailableQuantity int    // 可借副本数
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// NewBook 创建新图书(工厂方法)
// 新入馆藏时全部副本可借: AvailableQuantity = TotalQuantity
// 数量合法性(totalQuantity >= 1)由领域服务校验
func NewBook(isbn, title, author string, totalQuantity int) *Book {
	now := time.Now()
	return &Book{
		ISBN:              isbn,
		Title:             title,
		Author:            author,
		TotalQuantity:     totalQuantity,
		AvailableQuantity: totalQuantity,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
}

// ActiveLoans 当前在借副本数(派生值)
func (b *Book) ActiveLoans() int {
	return b.TotalQuantity - b.AvailableQuantity
}

// HasAvailableCopy 是否还有可借副本
func (b *Book) HasAvailableCopy() bool {
	return b.AvailableQuantity > 0
}

// LendCopy 借出一个副本(领域行为)
// 业务规则: 无可借副本时拒绝借出
func (b *Book) LendCopy() error {
	if !b.HasAvailableCopy() {
		return ErrNoCopiesAvailable
	}
	b.AvailableQuantity--
	b.UpdatedAt = time.Now()
	return nil
}

// ReturnCopy 归还一个副本(领域行为)
// 可借数不允许超过总数;超过说明计数已经被破坏,属于内部Bug
func (b *Book) ReturnCopy() error {
	if b.AvailableQuantity >= b.TotalQuantity {
		return ErrAvailabilityOverflow
	}
	b.AvailableQuantity++
	b.UpdatedAt = time.Now()
	return nil
}

// ChangeTotalQuantity 调整馆藏总量(领域行为)
// 业务规则:
// - 总量必须>=1
// - 总量不能低于当前在借数(否则在借副本将"凭空消失")
// 调整后可借数随之变化: AvailableQuantity = newTotal - 在借数
func (b *Book) ChangeTotalQuantity(newTotal int) error {
	if newTotal < 1 {
		return ErrInvalidQuantity
	}
	active := b.ActiveLoans()
	if newTotal < active {
		return ErrQuantityBelowLoans
	}
	b.TotalQuantity = newTotal
	b.AvailableQuantity = newTotal - active
	b.UpdatedAt = time.Now()
	return nil
}

// UpdateInfo 更新图书基本信息
func (b *Book) UpdateInfo(title, author string) {
	if title != "" {
		b.Title = title
	}
	if author != "" {
		b.Author = author
	}
	b.UpdatedAt = time.Now()
}
