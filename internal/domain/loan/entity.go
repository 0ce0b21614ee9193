package loan

import (
	"time"
)

// Status 借阅状态
// 状态机只有一条迁移边: ACTIVE → RETURNED(终态)
// 使用字符串存储,与前端契约保持一致
type Status string

const (
	// StatusActive 在借(初始状态)
	StatusActive Status = "ACTIVE"
	// StatusReturned 已归还(终态,记录从此不可变)
	StatusReturned Status = "RETURNED"
)

// Loan 借阅记录实体(聚合根)
// DDD设计说明:
// 1. Loan是借阅台账的根实体,引用Member和Book
// 2. LoanDate在创建时确定,之后不可变
// 3. 不变量: Status=ACTIVE ⇔ ReturnDate为nil
// 4. 图书可借数与读者在借数的变更只能由借还事务驱动,
//    绝不能脱离借阅事件单独修改
type Loan struct {
	ID         uint
	MemberID   uint       // 读者ID
	BookID     uint       // 图书ID
	LoanDate   time.Time  // 借出日期(创建时确定,不可变)
	ReturnDate *time.Time // 归还日期(未归还时为nil)
	Status     Status     // 借阅状态
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// NewLoan 创建新借阅记录(工厂方法)
// 初始状态为ACTIVE,借出日期为当前时间
func NewLoan(memberID, bookID uint) *Loan {
	now := time.Now()
	return &Loan{
		MemberID:  memberID,
		BookID:    bookID,
		LoanDate:  now,
		Status:    StatusActive,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// IsActive 是否在借
func (l *Loan) IsActive() bool {
	return l.Status == StatusActive
}

// MarkReturned 标记归还(领域行为,唯一的状态迁移)
// 业务规则: 重复归还被拒绝而不是静默接受(幂等性守卫)
func (l *Loan) MarkReturned() error {
	if l.Status == StatusReturned {
		return ErrAlreadyReturned
	}
	now := time.Now()
	l.Status = StatusReturned
	l.ReturnDate = &now
	l.UpdatedAt = now
	return nil
}

// Detail 借阅记录读模型
// 说明: MemberName/BookTitle是读取时从当前Member/Book状态联表得出的
// 展示字段(查询侧投影),绝不落库存储,避免读者/图书改名后出现脏数据
type Detail struct {
	Loan
	MemberName string // 读者姓名(读时联表)
	BookTitle  string // 书名(读时联表)
}
