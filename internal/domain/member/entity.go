package member

import (
	"time"
)

// MaxActiveLoans 每位读者允许的最大同时在借数量
const MaxActiveLoans = 3

// Member 读者实体(聚合根)
// DDD设计说明:
// 1. Member是读者聚合的根实体
// 2. IdentificationDocument(证件号)作为业务唯一标识
// 3. ActiveLoans是冗余计数,不变量: ActiveLoans恒等于该读者的
//    在借(ACTIVE)记录数,且 0 <= ActiveLoans <= MaxActiveLoans
type Member struct {
	ID                     uint
	Name                   string // 姓名
	IdentificationDocument string // 证件号(唯一)
	Email                  string // 邮箱(唯一)
	ActiveLoans            int    // 当前在借数量
	CreatedAt              time.Time
	UpdatedAt              time.Time
}

// NewMember 创建新读者(工厂方法)
func NewMember(name, document, email string) *Member {
	now := time.Now()
	return &Member{
		Name:                   name,
		IdentificationDocument: document,
		Email:                  email,
		ActiveLoans:            0,
		CreatedAt:              now,
		UpdatedAt:              now,
	}
}

// CanBorrow 判断读者是否还能借书
func (m *Member) CanBorrow() bool {
	return m.ActiveLoans < MaxActiveLoans
}

// HasActiveLoans 是否有未归还的借阅
func (m *Member) HasActiveLoans() bool {
	return m.ActiveLoans > 0
}

// BorrowOne 在借数+1(领域行为)
// 业务规则: 达到上限后拒绝
func (m *Member) BorrowOne() error {
	if !m.CanBorrow() {
		return ErrLoanLimitReached
	}
	m.ActiveLoans++
	m.UpdatedAt = time.Now()
	return nil
}

// ReturnOne 在借数-1(领域行为)
// 计数不允许为负;为负说明计数已经被破坏,属于内部Bug
func (m *Member) ReturnOne() error {
	if m.ActiveLoans <= 0 {
		return ErrLoanCountUnderflow
	}
	m.ActiveLoans--
	m.UpdatedAt = time.Now()
	return nil
}

// UpdateInfo 更新读者基本信息
func (m *Member) UpdateInfo(name, document, email string) {
	if name != "" {
		m.Name = name
	}
	if document != "" {
		m.IdentificationDocument = document
	}
	if email != "" {
		m.Email = email
	}
	m.UpdatedAt = time.Now()
}
