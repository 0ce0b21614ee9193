package mysql

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/xiebiao/library/internal/domain/loan"
	apperrors "github.com/xiebiao/library/pkg/errors"
)

// loanRepository 借阅台账仓储实现(MySQL)
// 设计说明:
// 1. 实现domain/loan/repository.go定义的接口
// 2. ListDetailed/ListActiveByMember在SQL层LEFT JOIN得出读者姓名与书名,
//    联表时不过滤软删除的读者/图书,保证历史记录仍可完整展示
type loanRepository struct {
	db *gorm.DB
}

// NewLoanRepository 创建借阅台账仓储
func NewLoanRepository(db *gorm.DB) loan.Repository {
	return &loanRepository{db: db}
}

// Create 创建借阅记录
func (r *loanRepository) Create(ctx context.Context, l *loan.Loan) error {
	model := &LoanModel{
		MemberID: l.MemberID,
		BookID:   l.BookID,
		LoanDate: l.LoanDate,
		Status:   string(l.Status),
	}

	if err := r.getDB(ctx).Create(model).Error; err != nil {
		return apperrors.Wrap(err, "创建借阅记录失败")
	}

	l.ID = model.ID
	l.CreatedAt = model.CreatedAt
	l.UpdatedAt = model.UpdatedAt

	return nil
}

// LockByID 悲观锁查询借阅记录(用于归还事务)
// 锁定借阅行,两个并发的归还请求只有一个能通过状态检查
func (r *loanRepository) LockByID(ctx context.Context, id uint) (*loan.Loan, error) {
	var model LoanModel
	db := r.getDB(ctx)
	err := db.Clauses(clause.Locking{Strength: "UPDATE"}).First(&model, id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, loan.ErrLoanNotFound
		}
		return nil, apperrors.Wrap(err, "锁定借阅记录失败")
	}

	return toLoanEntity(&model), nil
}

// Update 更新借阅记录(归还时写入状态与归还日期)
func (r *loanRepository) Update(ctx context.Context, l *loan.Loan) error {
	model := &LoanModel{
		ID:         l.ID,
		MemberID:   l.MemberID,
		BookID:     l.BookID,
		LoanDate:   l.LoanDate,
		ReturnDate: l.ReturnDate,
		Status:     string(l.Status),
		CreatedAt:  l.CreatedAt,
	}

	if err := r.getDB(ctx).Save(model).Error; err != nil {
		return apperrors.Wrap(err, "更新借阅记录失败")
	}

	l.UpdatedAt = model.UpdatedAt
	return nil
}

// loanDetailRow 联表查询的扫描结构
type loanDetailRow struct {
	LoanModel
	MemberName string
	BookTitle  string
}

// ListDetailed 查询全部借阅记录(附带读者姓名与书名)
// 说明: 展示字段每次读取时联表计算,不在loans表冗余存储
func (r *loanRepository) ListDetailed(ctx context.Context) ([]*loan.Detail, error) {
	var rows []loanDetailRow
	err := r.getDB(ctx).Model(&LoanModel{}).
		Select("loans.*, members.name AS member_name, books.title AS book_title").
		Joins("LEFT JOIN members ON members.id = loans.member_id").
		Joins("LEFT JOIN books ON books.id = loans.book_id").
		Order("loans.loan_date DESC, loans.id DESC").
		Scan(&rows).Error

	if err != nil {
		return nil, apperrors.Wrap(err, "查询借阅列表失败")
	}

	return toDetailList(rows), nil
}

// ListActiveByMember 查询某读者的全部在借记录
func (r *loanRepository) ListActiveByMember(ctx context.Context, memberID uint) ([]*loan.Detail, error) {
	var rows []loanDetailRow
	err := r.getDB(ctx).Model(&LoanModel{}).
		Select("loans.*, members.name AS member_name, books.title AS book_title").
		Joins("LEFT JOIN members ON members.id = loans.member_id").
		Joins("LEFT JOIN books ON books.id = loans.book_id").
		Where("loans.member_id = ? AND loans.status = ?", memberID, string(loan.StatusActive)).
		Order("loans.loan_date DESC, loans.id DESC").
		Scan(&rows).Error

	if err != nil {
		return nil, apperrors.Wrap(err, "查询读者在借记录失败")
	}

	return toDetailList(rows), nil
}

// CountActiveByMemberAndBook 统计某读者对某图书的在借记录数
// 用于借出时的重复借阅检查(同一读者不能重复借同一本书)
func (r *loanRepository) CountActiveByMemberAndBook(ctx context.Context, memberID, bookID uint) (int64, error) {
	var count int64
	err := r.getDB(ctx).Model(&LoanModel{}).
		Where("member_id = ? AND book_id = ? AND status = ?",
			memberID, bookID, string(loan.StatusActive)).
		Count(&count).Error

	if err != nil {
		return 0, apperrors.Wrap(err, "统计在借记录失败")
	}

	return count, nil
}

// =========================================
// 辅助函数:模型转换
// =========================================

// toLoanEntity GORM模型 → 领域实体
func toLoanEntity(model *LoanModel) *loan.Loan {
	var returnDate *time.Time
	if model.ReturnDate != nil {
		t := *model.ReturnDate
		returnDate = &t
	}
	return &loan.Loan{
		ID:         model.ID,
		MemberID:   model.MemberID,
		BookID:     model.BookID,
		LoanDate:   model.LoanDate,
		ReturnDate: returnDate,
		Status:     loan.Status(model.Status),
		CreatedAt:  model.CreatedAt,
		UpdatedAt:  model.UpdatedAt,
	}
}

// toDetailList 联表扫描结果 → 读模型列表
func toDetailList(rows []loanDetailRow) []*loan.Detail {
	details := make([]*loan.Detail, len(rows))
	for i := range rows {
		details[i] = &loan.Detail{
			Loan:       *toLoanEntity(&rows[i].LoanModel),
			MemberName: rows[i].MemberName,
			BookTitle:  rows[i].BookTitle,
		}
	}
	return details
}

// getDB 从context获取事务DB,如果没有则使用默认DB
func (r *loanRepository) getDB(ctx context.Context) *gorm.DB {
	if tx, ok := ctx.Value("tx").(*gorm.DB); ok {
		return tx
	}
	return r.db
}
