package dto

import (
	"github.com/xiebiao/library/internal/domain/loan"
)

// CheckoutRequest HTTP借书请求
type CheckoutRequest struct {
	MemberID uint `json:"member_id" binding:"required" example:"1"`
	BookID   uint `json:"book_id" binding:"required" example:"1"`
}

// LoanResponse HTTP借阅记录响应
type LoanResponse struct {
	ID         uint   `json:"id" example:"1"`
	MemberID   uint   `json:"member_id" example:"1"`
	BookID     uint   `json:"book_id" example:"1"`
	LoanDate   string `json:"loan_date" example:"2026-01-15 10:30:00"`
	ReturnDate string `json:"return_date,omitempty" example:"2026-01-20 09:00:00"` // 未归还时为空
	Status     string `json:"status" example:"ACTIVE"`                             // ACTIVE/RETURNED
}

// LoanDetailResponse HTTP借阅记录响应(附带读者姓名与书名)
// member_name/book_title是查询时联表得出的展示字段,不存储在台账中
type LoanDetailResponse struct {
	LoanResponse
	MemberName string `json:"member_name" example:"张三"`
	BookTitle  string `json:"book_title" example:"Go语言实战"`
}

// ToLoanResponse 领域实体 → HTTP响应
func ToLoanResponse(l *loan.Loan) LoanResponse {
	resp := LoanResponse{
		ID:       l.ID,
		MemberID: l.MemberID,
		BookID:   l.BookID,
		LoanDate: FormatTime(l.LoanDate),
		Status:   string(l.Status),
	}
	if l.ReturnDate != nil {
		resp.ReturnDate = FormatTime(*l.ReturnDate)
	}
	return resp
}

// ToLoanDetailResponse 读模型 → HTTP响应
func ToLoanDetailResponse(d *loan.Detail) LoanDetailResponse {
	return LoanDetailResponse{
		LoanResponse: ToLoanResponse(&d.Loan),
		MemberName:   d.MemberName,
		BookTitle:    d.BookTitle,
	}
}

// ToLoanDetailList 读模型列表 → HTTP响应列表
func ToLoanDetailList(details []*loan.Detail) []LoanDetailResponse {
	out := make([]LoanDetailResponse, len(details))
	for i, d := range details {
		out[i] = ToLoanDetailResponse(d)
	}
	return out
}
