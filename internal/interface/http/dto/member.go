package dto

import (
	"github.com/xiebiao/library/internal/domain/member"
)

// RegisterMemberRequest HTTP读者注册请求
type RegisterMemberRequest struct {
	Name                   string `json:"name" binding:"required,max=100" example:"张三"`
	IdentificationDocument string `json:"identification_document" binding:"required,max=50" example:"110101199001011234"`
	Email                  string `json:"email" binding:"required,email,max=100" example:"zhangsan@example.com"`
}

// UpdateMemberRequest HTTP读者修改请求
type UpdateMemberRequest struct {
	Name                   string `json:"name" binding:"required,max=100" example:"张三"`
	IdentificationDocument string `json:"identification_document" binding:"required,max=50" example:"110101199001011234"`
	Email                  string `json:"email" binding:"required,email,max=100" example:"zhangsan@example.com"`
}

// MemberResponse HTTP读者响应
type MemberResponse struct {
	ID                     uint   `json:"id" example:"1"`
	Name                   string `json:"name" example:"张三"`
	IdentificationDocument string `json:"identification_document" example:"110101199001011234"`
	Email                  string `json:"email" example:"zhangsan@example.com"`
	ActiveLoans            int    `json:"active_loans" example:"1"` // 当前在借数量(上限3)
	CreatedAt              string `json:"created_at" example:"2026-01-15 10:30:00"`
	UpdatedAt              string `json:"updated_at" example:"2026-01-15 10:30:00"`
}

// ListMembersRequest HTTP读者列表请求
type ListMembersRequest struct {
	Page     int    `form:"page" binding:"omitempty,min=1" example:"1"`
	PageSize int    `form:"page_size" binding:"omitempty,min=1,max=100" example:"20"`
	Keyword  string `form:"keyword" binding:"omitempty,max=100" example:"张"`
}

// ListMembersResponse HTTP读者列表响应
type ListMembersResponse struct {
	List  []MemberResponse `json:"list"`
	Total int64            `json:"total" example:"100"`
	Page  int              `json:"page" example:"1"`
	Size  int              `json:"size" example:"20"`
}

// ToMemberResponse 领域实体 → HTTP响应
func ToMemberResponse(m *member.Member) MemberResponse {
	return MemberResponse{
		ID:                     m.ID,
		Name:                   m.Name,
		IdentificationDocument: m.IdentificationDocument,
		Email:                  m.Email,
		ActiveLoans:            m.ActiveLoans,
		CreatedAt:              FormatTime(m.CreatedAt),
		UpdatedAt:              FormatTime(m.UpdatedAt),
	}
}
