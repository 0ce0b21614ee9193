package mysql

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/xiebiao/library/internal/domain/member"
	apperrors "github.com/xiebiao/library/pkg/errors"
)

// memberRepository 读者仓储实现(MySQL)
// 设计说明:
// 1. 实现domain/member/repository.go定义的接口
// 2. 证件号与邮箱的唯一性靠唯一索引兜底,冲突时转换为业务错误
type memberRepository struct {
	db *gorm.DB
}

// NewMemberRepository 创建读者仓储
func NewMemberRepository(db *gorm.DB) member.Repository {
	return &memberRepository{db: db}
}

// Create 创建读者
func (r *memberRepository) Create(ctx context.Context, m *member.Member) error {
	model := &MemberModel{
		Name:                   m.Name,
		IdentificationDocument: m.IdentificationDocument,
		Email:                  m.Email,
		ActiveLoans:            m.ActiveLoans,
	}

	if err := r.getDB(ctx).Create(model).Error; err != nil {
		if isDuplicateError(err) {
			return duplicateMemberError(err)
		}
		return apperrors.Wrap(err, "创建读者失败")
	}

	m.ID = model.ID
	m.CreatedAt = model.CreatedAt
	m.UpdatedAt = model.UpdatedAt

	return nil
}

// FindByID 根据ID查找读者
func (r *memberRepository) FindByID(ctx context.Context, id uint) (*member.Member, error) {
	var model MemberModel
	err := r.getDB(ctx).First(&model, id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, member.ErrMemberNotFound
		}
		return nil, apperrors.Wrap(err, "查询读者失败")
	}

	return toMemberEntity(&model), nil
}

// FindByDocument 根据证件号查找读者
func (r *memberRepository) FindByDocument(ctx context.Context, document string) (*member.Member, error) {
	var model MemberModel
	err := r.getDB(ctx).Where("identification_document = ?", document).First(&model).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, member.ErrMemberNotFound
		}
		return nil, apperrors.Wrap(err, "查询读者失败")
	}

	return toMemberEntity(&model), nil
}

// FindByEmail 根据邮箱查找读者
func (r *memberRepository) FindByEmail(ctx context.Context, email string) (*member.Member, error) {
	var model MemberModel
	err := r.getDB(ctx).Where("email = ?", email).First(&model).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, member.ErrMemberNotFound
		}
		return nil, apperrors.Wrap(err, "查询读者失败")
	}

	return toMemberEntity(&model), nil
}

// Update 更新读者信息
func (r *memberRepository) Update(ctx context.Context, m *member.Member) error {
	model := &MemberModel{
		ID:                     m.ID,
		Name:                   m.Name,
		IdentificationDocument: m.IdentificationDocument,
		Email:                  m.Email,
		ActiveLoans:            m.ActiveLoans,
		CreatedAt:              m.CreatedAt,
	}

	if err := r.getDB(ctx).Save(model).Error; err != nil {
		if isDuplicateError(err) {
			return duplicateMemberError(err)
		}
		return apperrors.Wrap(err, "更新读者失败")
	}

	m.UpdatedAt = model.UpdatedAt
	return nil
}

// Delete 删除读者(软删除)
// 注意:是否允许删除(有无在借记录)由应用层在事务内判断
func (r *memberRepository) Delete(ctx context.Context, id uint) error {
	result := r.getDB(ctx).Delete(&MemberModel{}, id)

	if result.Error != nil {
		return apperrors.Wrap(result.Error, "删除读者失败")
	}

	if result.RowsAffected == 0 {
		return member.ErrMemberNotFound
	}

	return nil
}

// List 分页查询读者列表
func (r *memberRepository) List(ctx context.Context, params member.ListParams) ([]*member.Member, int64, error) {
	var models []MemberModel
	var total int64

	query := r.getDB(ctx).Model(&MemberModel{})

	// 关键词搜索(搜索姓名、证件号、邮箱)
	if params.Keyword != "" {
		keyword := "%" + params.Keyword + "%"
		query = query.Where(
			"name LIKE ? OR identification_document LIKE ? OR email LIKE ?",
			keyword, keyword, keyword,
		)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, apperrors.Wrap(err, "查询读者总数失败")
	}

	query = query.Order("created_at DESC")

	if params.Page > 0 {
		offset := (params.Page - 1) * params.PageSize
		query = query.Limit(params.PageSize).Offset(offset)
	}

	if err := query.Find(&models).Error; err != nil {
		return nil, 0, apperrors.Wrap(err, "查询读者列表失败")
	}

	members := make([]*member.Member, len(models))
	for i, model := range models {
		members[i] = toMemberEntity(&model)
	}

	return members, total, nil
}

// LockByID 悲观锁查询读者(用于借还事务)
func (r *memberRepository) LockByID(ctx context.Context, id uint) (*member.Member, error) {
	var model MemberModel
	// SELECT FOR UPDATE锁定行
	db := r.getDB(ctx)
	err := db.Clauses(clause.Locking{Strength: "UPDATE"}).First(&model, id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, member.ErrMemberNotFound
		}
		return nil, apperrors.Wrap(err, "锁定读者失败")
	}

	return toMemberEntity(&model), nil
}

// AdjustActiveLoans 调整在借计数(原子操作)
// 使用守卫UPDATE保证 0 <= active_loans <= MaxActiveLoans:
// UPDATE members SET active_loans = active_loans + delta
// WHERE id = ? AND active_loans + delta BETWEEN 0 AND 3
func (r *memberRepository) AdjustActiveLoans(ctx context.Context, id uint, delta int) error {
	db := r.getDB(ctx)
	result := db.Model(&MemberModel{}).
		Where("id = ?", id).
		Where("active_loans + ? BETWEEN 0 AND ?", delta, member.MaxActiveLoans).
		Update("active_loans", gorm.Expr("active_loans + ?", delta))

	if result.Error != nil {
		return apperrors.Wrap(result.Error, "更新在借计数失败")
	}

	if result.RowsAffected == 0 {
		// 可能是读者不存在,或者守卫条件不满足
		var model MemberModel
		if err := db.First(&model, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return member.ErrMemberNotFound
			}
			return apperrors.Wrap(err, "查询读者失败")
		}
		if delta > 0 {
			// 读者存在,说明已达借阅上限
			return member.ErrLoanLimitReached
		}
		// 归还时在借计数已为0:计数与台账不一致
		return apperrors.Invariant(
			"归还时在借计数越界: member_id=%d active_loans=%d",
			id, model.ActiveLoans,
		)
	}

	return nil
}

// =========================================
// 辅助函数
// =========================================

// toMemberEntity GORM模型 → 领域实体
func toMemberEntity(model *MemberModel) *member.Member {
	return &member.Member{
		ID:                     model.ID,
		Name:                   model.Name,
		IdentificationDocument: model.IdentificationDocument,
		Email:                  model.Email,
		ActiveLoans:            model.ActiveLoans,
		CreatedAt:              model.CreatedAt,
		UpdatedAt:              model.UpdatedAt,
	}
}

// duplicateMemberError 根据冲突的索引名区分是证件号重复还是邮箱重复
func duplicateMemberError(err error) error {
	if strings.Contains(err.Error(), "email") {
		return member.ErrEmailDuplicate
	}
	return member.ErrDocumentDuplicate
}

// getDB 从context获取事务DB,如果没有则使用默认DB
func (r *memberRepository) getDB(ctx context.Context) *gorm.DB {
	if tx, ok := ctx.Value("tx").(*gorm.DB); ok {
		return tx
	}
	return r.db
}
