package member

import (
	"context"
	"errors"
	"regexp"
	"strings"

	apperrors "github.com/xiebiao/library/pkg/errors"
)

// Service 读者领域服务
// 设计说明:
// 1. Service封装单实体的业务规则校验(注册、资料更新)
// 2. 删除操作涉及在借数守卫,在应用层的事务用例中完成
// 3. Service依赖Repository接口,不依赖具体实现(依赖倒置)
type Service interface {
	// Register 读者注册
	// 业务规则: 姓名、证件号非空;邮箱格式合法;证件号与邮箱唯一
	Register(ctx context.Context, name, document, email string) (*Member, error)

	// GetMember 根据ID获取读者
	GetMember(ctx context.Context, id uint) (*Member, error)

	// UpdateMember 更新读者资料
	// 业务规则: 新证件号/邮箱不能与其他读者冲突
	UpdateMember(ctx context.Context, id uint, name, document, email string) (*Member, error)

	// ListMembers 查询读者列表
	ListMembers(ctx context.Context, params ListParams) ([]*Member, int64, error)
}

type service struct {
	repo Repository
}

// NewService 创建读者领域服务
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// Register 读者注册
func (s *service) Register(ctx context.Context, name, document, email string) (*Member, error) {
	// 1. 基础字段校验
	name = strings.TrimSpace(name)
	document = strings.TrimSpace(document)
	if name == "" {
		return nil, apperrors.New(apperrors.ErrCodeInvalidParams, "姓名不能为空")
	}
	if document == "" {
		return nil, apperrors.New(apperrors.ErrCodeInvalidParams, "证件号不能为空")
	}
	if !isValidEmail(email) {
		return nil, apperrors.New(apperrors.ErrCodeInvalidParams, "邮箱格式不正确")
	}

	// 2. 唯一性检查(数据库唯一索引是最终防线)
	if err := s.checkDocumentFree(ctx, document, 0); err != nil {
		return nil, err
	}
	if err := s.checkEmailFree(ctx, email, 0); err != nil {
		return nil, err
	}

	// 3. 创建读者实体并持久化
	m := NewMember(name, document, email)
	if err := s.repo.Create(ctx, m); err != nil {
		return nil, err
	}

	return m, nil
}

// GetMember 根据ID获取读者
func (s *service) GetMember(ctx context.Context, id uint) (*Member, error) {
	return s.repo.FindByID(ctx, id)
}

// UpdateMember 更新读者资料
func (s *service) UpdateMember(ctx context.Context, id uint, name, document, email string) (*Member, error) {
	// 1. 查询读者
	m, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// 2. 新证件号/邮箱不能被其他读者占用
	if document != "" && document != m.IdentificationDocument {
		if err := s.checkDocumentFree(ctx, document, id); err != nil {
			return nil, err
		}
	}
	if email != "" && email != m.Email {
		if !isValidEmail(email) {
			return nil, apperrors.New(apperrors.ErrCodeInvalidParams, "邮箱格式不正确")
		}
		if err := s.checkEmailFree(ctx, email, id); err != nil {
			return nil, err
		}
	}

	// 3. 更新并持久化
	m.UpdateInfo(name, document, email)
	if err := s.repo.Update(ctx, m); err != nil {
		return nil, err
	}

	return m, nil
}

// ListMembers 查询读者列表
func (s *service) ListMembers(ctx context.Context, params ListParams) ([]*Member, int64, error) {
	return s.repo.List(ctx, params)
}

// checkDocumentFree 校验证件号未被其他读者占用(selfID为0表示新注册)
func (s *service) checkDocumentFree(ctx context.Context, document string, selfID uint) error {
	owner, err := s.repo.FindByDocument(ctx, document)
	if err != nil {
		if errors.Is(err, ErrMemberNotFound) {
			return nil
		}
		return err
	}
	if owner != nil && owner.ID != selfID {
		return ErrDocumentDuplicate
	}
	return nil
}

// checkEmailFree 校验邮箱未被其他读者占用
func (s *service) checkEmailFree(ctx context.Context, email string, selfID uint) error {
	owner, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrMemberNotFound) {
			return nil
		}
		return err
	}
	if owner != nil && owner.ID != selfID {
		return ErrEmailDuplicate
	}
	return nil
}

// isValidEmail 邮箱格式校验
// 简单的正则校验,生产环境可使用更严格的RFC 5322标准
func isValidEmail(email string) bool {
	pattern := `^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`
	matched, _ := regexp.MatchString(pattern, email)
	return matched
}
