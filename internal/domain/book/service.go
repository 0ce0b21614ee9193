package book

import (
	"context"
	"errors"
	"strings"

	apperrors "github.com/xiebiao/library/pkg/errors"
)

// Service 图书领域服务接口
// 设计说明:
// 1. 领域服务封装单实体的业务规则校验(入馆登记、查询)
// 2. 涉及跨实体计数的操作(修改馆藏总量、删除)在应用层的事务用例中完成
// 3. 不依赖具体的Repository实现(依赖倒置)
type Service interface {
	// AddBook 图书入馆登记
	// 业务规则:
	// - ISBN非空且不能重复
	// - 书名、作者非空
	// - 馆藏总量必须>=1
	// 新书全部副本可借
	AddBook(ctx context.Context, isbn, title, author string, totalQuantity int) (*Book, error)

	// GetBook 根据ID获取图书详情
	GetBook(ctx context.Context, id uint) (*Book, error)

	// GetBookByISBN 根据ISBN获取图书
	GetBookByISBN(ctx context.Context, isbn string) (*Book, error)

	// ListBooks 查询图书列表
	ListBooks(ctx context.Context, params ListParams) ([]*Book, int64, error)
}

// service 领域服务实现
type service struct {
	repo Repository
}

// NewService 创建图书领域服务
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// AddBook 图书入馆登记
func (s *service) AddBook(ctx context.Context, isbn, title, author string, totalQuantity int) (*Book, error) {
	// 1. 基础字段校验
	isbn = strings.TrimSpace(isbn)
	if isbn == "" {
		return nil, ErrInvalidISBN
	}
	if strings.TrimSpace(title) == "" {
		return nil, apperrors.New(apperrors.ErrCodeInvalidParams, "书名不能为空")
	}
	if strings.TrimSpace(author) == "" {
		return nil, apperrors.New(apperrors.ErrCodeInvalidParams, "作者不能为空")
	}

	// 2. 馆藏数量校验
	if totalQuantity < 1 {
		return nil, ErrInvalidQuantity
	}

	// 3. 检查ISBN是否已存在
	// 说明: 数据库的唯一索引是最终防线,这里先查一次给出友好错误
	existing, err := s.repo.FindByISBN(ctx, isbn)
	if err == nil && existing != nil {
		return nil, ErrISBNDuplicate
	}
	if err != nil && !errors.Is(err, ErrBookNotFound) {
		return nil, err
	}

	// 4. 创建图书实体并持久化
	b := NewBook(isbn, title, author, totalQuantity)
	if err := s.repo.Create(ctx, b); err != nil {
		return nil, err
	}

	return b, nil
}

// GetBook 根据ID获取图书
func (s *service) GetBook(ctx context.Context, id uint) (*Book, error) {
	return s.repo.FindByID(ctx, id)
}

// GetBookByISBN 根据ISBN获取图书
func (s *service) GetBookByISBN(ctx context.Context, isbn string) (*Book, error) {
	return s.repo.FindByISBN(ctx, isbn)
}

// ListBooks 查询图书列表
func (s *service) ListBooks(ctx context.Context, params ListParams) ([]*Book, int64, error) {
	return s.repo.List(ctx, params)
}
