package book

import (
	apperrors "github.com/xiebiao/library/pkg/errors"
)

// 图书领域错误定义
var (
	// ErrBookNotFound 图书不存在
	ErrBookNotFound = apperrors.New(apperrors.ErrCodeBookNotFound, "图书不存在")

	// ErrISBNDuplicate ISBN已存在
	ErrISBNDuplicate = apperrors.New(apperrors.ErrCodeISBNDuplicate, "ISBN号已存在")

	// ErrInvalidISBN ISBN格式不正确
	ErrInvalidISBN = apperrors.New(apperrors.ErrCodeInvalidParams, "ISBN格式不正确")

	// ErrInvalidQuantity 无效的馆藏数量
	ErrInvalidQuantity = apperrors.New(apperrors.ErrCodeInvalidParams, "馆藏数量必须大于等于1")

	// ErrNoCopiesAvailable 无可借副本
	ErrNoCopiesAvailable = apperrors.New(apperrors.ErrCodeNoCopiesAvailable, "该图书已无可借副本")

	// ErrQuantityBelowLoans 馆藏总量不能低于在借数量
	ErrQuantityBelowLoans = apperrors.New(apperrors.ErrCodeQuantityBelowLoans, "馆藏总量不能低于当前在借数量")

	// ErrBookHasActiveLoans 图书仍有在借副本,不能删除
	ErrBookHasActiveLoans = apperrors.New(apperrors.ErrCodeBookHasActiveLoans, "该图书仍有未归还的借阅,无法删除")

	// ErrAvailabilityOverflow 可借数即将超过总数(内部Bug)
	ErrAvailabilityOverflow = apperrors.Invariant("可借副本数即将超过馆藏总数")
)
