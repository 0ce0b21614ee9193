package member

import (
	apperrors "github.com/xiebiao/library/pkg/errors"
)

// 读者领域错误定义
var (
	// ErrMemberNotFound 读者不存在
	ErrMemberNotFound = apperrors.New(apperrors.ErrCodeMemberNotFound, "读者不存在")

	// ErrDocumentDuplicate 证件号已存在
	ErrDocumentDuplicate = apperrors.New(apperrors.ErrCodeDocumentDuplicate, "该证件号已被注册")

	// ErrEmailDuplicate 邮箱已存在
	ErrEmailDuplicate = apperrors.New(apperrors.ErrCodeEmailDuplicate, "该邮箱已被注册")

	// ErrLoanLimitReached 借阅数量达到上限
	ErrLoanLimitReached = apperrors.New(apperrors.ErrCodeLoanLimitReached, "该读者已达到同时借阅上限(3本)")

	// ErrMemberHasActiveLoan 读者仍有未归还借阅,不能删除
	ErrMemberHasActiveLoan = apperrors.New(apperrors.ErrCodeMemberHasActiveLoan, "该读者仍有未归还的借阅,无法删除")

	// ErrLoanCountUnderflow 在借计数即将为负(内部Bug)
	ErrLoanCountUnderflow = apperrors.Invariant("读者在借计数即将为负")
)
