package loan

import (
	apperrors "github.com/xiebiao/library/pkg/errors"
)

// 借阅领域错误定义
var (
	// ErrLoanNotFound 借阅记录不存在
	ErrLoanNotFound = apperrors.New(apperrors.ErrCodeLoanNotFound, "借阅记录不存在")

	// ErrAlreadyReturned 借阅已归还(重复归还被拒绝)
	ErrAlreadyReturned = apperrors.New(apperrors.ErrCodeLoanAlreadyClosed, "该借阅已归还,请勿重复操作")

	// ErrDuplicateLoan 同一读者对同一图书存在未归还借阅
	ErrDuplicateLoan = apperrors.New(apperrors.ErrCodeDuplicateLoan, "该读者已借阅此书且尚未归还")
)
