package mysql

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

// isDuplicateError 判断是否为MySQL唯一索引冲突(错误码1062)
// 本项目的唯一索引: books.isbn、members.identification_document、
// members.email、staff.email,各仓储负责把冲突翻译成对应的业务错误
func isDuplicateError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	// 驱动未翻译时退化为错误信息匹配
	return strings.Contains(err.Error(), "Duplicate entry")
}
