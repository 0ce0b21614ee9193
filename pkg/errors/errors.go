package errors

import (
	"errors"
	"fmt"
)

// AppError 自定义应用错误
// 设计说明：
// 1. Code用于客户端判断错误类型（不要直接暴露HTTP状态码）
// 2. Message是用户友好的提示信息，前端会原样展示
// 3. Err是内部错误，仅记录到日志，不返回给客户端（防止泄露敏感信息）
type AppError struct {
	Code    int    `json:"code"`    // 业务错误码
	Message string `json:"message"` // 用户友好的错误提示
	Err     error  `json:"-"`       // 内部错误（不序列化）
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%d] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%d] %s", e.Code, e.Message)
}

// Unwrap 支持errors.Is和errors.As
func (e *AppError) Unwrap() error {
	return e.Err
}

// New 创建新的AppError
func New(code int, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// Newf 格式化创建AppError
func Newf(code int, format string, args ...interface{}) *AppError {
	return &AppError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap 包装系统错误（如数据库错误、网络错误）
// 用途：将底层错误转换为业务错误，隐藏实现细节
func Wrap(err error, message string) *AppError {
	return &AppError{
		Code:    ErrCodeInternal,
		Message: message,
		Err:     err,
	}
}

// Wrapf 格式化包装错误
func Wrapf(err error, format string, args ...interface{}) *AppError {
	return &AppError{
		Code:    ErrCodeInternal,
		Message: fmt.Sprintf(format, args...),
		Err:     err,
	}
}

// Invariant 创建不变量破坏错误
// 说明：这类错误意味着代码或存储层存在Bug（计数器即将越界等），
// 属于致命的内部错误，不是正常的业务拒绝。调用方应记录详细日志，
// 对外只返回通用的系统错误提示。
func Invariant(format string, args ...interface{}) *AppError {
	return &AppError{
		Code:    ErrCodeInvariantViolation,
		Message: "系统内部错误",
		Err:     fmt.Errorf(format, args...),
	}
}

// =========================================
// 错误码定义
// =========================================
// 规范：
// - 400xx: 业务规则拒绝（借阅上限、无可借副本等，用户可理解可操作）
// - 404xx: 资源不存在
// - 406xx: 冲突（操作会破坏引用/计数约束，如删除仍有在借副本的图书）
// - 409xx: 参数/校验错误（格式错误、重复录入）
// - 401xx: 认证授权错误
// - 5xxxx: 服务端错误（数据库异常、不变量破坏）

const (
	// 系统级错误码（50000-50099）
	ErrCodeInternal           = 50000 // 内部错误
	ErrCodeDatabaseError      = 50001 // 数据库错误
	ErrCodeRedisError         = 50002 // Redis错误
	ErrCodeInvariantViolation = 50003 // 不变量破坏（内部Bug，不应出现）

	// 认证授权错误（40100-40199）
	ErrCodeUnauthorized    = 40100 // 未登录
	ErrCodeInvalidToken    = 40101 // Token无效
	ErrCodeTokenExpired    = 40102 // Token过期
	ErrCodeInvalidPassword = 40103 // 密码错误
	ErrCodeForbidden       = 40104 // 无权限

	// 资源错误（40400-40499）
	ErrCodeNotFound       = 40400 // 资源不存在(通用)
	ErrCodeMemberNotFound = 40401 // 读者不存在
	ErrCodeBookNotFound   = 40402 // 图书不存在
	ErrCodeLoanNotFound   = 40403 // 借阅记录不存在
	ErrCodeStaffNotFound  = 40404 // 管理员账号不存在

	// 冲突错误（40600-40699）
	ErrCodeConflict            = 40600 // 冲突(通用)
	ErrCodeBookHasActiveLoans  = 40601 // 图书仍有在借副本
	ErrCodeMemberHasActiveLoan = 40602 // 读者仍有未归还借阅

	// 业务规则错误（40000-40099）
	ErrCodeBusinessError      = 40000 // 业务错误(通用)
	ErrCodeLoanLimitReached   = 40001 // 借阅数量达到上限
	ErrCodeNoCopiesAvailable  = 40002 // 无可借副本
	ErrCodeLoanAlreadyClosed  = 40003 // 借阅已归还
	ErrCodeDuplicateLoan      = 40004 // 同一图书存在未归还借阅
	ErrCodeQuantityBelowLoans = 40005 // 馆藏总量不能低于在借数量

	// 参数错误（40900-40999）
	ErrCodeInvalidParams     = 40900 // 参数错误
	ErrCodeBindError         = 40901 // 参数绑定失败
	ErrCodeDuplicateEntry    = 40902 // 重复记录(通用)
	ErrCodeISBNDuplicate     = 40903 // ISBN已存在
	ErrCodeDocumentDuplicate = 40904 // 证件号已存在
	ErrCodeEmailDuplicate    = 40905 // 邮箱已存在
	ErrCodeWeakPassword      = 40906 // 密码强度不足
)

// =========================================
// 预定义错误（避免每次都New）
// =========================================

var (
	// 系统错误
	ErrInternal      = New(ErrCodeInternal, "系统内部错误")
	ErrDatabaseError = New(ErrCodeDatabaseError, "数据库错误")
	ErrRedisError    = New(ErrCodeRedisError, "缓存服务错误")

	// 认证授权
	ErrUnauthorized    = New(ErrCodeUnauthorized, "请先登录")
	ErrInvalidToken    = New(ErrCodeInvalidToken, "无效的Token")
	ErrTokenExpired    = New(ErrCodeTokenExpired, "Token已过期")
	ErrInvalidPassword = New(ErrCodeInvalidPassword, "密码错误")
	ErrForbidden       = New(ErrCodeForbidden, "无权限访问")

	// 参数错误
	ErrInvalidParams = New(ErrCodeInvalidParams, "参数错误")
	ErrBindError     = New(ErrCodeBindError, "参数格式错误")
	ErrWeakPassword  = New(ErrCodeWeakPassword, "密码强度不足（需8-20位，包含字母和数字）")
)

// =========================================
// 辅助函数
// =========================================

// IsAppError 判断是否为AppError
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// GetAppError 提取AppError（如果不是AppError则包装成Internal错误）
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return Wrap(err, "系统内部错误")
}

// IsInvariantViolation 判断是否为不变量破坏错误
// 用途：传输层据此决定记录Error级日志并隐藏详细信息
func IsInvariantViolation(err error) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code == ErrCodeInvariantViolation
	}
	return false
}
