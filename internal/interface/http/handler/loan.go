package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	apploan "github.com/xiebiao/library/internal/application/loan"
	"github.com/xiebiao/library/internal/interface/http/dto"
	apperrors "github.com/xiebiao/library/pkg/errors"
	"github.com/xiebiao/library/pkg/response"
)

// LoanHandler 借阅HTTP处理器
type LoanHandler struct {
	checkoutUseCase *apploan.CheckoutUseCase
	returnUseCase   *apploan.ReturnLoanUseCase
	listUseCase     *apploan.ListLoansUseCase
}

// NewLoanHandler 创建借阅处理器
func NewLoanHandler(
	checkoutUseCase *apploan.CheckoutUseCase,
	returnUseCase *apploan.ReturnLoanUseCase,
	listUseCase *apploan.ListLoansUseCase,
) *LoanHandler {
	return &LoanHandler{
		checkoutUseCase: checkoutUseCase,
		returnUseCase:   returnUseCase,
		listUseCase:     listUseCase,
	}
}

// Checkout 借书
// @Summary      借书
// @Description  为读者借出一本图书,使用悲观锁保证并发安全
// @Tags         借阅
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body dto.CheckoutRequest true "借书信息"
// @Success      201 {object} response.Response{data=dto.LoanResponse} "借出成功"
// @Failure      400 {object} response.Response "参数错误"
// @Failure      404 {object} response.Response "读者或图书不存在"
// @Failure      409 {object} response.Response "借阅上限/无可借副本/重复借阅"
// @Router       /api/v1/loans [post]
//
// 并发说明:防止"最后一本书借出两次"
// 1. 开启数据库事务
// 2. SELECT FOR UPDATE按固定顺序锁定读者行和图书行
// 3. 检查借阅上限、可借副本、重复借阅
// 4. 创建ACTIVE台账记录,可借数-1,在借数+1
// 5. 提交事务
// 两个并发请求抢最后一本书时,后拿到锁的请求会看到可借数已为0
func (h *LoanHandler) Checkout(c *gin.Context) {
	var req dto.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, apperrors.ErrCodeBindError, "参数错误: "+err.Error())
		return
	}

	result, err := h.checkoutUseCase.Execute(c.Request.Context(), apploan.CheckoutRequest{
		MemberID: req.MemberID,
		BookID:   req.BookID,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, dto.ToLoanResponse(result))
}

// Return 还书
// @Summary      还书
// @Description  归还在借图书;重复归还会被拒绝
// @Tags         借阅
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "借阅记录ID"
// @Success      200 {object} response.Response{data=dto.LoanResponse} "归还成功"
// @Failure      404 {object} response.Response "借阅记录不存在"
// @Failure      409 {object} response.Response "该记录已归还"
// @Router       /api/v1/loans/{id}/return [put]
func (h *LoanHandler) Return(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	result, err := h.returnUseCase.Execute(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, dto.ToLoanResponse(result))
}

// ListLoans 借阅列表
// @Summary      借阅列表
// @Description  查询全部借阅记录(含已归还),附带读者姓名与书名
// @Tags         借阅
// @Produce      json
// @Success      200 {object} response.Response{data=[]dto.LoanDetailResponse}
// @Router       /api/v1/loans [get]
func (h *LoanHandler) ListLoans(c *gin.Context) {
	details, err := h.listUseCase.ListAll(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, dto.ToLoanDetailList(details))
}

// ListActiveByMember 某读者的在借记录
// @Summary      读者在借列表
// @Description  查询某读者当前全部在借记录;读者不存在返回404
// @Tags         借阅
// @Produce      json
// @Param        id path int true "读者ID"
// @Success      200 {object} response.Response{data=[]dto.LoanDetailResponse}
// @Failure      404 {object} response.Response "读者不存在"
// @Router       /api/v1/loans/member/{id}/active [get]
func (h *LoanHandler) ListActiveByMember(c *gin.Context) {
	memberID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || memberID == 0 {
		response.ErrorWithCode(c, apperrors.ErrCodeInvalidParams, "读者ID必须是正整数")
		return
	}

	details, errList := h.listUseCase.ListActiveByMember(c.Request.Context(), uint(memberID))
	if errList != nil {
		response.Error(c, errList)
		return
	}

	response.Success(c, dto.ToLoanDetailList(details))
}
