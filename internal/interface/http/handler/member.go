package handler

import (
	"github.com/gin-gonic/gin"

	appmember "github.com/xiebiao/library/internal/application/member"
	"github.com/xiebiao/library/internal/interface/http/dto"
	apperrors "github.com/xiebiao/library/pkg/errors"
	"github.com/xiebiao/library/pkg/response"
)

// MemberHandler 读者HTTP处理器
type MemberHandler struct {
	registerUseCase *appmember.RegisterMemberUseCase
	updateUseCase   *appmember.UpdateMemberUseCase
	deleteUseCase   *appmember.DeleteMemberUseCase
	listUseCase     *appmember.ListMembersUseCase
}

// NewMemberHandler 创建读者处理器
func NewMemberHandler(
	registerUseCase *appmember.RegisterMemberUseCase,
	updateUseCase *appmember.UpdateMemberUseCase,
	deleteUseCase *appmember.DeleteMemberUseCase,
	listUseCase *appmember.ListMembersUseCase,
) *MemberHandler {
	return &MemberHandler{
		registerUseCase: registerUseCase,
		updateUseCase:   updateUseCase,
		deleteUseCase:   deleteUseCase,
		listUseCase:     listUseCase,
	}
}

// RegisterMember 读者注册
// @Summary      注册读者
// @Description  登记新读者,证件号与邮箱均不可重复
// @Tags         读者
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body dto.RegisterMemberRequest true "读者信息"
// @Success      201 {object} response.Response{data=dto.MemberResponse}
// @Failure      400 {object} response.Response "参数错误"
// @Failure      409 {object} response.Response "证件号或邮箱已存在"
// @Router       /api/v1/members [post]
func (h *MemberHandler) RegisterMember(c *gin.Context) {
	var req dto.RegisterMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, apperrors.ErrCodeBindError, "参数错误: "+err.Error())
		return
	}

	result, err := h.registerUseCase.Execute(c.Request.Context(), appmember.RegisterMemberRequest{
		Name:                   req.Name,
		IdentificationDocument: req.IdentificationDocument,
		Email:                  req.Email,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, dto.ToMemberResponse(result))
}

// GetMember 查询单个读者
// @Summary      读者详情
// @Tags         读者
// @Produce      json
// @Param        id path int true "读者ID"
// @Success      200 {object} response.Response{data=dto.MemberResponse}
// @Failure      404 {object} response.Response "读者不存在"
// @Router       /api/v1/members/{id} [get]
func (h *MemberHandler) GetMember(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	result, err := h.listUseCase.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, dto.ToMemberResponse(result))
}

// ListMembers 读者列表
// @Summary      读者列表
// @Description  分页查询读者,支持姓名/证件号/邮箱关键词搜索
// @Tags         读者
// @Produce      json
// @Param        page query int false "页码" default(1)
// @Param        page_size query int false "每页数量" default(20)
// @Param        keyword query string false "搜索关键词"
// @Success      200 {object} response.Response{data=dto.ListMembersResponse}
// @Router       /api/v1/members [get]
func (h *MemberHandler) ListMembers(c *gin.Context) {
	var req dto.ListMembersRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.ErrorWithCode(c, apperrors.ErrCodeBindError, "参数错误: "+err.Error())
		return
	}
	if req.Page == 0 {
		req.Page = 1
	}
	if req.PageSize == 0 {
		req.PageSize = 20
	}

	members, total, err := h.listUseCase.Execute(c.Request.Context(), appmember.ListMembersRequest{
		Page:     req.Page,
		PageSize: req.PageSize,
		Keyword:  req.Keyword,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	list := make([]dto.MemberResponse, len(members))
	for i, m := range members {
		list[i] = dto.ToMemberResponse(m)
	}

	response.Success(c, dto.ListMembersResponse{
		List:  list,
		Total: total,
		Page:  req.Page,
		Size:  req.PageSize,
	})
}

// UpdateMember 修改读者信息
// @Summary      修改读者
// @Description  修改读者档案;证件号/邮箱变更时重新检查唯一性
// @Tags         读者
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "读者ID"
// @Param        request body dto.UpdateMemberRequest true "读者信息"
// @Success      200 {object} response.Response{data=dto.MemberResponse}
// @Failure      404 {object} response.Response "读者不存在"
// @Failure      409 {object} response.Response "证件号或邮箱已存在"
// @Router       /api/v1/members/{id} [put]
func (h *MemberHandler) UpdateMember(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req dto.UpdateMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, apperrors.ErrCodeBindError, "参数错误: "+err.Error())
		return
	}

	result, err := h.updateUseCase.Execute(c.Request.Context(), appmember.UpdateMemberRequest{
		ID:                     id,
		Name:                   req.Name,
		IdentificationDocument: req.IdentificationDocument,
		Email:                  req.Email,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, dto.ToMemberResponse(result))
}

// DeleteMember 注销读者
// @Summary      注销读者
// @Description  删除读者档案;仍有未归还借阅时拒绝
// @Tags         读者
// @Security     BearerAuth
// @Param        id path int true "读者ID"
// @Success      204 "注销成功"
// @Failure      404 {object} response.Response "读者不存在"
// @Failure      409 {object} response.Response "仍有未归还借阅"
// @Router       /api/v1/members/{id} [delete]
func (h *MemberHandler) DeleteMember(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.deleteUseCase.Execute(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}
