package dto

// RegisterStaffRequest HTTP管理员注册请求
type RegisterStaffRequest struct {
	Email    string `json:"email" binding:"required,email,max=100" example:"admin@library.com"`
	Password string `json:"password" binding:"required,min=8,max=20" example:"library123"`
	Name     string `json:"name" binding:"required,max=50" example:"管理员"`
}

// LoginStaffRequest HTTP管理员登录请求
type LoginStaffRequest struct {
	Email    string `json:"email" binding:"required,email" example:"admin@library.com"`
	Password string `json:"password" binding:"required" example:"library123"`
}
