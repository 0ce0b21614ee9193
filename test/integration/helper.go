package integration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// 教学说明：集成测试辅助工具
// 集成测试需要先启动完整服务（go run ./cmd/api），
// 这里封装HTTP请求与JSON解析，让测试用例只关注业务断言

const (
	// BaseURL API基础URL
	BaseURL = "http://localhost:8080/api/v1"
	// Timeout HTTP请求超时时间
	Timeout = 10 * time.Second
)

// Response 统一响应结构
type Response struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// LoginData 登录响应数据
type LoginData struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
}

// BookData 图书响应数据
type BookData struct {
	ID                uint   `json:"id"`
	ISBN              string `json:"isbn"`
	Title             string `json:"title"`
	Author            string `json:"author"`
	TotalQuantity     int    `json:"total_quantity"`
	AvailableQuantity int    `json:"available_quantity"`
}

// BookListData 图书列表响应数据
type BookListData struct {
	List  []BookData `json:"list"`
	Total int64      `json:"total"`
	Page  int        `json:"page"`
	Size  int        `json:"size"`
}

// MemberData 读者响应数据
type MemberData struct {
	ID                     uint   `json:"id"`
	Name                   string `json:"name"`
	IdentificationDocument string `json:"identification_document"`
	Email                  string `json:"email"`
	ActiveLoans            int    `json:"active_loans"`
}

// MemberListData 读者列表响应数据
type MemberListData struct {
	List  []MemberData `json:"list"`
	Total int64        `json:"total"`
	Page  int          `json:"page"`
	Size  int          `json:"size"`
}

// LoanData 借阅记录响应数据
type LoanData struct {
	ID         uint   `json:"id"`
	MemberID   uint   `json:"member_id"`
	BookID     uint   `json:"book_id"`
	LoanDate   string `json:"loan_date"`
	ReturnDate string `json:"return_date"`
	Status     string `json:"status"`
	MemberName string `json:"member_name"`
	BookTitle  string `json:"book_title"`
}

// doJSON 发送请求并解析JSON响应
// 204 No Content没有响应体，转换为Code=0的成功响应
func doJSON(t *testing.T, method, url string, data interface{}, token string) *Response {
	var body io.Reader
	if data != nil {
		jsonData, err := json.Marshal(data)
		require.NoError(t, err, "JSON序列化失败")
		body = bytes.NewBuffer(jsonData)
	}

	req, err := http.NewRequest(method, url, body)
	require.NoError(t, err, "创建HTTP请求失败")

	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	client := &http.Client{Timeout: Timeout}
	resp, err := client.Do(req)
	require.NoError(t, err, "发送HTTP请求失败(服务是否已启动?)")
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNoContent {
		return &Response{Code: 0, Message: "success"}
	}

	respBody, err := io.ReadAll(resp.Body)
	require.NoError(t, err, "读取响应体失败")

	var result Response
	err = json.Unmarshal(respBody, &result)
	require.NoError(t, err, "解析JSON响应失败: %s", string(respBody))

	return &result
}

// PostJSON 发送POST请求并解析JSON响应
func PostJSON(t *testing.T, url string, data interface{}, token string) *Response {
	return doJSON(t, http.MethodPost, url, data, token)
}

// PutJSON 发送PUT请求并解析JSON响应
func PutJSON(t *testing.T, url string, data interface{}, token string) *Response {
	return doJSON(t, http.MethodPut, url, data, token)
}

// DeleteJSON 发送DELETE请求并解析JSON响应
func DeleteJSON(t *testing.T, url string, token string) *Response {
	return doJSON(t, http.MethodDelete, url, nil, token)
}

// GetJSON 发送GET请求并解析JSON响应
func GetJSON(t *testing.T, url string, token string) *Response {
	return doJSON(t, http.MethodGet, url, nil, token)
}

// RequireServer 检查服务是否可达,不可达时跳过测试
// 集成测试依赖本地运行的完整服务,单独跑单元测试时自动跳过
func RequireServer(t *testing.T) {
	t.Helper()
	client := &http.Client{Timeout: 2 * time.Second}
	resp, err := client.Get("http://localhost:8080/ping")
	if err != nil {
		t.Skipf("跳过集成测试: 服务不可达 (%v)", err)
	}
	resp.Body.Close()
}

// GenerateTestEmail 生成唯一的测试邮箱
// 使用纳秒时间戳避免测试重复运行时的唯一索引冲突
func GenerateTestEmail(prefix string) string {
	return fmt.Sprintf("%s_%d@test.com", prefix, time.Now().UnixNano())
}

// GenerateTestISBN 生成唯一的测试ISBN
// ISBN-13格式：978 + 10位数字
func GenerateTestISBN() string {
	timestamp := time.Now().UnixNano()
	return fmt.Sprintf("978%010d", timestamp%10000000000)
}

// GenerateTestDocument 生成唯一的测试证件号
func GenerateTestDocument() string {
	return fmt.Sprintf("TEST%015d", time.Now().UnixNano()%1000000000000000)
}

// RegisterTestStaff 注册管理员并返回Token
// 封装注册+登录流程,让用例只关注业务断言
func RegisterTestStaff(t *testing.T, name string) (email string, token string) {
	email = GenerateTestEmail(name)
	registerReq := map[string]string{
		"email":    email,
		"password": "Test1234",
		"name":     name,
	}

	registerResp := PostJSON(t, BaseURL+"/staff/register", registerReq, "")
	require.Equal(t, 0, registerResp.Code, "注册失败: %s", registerResp.Message)

	loginReq := map[string]string{
		"email":    email,
		"password": "Test1234",
	}

	loginResp := PostJSON(t, BaseURL+"/staff/login", loginReq, "")
	require.Equal(t, 0, loginResp.Code, "登录失败: %s", loginResp.Message)

	var loginData LoginData
	err := json.Unmarshal(loginResp.Data, &loginData)
	require.NoError(t, err, "解析登录响应失败")

	return email, loginData.AccessToken
}

// AddTestBook 录入测试图书并返回图书数据
func AddTestBook(t *testing.T, token string, title string, totalQuantity int) BookData {
	bookReq := map[string]interface{}{
		"isbn":           GenerateTestISBN(),
		"title":          title,
		"author":         "测试作者",
		"total_quantity": totalQuantity,
	}

	resp := PostJSON(t, BaseURL+"/books", bookReq, token)
	require.Equal(t, 0, resp.Code, "图书录入失败: %s", resp.Message)

	var data BookData
	err := json.Unmarshal(resp.Data, &data)
	require.NoError(t, err, "解析图书响应失败")

	return data
}

// RegisterTestMember 注册测试读者并返回读者数据
func RegisterTestMember(t *testing.T, token string, name string) MemberData {
	memberReq := map[string]string{
		"name":                    name,
		"identification_document": GenerateTestDocument(),
		"email":                   GenerateTestEmail(name),
	}

	resp := PostJSON(t, BaseURL+"/members", memberReq, token)
	require.Equal(t, 0, resp.Code, "读者注册失败: %s", resp.Message)

	var data MemberData
	err := json.Unmarshal(resp.Data, &data)
	require.NoError(t, err, "解析读者响应失败")

	return data
}

// GetTestBook 查询单本图书(用于验证可借数变化)
func GetTestBook(t *testing.T, bookID uint) BookData {
	resp := GetJSON(t, fmt.Sprintf("%s/books/%d", BaseURL, bookID), "")
	require.Equal(t, 0, resp.Code, "查询图书失败: %s", resp.Message)

	var data BookData
	err := json.Unmarshal(resp.Data, &data)
	require.NoError(t, err, "解析图书响应失败")

	return data
}

// GetTestMember 查询单个读者(用于验证在借数变化)
func GetTestMember(t *testing.T, memberID uint) MemberData {
	resp := GetJSON(t, fmt.Sprintf("%s/members/%d", BaseURL, memberID), "")
	require.Equal(t, 0, resp.Code, "查询读者失败: %s", resp.Message)

	var data MemberData
	err := json.Unmarshal(resp.Data, &data)
	require.NoError(t, err, "解析读者响应失败")

	return data
}

// Checkout 借书并返回借阅记录
func Checkout(t *testing.T, token string, memberID, bookID uint) LoanData {
	resp := PostJSON(t, BaseURL+"/loans", map[string]uint{
		"member_id": memberID,
		"book_id":   bookID,
	}, token)
	require.Equal(t, 0, resp.Code, "借书失败: %s", resp.Message)

	var data LoanData
	err := json.Unmarshal(resp.Data, &data)
	require.NoError(t, err, "解析借阅响应失败")

	return data
}
