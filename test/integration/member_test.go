package integration

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 教学说明：读者档案模块集成测试
//
// 测试场景覆盖：
// 1. 读者注册（证件号/邮箱唯一性）
// 2. 读者查询（公开接口）
// 3. 注销守卫（有未归还借阅时拒绝）

// TestMemberRegister 测试读者注册功能
func TestMemberRegister(t *testing.T) {
	RequireServer(t)
	_, token := RegisterTestStaff(t, "member_registrar")

	t.Run("正常注册读者", func(t *testing.T) {
		document := GenerateTestDocument()
		email := GenerateTestEmail("reader")

		resp := PostJSON(t, BaseURL+"/members", map[string]string{
			"name":                    "张三",
			"identification_document": document,
			"email":                   email,
		}, token)

		assert.Equal(t, 0, resp.Code, "注册应该成功")

		var data MemberData
		err := json.Unmarshal(resp.Data, &data)
		require.NoError(t, err, "解析响应数据失败")

		assert.NotZero(t, data.ID)
		assert.Equal(t, document, data.IdentificationDocument)
		assert.Equal(t, 0, data.ActiveLoans, "新读者没有在借记录")

		t.Logf("✓ 注册成功，读者ID: %d", data.ID)
	})

	t.Run("证件号重复应失败", func(t *testing.T) {
		document := GenerateTestDocument()

		resp1 := PostJSON(t, BaseURL+"/members", map[string]string{
			"name":                    "李四",
			"identification_document": document,
			"email":                   GenerateTestEmail("lisi"),
		}, token)
		require.Equal(t, 0, resp1.Code, "第一次注册应该成功")

		resp2 := PostJSON(t, BaseURL+"/members", map[string]string{
			"name":                    "王五",
			"identification_document": document, // 相同证件号
			"email":                   GenerateTestEmail("wangwu"),
		}, token)
		assert.NotEqual(t, 0, resp2.Code, "重复证件号应该失败")

		t.Logf("✓ 重复证件号正确返回错误: %s", resp2.Message)
	})

	t.Run("邮箱重复应失败", func(t *testing.T) {
		email := GenerateTestEmail("dup")

		resp1 := PostJSON(t, BaseURL+"/members", map[string]string{
			"name":                    "李四",
			"identification_document": GenerateTestDocument(),
			"email":                   email,
		}, token)
		require.Equal(t, 0, resp1.Code, "第一次注册应该成功")

		resp2 := PostJSON(t, BaseURL+"/members", map[string]string{
			"name":                    "王五",
			"identification_document": GenerateTestDocument(),
			"email":                   email, // 相同邮箱
		}, token)
		assert.NotEqual(t, 0, resp2.Code, "重复邮箱应该失败")

		t.Logf("✓ 重复邮箱正确返回错误: %s", resp2.Message)
	})

	t.Run("邮箱格式非法应失败", func(t *testing.T) {
		resp := PostJSON(t, BaseURL+"/members", map[string]string{
			"name":                    "赵六",
			"identification_document": GenerateTestDocument(),
			"email":                   "not-an-email",
		}, token)

		assert.NotEqual(t, 0, resp.Code, "非法邮箱应该失败")

		t.Logf("✓ 非法邮箱正确被拒绝: %s", resp.Message)
	})

	t.Run("未登录不能注册读者", func(t *testing.T) {
		resp := PostJSON(t, BaseURL+"/members", map[string]string{
			"name":                    "张三",
			"identification_document": GenerateTestDocument(),
			"email":                   GenerateTestEmail("noauth"),
		}, "") // 空token

		assert.NotEqual(t, 0, resp.Code, "未登录应该失败")

		t.Logf("✓ 未登录正确被拒绝: %s", resp.Message)
	})
}

// TestMemberUpdate 测试读者信息修改
func TestMemberUpdate(t *testing.T) {
	RequireServer(t)
	_, token := RegisterTestStaff(t, "member_updater")

	t.Run("修改联系方式不影响在借计数", func(t *testing.T) {
		book := AddTestBook(t, token, "《修改读者测试》", 1)
		member := RegisterTestMember(t, token, "update_reader")
		Checkout(t, token, member.ID, book.ID)

		resp := PutJSON(t, fmt.Sprintf("%s/members/%d", BaseURL, member.ID), map[string]string{
			"name":                    "改名读者",
			"identification_document": member.IdentificationDocument,
			"email":                   GenerateTestEmail("renamed"),
		}, token)
		assert.Equal(t, 0, resp.Code, "修改应该成功: %s", resp.Message)

		updated := GetTestMember(t, member.ID)
		assert.Equal(t, "改名读者", updated.Name)
		assert.Equal(t, 1, updated.ActiveLoans, "修改信息不影响在借计数")

		t.Logf("✓ 修改成功，在借计数保持为1")
	})
}

// TestMemberDelete 测试读者注销守卫
func TestMemberDelete(t *testing.T) {
	RequireServer(t)
	_, token := RegisterTestStaff(t, "member_deleter")

	t.Run("无在借可以注销", func(t *testing.T) {
		member := RegisterTestMember(t, token, "clean_reader")

		resp := DeleteJSON(t, fmt.Sprintf("%s/members/%d", BaseURL, member.ID), token)
		assert.Equal(t, 0, resp.Code, "注销应该成功: %s", resp.Message)

		getResp := GetJSON(t, fmt.Sprintf("%s/members/%d", BaseURL, member.ID), "")
		assert.NotEqual(t, 0, getResp.Code, "注销后查询应该失败")

		t.Logf("✓ 读者注销成功")
	})

	t.Run("有未归还借阅时拒绝注销", func(t *testing.T) {
		book := AddTestBook(t, token, "《注销守卫测试》", 1)
		member := RegisterTestMember(t, token, "busy_reader")
		Checkout(t, token, member.ID, book.ID)

		resp := DeleteJSON(t, fmt.Sprintf("%s/members/%d", BaseURL, member.ID), token)
		assert.NotEqual(t, 0, resp.Code, "有未归还借阅应该拒绝注销")

		// 读者还在
		still := GetTestMember(t, member.ID)
		assert.Equal(t, member.ID, still.ID)

		t.Logf("✓ 有未归还借阅正确拒绝注销: %s", resp.Message)
	})
}
