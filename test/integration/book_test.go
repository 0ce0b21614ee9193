package integration

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 教学说明：图书目录模块集成测试
//
// 测试场景覆盖：
// 1. 图书录入（需要认证）
// 2. 图书查询、搜索、分页（公开接口）
// 3. 修改总数时的可借数重算
// 4. 删除守卫（有在借副本时拒绝）

// TestBookAdd 测试图书录入功能
func TestBookAdd(t *testing.T) {
	RequireServer(t)
	_, token := RegisterTestStaff(t, "book_adder")

	t.Run("正常录入图书", func(t *testing.T) {
		isbn := GenerateTestISBN()
		bookReq := map[string]interface{}{
			"isbn":           isbn,
			"title":          "《Go语言高级编程》",
			"author":         "柴树杉",
			"total_quantity": 3,
		}

		resp := PostJSON(t, BaseURL+"/books", bookReq, token)

		assert.Equal(t, 0, resp.Code, "录入应该成功")

		var data BookData
		err := json.Unmarshal(resp.Data, &data)
		require.NoError(t, err, "解析响应数据失败")

		assert.NotZero(t, data.ID, "图书ID应该大于0")
		assert.Equal(t, isbn, data.ISBN)
		assert.Equal(t, 3, data.TotalQuantity)
		assert.Equal(t, 3, data.AvailableQuantity, "新书全部副本可借")

		t.Logf("✓ 录入成功，图书ID: %d, ISBN: %s", data.ID, data.ISBN)
	})

	t.Run("未登录不能录入", func(t *testing.T) {
		bookReq := map[string]interface{}{
			"isbn":           GenerateTestISBN(),
			"title":          "《测试图书》",
			"author":         "测试作者",
			"total_quantity": 1,
		}

		resp := PostJSON(t, BaseURL+"/books", bookReq, "") // 空token

		assert.NotEqual(t, 0, resp.Code, "未登录应该失败")

		t.Logf("✓ 未登录正确被拒绝: %s", resp.Message)
	})

	t.Run("ISBN重复应失败", func(t *testing.T) {
		isbn := GenerateTestISBN()

		resp1 := PostJSON(t, BaseURL+"/books", map[string]interface{}{
			"isbn":           isbn,
			"title":          "《图书A》",
			"author":         "作者A",
			"total_quantity": 1,
		}, token)
		require.Equal(t, 0, resp1.Code, "第一次录入应该成功")

		resp2 := PostJSON(t, BaseURL+"/books", map[string]interface{}{
			"isbn":           isbn, // 相同ISBN
			"title":          "《图书B》",
			"author":         "作者B",
			"total_quantity": 2,
		}, token)
		assert.NotEqual(t, 0, resp2.Code, "重复ISBN应该失败")

		t.Logf("✓ 重复ISBN正确返回错误: %s", resp2.Message)
	})

	t.Run("总数必须大于等于1", func(t *testing.T) {
		resp := PostJSON(t, BaseURL+"/books", map[string]interface{}{
			"isbn":           GenerateTestISBN(),
			"title":          "《测试图书》",
			"author":         "测试作者",
			"total_quantity": 0,
		}, token)

		assert.NotEqual(t, 0, resp.Code, "总数为0应该失败")

		t.Logf("✓ 总数为0正确被拒绝: %s", resp.Message)
	})
}

// TestBookList 测试图书查询功能
func TestBookList(t *testing.T) {
	RequireServer(t)
	_, token := RegisterTestStaff(t, "book_lister")

	// 录入几本图书用于查询
	for i := 1; i <= 3; i++ {
		AddTestBook(t, token, fmt.Sprintf("《集成查询测试%d》", i), i)
	}

	t.Run("默认查询（第1页，每页20条）", func(t *testing.T) {
		resp := GetJSON(t, BaseURL+"/books", "")

		assert.Equal(t, 0, resp.Code, "查询应该成功")

		var data BookListData
		err := json.Unmarshal(resp.Data, &data)
		require.NoError(t, err, "解析响应数据失败")

		assert.GreaterOrEqual(t, len(data.List), 3, "至少应该返回刚录入的3本书")
		assert.Equal(t, 1, data.Page, "默认应该是第1页")
		assert.Equal(t, 20, data.Size, "默认每页应该是20条")

		t.Logf("✓ 默认查询成功，返回 %d 本书，总数: %d", len(data.List), data.Total)
	})

	t.Run("分页查询", func(t *testing.T) {
		url := fmt.Sprintf("%s/books?page=1&size=2", BaseURL)
		resp := GetJSON(t, url, "")

		assert.Equal(t, 0, resp.Code, "查询应该成功")

		var data BookListData
		err := json.Unmarshal(resp.Data, &data)
		require.NoError(t, err, "解析响应数据失败")

		assert.LessOrEqual(t, len(data.List), 2, "每页最多2条")
		assert.Equal(t, 2, data.Size, "每页应该是2条")

		t.Logf("✓ 分页查询成功，第%d页返回%d条", data.Page, len(data.List))
	})

	t.Run("关键词搜索", func(t *testing.T) {
		url := fmt.Sprintf("%s/books?keyword=%s", BaseURL, "集成查询测试")
		resp := GetJSON(t, url, "")

		assert.Equal(t, 0, resp.Code, "查询应该成功")

		var data BookListData
		err := json.Unmarshal(resp.Data, &data)
		require.NoError(t, err, "解析响应数据失败")

		assert.GreaterOrEqual(t, len(data.List), 3, "应该搜到刚录入的3本书")

		t.Logf("✓ 关键词搜索成功，找到 %d 本书", len(data.List))
	})

	t.Run("公开接口无需认证", func(t *testing.T) {
		resp := GetJSON(t, BaseURL+"/books", "") // 空token

		assert.Equal(t, 0, resp.Code, "公开接口应该可以访问")

		t.Logf("✓ 图书列表公开访问成功")
	})
}

// TestBookUpdate 测试图书修改功能
func TestBookUpdate(t *testing.T) {
	RequireServer(t)
	_, token := RegisterTestStaff(t, "book_updater")

	t.Run("修改总数后可借数重算", func(t *testing.T) {
		book := AddTestBook(t, token, "《修改测试》", 3)

		resp := PutJSON(t, fmt.Sprintf("%s/books/%d", BaseURL, book.ID), map[string]interface{}{
			"isbn":           book.ISBN,
			"title":          book.Title,
			"author":         "测试作者",
			"total_quantity": 5,
		}, token)
		assert.Equal(t, 0, resp.Code, "修改应该成功: %s", resp.Message)

		updated := GetTestBook(t, book.ID)
		assert.Equal(t, 5, updated.TotalQuantity)
		assert.Equal(t, 5, updated.AvailableQuantity, "无在借时 可借数=总数")

		t.Logf("✓ 总数从3改为5，可借数随之变为5")
	})

	t.Run("总数不能低于在借数量", func(t *testing.T) {
		// 2本馆藏借出1本,再把总数改为0会低于在借数
		book := AddTestBook(t, token, "《缩减测试》", 2)
		member := RegisterTestMember(t, token, "shrink_reader")
		Checkout(t, token, member.ID, book.ID)

		resp := PutJSON(t, fmt.Sprintf("%s/books/%d", BaseURL, book.ID), map[string]interface{}{
			"isbn":           book.ISBN,
			"title":          book.Title,
			"author":         "测试作者",
			"total_quantity": 1,
		}, token)
		// 在借1本,总数改为1恰好合法(可借数变为0)
		assert.Equal(t, 0, resp.Code, "总数恰好等于在借数应该成功: %s", resp.Message)

		updated := GetTestBook(t, book.ID)
		assert.Equal(t, 0, updated.AvailableQuantity, "全部副本都在借")

		t.Logf("✓ 缩减到恰好等于在借数成功，可借数为0")
	})
}

// TestBookDelete 测试图书删除守卫
func TestBookDelete(t *testing.T) {
	RequireServer(t)
	_, token := RegisterTestStaff(t, "book_deleter")

	t.Run("无在借副本可以删除", func(t *testing.T) {
		book := AddTestBook(t, token, "《删除测试》", 1)

		resp := DeleteJSON(t, fmt.Sprintf("%s/books/%d", BaseURL, book.ID), token)
		assert.Equal(t, 0, resp.Code, "删除应该成功: %s", resp.Message)

		// 删除后查询应该404
		getResp := GetJSON(t, fmt.Sprintf("%s/books/%d", BaseURL, book.ID), "")
		assert.NotEqual(t, 0, getResp.Code, "删除后查询应该失败")

		t.Logf("✓ 图书删除成功")
	})

	t.Run("有在借副本时拒绝删除", func(t *testing.T) {
		book := AddTestBook(t, token, "《在借删除测试》", 2)
		member := RegisterTestMember(t, token, "delete_guard_reader")
		Checkout(t, token, member.ID, book.ID)

		resp := DeleteJSON(t, fmt.Sprintf("%s/books/%d", BaseURL, book.ID), token)
		assert.NotEqual(t, 0, resp.Code, "有在借副本应该拒绝删除")

		// 图书还在
		still := GetTestBook(t, book.ID)
		assert.Equal(t, book.ID, still.ID)

		t.Logf("✓ 有在借副本正确拒绝删除: %s", resp.Message)
	})
}
