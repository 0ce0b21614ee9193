package member

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMember(t *testing.T) {
	m := NewMember("张三", "110101199003070011", "zhangsan@example.com")

	assert.Equal(t, 0, m.ActiveLoans, "新读者没有在借记录")
	assert.True(t, m.CanBorrow())
	assert.False(t, m.HasActiveLoans())
}

func TestBorrowOne(t *testing.T) {
	t.Run("未达上限可以借阅", func(t *testing.T) {
		m := NewMember("张三", "110101", "a@b.com")

		require.NoError(t, m.BorrowOne())
		assert.Equal(t, 1, m.ActiveLoans)
		assert.True(t, m.HasActiveLoans())
	})

	t.Run("达到上限后拒绝", func(t *testing.T) {
		m := NewMember("张三", "110101", "a@b.com")
		for i := 0; i < MaxActiveLoans; i++ {
			require.NoError(t, m.BorrowOne())
		}
		assert.False(t, m.CanBorrow())

		err := m.BorrowOne()
		assert.ErrorIs(t, err, ErrLoanLimitReached)
		assert.Equal(t, MaxActiveLoans, m.ActiveLoans, "拒绝后计数不变")
	})
}

func TestReturnOne(t *testing.T) {
	t.Run("归还后计数递减", func(t *testing.T) {
		m := NewMember("张三", "110101", "a@b.com")
		require.NoError(t, m.BorrowOne())

		require.NoError(t, m.ReturnOne())
		assert.Equal(t, 0, m.ActiveLoans)
	})

	t.Run("计数不允许为负", func(t *testing.T) {
		m := NewMember("张三", "110101", "a@b.com")

		err := m.ReturnOne()
		assert.ErrorIs(t, err, ErrLoanCountUnderflow)
		assert.Equal(t, 0, m.ActiveLoans)
	})

	t.Run("还书后重新获得借阅资格", func(t *testing.T) {
		m := NewMember("张三", "110101", "a@b.com")
		for i := 0; i < MaxActiveLoans; i++ {
			require.NoError(t, m.BorrowOne())
		}

		require.NoError(t, m.ReturnOne())
		assert.True(t, m.CanBorrow())
	})
}

func TestUpdateInfo(t *testing.T) {
	m := NewMember("张三", "110101", "a@b.com")

	m.UpdateInfo("李四", "", "")
	assert.Equal(t, "李四", m.Name)
	assert.Equal(t, "110101", m.IdentificationDocument, "空字段保持原值")
	assert.Equal(t, "a@b.com", m.Email)
}
