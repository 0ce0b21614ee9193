package loan

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLoan(t *testing.T) {
	before := time.Now()
	l := NewLoan(1, 2)

	assert.Equal(t, uint(1), l.MemberID)
	assert.Equal(t, uint(2), l.BookID)
	assert.Equal(t, StatusActive, l.Status)
	assert.True(t, l.IsActive())
	assert.Nil(t, l.ReturnDate, "在借记录没有归还日期")
	assert.False(t, l.LoanDate.Before(before), "借出日期为创建时间")
}

func TestMarkReturned(t *testing.T) {
	t.Run("正常归还", func(t *testing.T) {
		l := NewLoan(1, 2)

		require.NoError(t, l.MarkReturned())
		assert.Equal(t, StatusReturned, l.Status)
		assert.False(t, l.IsActive())
		require.NotNil(t, l.ReturnDate)
		assert.False(t, l.ReturnDate.Before(l.LoanDate), "归还日期不早于借出日期")
	})

	t.Run("重复归还被拒绝", func(t *testing.T) {
		l := NewLoan(1, 2)
		require.NoError(t, l.MarkReturned())
		first := *l.ReturnDate

		err := l.MarkReturned()
		assert.ErrorIs(t, err, ErrAlreadyReturned)
		assert.Equal(t, first, *l.ReturnDate, "归还日期不被覆盖")
	})
}
