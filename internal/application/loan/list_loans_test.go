package loan

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiebiao/library/internal/domain/member"
)

func TestListActiveByMember(t *testing.T) {
	ctx := context.Background()

	t.Run("只返回在借记录", func(t *testing.T) {
		f := newCheckoutFixture()
		listUC := NewListLoansUseCase(f.loanRepo, f.memberRepo)

		b1 := f.addBook(t, "111", "《在借的书》", 1)
		b2 := f.addBook(t, "222", "《已还的书》", 1)
		m := f.addMember(t, "张三", "doc-list", "list@example.com")

		_, err := f.checkout.Execute(ctx, CheckoutRequest{MemberID: m.ID, BookID: b1.ID})
		require.NoError(t, err)

		l2, err := f.checkout.Execute(ctx, CheckoutRequest{MemberID: m.ID, BookID: b2.ID})
		require.NoError(t, err)
		_, err = f.returnLoan.Execute(ctx, l2.ID)
		require.NoError(t, err)

		active, err := listUC.ListActiveByMember(ctx, m.ID)
		require.NoError(t, err)
		require.Len(t, active, 1, "已归还的记录不应出现在在借列表中")
		assert.Equal(t, b1.ID, active[0].BookID)
	})

	t.Run("读者不存在返回404而不是空列表", func(t *testing.T) {
		f := newCheckoutFixture()
		listUC := NewListLoansUseCase(f.loanRepo, f.memberRepo)

		_, err := listUC.ListActiveByMember(ctx, 999)
		assert.ErrorIs(t, err, member.ErrMemberNotFound)
	})

	t.Run("无在借记录返回空列表", func(t *testing.T) {
		f := newCheckoutFixture()
		listUC := NewListLoansUseCase(f.loanRepo, f.memberRepo)

		m := f.addMember(t, "新读者", "doc-empty", "empty@example.com")

		active, err := listUC.ListActiveByMember(ctx, m.ID)
		require.NoError(t, err)
		assert.Empty(t, active)
	})
}
