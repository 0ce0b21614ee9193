package loan

import (
	"context"

	"github.com/xiebiao/library/internal/domain/book"
	"github.com/xiebiao/library/internal/domain/loan"
	"github.com/xiebiao/library/internal/domain/member"
	apperrors "github.com/xiebiao/library/pkg/errors"
)

// 内存版仓储Fake
// 说明: 单元测试不连数据库,用map模拟存储;
// 守卫逻辑(计数越界检查)与MySQL实现保持一致,
// 事务语义(回滚)不在单测范围,由test/integration覆盖

type fakeTxManager struct{}

func (f *fakeTxManager) Transaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeBookRepo struct {
	books  map[uint]*book.Book
	nextID uint
}

func newFakeBookRepo() *fakeBookRepo {
	return &fakeBookRepo{books: make(map[uint]*book.Book), nextID: 1}
}

func (r *fakeBookRepo) Create(ctx context.Context, b *book.Book) error {
	b.ID = r.nextID
	r.nextID++
	cp := *b
	r.books[b.ID] = &cp
	return nil
}

func (r *fakeBookRepo) FindByID(ctx context.Context, id uint) (*book.Book, error) {
	b, ok := r.books[id]
	if !ok {
		return nil, book.ErrBookNotFound
	}
	cp := *b
	return &cp, nil
}

func (r *fakeBookRepo) FindByISBN(ctx context.Context, isbn string) (*book.Book, error) {
	for _, b := range r.books {
		if b.ISBN == isbn {
			cp := *b
			return &cp, nil
		}
	}
	return nil, book.ErrBookNotFound
}

func (r *fakeBookRepo) Update(ctx context.Context, b *book.Book) error {
	if _, ok := r.books[b.ID]; !ok {
		return book.ErrBookNotFound
	}
	cp := *b
	r.books[b.ID] = &cp
	return nil
}

func (r *fakeBookRepo) Delete(ctx context.Context, id uint) error {
	if _, ok := r.books[id]; !ok {
		return book.ErrBookNotFound
	}
	delete(r.books, id)
	return nil
}

func (r *fakeBookRepo) List(ctx context.Context, params book.ListParams) ([]*book.Book, int64, error) {
	var out []*book.Book
	for _, b := range r.books {
		cp := *b
		out = append(out, &cp)
	}
	return out, int64(len(out)), nil
}

func (r *fakeBookRepo) LockByID(ctx context.Context, id uint) (*book.Book, error) {
	return r.FindByID(ctx, id)
}

func (r *fakeBookRepo) AdjustAvailable(ctx context.Context, id uint, delta int) error {
	b, ok := r.books[id]
	if !ok {
		return book.ErrBookNotFound
	}
	next := b.AvailableQuantity + delta
	if next < 0 {
		return book.ErrNoCopiesAvailable
	}
	if next > b.TotalQuantity {
		return apperrors.Invariant("归还时可借数量越界: book_id=%d", id)
	}
	b.AvailableQuantity = next
	return nil
}

type fakeMemberRepo struct {
	members map[uint]*member.Member
	nextID  uint
}

func newFakeMemberRepo() *fakeMemberRepo {
	return &fakeMemberRepo{members: make(map[uint]*member.Member), nextID: 1}
}

func (r *fakeMemberRepo) Create(ctx context.Context, m *member.Member) error {
	m.ID = r.nextID
	r.nextID++
	cp := *m
	r.members[m.ID] = &cp
	return nil
}

func (r *fakeMemberRepo) FindByID(ctx context.Context, id uint) (*member.Member, error) {
	m, ok := r.members[id]
	if !ok {
		return nil, member.ErrMemberNotFound
	}
	cp := *m
	return &cp, nil
}

func (r *fakeMemberRepo) FindByDocument(ctx context.Context, document string) (*member.Member, error) {
	for _, m := range r.members {
		if m.IdentificationDocument == document {
			cp := *m
			return &cp, nil
		}
	}
	return nil, member.ErrMemberNotFound
}

func (r *fakeMemberRepo) FindByEmail(ctx context.Context, email string) (*member.Member, error) {
	for _, m := range r.members {
		if m.Email == email {
			cp := *m
			return &cp, nil
		}
	}
	return nil, member.ErrMemberNotFound
}

func (r *fakeMemberRepo) Update(ctx context.Context, m *member.Member) error {
	if _, ok := r.members[m.ID]; !ok {
		return member.ErrMemberNotFound
	}
	cp := *m
	r.members[m.ID] = &cp
	return nil
}

func (r *fakeMemberRepo) Delete(ctx context.Context, id uint) error {
	if _, ok := r.members[id]; !ok {
		return member.ErrMemberNotFound
	}
	delete(r.members, id)
	return nil
}

func (r *fakeMemberRepo) List(ctx context.Context, params member.ListParams) ([]*member.Member, int64, error) {
	var out []*member.Member
	for _, m := range r.members {
		cp := *m
		out = append(out, &cp)
	}
	return out, int64(len(out)), nil
}

func (r *fakeMemberRepo) LockByID(ctx context.Context, id uint) (*member.Member, error) {
	return r.FindByID(ctx, id)
}

func (r *fakeMemberRepo) AdjustActiveLoans(ctx context.Context, id uint, delta int) error {
	m, ok := r.members[id]
	if !ok {
		return member.ErrMemberNotFound
	}
	next := m.ActiveLoans + delta
	if next > member.MaxActiveLoans {
		return member.ErrLoanLimitReached
	}
	if next < 0 {
		return apperrors.Invariant("归还时在借计数越界: member_id=%d", id)
	}
	m.ActiveLoans = next
	return nil
}

type fakeLoanRepo struct {
	loans  map[uint]*loan.Loan
	nextID uint
}

func newFakeLoanRepo() *fakeLoanRepo {
	return &fakeLoanRepo{loans: make(map[uint]*loan.Loan), nextID: 1}
}

func (r *fakeLoanRepo) Create(ctx context.Context, l *loan.Loan) error {
	l.ID = r.nextID
	r.nextID++
	cp := *l
	r.loans[l.ID] = &cp
	return nil
}

func (r *fakeLoanRepo) LockByID(ctx context.Context, id uint) (*loan.Loan, error) {
	l, ok := r.loans[id]
	if !ok {
		return nil, loan.ErrLoanNotFound
	}
	cp := *l
	return &cp, nil
}

func (r *fakeLoanRepo) Update(ctx context.Context, l *loan.Loan) error {
	if _, ok := r.loans[l.ID]; !ok {
		return loan.ErrLoanNotFound
	}
	cp := *l
	r.loans[l.ID] = &cp
	return nil
}

func (r *fakeLoanRepo) ListDetailed(ctx context.Context) ([]*loan.Detail, error) {
	var out []*loan.Detail
	for _, l := range r.loans {
		out = append(out, &loan.Detail{Loan: *l})
	}
	return out, nil
}

func (r *fakeLoanRepo) ListActiveByMember(ctx context.Context, memberID uint) ([]*loan.Detail, error) {
	var out []*loan.Detail
	for _, l := range r.loans {
		if l.MemberID == memberID && l.Status == loan.StatusActive {
			out = append(out, &loan.Detail{Loan: *l})
		}
	}
	return out, nil
}

func (r *fakeLoanRepo) CountActiveByMemberAndBook(ctx context.Context, memberID, bookID uint) (int64, error) {
	var count int64
	for _, l := range r.loans {
		if l.MemberID == memberID && l.BookID == bookID && l.Status == loan.StatusActive {
			count++
		}
	}
	return count, nil
}
