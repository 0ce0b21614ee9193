package book

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiebiao/library/internal/domain/book"
)

// 图书用例单元测试
// 重点验证馆藏总数修改的下限规则与删除守卫

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
	for _, existing := range r.books {
		if existing.ISBN == b.ISBN {
			return book.ErrISBNDuplicate
		}
	}
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
	b.AvailableQuantity += delta
	return nil
}

// seedBook 预置一本馆藏total、在借onLoan的图书
func seedBook(t *testing.T, repo *fakeBookRepo, isbn string, total, onLoan int) *book.Book {
	t.Helper()
	b := book.NewBook(isbn, "《测试教程》", "测试作者", total)
	b.AvailableQuantity = total - onLoan
	require.NoError(t, repo.Create(context.Background(), b))
	return b
}

func TestUpdateBook(t *testing.T) {
	ctx := context.Background()

	t.Run("正常修改", func(t *testing.T) {
		repo := newFakeBookRepo()
		uc := NewUpdateBookUseCase(repo, &fakeTxManager{})
		b := seedBook(t, repo, "111", 3, 1)

		updated, err := uc.Execute(ctx, UpdateBookRequest{
			ID:            b.ID,
			ISBN:          "111",
			Title:         "《新书名》",
			Author:        "新作者",
			TotalQuantity: 5,
		})
		require.NoError(t, err)

		assert.Equal(t, "《新书名》", updated.Title)
		assert.Equal(t, 5, updated.TotalQuantity)
		// 在借1本不变,可借数 = 5 - 1
		assert.Equal(t, 4, updated.AvailableQuantity)
	})

	t.Run("总数不能低于在借数量", func(t *testing.T) {
		repo := newFakeBookRepo()
		uc := NewUpdateBookUseCase(repo, &fakeTxManager{})
		b := seedBook(t, repo, "222", 5, 3)

		_, err := uc.Execute(ctx, UpdateBookRequest{
			ID:            b.ID,
			ISBN:          "222",
			Title:         "《测试教程》",
			Author:        "测试作者",
			TotalQuantity: 2, // 在借3本,降到2会破坏不变量
		})
		assert.ErrorIs(t, err, book.ErrQuantityBelowLoans)

		// 拒绝后数据不变
		got, _ := repo.FindByID(ctx, b.ID)
		assert.Equal(t, 5, got.TotalQuantity)
	})

	t.Run("总数恰好等于在借数量", func(t *testing.T) {
		repo := newFakeBookRepo()
		uc := NewUpdateBookUseCase(repo, &fakeTxManager{})
		b := seedBook(t, repo, "333", 5, 3)

		updated, err := uc.Execute(ctx, UpdateBookRequest{
			ID:            b.ID,
			ISBN:          "333",
			Title:         "《测试教程》",
			Author:        "测试作者",
			TotalQuantity: 3, // 边界:允许,可借数变为0
		})
		require.NoError(t, err)
		assert.Equal(t, 0, updated.AvailableQuantity)
	})

	t.Run("修改ISBN时检查唯一性", func(t *testing.T) {
		repo := newFakeBookRepo()
		uc := NewUpdateBookUseCase(repo, &fakeTxManager{})
		seedBook(t, repo, "taken", 1, 0)
		b := seedBook(t, repo, "444", 1, 0)

		_, err := uc.Execute(ctx, UpdateBookRequest{
			ID:            b.ID,
			ISBN:          "taken",
			Title:         "《测试教程》",
			Author:        "测试作者",
			TotalQuantity: 1,
		})
		assert.ErrorIs(t, err, book.ErrISBNDuplicate)
	})

	t.Run("图书不存在", func(t *testing.T) {
		repo := newFakeBookRepo()
		uc := NewUpdateBookUseCase(repo, &fakeTxManager{})

		_, err := uc.Execute(ctx, UpdateBookRequest{
			ID:            999,
			ISBN:          "555",
			Title:         "《测试教程》",
			Author:        "测试作者",
			TotalQuantity: 1,
		})
		assert.ErrorIs(t, err, book.ErrBookNotFound)
	})
}

func TestDeleteBook(t *testing.T) {
	ctx := context.Background()

	t.Run("无在借副本可以删除", func(t *testing.T) {
		repo := newFakeBookRepo()
		uc := NewDeleteBookUseCase(repo, &fakeTxManager{})
		b := seedBook(t, repo, "111", 3, 0)

		require.NoError(t, uc.Execute(ctx, b.ID))

		_, err := repo.FindByID(ctx, b.ID)
		assert.ErrorIs(t, err, book.ErrBookNotFound)
	})

	t.Run("有在借副本时拒绝删除", func(t *testing.T) {
		repo := newFakeBookRepo()
		uc := NewDeleteBookUseCase(repo, &fakeTxManager{})
		b := seedBook(t, repo, "222", 3, 1)

		err := uc.Execute(ctx, b.ID)
		assert.ErrorIs(t, err, book.ErrBookHasActiveLoans)

		// 图书仍然存在
		_, err = repo.FindByID(ctx, b.ID)
		assert.NoError(t, err)
	})

	t.Run("图书不存在", func(t *testing.T) {
		repo := newFakeBookRepo()
		uc := NewDeleteBookUseCase(repo, &fakeTxManager{})

		err := uc.Execute(ctx, 999)
		assert.ErrorIs(t, err, book.ErrBookNotFound)
	})
}
