package memory

import (
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/udyog-sutra-api/internal/domain"
	"github.com/jhoicas/udyog-sutra-api/internal/domain/entity"
)

func newUser(id, displayID, email string, createdAt time.Time) *entity.User {
	return &entity.User{
		ID:      id,
		UserID:  displayID,
		Email:   email,
		Role:    entity.RoleRetailer,
		Address: json.RawMessage(`{}`),
		Audit:   entity.Audit{Status: entity.StatusActive, CreatedAt: createdAt, CreatedBy: "USR0001"},
	}
}

func TestUserRepository_EmailUnique(t *testing.T) {
	ctx := context.Background()
	r := NewUserRepository()
	now := time.Now()

	require.NoError(t, r.Create(ctx, newUser("a", "USR0001", "a@x.com", now)))
	err := r.Create(ctx, newUser("b", "USR0002", "a@x.com", now))
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)

	ok, err := r.ExistsByEmail(ctx, "a@x.com")
	require.NoError(t, err)
	assert.True(t, ok)
	ok, _ = r.ExistsByEmail(ctx, "A@x.com")
	assert.False(t, ok, "la comparación de email distingue mayúsculas")
}

func TestUserRepository_FindByEitherKey(t *testing.T) {
	ctx := context.Background()
	r := NewUserRepository()
	id := "6f1c2a9e-3b8d-4d0e-9f55-1a2b3c4d5e6f"
	require.NoError(t, r.Create(ctx, newUser(id, "USR0007", "u@x.com", time.Now())))

	byNative, err := r.FindByKey(ctx, entity.ParseKey(id))
	require.NoError(t, err)
	require.NotNil(t, byNative)

	byDisplay, err := r.FindByKey(ctx, entity.ParseKey("USR0007"))
	require.NoError(t, err)
	require.NotNil(t, byDisplay)
	assert.Equal(t, byNative.ID, byDisplay.ID)

	missing, err := r.FindByKey(ctx, entity.ParseKey("USR9999"))
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestUserRepository_UpdateAndDelete(t *testing.T) {
	ctx := context.Background()
	r := NewUserRepository()
	require.NoError(t, r.Create(ctx, newUser("a", "USR0001", "a@x.com", time.Now())))
	require.NoError(t, r.Create(ctx, newUser("b", "USR0002", "b@x.com", time.Now())))

	res, err := r.Update(ctx, entity.DisplayKey("USR0404"), entity.UserPatch{})
	require.NoError(t, err)
	assert.False(t, res.Matched)

	name := "Asha"
	res, err = r.Update(ctx, entity.DisplayKey("USR0001"), entity.UserPatch{FullName: &name})
	require.NoError(t, err)
	assert.True(t, res.Matched)
	assert.Equal(t, int64(1), res.ModifiedCount)

	got, _ := r.FindByKey(ctx, entity.DisplayKey("USR0001"))
	assert.Equal(t, "Asha", got.FullName)
	assert.NotNil(t, got.UpdatedAt)

	taken := "b@x.com"
	_, err = r.Update(ctx, entity.DisplayKey("USR0001"), entity.UserPatch{Email: &taken})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)

	deleted, err := r.Delete(ctx, entity.DisplayKey("USR0001"))
	require.NoError(t, err)
	require.NotNil(t, deleted)
	assert.Equal(t, "a", deleted.ID)

	again, err := r.Delete(ctx, entity.DisplayKey("USR0001"))
	require.NoError(t, err)
	assert.Nil(t, again)
}

func TestUserRepository_ListHidesPasswordAndOrdersNewestFirst(t *testing.T) {
	ctx := context.Background()
	r := NewUserRepository()
	base := time.Now()
	old := newUser("a", "USR0001", "a@x.com", base)
	old.PasswordHash = "hash"
	require.NoError(t, r.Create(ctx, old))
	require.NoError(t, r.Create(ctx, newUser("b", "USR0002", "b@x.com", base.Add(time.Minute))))

	list, err := r.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "USR0002", list[0].UserID)
	for _, u := range list {
		assert.Empty(t, u.PasswordHash)
	}

	owned, err := r.ListByOwner(ctx, "USR0001")
	require.NoError(t, err)
	assert.Len(t, owned, 2)
}

func TestCustomerRepository_ListByOwnerNewestFirst(t *testing.T) {
	ctx := context.Background()
	r := NewCustomerRepository()
	base := time.Now()
	for i, id := range []string{"CUST0001", "CUST0002", "CUST0003"} {
		c := &entity.Customer{
			ID:         id + "-id",
			CustomerID: id,
			Party:      entity.Party{OwnerID: "USR0001", Name: id},
			Audit:      entity.Audit{Status: entity.StatusActive, CreatedAt: base.Add(time.Duration(i) * time.Second)},
		}
		require.NoError(t, r.Create(ctx, c))
	}
	require.NoError(t, r.Create(ctx, &entity.Customer{ID: "x", CustomerID: "CUST0004", Party: entity.Party{OwnerID: "USR0002"}}))

	list, err := r.ListByOwner(ctx, "USR0001")
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, []string{"CUST0003", "CUST0002", "CUST0001"}, []string{list[0].CustomerID, list[1].CustomerID, list[2].CustomerID})

	empty, err := r.ListByOwner(ctx, "USR0404")
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)
}

func TestSupplierRepository_PatchSupplierFields(t *testing.T) {
	ctx := context.Background()
	r := NewSupplierRepository()
	s := &entity.Supplier{ID: "s1", SupplierID: "SUPP0001", Party: entity.Party{Name: "Acme"}}
	s.ApplySupplierDefaults()
	require.NoError(t, r.Create(ctx, s))

	rating := decimal.RequireFromString("4.5")
	products := []string{"rice", "dal"}
	res, err := r.Update(ctx, entity.DisplayKey("SUPP0001"), entity.SupplierPatch{Rating: &rating, ProductsSupplied: &products})
	require.NoError(t, err)
	assert.True(t, res.Matched)

	got, err := r.FindByKey(ctx, entity.DisplayKey("SUPP0001"))
	require.NoError(t, err)
	assert.True(t, got.Rating.Equal(rating))
	assert.Equal(t, products, got.ProductsSupplied)
	assert.Equal(t, entity.DefaultPaymentTerms, got.PaymentTerms)
}

func TestSettingsRepository_Upsert(t *testing.T) {
	ctx := context.Background()
	r := NewSettingsRepository()

	got, err := r.Get(ctx, "USR0001")
	require.NoError(t, err)
	assert.Nil(t, got)

	first, err := r.Upsert(ctx, "USR0001", map[string]any{"theme": "dark", "language": "en"}, map[string]any{"theme": "dark"})
	require.NoError(t, err)
	assert.Equal(t, "dark", first.Preferences["theme"])
	assert.Equal(t, "en", first.Preferences["language"])

	second, err := r.Upsert(ctx, "USR0001", map[string]any{"ignored": true}, map[string]any{"language": "hi"})
	require.NoError(t, err)
	assert.Equal(t, "dark", second.Preferences["theme"])
	assert.Equal(t, "hi", second.Preferences["language"])
	assert.NotContains(t, second.Preferences, "ignored")
	assert.Equal(t, 1, r.Len())
}

func TestCounterRepository_ConcurrentNextIsUnique(t *testing.T) {
	ctx := context.Background()
	r := NewCounterRepository()
	const n = 100

	var wg sync.WaitGroup
	var mu sync.Mutex
	seen := make(map[int64]bool, n)
	for range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			v, err := r.Next(ctx, "customers")
			assert.NoError(t, err)
			mu.Lock()
			seen[v] = true
			mu.Unlock()
		}()
	}
	wg.Wait()
	assert.Len(t, seen, n)
	for i := int64(1); i <= n; i++ {
		assert.True(t, seen[i], "falta %d", i)
	}

	other, _ := r.Next(ctx, "suppliers")
	assert.Equal(t, int64(1), other, "cada secuencia cuenta por separado")
}

func TestRevocationStore_ExpiresEntries(t *testing.T) {
	ctx := context.Background()
	s := NewRevocationStore()
	now := time.Now()
	s.now = func() time.Time { return now }

	require.NoError(t, s.Revoke(ctx, "jti-1", now.Add(time.Hour)))
	ok, err := s.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, _ = s.IsRevoked(ctx, "jti-2")
	assert.False(t, ok)

	s.now = func() time.Time { return now.Add(2 * time.Hour) }
	ok, _ = s.IsRevoked(ctx, "jti-1")
	assert.False(t, ok)
}

func TestProductRepository_CRUD(t *testing.T) {
	ctx := context.Background()
	r := NewProductRepository()
	p := &entity.Product{ID: "p1", Name: "Soap", Price: decimal.NewFromInt(40), Stock: 3, CreatedAt: time.Now()}
	require.NoError(t, r.Create(ctx, p))

	stock := 10
	updated, err := r.Update(ctx, "p1", entity.ProductPatch{Stock: &stock})
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, 10, updated.Stock)
	assert.Equal(t, "Soap", updated.Name)

	missing, err := r.Update(ctx, "nope", entity.ProductPatch{Stock: &stock})
	require.NoError(t, err)
	assert.Nil(t, missing)

	deleted, err := r.Delete(ctx, "p1")
	require.NoError(t, err)
	require.NotNil(t, deleted)
	list, _ := r.List(ctx)
	assert.Empty(t, list)
}
