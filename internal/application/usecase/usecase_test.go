package usecase_test

import (
	"context"
	"encoding/json"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/jhoicas/udyog-sutra-api/internal/application/dto"
	"github.com/jhoicas/udyog-sutra-api/internal/application/idgen"
	"github.com/jhoicas/udyog-sutra-api/internal/application/usecase"
	"github.com/jhoicas/udyog-sutra-api/internal/domain"
	"github.com/jhoicas/udyog-sutra-api/internal/domain/entity"
	"github.com/jhoicas/udyog-sutra-api/internal/infrastructure/memory"
)

type CustomerSupplierSuite struct {
	suite.Suite
	ctx       context.Context
	store     *memory.Store
	customers *usecase.CustomerUseCase
	suppliers *usecase.SupplierUseCase
}

func TestCustomerSupplierSuite(t *testing.T) {
	suite.Run(t, new(CustomerSupplierSuite))
}

func (s *CustomerSupplierSuite) SetupTest() {
	s.ctx = context.Background()
	s.store = memory.NewStore()
	ids := idgen.NewGenerator(s.store.Counters)
	s.customers = usecase.NewCustomerUseCase(s.store.Customers, ids)
	s.suppliers = usecase.NewSupplierUseCase(s.store.Suppliers, ids)
}

func (s *CustomerSupplierSuite) createCustomer(name string) *dto.CreateCustomerResponse {
	out, err := s.customers.Create(s.ctx, dto.CreateCustomerRequest{PartyFields: dto.PartyFields{Name: name}}, "USR0001")
	s.Require().NoError(err)
	return out
}

func (s *CustomerSupplierSuite) TestCreateCustomer_DefaultsAndOwner() {
	out := s.createCustomer("Kirana")
	s.Equal("CUST0001", out.Customer.CustomerID)
	s.Equal("active", out.Customer.Status)

	got, err := s.customers.Get(s.ctx, "CUST0001")
	s.Require().NoError(err)
	s.Equal("USR0001", got.OwnerID)
	s.Equal("Net 30", got.PaymentTerms)
	s.True(got.CreditLimit.IsZero())
	s.Equal([]string{}, got.Phone)
	s.JSONEq(`[]`, string(got.Addresses))
	s.Nil(got.UpdatedAt)

	byNative, err := s.customers.Get(s.ctx, got.ID)
	s.Require().NoError(err)
	s.Equal(got.CustomerID, byNative.CustomerID)
}

func (s *CustomerSupplierSuite) TestCreateCustomer_ExplicitCreatedByWins() {
	limit := decimal.NewFromInt(5000)
	_, err := s.customers.Create(s.ctx, dto.CreateCustomerRequest{PartyFields: dto.PartyFields{
		Name: "Kirana", CreatedBy: "USR0042", CreditLimit: &limit, PaymentTerms: "Net 15",
	}}, "USR0001")
	s.Require().NoError(err)

	list, err := s.customers.ListByOwner(s.ctx, "USR0042")
	s.Require().NoError(err)
	s.Require().Len(list, 1)
	s.True(list[0].CreditLimit.Equal(limit))
	s.Equal("Net 15", list[0].PaymentTerms)
}

func (s *CustomerSupplierSuite) TestCreateCustomer_NameRequired() {
	_, err := s.customers.Create(s.ctx, dto.CreateCustomerRequest{}, "USR0001")
	s.ErrorIs(err, domain.ErrInvalidInput)
}

func (s *CustomerSupplierSuite) TestCreateCustomer_ConcurrentIDsAreUnique() {
	const n = 50
	var wg sync.WaitGroup
	var mu sync.Mutex
	seen := map[string]bool{}
	for range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			out, err := s.customers.Create(s.ctx, dto.CreateCustomerRequest{PartyFields: dto.PartyFields{Name: "c"}}, "USR0001")
			if !s.NoError(err) {
				return
			}
			mu.Lock()
			seen[out.Customer.CustomerID] = true
			mu.Unlock()
		}()
	}
	wg.Wait()
	s.Len(seen, n)
	s.True(seen["CUST0001"])
	s.True(seen["CUST0050"])
}

func (s *CustomerSupplierSuite) TestUpdateCustomer_UnknownKey() {
	name := "x"
	_, err := s.customers.Update(s.ctx, "CUST0404", dto.UpdateCustomerRequest{PartyPatchFields: dto.PartyPatchFields{Name: &name}}, retailer)
	s.ErrorIs(err, domain.ErrNotFound)
	s.Empty(mustList(s.T(), s.customers, "USR0001"))
}

func (s *CustomerSupplierSuite) TestUpdateCustomer_AppliesPatch() {
	s.createCustomer("Kirana")
	notes := "pays late"
	out, err := s.customers.Update(s.ctx, "CUST0001", dto.UpdateCustomerRequest{PartyPatchFields: dto.PartyPatchFields{Notes: &notes}}, retailer)
	s.Require().NoError(err)
	s.True(out.Success)
	s.Equal(int64(1), out.ModifiedCount)

	got, _ := s.customers.Get(s.ctx, "CUST0001")
	s.Equal("pays late", got.Notes)
	s.Equal("Kirana", got.Name)
	s.NotNil(got.UpdatedAt)
	s.Equal("USR0001", got.UpdatedBy, "sin updatedBy en el cuerpo se usa el actor")
}

func (s *CustomerSupplierSuite) TestUpdateCustomer_EmptyPatchDoesNotWrite() {
	s.createCustomer("Kirana")

	out, err := s.customers.Update(s.ctx, "CUST0001", dto.UpdateCustomerRequest{}, retailer)
	s.Require().NoError(err)
	s.True(out.Success)
	s.Zero(out.ModifiedCount)

	got, _ := s.customers.Get(s.ctx, "CUST0001")
	s.Nil(got.UpdatedAt)
	s.Empty(got.UpdatedBy)

	_, err = s.customers.Update(s.ctx, "CUST0404", dto.UpdateCustomerRequest{}, retailer)
	s.ErrorIs(err, domain.ErrNotFound)
}

func (s *CustomerSupplierSuite) TestUpdateSupplier_EmptyPatchDoesNotWrite() {
	_, err := s.suppliers.Create(s.ctx, dto.CreateSupplierRequest{PartyFields: dto.PartyFields{Name: "Acme"}}, "USR0001")
	s.Require().NoError(err)

	out, err := s.suppliers.Update(s.ctx, "SUPP0001", dto.UpdateSupplierRequest{}, retailer)
	s.Require().NoError(err)
	s.Zero(out.ModifiedCount)

	_, err = s.suppliers.Update(s.ctx, "SUPP0404", dto.UpdateSupplierRequest{}, retailer)
	s.ErrorIs(err, domain.ErrNotFound)
}

func (s *CustomerSupplierSuite) TestUpdateCustomer_RejectsUnknownStatus() {
	s.createCustomer("Kirana")
	status := "archived"
	_, err := s.customers.Update(s.ctx, "CUST0001", dto.UpdateCustomerRequest{PartyPatchFields: dto.PartyPatchFields{Status: &status}}, retailer)
	s.ErrorIs(err, domain.ErrInvalidInput)
}

func (s *CustomerSupplierSuite) TestDeleteCustomer_Twice() {
	s.createCustomer("Kirana")

	out, err := s.customers.Delete(s.ctx, "CUST0001")
	s.Require().NoError(err)
	s.Equal("Kirana", out.DeletedCustomer.Name)

	_, err = s.customers.Delete(s.ctx, "CUST0001")
	s.ErrorIs(err, domain.ErrNotFound)
}

func (s *CustomerSupplierSuite) TestSupplier_CreateListAndPatch() {
	rating := decimal.RequireFromString("4.2")
	out, err := s.suppliers.Create(s.ctx, dto.CreateSupplierRequest{
		PartyFields:      dto.PartyFields{Name: "Acme"},
		Rating:           &rating,
		ProductsSupplied: []string{"rice"},
	}, "USR0003")
	s.Require().NoError(err)
	s.Equal("SUPP0001", out.Supplier.SupplierID)

	got, err := s.suppliers.Get(s.ctx, "SUPP0001")
	s.Require().NoError(err)
	s.JSONEq(`{}`, string(got.BankDetails))
	s.True(got.Rating.Equal(rating))

	bank := json.RawMessage(`{"ifsc":"SBIN0001"}`)
	_, err = s.suppliers.Update(s.ctx, "SUPP0001", dto.UpdateSupplierRequest{BankDetails: bank}, retailer)
	s.Require().NoError(err)
	got, _ = s.suppliers.Get(s.ctx, "SUPP0001")
	s.JSONEq(`{"ifsc":"SBIN0001"}`, string(got.BankDetails))

	all, err := s.suppliers.List(s.ctx)
	s.Require().NoError(err)
	s.Len(all, 1)
	mine, err := s.suppliers.ListByOwner(s.ctx, "USR0003")
	s.Require().NoError(err)
	s.Len(mine, 1)
}

func (s *CustomerSupplierSuite) TestSupplier_RejectsNegativeRating() {
	neg := decimal.NewFromInt(-1)
	_, err := s.suppliers.Create(s.ctx, dto.CreateSupplierRequest{PartyFields: dto.PartyFields{Name: "Acme"}, Rating: &neg}, "USR0001")
	s.ErrorIs(err, domain.ErrInvalidInput)
}

func (s *CustomerSupplierSuite) TestSupplier_DeleteTwice() {
	_, err := s.suppliers.Create(s.ctx, dto.CreateSupplierRequest{PartyFields: dto.PartyFields{Name: "Acme"}}, "USR0001")
	s.Require().NoError(err)

	out, err := s.suppliers.Delete(s.ctx, "SUPP0001")
	s.Require().NoError(err)
	s.Equal("SUPP0001", out.DeletedSupplier.SupplierID)
	_, err = s.suppliers.Delete(s.ctx, "SUPP0001")
	s.ErrorIs(err, domain.ErrNotFound)
}

var retailer = usecase.Actor{DisplayID: "USR0001", Role: entity.RoleRetailer}

func mustList(t *testing.T, uc *usecase.CustomerUseCase, owner string) []dto.CustomerResponse {
	t.Helper()
	list, err := uc.ListByOwner(context.Background(), owner)
	require.NoError(t, err)
	return list
}

func TestSettings_GetDefaultIsNotPersisted(t *testing.T) {
	store := memory.NewStore()
	uc := usecase.NewSettingsUseCase(store.Settings)

	out, err := uc.Get(context.Background(), "USR0001")
	require.NoError(t, err)
	assert.Equal(t, "light", out.Settings["theme"])
	assert.Equal(t, "en", out.Settings["language"])
	assert.Equal(t, true, out.Settings["notifications"])
	assert.Equal(t, "INR", out.Settings["currency"])
	assert.Equal(t, "USR0001", out.Settings["user_id"])
	assert.Equal(t, 0, store.Settings.Len())
}

func TestSettings_UpdateUpsertsAndMerges(t *testing.T) {
	store := memory.NewStore()
	uc := usecase.NewSettingsUseCase(store.Settings)
	ctx := context.Background()

	first, err := uc.Update(ctx, "USR0001", map[string]any{"theme": "dark", "user_id": "USR9999", "updatedAt": "x"})
	require.NoError(t, err)
	assert.Equal(t, "dark", first.Settings["theme"])
	assert.Equal(t, "INR", first.Settings["currency"], "la primera escritura guarda también los defaults")
	assert.Equal(t, "USR0001", first.Settings["user_id"])
	assert.Equal(t, 1, store.Settings.Len())

	second, err := uc.Update(ctx, "USR0001", map[string]any{"language": "hi-IN", "currency": "USD"})
	require.NoError(t, err)
	assert.Equal(t, "dark", second.Settings["theme"])
	assert.Equal(t, "hi-IN", second.Settings["language"])
	assert.Equal(t, "USD", second.Settings["currency"])

	got, err := uc.Get(ctx, "USR0001")
	require.NoError(t, err)
	assert.Equal(t, "USD", got.Settings["currency"])
	assert.Contains(t, got.Settings, "updatedAt")
}

func TestSettings_UpdateValidates(t *testing.T) {
	uc := usecase.NewSettingsUseCase(memory.NewStore().Settings)
	ctx := context.Background()

	for _, patch := range []map[string]any{
		{"currency": "RUPEES"},
		{"language": "not a tag!"},
		{"language": 7},
		{"notifications": "yes"},
	} {
		_, err := uc.Update(ctx, "USR0001", patch)
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "%v", patch)
	}
}

func TestProducts_CRUD(t *testing.T) {
	uc := usecase.NewProductUseCase(memory.NewStore().Products)
	ctx := context.Background()

	created, err := uc.Create(ctx, dto.CreateProductRequest{Name: "Soap", Price: decimal.RequireFromString("35.50"), Stock: 12})
	require.NoError(t, err)

	price := decimal.RequireFromString("30")
	updated, err := uc.Update(ctx, created.ID, dto.UpdateProductRequest{Price: &price})
	require.NoError(t, err)
	assert.True(t, updated.Price.Equal(price))
	assert.Equal(t, 12, updated.Stock)

	list, err := uc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	_, err = uc.Delete(ctx, created.ID)
	require.NoError(t, err)
	_, err = uc.GetByID(ctx, created.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, err = uc.Delete(ctx, created.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestProducts_Validation(t *testing.T) {
	uc := usecase.NewProductUseCase(memory.NewStore().Products)
	_, err := uc.Create(context.Background(), dto.CreateProductRequest{Name: " "})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = uc.Create(context.Background(), dto.CreateProductRequest{Name: "x", Stock: -1})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestUsers_UpdateDeleteList(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()
	users := usecase.NewUserUseCase(store.Users)

	_, err := users.Update(ctx, "USR0001", dto.UpdateUserRequest{}, retailer)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = users.Delete(ctx, "USR0001")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	list, err := users.List(ctx)
	require.NoError(t, err)
	assert.True(t, list.Success)
	assert.Equal(t, 0, list.Count)
	assert.NotNil(t, list.Users)
}

func TestUsers_RoleChangeRequiresAdmin(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()
	require.NoError(t, store.Users.Create(ctx, &entity.User{
		ID: "6f1c2a9e-3b8d-4d0e-9f55-1a2b3c4d5e6f", UserID: "USR0001", Email: "ana@shop.in",
		Role: entity.RoleRetailer, Audit: entity.Audit{Status: entity.StatusActive},
	}))
	users := usecase.NewUserUseCase(store.Users)
	admin := entity.RoleAdmin

	_, err := users.Update(ctx, "USR0001", dto.UpdateUserRequest{Role: &admin}, retailer)
	assert.ErrorIs(t, err, domain.ErrForbidden)
	got, _ := users.Get(ctx, "USR0001")
	assert.Equal(t, entity.RoleRetailer, got.Role)

	out, err := users.Update(ctx, "USR0001", dto.UpdateUserRequest{Role: &admin}, usecase.Actor{DisplayID: "USR0009", Role: entity.RoleAdmin})
	require.NoError(t, err)
	assert.Equal(t, int64(1), out.ModifiedCount)
	got, _ = users.Get(ctx, "USR0001")
	assert.Equal(t, entity.RoleAdmin, got.Role)
	assert.Equal(t, "USR0009", got.UpdatedBy)
}

func TestHealth_MemoryChecker(t *testing.T) {
	uc := usecase.NewHealthUseCase(memory.NewStore().Health)
	out, err := uc.Status(context.Background())
	require.NoError(t, err)
	assert.True(t, out.Connected)
	assert.Contains(t, out.Collections, "users")
}
