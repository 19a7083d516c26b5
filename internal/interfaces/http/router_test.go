package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/udyog-sutra-api/internal/application/auth"
	"github.com/jhoicas/udyog-sutra-api/internal/application/idgen"
	"github.com/jhoicas/udyog-sutra-api/internal/application/usecase"
	"github.com/jhoicas/udyog-sutra-api/internal/infrastructure/memory"
	"github.com/jhoicas/udyog-sutra-api/internal/infrastructure/observability"
	apphttp "github.com/jhoicas/udyog-sutra-api/internal/interfaces/http"
	pkgjwt "github.com/jhoicas/udyog-sutra-api/pkg/jwt"
	"github.com/jhoicas/udyog-sutra-api/pkg/logger"
)

// RouterSuite levanta la API completa sobre el store en memoria.
type RouterSuite struct {
	suite.Suite
	app   *fiber.App
	store *memory.Store
}

func TestRouterSuite(t *testing.T) {
	suite.Run(t, new(RouterSuite))
}

func (s *RouterSuite) SetupTest() {
	log := logger.NewNop()
	s.store = memory.NewStore()
	ids := idgen.NewGenerator(s.store.Counters)
	tokens, err := pkgjwt.NewIssuer(testJWTSecret, testIssuer, 24*time.Hour)
	s.Require().NoError(err)

	authUC := auth.NewAuthUseCase(s.store.Users, ids, auth.NewBcryptHasher(bcrypt.MinCost), tokens, s.store.Revoked)
	s.app = fiber.New(fiber.Config{ErrorHandler: apphttp.ErrorHandler(log)})
	apphttp.Router(s.app, apphttp.RouterDeps{
		AuthUC:     authUC,
		UserUC:     usecase.NewUserUseCase(s.store.Users),
		CustomerUC: usecase.NewCustomerUseCase(s.store.Customers, ids),
		SupplierUC: usecase.NewSupplierUseCase(s.store.Suppliers, ids),
		SettingsUC: usecase.NewSettingsUseCase(s.store.Settings),
		ProductUC:  usecase.NewProductUseCase(s.store.Products),
		HealthUC:   usecase.NewHealthUseCase(s.store.Health),
		Metrics:    observability.NewMetrics(),
		Log:        log,
		Service:    "udyog-test",
	})
}

// do ejecuta la petición y decodifica el cuerpo JSON (objeto, array o string).
func (s *RouterSuite) do(method, path, token string, body any) (int, any) {
	var rd io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		s.Require().NoError(err)
		rd = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, rd)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := s.app.Test(req, -1)
	s.Require().NoError(err)
	raw, err := io.ReadAll(resp.Body)
	s.Require().NoError(err)
	var out any
	if len(raw) > 0 {
		_ = json.Unmarshal(raw, &out)
	}
	return resp.StatusCode, out
}

func obj(v any) map[string]any {
	m, _ := v.(map[string]any)
	return m
}

// register crea un usuario y devuelve su token y user_id.
func (s *RouterSuite) register(email, role string) (token, userID string) {
	status, body := s.do(http.MethodPost, "/api/auth/register", "", map[string]any{
		"email": email, "password": "secret123", "role": role,
	})
	s.Require().Equal(fiber.StatusCreated, status)
	return obj(body)["token"].(string), obj(body)["user_id"].(string)
}

func (s *RouterSuite) TestRegister_SequentialIDsAndDuplicate() {
	_, first := s.register("ana@shop.in", "")
	_, second := s.register("raj@shop.in", "")
	s.Equal("USR0001", first)
	s.Equal("USR0002", second)

	status, body := s.do(http.MethodPost, "/api/auth/register", "", map[string]any{
		"email": "ana@shop.in", "password": "otra",
	})
	s.Equal(fiber.StatusBadRequest, status)
	s.Equal("EMAIL_EXISTS", obj(body)["code"])
	s.Equal("User already exists", obj(body)["message"])
}

func (s *RouterSuite) TestRegister_InvalidBody() {
	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", bytes.NewBufferString("{no-json"))
	req.Header.Set("Content-Type", "application/json")
	resp, err := s.app.Test(req, -1)
	s.Require().NoError(err)
	s.Equal(fiber.StatusBadRequest, resp.StatusCode)
}

func (s *RouterSuite) TestLogin_PermissionsByRole() {
	s.register("boss@shop.in", "admin")
	s.register("shop@shop.in", "retailer")

	status, body := s.do(http.MethodPost, "/api/auth/login", "", map[string]any{"email": "boss@shop.in", "password": "secret123"})
	s.Require().Equal(fiber.StatusOK, status)
	s.Equal([]any{"read", "write", "delete"}, obj(body)["permissions"])
	s.Equal("Login successful", obj(body)["message"])
	s.NotEmpty(obj(body)["token"])

	status, body = s.do(http.MethodPost, "/api/auth/login", "", map[string]any{"email": "shop@shop.in", "password": "secret123"})
	s.Require().Equal(fiber.StatusOK, status)
	s.Equal([]any{"read", "write"}, obj(body)["permissions"])
}

func (s *RouterSuite) TestLogin_WrongPasswordAndUnknownEmailLookAlike() {
	s.register("ana@shop.in", "")

	st1, b1 := s.do(http.MethodPost, "/api/auth/login", "", map[string]any{"email": "ana@shop.in", "password": "mal"})
	st2, b2 := s.do(http.MethodPost, "/api/auth/login", "", map[string]any{"email": "nadie@shop.in", "password": "mal"})
	s.Equal(fiber.StatusUnauthorized, st1)
	s.Equal(st1, st2)
	s.Equal(b1, b2)
}

func (s *RouterSuite) TestLogin_InactiveAccount() {
	token, userID := s.register("ana@shop.in", "")
	status, _ := s.do(http.MethodPut, "/api/users/"+userID, token, map[string]any{"status": "inactive"})
	s.Require().Equal(fiber.StatusOK, status)

	status, body := s.do(http.MethodPost, "/api/auth/login", "", map[string]any{"email": "ana@shop.in", "password": "secret123"})
	s.Equal(fiber.StatusUnauthorized, status)
	s.Equal("INACTIVE_ACCOUNT", obj(body)["code"])
}

func (s *RouterSuite) TestLogout_RevokesToken() {
	token, userID := s.register("ana@shop.in", "")

	status, _ := s.do(http.MethodGet, "/api/settings/"+userID, token, nil)
	s.Require().Equal(fiber.StatusOK, status)

	status, body := s.do(http.MethodPost, "/api/auth/logout", token, nil)
	s.Require().Equal(fiber.StatusOK, status)
	s.Equal("Logout successful", obj(body)["message"])

	status, body = s.do(http.MethodGet, "/api/settings/"+userID, token, nil)
	s.Equal(fiber.StatusUnauthorized, status)
	s.Equal("INVALID_TOKEN", obj(body)["code"])
}

func (s *RouterSuite) TestLogout_WithoutTokenStillSucceeds() {
	status, body := s.do(http.MethodPost, "/api/auth/logout", "", nil)
	s.Equal(fiber.StatusOK, status)
	s.Equal(true, obj(body)["success"])
}

func (s *RouterSuite) TestProtectedRoutes_RequireToken() {
	for _, path := range []string{"/api/customers/CUST0001", "/api/suppliers/user/USR0001", "/api/settings/USR0001", "/api/products", "/api/users/USR0001"} {
		status, body := s.do(http.MethodGet, path, "", nil)
		s.Equal(fiber.StatusUnauthorized, status, path)
		s.Equal("MISSING_TOKEN", obj(body)["code"], path)
	}
}

func (s *RouterSuite) TestUsers_CreateListAndAdminOnly() {
	adminTok, adminID := s.register("boss@shop.in", "admin")
	retailTok, _ := s.register("shop@shop.in", "")

	status, body := s.do(http.MethodPost, "/api/users", adminTok, map[string]any{"email": "staff@shop.in", "password": "x1"})
	s.Require().Equal(fiber.StatusCreated, status)
	s.Equal("User created successfully", obj(body)["message"])
	created := obj(obj(body)["user"])
	s.Equal("USR0003", created["user_id"])
	s.Nil(created["token"], "el alta por admin no emite token")

	status, body = s.do(http.MethodGet, "/api/users", retailTok, nil)
	s.Equal(fiber.StatusForbidden, status)
	s.Equal("FORBIDDEN", obj(body)["code"])

	status, body = s.do(http.MethodGet, "/api/users", adminTok, nil)
	s.Require().Equal(fiber.StatusOK, status)
	s.EqualValues(3, obj(body)["count"])

	status, body = s.do(http.MethodGet, "/api/users/user/"+adminID, adminTok, nil)
	s.Require().Equal(fiber.StatusOK, status)
	s.Len(body, 1)
}

func (s *RouterSuite) TestUsers_GetUpdateDelete() {
	token, userID := s.register("ana@shop.in", "")

	status, body := s.do(http.MethodGet, "/api/users/"+userID, token, nil)
	s.Require().Equal(fiber.StatusOK, status)
	s.Nil(obj(body)["passwordHash"])
	nativeID := obj(body)["id"].(string)

	status, _ = s.do(http.MethodGet, "/api/users/"+nativeID, token, nil)
	s.Equal(fiber.StatusOK, status, "la clave nativa también resuelve")

	status, body = s.do(http.MethodPut, "/api/users/USR9999", token, map[string]any{"fullName": "X"})
	s.Equal(fiber.StatusNotFound, status)
	s.Equal("User not found", obj(body)["message"])

	status, body = s.do(http.MethodDelete, "/api/users/"+userID, token, nil)
	s.Require().Equal(fiber.StatusOK, status)
	s.Equal(userID, obj(obj(body)["deletedUser"])["user_id"])
}

func (s *RouterSuite) TestCustomers_Lifecycle() {
	token, userID := s.register("ana@shop.in", "")

	status, body := s.do(http.MethodPost, "/api/customers", token, map[string]any{"name": "Acme Traders"})
	s.Require().Equal(fiber.StatusCreated, status)
	s.Equal("CUST0001", obj(obj(body)["customer"])["customerId"])

	status, body = s.do(http.MethodPost, "/api/customers/createNewCustomer", token, map[string]any{"name": "Beta Mart", "creditLimit": 5000})
	s.Require().Equal(fiber.StatusCreated, status)
	s.Equal("CUST0002", obj(obj(body)["customer"])["customerId"])

	status, body = s.do(http.MethodGet, "/api/customers/user/"+userID, token, nil)
	s.Require().Equal(fiber.StatusOK, status)
	list := body.([]any)
	s.Require().Len(list, 2)
	s.Equal("Beta Mart", obj(list[0])["name"], "más recientes primero")

	status, body = s.do(http.MethodGet, "/api/customers/CUST0001", token, nil)
	s.Require().Equal(fiber.StatusOK, status)
	s.Equal(userID, obj(body)["user_id"])
	s.Equal("active", obj(body)["status"])

	status, body = s.do(http.MethodPut, "/api/customers/CUST0001", token, map[string]any{"notes": "vip"})
	s.Require().Equal(fiber.StatusOK, status)
	s.EqualValues(1, obj(body)["modifiedCount"])

	status, body = s.do(http.MethodPut, "/api/customers/CUST0404", token, map[string]any{"notes": "x"})
	s.Equal(fiber.StatusNotFound, status)
	s.Equal("Customer not found", obj(body)["message"])

	status, body = s.do(http.MethodDelete, "/api/customers/CUST0001", token, nil)
	s.Require().Equal(fiber.StatusOK, status)
	s.Equal("CUST0001", obj(obj(body)["deletedCustomer"])["customerId"])

	status, _ = s.do(http.MethodDelete, "/api/customers/CUST0001", token, nil)
	s.Equal(fiber.StatusNotFound, status)
}

func (s *RouterSuite) TestCustomers_NameRequired() {
	token, _ := s.register("ana@shop.in", "")
	status, body := s.do(http.MethodPost, "/api/customers", token, map[string]any{"email": "x@y.z"})
	s.Equal(fiber.StatusBadRequest, status)
	s.Equal("VALIDATION", obj(body)["code"])
}

func (s *RouterSuite) TestSuppliers_ListAllIsAdminOnly() {
	adminTok, _ := s.register("boss@shop.in", "admin")
	retailTok, retailID := s.register("shop@shop.in", "")

	status, body := s.do(http.MethodPost, "/api/suppliers/createNewSupplier", retailTok, map[string]any{"name": "Kiran Mills", "rating": 4.5})
	s.Require().Equal(fiber.StatusCreated, status)
	s.Equal("SUPP0001", obj(obj(body)["supplier"])["supplierId"])

	status, _ = s.do(http.MethodGet, "/api/suppliers", retailTok, nil)
	s.Equal(fiber.StatusForbidden, status)

	status, body = s.do(http.MethodGet, "/api/suppliers", adminTok, nil)
	s.Require().Equal(fiber.StatusOK, status)
	s.Len(body, 1)

	status, body = s.do(http.MethodGet, "/api/suppliers/user/"+retailID, retailTok, nil)
	s.Require().Equal(fiber.StatusOK, status)
	s.Len(body, 1)

	status, _ = s.do(http.MethodDelete, "/api/suppliers/SUPP0001", retailTok, nil)
	s.Equal(fiber.StatusOK, status)
	status, _ = s.do(http.MethodGet, "/api/suppliers/SUPP0001", retailTok, nil)
	s.Equal(fiber.StatusNotFound, status)
}

func (s *RouterSuite) TestSettings_DefaultThenUpdate() {
	token, userID := s.register("ana@shop.in", "")

	status, body := s.do(http.MethodGet, "/api/settings/"+userID, token, nil)
	s.Require().Equal(fiber.StatusOK, status)
	settings := obj(obj(body)["settings"])
	s.Equal("light", settings["theme"])
	s.Equal("INR", settings["currency"])
	s.Equal(userID, settings["user_id"])
	s.Zero(s.store.Settings.Len(), "GET no persiste los defaults")

	status, body = s.do(http.MethodPut, "/api/settings/"+userID, token, map[string]any{"theme": "dark"})
	s.Require().Equal(fiber.StatusOK, status)
	s.Equal("Settings updated successfully", obj(body)["message"])
	settings = obj(obj(body)["settings"])
	s.Equal("dark", settings["theme"])
	s.Equal("en", settings["language"])
	s.Equal(1, s.store.Settings.Len())

	status, body = s.do(http.MethodPut, "/api/settings/"+userID, token, map[string]any{"currency": "XXXX"})
	s.Equal(fiber.StatusBadRequest, status)
	s.Equal("VALIDATION", obj(body)["code"])
}

func (s *RouterSuite) TestSettings_StoredRowSurvivesOtherRequests() {
	token, userID := s.register("ana@shop.in", "")

	status, _ := s.do(http.MethodPut, "/api/settings/"+userID, token, map[string]any{"theme": "dark"})
	s.Require().Equal(fiber.StatusOK, status)

	for i := 0; i < 20; i++ {
		s.do(http.MethodGet, "/api/customers/XXXXXXXX", token, nil)
		s.do(http.MethodGet, "/api/settings/ZZZZ9999", token, nil)
	}

	stored, err := s.store.Settings.Get(context.Background(), userID)
	s.Require().NoError(err)
	s.Require().NotNil(stored, "la fila guardada sigue accesible por su user_id")
	s.Equal(userID, stored.UserID)
	s.Equal("dark", stored.Preferences["theme"])

	status, body := s.do(http.MethodGet, "/api/settings/"+userID, token, nil)
	s.Require().Equal(fiber.StatusOK, status)
	s.Equal("dark", obj(obj(body)["settings"])["theme"])
}

func (s *RouterSuite) TestUsers_RoleChangeIsAdminOnly() {
	retailTok, retailID := s.register("shop@shop.in", "")
	adminTok, _ := s.register("boss@shop.in", "admin")

	status, body := s.do(http.MethodPut, "/api/users/"+retailID, retailTok, map[string]any{"role": "admin"})
	s.Equal(fiber.StatusForbidden, status)
	s.Equal("FORBIDDEN", obj(body)["code"])

	status, _ = s.do(http.MethodGet, "/api/users", retailTok, nil)
	s.Equal(fiber.StatusForbidden, status)

	status, _ = s.do(http.MethodPut, "/api/users/"+retailID, adminTok, map[string]any{"role": "admin"})
	s.Require().Equal(fiber.StatusOK, status)

	// El rol se lee del registro: el mismo token ya pasa el control de admin.
	status, _ = s.do(http.MethodGet, "/api/users", retailTok, nil)
	s.Equal(fiber.StatusOK, status)
}

func (s *RouterSuite) TestUsers_DeactivatedUserTokenStopsWorking() {
	token, userID := s.register("ana@shop.in", "")
	adminTok, _ := s.register("boss@shop.in", "admin")

	status, _ := s.do(http.MethodPut, "/api/users/"+userID, adminTok, map[string]any{"status": "inactive"})
	s.Require().Equal(fiber.StatusOK, status)

	status, body := s.do(http.MethodGet, "/api/settings/"+userID, token, nil)
	s.Equal(fiber.StatusUnauthorized, status)
	s.Equal("INVALID_TOKEN", obj(body)["code"])
}

func (s *RouterSuite) TestCustomers_EmptyUpdateWritesNothing() {
	token, _ := s.register("ana@shop.in", "")
	status, _ := s.do(http.MethodPost, "/api/customers", token, map[string]any{"name": "Acme"})
	s.Require().Equal(fiber.StatusCreated, status)

	status, body := s.do(http.MethodPut, "/api/customers/CUST0001", token, map[string]any{})
	s.Require().Equal(fiber.StatusOK, status)
	s.EqualValues(0, obj(body)["modifiedCount"])

	_, body = s.do(http.MethodGet, "/api/customers/CUST0001", token, nil)
	s.Nil(obj(body)["updatedAt"])

	status, _ = s.do(http.MethodPut, "/api/customers/CUST0404", token, map[string]any{})
	s.Equal(fiber.StatusNotFound, status)
}

func (s *RouterSuite) TestProducts_CRUD() {
	token, _ := s.register("ana@shop.in", "")

	status, body := s.do(http.MethodPost, "/api/products", token, map[string]any{"name": "Chai", "price": 120.5, "stock": 10})
	s.Require().Equal(fiber.StatusCreated, status)
	id := obj(body)["id"].(string)

	status, body = s.do(http.MethodGet, "/api/products", token, nil)
	s.Require().Equal(fiber.StatusOK, status)
	s.Len(body, 1)

	status, body = s.do(http.MethodPut, "/api/products/"+id, token, map[string]any{"stock": 7})
	s.Require().Equal(fiber.StatusOK, status)
	s.EqualValues(7, obj(body)["stock"])

	status, _ = s.do(http.MethodGet, "/api/products/no-es-uuid", token, nil)
	s.Equal(fiber.StatusNotFound, status)

	status, _ = s.do(http.MethodDelete, "/api/products/"+id, token, nil)
	s.Equal(fiber.StatusOK, status)
	status, _ = s.do(http.MethodGet, "/api/products/"+id, token, nil)
	s.Equal(fiber.StatusNotFound, status)
}

func (s *RouterSuite) TestHealthAndMetrics() {
	status, body := s.do(http.MethodGet, "/", "", nil)
	s.Equal(fiber.StatusOK, status)
	s.Equal(apphttp.Banner, body)

	status, body = s.do(http.MethodGet, "/health", "", nil)
	s.Equal(fiber.StatusOK, status)
	s.Equal("ok", obj(body)["status"])

	status, body = s.do(http.MethodGet, "/api/db-test", "", nil)
	s.Require().Equal(fiber.StatusOK, status)
	s.Equal(true, obj(body)["connected"])
	s.Equal("Connected", obj(body)["status"])

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	resp, err := s.app.Test(req, -1)
	s.Require().NoError(err)
	raw, _ := io.ReadAll(resp.Body)
	s.Equal(fiber.StatusOK, resp.StatusCode)
	s.Contains(string(raw), "udyog_http_requests_total")
}

func TestRouter_UnknownRouteIs404(t *testing.T) {
	app := fiber.New(fiber.Config{ErrorHandler: apphttp.ErrorHandler(logger.NewNop())})
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/nada", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}
