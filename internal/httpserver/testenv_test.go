package httpserver

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/Skotchmaster/inventory_service/internal/models"
	"github.com/Skotchmaster/inventory_service/internal/mykafka"
	"github.com/Skotchmaster/inventory_service/internal/repo"
	"github.com/Skotchmaster/inventory_service/internal/service"
)

type testEnv struct {
	T  *testing.T
	E  *echo.Echo
	P  *ProductHTTP
	O  *OrderHTTP
	DB *gorm.DB
}

func newTestEnv(t *testing.T) *testEnv {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect to in-memory db: %v", err)
	}

	if err := db.AutoMigrate(&models.Product{}, &models.Order{}, &models.OrderItem{}); err != nil {
		t.Fatalf("failed to migrate tables: %v", err)
	}

	gormRepo := &repo.GormRepo{DB: db}

	// zero-value producer: publishes fail and get logged, requests still succeed
	prod := &mykafka.Producer{}

	return &testEnv{
		T:  t,
		E:  echo.New(),
		DB: db,
		P: &ProductHTTP{
			Svc:      &service.ProductService{Repo: gormRepo},
			Producer: prod,
			Index:    "product",
		},
		O: &OrderHTTP{
			Svc:      &service.OrderService{Repo: gormRepo},
			Producer: prod,
		},
	}
}

func (env *testEnv) doJSONRequest(method, path string, body interface{}) (*httptest.ResponseRecorder, echo.Context) {
	var buf bytes.Buffer
	if body != nil {
		require.NoError(env.T, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

	rec := httptest.NewRecorder()
	c := env.E.NewContext(req, rec)
	return rec, c
}

func (env *testEnv) seedProduct(name string, amountLeft int) *models.Product {
	env.T.Helper()

	product := &models.Product{
		Name:        name,
		Description: "test_description",
		Price:       decimal.NewFromInt(10),
		AmountLeft:  amountLeft,
	}
	require.NoError(env.T, env.DB.Create(product).Error)
	return product
}

func requireHTTPError(t *testing.T, err error, code int) *echo.HTTPError {
	t.Helper()

	he, ok := err.(*echo.HTTPError)
	require.True(t, ok, "expected *echo.HTTPError, got %v", err)
	require.Equal(t, code, he.Code)
	return he
}
