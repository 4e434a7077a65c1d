package transport

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"shopkeeper/internal/repository"
	"shopkeeper/internal/service"
	"shopkeeper/internal/storage"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
	"go.uber.org/zap"
)

func TestCreateProduct_BothRoutes(t *testing.T) {
	app := newTestApp(t)
	shop := app.seedShop(t)

	w := postJSON(app, fmt.Sprintf("/api/products/shopId/%d", shop.ID), `{"name": "Jam", "price": "4.75", "quantity": 3}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Equal(t, "4.75", gjson.Get(w.Body.String(), "price").String())
	assert.Equal(t, shop.ID, gjson.Get(w.Body.String(), "shopId").Int())

	w = postJSON(app, "/api/products", fmt.Sprintf(`{"shopId": %d, "name": "Honey", "price": 9, "quantity": 1}`, shop.ID))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = httptest.NewRecorder()
	app.router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, fmt.Sprintf("/api/shops/%d/products", shop.ID), nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, gjson.Parse(w.Body.String()).Array(), 2)
}

func TestCreateProduct_Validation(t *testing.T) {
	app := newTestApp(t)
	shop := app.seedShop(t)
	path := fmt.Sprintf("/api/products/shopId/%d", shop.ID)

	w := postJSON(app, path, `{"name": "NoPrice"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "price", gjson.Get(w.Body.String(), "details.0.field").String())

	w = postJSON(app, path, `{"name": "Cheap", "price": "-1"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "price must not be negative", gjson.Get(w.Body.String(), "error").String())

	w = postJSON(app, "/api/products/shopId/99", `{"name": "Lost", "price": "1"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetProduct(t *testing.T) {
	app := newTestApp(t)
	shop := app.seedShop(t)
	product := app.seedProduct(t, shop.ID, "2")

	w := httptest.NewRecorder()
	app.router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, fmt.Sprintf("/api/products/%d", product.ID), nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Tea", gjson.Get(w.Body.String(), "name").String())

	w = httptest.NewRecorder()
	app.router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/products/77", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

var statusCases = []struct {
	err    error
	status int
}{
	{service.ErrMissingShopID, http.StatusBadRequest},
	{fmt.Errorf("failed to find shop: %w", repository.ErrShopNotFound), http.StatusNotFound},
	{fmt.Errorf("failed to get product: %w", repository.ErrProductNotFound), http.StatusNotFound},
	{repository.ErrCustomerNotFound, http.StatusNotFound},
	{repository.ErrInvalidReference, http.StatusBadRequest},
	{repository.ErrConstraintViolation, http.StatusBadRequest},
	{storage.ErrUnsupportedType, http.StatusBadRequest},
	{fmt.Errorf("failed to create user: %w", repository.ErrUserAlreadyExists), http.StatusConflict},
	{errors.New("connection refused"), http.StatusInternalServerError},
}

// Property: every service error maps to one status and a JSON error body
func TestProperty_ServiceErrorsMapToStatus(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("errors map to their status", prop.ForAll(
		func(i int) bool {
			tc := statusCases[i%len(statusCases)]

			w := httptest.NewRecorder()
			respondServiceError(w, zap.NewNop(), tc.err, "do things")

			message := gjson.Get(w.Body.String(), "error").String()
			if tc.status == http.StatusInternalServerError && message != "failed to do things" {
				return false
			}
			return w.Code == tc.status && message != ""
		},
		gen.IntRange(0, 100),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}
