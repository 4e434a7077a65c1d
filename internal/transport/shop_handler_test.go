package transport

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"shopkeeper/internal/domain"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

func TestGetShopDetails_NotFound(t *testing.T) {
	app := newTestApp(t)

	w := httptest.NewRecorder()
	app.router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/shops/details/999", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "shop not found", gjson.Get(w.Body.String(), "error").String())
}

func TestGetShopDetails_InvalidID(t *testing.T) {
	app := newTestApp(t)

	w := httptest.NewRecorder()
	app.router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/shops/details/abc", nil))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.True(t, gjson.Get(w.Body.String(), "error").Exists())
}

func TestGetShopDetails_Stats(t *testing.T) {
	app := newTestApp(t)
	ctx := context.Background()

	shop := app.seedShop(t)
	for i := 0; i < 3; i++ {
		app.seedProduct(t, shop.ID, "5")
	}
	for _, amount := range []int64{50, 70} {
		require.NoError(t, (saleRepo{app.store}).Create(ctx, &domain.Sale{
			ShopID:      shop.ID,
			CustomerID:  1,
			TotalAmount: decimal.NewFromInt(amount),
		}))
	}

	w := httptest.NewRecorder()
	app.router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/shops/details/1", nil))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	body := w.Body.String()
	assert.Equal(t, "Corner Store", gjson.Get(body, "shopName").String())
	assert.Equal(t, int64(3), gjson.Get(body, "stats.productCount").Int())
	assert.Equal(t, int64(2), gjson.Get(body, "stats.saleCount").Int())
	assert.Equal(t, "120", gjson.Get(body, "stats.totalRevenue").String())
	assert.Len(t, gjson.Get(body, "products").Array(), 3)
}

func TestGetShopByOwner(t *testing.T) {
	app := newTestApp(t)
	app.seedShop(t)

	w := httptest.NewRecorder()
	app.router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/shops/owner-1", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, int64(1), gjson.Get(w.Body.String(), "shopId").Int())

	w = httptest.NewRecorder()
	app.router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/shops/stranger", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreateShop_JSON(t *testing.T) {
	app := newTestApp(t)

	body := `{"shopName": "Bakery", "location": "Sylhet", "ownerId": "owner-9"}`
	req := httptest.NewRequest(http.MethodPost, "/api/shops", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	app.router.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	resp := w.Body.String()
	assert.Equal(t, "Bakery", gjson.Get(resp, "shop.shopName").String())
	assert.Equal(t, "active", gjson.Get(resp, "shop.status").String())
	assert.Equal(t, "owner-9", gjson.Get(resp, "owner.userId").String())
}

func TestCreateShop_MissingName(t *testing.T) {
	app := newTestApp(t)

	req := httptest.NewRequest(http.MethodPost, "/api/shops", strings.NewReader(`{"ownerId": "o"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	app.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "shopName", gjson.Get(w.Body.String(), "details.0.field").String())
}

func TestCreateShop_MultipartWithImage(t *testing.T) {
	app := newTestApp(t)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	require.NoError(t, mw.WriteField("shopName", "Florist"))
	require.NoError(t, mw.WriteField("ownerId", "owner-3"))
	part, err := mw.CreateFormFile("image", "front.png")
	require.NoError(t, err)
	_, err = part.Write(pngBytes(1024))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/shops", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	app.router.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	imageURL := gjson.Get(w.Body.String(), "shop.shopImage").String()
	assert.True(t, strings.HasPrefix(imageURL, "/uploads/"), imageURL)
	assert.True(t, strings.HasSuffix(imageURL, ".png"), imageURL)
}
