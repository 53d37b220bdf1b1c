package admin

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"brandstack/models"
	"brandstack/services/catalog"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

// mockProductStore считает обновлённые строки по известным id, как это
// делает база: неизвестные id в счёт не попадают
type mockProductStore struct {
	knownIDs  map[uint]bool
	lastIDs   []uint
	lastState *bool
}

func newMockProductStore(ids ...uint) *mockProductStore {
	known := make(map[uint]bool, len(ids))
	for _, id := range ids {
		known[id] = true
	}
	return &mockProductStore{knownIDs: known}
}

func (m *mockProductStore) ListAll(opts catalog.ProductListOptions) ([]models.Product, int64, error) {
	return nil, 0, nil
}

func (m *mockProductStore) GetByID(id uint) (*models.Product, error) {
	return nil, models.ErrProductNotFound
}

func (m *mockProductStore) Create(product *models.Product, tagIDs []uint) error { return nil }

func (m *mockProductStore) Update(product *models.Product, tagIDs []uint) error { return nil }

func (m *mockProductStore) Delete(id uint) error { return models.ErrProductNotFound }

func (m *mockProductStore) SetPublicationState(ids []uint, published bool) (int64, error) {
	m.lastIDs = ids
	m.lastState = &published
	var count int64
	for _, id := range ids {
		if m.knownIDs[id] {
			count++
		}
	}
	return count, nil
}

func newPublicationRouter(store *mockProductStore) *gin.Engine {
	pc := NewProductAdminController(store, nil)
	r := gin.New()
	r.POST("/admin/products/publish", pc.Publish)
	r.POST("/admin/products/draft", pc.Draft)
	return r
}

func postBulk(r *gin.Engine, path string, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

type updatedResponse struct {
	Success bool `json:"success"`
	Result  struct {
		Updated int64 `json:"updated"`
	} `json:"result"`
}

// Счётчик отражает реально обновлённые строки: несуществующие id
// в него не входят
func TestBulkPublishCountsUpdatedRows(t *testing.T) {
	store := newMockProductStore(1, 2, 3)
	r := newPublicationRouter(store)

	w := postBulk(r, "/admin/products/publish", `{"ids": [1, 2, 999]}`)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp updatedResponse
	assert.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.True(t, resp.Success)
	assert.Equal(t, int64(2), resp.Result.Updated)
	assert.Equal(t, []uint{1, 2, 999}, store.lastIDs)
	assert.True(t, *store.lastState)
}

func TestBulkDraft(t *testing.T) {
	store := newMockProductStore(1, 2, 3)
	r := newPublicationRouter(store)

	w := postBulk(r, "/admin/products/draft", `{"ids": [3]}`)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp updatedResponse
	assert.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, int64(1), resp.Result.Updated)
	assert.False(t, *store.lastState)
}

func TestBulkPublishEmptyIDs(t *testing.T) {
	store := newMockProductStore(1, 2, 3)
	r := newPublicationRouter(store)

	w := postBulk(r, "/admin/products/publish", `{"ids": []}`)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp updatedResponse
	assert.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, int64(0), resp.Result.Updated)
}

func TestBulkPublishMissingIDs(t *testing.T) {
	store := newMockProductStore(1)
	r := newPublicationRouter(store)

	w := postBulk(r, "/admin/products/publish", `{}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func validRequest() ProductRequest {
	return ProductRequest{
		Name:        "Куртка The North Face",
		Slug:        "kurtka-tnf",
		Description: "Тёплая зимняя куртка с мембраной",
		Price:       decimal.NewFromInt(12500),
	}
}

func TestValidateProductRequest(t *testing.T) {
	req := validRequest()
	assert.Empty(t, validateProductRequest(&req))
}

func TestValidateProductRequestName(t *testing.T) {
	req := validRequest()
	req.Name = "Кур"
	assert.Contains(t, validateProductRequest(&req), "от 5 до 255")

	req.Name = strings.Repeat("а", 256)
	assert.Contains(t, validateProductRequest(&req), "от 5 до 255")

	req.Name = "Куртка <script>"
	assert.Contains(t, validateProductRequest(&req), "специальные символы")
}

func TestValidateProductRequestSlug(t *testing.T) {
	req := validRequest()
	req.Slug = "abc"
	assert.Contains(t, validateProductRequest(&req), "URL-адрес")
}

func TestValidateProductRequestDescription(t *testing.T) {
	req := validRequest()
	req.Description = "коротко"
	assert.Contains(t, validateProductRequest(&req), "Описание")

	req.Description = strings.Repeat("о", 501)
	assert.Contains(t, validateProductRequest(&req), "Описание")
}

func TestValidateProductRequestPrice(t *testing.T) {
	req := validRequest()
	req.Price = decimal.NewFromInt(-1)
	assert.Contains(t, validateProductRequest(&req), "не менее 0")

	req.Price = decimal.NewFromInt(10000001)
	assert.Contains(t, validateProductRequest(&req), "не более")

	// Граница включительно
	req.Price = decimal.NewFromInt(10000000)
	assert.Empty(t, validateProductRequest(&req))
	req.Price = decimal.Zero
	assert.Empty(t, validateProductRequest(&req))
}

func TestValidateTaxonomyRequest(t *testing.T) {
	req := taxonomyRequest{Name: "Женская одежда", Slug: "zhenskaya-odezhda"}
	assert.Empty(t, validateTaxonomyRequest(&req))

	req.Name = ""
	assert.NotEmpty(t, validateTaxonomyRequest(&req))

	req = taxonomyRequest{Name: strings.Repeat("а", 101), Slug: "ok-slug"}
	assert.NotEmpty(t, validateTaxonomyRequest(&req))
}

func TestValidateCollectionRequest(t *testing.T) {
	req := collectionRequest{Title: "The North Face", Slug: "tnf"}
	assert.Empty(t, validateCollectionRequest(&req))

	req.Title = strings.Repeat("а", 256)
	assert.NotEmpty(t, validateCollectionRequest(&req))
}
