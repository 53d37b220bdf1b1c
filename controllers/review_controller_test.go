package controllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"brandstack/models"
	"brandstack/services/catalog"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newReviewRouter(products *mockProductProvider, reviews *mockReviewProvider, userID uint) *gin.Engine {
	rc := NewReviewController(products, reviews)
	r := gin.New()
	r.POST("/catalog/products/:slug/reviews", authAs(userID), rc.Create)
	r.GET("/catalog/products/:slug/reviews", rc.List)
	return r
}

func postReview(r *gin.Engine, slug, text string, rating int) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	body, _ := json.Marshal(map[string]interface{}{"text": text, "rating": rating})
	req, _ := http.NewRequest("POST", "/catalog/products/"+slug+"/reviews", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestReviewCreate(t *testing.T) {
	products := &mockProductProvider{products: storefrontProducts()}
	reviews := newMockReviewProvider()
	r := newReviewRouter(products, reviews, 7)

	w := postReview(r, "kurtka-tnf", "Отличная куртка, тёплая и лёгкая", 5)

	assert.Equal(t, http.StatusCreated, w.Code)
	var resp struct {
		Success bool          `json:"success"`
		Result  models.Review `json:"result"`
	}
	assert.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.True(t, resp.Success)
	assert.Equal(t, uint(1), resp.Result.ProductID)
	assert.Equal(t, uint(7), resp.Result.UserID)
	assert.Equal(t, 5, resp.Result.Rating)
}

func TestReviewCreateRequiresAuth(t *testing.T) {
	products := &mockProductProvider{products: storefrontProducts()}
	r := newReviewRouter(products, newMockReviewProvider(), 0)

	w := postReview(r, "kurtka-tnf", "Отличная куртка, тёплая и лёгкая", 5)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestReviewCreateValidation(t *testing.T) {
	cases := []struct {
		name   string
		text   string
		rating int
		reason string
	}{
		{"короткий текст", "плохо", 2, models.ReasonTextTooShort},
		{"слишком длинный текст", strings.Repeat("о", 1001), 4, models.ReasonTextTooLong},
		{"оценка вне диапазона", "вполне нормальный отзыв", 9, models.ReasonInvalidRating},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			products := &mockProductProvider{products: storefrontProducts()}
			r := newReviewRouter(products, newMockReviewProvider(), 7)

			w := postReview(r, "kurtka-tnf", tc.text, tc.rating)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			var resp map[string]interface{}
			assert.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
			assert.Equal(t, tc.reason, resp["reason"])
		})
	}
}

// Второй отзыв той же пары (товар, пользователь) - конфликт,
// на другой товар - можно
func TestReviewCreateDuplicate(t *testing.T) {
	products := &mockProductProvider{products: storefrontProducts()}
	reviews := newMockReviewProvider()
	r := newReviewRouter(products, reviews, 7)

	w := postReview(r, "kurtka-tnf", "Отличная куртка, тёплая и лёгкая", 5)
	assert.Equal(t, http.StatusCreated, w.Code)

	w = postReview(r, "kurtka-tnf", "Передумал, куртка так себе на самом деле", 2)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "уже оставили отзыв")

	w = postReview(r, "futbolka-levis", "Футболка честная, размер совпал", 4)
	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestReviewCreateOnDraftProduct(t *testing.T) {
	products := &mockProductProvider{products: storefrontProducts()}
	r := newReviewRouter(products, newMockReviewProvider(), 7)

	w := postReview(r, "dzhinsy-draft", "Неплохие джинсы, но пока черновик", 4)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestReviewList(t *testing.T) {
	products := &mockProductProvider{products: storefrontProducts()}
	reviews := newMockReviewProvider()
	reviews.entries = []catalog.ReviewEntry{
		{ID: 2, Text: "Свежий отзыв про куртку", Rating: 4, Username: "masha", CreatedAt: "2026-02-01T10:00:00Z"},
		{ID: 1, Text: "Старый отзыв про куртку", Rating: 5, Username: "petya", CreatedAt: "2026-01-15T09:00:00Z"},
	}
	r := newReviewRouter(products, reviews, 0)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/catalog/products/kurtka-tnf/reviews", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Result []catalog.ReviewEntry `json:"result"`
	}
	assert.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Len(t, resp.Result, 2)
	assert.Equal(t, "masha", resp.Result[0].Username)
}
