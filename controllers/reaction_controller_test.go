package controllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"brandstack/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newReactionRouter(products *mockProductProvider, reactions *mockReactionProvider, userID uint) *gin.Engine {
	rc := NewReactionController(products, reactions)
	r := gin.New()
	r.POST("/catalog/products/:slug/reactions", authAs(userID), rc.Toggle)
	r.GET("/catalog/products/:slug/reactions", rc.Counts)
	return r
}

type reactionResponse struct {
	State    string `json:"state"`
	Likes    int64  `json:"likes"`
	Dislikes int64  `json:"dislikes"`
}

func postReaction(t *testing.T, r *gin.Engine, slug, reactionType string) (int, reactionResponse) {
	t.Helper()
	w := httptest.NewRecorder()
	body, _ := json.Marshal(map[string]string{"type": reactionType})
	req, _ := http.NewRequest("POST", "/catalog/products/"+slug+"/reactions", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	var resp struct {
		Result reactionResponse `json:"result"`
	}
	if w.Code == http.StatusOK {
		assert.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	}
	return w.Code, resp.Result
}

// Полный цикл: like -> dislike -> dislike снимает реакцию
func TestReactionToggleCycle(t *testing.T) {
	products := &mockProductProvider{products: storefrontProducts()}
	r := newReactionRouter(products, newMockReactionProvider(), 7)

	code, res := postReaction(t, r, "kurtka-tnf", "like")
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "like", res.State)
	assert.Equal(t, int64(1), res.Likes)
	assert.Equal(t, int64(0), res.Dislikes)

	code, res = postReaction(t, r, "kurtka-tnf", "dislike")
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "dislike", res.State)
	assert.Equal(t, int64(0), res.Likes)
	assert.Equal(t, int64(1), res.Dislikes)

	code, res = postReaction(t, r, "kurtka-tnf", "dislike")
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "none", res.State)
	assert.Equal(t, int64(0), res.Likes)
	assert.Equal(t, int64(0), res.Dislikes)
}

// Повторный like после снятия ставит реакцию заново
func TestReactionToggleRepeatCancelsAndRestores(t *testing.T) {
	products := &mockProductProvider{products: storefrontProducts()}
	r := newReactionRouter(products, newMockReactionProvider(), 7)

	_, res := postReaction(t, r, "kurtka-tnf", "like")
	assert.Equal(t, "like", res.State)

	_, res = postReaction(t, r, "kurtka-tnf", "like")
	assert.Equal(t, "none", res.State)

	_, res = postReaction(t, r, "kurtka-tnf", "like")
	assert.Equal(t, "like", res.State)
	assert.Equal(t, int64(1), res.Likes)
}

func TestReactionToggleRejectsUnknownType(t *testing.T) {
	products := &mockProductProvider{products: storefrontProducts()}
	r := newReactionRouter(products, newMockReactionProvider(), 7)

	w := httptest.NewRecorder()
	body, _ := json.Marshal(map[string]string{"type": "superlike"})
	req, _ := http.NewRequest("POST", "/catalog/products/kurtka-tnf/reactions", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	var resp map[string]interface{}
	assert.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, models.ReasonInvalidReactionType, resp["reason"])
}

func TestReactionToggleRequiresAuth(t *testing.T) {
	products := &mockProductProvider{products: storefrontProducts()}
	r := newReactionRouter(products, newMockReactionProvider(), 0)

	code, _ := postReaction(t, r, "kurtka-tnf", "like")
	assert.Equal(t, http.StatusUnauthorized, code)
}

// Счётчики суммируются по пользователям, реакции разных людей независимы
func TestReactionCountsPerUser(t *testing.T) {
	products := &mockProductProvider{products: storefrontProducts()}
	reactions := newMockReactionProvider()

	for _, userID := range []uint{7, 8, 9} {
		r := newReactionRouter(products, reactions, userID)
		reaction := "like"
		if userID == 9 {
			reaction = "dislike"
		}
		code, _ := postReaction(t, r, "kurtka-tnf", reaction)
		assert.Equal(t, http.StatusOK, code)
	}

	r := newReactionRouter(products, reactions, 0)
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/catalog/products/kurtka-tnf/reactions", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Result models.ReactionCounts `json:"result"`
	}
	assert.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, int64(2), resp.Result.Likes)
	assert.Equal(t, int64(1), resp.Result.Dislikes)
}

func TestReactionOnDraftProduct(t *testing.T) {
	products := &mockProductProvider{products: storefrontProducts()}
	r := newReactionRouter(products, newMockReactionProvider(), 7)

	code, _ := postReaction(t, r, "dzhinsy-draft", "like")
	assert.Equal(t, http.StatusNotFound, code)
}
