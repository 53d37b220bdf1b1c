package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"brandstack/config"
	"brandstack/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func testSite() *config.Site {
	return &config.Site{
		Name: "BrandStack",
		Menu: []config.MenuEntry{{Title: "Каталог", URL: "/catalog"}},
		TopCategories: []config.TopCategory{
			{Label: "Женская одежда", Slug: "zhenskaya-odezhda"},
			{Label: "Несуществующая", Slug: "net-takoy"},
		},
	}
}

func newHomeRouter(collections *mockCollectionProvider, taxonomy *mockTaxonomyProvider) *gin.Engine {
	hc := NewHomeController(testSite(), collections, taxonomy)
	r := gin.New()
	r.GET("/", hc.Index)
	r.GET("/collections", hc.Collections)
	r.GET("/collections/:slug", hc.Collection)
	return r
}

func TestHomeIndex(t *testing.T) {
	published := models.Collection{Title: "The North Face", Slug: "tnf", IsPublished: true}
	draft := models.Collection{Title: "Черновик", Slug: "chernovik", IsPublished: false}
	collections := &mockCollectionProvider{collections: []models.Collection{published, draft}}
	taxonomy := &mockTaxonomyProvider{categories: []models.Category{
		{Name: "Женская одежда", Slug: "zhenskaya-odezhda"},
	}}
	r := newHomeRouter(collections, taxonomy)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Result struct {
			SiteName       string              `json:"site_name"`
			TopCategories  []map[string]string `json:"top_categories"`
			NewCollections []models.Collection `json:"new_collections"`
		} `json:"result"`
	}
	assert.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, "BrandStack", resp.Result.SiteName)

	// Неизвестный slug из конфигурации молча пропускается
	assert.Len(t, resp.Result.TopCategories, 1)
	assert.Equal(t, "/catalog?category=zhenskaya-odezhda", resp.Result.TopCategories[0]["url"])

	assert.Len(t, resp.Result.NewCollections, 1)
	assert.Equal(t, "tnf", resp.Result.NewCollections[0].Slug)
}

func TestCollectionDetailHidesDrafts(t *testing.T) {
	collections := &mockCollectionProvider{collections: []models.Collection{
		{Title: "Черновик", Slug: "chernovik", IsPublished: false},
	}}
	r := newHomeRouter(collections, &mockTaxonomyProvider{})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/collections/chernovik", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
