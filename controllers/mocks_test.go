package controllers

import (
	"os"
	"testing"

	"brandstack/models"
	"brandstack/services/catalog"

	"github.com/gin-gonic/gin"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

// authAs подставляет user_id в контекст, как это делает JWT middleware
func authAs(userID uint) gin.HandlerFunc {
	return func(c *gin.Context) {
		if userID != 0 {
			c.Set("user_id", int(userID))
		}
		c.Next()
	}
}

// mockProductProvider отдаёт товары из памяти, видимость считает так же,
// как боевой сервис: наружу только опубликованные
type mockProductProvider struct {
	products []models.Product
	err      error
	lastSlug string
}

func (m *mockProductProvider) ListPublished(opts catalog.ProductListOptions) ([]models.Product, int64, error) {
	if m.err != nil {
		return nil, 0, m.err
	}
	var out []models.Product
	for _, p := range m.products {
		if p.IsPublished {
			out = append(out, p)
		}
	}
	total := int64(len(out))
	start := (opts.Page - 1) * opts.Limit
	if start >= len(out) {
		return []models.Product{}, total, nil
	}
	end := start + opts.Limit
	if end > len(out) {
		end = len(out)
	}
	return out[start:end], total, nil
}

func (m *mockProductProvider) GetPublishedBySlug(slug string) (*models.Product, error) {
	m.lastSlug = slug
	if m.err != nil {
		return nil, m.err
	}
	for i := range m.products {
		if m.products[i].Slug == slug && m.products[i].IsPublished {
			return &m.products[i], nil
		}
	}
	return nil, models.ErrProductNotFound
}

type mockTaxonomyProvider struct {
	categories []models.Category
	tags       []models.Tag
	err        error
}

func (m *mockTaxonomyProvider) Categories() ([]models.Category, error) {
	return m.categories, m.err
}

func (m *mockTaxonomyProvider) Tags() ([]models.Tag, error) {
	return m.tags, m.err
}

func (m *mockTaxonomyProvider) CategoryBySlug(slug string) (*models.Category, error) {
	for i := range m.categories {
		if m.categories[i].Slug == slug {
			return &m.categories[i], nil
		}
	}
	return nil, catalog.ErrTaxonomyNotFound
}

// mockReactionProvider хранит реакции в памяти и повторяет таблицу
// переходов боевого сервиса
type mockReactionProvider struct {
	state map[[2]uint]models.ReactionType
	err   error
}

func newMockReactionProvider() *mockReactionProvider {
	return &mockReactionProvider{state: make(map[[2]uint]models.ReactionType)}
}

func (m *mockReactionProvider) Toggle(productID, userID uint, desired models.ReactionType) (string, error) {
	if m.err != nil {
		return "", m.err
	}
	key := [2]uint{productID, userID}
	var current *models.ReactionType
	if v, ok := m.state[key]; ok {
		current = &v
	}
	switch models.NextReaction(current, desired) {
	case models.ReactionInsert, models.ReactionUpdate:
		m.state[key] = desired
		return desired.String(), nil
	default:
		delete(m.state, key)
		return "none", nil
	}
}

func (m *mockReactionProvider) Counts(productID uint) (models.ReactionCounts, error) {
	if m.err != nil {
		return models.ReactionCounts{}, m.err
	}
	var counts models.ReactionCounts
	for key, v := range m.state {
		if key[0] != productID {
			continue
		}
		if v == models.ReactionLike {
			counts.Likes++
		} else {
			counts.Dislikes++
		}
	}
	return counts, nil
}

// mockReviewProvider валидирует вход как боевой сервис и держит
// уникальность пары (товар, пользователь) в памяти
type mockReviewProvider struct {
	reviews map[[2]uint]*models.Review
	entries []catalog.ReviewEntry
	nextID  uint
	err     error
}

func newMockReviewProvider() *mockReviewProvider {
	return &mockReviewProvider{reviews: make(map[[2]uint]*models.Review), nextID: 1}
}

func (m *mockReviewProvider) Add(productID, userID uint, text string, rating int) (*models.Review, error) {
	if m.err != nil {
		return nil, m.err
	}
	trimmed, err := catalog.ValidateReviewInput(text, rating)
	if err != nil {
		return nil, err
	}
	key := [2]uint{productID, userID}
	if _, ok := m.reviews[key]; ok {
		return nil, models.ErrAlreadyReviewed
	}
	review := &models.Review{ProductID: productID, UserID: userID, Text: trimmed, Rating: rating}
	review.ID = m.nextID
	m.nextID++
	m.reviews[key] = review
	return review, nil
}

func (m *mockReviewProvider) ListForProduct(productID uint) ([]catalog.ReviewEntry, error) {
	return m.entries, m.err
}

type mockCollectionProvider struct {
	collections []models.Collection
	err         error
}

func (m *mockCollectionProvider) ListPublished(limit int) ([]models.Collection, error) {
	if m.err != nil {
		return nil, m.err
	}
	var out []models.Collection
	for _, col := range m.collections {
		if col.IsPublished {
			out = append(out, col)
		}
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

func (m *mockCollectionProvider) GetPublishedBySlug(slug string) (*models.Collection, error) {
	if m.err != nil {
		return nil, m.err
	}
	for i := range m.collections {
		if m.collections[i].Slug == slug && m.collections[i].IsPublished {
			return &m.collections[i], nil
		}
	}
	return nil, models.ErrCollectionNotFound
}
