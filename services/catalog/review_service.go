package catalog

import (
	"strings"
	"unicode/utf8"

	"brandstack/models"

	"gorm.io/gorm"
)

type ReviewService struct {
	db *gorm.DB
}

func NewReviewService(db *gorm.DB) *ReviewService {
	return &ReviewService{db: db}
}

// ValidateReviewInput проверяет текст и оценку отзыва. Текст приводится
// к обрезанному виду, длина считается в рунах.
func ValidateReviewInput(text string, rating int) (string, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return "", models.NewValidationError(models.ReasonEmptyText, "Отзыв не может быть пустым")
	}
	n := utf8.RuneCountInString(trimmed)
	if n < models.ReviewTextMinLen {
		return "", models.NewValidationError(models.ReasonTextTooShort, "Отзыв должен содержать не менее 10 символов")
	}
	if n > models.ReviewTextMaxLen {
		return "", models.NewValidationError(models.ReasonTextTooLong, "Отзыв должен содержать не более 1000 символов")
	}
	if rating < models.RatingMin || rating > models.RatingMax {
		return "", models.NewValidationError(models.ReasonInvalidRating, "Оценка должна быть от 1 до 5")
	}
	return trimmed, nil
}

// Add создаёт отзыв. Повторный отзыв той же пары (товар, пользователь)
// отклоняется; уникальный индекс страхует от гонки двух одновременных
// создании - апсерта нет, второй запрос просто получает конфликт.
func (s *ReviewService) Add(productID, userID uint, text string, rating int) (*models.Review, error) {
	trimmed, err := ValidateReviewInput(text, rating)
	if err != nil {
		return nil, err
	}

	var existing int64
	if err := s.db.Model(&models.Review{}).
		Where("product_id = ? AND user_id = ?", productID, userID).
		Count(&existing).Error; err != nil {
		return nil, err
	}
	if existing > 0 {
		return nil, models.ErrAlreadyReviewed
	}

	review := models.Review{
		ProductID: productID,
		UserID:    userID,
		Text:      trimmed,
		Rating:    rating,
	}
	if err := s.db.Create(&review).Error; err != nil {
		if isUniqueViolation(err) {
			return nil, models.ErrAlreadyReviewed
		}
		return nil, err
	}
	return &review, nil
}

// ReviewEntry - отзыв вместе с именем автора для выдачи
type ReviewEntry struct {
	ID        uint   `json:"id"`
	Text      string `json:"text"`
	Rating    int    `json:"rating"`
	Username  string `json:"username"`
	CreatedAt string `json:"created_at"`
}

// ListForProduct возвращает отзывы товара, свежие первыми
func (s *ReviewService) ListForProduct(productID uint) ([]ReviewEntry, error) {
	var entries []ReviewEntry
	err := s.db.Model(&models.Review{}).
		Select("reviews.id, reviews.text, reviews.rating, users.username, to_char(reviews.created_at AT TIME ZONE 'UTC', 'YYYY-MM-DD\"T\"HH24:MI:SS\"Z\"') AS created_at").
		Joins("JOIN users ON users.id = reviews.user_id").
		Where("reviews.product_id = ?", productID).
		Order("reviews.created_at DESC").
		Scan(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}
