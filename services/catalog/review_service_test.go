package catalog

import (
	"strings"
	"testing"

	"brandstack/models"

	"github.com/stretchr/testify/assert"
)

func TestValidateReviewInput(t *testing.T) {
	cases := []struct {
		name   string
		text   string
		rating int
		reason string
	}{
		{"пустой текст", "", 5, models.ReasonEmptyText},
		{"одни пробелы", "   \t\n  ", 5, models.ReasonEmptyText},
		{"короче 10 символов", "плохо", 1, models.ReasonTextTooShort},
		{"9 символов после обрезки", "  короткий  ", 3, models.ReasonTextTooShort},
		{"длиннее 1000 символов", strings.Repeat("ы", 1001), 4, models.ReasonTextTooLong},
		{"оценка 0", "вполне нормальный отзыв", 0, models.ReasonInvalidRating},
		{"оценка 6", "вполне нормальный отзыв", 6, models.ReasonInvalidRating},
		{"отрицательная оценка", "вполне нормальный отзыв", -1, models.ReasonInvalidRating},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ValidateReviewInput(tc.text, tc.rating)
			ve, ok := models.AsValidationError(err)
			assert.True(t, ok)
			assert.Equal(t, tc.reason, ve.Reason)
		})
	}
}

func TestValidateReviewInputTrimsText(t *testing.T) {
	trimmed, err := ValidateReviewInput("  отличный товар, рекомендую  ", 5)
	assert.NoError(t, err)
	assert.Equal(t, "отличный товар, рекомендую", trimmed)
}

func TestValidateReviewInputBoundaries(t *testing.T) {
	// Ровно 10 и ровно 1000 символов проходят, длина считается в рунах
	min := strings.Repeat("ж", models.ReviewTextMinLen)
	_, err := ValidateReviewInput(min, models.RatingMin)
	assert.NoError(t, err)

	max := strings.Repeat("ж", models.ReviewTextMaxLen)
	_, err = ValidateReviewInput(max, models.RatingMax)
	assert.NoError(t, err)
}
