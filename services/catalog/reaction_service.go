package catalog

import (
	"errors"

	"brandstack/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ReactionService struct {
	db *gorm.DB
}

func NewReactionService(db *gorm.DB) *ReactionService {
	return &ReactionService{db: db}
}

// Toggle выполняет один атомарный переход реакции пары (товар,
// пользователь): отсутствие -> вставка, повтор -> удаление,
// противоположное действие -> смена знака. Возвращает итоговое
// состояние: "like", "dislike" или "none".
//
// Гонка двух одновременных вставок решается уникальным индексом:
// проигравшая вставка ловит 23505 и один раз повторяется как update.
func (s *ReactionService) Toggle(productID, userID uint, desired models.ReactionType) (string, error) {
	state := "none"
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var existing models.Reaction
		var current *models.ReactionType
		// Блокируем строку на время перехода, чтобы параллельный запрос
		// той же пары дождался итога и не работал по устаревшему чтению
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("product_id = ? AND user_id = ?", productID, userID).
			First(&existing).Error
		if err == nil {
			current = &existing.Type
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		switch models.NextReaction(current, desired) {
		case models.ReactionInsert:
			reaction := models.Reaction{
				ProductID: productID,
				UserID:    userID,
				Type:      desired,
			}
			if err := tx.Create(&reaction).Error; err != nil {
				if !isUniqueViolation(err) {
					return err
				}
				// Строка успела появиться - повторяем как update
				res := tx.Model(&models.Reaction{}).
					Where("product_id = ? AND user_id = ?", productID, userID).
					Update("type", desired)
				if res.Error != nil {
					return res.Error
				}
			}
			state = desired.String()
		case models.ReactionDelete:
			if err := tx.Delete(&models.Reaction{}, existing.ID).Error; err != nil {
				return err
			}
			state = "none"
		case models.ReactionUpdate:
			if err := tx.Model(&existing).Update("type", desired).Error; err != nil {
				return err
			}
			state = desired.String()
		}
		return nil
	})
	if err != nil {
		return "", err
	}
	return state, nil
}

// Counts пересчитывает лайки и дизлайки товара по строкам; кэшированных
// счётчиков нет
func (s *ReactionService) Counts(productID uint) (models.ReactionCounts, error) {
	var counts models.ReactionCounts
	if err := s.db.Model(&models.Reaction{}).
		Where("product_id = ? AND type = ?", productID, models.ReactionLike).
		Count(&counts.Likes).Error; err != nil {
		return counts, err
	}
	if err := s.db.Model(&models.Reaction{}).
		Where("product_id = ? AND type = ?", productID, models.ReactionDislike).
		Count(&counts.Dislikes).Error; err != nil {
		return counts, err
	}
	return counts, nil
}
