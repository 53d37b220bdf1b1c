package models

import "time"

// ReactionType - знак реакции: +1 лайк, -1 дизлайк
type ReactionType int

const (
	ReactionLike    ReactionType = 1
	ReactionDislike ReactionType = -1
)

// Reaction - реакция пользователя на товар. Не более одной живой реакции
// на пару (товар, пользователь).
type Reaction struct {
	ID        uint         `json:"id" gorm:"primaryKey"`
	ProductID uint         `json:"product_id" gorm:"not null;uniqueIndex:idx_reactions_product_user"`
	UserID    uint         `json:"user_id" gorm:"not null;uniqueIndex:idx_reactions_product_user"`
	Type      ReactionType `json:"type" gorm:"not null"`
	CreatedAt time.Time    `json:"created_at"`

	Product Product `json:"-" gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
	User    User    `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// ParseReactionType разбирает значение из запроса ("like" / "dislike")
func ParseReactionType(s string) (ReactionType, bool) {
	switch s {
	case "like":
		return ReactionLike, true
	case "dislike":
		return ReactionDislike, true
	}
	return 0, false
}

func (t ReactionType) String() string {
	if t == ReactionLike {
		return "like"
	}
	return "dislike"
}

// ReactionChange - операция над строкой реакции, которую нужно выполнить
// после перехода
type ReactionChange int

const (
	ReactionInsert ReactionChange = iota // строки не было, создать
	ReactionDelete                       // повтор того же действия, снять реакцию
	ReactionUpdate                       // сменить знак существующей строки
)

// NextReaction - таблица переходов реакции. current == nil означает
// отсутствие реакции. Повтор текущего действия гасит реакцию,
// противоположное действие меняет знак.
func NextReaction(current *ReactionType, desired ReactionType) ReactionChange {
	if current == nil {
		return ReactionInsert
	}
	if *current == desired {
		return ReactionDelete
	}
	return ReactionUpdate
}

// ReactionCounts - счётчики реакций товара, пересчитываются по строкам
// на каждое чтение
type ReactionCounts struct {
	Likes    int64 `json:"likes"`
	Dislikes int64 `json:"dislikes"`
}
