package catalog

import (
	"errors"

	"brandstack/models"

	"gorm.io/gorm"
)

type CollectionService struct {
	db *gorm.DB
}

func NewCollectionService(db *gorm.DB) *CollectionService {
	return &CollectionService{db: db}
}

// ListPublished - свежие опубликованные подборки для главной страницы
func (s *CollectionService) ListPublished(limit int) ([]models.Collection, error) {
	if limit < 1 || limit > 50 {
		limit = 10
	}
	var collections []models.Collection
	err := s.db.
		Where("is_published = ?", true).
		Order("created_at DESC").
		Limit(limit).
		Find(&collections).Error
	if err != nil {
		return nil, err
	}
	return collections, nil
}

func (s *CollectionService) GetPublishedBySlug(slug string) (*models.Collection, error) {
	var collection models.Collection
	err := s.db.
		Where("slug = ? AND is_published = ?", slug, true).
		First(&collection).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrCollectionNotFound
		}
		return nil, err
	}
	return &collection, nil
}

// ListAll - админский листинг с черновиками
func (s *CollectionService) ListAll(page, limit int, published *bool) ([]models.Collection, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	query := s.db.Model(&models.Collection{})
	if published != nil {
		query = query.Where("is_published = ?", *published)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var collections []models.Collection
	err := query.
		Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&collections).Error
	if err != nil {
		return nil, 0, err
	}
	return collections, total, nil
}

func (s *CollectionService) GetByID(id uint) (*models.Collection, error) {
	var collection models.Collection
	if err := s.db.First(&collection, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrCollectionNotFound
		}
		return nil, err
	}
	return &collection, nil
}

func (s *CollectionService) Create(collection *models.Collection) error {
	return s.db.Create(collection).Error
}

func (s *CollectionService) Update(collection *models.Collection) error {
	return s.db.Save(collection).Error
}

func (s *CollectionService) Delete(id uint) error {
	res := s.db.Delete(&models.Collection{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return models.ErrCollectionNotFound
	}
	return nil
}

func (s *CollectionService) SetPublicationState(ids []uint, published bool) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	res := s.db.Model(&models.Collection{}).
		Where("id IN ?", ids).
		Update("is_published", published)
	return res.RowsAffected, res.Error
}
