package catalog

import (
	"errors"

	"brandstack/models"

	"gorm.io/gorm"
)

var ErrTaxonomyNotFound = errors.New("category or tag not found")

// TaxonomyService - категории и теги каталога
type TaxonomyService struct {
	db *gorm.DB
}

func NewTaxonomyService(db *gorm.DB) *TaxonomyService {
	return &TaxonomyService{db: db}
}

func (s *TaxonomyService) Categories() ([]models.Category, error) {
	var categories []models.Category
	if err := s.db.Order("name ASC").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

func (s *TaxonomyService) Tags() ([]models.Tag, error) {
	var tags []models.Tag
	if err := s.db.Order("name ASC").Find(&tags).Error; err != nil {
		return nil, err
	}
	return tags, nil
}

func (s *TaxonomyService) CategoryBySlug(slug string) (*models.Category, error) {
	var category models.Category
	if err := s.db.Where("slug = ?", slug).First(&category).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaxonomyNotFound
		}
		return nil, err
	}
	return &category, nil
}

func (s *TaxonomyService) CategoryByID(id uint) (*models.Category, error) {
	var category models.Category
	if err := s.db.First(&category, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaxonomyNotFound
		}
		return nil, err
	}
	return &category, nil
}

func (s *TaxonomyService) CreateCategory(category *models.Category) error {
	return s.db.Create(category).Error
}

func (s *TaxonomyService) UpdateCategory(category *models.Category) error {
	return s.db.Save(category).Error
}

// DeleteCategory жёстко удаляет категорию. Категория, на которую
// ссылается хотя бы один товар, не удаляется: сначала явная проверка,
// затем ограничение RESTRICT в базе как страховка от гонки.
func (s *TaxonomyService) DeleteCategory(id uint) error {
	var refs int64
	if err := s.db.Model(&models.Product{}).Unscoped().
		Where("category_id = ?", id).
		Count(&refs).Error; err != nil {
		return err
	}
	if refs > 0 {
		return models.ErrCategoryInUse
	}
	res := s.db.Unscoped().Delete(&models.Category{}, id)
	if res.Error != nil {
		if isForeignKeyViolation(res.Error) {
			return models.ErrCategoryInUse
		}
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrTaxonomyNotFound
	}
	return nil
}

func (s *TaxonomyService) TagByID(id uint) (*models.Tag, error) {
	var tag models.Tag
	if err := s.db.First(&tag, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaxonomyNotFound
		}
		return nil, err
	}
	return &tag, nil
}

func (s *TaxonomyService) CreateTag(tag *models.Tag) error {
	return s.db.Create(tag).Error
}

func (s *TaxonomyService) UpdateTag(tag *models.Tag) error {
	return s.db.Save(tag).Error
}

// DeleteTag удаляет тег вместе со связями тег-товар
func (s *TaxonomyService) DeleteTag(id uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM product_tags WHERE tag_id = ?", id).Error; err != nil {
			return err
		}
		res := tx.Unscoped().Delete(&models.Tag{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrTaxonomyNotFound
		}
		return nil
	})
}
