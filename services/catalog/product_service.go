package catalog

import (
	"errors"

	"brandstack/models"

	"gorm.io/gorm"
)

// ProductService - единый слой доступа к товарам. Публичная выдача идёт
// через ListPublished/GetPublishedBySlug и всегда ограничена
// опубликованными товарами; админские методы фильтр обходят. Никакого
// скрытого глобального скоупа, два явных набора запросов.
type ProductService struct {
	db *gorm.DB
}

func NewProductService(db *gorm.DB) *ProductService {
	return &ProductService{db: db}
}

// ProductListOptions - фильтры листинга. Published используется только
// админскими запросами.
type ProductListOptions struct {
	Page         int
	Limit        int
	CategorySlug string
	TagSlug      string
	PriceBucket  string
	Search       string
	Published    *bool
}

func (o *ProductListOptions) normalize() {
	if o.Page < 1 {
		o.Page = 1
	}
	if o.Limit < 1 || o.Limit > 100 {
		o.Limit = 20
	}
}

func (s *ProductService) applyFilters(query *gorm.DB, opts ProductListOptions) *gorm.DB {
	if opts.CategorySlug != "" {
		query = query.
			Joins("JOIN categories ON categories.id = products.category_id").
			Where("categories.slug = ?", opts.CategorySlug)
	}
	if opts.TagSlug != "" {
		query = query.
			Joins("JOIN product_tags ON product_tags.product_id = products.id").
			Joins("JOIN tags ON tags.id = product_tags.tag_id").
			Where("tags.slug = ?", opts.TagSlug)
	}
	if opts.PriceBucket != "" {
		if min, max, ok := models.ParsePriceBucket(opts.PriceBucket); ok {
			if min != nil {
				query = query.Where("products.price >= ?", *min)
			}
			if max != nil {
				query = query.Where("products.price < ?", *max)
			}
		}
	}
	if opts.Search != "" {
		query = query.Where("products.name ILIKE ?", opts.Search+"%")
	}
	return query
}

func (s *ProductService) list(query *gorm.DB, opts ProductListOptions) ([]models.Product, int64, error) {
	opts.normalize()
	query = s.applyFilters(query, opts)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var products []models.Product
	err := query.
		Preload("Category").
		Preload("Tags").
		Order("products.created_at DESC, products.name ASC").
		Offset((opts.Page - 1) * opts.Limit).
		Limit(opts.Limit).
		Find(&products).Error
	if err != nil {
		return nil, 0, err
	}
	return products, total, nil
}

// ListPublished возвращает страницу опубликованных товаров,
// свежие первыми, при равном времени создания - по имени
func (s *ProductService) ListPublished(opts ProductListOptions) ([]models.Product, int64, error) {
	query := s.db.Model(&models.Product{}).Where("products.is_published = ?", true)
	return s.list(query, opts)
}

// ListAll - админский листинг, черновики включены
func (s *ProductService) ListAll(opts ProductListOptions) ([]models.Product, int64, error) {
	query := s.db.Model(&models.Product{})
	if opts.Published != nil {
		query = query.Where("products.is_published = ?", *opts.Published)
	}
	return s.list(query, opts)
}

// GetPublishedBySlug отдаёт опубликованный товар со всеми связями.
// Черновик и отсутствующий товар наружу неразличимы.
func (s *ProductService) GetPublishedBySlug(slug string) (*models.Product, error) {
	var product models.Product
	err := s.db.
		Preload("Category").
		Preload("Tags").
		Preload("Detail").
		Where("slug = ? AND is_published = ?", slug, true).
		First(&product).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrProductNotFound
		}
		return nil, err
	}
	return &product, nil
}

func (s *ProductService) GetByID(id uint) (*models.Product, error) {
	var product models.Product
	err := s.db.
		Preload("Category").
		Preload("Tags").
		Preload("Detail").
		First(&product, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrProductNotFound
		}
		return nil, err
	}
	return &product, nil
}

// Create сохраняет товар вместе с деталями и привязкой тегов
func (s *ProductService) Create(product *models.Product, tagIDs []uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(product).Error; err != nil {
			return err
		}
		return s.replaceTags(tx, product, tagIDs)
	})
}

func (s *ProductService) Update(product *models.Product, tagIDs []uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{FullSaveAssociations: true}).Save(product).Error; err != nil {
			return err
		}
		return s.replaceTags(tx, product, tagIDs)
	})
}

func (s *ProductService) replaceTags(tx *gorm.DB, product *models.Product, tagIDs []uint) error {
	if tagIDs == nil {
		return nil
	}
	var tags []models.Tag
	if len(tagIDs) > 0 {
		if err := tx.Find(&tags, tagIDs).Error; err != nil {
			return err
		}
	}
	return tx.Model(product).Association("Tags").Replace(tags)
}

// Delete - мягкое удаление; строка окончательно вычищается фоновой
// задачей ретенции
func (s *ProductService) Delete(id uint) error {
	res := s.db.Delete(&models.Product{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return models.ErrProductNotFound
	}
	return nil
}

// SetPublicationState - массовая публикация / снятие с публикации,
// возвращает число реально обновлённых строк
func (s *ProductService) SetPublicationState(ids []uint, published bool) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	res := s.db.Model(&models.Product{}).
		Where("id IN ?", ids).
		Update("is_published", published)
	return res.RowsAffected, res.Error
}
