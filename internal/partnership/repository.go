package partnership

import (
	"errors"

	"gorm.io/gorm"

	"github.com/openlearnhq/education-platform-backend/internal/event"
)

type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

func (r *Repository) Create(inq *Inquiry) error {
	return r.DB.Create(inq).Error
}

func (r *Repository) GetByID(id string) (*Inquiry, error) {
	var inq Inquiry
	if err := r.DB.First(&inq, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, event.ErrNotFound
		}
		return nil, err
	}
	return &inq, nil
}

func (r *Repository) List(limit, offset int) ([]Inquiry, error) {
	var inquiries []Inquiry
	q := r.DB.Order("created_at DESC")
	if limit > 0 {
		q = q.Limit(limit).Offset(offset)
	}
	if err := q.Find(&inquiries).Error; err != nil {
		return nil, err
	}
	return inquiries, nil
}

func (r *Repository) Delete(id string) error {
	res := r.DB.Delete(&Inquiry{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return event.ErrNotFound
	}
	return nil
}

func (r *Repository) UpdateStatus(id, status string) error {
	res := r.DB.Model(&Inquiry{}).Where("id = ?", id).Update("status", status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return event.ErrNotFound
	}
	return nil
}
