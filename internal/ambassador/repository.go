package ambassador

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

func (r *Repository) Create(app *Application) error {
	return r.DB.Create(app).Error
}

func (r *Repository) GetByID(id string) (*Application, error) {
	var app Application
	if err := r.DB.First(&app, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, event.ErrNotFound
		}
		return nil, err
	}
	return &app, nil
}

func (r *Repository) List(status string, limit, offset int) ([]Application, error) {
	var apps []Application
	q := r.DB.Order("created_at DESC")
	if status != "" {
		q = q.Where("status = ?", status)
	}
	if limit > 0 {
		q = q.Limit(limit).Offset(offset)
	}
	if err := q.Find(&apps).Error; err != nil {
		return nil, err
	}
	return apps, nil
}

func (r *Repository) Delete(id string) error {
	res := r.DB.Delete(&Application{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return event.ErrNotFound
	}
	return nil
}

func (r *Repository) UpdateStatus(id, status string) error {
	res := r.DB.Model(&Application{}).Where("id = ?", id).Update("status", status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return event.ErrNotFound
	}
	return nil
}
