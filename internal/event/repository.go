package event

import (
	"errors"

	"gorm.io/gorm"
)

type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

func (r *Repository) CreateEvent(e *Event) error {
	return r.DB.Create(e).Error
}

func (r *Repository) GetEventByID(id string) (*Event, error) {
	var e Event
	err := r.DB.First(&e, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &e, nil
}

// SaveEvent writes the full event document back, attendee roster included.
func (r *Repository) SaveEvent(e *Event) error {
	return r.DB.Save(e).Error
}

func (r *Repository) DeleteEvent(id string) error {
	res := r.DB.Where("id = ?", id).Delete(&Event{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *Repository) BulkDeleteEvents(ids []string) (int64, error) {
	res := r.DB.Where("id IN ?", ids).Delete(&Event{})
	return res.RowsAffected, res.Error
}

// ListEvents returns events ordered by date with optional pagination and
// title/description search.
func (r *Repository) ListEvents(limit, offset int, search string) ([]Event, error) {
	var events []Event

	query := r.DB.Order("date ASC")
	if search != "" {
		ilike := "%" + search + "%"
		query = query.Where("title ILIKE ? OR description ILIKE ?", ilike, ilike)
	}
	if limit > 0 {
		query = query.Limit(limit).Offset(offset)
	}

	if err := query.Find(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}

// ListUpcomingEvents returns events whose date is today or later.
func (r *Repository) ListUpcomingEvents() ([]Event, error) {
	var events []Event
	err := r.DB.
		Where("date >= CURRENT_DATE").
		Order("date ASC").
		Find(&events).Error
	if err != nil {
		return nil, err
	}
	return events, nil
}
