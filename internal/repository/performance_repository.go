package repository

import (
	"context"
	"errors"
	"learning_assistant_backend/internal/model"

	"gorm.io/gorm"
)

type PerformanceRepository struct {
	DB *gorm.DB
}

func NewPerformanceRepository(db *gorm.DB) *PerformanceRepository {
	return &PerformanceRepository{DB: db}
}

func (r *PerformanceRepository) Create(ctx context.Context, record *model.PerformanceRecord) error {
	return r.DB.WithContext(ctx).Create(record).Error
}

func (r *PerformanceRepository) CreateBatch(ctx context.Context, records []model.PerformanceRecord) error {
	if len(records) == 0 {
		return nil
	}
	return r.DB.WithContext(ctx).CreateInBatches(records, 200).Error
}

func (r *PerformanceRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.DB.WithContext(ctx).Model(&model.PerformanceRecord{}).Count(&count).Error
	return count, err
}

// ListByStudent returns the student's records, oldest first.
func (r *PerformanceRepository) ListByStudent(ctx context.Context, studentID string) ([]model.PerformanceRecord, error) {
	var records []model.PerformanceRecord
	err := r.DB.WithContext(ctx).
		Where("student_id = ?", studentID).
		Order("recorded_at asc, created_at asc").
		Find(&records).Error
	return records, err
}

// Latest returns the most recent record, restricted to subject when it is not empty.
// It returns (nil, nil) when the student has no matching record.
func (r *PerformanceRepository) Latest(ctx context.Context, studentID, subject string) (*model.PerformanceRecord, error) {
	query := r.DB.WithContext(ctx).Where("student_id = ?", studentID)
	if subject != "" {
		query = query.Where("subject = ?", subject)
	}

	var record model.PerformanceRecord
	err := query.Order("recorded_at desc, created_at desc").First(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &record, nil
}
