package payslip

import (
	"context"
	"database/sql"
	"time"

	"go-payslip/internal/shared/connection"
	"go-payslip/internal/tenant"

	"gorm.io/gorm"
)

const insertBatchSize = 100

//go:generate mockgen -source=payslip_repo.go -destination=mock/payslip_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	CreateMany(ctx context.Context, records []PayslipRecord) error
	FindAllByCompany(ctx context.Context, companyID string) ([]PayslipRecord, error)
	FindByIDAndCompany(ctx context.Context, companyID, id string) (*PayslipRecord, error)
	MarkRendered(ctx context.Context, companyID, id, objectKey, url string, renderedAt time.Time) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: connection.BindTx(r.db, tx)}
}

func (r *repository) CreateMany(ctx context.Context, records []PayslipRecord) error {
	if len(records) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).CreateInBatches(records, insertBatchSize).Error
}

func (r *repository) FindAllByCompany(ctx context.Context, companyID string) ([]PayslipRecord, error) {
	var records []PayslipRecord
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Order("period_year DESC, period_month DESC, employee_code ASC").
		Find(&records).Error
	return records, err
}

func (r *repository) FindByIDAndCompany(ctx context.Context, companyID, id string) (*PayslipRecord, error) {
	var record PayslipRecord
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		First(&record, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &record, nil
}

func (r *repository) MarkRendered(
	ctx context.Context,
	companyID, id, objectKey, url string,
	renderedAt time.Time,
) error {
	res := r.db.WithContext(ctx).
		Model(&PayslipRecord{}).
		Scopes(tenant.Scope(companyID)).
		Where("id = ?", id).
		Updates(map[string]any{
			"pdf_object_key":   objectKey,
			"pdf_url":          url,
			"pdf_generated_at": renderedAt,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
