package person

import (
	"context"

	"go-payslip/internal/tenant"

	"gorm.io/gorm"
)

//go:generate mockgen -source=person_repo.go -destination=mock/person_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, p *Person) error
	FindAllByCompany(ctx context.Context, companyID string, kind Kind) ([]Person, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, p *Person) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *repository) FindAllByCompany(ctx context.Context, companyID string, kind Kind) ([]Person, error) {
	var people []Person
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Where("kind = ?", kind).
		Order("name ASC").
		Find(&people).Error
	return people, err
}
