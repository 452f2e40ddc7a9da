package person

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	personerrors "go-payslip/internal/person/errors"
	"go-payslip/internal/shared/apperror"
	"go-payslip/internal/shared/contextutil"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const PeopleListKeyPrefix = "people:list:"

func GetPeopleListKey(companyID string, kind Kind) string {
	return PeopleListKeyPrefix + companyID + ":" + string(kind)
}

//go:generate mockgen -source=person_service.go -destination=mock/person_service_mock.go -package=mock
type Service interface {
	ImportRows(ctx context.Context, companyID string, kind Kind, rows []map[string]string) (ImportResult, error)
	List(ctx context.Context, companyID string, kind Kind) ([]PersonResponse, error)
}

type service struct {
	db     *sql.DB
	repo   Repository
	rdb    *redis.Client
	sf     *singleflight.Group
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, rdb *redis.Client, logger ...*zap.Logger) Service {
	l := zap.L().Named("person.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("person.service")
	}
	return &service{
		db:     db,
		repo:   repo,
		rdb:    rdb,
		sf:     &singleflight.Group{},
		logger: l,
	}
}

// ImportRows stores every row on its own so one bad row does not undo the
// others. A row that fails is reported in the result. An error is returned
// only when the import cannot start.
func (s *service) ImportRows(
	ctx context.Context,
	companyID string,
	kind Kind,
	rows []map[string]string,
) (ImportResult, error) {
	log := contextutil.GetLogger(ctx, s.logger)
	log.Debug("import people requested",
		zap.String("company_id", companyID),
		zap.String("kind", string(kind)),
		zap.Int("rows", len(rows)),
	)

	if _, ok := FieldsFor(kind); !ok {
		return ImportResult{}, personerrors.ErrUnknownKind
	}
	companyUUID, err := uuid.Parse(companyID)
	if err != nil {
		return ImportResult{}, personerrors.ErrInvalidCompanyID
	}
	if s.db != nil {
		if err := s.db.PingContext(ctx); err != nil {
			log.Error("import people store unreachable", zap.Error(err))
			return ImportResult{}, apperror.Wrap(
				err,
				personerrors.ErrStoreUnavailable.Code,
				personerrors.ErrStoreUnavailable.Message,
				personerrors.ErrStoreUnavailable.HTTPStatus,
			)
		}
	}

	result := ImportResult{Errors: []string{}}
	for i, row := range rows {
		p := rowToPerson(companyUUID, kind, row)
		if err := s.repo.Create(ctx, p); err != nil {
			mapped := mapRepositoryError(err)
			log.Warn("import people row failed",
				zap.Int("row", i+1),
				zap.String("email", p.Email),
				zap.Error(err),
			)
			result.Errors = append(result.Errors, fmt.Sprintf("Row %d (%s): %s", i+1, p.Email, rowErrorMessage(mapped)))
			continue
		}
		result.Success++
	}

	if result.Success > 0 {
		s.invalidateList(ctx, companyID, kind)
	}

	log.Info("import people finished",
		zap.String("company_id", companyID),
		zap.String("kind", string(kind)),
		zap.Int("success", result.Success),
		zap.Int("failed", len(result.Errors)),
	)
	return result, nil
}

func (s *service) List(ctx context.Context, companyID string, kind Kind) ([]PersonResponse, error) {
	if _, ok := FieldsFor(kind); !ok {
		return nil, personerrors.ErrUnknownKind
	}
	cacheKey := GetPeopleListKey(companyID, kind)

	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, cacheKey).Result(); err == nil {
			var resp []PersonResponse
			if json.Unmarshal([]byte(cached), &resp) == nil {
				return resp, nil
			}
		}
	}

	v, err, _ := s.sf.Do(cacheKey, func() (interface{}, error) {
		people, err := s.repo.FindAllByCompany(ctx, companyID, kind)
		if err != nil {
			return nil, mapRepositoryError(err)
		}

		resp := mapToListResponse(people)

		if s.rdb != nil {
			if jsonData, err := json.Marshal(resp); err == nil {
				s.rdb.Set(ctx, cacheKey, jsonData, 10*time.Minute)
			}
		}

		return resp, nil
	})
	if err != nil {
		s.logger.Error("list people failed", zap.String("company_id", companyID), zap.Error(err))
		return nil, err
	}

	return v.([]PersonResponse), nil
}

func (s *service) invalidateList(ctx context.Context, companyID string, kind Kind) {
	if s.rdb == nil {
		return
	}
	cacheKey := GetPeopleListKey(companyID, kind)
	if err := s.rdb.Del(ctx, cacheKey).Err(); err != nil {
		s.logger.Error("failed to invalidate people list cache",
			zap.Error(err),
			zap.String("key", cacheKey),
		)
	}
}

var coreFields = map[string]bool{"name": true, "email": true, "phone": true}

func rowToPerson(companyID uuid.UUID, kind Kind, row map[string]string) *Person {
	attrs := make(map[string]string)
	for k, v := range row {
		if coreFields[k] || strings.TrimSpace(v) == "" {
			continue
		}
		attrs[k] = v
	}

	return &Person{
		ID:         uuid.New(),
		CompanyID:  companyID,
		Kind:       kind,
		Name:       strings.TrimSpace(row["name"]),
		Email:      strings.ToLower(strings.TrimSpace(row["email"])),
		Phone:      strings.TrimSpace(row["phone"]),
		Attributes: attrs,
	}
}

func rowErrorMessage(err error) string {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	return err.Error()
}

func mapToResponse(p Person) PersonResponse {
	return PersonResponse{
		ID:         p.ID.String(),
		Kind:       string(p.Kind),
		Name:       p.Name,
		Email:      p.Email,
		Phone:      p.Phone,
		Attributes: p.Attributes,
		CreatedAt:  p.CreatedAt.Format(time.RFC3339),
	}
}

func mapToListResponse(people []Person) []PersonResponse {
	res := make([]PersonResponse, len(people))
	for i, p := range people {
		res[i] = mapToResponse(p)
	}
	return res
}
