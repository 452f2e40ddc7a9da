package person

import (
	"errors"
	"strings"

	personerrors "go-payslip/internal/person/errors"

	"github.com/jackc/pgx/v5/pgconn"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return personerrors.ErrPersonAlreadyExists
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") && strings.Contains(errMsg, "uq_person_email") {
		return personerrors.ErrPersonAlreadyExists
	}

	return err
}
