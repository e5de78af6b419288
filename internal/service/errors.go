package service

import (
	"errors"
	"fmt"
	"strings"

	"hmps-api/internal/model"
	"hmps-api/internal/store"
)

var (
	ErrValidation         = errors.New("validation failed")
	ErrNotFound           = errors.New("not found")
	ErrConflict           = errors.New("conflict")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

type requiredField struct {
	name  string
	value model.Text
}

// checkRequired fails with ErrValidation naming every blank field.
func checkRequired(fields ...requiredField) error {
	var missing []string
	for _, f := range fields {
		if f.value.Blank() {
			missing = append(missing, f.name)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: missing %s", ErrValidation, strings.Join(missing, ", "))
	}
	return nil
}

func parseDate(name string, v model.Text) (model.Date, error) {
	d, err := model.ParseDate(v.String())
	if err != nil {
		return "", fmt.Errorf("%w: %s: %w", ErrValidation, name, err)
	}
	return d, nil
}

// wrap annotates a store error, turning unique-key violations into ErrConflict.
func wrap(op string, err error) error {
	if errors.Is(err, store.ErrDuplicate) {
		return fmt.Errorf("%s: %w: %v", op, ErrConflict, err)
	}
	return fmt.Errorf("%s: %w", op, err)
}

// matched converts an Exec result into ErrNotFound when no row had the id.
func matched(op string, n int64, err error) error {
	if err != nil {
		return wrap(op, err)
	}
	if n == 0 {
		return fmt.Errorf("%s: %w", op, ErrNotFound)
	}
	return nil
}
