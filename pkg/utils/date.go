package utils

import (
	"strings"
	"time"

	"github.com/pkg/errors"
)

const DateLayout = "2006-01-02"

// ParseDate interpreta datas yyyy-mm-dd em UTC; texto vazio resulta em time.Time zero
func ParseDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, nil
	}

	date, err := time.Parse(DateLayout, value)
	if err != nil {
		return time.Time{}, errors.Wrapf(err, "data %q fora do formato yyyy-mm-dd", value)
	}

	return date, nil
}

// ParseRequiredDate é ParseDate sem aceitar texto vazio
func ParseRequiredDate(value string) (time.Time, error) {
	date, err := ParseDate(value)
	if err != nil {
		return time.Time{}, err
	}
	if date.IsZero() {
		return time.Time{}, errors.New("data obrigatória não informada")
	}
	return date, nil
}
