package setting

import (
	"context"
	"errors"
)

// KeyStandardHours holds the expected full-time hours per weekday, used as
// the divisor source when deriving hourly rates from monthly salaries.
const KeyStandardHours = "standard_hours"

// DefaultStandardHours applies when the setting row is absent.
const DefaultStandardHours = 8

var (
	ErrSettingNotFound = errors.New("setting not found")
	ErrInvalidValue    = errors.New("invalid setting value")
)

// SettingRepository stores global key/value configuration.
type SettingRepository interface {
	Get(ctx context.Context, key string) (string, error)
	Upsert(ctx context.Context, key, value string) error
}

// SettingService exposes the admin-tunable standard-hours value.
type SettingService interface {
	GetStandardHours(ctx context.Context) (int, error)
	UpdateStandardHours(ctx context.Context, hours int) error
}
