package setting

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/staffhub-dev/attendance-backend-go/internal/domain/setting"
)

type SettingServiceImpl struct {
	settingRepo setting.SettingRepository
}

func NewSettingService(settingRepo setting.SettingRepository) setting.SettingService {
	return &SettingServiceImpl{settingRepo: settingRepo}
}

// GetStandardHours implements setting.SettingService. A missing or malformed
// value falls back to the default rather than erroring, matching how payroll
// generation reads it.
func (s *SettingServiceImpl) GetStandardHours(ctx context.Context) (int, error) {
	raw, err := s.settingRepo.Get(ctx, setting.KeyStandardHours)
	if err != nil {
		if errors.Is(err, setting.ErrSettingNotFound) {
			return setting.DefaultStandardHours, nil
		}
		return 0, fmt.Errorf("failed to read standard hours setting: %w", err)
	}

	hours, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || hours <= 0 {
		return setting.DefaultStandardHours, nil
	}

	return hours, nil
}

// UpdateStandardHours implements setting.SettingService.
func (s *SettingServiceImpl) UpdateStandardHours(ctx context.Context, hours int) error {
	if hours < 1 || hours > 24 {
		return setting.ErrInvalidValue
	}

	if err := s.settingRepo.Upsert(ctx, setting.KeyStandardHours, strconv.Itoa(hours)); err != nil {
		return fmt.Errorf("failed to update standard hours setting: %w", err)
	}

	return nil
}
