package service

import (
	"context"
	"errors"
	"fmt"

	"ai-beautybot-be/internal/constant"
	"ai-beautybot-be/pkg/kv"

	"github.com/google/uuid"
)

// IPreferenceService stores per-session UI preferences. Currently a single
// "theme" key holding "dark" or "light".
type IPreferenceService interface {
	GetTheme(ctx context.Context, sessionId uuid.UUID) (string, error)
	SetTheme(ctx context.Context, sessionId uuid.UUID, theme string) error
}

type preferenceService struct {
	kvStore kv.Store
}

func NewPreferenceService(kvStore kv.Store) IPreferenceService {
	return &preferenceService{kvStore: kvStore}
}

func themeKey(sessionId uuid.UUID) string {
	return fmt.Sprintf("theme:%s", sessionId)
}

func (ps *preferenceService) GetTheme(ctx context.Context, sessionId uuid.UUID) (string, error) {
	theme, err := ps.kvStore.Get(ctx, themeKey(sessionId))
	if errors.Is(err, kv.ErrNotFound) {
		return constant.ThemeLight, nil
	}
	if err != nil {
		return "", err
	}
	return theme, nil
}

func (ps *preferenceService) SetTheme(ctx context.Context, sessionId uuid.UUID, theme string) error {
	if theme != constant.ThemeDark && theme != constant.ThemeLight {
		return fmt.Errorf("unsupported theme: %s", theme)
	}
	return ps.kvStore.Set(ctx, themeKey(sessionId), theme)
}
