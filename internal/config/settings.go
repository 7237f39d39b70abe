package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"pomodoro/solanum/internal/model"
)

var ErrUnknownKey = errors.New("unknown settings key")

// SettingKeys lists the keys accepted by Set, in file order.
var SettingKeys = []string{
	"focusDuration",
	"shortBreakDuration",
	"longBreakDuration",
	"sessionsBeforeLongBreak",
	"autoStartNextSession",
	"soundEnabled",
	"notificationsEnabled",
	"defaultProject",
}

// LoadSettings reads the settings file. A missing file yields the defaults.
// An unreadable or invalid file also yields the defaults, together with the
// error so the caller can warn about it.
func LoadSettings(path string) (model.Settings, error) {
	settings := model.DefaultSettings()

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return settings, nil
	}
	if err != nil {
		return settings, fmt.Errorf("read settings: %w", err)
	}

	if err := yaml.Unmarshal(data, &settings); err != nil {
		return model.DefaultSettings(), fmt.Errorf("parse settings %s: %w", path, err)
	}
	return settings.Normalized(), nil
}

func SaveSettings(path string, settings model.Settings) error {
	data, err := yaml.Marshal(settings.Normalized())
	if err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create settings dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write settings: %w", err)
	}
	return nil
}

// Set assigns one settings key from its string form. Durations are minutes;
// numbers outside the allowed range are clamped.
func Set(settings *model.Settings, key, value string) error {
	value = strings.TrimSpace(value)
	switch key {
	case "focusDuration":
		return setInt(&settings.FocusMinutes, key, value, model.ClampMinutes)
	case "shortBreakDuration":
		return setInt(&settings.ShortBreakMinutes, key, value, model.ClampMinutes)
	case "longBreakDuration":
		return setInt(&settings.LongBreakMinutes, key, value, model.ClampMinutes)
	case "sessionsBeforeLongBreak":
		return setInt(&settings.SessionsBeforeLongBreak, key, value, model.ClampSessions)
	case "autoStartNextSession":
		return setBool(&settings.AutoStartNextSession, key, value)
	case "soundEnabled":
		return setBool(&settings.SoundEnabled, key, value)
	case "notificationsEnabled":
		return setBool(&settings.NotificationsEnabled, key, value)
	case "defaultProject":
		settings.DefaultProject = value
		return nil
	}
	return fmt.Errorf("%w: %s", ErrUnknownKey, key)
}

func setInt(target *int, key, value string, bound func(int) int) error {
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fmt.Errorf("%s must be a whole number: %w", key, err)
	}
	*target = bound(parsed)
	return nil
}

func setBool(target *bool, key, value string) error {
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return fmt.Errorf("%s must be true or false: %w", key, err)
	}
	*target = parsed
	return nil
}
