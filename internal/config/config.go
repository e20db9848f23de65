// Package config хранит настройки HubPanel.
//
// Настройки читаются из YAML-файла; отсутствующий файл не является ошибкой,
// в этом случае используются значения по умолчанию. Флаги командной строки
// накладываются поверх файла в main.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Фронтенды приложения
const (
	FrontendGUI = "gui"
	FrontendTUI = "tui"
)

// Config настройки приложения
type Config struct {
	// LogLevel пусто - уровень из HUBPANEL_LOG_LEVEL, затем info
	LogLevel string `yaml:"log_level,omitempty"`
	LogFile  string `yaml:"log_file,omitempty"`
	Frontend string `yaml:"frontend"`
	// HubName ограничивает подключение хабами с этим именем (пусто - любой хаб)
	HubName string `yaml:"hub_name,omitempty"`
	Window  Window `yaml:"window"`
}

// Window размеры главного окна
type Window struct {
	Width  float32 `yaml:"width"`
	Height float32 `yaml:"height"`
}

// Default возвращает настройки по умолчанию
func Default() *Config {
	return &Config{
		Frontend: FrontendGUI,
		Window: Window{
			Width:  900,
			Height: 700,
		},
	}
}

// DefaultPath возвращает путь к файлу настроек в каталоге пользователя
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("не удалось определить каталог настроек: %w", err)
	}
	return filepath.Join(dir, "hubpanel", "config.yaml"), nil
}

// Load читает настройки из файла поверх значений по умолчанию
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("ошибка чтения настроек %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("ошибка разбора настроек %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate проверяет и нормализует настройки
func (c *Config) Validate() error {
	c.Frontend = strings.ToLower(strings.TrimSpace(c.Frontend))
	switch c.Frontend {
	case "":
		c.Frontend = FrontendGUI
	case FrontendGUI, FrontendTUI:
	default:
		return fmt.Errorf("неизвестный фронтенд %q (ожидается gui или tui)", c.Frontend)
	}

	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		def := Default()
		c.Window = def.Window
	}
	return nil
}

// Save записывает настройки в файл, создавая каталог при необходимости
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("ошибка создания каталога настроек: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("ошибка сериализации настроек: %w", err)
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("ошибка записи настроек: %w", err)
	}
	return os.Rename(tmp, path)
}
