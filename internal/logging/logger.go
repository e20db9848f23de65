// Package logging настраивает структурированное логирование приложения.
//
// Глобальный логгер zap инициализируется один раз при запуске:
//
//	if err := logging.Initialize("debug", ""); err != nil {
//	    log.Fatal(err)
//	}
//	defer logging.Sync()
//
// Компоненты получают именованный логгер через logging.Named("hub").
package logging

import (
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var logger *zap.Logger

// LogLevelEnvVar переменная окружения с уровнем логирования
const LogLevelEnvVar = "HUBPANEL_LOG_LEVEL"

// Initialize создает логгер с указанным уровнем.
// Пустой уровень берется из HUBPANEL_LOG_LEVEL, затем "info".
// Если output не пустой, логи пишутся в этот файл вместо stderr.
func Initialize(level string, output string) error {
	if level == "" {
		level = os.Getenv(LogLevelEnvVar)
	}
	if level == "" {
		level = "info"
	}

	zapLevel, err := ParseLevel(level)
	if err != nil {
		return err
	}

	config := zap.Config{
		Level:            zap.NewAtomicLevelAt(zapLevel),
		Development:      false,
		Encoding:         "console",
		EncoderConfig:    zap.NewDevelopmentEncoderConfig(),
		OutputPaths:      []string{"stderr"},
		ErrorOutputPaths: []string{"stderr"},
	}
	if output != "" {
		config.OutputPaths = []string{output}
		config.ErrorOutputPaths = []string{output}
	}
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.EncoderConfig.EncodeCaller = zapcore.ShortCallerEncoder

	built, err := config.Build()
	if err != nil {
		return fmt.Errorf("не удалось инициализировать логгер: %w", err)
	}

	logger = built
	return nil
}

// ParseLevel разбирает имя уровня логирования
func ParseLevel(level string) (zapcore.Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return zapcore.DebugLevel, nil
	case "info", "":
		return zapcore.InfoLevel, nil
	case "warn", "warning":
		return zapcore.WarnLevel, nil
	case "error":
		return zapcore.ErrorLevel, nil
	default:
		return zapcore.InfoLevel, fmt.Errorf("неизвестный уровень логирования %q", level)
	}
}

// L возвращает глобальный логгер
func L() *zap.Logger {
	if logger == nil {
		// До инициализации ничего не пишем
		logger = zap.NewNop()
	}
	return logger
}

// Named возвращает именованный дочерний логгер
func Named(name string) *zap.Logger {
	return L().Named(name)
}

// Sync сбрасывает буферы логгера
func Sync() {
	if logger != nil {
		_ = logger.Sync()
	}
}

// HexBytes возвращает поле с hex-дампом данных
func HexBytes(key string, data []byte) zap.Field {
	return zap.String(key, fmt.Sprintf("% X", data))
}
