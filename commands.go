package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"tinygo.org/x/bluetooth"

	"HubPanel/internal/config"
	"HubPanel/internal/dashboard"
	"HubPanel/internal/logging"
	"HubPanel/internal/poweredup"
	"HubPanel/internal/tui"
)

const windowTitle = "LEGO Hub Peripheral Panel"

// Флаги командной строки
var (
	configPath string
	logLevel   string
	logFile    string
	frontend   string
	hubName    string
	forceInit  bool
)

var rootCmd = &cobra.Command{
	Use:   "hubpanel",
	Short: "LEGO hub peripheral panel",
	Long: `Connects to a nearby LEGO Powered Up or WeDo 2.0 hub over Bluetooth LE
and shows a live card for every attached peripheral.

Motors get a speed slider and a stop button, sensors show their latest
reading. Settings are read from a YAML file; flags override the file.`,
	SilenceUsage: true,
	RunE:         runPanel,
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the settings file",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a settings file with default values",
	Example: `  # Write defaults to the user config directory
  hubpanel config init

  # Write to a custom location, replacing an existing file
  hubpanel config init --config ./hubpanel.yaml --force`,
	RunE: runConfigInit,
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configPath, "config", "", "settings file (default: user config dir)")
	flags.StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error")
	flags.StringVar(&logFile, "log-file", "", "write logs to this file instead of stderr")

	rootCmd.Flags().StringVar(&frontend, "frontend", "", "user interface: gui or tui")
	rootCmd.Flags().StringVar(&hubName, "hub-name", "", "connect only to a hub with this advertised name")

	configInitCmd.Flags().BoolVar(&forceInit, "force", false, "overwrite an existing settings file")

	configCmd.AddCommand(configInitCmd)
	rootCmd.AddCommand(configCmd)
}

// resolveConfigPath возвращает путь из флага или путь по умолчанию
func resolveConfigPath() (string, error) {
	if configPath != "" {
		return configPath, nil
	}
	return config.DefaultPath()
}

// loadConfig читает файл настроек и накладывает флаги
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, err := resolveConfigPath()
	if err != nil {
		return nil, err
	}

	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.LogLevel = logLevel
	}
	if flags.Changed("log-file") {
		cfg.LogFile = logFile
	}
	if flags.Changed("frontend") {
		cfg.Frontend = frontend
	}
	if flags.Changed("hub-name") {
		cfg.HubName = hubName
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	// Терминальный интерфейс занимает экран, логи уходят в файл
	if cfg.Frontend == config.FrontendTUI && cfg.LogFile == "" {
		cfg.LogFile = filepath.Join(os.TempDir(), "hubpanel.log")
	}
	return cfg, nil
}

func runPanel(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	if err := logging.Initialize(cfg.LogLevel, cfg.LogFile); err != nil {
		return err
	}
	defer logging.Sync()

	log := logging.L()
	log.Info("Запуск HubPanel",
		zap.String("frontend", cfg.Frontend),
		zap.String("hub_name", cfg.HubName),
	)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	scanner := dashboard.NewScanner(
		poweredup.NewScanner(bluetooth.DefaultAdapter, cfg.HubName, logging.Named("scanner")),
	)

	switch cfg.Frontend {
	case config.FrontendTUI:
		return tui.Run(ctx, scanner, logging.Named("tui"))
	default:
		runGUI(ctx, cfg, scanner, logging.Named("gui"))
		return nil
	}
}

// runGUI запускает окно fyne и блокируется до его закрытия
func runGUI(ctx context.Context, cfg *config.Config, scanner dashboard.Scanner, log *zap.Logger) {
	myApp := app.New()
	myApp.Settings().SetTheme(&PanelTheme{})

	window := myApp.NewWindow(windowTitle)
	window.SetMaster()
	window.Resize(fyne.NewSize(cfg.Window.Width, cfg.Window.Height))

	gui := NewMainGUI(ctx, window, scanner, log)
	window.SetContent(gui.BuildUI())

	// Сигнал завершения закрывает окно из потока fyne
	closed := make(chan struct{})
	go func() {
		select {
		case <-ctx.Done():
			fyne.Do(myApp.Quit)
		case <-closed:
		}
	}()

	window.ShowAndRun()
	close(closed)

	// Отключаемся при выходе
	gui.Close()
}

func runConfigInit(_ *cobra.Command, _ []string) error {
	path, err := resolveConfigPath()
	if err != nil {
		return err
	}

	if !forceInit {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("файл настроек %s уже существует (используйте --force)", path)
		} else if !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("ошибка проверки %s: %w", path, err)
		}
	}

	if err := config.Default().Save(path); err != nil {
		return err
	}
	fmt.Printf("Настройки записаны в %s\n", path)
	return nil
}
