package main

import (
	"context"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"go.uber.org/zap"

	"HubPanel/internal/dashboard"
)

// fyneLoop выполняет обработчики контроллера в потоке fyne
type fyneLoop struct{}

func (fyneLoop) Do(fn func()) { fyne.Do(fn) }
func (fyneLoop) Go(fn func()) { go fn() }

// MainGUI основной интерфейс приложения
type MainGUI struct {
	ctx    context.Context
	window fyne.Window
	ctrl   *dashboard.Controller
	log    *zap.Logger

	toolbar     *Toolbar
	devicePanel *DevicePanel
}

var _ dashboard.View = (*MainGUI)(nil)

// NewMainGUI создает новый GUI
func NewMainGUI(ctx context.Context, window fyne.Window, scanner dashboard.Scanner, log *zap.Logger) *MainGUI {
	gui := &MainGUI{
		ctx:    ctx,
		window: window,
		log:    log,
	}

	gui.toolbar = NewToolbar(gui)
	gui.devicePanel = NewDevicePanel(gui)
	gui.ctrl = dashboard.NewController(scanner, gui, fyneLoop{}, log.Named("controller"))

	return gui
}

// BuildUI строит интерфейс приложения
func (gui *MainGUI) BuildUI() fyne.CanvasObject {
	mainContainer := container.NewBorder(
		gui.toolbar.GetContainer(), // Верх - подключение и статус
		nil,
		nil,
		nil,
		gui.devicePanel.GetContainer(), // Центр - карточки устройств
	)

	gui.setupKeyboardShortcuts()

	return mainContainer
}

// connect запускает поиск и подключение хаба
func (gui *MainGUI) connect() {
	gui.ctrl.Connect(gui.ctx)
}

// Close отключает хаб при выходе
func (gui *MainGUI) Close() {
	gui.ctrl.Close()
}

// StatusChanged обновляет строку статуса
func (gui *MainGUI) StatusChanged(status dashboard.Status, connectEnabled bool) {
	gui.toolbar.setStatus(status, connectEnabled)
}

// PeripheralAdded добавляет карточку устройства
func (gui *MainGUI) PeripheralAdded(w dashboard.Widget) {
	gui.devicePanel.add(w)
}

// PeripheralChanged обновляет значения карточки
func (gui *MainGUI) PeripheralChanged(w dashboard.Widget) {
	gui.devicePanel.update(w)
}

// PeripheralRemoved удаляет карточку устройства
func (gui *MainGUI) PeripheralRemoved(w dashboard.Widget) {
	gui.devicePanel.remove(w)
}

// PlaceholderChanged показывает или скрывает заглушку панели устройств
func (gui *MainGUI) PlaceholderChanged(text string) {
	gui.devicePanel.setPlaceholder(text)
}

// stopAllMotors останавливает все моторы
func (gui *MainGUI) stopAllMotors() {
	for _, w := range gui.ctrl.Peripherals() {
		if motor, ok := w.(*dashboard.MotorWidget); ok {
			motor.Stop()
			gui.devicePanel.update(motor)
		}
	}
}
