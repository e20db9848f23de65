package main

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"HubPanel/internal/dashboard"
)

// Toolbar кнопка подключения и строка статуса
type Toolbar struct {
	gui           *MainGUI
	container     *fyne.Container
	connectButton *widget.Button
	statusLabel   *widget.Label
}

// NewToolbar создает новую панель инструментов
func NewToolbar(gui *MainGUI) *Toolbar {
	toolbar := &Toolbar{
		gui: gui,
	}

	toolbar.container = toolbar.buildUI()
	return toolbar
}

// GetContainer возвращает контейнер панели инструментов
func (t *Toolbar) GetContainer() fyne.CanvasObject {
	return t.container
}

// buildUI строит интерфейс панели инструментов
func (t *Toolbar) buildUI() *fyne.Container {
	t.connectButton = widget.NewButtonWithIcon("Connect to Hub", theme.SearchIcon(), func() {
		t.gui.connect()
	})
	t.connectButton.Importance = widget.HighImportance

	t.statusLabel = widget.NewLabel(dashboard.StatusDisconnected)
	t.statusLabel.Alignment = fyne.TextAlignCenter
	t.statusLabel.TextStyle.Bold = true
	t.statusLabel.Importance = widget.DangerImportance

	return container.NewVBox(
		container.NewHBox(
			t.connectButton,
			layout.NewSpacer(),
		),
		container.NewHBox(
			layout.NewSpacer(),
			t.statusLabel,
			layout.NewSpacer(),
		),
		widget.NewSeparator(),
	)
}

// setStatus обновляет строку статуса и доступность кнопки
func (t *Toolbar) setStatus(status dashboard.Status, connectEnabled bool) {
	t.statusLabel.Importance = statusImportance(status)
	t.statusLabel.SetText(status.Text)

	if connectEnabled {
		t.connectButton.Enable()
	} else {
		t.connectButton.Disable()
	}
}
