package main

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"HubPanel/internal/dashboard"
)

// DevicePanel панель карточек подключенных устройств
type DevicePanel struct {
	gui         *MainGUI
	scroll      *container.Scroll
	list        *fyne.Container
	placeholder *widget.Label
	cards       map[string]*deviceCard
}

// deviceCard карточка одного виджета
type deviceCard struct {
	widget  dashboard.Widget
	object  fyne.CanvasObject
	refresh func()
}

// NewDevicePanel создает новую панель устройств
func NewDevicePanel(gui *MainGUI) *DevicePanel {
	panel := &DevicePanel{
		gui:   gui,
		cards: make(map[string]*deviceCard),
	}

	panel.placeholder = widget.NewLabel(dashboard.PlaceholderInitial)
	panel.placeholder.Alignment = fyne.TextAlignCenter
	panel.placeholder.TextStyle.Italic = true

	panel.list = container.NewVBox(panel.placeholder)

	title := canvas.NewText("Peripherals", foregroundColor)
	title.TextSize = 16
	title.TextStyle.Bold = true
	title.Alignment = fyne.TextAlignCenter

	panel.scroll = container.NewVScroll(container.NewPadded(container.NewVBox(
		title,
		widget.NewSeparator(),
		panel.list,
	)))
	panel.scroll.SetMinSize(fyne.NewSize(300, 400))

	return panel
}

// GetContainer возвращает контейнер панели
func (p *DevicePanel) GetContainer() fyne.CanvasObject {
	return p.scroll
}

// setPlaceholder показывает заглушку; пустой текст скрывает ее
func (p *DevicePanel) setPlaceholder(text string) {
	if text == "" {
		p.placeholder.Hide()
		return
	}
	p.placeholder.SetText(text)
	p.placeholder.Show()
}

// add добавляет карточку виджета в конец списка
func (p *DevicePanel) add(w dashboard.Widget) {
	card := p.createDeviceCard(w)
	p.cards[w.Port()] = card
	p.list.Add(card.object)
}

// remove удаляет карточку виджета
func (p *DevicePanel) remove(w dashboard.Widget) {
	card, exists := p.cards[w.Port()]
	if !exists || card.widget != w {
		return
	}
	p.list.Remove(card.object)
	delete(p.cards, w.Port())
}

// update перерисовывает значения карточки
func (p *DevicePanel) update(w dashboard.Widget) {
	card, exists := p.cards[w.Port()]
	if !exists || card.widget != w {
		return
	}
	card.refresh()
}

// createDeviceCard создает карточку устройства
func (p *DevicePanel) createDeviceCard(w dashboard.Widget) *deviceCard {
	title := widget.NewLabel(w.Title())
	title.TextStyle.Bold = true

	header := container.NewHBox(
		widget.NewIcon(kindIcon(w.Kind())),
		title,
		layout.NewSpacer(),
	)

	body, refresh := p.createDeviceBody(w)

	card := container.NewVBox(header, widget.NewSeparator(), body)

	object := container.NewStack(
		&canvas.Rectangle{
			FillColor:   cardFillColor,
			StrokeColor: cardStrokeColor,
			StrokeWidth: 1,
		},
		container.NewPadded(card),
	)

	return &deviceCard{widget: w, object: object, refresh: refresh}
}

// createDeviceBody создает содержимое карточки по типу виджета
func (p *DevicePanel) createDeviceBody(w dashboard.Widget) (fyne.CanvasObject, func()) {
	switch w := w.(type) {
	case *dashboard.MotorWidget:
		return p.createMotorControls(w)
	case *dashboard.DistanceWidget:
		return createValueLabel(w.Text)
	case *dashboard.ColorWidget:
		return createValueLabel(w.Text)
	case *dashboard.TiltWidget:
		return createTiltDisplay(w)
	case *dashboard.GenericWidget:
		return createGenericDisplay(w)
	default:
		return widget.NewLabel("Unsupported device"), func() {}
	}
}

// createMotorControls создает ползунок скорости и кнопку остановки
func (p *DevicePanel) createMotorControls(w *dashboard.MotorWidget) (fyne.CanvasObject, func()) {
	speedSlider := widget.NewSlider(dashboard.MinMotorSpeed, dashboard.MaxMotorSpeed)
	speedSlider.Step = 1
	speedSlider.Value = float64(w.Speed())

	valueLabel := widget.NewLabel(fmt.Sprintf("%d", w.Speed()))

	// updating подавляет OnChanged при программной установке значения
	updating := false
	refresh := func() {
		updating = true
		speedSlider.SetValue(float64(w.Speed()))
		updating = false
		valueLabel.SetText(fmt.Sprintf("%d", w.Speed()))
	}

	speedSlider.OnChanged = func(value float64) {
		if updating {
			return
		}
		w.SetSpeed(int(value))
		valueLabel.SetText(fmt.Sprintf("%d", w.Speed()))
	}

	stopButton := widget.NewButtonWithIcon("Stop", theme.MediaStopIcon(), func() {
		w.Stop()
		refresh()
	})
	stopButton.Importance = widget.DangerImportance

	controls := container.NewVBox(
		container.NewBorder(nil, nil, widget.NewLabel("Speed:"), valueLabel, speedSlider),
		container.NewHBox(stopButton),
	)
	return controls, refresh
}

// createValueLabel создает строку значения сенсора
func createValueLabel(text func() string) (fyne.CanvasObject, func()) {
	label := widget.NewLabel(text())
	label.TextStyle.Monospace = true
	return label, func() { label.SetText(text()) }
}

// createTiltDisplay создает сетку значений наклона
func createTiltDisplay(w *dashboard.TiltWidget) (fyne.CanvasObject, func()) {
	xValue := widget.NewLabel(w.X())
	yValue := widget.NewLabel(w.Y())
	xValue.TextStyle.Monospace = true
	yValue.TextStyle.Monospace = true

	grid := container.NewGridWithColumns(2,
		container.NewVBox(widget.NewLabel("X Tilt"), xValue),
		container.NewVBox(widget.NewLabel("Y Tilt"), yValue),
	)

	return grid, func() {
		xValue.SetText(w.X())
		yValue.SetText(w.Y())
	}
}

// createGenericDisplay создает строку последнего события и подсказку
func createGenericDisplay(w *dashboard.GenericWidget) (fyne.CanvasObject, func()) {
	value, refresh := createValueLabel(w.Text)

	hint := canvas.NewText(w.Hint(), hintColor)
	hint.TextSize = 12
	hint.TextStyle.Italic = true

	return container.NewVBox(value, hint), refresh
}
