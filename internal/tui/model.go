// Package tui терминальный интерфейс панели хаба на bubbletea.
//
// Контроллер dashboard работает только внутри Update: обработчики,
// пришедшие из горутин BLE, складываются в очередь и выполняются
// по сообщению workMsg.
package tui

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"HubPanel/internal/dashboard"
)

const appTitle = "LEGO Hub Peripheral Panel"

// workMsg сообщает, что в очереди есть обработчики контроллера
type workMsg struct{}

// workQueue передает обработчики контроллера в цикл bubbletea
type workQueue struct {
	mu      sync.Mutex
	pending []func()
	wake    chan struct{}
}

func newWorkQueue() *workQueue {
	return &workQueue{wake: make(chan struct{}, 1)}
}

func (q *workQueue) Do(fn func()) {
	q.mu.Lock()
	q.pending = append(q.pending, fn)
	q.mu.Unlock()

	select {
	case q.wake <- struct{}{}:
	default:
	}
}

func (q *workQueue) Go(fn func()) { go fn() }

// drain выполняет обработчики, включая добавленные во время выполнения
func (q *workQueue) drain() {
	for {
		q.mu.Lock()
		batch := q.pending
		q.pending = nil
		q.mu.Unlock()

		if len(batch) == 0 {
			return
		}
		for _, fn := range batch {
			fn()
		}
	}
}

// wait ждет появления работы в очереди
func (q *workQueue) wait(ctx context.Context) tea.Cmd {
	return func() tea.Msg {
		select {
		case <-q.wake:
			return workMsg{}
		case <-ctx.Done():
			return nil
		}
	}
}

// Model модель терминальной панели
type Model struct {
	ctx   context.Context
	ctrl  *dashboard.Controller
	queue *workQueue
	log   *zap.Logger

	keys   keyMap
	help   help.Model
	cursor int
	width  int
}

var _ dashboard.View = (*Model)(nil)

// New создает модель с собственным контроллером
func New(ctx context.Context, scanner dashboard.Scanner, log *zap.Logger) *Model {
	if log == nil {
		log = zap.NewNop()
	}
	m := &Model{
		ctx:   ctx,
		queue: newWorkQueue(),
		log:   log,
		keys:  defaultKeyMap(),
		help:  help.New(),
	}
	m.ctrl = dashboard.NewController(scanner, m, m.queue, log.Named("controller"))
	return m
}

// Run запускает терминальный интерфейс и блокируется до выхода
func Run(ctx context.Context, scanner dashboard.Scanner, log *zap.Logger) error {
	m := New(ctx, scanner, log)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))

	_, err := p.Run()
	m.ctrl.Close()
	if err != nil && ctx.Err() == nil {
		return fmt.Errorf("ошибка терминального интерфейса: %w", err)
	}
	return nil
}

// Init начинает ожидание обработчиков контроллера
func (m *Model) Init() tea.Cmd {
	return m.queue.wait(m.ctx)
}

// Update обрабатывает сообщения bubbletea
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case workMsg:
		m.queue.drain()
		return m, m.queue.wait(m.ctx)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.log.Info("Выход из терминального интерфейса")
		m.ctrl.Close()
		return m, tea.Quit

	case key.Matches(msg, m.keys.Connect):
		m.ctrl.Connect(m.ctx)

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.ctrl.Peripherals())-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keys.Faster):
		if motor := m.selectedMotor(); motor != nil {
			motor.SetSpeed(motor.Speed() + dashboard.SpeedStep)
		}

	case key.Matches(msg, m.keys.Slower):
		if motor := m.selectedMotor(); motor != nil {
			motor.SetSpeed(motor.Speed() - dashboard.SpeedStep)
		}

	case key.Matches(msg, m.keys.Stop):
		if motor := m.selectedMotor(); motor != nil {
			motor.Stop()
		}

	case key.Matches(msg, m.keys.StopAll):
		m.stopAllMotors()

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}
	return m, nil
}

// selectedMotor возвращает выбранный виджет, если это мотор
func (m *Model) selectedMotor() *dashboard.MotorWidget {
	widgets := m.ctrl.Peripherals()
	if m.cursor < 0 || m.cursor >= len(widgets) {
		return nil
	}
	motor, _ := widgets[m.cursor].(*dashboard.MotorWidget)
	return motor
}

func (m *Model) stopAllMotors() {
	for _, w := range m.ctrl.Peripherals() {
		if motor, ok := w.(*dashboard.MotorWidget); ok {
			motor.Stop()
		}
	}
}

func (m *Model) clampCursor() {
	n := len(m.ctrl.Peripherals())
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// Интерфейс dashboard.View. Экран перерисовывается из состояния
// контроллера после каждого Update, поэтому здесь только курсор.

func (m *Model) StatusChanged(dashboard.Status, bool) {}
func (m *Model) PeripheralAdded(dashboard.Widget)     {}
func (m *Model) PeripheralChanged(dashboard.Widget)   {}
func (m *Model) PeripheralRemoved(dashboard.Widget)   { m.clampCursor() }
func (m *Model) PlaceholderChanged(string)            {}

// View отрисовывает панель
func (m *Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(appTitle))
	b.WriteString("\n")

	status := m.ctrl.Status()
	b.WriteString(statusStyle.Foreground(statusColor(status)).Render(status.Text))
	b.WriteString("\n\n")

	if text := m.ctrl.Placeholder(); text != "" {
		b.WriteString(placeholderStyle.Render(text))
		b.WriteString("\n")
	}

	for i, w := range m.ctrl.Peripherals() {
		style := cardStyle
		if i == m.cursor {
			style = selectedCardStyle
		}
		if m.width > 4 {
			style = style.Width(m.width - 4)
		}
		b.WriteString(style.Render(renderCard(w)))
		b.WriteString("\n")
	}

	b.WriteString(helpStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// renderCard отрисовывает содержимое карточки по типу виджета
func renderCard(w dashboard.Widget) string {
	title := cardTitleStyle.Render(w.Title())

	var body string
	switch w := w.(type) {
	case *dashboard.MotorWidget:
		body = fmt.Sprintf("Speed: %4d  %s", w.Speed(), speedBar(w.Speed()))
	case *dashboard.DistanceWidget:
		body = w.Text()
	case *dashboard.ColorWidget:
		body = w.Text()
	case *dashboard.TiltWidget:
		body = fmt.Sprintf("X Tilt: %s   Y Tilt: %s", w.X(), w.Y())
	case *dashboard.GenericWidget:
		body = w.Text() + "\n" + hintStyle.Render(w.Hint())
	default:
		body = "Unsupported device"
	}
	return lipgloss.JoinVertical(lipgloss.Left, title, body)
}

// speedBar рисует шкалу скорости от -100 до 100 с нулем в центре
func speedBar(speed int) string {
	const half = 10
	filled := speed * half / dashboard.MaxMotorSpeed
	if filled < 0 {
		filled = -filled
	}

	left := strings.Repeat(" ", half)
	right := strings.Repeat(" ", half)
	if speed < 0 {
		left = strings.Repeat(" ", half-filled) + strings.Repeat("=", filled)
	} else {
		right = strings.Repeat("=", filled) + strings.Repeat(" ", half-filled)
	}
	return "[" + left + "|" + right + "]"
}
