package dashboard

import (
	"context"

	"go.uber.org/zap"

	"HubPanel/internal/poweredup"
)

// Тексты статуса и заглушки панели устройств
const (
	StatusConnecting      = "Connecting..."
	StatusDisconnected    = "Disconnected"
	PlaceholderInitial    = "Connect to a hub to see peripherals"
	PlaceholderEmpty      = "No peripherals detected"
	PlaceholderNoDevice   = "Device disconnected"
	statusConnectedPrefix = "Connected to "
	statusErrorPrefix     = "Error: "
)

// State состояние подключения
type State int

const (
	StateDisconnected State = iota
	StateConnecting
	StateConnected
)

func (s State) String() string {
	switch s {
	case StateConnecting:
		return "connecting"
	case StateConnected:
		return "connected"
	default:
		return "disconnected"
	}
}

// Status текст статуса и его состояние для оформления
type Status struct {
	State State
	Text  string
}

// Loop выполняет работу в UI-контексте (Do) и вне его (Go)
type Loop interface {
	Do(fn func())
	Go(fn func())
}

// Hub хаб, которым управляет контроллер
type Hub interface {
	Name() string
	Connect(ctx context.Context) error
	Disconnect() error
	OnAttach(fn func(poweredup.Peripheral))
	OnDetach(fn func(poweredup.Peripheral))
	OnDisconnect(fn func())
}

// Scanner ищет хабы до отмены ctx
type Scanner interface {
	Scan(ctx context.Context, onHub func(Hub)) error
}

// View получает изменения состояния; вызывается только в UI-контексте
type View interface {
	StatusChanged(status Status, connectEnabled bool)
	PeripheralAdded(w Widget)
	PeripheralChanged(w Widget)
	PeripheralRemoved(w Widget)
	PlaceholderChanged(text string)
}

// Controller связывает хаб, реестр устройств и представление.
// Все методы вызываются в UI-контексте.
type Controller struct {
	scanner Scanner
	view    View
	loop    Loop
	log     *zap.Logger

	status         Status
	connectEnabled bool
	placeholder    string
	registry       *Registry

	hub        Hub
	attempt    int
	discovered bool
	cancel     context.CancelFunc
	cancelScan context.CancelFunc
}

// NewController создает контроллер в состоянии "не подключено"
func NewController(scanner Scanner, view View, loop Loop, log *zap.Logger) *Controller {
	if log == nil {
		log = zap.NewNop()
	}
	return &Controller{
		scanner:        scanner,
		view:           view,
		loop:           loop,
		log:            log,
		status:         Status{State: StateDisconnected, Text: StatusDisconnected},
		connectEnabled: true,
		placeholder:    PlaceholderInitial,
		registry:       NewRegistry(log.Named("registry")),
	}
}

// Status возвращает текущий статус
func (c *Controller) Status() Status {
	return c.status
}

// ConnectEnabled сообщает, доступна ли кнопка подключения
func (c *Controller) ConnectEnabled() bool {
	return c.connectEnabled
}

// Placeholder возвращает текст заглушки; пустая строка - заглушка скрыта
func (c *Controller) Placeholder() string {
	return c.placeholder
}

// Peripherals возвращает виджеты в порядке подключения
func (c *Controller) Peripherals() []Widget {
	return c.registry.Widgets()
}

// Hub возвращает текущий хаб или nil
func (c *Controller) Hub() Hub {
	return c.hub
}

// Connect начинает поиск хаба. Игнорируется, пока кнопка недоступна.
func (c *Controller) Connect(ctx context.Context) {
	if !c.connectEnabled {
		return
	}

	c.setStatus(StateConnecting, StatusConnecting, false)

	if c.cancel != nil {
		c.cancel()
	}
	c.attempt++
	attempt := c.attempt
	c.discovered = false

	attemptCtx, cancel := context.WithCancel(ctx)
	scanCtx, cancelScan := context.WithCancel(attemptCtx)
	c.cancel = cancel
	c.cancelScan = cancelScan

	c.log.Info("Сканирование устройств LEGO...")

	c.loop.Go(func() {
		err := c.scanner.Scan(scanCtx, func(h Hub) {
			c.loop.Do(func() { c.handleDiscover(attemptCtx, attempt, h) })
		})
		c.loop.Do(func() { c.handleScanDone(attempt, err) })
	})
}

// Close останавливает сканирование и отключает хаб
func (c *Controller) Close() {
	if c.cancelScan != nil {
		c.cancelScan()
	}
	if c.cancel != nil {
		c.cancel()
	}

	h := c.hub
	if h == nil {
		return
	}
	c.hub = nil

	c.log.Info("Отключение хаба при выходе", zap.String("hub", h.Name()))
	if err := h.Disconnect(); err != nil {
		c.log.Warn("Ошибка отключения", zap.Error(err))
	}
}

func (c *Controller) handleDiscover(ctx context.Context, attempt int, h Hub) {
	if attempt != c.attempt || c.discovered || c.status.State != StateConnecting {
		c.log.Debug("Найден дополнительный хаб, пропускаем", zap.String("hub", h.Name()))
		return
	}

	c.discovered = true
	c.cancelScan()
	c.hub = h

	c.log.Info("Найден хаб", zap.String("hub", h.Name()))

	c.loop.Go(func() {
		// Подписка до Connect: разрыв сразу после подключения не теряется
		h.OnDisconnect(func() {
			c.loop.Do(func() { c.handleDisconnect(h) })
		})
		err := h.Connect(ctx)
		c.loop.Do(func() { c.handleConnected(h, err) })
	})
}

func (c *Controller) handleScanDone(attempt int, err error) {
	if err == nil {
		return
	}
	if attempt != c.attempt || c.discovered || c.status.State != StateConnecting {
		c.log.Warn("Ошибка сканирования после обнаружения хаба", zap.Error(err))
		return
	}
	c.fail(err)
}

func (c *Controller) handleConnected(h Hub, err error) {
	if c.hub != h {
		return
	}

	if err != nil {
		c.hub = nil
		c.fail(err)
		return
	}

	c.log.Info("Подключено к хабу", zap.String("hub", h.Name()))
	c.setStatus(StateConnected, statusConnectedPrefix+h.Name(), false)

	c.removeAll()
	c.setPlaceholder(PlaceholderEmpty)

	h.OnAttach(func(p poweredup.Peripheral) {
		c.loop.Do(func() { c.handleAttach(h, p) })
	})
	h.OnDetach(func(p poweredup.Peripheral) {
		c.loop.Do(func() { c.handleDetach(h, p) })
	})
}

func (c *Controller) handleAttach(h Hub, p poweredup.Peripheral) {
	if c.hub != h {
		return
	}

	c.log.Info("Устройство подключено к порту",
		zap.String("port", p.PortName()),
		zap.String("type", p.TypeName()),
	)

	w, replaced := c.registry.Attach(p)
	if replaced != nil {
		c.view.PeripheralRemoved(replaced)
	}

	c.setPlaceholder("")
	c.view.PeripheralAdded(w)

	if events := w.events(); len(events) > 0 {
		c.loop.Go(func() { c.subscribe(h, p, w, events) })
	}
}

// subscribe подписывает виджет на события устройства. Первая подписка
// пишет в BLE, поэтому выполняется вне цикла интерфейса.
func (c *Controller) subscribe(h Hub, p poweredup.Peripheral, w Widget, events []string) {
	for _, event := range events {
		unsubscribe := p.On(event, func(ev poweredup.Event) {
			c.loop.Do(func() { c.handleEvent(h, w, event, ev) })
		})
		c.loop.Do(func() { c.keepSubscription(w, unsubscribe) })
	}
}

// keepSubscription сохраняет подписку, если виджет еще на экране
func (c *Controller) keepSubscription(w Widget, unsubscribe func()) {
	if current, ok := c.registry.Get(w.Port()); !ok || current != w {
		unsubscribe()
		return
	}
	w.base().addCloser(unsubscribe)
}

func (c *Controller) handleDetach(h Hub, p poweredup.Peripheral) {
	if c.hub != h {
		return
	}

	c.log.Info("Устройство отключено от порта", zap.String("port", p.PortName()))

	w, ok := c.registry.Detach(p.PortName())
	if !ok {
		return
	}
	c.view.PeripheralRemoved(w)

	if c.registry.Len() == 0 {
		c.setPlaceholder(PlaceholderEmpty)
	}
}

func (c *Controller) handleEvent(h Hub, w Widget, event string, ev poweredup.Event) {
	if c.hub != h {
		return
	}
	if current, ok := c.registry.Get(w.Port()); !ok || current != w {
		return
	}

	w.apply(event, ev)
	c.view.PeripheralChanged(w)
}

func (c *Controller) handleDisconnect(h Hub) {
	if c.hub != h {
		return
	}

	c.log.Info("Хаб отключен", zap.String("hub", h.Name()))

	c.hub = nil
	c.setStatus(StateDisconnected, StatusDisconnected, true)
	c.removeAll()
	c.setPlaceholder(PlaceholderNoDevice)
}

func (c *Controller) fail(err error) {
	c.log.Error("Ошибка подключения", zap.Error(err))

	if c.cancelScan != nil {
		c.cancelScan()
	}
	c.setStatus(StateDisconnected, statusErrorPrefix+err.Error(), true)
}

func (c *Controller) removeAll() {
	for _, w := range c.registry.Clear() {
		c.view.PeripheralRemoved(w)
	}
}

func (c *Controller) setStatus(state State, text string, connectEnabled bool) {
	c.status = Status{State: state, Text: text}
	c.connectEnabled = connectEnabled
	c.view.StatusChanged(c.status, connectEnabled)
}

func (c *Controller) setPlaceholder(text string) {
	if c.placeholder == text {
		return
	}
	c.placeholder = text
	c.view.PlaceholderChanged(text)
}

// NewScanner оборачивает BLE сканер в интерфейс контроллера
func NewScanner(s *poweredup.Scanner) Scanner {
	return bleScanner{s}
}

type bleScanner struct {
	scanner *poweredup.Scanner
}

func (s bleScanner) Scan(ctx context.Context, onHub func(Hub)) error {
	return s.scanner.Scan(ctx, func(h *poweredup.Hub) { onHub(h) })
}
