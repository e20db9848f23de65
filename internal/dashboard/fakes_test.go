package dashboard

import (
	"context"
	"sync"

	"HubPanel/internal/poweredup"
)

type syncLoop struct{}

func (syncLoop) Do(fn func()) { fn() }
func (syncLoop) Go(fn func()) { fn() }

// queueLoop откладывает Do до вызова drain
type queueLoop struct {
	queue []func()
}

func (l *queueLoop) Do(fn func()) { l.queue = append(l.queue, fn) }
func (l *queueLoop) Go(fn func()) { fn() }

func (l *queueLoop) drain() {
	for len(l.queue) > 0 {
		fn := l.queue[0]
		l.queue = l.queue[1:]
		fn()
	}
}

// step выполняет один отложенный Do
func (l *queueLoop) step() {
	fn := l.queue[0]
	l.queue = l.queue[1:]
	fn()
}

// deferLoop выполняет Do сразу, а Go откладывает до run
type deferLoop struct {
	pending []func()
}

func (l *deferLoop) Do(fn func()) { fn() }
func (l *deferLoop) Go(fn func()) { l.pending = append(l.pending, fn) }

func (l *deferLoop) run() {
	for len(l.pending) > 0 {
		fn := l.pending[0]
		l.pending = l.pending[1:]
		fn()
	}
}

type fakeScanner struct {
	calls int
	ctx   context.Context
	onHub func(Hub)
	hubs  []Hub
	err   error
}

func (s *fakeScanner) Scan(ctx context.Context, onHub func(Hub)) error {
	s.calls++
	s.ctx = ctx
	s.onHub = onHub
	for _, h := range s.hubs {
		onHub(h)
	}
	return s.err
}

type fakeHub struct {
	name            string
	connectErr      error
	connectCalls    int
	disconnectCalls int

	devices    []poweredup.Peripheral
	attach     []func(poweredup.Peripheral)
	detach     []func(poweredup.Peripheral)
	disconnect []func()
}

func (h *fakeHub) Name() string { return h.name }

func (h *fakeHub) Connect(context.Context) error {
	h.connectCalls++
	return h.connectErr
}

func (h *fakeHub) Disconnect() error {
	h.disconnectCalls++
	return nil
}

func (h *fakeHub) OnAttach(fn func(poweredup.Peripheral)) {
	h.attach = append(h.attach, fn)
	for _, d := range h.devices {
		fn(d)
	}
}

func (h *fakeHub) OnDetach(fn func(poweredup.Peripheral)) { h.detach = append(h.detach, fn) }
func (h *fakeHub) OnDisconnect(fn func())                 { h.disconnect = append(h.disconnect, fn) }
func (h *fakeHub) attachDevice(d poweredup.Peripheral)    { h.fire(h.attach, d) }
func (h *fakeHub) detachDevice(d poweredup.Peripheral)    { h.fire(h.detach, d) }

func (h *fakeHub) fire(listeners []func(poweredup.Peripheral), d poweredup.Peripheral) {
	for _, fn := range listeners {
		fn(d)
	}
}

func (h *fakeHub) drop() {
	for _, fn := range h.disconnect {
		fn()
	}
}

type fakeDevice struct {
	mu        sync.Mutex
	port      string
	typeName  string
	nextID    int
	listeners map[string]map[int]func(poweredup.Event)
}

func newFakeDevice(port, typeName string) *fakeDevice {
	return &fakeDevice{
		port:      port,
		typeName:  typeName,
		listeners: make(map[string]map[int]func(poweredup.Event)),
	}
}

func (d *fakeDevice) PortName() string           { return d.port }
func (d *fakeDevice) TypeName() string           { return d.typeName }
func (d *fakeDevice) Type() poweredup.DeviceType { return poweredup.DEVICE_TYPE_UNKNOWN }

func (d *fakeDevice) On(event string, fn func(poweredup.Event)) func() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.listeners[event] == nil {
		d.listeners[event] = make(map[int]func(poweredup.Event))
	}
	d.nextID++
	id := d.nextID
	d.listeners[event][id] = fn

	return func() {
		d.mu.Lock()
		defer d.mu.Unlock()
		delete(d.listeners[event], id)
	}
}

func (d *fakeDevice) emit(ev poweredup.Event) {
	d.mu.Lock()
	var fns []func(poweredup.Event)
	for _, fn := range d.listeners[ev.EventName()] {
		fns = append(fns, fn)
	}
	d.mu.Unlock()

	for _, fn := range fns {
		fn(ev)
	}
}

func (d *fakeDevice) count(event string) int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.listeners[event])
}

func (d *fakeDevice) total() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	n := 0
	for _, byID := range d.listeners {
		n += len(byID)
	}
	return n
}

type fakeMotor struct {
	*fakeDevice
	powers []int
	brakes int
	err    error
}

func newFakeMotor(port, typeName string) *fakeMotor {
	return &fakeMotor{fakeDevice: newFakeDevice(port, typeName)}
}

func (m *fakeMotor) SetPower(power int) error {
	m.powers = append(m.powers, power)
	return m.err
}

func (m *fakeMotor) Brake() error {
	m.brakes++
	return m.err
}

type fakeView struct {
	statuses     []Status
	enabled      []bool
	added        []string
	changed      []string
	removed      []string
	placeholders []string
}

func (v *fakeView) StatusChanged(status Status, connectEnabled bool) {
	v.statuses = append(v.statuses, status)
	v.enabled = append(v.enabled, connectEnabled)
}

func (v *fakeView) PeripheralAdded(w Widget)       { v.added = append(v.added, w.Port()) }
func (v *fakeView) PeripheralChanged(w Widget)     { v.changed = append(v.changed, w.Port()) }
func (v *fakeView) PeripheralRemoved(w Widget)     { v.removed = append(v.removed, w.Port()) }
func (v *fakeView) PlaceholderChanged(text string) { v.placeholders = append(v.placeholders, text) }
