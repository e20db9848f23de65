package poweredup

import (
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Peripheral устройство, подключенное к порту хаба
type Peripheral interface {
	PortName() string
	TypeName() string
	Type() DeviceType
	// On подписывается на событие устройства. Возвращаемая функция снимает подписку.
	On(event string, fn func(Event)) (unsubscribe func())
}

// Motor устройство, принимающее команды мощности
type Motor interface {
	Peripheral
	SetPower(power int) error
	Brake() error
}

// ErrNotSupported устройство не поддерживает команду
var ErrNotSupported = errors.New("команда не поддерживается устройством")

// Device устройство на порту хаба
type Device struct {
	hub        *Hub
	portID     byte
	portName   string
	deviceType DeviceType
	events     *emitter
	self       Peripheral

	mu         sync.Mutex
	mode       byte
	hasMode    bool
	lastUpdate time.Time
}

// MotorDevice мотор на порту хаба
type MotorDevice struct {
	*Device
}

var (
	_ Peripheral = (*Device)(nil)
	_ Motor      = (*MotorDevice)(nil)
)

// newDevice создает устройство; моторы оборачиваются в MotorDevice
func newDevice(hub *Hub, portID byte, deviceType DeviceType) *Device {
	d := &Device{
		hub:        hub,
		portID:     portID,
		portName:   PortName(hub.proto, portID),
		deviceType: deviceType,
		events:     newEmitter(),
		lastUpdate: time.Now(),
	}

	if deviceType.IsMotor() {
		d.self = &MotorDevice{Device: d}
	} else {
		d.self = d
	}
	return d
}

// PortID возвращает номер порта
func (d *Device) PortID() byte {
	return d.portID
}

// PortName возвращает имя порта ("A", "B", "HUB_LED"...)
func (d *Device) PortName() string {
	return d.portName
}

// TypeName возвращает имя типа устройства
func (d *Device) TypeName() string {
	return d.deviceType.String()
}

// Type возвращает тип устройства
func (d *Device) Type() DeviceType {
	return d.deviceType
}

// LastUpdate возвращает время последнего значения от устройства
func (d *Device) LastUpdate() time.Time {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.lastUpdate
}

// On подписывается на событие. Первая подписка включает нужный режим сенсора.
func (d *Device) On(event string, fn func(Event)) func() {
	unsubscribe, first := d.events.on(event, fn)

	if first {
		if mode, ok := eventMode(d.deviceType, event); ok {
			d.subscribe(mode)
		}
	}

	return unsubscribe
}

// subscribe переключает устройство в режим и включает уведомления
func (d *Device) subscribe(mode byte) {
	d.mu.Lock()
	if d.hasMode && d.mode == mode {
		d.mu.Unlock()
		return
	}
	d.mode = mode
	d.hasMode = true
	d.mu.Unlock()

	cmd := EncodeInputFormat(d.hub.proto, d.portID, d.deviceType, mode)
	if err := d.hub.writeInput(cmd); err != nil {
		d.hub.log.Warn("Ошибка подписки на режим устройства",
			zap.String("port", d.portName),
			zap.Uint8("mode", mode),
			zap.Error(err),
		)
	}
}

// receive декодирует значение сенсора и рассылает события
func (d *Device) receive(payload []byte) {
	d.mu.Lock()
	mode, hasMode := d.mode, d.hasMode
	d.lastUpdate = time.Now()
	d.mu.Unlock()

	if !hasMode {
		return
	}

	for _, ev := range DecodeSensorValues(d.deviceType, mode, payload) {
		d.events.emit(ev)
	}
}

// SetPower устанавливает мощность мотора (-100..100)
func (m *MotorDevice) SetPower(power int) error {
	cmd := EncodeMotorPower(m.hub.proto, m.portID, power)

	m.hub.log.Debug("Установка мощности мотора",
		zap.String("port", m.portName),
		zap.Int("power", power),
	)
	return m.hub.writeOutput(cmd)
}

// Brake останавливает мотор с торможением
func (m *MotorDevice) Brake() error {
	return m.SetPower(BrakePower)
}
