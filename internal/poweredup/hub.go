package poweredup

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sort"
	"sync"
	"time"

	"go.uber.org/zap"
	tinybluetooth "tinygo.org/x/bluetooth"

	"HubPanel/internal/logging"
)

// Ошибки хаба
var (
	ErrNotConnected           = errors.New("не подключено к хабу")
	ErrCharacteristicNotFound = errors.New("характеристика не найдена")
)

// Hub подключение к хабу LEGO
type Hub struct {
	info    HubInfo
	proto   Protocol
	adapter *tinybluetooth.Adapter
	address tinybluetooth.Address
	log     *zap.Logger

	connectionMutex sync.RWMutex
	device          tinybluetooth.Device
	isConnected     bool
	characteristics map[string]tinybluetooth.DeviceCharacteristic
	// write отправляет данные в характеристику; подменяется в тестах
	write func(uuid string, data []byte) error

	// mu защищает devices и списки подписчиков
	mu                  sync.Mutex
	devices             map[byte]*Device
	attachListeners     []func(Peripheral)
	detachListeners     []func(Peripheral)
	disconnectListeners []func()
}

// newHub создает хаб для обнаруженного устройства
func newHub(info HubInfo, adapter *tinybluetooth.Adapter, address tinybluetooth.Address, log *zap.Logger) *Hub {
	if log == nil {
		log = zap.NewNop()
	}

	h := &Hub{
		info:            info,
		proto:           info.Protocol,
		adapter:         adapter,
		address:         address,
		log:             log.With(zap.String("hub", info.Name), zap.String("address", info.Address)),
		characteristics: make(map[string]tinybluetooth.DeviceCharacteristic),
		devices:         make(map[byte]*Device),
	}
	h.write = h.WriteCharacteristic
	return h
}

// Name возвращает имя хаба
func (h *Hub) Name() string {
	if h.info.Name != "" {
		return h.info.Name
	}
	return h.info.Kind
}

// Info возвращает копию информации о хабе
func (h *Hub) Info() HubInfo {
	return h.info
}

// Protocol возвращает протокол хаба
func (h *Hub) Protocol() Protocol {
	return h.proto
}

// IsConnected возвращает статус подключения
func (h *Hub) IsConnected() bool {
	h.connectionMutex.RLock()
	defer h.connectionMutex.RUnlock()
	return h.isConnected
}

// Connect подключается к хабу, обнаруживает характеристики и включает уведомления
func (h *Hub) Connect(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	h.connectionMutex.Lock()
	if h.isConnected {
		h.connectionMutex.Unlock()
		return nil
	}

	h.log.Info("Подключение к хабу", zap.Stringer("protocol", h.proto))

	device, err := h.adapter.Connect(h.address, tinybluetooth.ConnectionParams{})
	if err != nil {
		h.connectionMutex.Unlock()
		return fmt.Errorf("ошибка подключения к %s: %w", h.Name(), err)
	}
	h.device = device

	if err := h.discoverAllServices(); err != nil {
		h.connectionMutex.Unlock()
		_ = device.Disconnect()
		return err
	}

	h.isConnected = true
	h.info.LastUpdated = time.Now()
	h.connectionMutex.Unlock()

	// Ошибка подключения возвращается вызывающему, подписчики разрыва не уведомляются
	if err := h.subscribeNotifications(); err != nil {
		h.connectionMutex.Lock()
		h.isConnected = false
		h.connectionMutex.Unlock()
		_ = device.Disconnect()
		return err
	}

	h.log.Info("Подключено к хабу")
	return nil
}

// discoverAllServices обнаруживает все службы и характеристики
func (h *Hub) discoverAllServices() error {
	services, err := h.device.DiscoverServices(nil)
	if err != nil {
		return fmt.Errorf("ошибка обнаружения служб: %w", err)
	}

	for _, service := range services {
		chars, err := service.DiscoverCharacteristics(nil)
		if err != nil {
			h.log.Warn("Ошибка обнаружения характеристик",
				zap.String("service", service.UUID().String()),
				zap.Error(err),
			)
			continue
		}

		for _, char := range chars {
			h.characteristics[char.UUID().String()] = char
		}
	}

	h.log.Debug("Обнаружены характеристики",
		zap.Int("services", len(services)),
		zap.Int("characteristics", len(h.characteristics)),
	)
	return nil
}

// subscribeNotifications включает уведомления, нужные протоколу хаба
func (h *Hub) subscribeNotifications() error {
	subscriptions := map[string]func([]byte){
		LWP3_HUB_CHARACTERISTIC: h.handleLWP3Message,
	}
	if h.proto == ProtocolWeDo2 {
		subscriptions = map[string]func([]byte){
			WEDO2_PORT_TYPE_UUID:    h.handleWeDo2PortType,
			WEDO2_SENSOR_VALUE_UUID: h.handleWeDo2SensorValue,
		}
	}

	for uuid, handler := range subscriptions {
		h.connectionMutex.RLock()
		char, exists := h.characteristics[uuid]
		h.connectionMutex.RUnlock()

		if !exists {
			return fmt.Errorf("%w: %s", ErrCharacteristicNotFound, uuid)
		}
		if err := char.EnableNotifications(handler); err != nil {
			return fmt.Errorf("ошибка подписки на %s: %w", uuid, err)
		}
	}
	return nil
}

// handleLWP3Message обрабатывает уведомление LWP3
func (h *Hub) handleLWP3Message(data []byte) {
	h.log.Debug("Сообщение LWP3", logging.HexBytes("data", data))

	if len(data) < 3 {
		return
	}

	switch data[2] {
	case MESSAGE_HUB_ATTACHED_IO:
		if msg, ok := ParseLWP3AttachedIO(data); ok {
			h.handlePortMessage(msg)
		}
	case MESSAGE_PORT_VALUE_SINGLE:
		if portID, payload, ok := ParseLWP3PortValue(data); ok {
			h.dispatchValue(portID, payload)
		}
	case MESSAGE_GENERIC_ERROR:
		h.log.Warn("Хаб сообщил об ошибке", logging.HexBytes("data", data))
	}
}

// handleWeDo2PortType обрабатывает уведомление о портах WeDo 2.0
func (h *Hub) handleWeDo2PortType(data []byte) {
	h.log.Debug("Уведомление порта WeDo 2.0", logging.HexBytes("data", data))

	if msg, ok := ParseWeDo2PortType(data); ok {
		h.handlePortMessage(msg)
	}
}

// handleWeDo2SensorValue обрабатывает значения сенсоров WeDo 2.0
func (h *Hub) handleWeDo2SensorValue(data []byte) {
	if portID, payload, ok := ParseWeDo2SensorValue(data); ok {
		h.dispatchValue(portID, payload)
	}
}

// handlePortMessage обрабатывает подключение или отключение устройства
func (h *Hub) handlePortMessage(msg *PortMessage) {
	if msg.Attached {
		h.handleDeviceConnection(msg.PortID, msg.DeviceType)
	} else {
		h.handleDeviceDisconnection(msg.PortID)
	}
}

// handleDeviceConnection регистрирует устройство и уведомляет подписчиков
func (h *Hub) handleDeviceConnection(portID byte, deviceType DeviceType) {
	device := newDevice(h, portID, deviceType)

	h.log.Info("Устройство подключено",
		zap.String("port", device.PortName()),
		zap.String("type", device.TypeName()),
	)

	h.mu.Lock()
	previous := h.devices[portID]
	h.devices[portID] = device
	attach := slices.Clone(h.attachListeners)
	detach := slices.Clone(h.detachListeners)
	h.mu.Unlock()

	if previous != nil {
		for _, fn := range detach {
			fn(previous.self)
		}
		previous.events.removeAll()
	}

	for _, fn := range attach {
		fn(device.self)
	}
}

// handleDeviceDisconnection удаляет устройство и снимает его подписки
func (h *Hub) handleDeviceDisconnection(portID byte) {
	h.mu.Lock()
	device, exists := h.devices[portID]
	delete(h.devices, portID)
	detach := slices.Clone(h.detachListeners)
	h.mu.Unlock()

	if !exists {
		return
	}

	h.log.Info("Устройство отключено", zap.String("port", device.PortName()))

	for _, fn := range detach {
		fn(device.self)
	}
	device.events.removeAll()
}

// dispatchValue передает значение устройству на порту
func (h *Hub) dispatchValue(portID byte, payload []byte) {
	h.mu.Lock()
	device, exists := h.devices[portID]
	h.mu.Unlock()

	if exists {
		device.receive(payload)
	}
}

// handleDisconnect обрабатывает разрыв соединения
func (h *Hub) handleDisconnect() {
	h.connectionMutex.Lock()
	if !h.isConnected {
		h.connectionMutex.Unlock()
		return
	}
	h.isConnected = false
	h.connectionMutex.Unlock()

	h.log.Info("Хаб отключен")

	h.mu.Lock()
	devices := h.devices
	h.devices = make(map[byte]*Device)
	listeners := slices.Clone(h.disconnectListeners)
	h.mu.Unlock()

	for _, device := range devices {
		device.events.removeAll()
	}

	for _, fn := range listeners {
		fn()
	}
}

// Disconnect отключается от хаба
func (h *Hub) Disconnect() error {
	h.connectionMutex.RLock()
	connected := h.isConnected
	device := h.device
	h.connectionMutex.RUnlock()

	if !connected {
		return nil
	}

	h.log.Info("Отключение от хаба...")

	var err error
	if h.adapter != nil {
		err = device.Disconnect()
	}
	h.handleDisconnect()

	if err != nil {
		return fmt.Errorf("ошибка отключения: %w", err)
	}
	return nil
}

// OnAttach подписывается на подключение устройств.
// Уже подключенные устройства передаются подписчику сразу.
func (h *Hub) OnAttach(fn func(Peripheral)) {
	h.mu.Lock()
	h.attachListeners = append(h.attachListeners, fn)
	current := make([]*Device, 0, len(h.devices))
	for _, device := range h.devices {
		current = append(current, device)
	}
	h.mu.Unlock()

	sort.Slice(current, func(i, j int) bool { return current[i].portID < current[j].portID })
	for _, device := range current {
		fn(device.self)
	}
}

// OnDetach подписывается на отключение устройств
func (h *Hub) OnDetach(fn func(Peripheral)) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.detachListeners = append(h.detachListeners, fn)
}

// OnDisconnect подписывается на разрыв соединения с хабом
func (h *Hub) OnDisconnect(fn func()) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.disconnectListeners = append(h.disconnectListeners, fn)
}

// Devices возвращает подключенные устройства, упорядоченные по порту
func (h *Hub) Devices() []Peripheral {
	h.mu.Lock()
	devices := make([]*Device, 0, len(h.devices))
	for _, device := range h.devices {
		devices = append(devices, device)
	}
	h.mu.Unlock()

	sort.Slice(devices, func(i, j int) bool { return devices[i].portID < devices[j].portID })

	result := make([]Peripheral, len(devices))
	for i, device := range devices {
		result[i] = device.self
	}
	return result
}

// writeInput отправляет команду настройки порта
func (h *Hub) writeInput(data []byte) error {
	switch h.proto {
	case ProtocolLWP3:
		return h.write(LWP3_HUB_CHARACTERISTIC, data)
	case ProtocolWeDo2:
		return h.write(WEDO2_INPUT_COMMAND_UUID, data)
	default:
		return ErrNotSupported
	}
}

// writeOutput отправляет команду управления устройством
func (h *Hub) writeOutput(data []byte) error {
	switch h.proto {
	case ProtocolLWP3:
		return h.write(LWP3_HUB_CHARACTERISTIC, data)
	case ProtocolWeDo2:
		return h.write(WEDO2_OUTPUT_COMMAND_UUID, data)
	default:
		return ErrNotSupported
	}
}

// WriteCharacteristic записывает данные в характеристику
func (h *Hub) WriteCharacteristic(uuid string, data []byte) error {
	h.connectionMutex.RLock()
	defer h.connectionMutex.RUnlock()

	if !h.isConnected {
		return ErrNotConnected
	}

	char, exists := h.characteristics[uuid]
	if !exists {
		return fmt.Errorf("%w: %s", ErrCharacteristicNotFound, uuid)
	}

	if _, err := char.WriteWithoutResponse(data); err != nil {
		return fmt.Errorf("ошибка отправки данных: %w", err)
	}

	h.log.Debug("Данные отправлены", zap.String("uuid", uuid), logging.HexBytes("data", data))
	return nil
}
