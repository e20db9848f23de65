package poweredup

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
	tinybluetooth "tinygo.org/x/bluetooth"
)

var (
	lwp3ServiceUUID  = mustParseUUID(LWP3_HUB_SERVICE_UUID)
	wedo2ServiceUUID = mustParseUUID(WEDO2_HUB_SERVICE_UUID)
)

func mustParseUUID(s string) tinybluetooth.UUID {
	uuid, err := tinybluetooth.ParseUUID(s)
	if err != nil {
		panic(err)
	}
	return uuid
}

// Scanner ищет хабы LEGO через BLE адаптер
type Scanner struct {
	adapter    *tinybluetooth.Adapter
	nameFilter string
	log        *zap.Logger

	enableMu sync.Mutex
	enabled  bool

	mu   sync.Mutex
	hubs map[string]*Hub
}

// NewScanner создает сканер. nameFilter ограничивает поиск хабами с этим именем.
func NewScanner(adapter *tinybluetooth.Adapter, nameFilter string, log *zap.Logger) *Scanner {
	if log == nil {
		log = zap.NewNop()
	}
	return &Scanner{
		adapter:    adapter,
		nameFilter: nameFilter,
		log:        log,
		hubs:       make(map[string]*Hub),
	}
}

// Enable включает адаптер. Повторный вызов после ошибки пробует снова.
func (s *Scanner) Enable() error {
	s.enableMu.Lock()
	defer s.enableMu.Unlock()

	if s.enabled {
		return nil
	}

	if err := s.adapter.Enable(); err != nil {
		return fmt.Errorf("не удалось включить Bluetooth адаптер: %w", err)
	}

	s.adapter.SetConnectHandler(func(device tinybluetooth.Device, connected bool) {
		if connected {
			return
		}
		s.mu.Lock()
		hub := s.hubs[device.Address.String()]
		s.mu.Unlock()
		if hub != nil {
			hub.handleDisconnect()
		}
	})

	s.enabled = true
	s.log.Info("Bluetooth адаптер включен")
	return nil
}

// Scan сканирует до отмены ctx. onHub вызывается для каждого нового хаба.
// Отмена контекста не считается ошибкой.
func (s *Scanner) Scan(ctx context.Context, onHub func(*Hub)) error {
	if err := ctx.Err(); err != nil {
		return nil
	}

	if err := s.Enable(); err != nil {
		return err
	}

	seen := make(map[string]bool)
	stop := context.AfterFunc(ctx, func() {
		if err := s.adapter.StopScan(); err != nil {
			s.log.Debug("Ошибка остановки сканирования", zap.Error(err))
		}
	})
	defer stop()

	s.log.Info("Сканирование хабов...")

	err := s.adapter.Scan(func(adapter *tinybluetooth.Adapter, result tinybluetooth.ScanResult) {
		if ctx.Err() != nil {
			return
		}

		address := result.Address.String()
		if seen[address] {
			return
		}

		info, ok := s.identify(result)
		if !ok {
			return
		}
		seen[address] = true

		s.log.Info("Найден хаб",
			zap.String("name", info.Name),
			zap.String("address", address),
			zap.String("kind", info.Kind),
			zap.Int("rssi", info.RSSI),
		)

		hub := newHub(info, adapter, result.Address, s.log)
		s.mu.Lock()
		s.hubs[address] = hub
		s.mu.Unlock()

		onHub(hub)
	})

	if ctx.Err() != nil {
		return nil
	}
	if err != nil {
		return fmt.Errorf("ошибка сканирования: %w", err)
	}
	return nil
}

// identify определяет, является ли найденное устройство хабом LEGO
func (s *Scanner) identify(result tinybluetooth.ScanResult) (HubInfo, bool) {
	name := result.LocalName()
	address := result.Address.String()

	info := HubInfo{
		Name:        name,
		Address:     address,
		RSSI:        int(result.RSSI),
		LastUpdated: time.Now(),
	}

	switch {
	case result.HasServiceUUID(lwp3ServiceUUID):
		info.Protocol = ProtocolLWP3
		info.Kind = "LEGO Hub"
		for _, md := range result.ManufacturerData() {
			if md.CompanyID == LEGO_COMPANY_ID && len(md.Data) > 1 {
				info.Kind = HubKindName(md.Data[1])
			}
		}
	case result.HasServiceUUID(wedo2ServiceUUID),
		isLegoName(name) && strings.HasPrefix(strings.ToUpper(address), "24:71:89:"):
		info.Protocol = ProtocolWeDo2
		info.Kind = HubKindName(0x00)
	default:
		return HubInfo{}, false
	}

	if s.nameFilter != "" && !strings.EqualFold(name, s.nameFilter) {
		s.log.Debug("Хаб пропущен фильтром имени", zap.String("name", name))
		return HubInfo{}, false
	}

	return info, true
}
