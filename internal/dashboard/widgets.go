package dashboard

import (
	"fmt"
	"strconv"

	jsoniter "github.com/json-iterator/go"
	"go.uber.org/zap"

	"HubPanel/internal/poweredup"
)

// Kind тип виджета периферии
type Kind int

const (
	KindMotor Kind = iota
	KindDistance
	KindTilt
	KindColor
	KindGeneric
)

func (k Kind) String() string {
	switch k {
	case KindMotor:
		return "motor"
	case KindDistance:
		return "distance"
	case KindTilt:
		return "tilt"
	case KindColor:
		return "color"
	case KindGeneric:
		return "generic"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Тексты виджетов
const (
	NoValue        = "--"
	WaitingForData = "Waiting for data..."
	LimitedSupport = "This device type may have limited support. Check the log for events."
)

// Диапазон скорости мотора
const (
	MinMotorSpeed = -100
	MaxMotorSpeed = 100
	SpeedStep     = 10
)

// genericEvents события, на которые подписывается универсальный виджет
var genericEvents = []string{
	poweredup.EventDistance,
	poweredup.EventColor,
	poweredup.EventTilt,
	poweredup.EventRotate,
	poweredup.EventSpeed,
}

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Widget представление одного устройства на порту хаба.
// Состояние виджета меняется только в UI-контексте.
type Widget interface {
	Port() string
	TypeName() string
	Kind() Kind
	// Title заголовок карточки: "Port A: MEDIUM_LINEAR_MOTOR"
	Title() string

	base() *widgetBase
	events() []string
	apply(event string, ev poweredup.Event)
}

type widgetBase struct {
	device      poweredup.Peripheral
	port        string
	typeName    string
	kind        Kind
	unsubscribe []func()
}

func newWidgetBase(device poweredup.Peripheral, kind Kind) widgetBase {
	return widgetBase{
		device:   device,
		port:     device.PortName(),
		typeName: device.TypeName(),
		kind:     kind,
	}
}

func (b *widgetBase) Port() string       { return b.port }
func (b *widgetBase) TypeName() string   { return b.typeName }
func (b *widgetBase) Kind() Kind         { return b.kind }
func (b *widgetBase) base() *widgetBase  { return b }
func (b *widgetBase) events() []string   { return nil }
func (b *widgetBase) Title() string      { return fmt.Sprintf("Port %s: %s", b.port, b.typeName) }
func (b *widgetBase) addCloser(f func()) { b.unsubscribe = append(b.unsubscribe, f) }

func (b *widgetBase) apply(string, poweredup.Event) {}

// close снимает все подписки виджета
func (b *widgetBase) close() {
	for _, f := range b.unsubscribe {
		f()
	}
	b.unsubscribe = nil
}

// MotorWidget ползунок скорости и кнопка остановки
type MotorWidget struct {
	widgetBase
	log   *zap.Logger
	speed int
}

func newMotorWidget(device poweredup.Peripheral, log *zap.Logger) Widget {
	return &MotorWidget{widgetBase: newWidgetBase(device, KindMotor), log: log}
}

// Speed возвращает текущую скорость (-100..100)
func (w *MotorWidget) Speed() int {
	return w.speed
}

// SetSpeed устанавливает скорость и отправляет одну команду мощности.
// Устройство без поддержки моторов молча пропускается.
func (w *MotorWidget) SetSpeed(speed int) {
	w.speed = clamp(speed, MinMotorSpeed, MaxMotorSpeed)

	motor, ok := w.device.(poweredup.Motor)
	if !ok {
		return
	}
	if err := motor.SetPower(w.speed); err != nil {
		w.log.Warn("Ошибка установки мощности",
			zap.String("port", w.port),
			zap.Int("speed", w.speed),
			zap.Error(err),
		)
	}
}

// Stop сбрасывает скорость в 0 и тормозит мотор
func (w *MotorWidget) Stop() {
	w.speed = 0

	motor, ok := w.device.(poweredup.Motor)
	if !ok {
		return
	}
	if err := motor.Brake(); err != nil {
		w.log.Warn("Ошибка торможения", zap.String("port", w.port), zap.Error(err))
	}
}

// DistanceWidget показывает расстояние
type DistanceWidget struct {
	widgetBase
	text string
}

func newDistanceWidget(device poweredup.Peripheral, _ *zap.Logger) Widget {
	return &DistanceWidget{widgetBase: newWidgetBase(device, KindDistance), text: "Distance: " + NoValue}
}

func (w *DistanceWidget) Text() string     { return w.text }
func (w *DistanceWidget) events() []string { return []string{poweredup.EventDistance} }

func (w *DistanceWidget) apply(_ string, ev poweredup.Event) {
	w.text = "Distance: " + ev.String()
}

// TiltWidget показывает наклон по осям X и Y
type TiltWidget struct {
	widgetBase
	x, y string
}

func newTiltWidget(device poweredup.Peripheral, _ *zap.Logger) Widget {
	return &TiltWidget{widgetBase: newWidgetBase(device, KindTilt), x: NoValue, y: NoValue}
}

func (w *TiltWidget) X() string        { return w.x }
func (w *TiltWidget) Y() string        { return w.y }
func (w *TiltWidget) events() []string { return []string{poweredup.EventTilt} }

func (w *TiltWidget) apply(_ string, ev poweredup.Event) {
	tilt, ok := ev.(poweredup.TiltEvent)
	if !ok {
		return
	}
	w.x = strconv.Itoa(tilt.X)
	w.y = strconv.Itoa(tilt.Y)
}

// ColorWidget показывает распознанный цвет
type ColorWidget struct {
	widgetBase
	text string
}

func newColorWidget(device poweredup.Peripheral, _ *zap.Logger) Widget {
	return &ColorWidget{widgetBase: newWidgetBase(device, KindColor), text: "Color: " + NoValue}
}

func (w *ColorWidget) Text() string     { return w.text }
func (w *ColorWidget) events() []string { return []string{poweredup.EventColor} }

func (w *ColorWidget) apply(_ string, ev poweredup.Event) {
	w.text = "Color: " + ev.String()
}

// GenericWidget показывает последнее событие любого из известных типов
type GenericWidget struct {
	widgetBase
	log  *zap.Logger
	text string
}

func newGenericWidget(device poweredup.Peripheral, log *zap.Logger) Widget {
	return &GenericWidget{widgetBase: newWidgetBase(device, KindGeneric), log: log, text: WaitingForData}
}

func (w *GenericWidget) Text() string     { return w.text }
func (w *GenericWidget) Hint() string     { return LimitedSupport }
func (w *GenericWidget) events() []string { return genericEvents }

func (w *GenericWidget) apply(event string, ev poweredup.Event) {
	payload, err := json.MarshalToString(eventValue(ev))
	if err != nil {
		payload = ev.String()
	}

	w.log.Debug("Событие устройства",
		zap.String("port", w.port),
		zap.String("event", event),
		zap.String("value", payload),
	)
	w.text = event + ": " + payload
}

// eventValue возвращает значение события в виде, пригодном для JSON
func eventValue(ev poweredup.Event) any {
	switch e := ev.(type) {
	case poweredup.DistanceEvent:
		return e.Distance
	case poweredup.ColorEvent:
		return e.Color
	case poweredup.RotateEvent:
		return e.Degrees
	case poweredup.SpeedEvent:
		return e.Speed
	default:
		return ev
	}
}

func clamp(value, min, max int) int {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}
