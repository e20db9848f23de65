package poweredup

import (
	"fmt"
	"sort"
	"strconv"
	"sync"
)

// Имена событий устройств
const (
	EventDistance = "distance"
	EventColor    = "color"
	EventTilt     = "tilt"
	EventRotate   = "rotate"
	EventSpeed    = "speed"
)

// Event значение, пришедшее от сенсора или мотора
type Event interface {
	fmt.Stringer
	EventName() string
}

// DistanceEvent расстояние в миллиметрах
type DistanceEvent struct {
	Distance int `json:"distance"`
}

func (e DistanceEvent) EventName() string { return EventDistance }
func (e DistanceEvent) String() string    { return strconv.Itoa(e.Distance) }

// ColorEvent цвет, распознанный датчиком
type ColorEvent struct {
	Color Color `json:"color"`
}

func (e ColorEvent) EventName() string { return EventColor }
func (e ColorEvent) String() string    { return e.Color.String() }

// TiltEvent углы наклона в градусах; Z есть только у хабов Technic
type TiltEvent struct {
	X int `json:"x"`
	Y int `json:"y"`
	Z int `json:"z"`
}

func (e TiltEvent) EventName() string { return EventTilt }
func (e TiltEvent) String() string    { return fmt.Sprintf("x=%d y=%d z=%d", e.X, e.Y, e.Z) }

// RotateEvent абсолютный угол поворота мотора
type RotateEvent struct {
	Degrees int `json:"degrees"`
}

func (e RotateEvent) EventName() string { return EventRotate }
func (e RotateEvent) String() string    { return strconv.Itoa(e.Degrees) }

// SpeedEvent скорость мотора или спидометра
type SpeedEvent struct {
	Speed int `json:"speed"`
}

func (e SpeedEvent) EventName() string { return EventSpeed }
func (e SpeedEvent) String() string    { return strconv.Itoa(e.Speed) }

// Color индексный цвет LEGO
type Color byte

const (
	COLOR_BLACK      Color = 0
	COLOR_PINK       Color = 1
	COLOR_PURPLE     Color = 2
	COLOR_BLUE       Color = 3
	COLOR_LIGHT_BLUE Color = 4
	COLOR_CYAN       Color = 5
	COLOR_GREEN      Color = 6
	COLOR_YELLOW     Color = 7
	COLOR_ORANGE     Color = 8
	COLOR_RED        Color = 9
	COLOR_WHITE      Color = 10
	COLOR_NONE       Color = 255
)

var colorNames = map[Color]string{
	COLOR_BLACK:      "BLACK",
	COLOR_PINK:       "PINK",
	COLOR_PURPLE:     "PURPLE",
	COLOR_BLUE:       "BLUE",
	COLOR_LIGHT_BLUE: "LIGHT_BLUE",
	COLOR_CYAN:       "CYAN",
	COLOR_GREEN:      "GREEN",
	COLOR_YELLOW:     "YELLOW",
	COLOR_ORANGE:     "ORANGE",
	COLOR_RED:        "RED",
	COLOR_WHITE:      "WHITE",
	COLOR_NONE:       "NONE",
}

func (c Color) String() string {
	if name, ok := colorNames[c]; ok {
		return name
	}
	return fmt.Sprintf("COLOR_%d", byte(c))
}

// MarshalText позволяет выводить цвет по имени в JSON
func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// emitter хранит подписчиков событий устройства
type emitter struct {
	mu        sync.RWMutex
	nextID    int
	listeners map[string]map[int]func(Event)
}

func newEmitter() *emitter {
	return &emitter{listeners: make(map[string]map[int]func(Event))}
}

// on добавляет подписчика и возвращает функцию отписки
func (e *emitter) on(event string, fn func(Event)) (unsubscribe func(), first bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	byID, ok := e.listeners[event]
	if !ok {
		byID = make(map[int]func(Event))
		e.listeners[event] = byID
	}
	first = len(byID) == 0

	e.nextID++
	id := e.nextID
	byID[id] = fn

	var once sync.Once
	return func() {
		once.Do(func() {
			e.mu.Lock()
			defer e.mu.Unlock()
			if byID, ok := e.listeners[event]; ok {
				delete(byID, id)
			}
		})
	}, first
}

// emit вызывает подписчиков в порядке подписки
func (e *emitter) emit(ev Event) {
	e.mu.RLock()
	byID := e.listeners[ev.EventName()]
	ids := make([]int, 0, len(byID))
	for id := range byID {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	fns := make([]func(Event), 0, len(ids))
	for _, id := range ids {
		fns = append(fns, byID[id])
	}
	e.mu.RUnlock()

	for _, fn := range fns {
		fn(ev)
	}
}

// count возвращает число подписчиков события
func (e *emitter) count(event string) int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return len(e.listeners[event])
}

// removeAll удаляет всех подписчиков
func (e *emitter) removeAll() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.listeners = make(map[string]map[int]func(Event))
}
