package poweredup

import (
	"encoding/binary"
	"math"
)

// PortMessage сообщение о подключении или отключении устройства
type PortMessage struct {
	PortID     byte
	Attached   bool
	DeviceType DeviceType
}

// ParseLWP3AttachedIO разбирает сообщение Hub Attached I/O (0x04)
func ParseLWP3AttachedIO(data []byte) (*PortMessage, bool) {
	if len(data) < 5 || data[2] != MESSAGE_HUB_ATTACHED_IO {
		return nil, false
	}

	msg := &PortMessage{PortID: data[3]}

	switch data[4] {
	case IO_EVENT_DETACHED:
		return msg, true
	case IO_EVENT_ATTACHED, IO_EVENT_ATTACHED_VIRTUAL:
		if len(data) < 7 {
			return nil, false
		}
		msg.Attached = true
		msg.DeviceType = DeviceType(binary.LittleEndian.Uint16(data[5:7]))
		return msg, true
	default:
		return nil, false
	}
}

// ParseWeDo2PortType разбирает уведомление характеристики типа порта WeDo 2.0
func ParseWeDo2PortType(data []byte) (*PortMessage, bool) {
	if len(data) < 2 {
		return nil, false
	}

	msg := &PortMessage{
		PortID:   data[0],
		Attached: data[1] == 0x01,
	}

	if msg.Attached {
		if len(data) < 4 {
			return nil, false
		}
		msg.DeviceType = DeviceType(data[3])
	}

	return msg, true
}

// ParseLWP3PortValue возвращает порт и данные из Port Value Single (0x45)
func ParseLWP3PortValue(data []byte) (portID byte, payload []byte, ok bool) {
	if len(data) < 5 || data[2] != MESSAGE_PORT_VALUE_SINGLE {
		return 0, nil, false
	}
	return data[3], data[4:], true
}

// ParseWeDo2SensorValue возвращает порт и данные из уведомления значений сенсора
func ParseWeDo2SensorValue(data []byte) (portID byte, payload []byte, ok bool) {
	if len(data) < 3 {
		return 0, nil, false
	}
	return data[1], data[2:], true
}

// DecodeSensorValues декодирует значения сенсора в события.
// payload начинается сразу после номера порта.
func DecodeSensorValues(deviceType DeviceType, mode byte, payload []byte) []Event {
	switch {
	case deviceType == DEVICE_TYPE_MOTION_SENSOR && mode == MODE_MOTION_DISTANCE:
		if len(payload) < 1 {
			return nil
		}
		distance := int(payload[0])
		if len(payload) > 1 && payload[1] == 0x01 {
			distance += 255
		}
		return []Event{DistanceEvent{Distance: distance * 10}}

	case deviceType == DEVICE_TYPE_COLOR_DISTANCE_SENSOR && mode == MODE_COLOR_DISTANCE_COMBO:
		if len(payload) < 2 {
			return nil
		}
		var events []Event
		if payload[0] <= byte(COLOR_WHITE) {
			events = append(events, ColorEvent{Color: Color(payload[0])})
		}
		distance := float64(payload[1])
		if len(payload) > 3 && payload[3] > 0 {
			distance += 1 / float64(payload[3])
		}
		// дюймы -> миллиметры
		events = append(events, DistanceEvent{Distance: int(math.Floor(distance*25.4)) - 20})
		return events

	case deviceType == DEVICE_TYPE_TILT_SENSOR && mode == MODE_TILT_ANGLE:
		if len(payload) < 2 {
			return nil
		}
		return []Event{TiltEvent{X: int(int8(payload[0])), Y: int(int8(payload[1]))}}

	case deviceType == DEVICE_TYPE_MOVE_HUB_TILT_SENSOR && mode == MODE_TILT_ANGLE:
		if len(payload) < 2 {
			return nil
		}
		return []Event{TiltEvent{X: -int(int8(payload[0])), Y: int(int8(payload[1]))}}

	case deviceType == DEVICE_TYPE_TECHNIC_MEDIUM_HUB_TILT_SENSOR && mode == MODE_TILT_ANGLE:
		if len(payload) < 6 {
			return nil
		}
		return []Event{TiltEvent{
			Z: -int(int16(binary.LittleEndian.Uint16(payload[0:2]))),
			Y: int(int16(binary.LittleEndian.Uint16(payload[2:4]))),
			X: int(int16(binary.LittleEndian.Uint16(payload[4:6]))),
		}}

	case deviceType.IsTachoMotor() && mode == MODE_TACHO_ROTATION:
		if len(payload) < 4 {
			return nil
		}
		return []Event{RotateEvent{Degrees: int(int32(binary.LittleEndian.Uint32(payload[0:4])))}}

	case deviceType.IsTachoMotor() && mode == MODE_TACHO_SPEED:
		if len(payload) < 1 {
			return nil
		}
		return []Event{SpeedEvent{Speed: int(int8(payload[0]))}}

	case deviceType == DEVICE_TYPE_TECHNIC_COLOR_SENSOR && mode == MODE_TECHNIC_COLOR,
		deviceType == DEVICE_TYPE_DUPLO_TRAIN_BASE_COLOR_SENSOR && mode == MODE_DUPLO_COLOR:
		if len(payload) < 1 || payload[0] > byte(COLOR_WHITE) {
			return nil
		}
		return []Event{ColorEvent{Color: Color(payload[0])}}

	case deviceType == DEVICE_TYPE_TECHNIC_DISTANCE_SENSOR && mode == MODE_TECHNIC_DISTANCE:
		if len(payload) < 2 {
			return nil
		}
		return []Event{DistanceEvent{Distance: int(binary.LittleEndian.Uint16(payload[0:2]))}}

	case deviceType == DEVICE_TYPE_DUPLO_TRAIN_BASE_SPEEDOMETER && mode == MODE_DUPLO_SPEEDOMETER:
		if len(payload) < 2 {
			return nil
		}
		return []Event{SpeedEvent{Speed: int(int16(binary.LittleEndian.Uint16(payload[0:2])))}}
	}

	return nil
}
