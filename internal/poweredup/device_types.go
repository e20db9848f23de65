package poweredup

import "fmt"

// DeviceType тип устройства на порту хаба
type DeviceType uint16

// Типы устройств LWP3 / WeDo 2.0
const (
	DEVICE_TYPE_UNKNOWN                               DeviceType = 0x00
	DEVICE_TYPE_SIMPLE_MEDIUM_LINEAR_MOTOR            DeviceType = 0x01 // Мотор WeDo 2.0
	DEVICE_TYPE_TRAIN_MOTOR                           DeviceType = 0x02
	DEVICE_TYPE_LIGHT                                 DeviceType = 0x08
	DEVICE_TYPE_VOLTAGE_SENSOR                        DeviceType = 0x14
	DEVICE_TYPE_CURRENT_SENSOR                        DeviceType = 0x15
	DEVICE_TYPE_PIEZO_BUZZER                          DeviceType = 0x16
	DEVICE_TYPE_HUB_LED                               DeviceType = 0x17
	DEVICE_TYPE_TILT_SENSOR                           DeviceType = 0x22 // Датчик наклона WeDo 2.0
	DEVICE_TYPE_MOTION_SENSOR                         DeviceType = 0x23 // Датчик расстояния WeDo 2.0
	DEVICE_TYPE_COLOR_DISTANCE_SENSOR                 DeviceType = 0x25
	DEVICE_TYPE_MEDIUM_LINEAR_MOTOR                   DeviceType = 0x26
	DEVICE_TYPE_MOVE_HUB_MEDIUM_LINEAR_MOTOR          DeviceType = 0x27
	DEVICE_TYPE_MOVE_HUB_TILT_SENSOR                  DeviceType = 0x28
	DEVICE_TYPE_DUPLO_TRAIN_BASE_MOTOR                DeviceType = 0x29
	DEVICE_TYPE_DUPLO_TRAIN_BASE_SPEAKER              DeviceType = 0x2a
	DEVICE_TYPE_DUPLO_TRAIN_BASE_COLOR_SENSOR         DeviceType = 0x2b
	DEVICE_TYPE_DUPLO_TRAIN_BASE_SPEEDOMETER          DeviceType = 0x2c
	DEVICE_TYPE_TECHNIC_LARGE_LINEAR_MOTOR            DeviceType = 0x2e
	DEVICE_TYPE_TECHNIC_XLARGE_LINEAR_MOTOR           DeviceType = 0x2f
	DEVICE_TYPE_TECHNIC_MEDIUM_ANGULAR_MOTOR          DeviceType = 0x30
	DEVICE_TYPE_TECHNIC_LARGE_ANGULAR_MOTOR           DeviceType = 0x31
	DEVICE_TYPE_TECHNIC_MEDIUM_HUB_GEST_SENSOR        DeviceType = 0x36
	DEVICE_TYPE_REMOTE_CONTROL_BUTTON                 DeviceType = 0x37
	DEVICE_TYPE_REMOTE_CONTROL_RSSI                   DeviceType = 0x38
	DEVICE_TYPE_TECHNIC_MEDIUM_HUB_ACCELEROMETER      DeviceType = 0x39
	DEVICE_TYPE_TECHNIC_MEDIUM_HUB_GYRO_SENSOR        DeviceType = 0x3a
	DEVICE_TYPE_TECHNIC_MEDIUM_HUB_TILT_SENSOR        DeviceType = 0x3b
	DEVICE_TYPE_TECHNIC_MEDIUM_HUB_TEMPERATURE_SENSOR DeviceType = 0x3c
	DEVICE_TYPE_TECHNIC_COLOR_SENSOR                  DeviceType = 0x3d
	DEVICE_TYPE_TECHNIC_DISTANCE_SENSOR               DeviceType = 0x3e
	DEVICE_TYPE_TECHNIC_FORCE_SENSOR                  DeviceType = 0x3f
	DEVICE_TYPE_TECHNIC_3X3_COLOR_LIGHT_MATRIX        DeviceType = 0x40
	DEVICE_TYPE_TECHNIC_SMALL_ANGULAR_MOTOR           DeviceType = 0x41
	DEVICE_TYPE_TECHNIC_MEDIUM_ANGULAR_MOTOR_GREY     DeviceType = 0x4b
	DEVICE_TYPE_TECHNIC_LARGE_ANGULAR_MOTOR_GREY      DeviceType = 0x4c
)

var deviceTypeNames = map[DeviceType]string{
	DEVICE_TYPE_SIMPLE_MEDIUM_LINEAR_MOTOR:            "SIMPLE_MEDIUM_LINEAR_MOTOR",
	DEVICE_TYPE_TRAIN_MOTOR:                           "TRAIN_MOTOR",
	DEVICE_TYPE_LIGHT:                                 "LIGHT",
	DEVICE_TYPE_VOLTAGE_SENSOR:                        "VOLTAGE_SENSOR",
	DEVICE_TYPE_CURRENT_SENSOR:                        "CURRENT_SENSOR",
	DEVICE_TYPE_PIEZO_BUZZER:                          "PIEZO_BUZZER",
	DEVICE_TYPE_HUB_LED:                               "HUB_LED",
	DEVICE_TYPE_TILT_SENSOR:                           "TILT_SENSOR",
	DEVICE_TYPE_MOTION_SENSOR:                         "MOTION_SENSOR",
	DEVICE_TYPE_COLOR_DISTANCE_SENSOR:                 "COLOR_DISTANCE_SENSOR",
	DEVICE_TYPE_MEDIUM_LINEAR_MOTOR:                   "MEDIUM_LINEAR_MOTOR",
	DEVICE_TYPE_MOVE_HUB_MEDIUM_LINEAR_MOTOR:          "MOVE_HUB_MEDIUM_LINEAR_MOTOR",
	DEVICE_TYPE_MOVE_HUB_TILT_SENSOR:                  "MOVE_HUB_TILT_SENSOR",
	DEVICE_TYPE_DUPLO_TRAIN_BASE_MOTOR:                "DUPLO_TRAIN_BASE_MOTOR",
	DEVICE_TYPE_DUPLO_TRAIN_BASE_SPEAKER:              "DUPLO_TRAIN_BASE_SPEAKER",
	DEVICE_TYPE_DUPLO_TRAIN_BASE_COLOR_SENSOR:         "DUPLO_TRAIN_BASE_COLOR_SENSOR",
	DEVICE_TYPE_DUPLO_TRAIN_BASE_SPEEDOMETER:          "DUPLO_TRAIN_BASE_SPEEDOMETER",
	DEVICE_TYPE_TECHNIC_LARGE_LINEAR_MOTOR:            "TECHNIC_LARGE_LINEAR_MOTOR",
	DEVICE_TYPE_TECHNIC_XLARGE_LINEAR_MOTOR:           "TECHNIC_XLARGE_LINEAR_MOTOR",
	DEVICE_TYPE_TECHNIC_MEDIUM_ANGULAR_MOTOR:          "TECHNIC_MEDIUM_ANGULAR_MOTOR",
	DEVICE_TYPE_TECHNIC_LARGE_ANGULAR_MOTOR:           "TECHNIC_LARGE_ANGULAR_MOTOR",
	DEVICE_TYPE_TECHNIC_MEDIUM_HUB_GEST_SENSOR:        "TECHNIC_MEDIUM_HUB_GEST_SENSOR",
	DEVICE_TYPE_REMOTE_CONTROL_BUTTON:                 "REMOTE_CONTROL_BUTTON",
	DEVICE_TYPE_REMOTE_CONTROL_RSSI:                   "REMOTE_CONTROL_RSSI",
	DEVICE_TYPE_TECHNIC_MEDIUM_HUB_ACCELEROMETER:      "TECHNIC_MEDIUM_HUB_ACCELEROMETER",
	DEVICE_TYPE_TECHNIC_MEDIUM_HUB_GYRO_SENSOR:        "TECHNIC_MEDIUM_HUB_GYRO_SENSOR",
	DEVICE_TYPE_TECHNIC_MEDIUM_HUB_TILT_SENSOR:        "TECHNIC_MEDIUM_HUB_TILT_SENSOR",
	DEVICE_TYPE_TECHNIC_MEDIUM_HUB_TEMPERATURE_SENSOR: "TECHNIC_MEDIUM_HUB_TEMPERATURE_SENSOR",
	DEVICE_TYPE_TECHNIC_COLOR_SENSOR:                  "TECHNIC_COLOR_SENSOR",
	DEVICE_TYPE_TECHNIC_DISTANCE_SENSOR:               "TECHNIC_DISTANCE_SENSOR",
	DEVICE_TYPE_TECHNIC_FORCE_SENSOR:                  "TECHNIC_FORCE_SENSOR",
	DEVICE_TYPE_TECHNIC_3X3_COLOR_LIGHT_MATRIX:        "TECHNIC_3X3_COLOR_LIGHT_MATRIX",
	DEVICE_TYPE_TECHNIC_SMALL_ANGULAR_MOTOR:           "TECHNIC_SMALL_ANGULAR_MOTOR",
	DEVICE_TYPE_TECHNIC_MEDIUM_ANGULAR_MOTOR_GREY:     "TECHNIC_MEDIUM_ANGULAR_MOTOR_GREY",
	DEVICE_TYPE_TECHNIC_LARGE_ANGULAR_MOTOR_GREY:      "TECHNIC_LARGE_ANGULAR_MOTOR_GREY",
}

// String возвращает имя типа устройства
func (t DeviceType) String() string {
	if name, ok := deviceTypeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("UNKNOWN_0x%02X", uint16(t))
}

// IsMotor сообщает, принимает ли устройство команды мощности
func (t DeviceType) IsMotor() bool {
	switch t {
	case DEVICE_TYPE_SIMPLE_MEDIUM_LINEAR_MOTOR,
		DEVICE_TYPE_TRAIN_MOTOR,
		DEVICE_TYPE_DUPLO_TRAIN_BASE_MOTOR:
		return true
	default:
		return t.IsTachoMotor()
	}
}

// IsTachoMotor сообщает, есть ли у мотора датчик вращения
func (t DeviceType) IsTachoMotor() bool {
	switch t {
	case DEVICE_TYPE_MEDIUM_LINEAR_MOTOR,
		DEVICE_TYPE_MOVE_HUB_MEDIUM_LINEAR_MOTOR,
		DEVICE_TYPE_TECHNIC_LARGE_LINEAR_MOTOR,
		DEVICE_TYPE_TECHNIC_XLARGE_LINEAR_MOTOR,
		DEVICE_TYPE_TECHNIC_MEDIUM_ANGULAR_MOTOR,
		DEVICE_TYPE_TECHNIC_LARGE_ANGULAR_MOTOR,
		DEVICE_TYPE_TECHNIC_SMALL_ANGULAR_MOTOR,
		DEVICE_TYPE_TECHNIC_MEDIUM_ANGULAR_MOTOR_GREY,
		DEVICE_TYPE_TECHNIC_LARGE_ANGULAR_MOTOR_GREY:
		return true
	default:
		return false
	}
}

// Режимы сенсоров
const (
	MODE_MOTION_DISTANCE      = 0x00
	MODE_COLOR_DISTANCE_COMBO = 0x08
	MODE_TILT_ANGLE           = 0x00
	MODE_TACHO_SPEED          = 0x01
	MODE_TACHO_ROTATION       = 0x02
	MODE_TECHNIC_COLOR        = 0x00
	MODE_TECHNIC_DISTANCE     = 0x00
	MODE_DUPLO_SPEEDOMETER    = 0x00
	MODE_DUPLO_COLOR          = 0x00
)

// eventMode возвращает режим, который нужно включить для события
func eventMode(t DeviceType, event string) (byte, bool) {
	switch {
	case t == DEVICE_TYPE_MOTION_SENSOR && event == EventDistance:
		return MODE_MOTION_DISTANCE, true
	case t == DEVICE_TYPE_COLOR_DISTANCE_SENSOR && (event == EventColor || event == EventDistance):
		return MODE_COLOR_DISTANCE_COMBO, true
	case (t == DEVICE_TYPE_TILT_SENSOR ||
		t == DEVICE_TYPE_MOVE_HUB_TILT_SENSOR ||
		t == DEVICE_TYPE_TECHNIC_MEDIUM_HUB_TILT_SENSOR) && event == EventTilt:
		return MODE_TILT_ANGLE, true
	case t.IsTachoMotor() && event == EventRotate:
		return MODE_TACHO_ROTATION, true
	case t.IsTachoMotor() && event == EventSpeed:
		return MODE_TACHO_SPEED, true
	case t == DEVICE_TYPE_TECHNIC_COLOR_SENSOR && event == EventColor:
		return MODE_TECHNIC_COLOR, true
	case t == DEVICE_TYPE_TECHNIC_DISTANCE_SENSOR && event == EventDistance:
		return MODE_TECHNIC_DISTANCE, true
	case t == DEVICE_TYPE_DUPLO_TRAIN_BASE_COLOR_SENSOR && event == EventColor:
		return MODE_DUPLO_COLOR, true
	case t == DEVICE_TYPE_DUPLO_TRAIN_BASE_SPEEDOMETER && event == EventSpeed:
		return MODE_DUPLO_SPEEDOMETER, true
	}
	return 0, false
}

var lwp3PortNames = map[byte]string{
	0x00: "A",
	0x01: "B",
	0x02: "C",
	0x03: "D",
	0x32: "HUB_LED",
	0x3a: "TILT_SENSOR",
	0x3b: "CURRENT_SENSOR",
	0x3c: "VOLTAGE_SENSOR",
	0x3d: "TEMPERATURE_SENSOR",
	0x60: "TEMPERATURE_SENSOR_2",
	0x61: "ACCELEROMETER",
	0x62: "GYRO_SENSOR",
	0x63: "TILT_SENSOR",
	0x64: "GESTURE_SENSOR",
}

var wedo2PortNames = map[byte]string{
	0x01: "A",
	0x02: "B",
	0x03: "CURRENT_SENSOR",
	0x04: "VOLTAGE_SENSOR",
	0x05: "PIEZO_BUZZER",
	0x06: "HUB_LED",
}

// PortName возвращает имя порта по его номеру
func PortName(proto Protocol, portID byte) string {
	names := lwp3PortNames
	if proto == ProtocolWeDo2 {
		names = wedo2PortNames
	}
	if name, ok := names[portID]; ok {
		return name
	}
	return fmt.Sprintf("%d", portID)
}

// Типы хабов по байту System Type в данных производителя
var hubKindNames = map[byte]string{
	0x00: "WeDo 2.0 Smart Hub",
	0x20: "DUPLO Train Base",
	0x40: "Move Hub",
	0x41: "Hub",
	0x42: "Remote Control",
	0x43: "Mario",
	0x80: "Technic Medium Hub",
	0x83: "Technic Small Hub",
}

// HubKindName возвращает название типа хаба
func HubKindName(systemType byte) string {
	if name, ok := hubKindNames[systemType]; ok {
		return name
	}
	return fmt.Sprintf("Неизвестный хаб (0x%02x)", systemType)
}
