package poweredup

import "fmt"

// UUID служб и характеристик LWP3 (Hub, Technic Hub, Move Hub...)
const (
	LWP3_HUB_SERVICE_UUID     = "00001623-1212-efde-1623-785feabcd123"
	LWP3_HUB_CHARACTERISTIC   = "00001624-1212-efde-1623-785feabcd123"
	LEGO_COMPANY_ID           = 0x0397
	LWP3_MAX_MESSAGE_LENGTH   = 127
	LWP3_INPUT_FORMAT_LENGTH  = 10
	LWP3_START_POWER_LENGTH   = 8
	LWP3_OUTPUT_STARTUP_FLAGS = 0x11 // выполнить сразу + сообщить о завершении
)

// UUID служб и характеристик WeDo 2.0
const (
	WEDO2_HUB_SERVICE_UUID      = "00001523-1212-efde-1523-785feabcd123"
	WEDO2_IO_SERVICE_UUID       = "00004f0e-1212-efde-1523-785feabcd123"
	WEDO2_PORT_TYPE_UUID        = "00001527-1212-efde-1523-785feabcd123" // Подключение/отключение устройств
	WEDO2_SENSOR_VALUE_UUID     = "00001560-1212-efde-1523-785feabcd123" // Значения сенсоров
	WEDO2_INPUT_COMMAND_UUID    = "00001563-1212-efde-1523-785feabcd123" // Команды настройки
	WEDO2_OUTPUT_COMMAND_UUID   = "00001565-1212-efde-1523-785feabcd123" // Команды управления
	WEDO2_MOTOR_POWER_COMMAND   = 0x01
	WEDO2_INPUT_FORMAT_COMMAND  = 0x01
	WEDO2_INPUT_FORMAT_REGISTER = 0x02
)

// Типы сообщений LWP3
const (
	MESSAGE_HUB_PROPERTIES       = 0x01
	MESSAGE_HUB_ACTIONS          = 0x02
	MESSAGE_HUB_ALERTS           = 0x03
	MESSAGE_HUB_ATTACHED_IO      = 0x04
	MESSAGE_GENERIC_ERROR        = 0x05
	MESSAGE_PORT_INPUT_FORMAT    = 0x41
	MESSAGE_PORT_VALUE_SINGLE    = 0x45
	MESSAGE_PORT_INPUT_FMT_SETS  = 0x47
	MESSAGE_PORT_OUTPUT_COMMAND  = 0x81
	MESSAGE_PORT_OUTPUT_FEEDBACK = 0x82
)

// События Hub Attached I/O
const (
	IO_EVENT_DETACHED         = 0x00
	IO_EVENT_ATTACHED         = 0x01
	IO_EVENT_ATTACHED_VIRTUAL = 0x02
)

// Подкоманды Port Output Command
const (
	OUTPUT_WRITE_DIRECT_MODE_DATA = 0x51
)

// Мощность, которую хаб трактует как торможение
const BrakePower = 127

// Protocol тип протокола хаба
type Protocol int

const (
	ProtocolLWP3 Protocol = iota
	ProtocolWeDo2
)

func (p Protocol) String() string {
	switch p {
	case ProtocolLWP3:
		return "LWP3"
	case ProtocolWeDo2:
		return "WeDo2"
	default:
		return fmt.Sprintf("Protocol(%d)", int(p))
	}
}

// EncodeInputFormat кодирует команду подписки на режим сенсора
func EncodeInputFormat(proto Protocol, portID byte, deviceType DeviceType, mode byte) []byte {
	if proto == ProtocolWeDo2 {
		return []byte{
			WEDO2_INPUT_FORMAT_COMMAND,
			WEDO2_INPUT_FORMAT_REGISTER,
			portID,
			byte(deviceType),
			mode,
			0x01,             // delta
			0x00, 0x00, 0x00, // delta (старшие байты)
			0x00, // единицы: raw
			0x01, // уведомления включены
		}
	}

	return []byte{
		LWP3_INPUT_FORMAT_LENGTH,
		0x00, // hub id
		MESSAGE_PORT_INPUT_FORMAT,
		portID,
		mode,
		0x01, 0x00, 0x00, 0x00, // delta
		0x01, // уведомления включены
	}
}

// EncodeMotorPower кодирует команду мощности мотора
func EncodeMotorPower(proto Protocol, portID byte, power int) []byte {
	powerByte := byte(int8(mapPower(power)))

	if proto == ProtocolWeDo2 {
		return []byte{portID, WEDO2_MOTOR_POWER_COMMAND, 0x01, powerByte}
	}

	return []byte{
		LWP3_START_POWER_LENGTH,
		0x00, // hub id
		MESSAGE_PORT_OUTPUT_COMMAND,
		portID,
		LWP3_OUTPUT_STARTUP_FLAGS,
		OUTPUT_WRITE_DIRECT_MODE_DATA,
		0x00, // режим StartPower
		powerByte,
	}
}

// mapPower ограничивает мощность диапазоном -100..100, пропуская торможение
func mapPower(power int) int {
	if power == BrakePower {
		return BrakePower
	}
	return clamp(power, -100, 100)
}
