package poweredup

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEncodeMotorPower(t *testing.T) {
	tests := []struct {
		name  string
		proto Protocol
		port  byte
		power int
		want  []byte
	}{
		{"wedo forward", ProtocolWeDo2, 0x01, 50, []byte{0x01, 0x01, 0x01, 0x32}},
		{"wedo reverse", ProtocolWeDo2, 0x02, -100, []byte{0x02, 0x01, 0x01, 0x9c}},
		{"wedo clamped", ProtocolWeDo2, 0x01, 250, []byte{0x01, 0x01, 0x01, 0x64}},
		{"lwp3 forward", ProtocolLWP3, 0x00, 75, []byte{0x08, 0x00, 0x81, 0x00, 0x11, 0x51, 0x00, 0x4b}},
		{"lwp3 stop", ProtocolLWP3, 0x01, 0, []byte{0x08, 0x00, 0x81, 0x01, 0x11, 0x51, 0x00, 0x00}},
		{"lwp3 brake", ProtocolLWP3, 0x01, BrakePower, []byte{0x08, 0x00, 0x81, 0x01, 0x11, 0x51, 0x00, 0x7f}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, EncodeMotorPower(tt.proto, tt.port, tt.power))
		})
	}
}

func TestEncodeInputFormat(t *testing.T) {
	assert.Equal(t,
		[]byte{0x01, 0x02, 0x02, 0x23, 0x00, 0x01, 0x00, 0x00, 0x00, 0x00, 0x01},
		EncodeInputFormat(ProtocolWeDo2, 0x02, DEVICE_TYPE_MOTION_SENSOR, MODE_MOTION_DISTANCE),
	)
	assert.Equal(t,
		[]byte{0x0a, 0x00, 0x41, 0x01, 0x08, 0x01, 0x00, 0x00, 0x00, 0x01},
		EncodeInputFormat(ProtocolLWP3, 0x01, DEVICE_TYPE_COLOR_DISTANCE_SENSOR, MODE_COLOR_DISTANCE_COMBO),
	)
}

func TestProtocolString(t *testing.T) {
	assert.Equal(t, "LWP3", ProtocolLWP3.String())
	assert.Equal(t, "WeDo2", ProtocolWeDo2.String())
	assert.Equal(t, "Protocol(7)", Protocol(7).String())
}

func TestDeviceTypeNames(t *testing.T) {
	assert.Equal(t, "COLOR_DISTANCE_SENSOR", DEVICE_TYPE_COLOR_DISTANCE_SENSOR.String())
	assert.Equal(t, "UNKNOWN_0x99", DeviceType(0x99).String())

	assert.True(t, DEVICE_TYPE_SIMPLE_MEDIUM_LINEAR_MOTOR.IsMotor())
	assert.True(t, DEVICE_TYPE_TECHNIC_LARGE_LINEAR_MOTOR.IsMotor())
	assert.False(t, DEVICE_TYPE_SIMPLE_MEDIUM_LINEAR_MOTOR.IsTachoMotor())
	assert.False(t, DEVICE_TYPE_TILT_SENSOR.IsMotor())
}

func TestPortName(t *testing.T) {
	assert.Equal(t, "A", PortName(ProtocolWeDo2, 0x01))
	assert.Equal(t, "A", PortName(ProtocolLWP3, 0x00))
	assert.Equal(t, "HUB_LED", PortName(ProtocolWeDo2, 0x06))
	assert.Equal(t, "HUB_LED", PortName(ProtocolLWP3, 0x32))
}
