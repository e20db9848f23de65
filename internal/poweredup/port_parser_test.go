package poweredup

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLWP3AttachedIO(t *testing.T) {
	msg, ok := ParseLWP3AttachedIO([]byte{0x0f, 0x00, 0x04, 0x01, 0x01, 0x25, 0x00, 0, 0, 0, 0x10, 0, 0, 0, 0x10})
	require.True(t, ok)
	assert.Equal(t, &PortMessage{PortID: 0x01, Attached: true, DeviceType: DEVICE_TYPE_COLOR_DISTANCE_SENSOR}, msg)

	msg, ok = ParseLWP3AttachedIO([]byte{0x05, 0x00, 0x04, 0x01, 0x00})
	require.True(t, ok)
	assert.Equal(t, &PortMessage{PortID: 0x01}, msg)

	_, ok = ParseLWP3AttachedIO([]byte{0x05, 0x00, 0x04, 0x01, 0x01})
	assert.False(t, ok, "attach without device type")

	_, ok = ParseLWP3AttachedIO([]byte{0x05, 0x00, 0x45, 0x01, 0x00})
	assert.False(t, ok, "wrong message type")
}

func TestParseWeDo2PortType(t *testing.T) {
	msg, ok := ParseWeDo2PortType([]byte{0x01, 0x01, 0x00, 0x01, 0x01, 0x00, 0x00, 0x00, 0x00})
	require.True(t, ok)
	assert.Equal(t, &PortMessage{PortID: 0x01, Attached: true, DeviceType: DEVICE_TYPE_SIMPLE_MEDIUM_LINEAR_MOTOR}, msg)

	msg, ok = ParseWeDo2PortType([]byte{0x02, 0x00})
	require.True(t, ok)
	assert.Equal(t, &PortMessage{PortID: 0x02}, msg)

	_, ok = ParseWeDo2PortType([]byte{0x02})
	assert.False(t, ok)
}

func TestParsePortValue(t *testing.T) {
	port, payload, ok := ParseLWP3PortValue([]byte{0x06, 0x00, 0x45, 0x02, 0x0a, 0x00})
	require.True(t, ok)
	assert.Equal(t, byte(0x02), port)
	assert.Equal(t, []byte{0x0a, 0x00}, payload)

	port, payload, ok = ParseWeDo2SensorValue([]byte{0x00, 0x01, 0x05})
	require.True(t, ok)
	assert.Equal(t, byte(0x01), port)
	assert.Equal(t, []byte{0x05}, payload)

	_, _, ok = ParseWeDo2SensorValue([]byte{0x00, 0x01})
	assert.False(t, ok)
}

func TestDecodeSensorValues(t *testing.T) {
	tests := []struct {
		name    string
		device  DeviceType
		mode    byte
		payload []byte
		want    []Event
	}{
		{"motion", DEVICE_TYPE_MOTION_SENSOR, MODE_MOTION_DISTANCE, []byte{5, 0}, []Event{DistanceEvent{Distance: 50}}},
		{"motion far", DEVICE_TYPE_MOTION_SENSOR, MODE_MOTION_DISTANCE, []byte{3, 1}, []Event{DistanceEvent{Distance: 2580}}},
		{
			"color and distance", DEVICE_TYPE_COLOR_DISTANCE_SENSOR, MODE_COLOR_DISTANCE_COMBO, []byte{9, 2, 0, 2},
			[]Event{ColorEvent{Color: COLOR_RED}, DistanceEvent{Distance: 43}},
		},
		{
			"distance without color", DEVICE_TYPE_COLOR_DISTANCE_SENSOR, MODE_COLOR_DISTANCE_COMBO, []byte{0xff, 2, 0, 0},
			[]Event{DistanceEvent{Distance: 30}},
		},
		{"wedo tilt", DEVICE_TYPE_TILT_SENSOR, MODE_TILT_ANGLE, []byte{0xfe, 5}, []Event{TiltEvent{X: -2, Y: 5}}},
		{"move hub tilt", DEVICE_TYPE_MOVE_HUB_TILT_SENSOR, MODE_TILT_ANGLE, []byte{3, 4}, []Event{TiltEvent{X: -3, Y: 4}}},
		{
			"technic hub tilt", DEVICE_TYPE_TECHNIC_MEDIUM_HUB_TILT_SENSOR, MODE_TILT_ANGLE, []byte{1, 0, 2, 0, 3, 0},
			[]Event{TiltEvent{X: 3, Y: 2, Z: -1}},
		},
		{"rotation", DEVICE_TYPE_TECHNIC_LARGE_LINEAR_MOTOR, MODE_TACHO_ROTATION, []byte{0x68, 0x01, 0, 0}, []Event{RotateEvent{Degrees: 360}}},
		{"speed", DEVICE_TYPE_MEDIUM_LINEAR_MOTOR, MODE_TACHO_SPEED, []byte{0xf6}, []Event{SpeedEvent{Speed: -10}}},
		{"technic color", DEVICE_TYPE_TECHNIC_COLOR_SENSOR, MODE_TECHNIC_COLOR, []byte{3}, []Event{ColorEvent{Color: COLOR_BLUE}}},
		{"duplo color", DEVICE_TYPE_DUPLO_TRAIN_BASE_COLOR_SENSOR, MODE_DUPLO_COLOR, []byte{9}, []Event{ColorEvent{Color: COLOR_RED}}},
		{"technic distance", DEVICE_TYPE_TECHNIC_DISTANCE_SENSOR, MODE_TECHNIC_DISTANCE, []byte{0x2c, 0x01}, []Event{DistanceEvent{Distance: 300}}},
		{"short payload", DEVICE_TYPE_TILT_SENSOR, MODE_TILT_ANGLE, []byte{1}, nil},
		{"unknown device", DEVICE_TYPE_HUB_LED, 0, []byte{1, 2, 3}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DecodeSensorValues(tt.device, tt.mode, tt.payload))
		})
	}
}

func TestEventModeForColorSensors(t *testing.T) {
	for _, device := range []DeviceType{
		DEVICE_TYPE_COLOR_DISTANCE_SENSOR,
		DEVICE_TYPE_TECHNIC_COLOR_SENSOR,
		DEVICE_TYPE_DUPLO_TRAIN_BASE_COLOR_SENSOR,
	} {
		_, ok := eventMode(device, EventColor)
		assert.True(t, ok, device.String())
	}
}
