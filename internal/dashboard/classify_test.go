package dashboard

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		typeName string
		want     Kind
	}{
		{"MEDIUM_LINEAR_MOTOR", KindMotor},
		{"TechnicLargeAngularMotor", KindMotor},
		{"motor", KindMotor},
		{"ColorDistanceSensor", KindColor},
		{"COLOR_DISTANCE_SENSOR", KindColor},
		{"TECHNIC_DISTANCE_SENSOR", KindDistance},
		{"DistanceSensor", KindDistance},
		{"TILT_SENSOR", KindTilt},
		{"MoveHubTiltSensor", KindTilt},
		{"TECHNIC_COLOR_SENSOR", KindColor},
		{"Color Sensor", KindColor},
		{"HUB_LED", KindGeneric},
		{"MOTION_SENSOR", KindGeneric},
		{"", KindGeneric},
	}

	for _, tt := range tests {
		t.Run(tt.typeName, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.typeName))
		})
	}
}

func TestNewWidgetBuildsKind(t *testing.T) {
	cases := map[string]Widget{
		"MEDIUM_LINEAR_MOTOR":   &MotorWidget{},
		"COLOR_DISTANCE_SENSOR": &ColorWidget{},
		"TILT_SENSOR":           &TiltWidget{},
		"DistanceSensor":        &DistanceWidget{},
		"VOLTAGE_SENSOR":        &GenericWidget{},
	}

	for typeName, want := range cases {
		w := NewWidget(newFakeDevice("A", typeName), nil)
		assert.IsType(t, want, w, typeName)
		assert.Equal(t, "Port A: "+typeName, w.Title())
	}
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "motor", KindMotor.String())
	assert.Equal(t, "generic", KindGeneric.String())
	assert.Equal(t, "Kind(9)", Kind(9).String())
}
