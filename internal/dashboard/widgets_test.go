package dashboard

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"HubPanel/internal/poweredup"
)

func TestMotorWidgetSpeed(t *testing.T) {
	motor := newFakeMotor("A", "MEDIUM_LINEAR_MOTOR")
	w := NewWidget(motor, zaptest.NewLogger(t)).(*MotorWidget)

	assert.Zero(t, w.Speed())

	w.SetSpeed(50)
	assert.Equal(t, 50, w.Speed())
	assert.Equal(t, []int{50}, motor.powers)

	w.SetSpeed(150)
	w.SetSpeed(-150)
	assert.Equal(t, -100, w.Speed())
	assert.Equal(t, []int{50, 100, -100}, motor.powers)

	w.Stop()
	assert.Zero(t, w.Speed())
	assert.Equal(t, 1, motor.brakes)
	assert.Len(t, motor.powers, 3, "stop must only brake")
}

func TestMotorWidgetWithoutMotorCapability(t *testing.T) {
	device := newFakeDevice("B", "TRAIN_MOTOR")
	w := NewWidget(device, zaptest.NewLogger(t)).(*MotorWidget)

	assert.NotPanics(t, func() {
		w.SetSpeed(30)
		w.Stop()
	})
	assert.Zero(t, w.Speed())
}

func TestMotorWidgetCommandErrors(t *testing.T) {
	motor := newFakeMotor("A", "MEDIUM_LINEAR_MOTOR")
	motor.err = errors.New("write failed")
	w := NewWidget(motor, zaptest.NewLogger(t)).(*MotorWidget)

	w.SetSpeed(20)
	w.Stop()

	assert.Equal(t, []int{20}, motor.powers)
	assert.Equal(t, 1, motor.brakes)
}

func TestSensorWidgets(t *testing.T) {
	log := zaptest.NewLogger(t)

	distance := NewWidget(newFakeDevice("A", "TECHNIC_DISTANCE_SENSOR"), log).(*DistanceWidget)
	assert.Equal(t, "Distance: --", distance.Text())
	distance.apply(poweredup.EventDistance, poweredup.DistanceEvent{Distance: 120})
	assert.Equal(t, "Distance: 120", distance.Text())

	tilt := NewWidget(newFakeDevice("B", "TILT_SENSOR"), log).(*TiltWidget)
	assert.Equal(t, "--", tilt.X())
	assert.Equal(t, "--", tilt.Y())
	tilt.apply(poweredup.EventTilt, poweredup.TiltEvent{X: 10, Y: -5})
	assert.Equal(t, "10", tilt.X())
	assert.Equal(t, "-5", tilt.Y())

	color := NewWidget(newFakeDevice("C", "COLOR_DISTANCE_SENSOR"), log).(*ColorWidget)
	assert.Equal(t, "Color: --", color.Text())
	color.apply(poweredup.EventColor, poweredup.ColorEvent{Color: poweredup.COLOR_RED})
	assert.Equal(t, "Color: RED", color.Text())
}

func TestGenericWidgetRendersJSON(t *testing.T) {
	w := NewWidget(newFakeDevice("D", "VOLTAGE_SENSOR"), zaptest.NewLogger(t)).(*GenericWidget)

	assert.Equal(t, WaitingForData, w.Text())
	assert.Equal(t, LimitedSupport, w.Hint())
	assert.Equal(t, []string{"distance", "color", "tilt", "rotate", "speed"}, w.events())

	tests := []struct {
		event string
		ev    poweredup.Event
		want  string
	}{
		{poweredup.EventRotate, poweredup.RotateEvent{Degrees: 90}, "rotate: 90"},
		{poweredup.EventSpeed, poweredup.SpeedEvent{Speed: -20}, "speed: -20"},
		{poweredup.EventColor, poweredup.ColorEvent{Color: poweredup.COLOR_BLUE}, `color: "BLUE"`},
		{poweredup.EventTilt, poweredup.TiltEvent{X: 1, Y: 2, Z: 3}, `tilt: {"x":1,"y":2,"z":3}`},
		{poweredup.EventDistance, poweredup.DistanceEvent{Distance: 42}, "distance: 42"},
	}

	for _, tt := range tests {
		w.apply(tt.event, tt.ev)
		assert.Equal(t, tt.want, w.Text())
	}
}

func TestRegistryAttachDetach(t *testing.T) {
	r := NewRegistry(zaptest.NewLogger(t))

	a, replaced := r.Attach(newFakeDevice("A", "TILT_SENSOR"))
	require.Nil(t, replaced)
	r.Attach(newFakeDevice("B", "HUB_LED"))

	assert.Equal(t, 2, r.Len())
	assert.Equal(t, []string{"A", "B"}, ports(r.Widgets()))

	closed := false
	a.base().addCloser(func() { closed = true })

	next, replaced := r.Attach(newFakeDevice("A", "DistanceSensor"))
	assert.Same(t, a, replaced)
	assert.True(t, closed)
	assert.Equal(t, KindDistance, next.Kind())
	assert.Equal(t, []string{"B", "A"}, ports(r.Widgets()))

	_, ok := r.Detach("Z")
	assert.False(t, ok)

	removed, ok := r.Detach("B")
	require.True(t, ok)
	assert.Equal(t, "B", removed.Port())

	assert.Len(t, r.Clear(), 1)
	assert.Zero(t, r.Len())
}

func ports(widgets []Widget) []string {
	result := make([]string, len(widgets))
	for i, w := range widgets {
		result[i] = w.Port()
	}
	return result
}
