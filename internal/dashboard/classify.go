package dashboard

import (
	"strings"

	"go.uber.org/zap"

	"HubPanel/internal/poweredup"
)

// widgetRule сопоставляет имя типа устройства с конструктором виджета
type widgetRule struct {
	kind  Kind
	match func(name string) bool
	build func(device poweredup.Peripheral, log *zap.Logger) Widget
}

func contains(part string) func(string) bool {
	return func(name string) bool { return strings.Contains(name, part) }
}

// widgetRules проверяются по порядку, срабатывает первое совпадение.
// Составной датчик цвета и расстояния получает виджет цвета.
var widgetRules = []widgetRule{
	{KindMotor, contains("motor"), newMotorWidget},
	{KindColor, contains("colordistance"), newColorWidget},
	{KindDistance, contains("distance"), newDistanceWidget},
	{KindTilt, contains("tilt"), newTiltWidget},
	{KindColor, contains("color"), newColorWidget},
}

var genericRule = widgetRule{KindGeneric, func(string) bool { return true }, newGenericWidget}

// normalizeTypeName приводит "COLOR_DISTANCE_SENSOR" и "ColorDistanceSensor" к одному виду
func normalizeTypeName(name string) string {
	name = strings.ToLower(name)
	return strings.NewReplacer("_", "", " ", "", "-", "").Replace(name)
}

func ruleFor(typeName string) widgetRule {
	name := normalizeTypeName(typeName)
	for _, rule := range widgetRules {
		if rule.match(name) {
			return rule
		}
	}
	return genericRule
}

// Classify возвращает тип виджета для имени типа устройства
func Classify(typeName string) Kind {
	return ruleFor(typeName).kind
}

// NewWidget создает виджет для устройства по имени его типа
func NewWidget(device poweredup.Peripheral, log *zap.Logger) Widget {
	if log == nil {
		log = zap.NewNop()
	}
	return ruleFor(device.TypeName()).build(device, log)
}
