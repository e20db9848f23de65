package poweredup

import "strings"

// clamp ограничивает значение в заданном диапазоне
func clamp(value, min, max int) int {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

// isLegoName проверяет имя устройства по известным префиксам хабов
func isLegoName(name string) bool {
	upper := strings.ToUpper(name)
	return strings.Contains(upper, "WEDO") ||
		strings.Contains(upper, "LEGO") ||
		strings.Contains(upper, "LPF2")
}
