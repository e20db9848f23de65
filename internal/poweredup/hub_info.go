package poweredup

import "time"

// HubInfo содержит информацию об обнаруженном хабе
type HubInfo struct {
	Name        string
	Address     string
	RSSI        int
	Kind        string
	Protocol    Protocol
	LastUpdated time.Time
}
