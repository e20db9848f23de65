// HubPanel - панель периферии хабов LEGO Powered Up и WeDo 2.0.
//
// Приложение находит ближайший хаб по Bluetooth LE, подключается к нему
// и показывает карточку для каждого устройства на портах: управление
// скоростью для моторов и живые значения для сенсоров.
//
// Использование:
//
//	hubpanel [flags]
//	hubpanel config init
//
// По умолчанию запускается графический интерфейс; --frontend tui
// запускает терминальный.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
