package main

import "fyne.io/fyne/v2"

// setupKeyboardShortcuts настраивает горячие клавиши
func (gui *MainGUI) setupKeyboardShortcuts() {
	gui.window.Canvas().SetOnTypedKey(func(event *fyne.KeyEvent) {
		switch event.Name {
		case fyne.KeyC:
			if gui.ctrl.ConnectEnabled() {
				gui.connect()
			}
		case fyne.KeyEscape, fyne.KeySpace:
			gui.stopAllMotors()
		}
	})
}
