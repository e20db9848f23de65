package main

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"HubPanel/internal/dashboard"
)

// PanelTheme темная тема панели хаба
type PanelTheme struct{}

var _ fyne.Theme = (*PanelTheme)(nil)

// Цвета темы
var (
	backgroundColor = color.NRGBA{R: 45, G: 45, B: 48, A: 255}
	foregroundColor = color.NRGBA{R: 240, G: 240, B: 240, A: 255}
	primaryColor    = color.NRGBA{R: 0, G: 122, B: 204, A: 255}
	buttonColor     = color.NRGBA{R: 63, G: 63, B: 70, A: 255}
	disabledColor   = color.NRGBA{R: 104, G: 104, B: 104, A: 255}
	hoverColor      = color.NRGBA{R: 28, G: 151, B: 234, A: 255}
	pressedColor    = color.NRGBA{R: 0, G: 97, B: 163, A: 255}
	successColor    = color.NRGBA{R: 76, G: 175, B: 80, A: 255}
	errorColor      = color.NRGBA{R: 244, G: 67, B: 54, A: 255}
	warningColor    = color.NRGBA{R: 255, G: 193, B: 7, A: 255}
	hintColor       = color.NRGBA{R: 108, G: 117, B: 125, A: 255}

	// Карточка устройства
	cardFillColor   = color.NRGBA{R: 60, G: 60, B: 60, A: 255}
	cardStrokeColor = color.NRGBA{R: 100, G: 100, B: 100, A: 255}
)

// Color возвращает цвет по имени
func (t *PanelTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNameBackground, theme.ColorNameMenuBackground:
		return backgroundColor
	case theme.ColorNameButton:
		return buttonColor
	case theme.ColorNameDisabled:
		return disabledColor
	case theme.ColorNameDisabledButton:
		return color.NRGBA{R: 70, G: 70, B: 70, A: 255}
	case theme.ColorNameError:
		return errorColor
	case theme.ColorNameFocus, theme.ColorNameHover:
		return hoverColor
	case theme.ColorNameForeground:
		return foregroundColor
	case theme.ColorNamePlaceHolder:
		return hintColor
	case theme.ColorNamePressed:
		return pressedColor
	case theme.ColorNamePrimary:
		return primaryColor
	case theme.ColorNameSuccess:
		return successColor
	case theme.ColorNameWarning:
		return warningColor
	default:
		return theme.DarkTheme().Color(name, variant)
	}
}

// Font возвращает шрифт
func (t *PanelTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DarkTheme().Font(style)
}

// Icon возвращает иконку
func (t *PanelTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DarkTheme().Icon(name)
}

// Size возвращает размер элемента
func (t *PanelTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNameHeadingText:
		return 18
	case theme.SizeNamePadding:
		return 8
	case theme.SizeNameSubHeadingText:
		return 16
	case theme.SizeNameText:
		return 14
	default:
		return theme.DarkTheme().Size(name)
	}
}

// statusImportance выбирает оформление строки статуса по состоянию
func statusImportance(status dashboard.Status) widget.Importance {
	switch status.State {
	case dashboard.StateConnecting:
		return widget.WarningImportance
	case dashboard.StateConnected:
		return widget.SuccessImportance
	default:
		return widget.DangerImportance
	}
}

// kindIcon возвращает иконку карточки по типу виджета
func kindIcon(kind dashboard.Kind) fyne.Resource {
	switch kind {
	case dashboard.KindMotor:
		return theme.MediaPlayIcon()
	case dashboard.KindDistance:
		return theme.MoveDownIcon()
	case dashboard.KindTilt:
		return theme.ViewRefreshIcon()
	case dashboard.KindColor:
		return theme.ColorPaletteIcon()
	default:
		return theme.ComputerIcon()
	}
}
