package ui

// Canonical palette slots used by the widgets. Interactive sprites are drawn
// in the enabled color; state feedback substitutes that slot at draw time.
const (
	WidgetBackgroundColor = 1
	ButtonDisabledColor   = 5
	ButtonPressedColor    = 6
	ButtonEnabledColor    = 7
	LabelTextColor        = 7
)
