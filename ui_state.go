package main

type mode int

const (
	modeView mode = iota
	modeCommand
	modeDialog
)

type uiState struct {
	mode       mode
	command    CommandInput
	noticeMsg  string
	noticeType string
	noticeSeq  int

	// pointerInside tracks whether the last mouse event hit the cover.
	pointerInside bool

	// keyboard pointer: the interval stepped to with h/l or :
	cursorX   float64
	hasCursor bool
}
