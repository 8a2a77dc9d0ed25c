package controls

// Action is a viewer command bound to a key.
type Action int

const (
	ActionNone Action = iota
	ActionQuit
	ActionToggleFullscreen
	ActionToggleAlgorithm
	ActionMoreSegments
	ActionFewerSegments
	ActionToggleHermite
	ActionResetCamera
	ActionScreenshot
	ActionOpenFile
	ActionModeCurves
	ActionModeQuadratic
	ActionModeScaffold
)

var actionNames = map[Action]string{
	ActionNone:             "none",
	ActionQuit:             "quit",
	ActionToggleFullscreen: "toggle-fullscreen",
	ActionToggleAlgorithm:  "toggle-algorithm",
	ActionMoreSegments:     "more-segments",
	ActionFewerSegments:    "fewer-segments",
	ActionToggleHermite:    "toggle-hermite",
	ActionResetCamera:      "reset-camera",
	ActionScreenshot:       "screenshot",
	ActionOpenFile:         "open-file",
	ActionModeCurves:       "mode-curves",
	ActionModeQuadratic:    "mode-quadratic",
	ActionModeScaffold:     "mode-scaffold",
}

func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "unknown"
}

// KeyEscape is the keycode SDL reports for Escape.
const KeyEscape rune = 27

// Keymap binds keycodes to actions.
type Keymap map[rune]Action

// DefaultKeymap returns the viewer bindings.
func DefaultKeymap() Keymap {
	return Keymap{
		'f':       ActionToggleFullscreen,
		'm':       ActionToggleAlgorithm,
		'+':       ActionMoreSegments,
		'=':       ActionMoreSegments, // unshifted '+' on most layouts
		'-':       ActionFewerSegments,
		'h':       ActionToggleHermite,
		'r':       ActionResetCamera,
		'p':       ActionScreenshot,
		'o':       ActionOpenFile,
		'1':       ActionModeCurves,
		'2':       ActionModeQuadratic,
		'3':       ActionModeScaffold,
		'q':       ActionQuit,
		KeyEscape: ActionQuit,
	}
}

// Lookup returns the action bound to key, or ActionNone.
func (k Keymap) Lookup(key rune) Action {
	return k[key]
}
