// Package labels maps ESC-50 class names to the glyph shown beside each
// prediction.
package labels

// DefaultGlyph is used for classes outside the table
const DefaultGlyph = "📢"

var esc50 = map[string]string{
	// animals
	"dog":     "🐕",
	"rooster": "🐓",
	"pig":     "🐖",
	"cow":     "🐄",
	"frog":    "🐸",
	"cat":     "🐈",
	"hen":     "🐔",
	"insects": "🦟",
	"sheep":   "🐑",
	"crow":    "🐦‍⬛",

	// natural soundscapes
	"rain":           "🌧️",
	"sea_waves":      "🌊",
	"crackling_fire": "🔥",
	"crickets":       "🦗",
	"chirping_birds": "🐦",
	"water_drops":    "💧",
	"wind":           "💨",
	"pouring_water":  "🚰",
	"toilet_flush":   "🚽",
	"thunderstorm":   "⛈️",

	// human, non-speech
	"crying_baby":      "👶",
	"sneezing":         "🤧",
	"clapping":         "👏",
	"breathing":        "😮‍💨",
	"coughing":         "😷",
	"footsteps":        "👣",
	"laughing":         "😂",
	"brushing_teeth":   "🪥",
	"snoring":          "😴",
	"drinking_sipping": "🥤",

	// domestic
	"door_wood_knock":  "🚪",
	"mouse_click":      "🖱️",
	"keyboard_typing":  "⌨️",
	"door_wood_creaks": "🚪",
	"can_opening":      "🥫",
	"washing_machine":  "🧺",
	"vacuum_cleaner":   "🧹",
	"clock_alarm":      "⏰",
	"clock_tick":       "⏱️",
	"glass_breaking":   "🥂",

	// urban
	"helicopter":   "🚁",
	"chainsaw":     "🪚",
	"siren":        "🚨",
	"car_horn":     "📯",
	"engine":       "🚗",
	"train":        "🚆",
	"church_bells": "🔔",
	"airplane":     "✈️",
	"fireworks":    "🎆",
	"hand_saw":     "🪚",
}

// Glyph returns the glyph for class, or DefaultGlyph when there is none.
// The lookup uses the raw class name, underscores included.
func Glyph(class string) string {
	if g, ok := esc50[class]; ok {
		return g
	}
	return DefaultGlyph
}

// Known reports whether class is an ESC-50 class
func Known(class string) bool {
	_, ok := esc50[class]
	return ok
}
