package transcript

// Palette is the fixed set of speaker color slots. Assignment cycles through
// it in first-occurrence order and wraps around.
var Palette = []string{
	"blue",
	"yellow",
	"pink",
	"purple",
	"indigo",
	"gray",
	"green",
	"red",
}

// Speakers returns the distinct speaker names of the speech items, in order
// of first occurrence. Speakers are derived on demand, never stored
// separately, so renaming is a data mutation over matching items rather than
// a lookup-table update.
func Speakers(content []Item) []string {
	seen := make(map[string]bool)
	var speakers []string
	for i := range content {
		if content[i].Type != ItemSpeech {
			continue
		}
		name := content[i].Speaker
		if seen[name] {
			continue
		}
		seen[name] = true
		speakers = append(speakers, name)
	}
	return speakers
}

// SpeakerColors assigns each speaker a palette color, deterministic by
// first-occurrence order. Absent or empty input yields an empty map.
func SpeakerColors(speakers []string) map[string]string {
	colors := make(map[string]string, len(speakers))
	for i, name := range speakers {
		colors[name] = Palette[i%len(Palette)]
	}
	return colors
}
