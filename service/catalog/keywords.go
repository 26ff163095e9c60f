package catalog

// Storefront sections. Each maps to one curated keyword list below; the
// lists are recall-oriented filters, not a taxonomy — false positives are
// accepted.
const (
	SectionMobile      = "mobile"
	SectionSmartHome   = "smart-home"
	SectionToys        = "toys"
	SectionAccessories = "accessories"
)

// Rule is the classification rule for one section. Keywords test as
// substrings of lowercased category/name/description and as exact elements
// of the lowercased tag set. CategoryAliases test against category alone.
type Rule struct {
	Keywords        []string
	CategoryAliases []string
}

// SectionRules is the shared, data-driven ruleset. One table for every page
// so the lists cannot drift between them.
var SectionRules = map[string]Rule{
	SectionMobile: {
		Keywords: []string{
			"mobile", "smartphone", "phone", "android", "ios", "iphone",
			"samsung", "xiaomi", "oneplus", "google pixel", "oppo", "vivo",
			"realme", "tablet", "ipad", "smartwatch", "wearable", "earbuds",
			"headphones", "charger", "case", "cover", "screen protector",
			"cable", "power bank", "5g", "dual sim", "camera phone",
			"gaming phone", "foldable", "flagship",
		},
	},
	SectionSmartHome: {
		Keywords: []string{
			"smart", "home", "automation", "iot", "internet of things",
			"connected", "wi-fi", "wifi", "bluetooth", "zigbee", "z-wave",
			"alexa", "google assistant", "homekit", "siri", "voice control",
			"smart home", "smart device", "smart hub", "smart speaker",
			"smart light", "smart bulb", "smart plug", "smart switch",
			"smart outlet", "smart thermostat", "smart lock", "smart doorbell",
			"smart camera", "security camera", "doorbell camera",
			"smart security", "home security", "motion sensor", "door sensor",
			"window sensor", "smart alarm", "smart smoke detector",
			"smart air purifier", "smart fan", "smart air conditioner",
			"smart heater", "smart vacuum", "robot vacuum", "robot cleaner",
			"smart refrigerator", "smart oven", "smart dishwasher",
			"smart washer", "smart dryer", "smart kitchen", "smart scale",
			"smart mirror", "smart display", "smart tv", "streaming device",
			"media player", "smart soundbar", "smart remote",
			"universal remote", "smart irrigation", "smart sprinkler",
			"smart garden", "smart pet feeder", "smart garage",
			"garage opener", "smart blind", "smart curtain",
			"motorized curtain",
		},
	},
	SectionToys: {
		Keywords: []string{
			"toy", "toys", "kids toy", "children toy", "baby toy",
			"educational toy", "learning toy", "play toy", "baby", "toddler",
			"kids", "children", "preschool", "school kids", "educational",
			"learning", "montessori", "puzzle", "jigsaw puzzle",
			"alphabet toy", "number toy", "math toy", "science toy",
			"stem toy", "game", "board game", "card game", "indoor game",
			"outdoor game", "family game", "toy car", "remote car", "rc car",
			"toy bike", "toy truck", "toy train", "toy bus", "toy plane",
			"toy helicopter", "action figure", "superhero toy", "doll",
			"barbie", "fashion doll", "soft doll", "soft toy", "teddy bear",
			"plush toy", "stuffed toy", "blocks", "building blocks", "lego",
			"construction toy", "craft toy", "art toy", "drawing toy",
			"electronic toy", "battery toy", "musical toy", "sound toy",
			"light toy", "sports toy", "football", "cricket bat", "badminton",
			"basketball", "cycle", "scooter", "kitchen set", "doctor set",
			"tool set", "pretend play", "role play", "rattle", "teether",
			"activity toy", "walker", "ride on toy", "animal toy",
			"dinosaur toy", "zoo toy", "farm toy", "gift toy",
			"birthday gift", "kids gift", "toy set", "play set", "robotic",
			"robot", "drone", "remote control", "rc", "video game", "console",
			"playset", "educational kit", "science kit", "experiment kit",
			"music instrument", "drum", "piano", "guitar", "xylophone",
			"outdoor play", "swing", "slide", "sandbox", "trampoline",
			"water toy", "bath toy", "pool toy", "interactive toy",
			"smart toy", "coding toy", "magnetic tiles", "puzzle game",
			"brain teaser", "logic game", "strategy game", "collectible",
			"transformers", "diecast", "model kit", "craft kit", "art set",
			"painting set", "clay", "playdough", "slime", "kinetic sand",
			"fidget toy", "spinner", "pop it", "sensory toy",
			"developmental toy", "balance bike", "tricycle", "skateboard",
			"roller skates", "playhouse", "tent", "ball pit", "rocking horse",
		},
	},
	SectionAccessories: {
		CategoryAliases: []string{"accessories", "gadgets"},
		Keywords: []string{
			"charger", "cable", "adapter", "power bank", "battery",
			"headphone", "earphone", "mouse", "keyboard", "monitor",
			"speaker", "webcam", "router", "switch", "dock", "stand",
			"mount", "protector", "case", "cover",
		},
	},
}

// FacetKeywords expands named facet values into their own narrower keyword
// subsets, layered on top of the section rules. Facet values not listed here
// match literally against category/subcategory/tags.
var FacetKeywords = map[string][]string{
	// mobile segments
	"flagship": {"flagship", "premium", "pro", "ultra", "max", "pro max"},
	"midrange": {"mid", "mid-range", "lite", "fe"},
	"budget":   {"budget", "entry", "a series", "m series"},
	"gaming":   {"gaming", "rog", "redmagic", "nubia"},
	"camera":   {"camera", "photography", "zoom", "108mp"},
	"foldable": {"fold", "flip", "foldable", "z flip"},
	"5g":       {"5g"},

	// smart home segments
	"security":      {"security", "camera", "lock", "alarm", "sensor", "doorbell", "surveillance", "motion", "detector"},
	"lighting":      {"light", "bulb", "lamp", "led", "strip", "hue", "dimmer", "switch", "lighting"},
	"entertainment": {"tv", "speaker", "sound", "audio", "media", "streaming", "remote", "entertainment", "display"},
	"climate":       {"thermostat", "temperature", "climate", "air", "purifier", "fan", "heater", "cooler", "humidifier"},
}

// Sections lists the known storefront sections.
func Sections() []string {
	return []string{SectionMobile, SectionSmartHome, SectionToys, SectionAccessories}
}

// KnownSection reports whether name is a storefront section.
func KnownSection(name string) bool {
	_, ok := SectionRules[name]
	return ok
}
