package distropop

import (
	"maps"
	"slices"
)

// MessageKey identifies a localized user-facing string.
type MessageKey string

// Message keys.
const (
	MsgStartTyping     MessageKey = "START_TYPING"
	MsgNoResult        MessageKey = "NO_RESULT"
	MsgNoData          MessageKey = "NO_DATA"
	MsgPopularity      MessageKey = "POPULARITY"
	MsgHits            MessageKey = "HITS"
	MsgPopularityShort MessageKey = "POPULARITY_SHORT"
	MsgHitsShort       MessageKey = "HITS_SHORT"
	MsgMonths12        MessageKey = "MONTHS12"
	MsgMonths6         MessageKey = "MONTHS6"
	MsgMonths3         MessageKey = "MONTHS3"
	MsgWeeks4          MessageKey = "WEEKS4"
	MsgWeeks1          MessageKey = "WEEKS1"
	MsgMore            MessageKey = "MORE"
)

// DefaultLanguage is used when a language has no translations.
const DefaultLanguage = "en"

var translations = map[string]map[MessageKey]string{
	"en": {
		MsgStartTyping:     "Start typing the distro name...",
		MsgNoResult:        "I can't find the distro you're looking for!",
		MsgNoData:          "No popularity data available.",
		MsgPopularity:      "Popularity",
		MsgHits:            "Hits per day",
		MsgPopularityShort: "Rank",
		MsgHitsShort:       "Hits",
		MsgMonths12:        "12 months",
		MsgMonths6:         "6 months",
		MsgMonths3:         "3 months",
		MsgWeeks4:          "4 weeks",
		MsgWeeks1:          "1 week",
		MsgMore:            "View on DistroWatch.",
	},
	"tr": {
		MsgStartTyping:     "Dağıtımın adını yazmaya başlayın...",
		MsgNoResult:        "Aradığınız dağıtımı bulamadım!",
		MsgNoData:          "Rağbet bilgisi bulunamadı.",
		MsgPopularity:      "Rağbet oranı",
		MsgHits:            "Günlük ziyaret",
		MsgPopularityShort: "Sıra",
		MsgHitsShort:       "Ziyaret",
		MsgMonths12:        "12 ay",
		MsgMonths6:         "6 ay",
		MsgMonths3:         "3 ay",
		MsgWeeks4:          "4 hafta",
		MsgWeeks1:          "1 hafta",
		MsgMore:            "Dağıtımın DistroWatch sayfasını aç.",
	},
}

var windowMessageKeys = [NumWindows]MessageKey{
	MsgMonths12,
	MsgMonths6,
	MsgMonths3,
	MsgWeeks4,
	MsgWeeks1,
}

// Translate returns the string for key in lang, falling back to English.
// Unknown keys return the key itself.
func Translate(lang string, key MessageKey) string {
	if s, ok := translations[lang][key]; ok {
		return s
	}
	if s, ok := translations[DefaultLanguage][key]; ok {
		return s
	}
	return string(key)
}

// Languages returns the sorted language codes that have translations.
func Languages() []string {
	return slices.Sorted(maps.Keys(translations))
}

// WindowName returns the localized name of the window.
func WindowName(lang string, w Window) string {
	if w < 0 || int(w) >= NumWindows {
		return ""
	}
	return Translate(lang, windowMessageKeys[w])
}
