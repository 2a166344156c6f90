package discord

// DefaultLocale is the locale a bare name or description is attributed
// to when no explicit localisation is given.
const DefaultLocale = "en-US"

// Locale identifiers Discord accepts in localisation tables.
const (
	LocaleIndonesian   = "id"
	LocaleDanish       = "da"
	LocaleGerman       = "de"
	LocaleEnglishGB    = "en-GB"
	LocaleEnglishUS    = "en-US"
	LocaleSpanish      = "es-ES"
	LocaleSpanishLATAM = "es-419"
	LocaleFrench       = "fr"
	LocaleCroatian     = "hr"
	LocaleItalian      = "it"
	LocaleLithuanian   = "lt"
	LocaleHungarian    = "hu"
	LocaleDutch        = "nl"
	LocaleNorwegian    = "no"
	LocalePolish       = "pl"
	LocalePortugueseBR = "pt-BR"
	LocaleRomanian     = "ro"
	LocaleFinnish      = "fi"
	LocaleSwedish      = "sv-SE"
	LocaleVietnamese   = "vi"
	LocaleTurkish      = "tr"
	LocaleCzech        = "cs"
	LocaleGreek        = "el"
	LocaleBulgarian    = "bg"
	LocaleRussian      = "ru"
	LocaleUkrainian    = "uk"
	LocaleHindi        = "hi"
	LocaleThai         = "th"
	LocaleChineseCN    = "zh-CN"
	LocaleJapanese     = "ja"
	LocaleChineseTW    = "zh-TW"
	LocaleKorean       = "ko"
)

// LocaleMap maps a locale identifier to a translated string.
type LocaleMap map[string]string

// Locale carries the localised name and description tables for a command
// or option.
type Locale struct {
	Names        LocaleMap `json:"name_localizations,omitempty"`
	Descriptions LocaleMap `json:"description_localizations,omitempty"`
}

// DefaultName returns the en-US name, falling back to any entry.
func (l *Locale) DefaultName() string {
	return localeDefault(l.Names)
}

// DefaultDescription returns the en-US description, falling back to any
// entry.
func (l *Locale) DefaultDescription() string {
	return localeDefault(l.Descriptions)
}

func localeDefault(m LocaleMap) string {
	if v, ok := m[DefaultLocale]; ok {
		return v
	}
	for _, v := range m {
		return v
	}
	return ""
}
