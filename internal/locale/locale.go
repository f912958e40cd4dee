// Package locale renders validation errors as user-facing messages.
package locale

import (
	"errors"

	"github.com/UnknownOlympus/meridian/internal/format"
	"github.com/UnknownOlympus/meridian/internal/input"
	"github.com/UnknownOlympus/meridian/internal/presets"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// Message keys. The English text doubles as the key.
const (
	keyNotNumeric     = "Please enter valid numeric values"
	keyLatitudeRange  = "Latitude must be between -90° and 90°"
	keyLongitudeRange = "Longitude must be between -180° and 180°"
	keyAngleUnit      = "Unknown angle unit"
	keyPrecision      = "Precision must be 3, 6 or 9"
	keyPreset         = "Unknown preset"
	keyMalformedRow   = "Each row must contain three comma-separated values"
)

// Keys for messages that do not stem from a validation error.
const (
	KeyGeneric          = "An error occurred"
	KeyMalformedBody    = "Malformed request body"
	KeyMethodNotAllowed = "Method not allowed"
	KeyRateLimited      = "Rate limit exceeded"
	KeyRow              = "Row %d"
)

// Supported lists the languages with translations, the first one being the fallback.
var Supported = []language.Tag{language.English, language.German}

var (
	matcher = language.NewMatcher(Supported)
	cat     = buildCatalog()
)

var translations = map[language.Tag]map[string]string{
	language.German: {
		keyNotNumeric:     "Bitte geben Sie gültige numerische Werte ein",
		keyLatitudeRange:  "Latitude muss zwischen -90° und 90° liegen",
		keyLongitudeRange: "Longitude muss zwischen -180° und 180° liegen",
		keyAngleUnit:      "Unbekannte Winkeleinheit",
		keyPrecision:      "Nachkommastellen müssen 3, 6 oder 9 sein",
		keyPreset:         "Unbekannte Vorgabe",
		keyMalformedRow:   "Jede Zeile muss drei kommagetrennte Werte enthalten",

		KeyGeneric:          "Ein Fehler ist aufgetreten",
		KeyMalformedBody:    "Fehlerhafter Anfrageinhalt",
		KeyMethodNotAllowed: "Methode nicht erlaubt",
		KeyRateLimited:      "Anfragelimit überschritten",
		KeyRow:              "Zeile %d",
	},
}

func buildCatalog() catalog.Catalog {
	builder := catalog.NewBuilder(catalog.Fallback(language.English))
	for key := range translations[language.German] {
		if err := builder.SetString(language.English, key, key); err != nil {
			panic("failed to register message: " + err.Error())
		}
	}
	for tag, msgs := range translations {
		for key, msg := range msgs {
			if err := builder.SetString(tag, key, msg); err != nil {
				panic("failed to register translation: " + err.Error())
			}
		}
	}
	return builder
}

// Match picks the supported language that best fits an Accept-Language header value.
// Unparseable or empty headers yield English.
func Match(acceptLanguage string) language.Tag {
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return Supported[0]
	}
	_, idx, _ := matcher.Match(tags...)
	return Supported[idx]
}

// Parse resolves a language name such as "de" or "en-GB" to a supported language.
func Parse(name string) language.Tag {
	return Match(name)
}

// Message returns the localized text for err.
func Message(tag language.Tag, err error) string {
	return Text(tag, key(err))
}

// Text returns the localized text for one of the exported keys, formatted with args.
func Text(tag language.Tag, key string, args ...any) string {
	printer := message.NewPrinter(tag, message.Catalog(cat))
	return printer.Sprintf(key, args...)
}

func key(err error) string {
	switch {
	case errors.Is(err, input.ErrNotNumeric):
		return keyNotNumeric
	case errors.Is(err, input.ErrLatitudeRange):
		return keyLatitudeRange
	case errors.Is(err, input.ErrLongitudeRange):
		return keyLongitudeRange
	case errors.Is(err, input.ErrUnknownAngleUnit):
		return keyAngleUnit
	case errors.Is(err, format.ErrInvalidPrecision):
		return keyPrecision
	case errors.Is(err, presets.ErrUnknownPreset):
		return keyPreset
	case errors.Is(err, input.ErrMalformedRow):
		return keyMalformedRow
	default:
		return KeyGeneric
	}
}
