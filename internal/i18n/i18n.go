// Package i18n translates the user-facing CLI messages. Keys are the
// English format strings; Spanish is the default language.
package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

var supported = []language.Tag{language.Spanish, language.English}

var matcher = language.NewMatcher(supported)

var spanish = map[string]string{
	"text":                            "texto",
	"braille":                         "braille",
	"valid braille":                   "braille válido",
	"invalid braille":                 "braille no válido",
	"text can be converted":           "el texto se puede convertir",
	"text cannot be converted: %s":    "el texto no se puede convertir: %s",
	"history is empty":                "el historial está vacío",
	"deleted entry %d":                "entrada %d eliminada",
	"cleared %d entries":              "%d entradas eliminadas",
	"total conversions":               "conversiones totales",
	"text to braille":                 "texto a braille",
	"braille to text":                 "braille a texto",
	"characters converted":            "caracteres convertidos",
	"conversions in the last %d days": "conversiones en los últimos %d días",
	"exported %d entries to %s":       "%d entradas exportadas a %s",
	"sign %d saved":                   "señal %d guardada",
	"no signs yet":                    "todavía no hay señales",
	"deleted sign %d":                 "señal %d eliminada",
	"wrote %s":                        "se escribió %s",
	"downloads":                       "descargas",
	"remote backend reachable in %v":  "servidor remoto accesible en %v",
	"no remote backend configured":    "no hay servidor remoto configurado",
}

// Printer formats messages in one language.
type Printer struct {
	tag language.Tag
	p   *message.Printer
}

// New returns a printer for the closest supported match of lang. Unknown
// or malformed tags fall back to Spanish.
func New(lang string) Printer {
	tag := supported[0]
	if t, err := language.Parse(lang); err == nil {
		_, idx, _ := matcher.Match(t)
		tag = supported[idx]
	}

	b := catalog.NewBuilder(catalog.Fallback(language.English))
	for key, msg := range spanish {
		_ = b.SetString(language.Spanish, key, msg)
		_ = b.SetString(language.English, key, key)
	}
	return Printer{tag: tag, p: message.NewPrinter(tag, message.Catalog(b))}
}

func (p Printer) Sprintf(key string, args ...any) string {
	return p.p.Sprintf(key, args...)
}

// Lang returns the BCP 47 tag in use.
func (p Printer) Lang() string { return p.tag.String() }
