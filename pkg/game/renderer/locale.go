package renderer

import (
	_ "embed"

	"github.com/leonelquinteros/gotext"
)

//go:embed locale/en.po
var englishPo []byte

// InitLocale installs the built-in English catalogue as gotext's storage
func InitLocale() {
	po := gotext.NewPo()
	po.Parse(englishPo)

	locale := gotext.NewLocale("", "en")
	locale.AddTranslator("default", po)
	gotext.SetStorage(locale)
}
