// Package locale holds the player-facing message catalogs.
package locale

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"slices"
	"strings"

	"github.com/leonelquinteros/gotext"
)

//go:embed locales/*.po
var catalogs embed.FS

var ErrUnknownLanguage = errors.New("unknown language")

// Message IDs are the English text. Catalogs translate them.
const (
	Title       = "Minesweeper"
	Board       = "Board %s"
	MinesLeft   = "Mines left: %d"
	CellsToOpen = "Cells to open: %d"
	Time        = "Time: %s"
	Won         = "You won!"
	Lost        = "Boom! You lost."
	NewGameHint = "Press n for a new game"
	HelpMove    = "move"
	HelpReveal  = "reveal"
	HelpFlag    = "flag"
	HelpChord   = "chord"
	HelpNew     = "new game"
	HelpQuit    = "quit"
)

type Catalog struct {
	lang string
	po   *gotext.Po
}

// Languages lists the embedded catalogs, sorted.
func Languages() []string {
	entries, _ := fs.ReadDir(catalogs, "locales")
	langs := make([]string, 0, len(entries))
	for _, e := range entries {
		langs = append(langs, strings.TrimSuffix(e.Name(), ".po"))
	}
	slices.Sort(langs)
	return langs
}

func Load(lang string) (*Catalog, error) {
	data, err := catalogs.ReadFile(path.Join("locales", lang+".po"))
	if err != nil {
		return nil, fmt.Errorf("%w: %q (have %s)",
			ErrUnknownLanguage, lang, strings.Join(Languages(), ", "))
	}
	po := gotext.NewPo()
	po.Parse(data)
	return &Catalog{lang: lang, po: po}, nil
}

// MustLoad is like [Load] but falls back to English.
func MustLoad(lang string) *Catalog {
	if c, err := Load(lang); err == nil {
		return c
	}
	c, err := Load("en")
	if err != nil {
		panic(err)
	}
	return c
}

func (c *Catalog) Language() string {
	return c.lang
}

// Get translates key and formats it with vars. Unknown keys are formatted
// as they are.
func (c *Catalog) Get(key string, vars ...any) string {
	return c.po.Get(key, vars...)
}

// Has reports whether the catalog carries a translation for key.
func (c *Catalog) Has(key string) bool {
	return c.po.IsTranslated(key)
}
