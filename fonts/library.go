package fonts

import (
	"strings"
	"sync"

	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/gofont/gomonobolditalic"
	"golang.org/x/image/font/gofont/gomonoitalic"
	"golang.org/x/image/font/gofont/goregular"
)

// FamilyFaces holds the font data of up to four faces of one family.
// Missing variants fall back to Regular.
type FamilyFaces struct {
	Regular    []byte
	Bold       []byte
	Italic     []byte
	BoldItalic []byte
}

// Library resolves (family, weight, italic) requests to parsed font
// sources. Lookups go through the device's alias table first, then the
// registered families, then the embedded Go fonts, so text rendering
// never depends on fonts installed on the machine.
//
// Library is safe for concurrent use.
type Library struct {
	mu       sync.RWMutex
	aliases  map[string]string
	families map[string]*family
}

type family struct {
	regular, bold, italic, boldItalic lazySource
}

// lazySource defers parsing until a variant is first used.
type lazySource struct {
	once sync.Once
	data []byte
	src  *Source
	err  error
}

func (l *lazySource) source() (*Source, error) {
	l.once.Do(func() {
		if len(l.data) == 0 {
			l.err = ErrEmptyFontData
			return
		}
		l.src, l.err = NewSource(l.data)
		l.data = nil
	})
	return l.src, l.err
}

// NewLibrary creates a library preloaded with the embedded Go families:
// "sans" (also the fallback for serif requests, as no serif face is
// bundled) and "mono".
func NewLibrary() *Library {
	l := &Library{
		aliases:  make(map[string]string),
		families: make(map[string]*family),
	}
	l.families["sans"] = &family{
		regular:    lazySource{data: goregular.TTF},
		bold:       lazySource{data: gobold.TTF},
		italic:     lazySource{data: goitalic.TTF},
		boldItalic: lazySource{data: gobolditalic.TTF},
	}
	l.families["mono"] = &family{
		regular:    lazySource{data: gomono.TTF},
		bold:       lazySource{data: gomonobold.TTF},
		italic:     lazySource{data: gomonoitalic.TTF},
		boldItalic: lazySource{data: gomonobolditalic.TTF},
	}
	return l
}

// SetAliases replaces the alias table mapping requested family names to
// resolved ones. Keys and values are matched case-insensitively.
func (l *Library) SetAliases(aliases map[string]string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.aliases = make(map[string]string, len(aliases))
	for from, to := range aliases {
		l.aliases[normalizeFamily(from)] = to
	}
}

// AddFamily registers font data under a family name, replacing any
// previous registration. At least the regular face must be present.
func (l *Library) AddFamily(name string, faces FamilyFaces) error {
	if len(faces.Regular) == 0 {
		return ErrEmptyFontData
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.families[normalizeFamily(name)] = &family{
		regular:    lazySource{data: faces.Regular},
		bold:       lazySource{data: faces.Bold},
		italic:     lazySource{data: faces.Italic},
		boldItalic: lazySource{data: faces.BoldItalic},
	}
	return nil
}

// Resolve returns the source for a family at the given weight and
// slant. Unknown families resolve to the embedded sans family; a
// missing variant falls back to the family's regular face.
func (l *Library) Resolve(name string, weight int, italic bool) (*Source, error) {
	l.mu.RLock()
	key := normalizeFamily(name)
	if to, ok := l.aliases[key]; ok {
		key = normalizeFamily(to)
	}
	fam, ok := l.families[key]
	if !ok {
		if generic, found := genericFamilies[key]; found {
			fam = l.families[generic]
		} else {
			fam = l.families["sans"]
		}
	}
	l.mu.RUnlock()

	if fam == nil {
		return nil, ErrUnknownFamily
	}

	bold := weight >= 700
	var pick *lazySource
	switch {
	case bold && italic:
		pick = &fam.boldItalic
	case bold:
		pick = &fam.bold
	case italic:
		pick = &fam.italic
	default:
		pick = &fam.regular
	}
	if src, err := pick.source(); err == nil {
		return src, nil
	}
	return fam.regular.source()
}

// genericFamilies maps the host's generic family names onto bundled
// families.
var genericFamilies = map[string]string{
	"":                "sans",
	"sans":            "sans",
	"sans-serif":      "sans",
	"sansserif":       "sans",
	"arial":           "sans",
	"helvetica":       "sans",
	"serif":           "sans",
	"times":           "sans",
	"times new roman": "sans",
	"mono":            "mono",
	"monospace":       "mono",
	"courier":         "mono",
	"courier new":     "mono",
}

func normalizeFamily(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
