package res

import (
	"fmt"
	"sync"
)

type iconKey struct {
	name string
	px   int
}

type iconPNG struct {
	data []byte
	name string
}

// Library turns document image sources and bundled icon names into
// PDF-ready PNG payloads. Decoded results are cached; it is safe for
// concurrent use.
type Library struct {
	loader     *Loader
	defaultDPI float64

	mu     sync.Mutex
	images map[string]*Picture
	icons  map[iconKey]iconPNG
}

// NewLibrary creates a library on top of loader. defaultDPI applies to
// images without resolution metadata.
func NewLibrary(loader *Loader, defaultDPI float64) *Library {
	if defaultDPI <= 0 {
		defaultDPI = DefaultDPI
	}
	return &Library{
		loader:     loader,
		defaultDPI: defaultDPI,
		images:     make(map[string]*Picture),
		icons:      make(map[iconKey]iconPNG),
	}
}

// Image loads and normalizes the picture at source.
func (lib *Library) Image(source string) (*Picture, error) {
	lib.mu.Lock()
	if pic, ok := lib.images[source]; ok {
		lib.mu.Unlock()
		return pic, nil
	}
	lib.mu.Unlock()

	res, err := lib.loader.LoadImage(source)
	if err != nil {
		return nil, err
	}
	pic, err := DecodeImage(res.Data, lib.defaultDPI)
	if err != nil {
		return nil, fmt.Errorf("image %s: %w", shorten(source), err)
	}

	lib.mu.Lock()
	lib.images[source] = pic
	lib.mu.Unlock()
	return pic, nil
}

// Icon rasterizes a bundled SVG icon to a px×px PNG.
func (lib *Library) Icon(name string, px int) ([]byte, string, error) {
	key := iconKey{name, px}
	lib.mu.Lock()
	if ic, ok := lib.icons[key]; ok {
		lib.mu.Unlock()
		return ic.data, ic.name, nil
	}
	lib.mu.Unlock()

	res, err := lib.loader.LoadAsset(name)
	if err != nil {
		return nil, "", err
	}
	data, id, err := IconPNG(res.Data, px)
	if err != nil {
		return nil, "", fmt.Errorf("icon %s: %w", name, err)
	}

	lib.mu.Lock()
	lib.icons[key] = iconPNG{data: data, name: id}
	lib.mu.Unlock()
	return data, id, nil
}
