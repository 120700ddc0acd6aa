package res

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
)

// Icon names shipped with the program.
const (
	IconChecked   = "checked.svg"
	IconUnchecked = "unchecked.svg"
	IconWarning   = "warning.svg"
)

//go:embed assets/*.svg
var bundled embed.FS

// BundleDir returns the directory holding the running executable, with
// symlinks resolved. Assets placed in an "assets" folder next to the binary
// override the bundled copies.
func BundleDir() string {
	exe, err := os.Executable()
	if err != nil {
		return ""
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Dir(exe)
}

// LoadAsset returns a named asset. The search paths are tried first, then
// the assets folder of the bundle directory, then the embedded copy.
func (l *Loader) LoadAsset(name string) (*Resource, error) {
	key := "asset:" + name
	l.cacheLock.RLock()
	if res, ok := l.cache[key]; ok {
		l.cacheLock.RUnlock()
		return res, nil
	}
	dirs := append([]string(nil), l.searchPaths...)
	l.cacheLock.RUnlock()

	if dir := BundleDir(); dir != "" {
		dirs = append(dirs, filepath.Join(dir, "assets"))
	}

	var res *Resource
	for _, dir := range dirs {
		p := filepath.Join(dir, name)
		if data, err := os.ReadFile(p); err == nil {
			res = newResource(p, data, declaredType(p))
			break
		}
	}
	if res == nil {
		data, err := fs.ReadFile(bundled, path.Join("assets", name))
		if err != nil {
			return nil, fmt.Errorf("%w: asset %s", ErrNotFound, name)
		}
		res = newResource("embedded:"+name, data, declaredType(name))
	}

	l.cacheLock.Lock()
	l.cache[key] = res
	l.cacheLock.Unlock()
	return res, nil
}
