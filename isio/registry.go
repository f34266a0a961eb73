package isio

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/katalvlaran/implication/is"
)

// ReaderFunc parses an ImplicationalSystem out of r.
type ReaderFunc func(r io.Reader) (*is.ImplicationalSystem, error)

// WriterFunc serializes sys to w.
type WriterFunc func(w io.Writer, sys *is.ImplicationalSystem) error

// Factory pairs the reader and writer registered for one file extension.
type Factory struct {
	Read  ReaderFunc
	Write WriterFunc
}

// registry is the process-wide extension -> Factory map (spec §6: "a
// process-wide map from file-extension string to (reader, writer)"). Built
// once, then read far more often than it is written, so lookups take the
// read lock and registration the write lock.
var (
	registryOnce sync.Once
	registryMu   sync.RWMutex
	registry     map[string]Factory
)

func ensureRegistry() {
	registryOnce.Do(func() {
		registry = map[string]Factory{
			".is": {Read: Parse, Write: Write},
		}
	})
}

// RegisterFactory installs (or replaces) the Factory used for ext, e.g.
// ".is". ext is matched exactly as returned by filepath.Ext, including the
// leading dot.
func RegisterFactory(ext string, f Factory) {
	ensureRegistry()

	registryMu.Lock()
	defer registryMu.Unlock()
	registry[ext] = f
}

// factoryFor looks up the Factory registered for path's extension.
func factoryFor(path string) (Factory, error) {
	ensureRegistry()

	ext := filepath.Ext(path)

	registryMu.RLock()
	defer registryMu.RUnlock()

	f, ok := registry[ext]
	if !ok {
		return Factory{}, fmt.Errorf("%w: %q", ErrUnknownExtension, ext)
	}

	return f, nil
}

// Load reads an ImplicationalSystem from path, dispatching on its extension
// via the registry.
func Load(path string) (*is.ImplicationalSystem, error) {
	f, err := factoryFor(path)
	if err != nil {
		return nil, err
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrIO, err)
	}
	defer file.Close()

	return f.Read(file)
}

// Save writes sys to path, dispatching on its extension via the registry.
func Save(path string, sys *is.ImplicationalSystem) error {
	f, err := factoryFor(path)
	if err != nil {
		return err
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrIO, err)
	}
	defer file.Close()

	return f.Write(file, sys)
}
