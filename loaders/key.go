// Package loaders provides access to the verifying key bytes a deployment
// is compiled against.
package loaders

import (
	"embed"
	"os"
	"sync"

	"github.com/pkg/errors"
)

//go:embed keys/mint.vk
var defaultKeys embed.FS

// embeddedKeyPath is the location of the compiled-in mint circuit key.
const embeddedKeyPath = "keys/mint.vk"

// VerificationKeyLoader loads serialized verifying key bytes.
type VerificationKeyLoader interface {
	Load() ([]byte, error)
}

// FSKeyLoader reads a key from the filesystem.
type FSKeyLoader struct {
	Path string
}

// Load reads the key file at the configured path.
func (m FSKeyLoader) Load() ([]byte, error) {
	data, err := os.ReadFile(m.Path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read verification key %s", m.Path)
	}
	return data, nil
}

// EmbeddedKeyLoader loads the compiled-in key, optionally deferring to a
// custom loader first. Loaded bytes are cached unless caching is disabled.
type EmbeddedKeyLoader struct {
	keyLoader VerificationKeyLoader
	cached    []byte
	cacheMu   sync.RWMutex
	useCache  bool
}

// Option defines a functional option for configuring EmbeddedKeyLoader.
type Option func(*EmbeddedKeyLoader)

// WithKeyLoader sets a custom primary loader that is tried before falling
// back to the embedded key.
func WithKeyLoader(loader VerificationKeyLoader) Option {
	return func(e *EmbeddedKeyLoader) {
		e.keyLoader = loader
	}
}

// WithCacheDisabled disables caching of loaded key bytes.
func WithCacheDisabled() Option {
	return func(e *EmbeddedKeyLoader) {
		e.useCache = false
	}
}

// NewEmbeddedKeyLoader creates a loader backed by the embedded key, with
// caching enabled by default.
func NewEmbeddedKeyLoader(opts ...Option) *EmbeddedKeyLoader {
	loader := &EmbeddedKeyLoader{useCache: true}
	for _, opt := range opts {
		opt(loader)
	}
	return loader
}

// Load returns the verifying key bytes: from cache when warm, from the
// custom loader when configured, otherwise from the embedded copy.
func (e *EmbeddedKeyLoader) Load() ([]byte, error) {
	if e.useCache {
		e.cacheMu.RLock()
		cached := e.cached
		e.cacheMu.RUnlock()
		if cached != nil {
			return cached, nil
		}
	}

	if e.keyLoader != nil {
		data, err := e.keyLoader.Load()
		if err == nil {
			e.store(data)
			return data, nil
		}
		// fall back to embedded key
	}

	data, err := defaultKeys.ReadFile(embeddedKeyPath)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read embedded verification key")
	}
	e.store(data)
	return data, nil
}

func (e *EmbeddedKeyLoader) store(data []byte) {
	if !e.useCache {
		return
	}
	e.cacheMu.Lock()
	e.cached = data
	e.cacheMu.Unlock()
}
