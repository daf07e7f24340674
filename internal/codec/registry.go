package codec

import (
	"fmt"
	"sort"
	"sync"
)

// Global codec registry. The registry exists for name-based lookup from the
// CLI and tests; cascade order is owned by the solver and never derived from
// registry iteration order.
var (
	codecRegistry = make(map[string]Codec)
	registryMu    sync.RWMutex
)

// Register adds a codec to the global registry.
func Register(c Codec) error {
	if c == nil {
		return fmt.Errorf("cannot register nil codec")
	}
	name := c.Name()
	if name == "" {
		return fmt.Errorf("codec name cannot be empty")
	}

	registryMu.Lock()
	defer registryMu.Unlock()

	if _, exists := codecRegistry[name]; exists {
		return fmt.Errorf("codec %s is already registered", name)
	}
	codecRegistry[name] = c
	return nil
}

// Get retrieves a codec from the registry by name.
func Get(name string) (Codec, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()

	c, exists := codecRegistry[name]
	return c, exists
}

// List returns all registered codecs sorted by name.
func List() []Codec {
	registryMu.RLock()
	defer registryMu.RUnlock()

	codecs := make([]Codec, 0, len(codecRegistry))
	for _, c := range codecRegistry {
		codecs = append(codecs, c)
	}
	sort.Slice(codecs, func(i, j int) bool {
		return codecs[i].Name() < codecs[j].Name()
	})
	return codecs
}

func init() {
	for _, c := range []Codec{
		Base64Codec{},
		HexCodec{},
		ROT13Codec{},
		BinaryCodec{},
	} {
		if err := Register(c); err != nil {
			panic(err)
		}
	}
}
