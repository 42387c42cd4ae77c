package codec

import (
	"fmt"
	"sync"
)

// Factory constructs a fresh Codec instance for one host session. Unlike
// the teacher's DICOM transfer-syntax codecs, a Splash codec instance is
// not a stateless transform: splashfmt.Adapter carries a persistent
// encoder/decoder canvas that is only valid for the frame sequence of a
// single session (spec.md §5, "the encoder and decoder each own their
// state exclusively; there is no cross-instance sharing"). The registry
// therefore holds a constructor per format, not a shared instance, and
// mints a new session on every Get — two hosts that both look up "splash"
// must never end up painting on each other's canvas.
type Factory func() Codec

// registration pairs a format's identity (name, FourCC) with the factory
// that mints sessions for it.
type registration struct {
	name    string
	fourCC  string
	factory Factory
}

// Registry manages the available codec formats, keyed by both name and
// FourCC so a host can look a format up either way.
type Registry struct {
	mu      sync.RWMutex
	byKey   map[string]*registration
	entries []*registration
}

var defaultRegistry = &Registry{
	byKey: make(map[string]*registration),
}

// Register registers a codec factory under both its name and FourCC.
func Register(factory Factory) error {
	return defaultRegistry.Register(factory)
}

// Get mints a fresh codec session for the format named by name or FourCC.
func Get(nameOrFourCC string) (Codec, error) {
	return defaultRegistry.Get(nameOrFourCC)
}

// List mints one fresh session per registered format.
func List() []Codec {
	return defaultRegistry.List()
}

// Register samples factory once to learn the format's name and FourCC,
// then indexes the factory under both keys. It is an error for either key
// to already be claimed by a different name/FourCC pair: a name and its
// FourCC are a single identity, and the dual-key map must not let one
// format's registration silently shadow another's under a key collision.
func (r *Registry) Register(factory Factory) error {
	sample := factory()
	name, fourCC := sample.Name(), sample.FourCC()

	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, ok := r.byKey[name]; ok && (existing.name != name || existing.fourCC != fourCC) {
		return fmt.Errorf("%w: name %q already registered to FourCC %q", ErrCodecCollision, name, existing.fourCC)
	}
	if existing, ok := r.byKey[fourCC]; ok && (existing.name != name || existing.fourCC != fourCC) {
		return fmt.Errorf("%w: FourCC %q already registered to name %q", ErrCodecCollision, fourCC, existing.name)
	}
	if existing, ok := r.byKey[name]; ok {
		// Same identity registered again: swap in the new factory.
		existing.factory = factory
		return nil
	}

	reg := &registration{name: name, fourCC: fourCC, factory: factory}
	r.byKey[name] = reg
	r.byKey[fourCC] = reg
	r.entries = append(r.entries, reg)
	return nil
}

// Get looks up the registration for nameOrFourCC and mints a brand new
// Codec session from its factory. Every call returns an independent
// instance; callers that want to keep reusing one session (as
// registry_test.go's round-trip test does) must hold onto the returned
// value rather than calling Get again.
func (r *Registry) Get(nameOrFourCC string) (Codec, error) {
	r.mu.RLock()
	reg, ok := r.byKey[nameOrFourCC]
	r.mu.RUnlock()

	if !ok {
		return nil, ErrCodecNotFound
	}
	return reg.factory(), nil
}

// List mints one fresh session per distinct registered format.
func (r *Registry) List() []Codec {
	r.mu.RLock()
	defer r.mu.RUnlock()

	codecs := make([]Codec, 0, len(r.entries))
	for _, reg := range r.entries {
		codecs = append(codecs, reg.factory())
	}
	return codecs
}
