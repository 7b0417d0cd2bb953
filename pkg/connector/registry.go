package connector

import (
	"fmt"
	"sort"
	"sync"
)

// Names of the built-in connector shapes.
const (
	KindStateMachine = "state-machine"
	KindStraight     = "straight"
)

// Factory builds a connector shape from a config.
type Factory func(Config) Connector

var (
	registryMu sync.RWMutex
	registry   = map[string]Factory{}
)

func init() {
	Register(KindStateMachine, func(cfg Config) Connector { return NewStateMachine(cfg) })
	Register(KindStraight, func(cfg Config) Connector { return NewStraight(cfg) })
}

// Register makes a connector shape available by name. Registering the
// same name twice panics, like image format registration does.
func Register(kind string, f Factory) {
	registryMu.Lock()
	defer registryMu.Unlock()
	if _, dup := registry[kind]; dup {
		panic(fmt.Sprintf("connector: Register called twice for kind %q", kind))
	}
	registry[kind] = f
}

// New builds the named connector shape with the given config.
func New(kind string, cfg Config) (Connector, error) {
	registryMu.RLock()
	f, ok := registry[kind]
	registryMu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("connector: unknown kind %q (have %v)", kind, Kinds())
	}
	return f(cfg), nil
}

// Kinds returns the registered shape names, sorted.
func Kinds() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	kinds := make([]string, 0, len(registry))
	for k := range registry {
		kinds = append(kinds, k)
	}
	sort.Strings(kinds)
	return kinds
}
