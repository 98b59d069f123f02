package observability

import (
	"fmt"
	"log/slog"
	"sort"
	"sync"
)

// observers maps observer names to implementations so configuration can
// select one by string.
var (
	observers = map[string]Observer{
		"noop": NoOpObserver{},
		"slog": NewSlogObserver(slog.Default()),
	}
	mutex sync.RWMutex
)

// GetObserver retrieves a registered observer by name.
//
//	observer, err := observability.GetObserver("slog")
//	if err != nil {
//	    log.Fatal(err)
//	}
func GetObserver(name string) (Observer, error) {
	mutex.RLock()
	defer mutex.RUnlock()

	obs, exists := observers[name]
	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrUnknownObserver, name)
	}
	return obs, nil
}

// RegisterObserver registers observer under name, replacing any existing
// entry. Registering "slog" again is how a binary points framework events at
// its own logger.
func RegisterObserver(name string, observer Observer) {
	mutex.Lock()
	defer mutex.Unlock()

	observers[name] = observer
}

// ListObservers returns the registered observer names, sorted.
func ListObservers() []string {
	mutex.RLock()
	defer mutex.RUnlock()

	names := make([]string, 0, len(observers))
	for name := range observers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
