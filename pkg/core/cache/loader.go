package cache

import (
	"context"

	cmnerror "github.com/msto63/commons/foundation/core/error"
)

// Loader produces the value for a missing entry
type Loader func(ctx context.Context) (interface{}, error)

// GetOrLoad returns the element stored under typ and key, calling load when
// it is missing. Concurrent calls for the same key share a single load, run
// with the context of the caller that started it. Failed loads are not cached.
func (m *Manager) GetOrLoad(ctx context.Context, typ string, key interface{}, load Loader) (interface{}, error) {
	if load == nil {
		return nil, cmnerror.IllegalArgument("Cache loader cannot be nil.")
	}

	cacheKey, err := m.buildKey(typ, key)
	if err != nil {
		return nil, err
	}

	if value, ok := m.lookup(cacheKey); ok {
		return value, nil
	}

	value, err, _ := m.loads.Do(cacheKey, func() (interface{}, error) {
		if value, ok := m.peek(cacheKey); ok {
			return value, nil
		}

		loadCtx := ctx
		if m.loadTimeout > 0 {
			var cancel context.CancelFunc
			loadCtx, cancel = context.WithTimeout(ctx, m.loadTimeout)
			defer cancel()
		}

		value, err := load(loadCtx)
		if err != nil {
			return nil, err
		}

		if !isEmptyValue(value) {
			m.store(cacheKey, value)
			m.logger.Debug("Loaded cache entry {}.{}: {}", typ, key, value)
		}
		return value, nil
	})
	if err != nil {
		m.logger.Warn("load {}.{}: {}", typ, key, err)
		return nil, err
	}
	return value, nil
}
