package mempool

// Config provides a PoolConfig with default settings.
var Config = NewConfig()

// PoolConfig is used by pools and allocators that were created without an
// explicit grow size. Please see the documentation at
// https://github.com/replay/go-memory-pool for more information
type PoolConfig struct {
	GrowSize uint
}

// NewConfig returns a new pool configuration with default settings.
func NewConfig() PoolConfig {
	return PoolConfig{
		GrowSize: 1024,
	}
}
