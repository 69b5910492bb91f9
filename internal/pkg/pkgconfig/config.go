package pkgconfig

// Config is the read-only configuration surface the application depends on.
//
// Implementations load values from a concrete backend (file, env) and expose
// them through typed getters. Close releases any backend resources.
type Config interface {
	GetInt(key string) int64
	GetBool(key string) bool
	GetFloat(key string) float64
	GetString(key string) string
	GetBinary(key string) []byte
	GetArray(key string) []string
	GetMap(key string) map[string]string
	Close() error
}
