package mongodb

// Config contains recipe store settings. An empty URI disables the store.
type Config struct {
	URI        string `env:"MONGO_URI"`
	Database   string `env:"MONGO_DATABASE"   envDefault:"saucier"`
	Collection string `env:"MONGO_COLLECTION" envDefault:"recipes"`
}

// Enabled reports whether a store should be created.
func (c Config) Enabled() bool {
	return c.URI != ""
}
