package store

// DocumentStore persists whole named documents. There are no partial
// updates: Load reads the entire document and Save overwrites it.
// Serializing concurrent access is the caller's responsibility.
type DocumentStore interface {
	Load(name string, out any) error
	Save(name string, doc any) error
}

// Document names used by the repositories.
const (
	RequestsDocument     = "requests"
	GuildConfigsDocument = "guild_configs"
	GuildsDocument       = "guilds"
)
