package constants

// Entity Store Limits
const (
	// MaxEntities is the hard limit of live entities in a session
	MaxEntities = 4096

	// MinSize and MaxSize bound the size attribute of a spawned character
	MinSize = 1
	MaxSize = 4096
)
