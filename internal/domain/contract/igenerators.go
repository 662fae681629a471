package contract

// IUUIDGenerator generates identifiers for new documents.
type IUUIDGenerator interface {
	NewUUID() string
}

// IRandomGenerator produces random strings.
type IRandomGenerator interface {
	// GenerateBase36 returns n characters drawn from [0-9a-z].
	GenerateBase36(n int) (string, error)
}
