package imgur

// NewImageHostRepositoryForTest exports newImageHostRepository for testing.
var NewImageHostRepositoryForTest = newImageHostRepository //nolint:gochecknoglobals // test export
