package common

// DefaultArchiveID is the logical id of the single archive document.
const DefaultArchiveID = "default"

// LocalStorageKey is the key of the local key/value slot holding the
// serialized archive document.
const LocalStorageKey = "lifeArchiveData"
