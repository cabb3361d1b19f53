package model

// StoredFile represents a file held in the storage directory, as exposed to
// API clients. This is a pure domain model with no persistence tags; the
// on-disk filename is the only identity the system tracks.
type StoredFile struct {
	Filename string `json:"filename"`
	URL      string `json:"url"`
}
