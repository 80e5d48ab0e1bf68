package types

import "time"

// Blob holds image content addressed by an opaque ID. The grid model only
// ever sees the ID; content bytes flow between the CLI, the store, and the
// renderer.
type Blob struct {
	BlobID    string    `json:"blob_id"`
	Name      string    `json:"name"`
	MediaType string    `json:"media_type"`
	Content   []byte    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// Validate checks that the blob can be stored.
func (b *Blob) Validate() error {
	if len(b.Content) == 0 {
		return ErrEmptyContent
	}
	return nil
}
