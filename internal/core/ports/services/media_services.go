package services

import "context"

// MediaStorageSvc is the external upload collaborator: store bytes, return a
// public URL reference, fail cleanly. Callers must not persist any field
// referencing media until Store has succeeded.
type MediaStorageSvc interface {
	// Store uploads the file at localPath under the given folder and returns
	// its public URL. Failures surface as ErrUpload.
	Store(ctx context.Context, localPath string, folder string) (string, error)
}
