package models

import "time"

// Document is the metadata row of an encrypted stored document. The actual
// content lives as an AES-GCM sealed blob at Filepath and is decryptable
// only with the key derived from the uploading user's credential material.
type Document struct {
	// DocID is the monotonic integer identifier assigned by storage.
	DocID int64 `json:"docid"`

	// OwnerUUID references the uploading user's derived UUID.
	OwnerUUID string `json:"uuid"`

	// Filename is the original name of the uploaded file.
	Filename string `json:"filename"`

	// Filepath is the opaque locator of the ciphertext blob.
	// Internal to the server; never serialized.
	Filepath string `json:"-"`

	// Category is the classifier-assigned label from the closed category set.
	Category string `json:"category"`

	// Author is taken from extracted document metadata, falling back to the
	// uploader's username. May be empty.
	Author string `json:"author,omitempty"`

	// Summary is the extractive summary produced at upload time. May be empty.
	Summary string `json:"summary,omitempty"`

	// UploadDate is the timestamp when the document row was created.
	// Documents are never updated in place; a re-upload creates a new row.
	UploadDate time.Time `json:"upload_date"`
}

// TableName returns the name of the database table
// associated with the Document model.
func (d Document) TableName() string {
	return "documents"
}
