package document

import "errors"

var (
	// ErrMissingField is returned when a required document field is absent
	// or empty (e.g. a node with no function_name).
	ErrMissingField = errors.New("document: missing required field")

	// ErrDanglingEdge is returned when an edge refers to a node index that
	// does not appear in the document's node list.
	ErrDanglingEdge = errors.New("document: edge refers to unknown node index")

	// ErrDocumentNotFound is returned by Store.Load/Delete for an unknown ID.
	ErrDocumentNotFound = errors.New("document: not found")

	// ErrEmptyName is returned by Store.Save when name is empty.
	ErrEmptyName = errors.New("document: name is required")
)
