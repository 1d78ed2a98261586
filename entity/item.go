package entity

import "time"

// Entity is one remote file or directory record parsed from a single
// <response> element of a multistatus body.
type Entity struct {
	Href          string
	DisplayName   string
	IsDir         bool
	Size          int64
	ContentType   string
	LastModified  time.Time
	ETag          string
	Owner         string
	Readable      bool
	Writable      bool
	FullPrivilege bool
	ReadAcl       bool
	WriteAcl      bool
	ResourcePerm  string
	Status        int
}

// OK reports whether the server returned a success status for this item.
// A 207 body can carry per-item failures, those entries keep their document
// position but answer false here.
func (e *Entity) OK() bool {
	return e.Status >= 200 && e.Status < 300
}

// ItemList is the result of one directory listing or search, in the order
// the server returned the <response> elements.
type ItemList []*Entity
