package model

import "encoding/xml"

const (
	// NSDav is the standard WebDAV namespace.
	NSDav = "DAV:"
	// NSVendor is the jianguoyun extension namespace.
	NSVendor = "http://ns.jianguoyun.com"
)

// XMLHeader is prepended to every rendered request body.
const XMLHeader = `<?xml version="1.0" encoding="utf-8"?>` + "\n"

// Multistatus is the root of a 207 response. Field tags carry the namespace
// url instead of a prefix so any prefix the server picks still matches.
type Multistatus struct {
	XMLName   xml.Name    `xml:"DAV: multistatus"`
	Responses []*Response `xml:"DAV: response"`
}

// Response describes one file or directory of a multistatus body.
type Response struct {
	Href      string      `xml:"DAV: href"`
	Propstats []*Propstat `xml:"DAV: propstat"`
}

// Propstat groups props with the status that applies to them. A response may
// carry several, one per status.
type Propstat struct {
	Prop   Prop   `xml:"DAV: prop"`
	Status string `xml:"DAV: status"`
}

// Prop holds the properties of one resource.
type Prop struct {
	DisplayName   string       `xml:"DAV: displayname"`
	LastModified  string       `xml:"DAV: getlastmodified"`
	ContentLength string       `xml:"DAV: getcontentlength"`
	ContentType   string       `xml:"DAV: getcontenttype"`
	ETag          string       `xml:"DAV: getetag"`
	Owner         string       `xml:"DAV: owner"`
	ResourceType  ResourceType `xml:"DAV: resourcetype"`
	Privilege     *Privilege   `xml:"DAV: privilege"`
	ResourcePerm  string       `xml:"http://ns.jianguoyun.com resourceperm"`
}

// ResourceType distinguishes files from directories, a directory carries a
// <collection/> child.
type ResourceType struct {
	Collection *struct{} `xml:"DAV: collection"`
}

// Privilege lists the rights of the caller on one resource, presence of a
// child element grants the right.
type Privilege struct {
	Read     *struct{} `xml:"DAV: read"`
	Write    *struct{} `xml:"DAV: write"`
	All      *struct{} `xml:"DAV: all"`
	ReadAcl  *struct{} `xml:"DAV: read_acl"`
	WriteAcl *struct{} `xml:"DAV: write_acl"`
}
