package davtest

import "encoding/xml"

// Rendered with an explicit D: prefix the way the real server replies, the
// client parser has to resolve the prefix instead of relying on a fixed one.

type xmlMultistatus struct {
	XMLName   xml.Name       `xml:"D:multistatus"`
	XMLNS     string         `xml:"xmlns:D,attr"`
	Responses []*xmlResponse `xml:"D:response"`
}

type xmlResponse struct {
	Href     string      `xml:"D:href"`
	Propstat xmlPropstat `xml:"D:propstat"`
}

type xmlPropstat struct {
	Prop   xmlProp `xml:"D:prop"`
	Status string  `xml:"D:status"`
}

type xmlProp struct {
	DisplayName   string          `xml:"D:displayname"`
	LastModified  string          `xml:"D:getlastmodified"`
	ContentLength string          `xml:"D:getcontentlength,omitempty"`
	ContentType   string          `xml:"D:getcontenttype,omitempty"`
	ETag          string          `xml:"D:getetag,omitempty"`
	ResourceType  xmlResourceType `xml:"D:resourcetype"`
}

type xmlResourceType struct {
	Collection string `xml:"D:collection,omitempty"`
}
