package dav

import (
	"encoding/base64"
	"encoding/xml"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/xxxsen/nswebdav/httpkit"
	"github.com/xxxsen/nswebdav/model"
)

// Options carries the per-operation inputs of the request builder. Only the
// fields an operation recognizes are read.
type Options struct {
	Depth       int         // PROPFIND recursion, 0 or 1
	Destination string      // mv/cp target path
	Overwrite   bool        // mv/cp, rendered as Overwrite: T/F
	Auth        *Credential // merged into headers as basic auth
	Body        []byte      // upload content
	Payload     interface{} // vendor operation xml body
}

// Request is a fully built call, ready to be handed to a transport.
type Request struct {
	Method string
	URL    string
	Header http.Header
	Body   []byte
}

// Builder maps an operation and a path to method, url, headers and body. It
// is pure, both facades share one instance.
type Builder struct {
	davURL string
	opURL  string
}

// NewBuilder resolves the dav and operation roots against the base url the
// way the server expects, scheme://host + root.
func NewBuilder(baseURL string, davRoot string, opRoot string) (*Builder, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse base url failed, err:%w", err)
	}
	if len(u.Scheme) == 0 || len(u.Host) == 0 {
		return nil, fmt.Errorf("base url should carry scheme and host, url:%s", baseURL)
	}
	root := u.Scheme + "://" + u.Host
	return &Builder{
		davURL: root + davRoot,
		opURL:  root + opRoot,
	}, nil
}

// delimiterEscaper keeps '#' and '?' as path bytes, url.Parse would read
// them as fragment and query markers and drop the rest of the name.
var delimiterEscaper = strings.NewReplacer("#", "%23", "?", "%3F")

// EncodePath validates and percent-encodes a remote path. Already escaped
// characters are kept as-is, a literal ".." segment is rejected before any
// request is built.
func (b *Builder) EncodePath(p string) (string, error) {
	if !strings.HasPrefix(p, "/") {
		return "", &InvalidPathError{Path: p, Reason: "path should be absolute"}
	}
	for _, seg := range strings.Split(p, "/") {
		if seg == ".." {
			return "", &InvalidPathError{Path: p, Reason: "traversal segment in path"}
		}
	}
	u, err := url.Parse(delimiterEscaper.Replace(p))
	if err != nil {
		return "", &InvalidPathError{Path: p, Reason: err.Error()}
	}
	return u.EscapedPath(), nil
}

// DavPath returns the dav-root relative form of a path, the shape vendor
// operation bodies reference resources by.
func (b *Builder) DavPath(p string) (string, error) {
	ep, err := b.EncodePath(p)
	if err != nil {
		return "", err
	}
	u, _ := url.Parse(b.davURL)
	return u.Path + ep, nil
}

// Build constructs the request of one operation. Unknown operations fail
// with UnsupportedOperationError, bad paths with InvalidPathError.
func (b *Builder) Build(op Operation, path string, o Options) (*Request, error) {
	spec, ok := opSpecs[op]
	if !ok {
		return nil, &UnsupportedOperationError{Operation: op}
	}
	req := &Request{
		Method: spec.method,
		Header: make(http.Header),
	}
	if o.Auth != nil {
		raw := base64.StdEncoding.EncodeToString([]byte(o.Auth.Username + ":" + o.Auth.Token))
		req.Header.Set("Authorization", "Basic "+raw)
	}
	if !spec.isDav {
		return b.buildOperation(op, req, o)
	}
	ep, err := b.EncodePath(path)
	if err != nil {
		return nil, err
	}
	req.URL = b.davURL + ep
	switch op {
	case OpLs:
		if o.Depth != 0 && o.Depth != 1 {
			return nil, fmt.Errorf("depth should be 0 or 1, depth:%d", o.Depth)
		}
		req.Header.Set("Depth", strconv.Itoa(o.Depth))
	case OpUpload:
		req.Body = o.Body
		req.Header.Set("Content-Type", httpkit.DetermineMimeType(path))
	case OpMove, OpCopy:
		dst, err := b.EncodePath(o.Destination)
		if err != nil {
			return nil, err
		}
		req.Header.Set("Destination", b.davURL+dst)
		req.Header.Set("Overwrite", overwriteFlag(o.Overwrite))
	}
	return req, nil
}

func (b *Builder) buildOperation(op Operation, req *Request, o Options) (*Request, error) {
	req.URL = b.opURL + "/" + string(op)
	if o.Payload != nil {
		raw, err := xml.Marshal(o.Payload)
		if err != nil {
			return nil, fmt.Errorf("marshal operation body failed, op:%s, err:%w", op, err)
		}
		req.Body = append([]byte(model.XMLHeader), raw...)
		req.Header.Set("Content-Type", "application/xml")
	}
	return req, nil
}

func overwriteFlag(overwrite bool) string {
	if overwrite {
		return "T"
	}
	return "F"
}
