// Package davtest hosts an in-memory stand-in for the vendor WebDAV server,
// good enough to exercise the client against real HTTP round trips.
package davtest

import (
	"encoding/xml"
	"fmt"
	"net/http"
	"net/url"
	"path"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/xxxsen/nswebdav/httpkit"
)

type node struct {
	isDir bool
	data  []byte
	mtime time.Time
	etag  string
}

type opStub struct {
	status int
	body   string
}

// Server keeps a flat path to node tree plus stubbed vendor operation
// endpoints. Zero value is not usable, call New.
type Server struct {
	mu       sync.Mutex
	davRoot  string
	opRoot   string
	users    map[string]string
	nodes    map[string]*node
	ops      map[string]*opStub
	copyJobs map[string]int
}

// New builds a fake server rooted at /dav and /nsdav with only "/" present.
func New() *Server {
	s := &Server{
		davRoot:  "/dav",
		opRoot:   "/nsdav",
		users:    make(map[string]string),
		nodes:    map[string]*node{"/": {isDir: true, mtime: time.Now()}},
		ops:      make(map[string]*opStub),
		copyJobs: make(map[string]int),
	}
	return s
}

// AddUser enables basic auth checking, unauthenticated calls answer 401 with
// a literal "Unauthorized" body once any user exists.
func (s *Server) AddUser(name string, token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[name] = token
}

// AddDir seeds a directory, parents included.
func (s *Server) AddDir(p string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.addDirLocked(path.Clean(p))
}

func (s *Server) addDirLocked(p string) {
	for p != "/" {
		if _, ok := s.nodes[p]; !ok {
			s.nodes[p] = &node{isDir: true, mtime: time.Now()}
		}
		p = path.Dir(p)
	}
}

// AddFile seeds a file, parent directories included.
func (s *Server) AddFile(p string, data []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p = path.Clean(p)
	s.addDirLocked(path.Dir(p))
	s.nodes[p] = &node{
		data:  data,
		mtime: time.Now(),
		etag:  fmt.Sprintf("W/%q", uuid.NewString()),
	}
}

// Exists reports whether a path is present in the tree.
func (s *Server) Exists(p string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.nodes[path.Clean(p)]
	return ok
}

// Content returns the stored bytes of a file path.
func (s *Server) Content(p string) ([]byte, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	n, ok := s.nodes[path.Clean(p)]
	if !ok || n.isDir {
		return nil, false
	}
	return n.data, true
}

// StubOperation fixes the reply of one /nsdav endpoint.
func (s *Server) StubOperation(name string, status int, body string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ops[name] = &opStub{status: status, body: body}
}

// Router assembles the gin engine serving the fake endpoints.
func (s *Server) Router() http.Handler {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.NoRoute(s.dispatch)
	return router
}

func (s *Server) dispatch(c *gin.Context) {
	if !s.checkAuth(c) {
		c.String(http.StatusUnauthorized, "Unauthorized")
		c.Abort()
		return
	}
	location := c.Request.URL.Path
	if strings.HasPrefix(location, s.opRoot+"/") && c.Request.Method == http.MethodPost {
		s.handleOperation(c, strings.TrimPrefix(location, s.opRoot+"/"))
		return
	}
	if location == s.davRoot || strings.HasPrefix(location, s.davRoot+"/") {
		s.handleDav(c, path.Clean("/"+strings.TrimPrefix(location, s.davRoot)))
		return
	}
	c.AbortWithStatus(http.StatusNotFound)
}

func (s *Server) checkAuth(c *gin.Context) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.users) == 0 {
		return true
	}
	user, token, ok := c.Request.BasicAuth()
	if !ok {
		return false
	}
	want, ok := s.users[user]
	return ok && want == token
}

func (s *Server) handleDav(c *gin.Context, location string) {
	switch c.Request.Method {
	case "PROPFIND":
		s.handlePropfind(c, location)
	case http.MethodGet:
		s.handleGet(c, location)
	case http.MethodPut:
		s.handlePut(c, location)
	case http.MethodDelete:
		s.handleDelete(c, location)
	case "MKCOL":
		s.handleMkcol(c, location)
	case "MOVE":
		s.handleMoveCopy(c, location, true)
	case "COPY":
		s.handleMoveCopy(c, location, false)
	default:
		c.AbortWithStatus(http.StatusForbidden)
	}
}

func (s *Server) handlePropfind(c *gin.Context, location string) {
	depth := 0
	if c.GetHeader("Depth") == "1" || c.GetHeader("Depth") == "infinity" {
		depth = 1
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	base, ok := s.nodes[location]
	if !ok {
		c.AbortWithStatus(http.StatusNotFound)
		return
	}
	ms := &xmlMultistatus{XMLNS: "DAV:"}
	ms.Responses = append(ms.Responses, s.buildResponse(location, base))
	if base.isDir && depth == 1 {
		for _, child := range s.childrenLocked(location) {
			ms.Responses = append(ms.Responses, s.buildResponse(child, s.nodes[child]))
		}
	}
	raw, err := xml.Marshal(ms)
	if err != nil {
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}
	c.Data(http.StatusMultiStatus, "application/xml; charset=utf-8", raw)
}

func (s *Server) childrenLocked(dir string) []string {
	prefix := dir
	if prefix != "/" {
		prefix += "/"
	}
	rs := make([]string, 0, 8)
	for p := range s.nodes {
		if p != dir && strings.HasPrefix(p, prefix) && !strings.Contains(p[len(prefix):], "/") {
			rs = append(rs, p)
		}
	}
	sort.Strings(rs)
	return rs
}

func (s *Server) buildResponse(location string, n *node) *xmlResponse {
	href := s.davRoot + location
	rsp := &xmlResponse{
		Href: (&url.URL{Path: href}).EscapedPath(),
		Propstat: xmlPropstat{
			Prop: xmlProp{
				DisplayName:  path.Base(location),
				LastModified: n.mtime.UTC().Format(http.TimeFormat),
			},
			Status: "HTTP/1.1 200 OK",
		},
	}
	if n.isDir {
		rsp.Href += "/"
		rsp.Propstat.Prop.ResourceType.Collection = " "
		return rsp
	}
	rsp.Propstat.Prop.ContentLength = fmt.Sprintf("%d", len(n.data))
	rsp.Propstat.Prop.ContentType = httpkit.DetermineMimeType(location)
	rsp.Propstat.Prop.ETag = n.etag
	return rsp
}

func (s *Server) handleGet(c *gin.Context, location string) {
	s.mu.Lock()
	n, ok := s.nodes[location]
	s.mu.Unlock()
	if !ok {
		c.AbortWithStatus(http.StatusNotFound)
		return
	}
	if n.isDir {
		c.AbortWithStatus(http.StatusMethodNotAllowed)
		return
	}
	c.Header("ETag", n.etag)
	c.Data(http.StatusOK, httpkit.DetermineMimeType(location), n.data)
}

func (s *Server) handlePut(c *gin.Context, location string) {
	raw, err := c.GetRawData()
	if err != nil {
		c.AbortWithStatus(http.StatusBadRequest)
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	parent, ok := s.nodes[path.Dir(location)]
	if !ok || !parent.isDir {
		c.AbortWithStatus(http.StatusConflict)
		return
	}
	_, existed := s.nodes[location]
	s.nodes[location] = &node{
		data:  raw,
		mtime: time.Now(),
		etag:  fmt.Sprintf("W/%q", uuid.NewString()),
	}
	if existed {
		c.Status(http.StatusNoContent)
		return
	}
	c.Status(http.StatusCreated)
}

func (s *Server) handleMkcol(c *gin.Context, location string) {
	if len(c.GetHeader("Content-Type")) != 0 || c.Request.ContentLength > 0 {
		c.AbortWithStatus(http.StatusBadRequest)
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.nodes[location]; ok {
		c.AbortWithStatus(http.StatusMethodNotAllowed)
		return
	}
	parent, ok := s.nodes[path.Dir(location)]
	if !ok || !parent.isDir {
		c.AbortWithStatus(http.StatusConflict)
		return
	}
	s.nodes[location] = &node{isDir: true, mtime: time.Now()}
	c.Status(http.StatusCreated)
}

func (s *Server) handleDelete(c *gin.Context, location string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.nodes[location]; !ok {
		c.AbortWithStatus(http.StatusNotFound)
		return
	}
	s.removeTreeLocked(location)
	c.Status(http.StatusNoContent)
}

func (s *Server) removeTreeLocked(location string) {
	prefix := location + "/"
	for p := range s.nodes {
		if p == location || strings.HasPrefix(p, prefix) {
			delete(s.nodes, p)
		}
	}
}

func (s *Server) handleMoveCopy(c *gin.Context, src string, isMove bool) {
	dsturi, err := url.Parse(c.GetHeader("Destination"))
	if err != nil || !strings.HasPrefix(dsturi.Path, s.davRoot+"/") {
		c.AbortWithStatus(http.StatusBadRequest)
		return
	}
	dst := path.Clean("/" + strings.TrimPrefix(dsturi.Path, s.davRoot))
	if src == dst {
		c.AbortWithStatus(http.StatusForbidden)
		return
	}
	overwrite := c.GetHeader("Overwrite") != "F"
	s.mu.Lock()
	defer s.mu.Unlock()
	n, ok := s.nodes[src]
	if !ok {
		c.AbortWithStatus(http.StatusNotFound)
		return
	}
	_, existed := s.nodes[dst]
	if existed && !overwrite {
		c.AbortWithStatus(http.StatusPreconditionFailed)
		return
	}
	cp := *n
	s.addDirLocked(path.Dir(dst))
	s.nodes[dst] = &cp
	if isMove {
		delete(s.nodes, src)
	}
	if existed {
		c.Status(http.StatusNoContent)
		return
	}
	c.Status(http.StatusCreated)
}
