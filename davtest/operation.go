package davtest

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Canned vendor replies. Prefixes vary on purpose, the real server is free
// to pick any binding for its namespaces.
const (
	defaultAclBody = `<?xml version="1.0" encoding="utf-8"?>
<s:acl_list xmlns:s="http://ns.jianguoyun.com">
	<s:acl><s:username>alice</s:username><s:perm>3</s:perm></s:acl>
	<s:acl><s:group>dev</s:group><s:perm>1</s:perm></s:acl>
</s:acl_list>`

	defaultHistoryBody = `<?xml version="1.0" encoding="utf-8"?>
<ns:response xmlns:ns="http://ns.jianguoyun.com">
	<ns:reset>false</ns:reset>
	<ns:cursor>1A2B</ns:cursor>
	<ns:hasMore>true</ns:hasMore>
	<ns:delta>
		<ns:entry>
			<ns:path>/Documents/a.txt</ns:path>
			<ns:size>12</ns:size>
			<ns:isDeleted>false</ns:isDeleted>
			<ns:isDir>false</ns:isDir>
			<ns:modified>Mon, 02 Jan 2006 15:04:05 GMT</ns:modified>
			<ns:revision>7</ns:revision>
		</ns:entry>
	</ns:delta>
</ns:response>`

	defaultCursorBody = `<?xml version="1.0" encoding="utf-8"?>
<s:response xmlns:s="http://ns.jianguoyun.com"><s:cursor>FF10</s:cursor></s:response>`

	defaultUserBody = `<?xml version="1.0" encoding="utf-8"?>
<ns:response xmlns:ns="http://ns.jianguoyun.com">
	<ns:username>bob</ns:username>
	<ns:account_state>standard_team_edition</ns:account_state>
	<ns:team><ns:is_admin>true</ns:is_admin><ns:id>42</ns:id></ns:team>
	<ns:storage_quota>1073741824</ns:storage_quota>
	<ns:used_storage>2048</ns:used_storage>
	<ns:expire_time>86400000</ns:expire_time>
	<ns:collection><ns:href>/Documents</ns:href><ns:used_storage>1024</ns:used_storage><ns:owner>true</ns:owner></ns:collection>
</ns:response>`

	defaultTeamBody = `<?xml version="1.0" encoding="utf-8"?>
<s:response xmlns:s="http://ns.jianguoyun.com">
	<s:admin><s:username>bob</s:username><s:nickname>Bob</s:nickname><s:storage_quota>1024</s:storage_quota></s:admin>
	<s:member><s:username>alice</s:username><s:nickname>Alice</s:nickname><s:ldap_user>true</s:ldap_user></s:member>
</s:response>`

	defaultSearchBody = `<?xml version="1.0" encoding="utf-8"?>
<d:multistatus xmlns:d="DAV:" xmlns:s="http://ns.jianguoyun.com">
	<d:response>
		<d:href>/dav/Documents/report.pdf</d:href>
		<d:propstat>
			<d:prop>
				<d:displayname>report.pdf</d:displayname>
				<d:getcontentlength>512</d:getcontentlength>
				<d:getcontenttype>application/pdf</d:getcontenttype>
				<d:getlastmodified>Mon, 02 Jan 2006 15:04:05 GMT</d:getlastmodified>
				<d:resourcetype/>
				<s:resourceperm>1</s:resourceperm>
			</d:prop>
			<d:status>HTTP/1.1 200 OK</d:status>
		</d:propstat>
	</d:response>
</d:multistatus>`

	defaultContentURLBody = `<?xml version="1.0" encoding="utf-8"?>
<s:response xmlns:s="http://ns.jianguoyun.com"><s:href>https://cdn.example.com/object/1</s:href></s:response>`
)

func (s *Server) handleOperation(c *gin.Context, name string) {
	s.mu.Lock()
	stub, ok := s.ops[name]
	s.mu.Unlock()
	if ok {
		c.Data(stub.status, "application/xml; charset=utf-8", []byte(stub.body))
		return
	}
	switch name {
	case "pubObject":
		link := fmt.Sprintf("https://www.jianguoyun.com/p/%s", uuid.NewString())
		body := fmt.Sprintf(`<?xml version="1.0" encoding="utf-8"?>
<s:response xmlns:s="http://ns.jianguoyun.com"><s:sharelink> %s </s:sharelink></s:response>`, link)
		c.Data(http.StatusOK, "application/xml; charset=utf-8", []byte(body))
	case "getSandboxAcl":
		c.Data(http.StatusOK, "application/xml; charset=utf-8", []byte(defaultAclBody))
	case "updateSandboxAcl", "emptyRecycleBin":
		c.Status(http.StatusOK)
	case "delta":
		c.Data(http.StatusOK, "application/xml; charset=utf-8", []byte(defaultHistoryBody))
	case "latestDeltaCursor":
		c.Data(http.StatusOK, "application/xml; charset=utf-8", []byte(defaultCursorBody))
	case "getUserInfo":
		c.Data(http.StatusOK, "application/xml; charset=utf-8", []byte(defaultUserBody))
	case "getTeamMembers":
		c.Data(http.StatusOK, "application/xml; charset=utf-8", []byte(defaultTeamBody))
	case "search":
		c.Data(http.StatusOK, "application/xml; charset=utf-8", []byte(defaultSearchBody))
	case "directContentUrl":
		c.Data(http.StatusOK, "application/xml; charset=utf-8", []byte(defaultContentURLBody))
	case "submitCopyPubObject":
		s.handleSubmitCopy(c)
	case "pollCopyPubObject":
		s.handlePollCopy(c)
	default:
		c.AbortWithStatus(http.StatusNotFound)
	}
}

// handleSubmitCopy registers a job that stays pending for one poll.
func (s *Server) handleSubmitCopy(c *gin.Context) {
	id := uuid.NewString()
	s.mu.Lock()
	s.copyJobs[id] = 1
	s.mu.Unlock()
	body := fmt.Sprintf(`<?xml version="1.0" encoding="utf-8"?>
<s:response xmlns:s="http://ns.jianguoyun.com"><s:copy_uuid>%s</s:copy_uuid></s:response>`, id)
	c.Data(http.StatusOK, "application/xml; charset=utf-8", []byte(body))
}

func (s *Server) handlePollCopy(c *gin.Context) {
	raw, err := c.GetRawData()
	if err != nil {
		c.AbortWithStatus(http.StatusBadRequest)
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, left := range s.copyJobs {
		if !strings.Contains(string(raw), id) {
			continue
		}
		if left > 0 {
			s.copyJobs[id] = left - 1
			c.Status(http.StatusAccepted)
			return
		}
		c.Status(http.StatusOK)
		return
	}
	c.AbortWithStatus(http.StatusNotFound)
}
