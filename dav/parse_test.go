package dav

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

const lsFixture = `<?xml version="1.0" encoding="utf-8"?>
<d:multistatus xmlns:d="DAV:">
	<d:response>
		<d:href>/dav/Documents/</d:href>
		<d:propstat>
			<d:prop>
				<d:displayname>Documents</d:displayname>
				<d:getlastmodified>Mon, 02 Jan 2006 15:04:05 GMT</d:getlastmodified>
				<d:owner>bob</d:owner>
				<d:resourcetype><d:collection/></d:resourcetype>
				<d:privilege><d:read/><d:write/></d:privilege>
			</d:prop>
			<d:status>HTTP/1.1 200 OK</d:status>
		</d:propstat>
	</d:response>
	<d:response>
		<d:href>/dav/Documents/a%20b.txt</d:href>
		<d:propstat>
			<d:prop>
				<d:displayname>a b.txt</d:displayname>
				<d:getlastmodified>Tue, 03 Jan 2006 10:00:00 GMT</d:getlastmodified>
				<d:getcontentlength>42</d:getcontentlength>
				<d:getcontenttype>text/plain</d:getcontenttype>
				<d:getetag>"abc123"</d:getetag>
				<d:owner>bob</d:owner>
				<d:resourcetype/>
				<d:privilege><d:read/></d:privilege>
			</d:prop>
			<d:status>HTTP/1.1 200 OK</d:status>
		</d:propstat>
	</d:response>
</d:multistatus>`

func TestParseItemList(t *testing.T) {
	items, err := ParseItemList([]byte(lsFixture))
	assert.NoError(t, err)
	assert.Len(t, items, 2)

	dir := items[0]
	assert.Equal(t, "/dav/Documents/", dir.Href)
	assert.True(t, dir.IsDir)
	assert.Equal(t, int64(0), dir.Size)
	assert.Equal(t, "bob", dir.Owner)
	assert.True(t, dir.Readable)
	assert.True(t, dir.Writable)
	assert.False(t, dir.FullPrivilege)
	assert.True(t, dir.OK())

	file := items[1]
	assert.Equal(t, "/dav/Documents/a b.txt", file.Href)
	assert.False(t, file.IsDir)
	assert.Equal(t, int64(42), file.Size)
	assert.Equal(t, "text/plain", file.ContentType)
	assert.Equal(t, `"abc123"`, file.ETag)
	assert.Equal(t, time.Date(2006, 1, 3, 10, 0, 0, 0, time.UTC), file.LastModified)
	assert.True(t, file.Readable)
	assert.False(t, file.Writable)
}

func TestParseItemListKeepsDocumentOrder(t *testing.T) {
	// server-defined ordering must survive, no re-sorting
	const raw = `<?xml version="1.0"?>
<D:multistatus xmlns:D="DAV:">
	<D:response><D:href>/dav/z</D:href><D:propstat><D:prop><D:resourcetype/></D:prop><D:status>HTTP/1.1 200 OK</D:status></D:propstat></D:response>
	<D:response><D:href>/dav/a</D:href><D:propstat><D:prop><D:resourcetype/></D:prop><D:status>HTTP/1.1 200 OK</D:status></D:propstat></D:response>
	<D:response><D:href>/dav/m</D:href><D:propstat><D:prop><D:resourcetype/></D:prop><D:status>HTTP/1.1 200 OK</D:status></D:propstat></D:response>
</D:multistatus>`
	items, err := ParseItemList([]byte(raw))
	assert.NoError(t, err)
	assert.Len(t, items, 3)
	assert.Equal(t, "/dav/z", items[0].Href)
	assert.Equal(t, "/dav/a", items[1].Href)
	assert.Equal(t, "/dav/m", items[2].Href)
}

func TestParseItemListPerItemError(t *testing.T) {
	const raw = `<?xml version="1.0"?>
<d:multistatus xmlns:d="DAV:">
	<d:response>
		<d:href>/dav/ok.txt</d:href>
		<d:propstat><d:prop><d:getcontentlength>1</d:getcontentlength><d:resourcetype/></d:prop><d:status>HTTP/1.1 200 OK</d:status></d:propstat>
	</d:response>
	<d:response>
		<d:href>/dav/gone.txt</d:href>
		<d:propstat><d:prop/><d:status>HTTP/1.1 404 Not Found</d:status></d:propstat>
	</d:response>
</d:multistatus>`
	items, err := ParseItemList([]byte(raw))
	assert.NoError(t, err)
	assert.Len(t, items, 2)
	assert.True(t, items[0].OK())
	assert.False(t, items[1].OK())
	assert.Equal(t, 404, items[1].Status)
	assert.Equal(t, "/dav/gone.txt", items[1].Href)
}

func TestParseItemListMalformed(t *testing.T) {
	var perr *ParseError
	_, err := ParseItemList([]byte("this is not xml"))
	assert.Error(t, err)
	assert.True(t, errors.As(err, &perr))

	_, err = ParseItemList([]byte(`<d:multistatus xmlns:d="DAV:"><d:response><d:href>/a</d:href><d:propstat><d:prop><d:getcontentlength>NaN</d:getcontentlength></d:prop><d:status>HTTP/1.1 200 OK</d:status></d:propstat></d:response></d:multistatus>`))
	assert.True(t, errors.As(err, &perr))
}

func TestParseShareLink(t *testing.T) {
	const raw = `<?xml version="1.0"?>
<s:response xmlns:s="http://ns.jianguoyun.com"><s:sharelink> https://www.jianguoyun.com/p/abc </s:sharelink></s:response>`
	link, err := ParseShareLink([]byte(raw))
	assert.NoError(t, err)
	assert.Equal(t, "https://www.jianguoyun.com/p/abc", link)
}

func TestParseAcl(t *testing.T) {
	const raw = `<?xml version="1.0"?>
<s:acl_list xmlns:s="http://ns.jianguoyun.com">
	<s:acl><s:username>alice</s:username><s:perm>3</s:perm></s:acl>
	<s:acl><s:group>dev</s:group><s:perm>1</s:perm></s:acl>
</s:acl_list>`
	acl, err := ParseAcl([]byte(raw))
	assert.NoError(t, err)
	assert.Equal(t, map[string]string{"alice": "3"}, acl.Users)
	assert.Equal(t, map[string]string{"dev": "1"}, acl.Groups)
}

func TestParseCursor(t *testing.T) {
	const raw = `<s:response xmlns:s="http://ns.jianguoyun.com"><s:cursor>FF10</s:cursor></s:response>`
	cursor, err := ParseCursor([]byte(raw))
	assert.NoError(t, err)
	assert.Equal(t, int64(0xFF10), cursor)
}

func TestParseHistory(t *testing.T) {
	const raw = `<?xml version="1.0"?>
<ns:response xmlns:ns="http://ns.jianguoyun.com">
	<ns:reset>false</ns:reset>
	<ns:cursor>1A</ns:cursor>
	<ns:hasMore>true</ns:hasMore>
	<ns:delta>
		<ns:entry>
			<ns:path>/Documents/a.txt</ns:path>
			<ns:size>12</ns:size>
			<ns:isDeleted>true</ns:isDeleted>
			<ns:isDir>false</ns:isDir>
			<ns:modified>Mon, 02 Jan 2006 15:04:05 GMT</ns:modified>
			<ns:revision>7</ns:revision>
		</ns:entry>
	</ns:delta>
</ns:response>`
	h, err := ParseHistory([]byte(raw))
	assert.NoError(t, err)
	assert.False(t, h.Reset)
	assert.True(t, h.HasMore)
	assert.Equal(t, int64(0x1A), h.Cursor)
	assert.Len(t, h.Entries, 1)
	assert.Equal(t, "/Documents/a.txt", h.Entries[0].Path)
	assert.Equal(t, int64(12), h.Entries[0].Size)
	assert.True(t, h.Entries[0].IsDeleted)
	assert.Equal(t, int64(7), h.Entries[0].Revision)
	next, ok := h.Next()
	assert.True(t, ok)
	assert.Equal(t, int64(0x1A), next)
}

func TestParseUserInfo(t *testing.T) {
	const raw = `<?xml version="1.0"?>
<s:response xmlns:s="http://ns.jianguoyun.com">
	<s:username>bob</s:username>
	<s:account_state>standard_team_edition</s:account_state>
	<s:team><s:is_admin>true</s:is_admin><s:id>42</s:id></s:team>
	<s:storage_quota>1024</s:storage_quota>
	<s:used_storage>512</s:used_storage>
	<s:expire_time>86400000</s:expire_time>
	<s:collection><s:href>/My%20Docs</s:href><s:used_storage>100</s:used_storage><s:owner>true</s:owner></s:collection>
</s:response>`
	u, err := ParseUserInfo([]byte(raw))
	assert.NoError(t, err)
	assert.Equal(t, "bob", u.Name)
	assert.True(t, u.IsAdmin)
	assert.Equal(t, int64(42), u.TeamID)
	assert.Equal(t, int64(1024), u.StorageQuota)
	assert.Equal(t, int64(512), u.UsedStorage)
	assert.Len(t, u.Collections, 1)
	assert.Equal(t, "/My Docs", u.Collections[0].Href)
	assert.True(t, u.Collections[0].IsOwner)
}

func TestParseUserInfoFrozen(t *testing.T) {
	const raw = `<s:response xmlns:s="http://ns.jianguoyun.com">
	<s:username>bob</s:username>
	<s:account_state>frozen</s:account_state>
</s:response>`
	u, err := ParseUserInfo([]byte(raw))
	assert.NoError(t, err)
	assert.Equal(t, "frozen", u.State)
	assert.False(t, u.IsAdmin)
	assert.Equal(t, int64(0), u.StorageQuota)
	assert.Empty(t, u.Collections)
}

func TestParseTeamMembers(t *testing.T) {
	const raw = `<s:response xmlns:s="http://ns.jianguoyun.com">
	<s:admin><s:username>bob</s:username><s:nickname>Bob</s:nickname><s:storage_quota>1024</s:storage_quota></s:admin>
	<s:member><s:username>alice</s:username><s:ldap_user>true</s:ldap_user><s:disabled>true</s:disabled></s:member>
</s:response>`
	members, err := ParseTeamMembers([]byte(raw))
	assert.NoError(t, err)
	assert.Len(t, members, 2)
	assert.True(t, members[0].Admin)
	assert.Equal(t, "bob", members[0].Name)
	assert.Equal(t, int64(1024), members[0].StorageQuota)
	assert.False(t, members[1].Admin)
	assert.True(t, members[1].LdapUser)
	assert.True(t, members[1].Disabled)
}
