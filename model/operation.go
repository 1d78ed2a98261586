package model

import "encoding/xml"

// Request bodies for the /nsdav operation endpoints. These are rendered by
// us, so they pin the s: prefix explicitly, matching what the server emits
// in its own documents.

// Publish is the pubObject request body.
type Publish struct {
	XMLName          xml.Name    `xml:"s:publish"`
	XMLNS            string      `xml:"xmlns:s,attr"`
	Href             string      `xml:"s:href"`
	Acl              *PublishAcl `xml:"s:acl"`
	DownloadDisabled bool        `xml:"s:downloadDisabled"`
}

// PublishAcl limits a share to the named users and groups.
type PublishAcl struct {
	Users  []string `xml:"s:username"`
	Groups []string `xml:"s:group"`
}

// GetAcl is the getSandboxAcl request body.
type GetAcl struct {
	XMLName xml.Name `xml:"s:get_acl"`
	XMLNS   string   `xml:"xmlns:s,attr"`
	Href    string   `xml:"s:href"`
}

// Sandbox is the updateSandboxAcl request body.
type Sandbox struct {
	XMLName xml.Name      `xml:"s:sandbox"`
	XMLNS   string        `xml:"xmlns:s,attr"`
	Href    string        `xml:"s:href"`
	Acls    []*SandboxAcl `xml:"s:acl"`
}

// SandboxAcl grants one user or one group a permission number.
type SandboxAcl struct {
	Username string `xml:"s:username,omitempty"`
	Group    string `xml:"s:group,omitempty"`
	Perm     string `xml:"s:perm"`
}

// Delta is the request body of both the delta and latestDeltaCursor
// endpoints. Cursor is upper-case hex and absent on the first page.
type Delta struct {
	XMLName    xml.Name `xml:"s:delta"`
	XMLNS      string   `xml:"xmlns:s,attr"`
	FolderName string   `xml:"s:folderName"`
	Cursor     string   `xml:"s:cursor,omitempty"`
}

// Search is the search request body.
type Search struct {
	XMLName  xml.Name `xml:"s:search"`
	XMLNS    string   `xml:"xmlns:s,attr"`
	Keywords string   `xml:"s:keywords"`
	Path     string   `xml:"s:path"`
}

// CopyPub serves submitCopyPubObject (href/url/password set) and
// pollCopyPubObject (uuid set).
type CopyPub struct {
	XMLName            xml.Name `xml:"s:copy_pub"`
	XMLNS              string   `xml:"xmlns:s,attr"`
	Href               string   `xml:"s:href,omitempty"`
	PublishedObjectURL string   `xml:"s:published_object_url,omitempty"`
	CopyPassword       string   `xml:"s:copy_password,omitempty"`
	CopyUUID           string   `xml:"s:copy_uuid,omitempty"`
}

// ContentURL is the directContentUrl request body.
type ContentURL struct {
	XMLName xml.Name `xml:"s:direct_content_url"`
	XMLNS   string   `xml:"xmlns:s,attr"`
	Href    string   `xml:"s:href"`
}

// EmptyRecycle is the emptyRecycleBin request body.
type EmptyRecycle struct {
	XMLName xml.Name `xml:"s:empty_recycle"`
	XMLNS   string   `xml:"xmlns:s,attr"`
	Href    string   `xml:"s:href"`
}

// Vendor response bodies below are parsed, so they match by namespace url.

// ShareLinkResponse carries the public link of a shared object.
type ShareLinkResponse struct {
	ShareLink string `xml:"http://ns.jianguoyun.com sharelink"`
}

// AclResponse is the getSandboxAcl response.
type AclResponse struct {
	Acls []*AclEntry `xml:"http://ns.jianguoyun.com acl"`
}

// AclEntry grants one user or group a permission, exactly one of Username
// and Group is present.
type AclEntry struct {
	Username *string `xml:"http://ns.jianguoyun.com username"`
	Group    *string `xml:"http://ns.jianguoyun.com group"`
	Perm     string  `xml:"http://ns.jianguoyun.com perm"`
}

// CursorResponse is the latestDeltaCursor response, hex encoded.
type CursorResponse struct {
	Cursor string `xml:"http://ns.jianguoyun.com cursor"`
}

// HistoryResponse is one page of the delta feed.
type HistoryResponse struct {
	Reset   string       `xml:"http://ns.jianguoyun.com reset"`
	Cursor  string       `xml:"http://ns.jianguoyun.com cursor"`
	HasMore string       `xml:"http://ns.jianguoyun.com hasMore"`
	Delta   HistoryDelta `xml:"http://ns.jianguoyun.com delta"`
}

// HistoryDelta wraps the entry list of a delta page.
type HistoryDelta struct {
	Entries []*HistoryEntry `xml:"http://ns.jianguoyun.com entry"`
}

// HistoryEntry is one version record of a delta page.
type HistoryEntry struct {
	Path      string `xml:"http://ns.jianguoyun.com path"`
	Size      string `xml:"http://ns.jianguoyun.com size"`
	IsDeleted string `xml:"http://ns.jianguoyun.com isDeleted"`
	IsDir     string `xml:"http://ns.jianguoyun.com isDir"`
	Modified  string `xml:"http://ns.jianguoyun.com modified"`
	Revision  string `xml:"http://ns.jianguoyun.com revision"`
}

// UserInfoResponse is the getUserInfo response.
type UserInfoResponse struct {
	Username     string            `xml:"http://ns.jianguoyun.com username"`
	AccountState string            `xml:"http://ns.jianguoyun.com account_state"`
	Team         *UserTeam         `xml:"http://ns.jianguoyun.com team"`
	StorageQuota string            `xml:"http://ns.jianguoyun.com storage_quota"`
	UsedStorage  string            `xml:"http://ns.jianguoyun.com used_storage"`
	ExpireTime   string            `xml:"http://ns.jianguoyun.com expire_time"`
	Collections  []*UserCollection `xml:"http://ns.jianguoyun.com collection"`
}

// UserTeam is the team block of a user profile, absent for frozen accounts.
type UserTeam struct {
	IsAdmin string `xml:"http://ns.jianguoyun.com is_admin"`
	ID      string `xml:"http://ns.jianguoyun.com id"`
}

// UserCollection is one top folder of a user profile.
type UserCollection struct {
	Href        string `xml:"http://ns.jianguoyun.com href"`
	UsedStorage string `xml:"http://ns.jianguoyun.com used_storage"`
	Owner       string `xml:"http://ns.jianguoyun.com owner"`
}

// TeamMembersResponse is the getTeamMembers response, admins and plain
// members arrive under different element names.
type TeamMembersResponse struct {
	Admins  []*TeamMember `xml:"http://ns.jianguoyun.com admin"`
	Members []*TeamMember `xml:"http://ns.jianguoyun.com member"`
}

// TeamMember is one member record.
type TeamMember struct {
	Username     string `xml:"http://ns.jianguoyun.com username"`
	Nickname     string `xml:"http://ns.jianguoyun.com nickname"`
	StorageQuota string `xml:"http://ns.jianguoyun.com storage_quota"`
	LdapUser     string `xml:"http://ns.jianguoyun.com ldap_user"`
	Disabled     string `xml:"http://ns.jianguoyun.com disabled"`
}

// ContentURLResponse is the directContentUrl response.
type ContentURLResponse struct {
	Href string `xml:"http://ns.jianguoyun.com href"`
}

// CopyPubResponse is the submitCopyPubObject response.
type CopyPubResponse struct {
	CopyUUID string `xml:"http://ns.jianguoyun.com copy_uuid"`
}

// ErrorResponse is the body the server attaches to non-2xx statuses.
type ErrorResponse struct {
	Exception string `xml:"http://ns.jianguoyun.com exception"`
	Message   string `xml:"http://ns.jianguoyun.com message"`
}
