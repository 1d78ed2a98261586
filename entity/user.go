package entity

// UserCollection is one top folder of an account.
type UserCollection struct {
	Href        string
	UsedStorage int64
	IsOwner     bool
}

// User is the account profile returned by the user info endpoint. Quota
// fields stay zero when the account state is "frozen".
type User struct {
	Name         string
	State        string
	IsAdmin      bool
	TeamID       int64
	StorageQuota int64
	UsedStorage  int64
	ExpireTime   int64
	Collections  []*UserCollection
}

// TeamMember is one member record of the team member listing.
type TeamMember struct {
	Admin        bool
	Name         string
	Nickname     string
	StorageQuota int64
	LdapUser     bool
	Disabled     bool
}

// Acl maps user and group names to their permission number, see PermMap for
// the meaning of each number.
type Acl struct {
	Users  map[string]string
	Groups map[string]string
}

// PermMap maps a permission number to its meaning.
var PermMap = map[string]string{
	"1": "download and preview",
	"2": "upload",
	"3": "upload, download, preview, remove and move",
	"4": "upload, download, preview, remove, move and change acls of others",
	"5": "preview",
}
