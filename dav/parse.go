package dav

import (
	"encoding/xml"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/xxxsen/nswebdav/entity"
	"github.com/xxxsen/nswebdav/httpkit"
	"github.com/xxxsen/nswebdav/model"
)

// ParseItemList converts a multistatus body into an ItemList, keeping the
// document order of the <response> elements. An errored response stays in
// the list at its position with Entity.Status carrying the per-item code.
func ParseItemList(raw []byte) (entity.ItemList, error) {
	ms := &model.Multistatus{}
	if err := xml.Unmarshal(raw, ms); err != nil {
		return nil, newParseError("decode multistatus failed", err)
	}
	rs := make(entity.ItemList, 0, len(ms.Responses))
	for _, r := range ms.Responses {
		ent, err := parseResponse(r)
		if err != nil {
			return nil, err
		}
		rs = append(rs, ent)
	}
	return rs, nil
}

func parseResponse(r *model.Response) (*entity.Entity, error) {
	href, err := url.PathUnescape(r.Href)
	if err != nil {
		return nil, newParseError("unescape href failed", err)
	}
	ent := &entity.Entity{
		Href:   href,
		Status: http.StatusOK,
	}
	ps := pickPropstat(r.Propstats)
	if ps == nil {
		return ent, nil
	}
	code, ok := httpkit.ParseStatusLine(ps.Status)
	if !ok {
		return nil, newParseError("malformed propstat status, line:"+ps.Status, nil)
	}
	ent.Status = code
	if !ent.OK() {
		return ent, nil
	}
	prop := ps.Prop
	ent.DisplayName = prop.DisplayName
	ent.IsDir = prop.ResourceType.Collection != nil
	ent.ContentType = prop.ContentType
	ent.ETag = prop.ETag
	ent.Owner = prop.Owner
	ent.ResourcePerm = prop.ResourcePerm
	if len(prop.ContentLength) > 0 {
		size, err := strconv.ParseInt(prop.ContentLength, 10, 64)
		if err != nil {
			return nil, newParseError("malformed content length, value:"+prop.ContentLength, err)
		}
		ent.Size = size
	}
	if len(prop.LastModified) > 0 {
		ts, err := parseDavTime(prop.LastModified)
		if err != nil {
			return nil, newParseError("malformed last modified, value:"+prop.LastModified, err)
		}
		ent.LastModified = ts
	}
	if prop.Privilege != nil {
		ent.Readable = prop.Privilege.Read != nil
		ent.Writable = prop.Privilege.Write != nil
		ent.FullPrivilege = prop.Privilege.All != nil
		ent.ReadAcl = prop.Privilege.ReadAcl != nil
		ent.WriteAcl = prop.Privilege.WriteAcl != nil
	}
	return ent, nil
}

// pickPropstat prefers the propstat the props of which apply, the one with a
// 2xx status. Without one the first propstat decides the per-item status.
func pickPropstat(pss []*model.Propstat) *model.Propstat {
	for _, ps := range pss {
		if code, ok := httpkit.ParseStatusLine(ps.Status); ok && code >= 200 && code < 300 {
			return ps
		}
	}
	if len(pss) > 0 {
		return pss[0]
	}
	return nil
}

func parseDavTime(s string) (time.Time, error) {
	ts, err := time.Parse(http.TimeFormat, s)
	if err == nil {
		return ts, nil
	}
	return time.Parse(time.RFC1123, s)
}

// ParseShareLink extracts the public link of a pubObject response.
func ParseShareLink(raw []byte) (string, error) {
	rsp := &model.ShareLinkResponse{}
	if err := xml.Unmarshal(raw, rsp); err != nil {
		return "", newParseError("decode share response failed", err)
	}
	link := strings.TrimSpace(rsp.ShareLink)
	if len(link) == 0 {
		return "", newParseError("no share link in response", nil)
	}
	return link, nil
}

// ParseAcl converts a getSandboxAcl response into user and group grants.
func ParseAcl(raw []byte) (*entity.Acl, error) {
	rsp := &model.AclResponse{}
	if err := xml.Unmarshal(raw, rsp); err != nil {
		return nil, newParseError("decode acl response failed", err)
	}
	acl := &entity.Acl{
		Users:  make(map[string]string),
		Groups: make(map[string]string),
	}
	for _, item := range rsp.Acls {
		if item.Username != nil {
			acl.Users[*item.Username] = item.Perm
			continue
		}
		if item.Group != nil {
			acl.Groups[*item.Group] = item.Perm
		}
	}
	return acl, nil
}

// ParseCursor extracts the hex cursor of a latestDeltaCursor response.
func ParseCursor(raw []byte) (int64, error) {
	rsp := &model.CursorResponse{}
	if err := xml.Unmarshal(raw, rsp); err != nil {
		return 0, newParseError("decode cursor response failed", err)
	}
	return parseHexCursor(rsp.Cursor)
}

func parseHexCursor(s string) (int64, error) {
	if len(s) == 0 {
		return 0, newParseError("no cursor in response", nil)
	}
	cursor, err := strconv.ParseInt(s, 16, 64)
	if err != nil {
		return 0, newParseError("malformed cursor, value:"+s, err)
	}
	return cursor, nil
}

// ParseHistory converts one delta page.
func ParseHistory(raw []byte) (*entity.History, error) {
	rsp := &model.HistoryResponse{}
	if err := xml.Unmarshal(raw, rsp); err != nil {
		return nil, newParseError("decode history response failed", err)
	}
	h := &entity.History{
		Reset:   rsp.Reset == "true",
		HasMore: rsp.HasMore == "true",
		Entries: make([]*entity.HistoryEntry, 0, len(rsp.Delta.Entries)),
	}
	if len(rsp.Cursor) > 0 {
		cursor, err := parseHexCursor(rsp.Cursor)
		if err != nil {
			return nil, err
		}
		h.Cursor = cursor
	}
	for _, e := range rsp.Delta.Entries {
		ent := &entity.HistoryEntry{
			Path:      e.Path,
			IsDeleted: e.IsDeleted == "true",
			IsDir:     e.IsDir == "true",
		}
		if len(e.Size) > 0 {
			size, err := strconv.ParseInt(e.Size, 10, 64)
			if err != nil {
				return nil, newParseError("malformed history size, value:"+e.Size, err)
			}
			ent.Size = size
		}
		if len(e.Modified) > 0 {
			ts, err := parseDavTime(e.Modified)
			if err != nil {
				return nil, newParseError("malformed history time, value:"+e.Modified, err)
			}
			ent.Modified = ts
		}
		if len(e.Revision) > 0 {
			rev, err := strconv.ParseInt(e.Revision, 10, 64)
			if err != nil {
				return nil, newParseError("malformed history revision, value:"+e.Revision, err)
			}
			ent.Revision = rev
		}
		h.Entries = append(h.Entries, ent)
	}
	return h, nil
}

// ParseUserInfo converts a getUserInfo response. Quota fields stay zero for
// frozen accounts, the server omits them.
func ParseUserInfo(raw []byte) (*entity.User, error) {
	rsp := &model.UserInfoResponse{}
	if err := xml.Unmarshal(raw, rsp); err != nil {
		return nil, newParseError("decode user response failed", err)
	}
	u := &entity.User{
		Name:  rsp.Username,
		State: rsp.AccountState,
	}
	if rsp.Team != nil {
		u.IsAdmin = rsp.Team.IsAdmin == "true"
		if len(rsp.Team.ID) > 0 {
			id, err := strconv.ParseInt(rsp.Team.ID, 10, 64)
			if err != nil {
				return nil, newParseError("malformed team id, value:"+rsp.Team.ID, err)
			}
			u.TeamID = id
		}
	}
	var err error
	if u.StorageQuota, err = parseOptInt(rsp.StorageQuota); err != nil {
		return nil, newParseError("malformed storage quota, value:"+rsp.StorageQuota, err)
	}
	if u.UsedStorage, err = parseOptInt(rsp.UsedStorage); err != nil {
		return nil, newParseError("malformed used storage, value:"+rsp.UsedStorage, err)
	}
	if u.ExpireTime, err = parseOptInt(rsp.ExpireTime); err != nil {
		return nil, newParseError("malformed expire time, value:"+rsp.ExpireTime, err)
	}
	for _, c := range rsp.Collections {
		href, err := url.PathUnescape(c.Href)
		if err != nil {
			return nil, newParseError("unescape collection href failed", err)
		}
		used, err := parseOptInt(c.UsedStorage)
		if err != nil {
			return nil, newParseError("malformed collection storage, value:"+c.UsedStorage, err)
		}
		u.Collections = append(u.Collections, &entity.UserCollection{
			Href:        href,
			UsedStorage: used,
			IsOwner:     c.Owner == "true",
		})
	}
	return u, nil
}

func parseOptInt(s string) (int64, error) {
	if len(s) == 0 {
		return 0, nil
	}
	return strconv.ParseInt(s, 10, 64)
}

// ParseTeamMembers converts a getTeamMembers response, admins first the way
// the server groups them.
func ParseTeamMembers(raw []byte) ([]*entity.TeamMember, error) {
	rsp := &model.TeamMembersResponse{}
	if err := xml.Unmarshal(raw, rsp); err != nil {
		return nil, newParseError("decode team members failed", err)
	}
	rs := make([]*entity.TeamMember, 0, len(rsp.Admins)+len(rsp.Members))
	appendMember := func(m *model.TeamMember, admin bool) error {
		quota, err := parseOptInt(m.StorageQuota)
		if err != nil {
			return newParseError("malformed member quota, value:"+m.StorageQuota, err)
		}
		rs = append(rs, &entity.TeamMember{
			Admin:        admin,
			Name:         m.Username,
			Nickname:     m.Nickname,
			StorageQuota: quota,
			LdapUser:     m.LdapUser == "true",
			Disabled:     m.Disabled == "true",
		})
		return nil
	}
	for _, m := range rsp.Admins {
		if err := appendMember(m, true); err != nil {
			return nil, err
		}
	}
	for _, m := range rsp.Members {
		if err := appendMember(m, false); err != nil {
			return nil, err
		}
	}
	return rs, nil
}

// ParseContentURL extracts the direct link of a directContentUrl response.
func ParseContentURL(raw []byte) (string, error) {
	rsp := &model.ContentURLResponse{}
	if err := xml.Unmarshal(raw, rsp); err != nil {
		return "", newParseError("decode content url failed", err)
	}
	href, err := url.PathUnescape(rsp.Href)
	if err != nil {
		return "", newParseError("unescape content url failed", err)
	}
	if len(href) == 0 {
		return "", newParseError("no content url in response", nil)
	}
	return href, nil
}

// ParseCopyUUID extracts the job id of a submitCopyPubObject response.
func ParseCopyUUID(raw []byte) (string, error) {
	rsp := &model.CopyPubResponse{}
	if err := xml.Unmarshal(raw, rsp); err != nil {
		return "", newParseError("decode copy response failed", err)
	}
	if len(rsp.CopyUUID) == 0 {
		return "", newParseError("no copy uuid in response", nil)
	}
	return rsp.CopyUUID, nil
}
