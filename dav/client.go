package dav

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/xxxsen/nswebdav/entity"
	"github.com/xxxsen/nswebdav/model"
)

var defaultHTTPClient = &http.Client{
	Timeout: 30 * time.Second,
	Transport: &http.Transport{
		IdleConnTimeout:     20 * time.Second,
		MaxIdleConns:        5,
		MaxIdleConnsPerHost: 1,
	},
}

// UploadStatus tells whether a put created a fresh object or replaced one.
type UploadStatus string

const (
	UploadCreated     UploadStatus = "created"
	UploadOverwritten UploadStatus = "overwritten"
)

// ShareOptions narrows a share to the given users or groups. Nil means share
// with everyone, downloadable.
type ShareOptions struct {
	Users        []string
	Groups       []string
	Downloadable bool
}

// Client is the blocking facade. Every method performs exactly one transport
// call, a non-success status surfaces as *HTTPError, nothing is retried.
type Client struct {
	c       *config
	builder *Builder
}

// New builds a client against the default endpoint unless overridden.
func New(opts ...Option) (*Client, error) {
	c := &config{
		BaseURL: defaultBaseURL,
		DavRoot: defaultDavRoot,
		OpRoot:  defaultOperationRoot,
	}
	for _, opt := range opts {
		opt(c)
	}
	builder, err := NewBuilder(c.BaseURL, c.DavRoot, c.OpRoot)
	if err != nil {
		return nil, err
	}
	return &Client{c: c, builder: builder}, nil
}

// Builder exposes the request builder shared with the async facade.
func (c *Client) Builder() *Builder {
	return c.builder
}

func (c *Client) do(ctx context.Context, op Operation, path string, o Options, opts []CallOption) (int, []byte, error) {
	cc := applyCallOptions(opts)
	if o.Auth == nil {
		o.Auth = cc.auth
	}
	if o.Auth == nil {
		o.Auth = c.c.Auth
	}
	req, err := c.builder.Build(op, path, o)
	if err != nil {
		return 0, nil, err
	}
	var body io.Reader
	if len(req.Body) > 0 {
		body = bytes.NewReader(req.Body)
	}
	hreq, err := http.NewRequestWithContext(ctx, req.Method, req.URL, body)
	if err != nil {
		return 0, nil, fmt.Errorf("build http request failed, err:%w", err)
	}
	for k, vs := range req.Header {
		for _, v := range vs {
			hreq.Header.Add(k, v)
		}
	}
	cli := cc.client
	if cli == nil {
		cli = c.c.Client
	}
	if cli == nil {
		cli = defaultHTTPClient
	}
	rsp, err := cli.Do(hreq)
	if err != nil {
		return 0, nil, fmt.Errorf("perform request failed, op:%s, err:%w", op, err)
	}
	defer rsp.Body.Close()
	raw, err := io.ReadAll(rsp.Body)
	if err != nil {
		return 0, nil, fmt.Errorf("read response failed, op:%s, err:%w", op, err)
	}
	if !opSpecs[op].isSuccess(rsp.StatusCode) {
		return 0, nil, newHTTPError(rsp.StatusCode, raw)
	}
	return rsp.StatusCode, raw, nil
}

// Ls lists the items directly under path, in the order the server returned
// them.
func (c *Client) Ls(ctx context.Context, path string, opts ...CallOption) (entity.ItemList, error) {
	_, raw, err := c.do(ctx, OpLs, path, Options{Depth: 1}, opts)
	if err != nil {
		return nil, err
	}
	return ParseItemList(raw)
}

// Stat fetches the props of path itself, depth 0.
func (c *Client) Stat(ctx context.Context, path string, opts ...CallOption) (*entity.Entity, error) {
	_, raw, err := c.do(ctx, OpLs, path, Options{Depth: 0}, opts)
	if err != nil {
		return nil, err
	}
	items, err := ParseItemList(raw)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, newParseError("empty multistatus for stat", nil)
	}
	return items[0], nil
}

// Mkdir creates one directory, parents must exist.
func (c *Client) Mkdir(ctx context.Context, path string, opts ...CallOption) error {
	_, _, err := c.do(ctx, OpMkdir, path, Options{}, opts)
	return err
}

// Upload puts content at path and tells whether an existing object was
// replaced.
func (c *Client) Upload(ctx context.Context, path string, content []byte, opts ...CallOption) (UploadStatus, error) {
	code, _, err := c.do(ctx, OpUpload, path, Options{Body: content}, opts)
	if err != nil {
		return "", err
	}
	if code == http.StatusNoContent {
		return UploadOverwritten, nil
	}
	return UploadCreated, nil
}

// Download fetches the content of path.
func (c *Client) Download(ctx context.Context, path string, opts ...CallOption) ([]byte, error) {
	_, raw, err := c.do(ctx, OpDownload, path, Options{}, opts)
	if err != nil {
		return nil, err
	}
	return raw, nil
}

// Remove deletes a file or directory.
func (c *Client) Remove(ctx context.Context, path string, opts ...CallOption) error {
	_, _, err := c.do(ctx, OpRemove, path, Options{}, opts)
	return err
}

// Move renames src to dst. Without overwrite an existing dst fails the call.
func (c *Client) Move(ctx context.Context, src string, dst string, overwrite bool, opts ...CallOption) error {
	_, _, err := c.do(ctx, OpMove, src, Options{Destination: dst, Overwrite: overwrite}, opts)
	return err
}

// Copy duplicates src to dst.
func (c *Client) Copy(ctx context.Context, src string, dst string, overwrite bool, opts ...CallOption) error {
	_, _, err := c.do(ctx, OpCopy, src, Options{Destination: dst, Overwrite: overwrite}, opts)
	return err
}

// Share publishes path and returns its public link.
func (c *Client) Share(ctx context.Context, path string, o *ShareOptions, opts ...CallOption) (string, error) {
	if o == nil {
		o = &ShareOptions{Downloadable: true}
	}
	href, err := c.builder.DavPath(path)
	if err != nil {
		return "", err
	}
	payload := &model.Publish{
		XMLNS:            model.NSVendor,
		Href:             href,
		DownloadDisabled: !o.Downloadable,
	}
	if len(o.Users) > 0 || len(o.Groups) > 0 {
		payload.Acl = &model.PublishAcl{
			Users:  o.Users,
			Groups: o.Groups,
		}
	}
	_, raw, err := c.do(ctx, OpShare, "", Options{Payload: payload}, opts)
	if err != nil {
		return "", err
	}
	return ParseShareLink(raw)
}

// GetAcl fetches the privilege configuration of path.
func (c *Client) GetAcl(ctx context.Context, path string, opts ...CallOption) (*entity.Acl, error) {
	href, err := c.builder.DavPath(path)
	if err != nil {
		return nil, err
	}
	payload := &model.GetAcl{
		XMLNS: model.NSVendor,
		Href:  href,
	}
	_, raw, err := c.do(ctx, OpGetAcl, "", Options{Payload: payload}, opts)
	if err != nil {
		return nil, err
	}
	return ParseAcl(raw)
}

// UpdateAcl replaces the privilege configuration of path.
func (c *Client) UpdateAcl(ctx context.Context, path string, acl *entity.Acl, opts ...CallOption) error {
	href, err := c.builder.DavPath(path)
	if err != nil {
		return err
	}
	payload := &model.Sandbox{
		XMLNS: model.NSVendor,
		Href:  href,
	}
	if acl != nil {
		for user, perm := range acl.Users {
			payload.Acls = append(payload.Acls, &model.SandboxAcl{Username: user, Perm: perm})
		}
		for group, perm := range acl.Groups {
			payload.Acls = append(payload.Acls, &model.SandboxAcl{Group: group, Perm: perm})
		}
	}
	_, _, err = c.do(ctx, OpUpdateAcl, "", Options{Payload: payload}, opts)
	return err
}

// History fetches one page of the delta feed of a top folder. Pass cursor 0
// for the first page, then History.Next for the following ones.
func (c *Client) History(ctx context.Context, folder string, cursor int64, opts ...CallOption) (*entity.History, error) {
	payload := &model.Delta{
		XMLNS:      model.NSVendor,
		FolderName: folder,
	}
	if cursor > 0 {
		payload.Cursor = strings.ToUpper(strconv.FormatInt(cursor, 16))
	}
	_, raw, err := c.do(ctx, OpHistory, "", Options{Payload: payload}, opts)
	if err != nil {
		return nil, err
	}
	return ParseHistory(raw)
}

// LatestCursor fetches the newest delta cursor of a top folder.
func (c *Client) LatestCursor(ctx context.Context, folder string, opts ...CallOption) (int64, error) {
	payload := &model.Delta{
		XMLNS:      model.NSVendor,
		FolderName: folder,
	}
	_, raw, err := c.do(ctx, OpLatestCursor, "", Options{Payload: payload}, opts)
	if err != nil {
		return 0, err
	}
	return ParseCursor(raw)
}

// UserInfo fetches the account profile of the caller.
func (c *Client) UserInfo(ctx context.Context, opts ...CallOption) (*entity.User, error) {
	_, raw, err := c.do(ctx, OpUserInfo, "", Options{}, opts)
	if err != nil {
		return nil, err
	}
	return ParseUserInfo(raw)
}

// TeamMembers lists the members of the caller's team.
func (c *Client) TeamMembers(ctx context.Context, opts ...CallOption) ([]*entity.TeamMember, error) {
	_, raw, err := c.do(ctx, OpTeamMembers, "", Options{}, opts)
	if err != nil {
		return nil, err
	}
	return ParseTeamMembers(raw)
}

// Search looks keywords up under path and returns matches in server order.
func (c *Client) Search(ctx context.Context, keywords []string, path string, opts ...CallOption) (entity.ItemList, error) {
	href, err := c.builder.DavPath(path)
	if err != nil {
		return nil, err
	}
	payload := &model.Search{
		XMLNS:    model.NSVendor,
		Keywords: strings.Join(keywords, " "),
		Path:     href,
	}
	_, raw, err := c.do(ctx, OpSearch, "", Options{Payload: payload}, opts)
	if err != nil {
		return nil, err
	}
	return ParseItemList(raw)
}

// ContentURL resolves the direct download link of path.
func (c *Client) ContentURL(ctx context.Context, path string, opts ...CallOption) (string, error) {
	href, err := c.builder.DavPath(path)
	if err != nil {
		return "", err
	}
	payload := &model.ContentURL{
		XMLNS: model.NSVendor,
		Href:  href,
	}
	_, raw, err := c.do(ctx, OpContentURL, "", Options{Payload: payload}, opts)
	if err != nil {
		return "", err
	}
	return ParseContentURL(raw)
}

// SubmitCopyPub starts copying a published object into path and returns the
// job id to poll.
func (c *Client) SubmitCopyPub(ctx context.Context, shareURL string, path string, password string, opts ...CallOption) (string, error) {
	href, err := c.builder.DavPath(path)
	if err != nil {
		return "", err
	}
	payload := &model.CopyPub{
		XMLNS:              model.NSVendor,
		Href:               href,
		PublishedObjectURL: shareURL,
		CopyPassword:       password,
	}
	_, raw, err := c.do(ctx, OpSubmitCopyPub, "", Options{Payload: payload}, opts)
	if err != nil {
		return "", err
	}
	return ParseCopyUUID(raw)
}

// PollCopyPub reports whether a copy job finished. A still-running job
// answers false without error.
func (c *Client) PollCopyPub(ctx context.Context, copyUUID string, opts ...CallOption) (bool, error) {
	payload := &model.CopyPub{
		XMLNS:    model.NSVendor,
		CopyUUID: copyUUID,
	}
	code, _, err := c.do(ctx, OpPollCopyPub, "", Options{Payload: payload}, opts)
	if err != nil {
		return false, err
	}
	return code == http.StatusOK, nil
}

// EmptyRecycle purges the recycle bin of a sandbox.
func (c *Client) EmptyRecycle(ctx context.Context, path string, opts ...CallOption) error {
	href, err := c.builder.DavPath(path)
	if err != nil {
		return err
	}
	payload := &model.EmptyRecycle{
		XMLNS: model.NSVendor,
		Href:  href,
	}
	_, _, err = c.do(ctx, OpEmptyRecycle, "", Options{Payload: payload}, opts)
	return err
}
