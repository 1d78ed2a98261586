package dav

import "net/http"

// Operation names one supported call. Core WebDAV verbs use short names,
// vendor extensions use the endpoint name they are posted to.
type Operation string

const (
	OpLs       Operation = "ls"
	OpMkdir    Operation = "mkdir"
	OpUpload   Operation = "upload"
	OpDownload Operation = "download"
	OpRemove   Operation = "rm"
	OpMove     Operation = "mv"
	OpCopy     Operation = "cp"
	//
	OpShare         Operation = "pubObject"
	OpGetAcl        Operation = "getSandboxAcl"
	OpUpdateAcl     Operation = "updateSandboxAcl"
	OpHistory       Operation = "delta"
	OpLatestCursor  Operation = "latestDeltaCursor"
	OpUserInfo      Operation = "getUserInfo"
	OpTeamMembers   Operation = "getTeamMembers"
	OpSearch        Operation = "search"
	OpContentURL    Operation = "directContentUrl"
	OpSubmitCopyPub Operation = "submitCopyPubObject"
	OpPollCopyPub   Operation = "pollCopyPubObject"
	OpEmptyRecycle  Operation = "emptyRecycleBin"
)

type opSpec struct {
	method  string
	isDav   bool //dav资源路径, 非操作接口
	success []int
}

var opSpecs = map[Operation]*opSpec{
	OpLs:       {method: "PROPFIND", isDav: true, success: []int{http.StatusMultiStatus}},
	OpMkdir:    {method: "MKCOL", isDav: true, success: []int{http.StatusCreated}},
	OpUpload:   {method: http.MethodPut, isDav: true, success: []int{http.StatusCreated, http.StatusNoContent}},
	OpDownload: {method: http.MethodGet, isDav: true, success: []int{http.StatusOK}},
	OpRemove:   {method: http.MethodDelete, isDav: true, success: []int{http.StatusNoContent}},
	OpMove:     {method: "MOVE", isDav: true, success: []int{http.StatusCreated, http.StatusNoContent}},
	OpCopy:     {method: "COPY", isDav: true, success: []int{http.StatusCreated, http.StatusNoContent}},
	//
	OpShare:         {method: http.MethodPost, success: []int{http.StatusOK}},
	OpGetAcl:        {method: http.MethodPost, success: []int{http.StatusOK}},
	OpUpdateAcl:     {method: http.MethodPost, success: []int{http.StatusOK}},
	OpHistory:       {method: http.MethodPost, success: []int{http.StatusOK}},
	OpLatestCursor:  {method: http.MethodPost, success: []int{http.StatusOK}},
	OpUserInfo:      {method: http.MethodPost, success: []int{http.StatusOK}},
	OpTeamMembers:   {method: http.MethodPost, success: []int{http.StatusOK}},
	OpSearch:        {method: http.MethodPost, success: []int{http.StatusOK}},
	OpContentURL:    {method: http.MethodPost, success: []int{http.StatusOK}},
	OpSubmitCopyPub: {method: http.MethodPost, success: []int{http.StatusOK}},
	OpPollCopyPub:   {method: http.MethodPost, success: []int{http.StatusOK, http.StatusAccepted}},
	OpEmptyRecycle:  {method: http.MethodPost, success: []int{http.StatusOK}},
}

func (s *opSpec) isSuccess(code int) bool {
	for _, c := range s.success {
		if c == code {
			return true
		}
	}
	return false
}
