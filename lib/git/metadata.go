package git

type CommitInfo struct {
	Hash    string
	Message string
	Author  string
}

type Metadata struct {
	IsRepo    bool
	OriginURL string
	Branch    string
	Head      *CommitInfo
}
