package entity

import "time"

type Branch struct {
	Name      string       `json:"name"`
	Protected bool         `json:"protected"`
	Commit    BranchCommit `json:"commit"`
}

type BranchCommit struct {
	Sha string `json:"sha"`
	URL string `json:"url"`
}

type Commit struct {
	Sha     string       `json:"sha"`
	Message string       `json:"message"`
	Time    time.Time    `json:"time"`
	Author  CommitAuthor `json:"author"`
}

type CommitAuthor struct {
	Name      string `json:"name"`
	AvatarURL string `json:"avatarUrl"`
}

// ImageCatalog lists the available image versions, newest first.
type ImageCatalog struct {
	Indexer []string `json:"indexer"`
	Query   []string `json:"query"`
}
