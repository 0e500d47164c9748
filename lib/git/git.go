package git

import (
	"os/exec"
	"strings"

	"github.com/pkg/errors"
)

func execGit(path string, cmd ...string) (string, error) {
	args := []string{}
	args = append(args, "-C", path)
	args = append(args, cmd...)
	gitCmd := exec.Command("git", args...)
	out, err := gitCmd.Output()
	if err != nil {
		return "", errors.Wrapf(err, "git %s", strings.Join(cmd, " "))
	}
	return strings.Trim(string(out), " \r\n"), nil
}

func IsRepo(path string) bool {
	_, err := execGit(path, "rev-parse", "--is-inside-work-tree")
	return err == nil
}

// OriginURL returns the fetch url of the origin remote.
func OriginURL(path string) (string, error) {
	remotes, err := execGit(path, "remote")
	if err != nil {
		return "", err
	}
	for _, remote := range strings.Split(remotes, "\n") {
		if strings.TrimSpace(remote) == "origin" {
			return execGit(path, "remote", "get-url", "origin")
		}
	}
	return "", errors.New("no origin remote")
}

// CurrentBranch is empty on a detached HEAD.
func CurrentBranch(path string) (string, error) {
	return execGit(path, "branch", "--show-current")
}

func HeadCommit(path string) (CommitInfo, error) {
	hash, err := execGit(path, "log", "-1", "--format=format:%H")
	if err != nil {
		return CommitInfo{}, err
	}
	message, err := execGit(path, "log", "-1", "--format=format:%s")
	if err != nil {
		return CommitInfo{}, err
	}
	author, err := execGit(path, "log", "-1", "--format=format:%an <%ae>")
	if err != nil {
		return CommitInfo{}, err
	}
	return CommitInfo{
		Hash:    hash,
		Message: message,
		Author:  author,
	}, nil
}

// Inspect collects what the CLI can default from a local checkout. Missing
// pieces are left empty rather than reported.
func Inspect(path string) Metadata {
	if !IsRepo(path) {
		return Metadata{}
	}
	meta := Metadata{IsRepo: true}
	meta.OriginURL, _ = OriginURL(path)
	meta.Branch, _ = CurrentBranch(path)
	if commit, err := HeadCommit(path); err == nil {
		meta.Head = &commit
	}
	return meta
}
