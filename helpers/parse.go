package helpers

import (
	"fmt"
	"regexp"

	"link-swap/model"
)

// owner/repo@branch - the branch keeps everything after the first '@'
var refRegex = regexp.MustCompile(`^([^/]+)/([^@]+)@(.+)$`)

// ParseRepoRef parses a repository reference of the form "owner/repo@branch".
func ParseRepoRef(ref string) (model.RepoRef, error) {
	match := refRegex.FindStringSubmatch(ref)
	if match == nil {
		return model.RepoRef{}, fmt.Errorf(
			"invalid repository format: %s\nExpected: owner/repo@branch (e.g. alice/myrepo@main)",
			ref,
		)
	}

	components := model.RepoRef{
		Owner:      match[1],
		Repository: match[2],
		Branch:     match[3],
	}
	if components.Owner == "" || components.Repository == "" || components.Branch == "" {
		return model.RepoRef{}, fmt.Errorf("owner, repository name, and branch cannot be empty")
	}

	return components, nil
}
