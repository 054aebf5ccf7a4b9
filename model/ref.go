package model

// RepoRef identifies a hosted repository at a specific branch
type RepoRef struct {
	Owner      string
	Repository string
	Branch     string
}

func (r RepoRef) String() string {
	return r.Owner + "/" + r.Repository + "@" + r.Branch
}
