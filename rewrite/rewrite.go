package rewrite

import (
	"bytes"
	"fmt"
	"os"
	"regexp"
	"strings"

	"link-swap/model"
)

// pathCapture matches the trailing path of a link: everything up to
// whitespace or a character that commonly terminates a URL in markup.
const pathCapture = `([^\s"')<>]+)`

// Rewriter rewrites jsDelivr and raw GitHub links that point at one
// repository branch so they resolve under a custom domain instead.
type Rewriter struct {
	jsdelivr *regexp.Regexp
	rawHost  *regexp.Regexp
	baseURL  string
}

// New compiles the replacement patterns for ref. Owner, repository, and
// branch are matched literally, so links to other repositories or branches
// are left alone.
func New(ref model.RepoRef, domain string) *Rewriter {
	owner := regexp.QuoteMeta(ref.Owner)
	repo := regexp.QuoteMeta(ref.Repository)
	branch := regexp.QuoteMeta(ref.Branch)

	return &Rewriter{
		jsdelivr: regexp.MustCompile(
			`https?://cdn\.jsdelivr\.net/gh/` + owner + `/` + repo + `@` + branch + `/` + pathCapture,
		),
		rawHost: regexp.MustCompile(
			`https?://raw\.githubusercontent\.com/` + owner + `/` + repo + `/` + branch + `/` + pathCapture,
		),
		baseURL: "https://" + domain,
	}
}

// Apply substitutes both link forms in content, jsDelivr first, and returns
// the rewritten content along with the number of substitutions made.
func (rw *Rewriter) Apply(content []byte) ([]byte, int) {
	count := 0

	replace := func(pattern *regexp.Regexp, in []byte) []byte {
		return pattern.ReplaceAllFunc(in, func(match []byte) []byte {
			path := string(pattern.FindSubmatch(match)[1])
			count++
			// The captured path passes through verbatim, minus leading
			// slashes to avoid a double slash after the domain.
			return []byte(rw.baseURL + "/" + strings.TrimLeft(path, "/"))
		})
	}

	content = replace(rw.jsdelivr, content)
	content = replace(rw.rawHost, content)

	return content, count
}

// RewriteFile reads the file at path, applies the substitutions, and writes
// the result back only when the content actually changed. It returns the
// number of substitutions made in this file.
func (rw *Rewriter) RewriteFile(path string) (int, error) {
	original, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("error reading file %s: %w", path, err)
	}

	content, count := rw.Apply(original)
	if bytes.Equal(content, original) {
		return count, nil
	}

	if err := os.WriteFile(path, content, 0o644); err != nil {
		return 0, fmt.Errorf("error writing file %s: %w", path, err)
	}

	return count, nil
}
