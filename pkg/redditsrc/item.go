// Package redditsrc fetches posts and comment trees from a subreddit and
// normalizes them into the item shape the scoring pipeline consumes.
package redditsrc

import (
	"strings"
	"sync"
	"time"
)

// Kind tags an item as a post or a comment.
type Kind string

const (
	KindPost    Kind = "post"
	KindComment Kind = "comment"
)

// DeletedAuthor is the placeholder recorded when an author is absent.
const DeletedAuthor = "[deleted]"

// Item is one post or comment, normalized. Kind-specific fields (Title,
// Flair, ContentType) are empty on comments rather than probed.
type Item struct {
	ID          string
	Kind        Kind
	Author      string
	ParentID    string // post id for comments, empty for posts
	Subreddit   string
	Permalink   string
	PostLink    string // link of the parent post; same as Permalink for posts
	Title       string
	Body        string
	Flair       string
	ContentType string // text, image or link
	Score       int
	Moderator   bool
	CreatedAt   time.Time
}

// FullText is the text payload scored and matched: title plus body for
// posts, body alone for comments.
func (i Item) FullText() string {
	if i.Kind == KindPost {
		return strings.TrimSpace(i.Title + " " + i.Body)
	}
	return i.Body
}

// RewardsExempt reports whether an author is excluded from downstream
// reward payouts: deleted accounts and the configured bots.
func RewardsExempt(author string, bots []string) bool {
	if author == "" {
		return true
	}
	name := strings.ToLower(author)
	if name == DeletedAuthor {
		return true
	}
	for _, b := range bots {
		if name == strings.ToLower(b) {
			return true
		}
	}
	return false
}

// ignoredAuthor reports whether author is in the fetch-time drop list.
// Ignored authors never enter the pipeline, unlike rewards-exempt ones.
func ignoredAuthor(author string, list []string) bool {
	name := strings.ToLower(author)
	for _, b := range list {
		if name == strings.ToLower(b) {
			return true
		}
	}
	return false
}

var imageExtensions = []string{".jpg", ".jpeg", ".png", ".gif", ".webp"}

// classifyContentType mirrors how posts are bucketed for reporting:
// self posts are text, direct image links are image, anything else link.
func classifyContentType(isSelf bool, url string) string {
	if isSelf {
		return "text"
	}
	lower := strings.ToLower(url)
	for _, ext := range imageExtensions {
		if strings.HasSuffix(lower, ext) {
			return "image"
		}
	}
	return "link"
}

// CallCounter accumulates API request totals for a run. It replaces any
// notion of a process-global counter; the client carries one explicitly
// and run reports read it back.
type CallCounter struct {
	mu sync.Mutex
	n  int
}

// Inc records one API call.
func (c *CallCounter) Inc() {
	c.mu.Lock()
	c.n++
	c.mu.Unlock()
}

// Total returns the calls recorded so far.
func (c *CallCounter) Total() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.n
}
