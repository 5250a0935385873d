package redditsrc

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/mmcdole/gofeed"
)

// Feed collects a subreddit's new posts from its public Atom feed. It is
// the credential-less fallback: feeds carry no vote counts or flair, so
// items collect with zero engagement and no comments. Useful for smoke
// runs, not for reward snapshots.
type Feed struct {
	parser *gofeed.Parser
	opts   Options
}

// NewFeed creates the Atom-feed collector.
func NewFeed(opts Options) *Feed {
	return &Feed{parser: gofeed.NewParser(), opts: opts}
}

// Collect parses r/<subreddit>/new/.rss and returns posts in the window.
func (f *Feed) Collect(ctx context.Context) ([]Item, error) {
	feedURL := fmt.Sprintf("https://www.reddit.com/r/%s/new/.rss", f.opts.Subreddit)

	feed, err := f.parser.ParseURLWithContext(feedURL, ctx)
	if err != nil {
		return nil, fmt.Errorf("parse feed r/%s: %w", f.opts.Subreddit, err)
	}

	var items []Item
	for _, entry := range feed.Items {
		if len(items) >= f.opts.MaxPosts {
			break
		}
		item, ok := f.entryItem(entry)
		if !ok {
			continue
		}
		items = append(items, item)
	}
	return items, nil
}

// entryItem converts one feed entry, dropping undated entries, entries
// outside the window and ignored authors.
func (f *Feed) entryItem(entry *gofeed.Item) (Item, bool) {
	var created time.Time
	switch {
	case entry.UpdatedParsed != nil:
		created = entry.UpdatedParsed.UTC()
	case entry.PublishedParsed != nil:
		created = entry.PublishedParsed.UTC()
	default:
		return Item{}, false
	}
	if created.Before(f.opts.Start) || created.After(f.opts.End) {
		return Item{}, false
	}

	author := DeletedAuthor
	if entry.Author != nil && entry.Author.Name != "" {
		author = strings.TrimPrefix(entry.Author.Name, "/u/")
	}
	if ignoredAuthor(author, f.opts.IgnoredAuthors) {
		return Item{}, false
	}

	return Item{
		ID:          feedEntryID(entry.GUID),
		Kind:        KindPost,
		Author:      author,
		Subreddit:   f.opts.Subreddit,
		Permalink:   entry.Link,
		PostLink:    entry.Link,
		Title:       entry.Title,
		Body:        entry.Description,
		ContentType: "text",
		CreatedAt:   created,
	}, true
}

// feedEntryID strips the thing prefix from Atom ids like "t3_abc123".
func feedEntryID(guid string) string {
	if i := strings.IndexByte(guid, '_'); i >= 0 {
		return guid[i+1:]
	}
	return guid
}
