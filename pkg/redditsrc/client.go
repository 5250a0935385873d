package redditsrc

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"
)

const userAgent = "moonpulse snapshot collector/1.0"

// Collector produces items for the scoring pipeline.
type Collector interface {
	Collect(ctx context.Context) ([]Item, error)
}

// Options bounds a collection run.
type Options struct {
	Subreddit          string
	Start, End         time.Time // UTC window, inclusive
	MaxPosts           int
	MaxCommentsPerPost int
	// IgnoredAuthors are dropped at fetch time entirely, not just
	// rewards-exempted.
	IgnoredAuthors []string
}

// Client fetches a subreddit's new posts and their comment trees via the
// OAuth client-credentials API.
type Client struct {
	http         *http.Client
	clientID     string
	clientSecret string
	opts         Options
	calls        *CallCounter

	mu          sync.Mutex
	token       string
	tokenExpiry time.Time
}

// NewClient creates a Reddit API collector. calls may not be nil; every
// HTTP request against the API increments it.
func NewClient(clientID, clientSecret string, opts Options, calls *CallCounter) *Client {
	if opts.MaxPosts <= 0 {
		opts.MaxPosts = 800
	}
	if opts.MaxCommentsPerPost <= 0 {
		opts.MaxCommentsPerPost = 300
	}
	return &Client{
		http:         &http.Client{Timeout: 30 * time.Second},
		clientID:     clientID,
		clientSecret: clientSecret,
		opts:         opts,
		calls:        calls,
	}
}

// Collect fetches posts in the configured window plus their comments,
// in listing order.
func (c *Client) Collect(ctx context.Context) ([]Item, error) {
	if err := c.authenticate(ctx); err != nil {
		return nil, fmt.Errorf("reddit auth: %w", err)
	}

	posts, err := c.fetchNewPosts(ctx)
	if err != nil {
		return nil, err
	}

	var items []Item
	for _, p := range posts {
		if c.ignored(p.Author) {
			continue
		}
		items = append(items, p)

		comments, err := c.fetchComments(ctx, p)
		if err != nil {
			return nil, fmt.Errorf("comments for %s: %w", p.ID, err)
		}
		items = append(items, comments...)
	}
	return items, nil
}

func (c *Client) ignored(author string) bool {
	return ignoredAuthor(author, c.opts.IgnoredAuthors)
}

func (c *Client) authenticate(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.token != "" && time.Now().Before(c.tokenExpiry) {
		return nil
	}

	data := url.Values{"grant_type": {"client_credentials"}}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		"https://www.reddit.com/api/v1/access_token",
		strings.NewReader(data.Encode()))
	if err != nil {
		return err
	}
	req.SetBasicAuth(c.clientID, c.clientSecret)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.do(req)
	if err != nil {
		return fmt.Errorf("token request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("token status %d", resp.StatusCode)
	}

	var tokenResp struct {
		AccessToken string `json:"access_token"`
		ExpiresIn   int    `json:"expires_in"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&tokenResp); err != nil {
		return fmt.Errorf("decode token: %w", err)
	}

	c.token = tokenResp.AccessToken
	c.tokenExpiry = time.Now().Add(time.Duration(tokenResp.ExpiresIn-60) * time.Second)
	return nil
}

func (c *Client) do(req *http.Request) (*http.Response, error) {
	if c.calls != nil {
		c.calls.Inc()
	}
	return c.http.Do(req)
}

func (c *Client) get(ctx context.Context, reqURL string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("status %d for %s", resp.StatusCode, reqURL)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func (c *Client) fetchNewPosts(ctx context.Context) ([]Item, error) {
	var (
		posts []Item
		after string
	)
	for len(posts) < c.opts.MaxPosts {
		reqURL := fmt.Sprintf("https://oauth.reddit.com/r/%s/new.json?limit=100", c.opts.Subreddit)
		if after != "" {
			reqURL += "&after=" + after
		}

		var page listing
		if err := c.get(ctx, reqURL, &page); err != nil {
			return nil, fmt.Errorf("fetch r/%s new: %w", c.opts.Subreddit, err)
		}
		if len(page.Data.Children) == 0 {
			break
		}

		stop := false
		for _, child := range page.Data.Children {
			var p postData
			if err := json.Unmarshal(child.Data, &p); err != nil {
				continue
			}
			created := time.Unix(int64(p.CreatedUTC), 0).UTC()
			if created.Before(c.opts.Start) {
				// Listing is newest-first; everything past here is older.
				stop = true
				break
			}
			if created.After(c.opts.End) {
				continue
			}
			posts = append(posts, c.postItem(p, created))
			if len(posts) >= c.opts.MaxPosts {
				break
			}
		}
		if stop || page.Data.After == "" {
			break
		}
		after = page.Data.After
	}
	return posts, nil
}

func (c *Client) postItem(p postData, created time.Time) Item {
	author := p.Author
	if author == "" {
		author = DeletedAuthor
	}
	permalink := "https://reddit.com" + p.Permalink
	return Item{
		ID:          p.ID,
		Kind:        KindPost,
		Author:      author,
		Subreddit:   p.Subreddit,
		Permalink:   permalink,
		PostLink:    permalink,
		Title:       p.Title,
		Body:        p.Selftext,
		Flair:       p.LinkFlairText,
		ContentType: classifyContentType(p.IsSelf, p.URL),
		Score:       p.Score,
		Moderator:   p.Distinguished == "moderator",
		CreatedAt:   created,
	}
}

func (c *Client) fetchComments(ctx context.Context, post Item) ([]Item, error) {
	reqURL := fmt.Sprintf("https://oauth.reddit.com/comments/%s.json?limit=500&depth=10", post.ID)

	var pages []listing
	if err := c.get(ctx, reqURL, &pages); err != nil {
		return nil, err
	}
	if len(pages) < 2 {
		return nil, nil
	}

	var items []Item
	c.flattenComments(pages[1].Data.Children, post, &items)
	return items, nil
}

// flattenComments walks the comment tree depth-first, keeping listing
// order and honoring the per-post cap and the collection window.
func (c *Client) flattenComments(children []childThing, post Item, out *[]Item) {
	for _, child := range children {
		if len(*out) >= c.opts.MaxCommentsPerPost {
			return
		}
		if child.Kind != "t1" {
			continue
		}
		var cm commentData
		if err := json.Unmarshal(child.Data, &cm); err != nil {
			continue
		}

		created := time.Unix(int64(cm.CreatedUTC), 0).UTC()
		author := cm.Author
		if author == "" {
			author = DeletedAuthor
		}

		inWindow := !created.Before(c.opts.Start) && !created.After(c.opts.End)
		if inWindow && !c.ignored(author) {
			*out = append(*out, Item{
				ID:          cm.ID,
				Kind:        KindComment,
				Author:      author,
				ParentID:    post.ID,
				Subreddit:   post.Subreddit,
				Permalink:   "https://reddit.com" + cm.Permalink,
				PostLink:    post.PostLink,
				Body:        cm.Body,
				Flair:       post.Flair,
				ContentType: "text",
				Score:       cm.Score,
				Moderator:   cm.Distinguished == "moderator",
				CreatedAt:   created,
			})
		}

		if len(cm.Replies) > 0 && string(cm.Replies) != `""` {
			var replies listing
			if err := json.Unmarshal(cm.Replies, &replies); err == nil {
				c.flattenComments(replies.Data.Children, post, out)
			}
		}
	}
}

type listing struct {
	Data struct {
		Children []childThing `json:"children"`
		After    string       `json:"after"`
	} `json:"data"`
}

type childThing struct {
	Kind string          `json:"kind"`
	Data json.RawMessage `json:"data"`
}

type postData struct {
	ID            string  `json:"id"`
	Title         string  `json:"title"`
	Selftext      string  `json:"selftext"`
	URL           string  `json:"url"`
	Permalink     string  `json:"permalink"`
	Author        string  `json:"author"`
	Subreddit     string  `json:"subreddit"`
	Score         int     `json:"score"`
	CreatedUTC    float64 `json:"created_utc"`
	IsSelf        bool    `json:"is_self"`
	LinkFlairText string  `json:"link_flair_text"`
	Distinguished string  `json:"distinguished"`
}

type commentData struct {
	ID            string          `json:"id"`
	Body          string          `json:"body"`
	Permalink     string          `json:"permalink"`
	Author        string          `json:"author"`
	Score         int             `json:"score"`
	CreatedUTC    float64         `json:"created_utc"`
	Distinguished string          `json:"distinguished"`
	Replies       json.RawMessage `json:"replies"`
}
