// Package postengine holds the client-side post cache: the most recently
// fetched post list, the derived filtered view, and the selected post. It is
// the single owner of that state; the presentation layer reads snapshots and
// issues commands.
package postengine

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/pointlessduffin-21/duffin-blogs/internal/blogclient"
)

var ErrAuthRequired = errors.New("authentication required")

var ErrPostUnavailable = errors.New("post not yet available")

const (
	// credReadTimeout bounds credential store reads. Expiry reads as "not
	// logged in", never a hard failure.
	credReadTimeout = 5 * time.Second

	// summaryWait is how long the client waits on summary generation before
	// giving up and offering a retry.
	summaryWait = 30 * time.Second
)

// Engine is safe for concurrent use. Concurrent Load calls are neither
// deduplicated nor cancelled: the last response to resolve wins.
type Engine struct {
	api    APIClient
	creds  TokenSource
	logger *slog.Logger

	mu    sync.Mutex
	state State
	subs  []func(State)
}

func New(api APIClient, creds TokenSource, logger *slog.Logger) *Engine {
	return &Engine{
		api:    api,
		creds:  creds,
		logger: logger,
	}
}

// Subscribe registers an observer that receives a snapshot after every state
// transition.
func (e *Engine) Subscribe(fn func(State)) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.subs = append(e.subs, fn)
}

// Snapshot returns a copy of the current state. Post slices are shared and
// must be treated as read-only.
func (e *Engine) Snapshot() State {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.state
}

// update applies fn under the lock and notifies subscribers with the
// resulting snapshot after releasing it.
func (e *Engine) update(fn func(s *State)) {
	e.mu.Lock()
	fn(&e.state)
	snapshot := e.state
	subs := e.subs
	e.mu.Unlock()

	for _, fn := range subs {
		fn(snapshot)
	}
}

// Load fetches the full post collection and replaces the cache wholesale.
// The active filter is reapplied to the new list. On failure the cache is
// left untouched and LastError is set for display.
func (e *Engine) Load(ctx context.Context) error {
	e.update(func(s *State) {
		s.IsLoading = true
		s.LastError = ""
	})

	posts, err := e.api.ListPosts(ctx)
	if err != nil {
		e.logger.Error("failed to load posts", slog.String("error", err.Error()))
		e.update(func(s *State) {
			s.IsLoading = false
			s.LastError = err.Error()
		})
		return err
	}

	e.update(func(s *State) {
		s.IsLoading = false
		s.AllPosts = posts
		s.VisiblePosts = applyFilter(posts, s.ActiveFilter)
	})

	return nil
}

// Search narrows the visible list to posts matching query. The server's
// search is authoritative; when it fails the engine silently degrades to a
// local case-insensitive substring match over title, content, and tags. An
// empty query clears the filter.
func (e *Engine) Search(ctx context.Context, query string) {
	if query == "" {
		e.ClearFilter()
		return
	}

	e.update(func(s *State) {
		s.ActiveFilter = Filter{Kind: FilterQuery, Value: query}
	})

	posts, err := e.api.SearchPosts(ctx, query)
	if err != nil {
		e.logger.Debug("server search failed, filtering locally", slog.String("query", query), slog.String("error", err.Error()))
		e.update(func(s *State) {
			s.VisiblePosts = matchQuery(s.AllPosts, query)
		})
		return
	}

	e.update(func(s *State) {
		s.VisiblePosts = posts
	})
}

// FilterByTag narrows the visible list to posts carrying tag. On server
// failure it degrades silently to exact, case-sensitive local tag matching.
// The engine never auto-toggles an active tag; unselecting is the
// presentation layer calling ClearFilter.
func (e *Engine) FilterByTag(ctx context.Context, tag string) {
	e.update(func(s *State) {
		s.ActiveFilter = Filter{Kind: FilterTag, Value: tag}
	})

	posts, err := e.api.PostsByTag(ctx, tag)
	if err != nil {
		e.logger.Debug("server tag filter failed, filtering locally", slog.String("tag", tag), slog.String("error", err.Error()))
		e.update(func(s *State) {
			s.VisiblePosts = matchTag(s.AllPosts, tag)
		})
		return
	}

	e.update(func(s *State) {
		s.VisiblePosts = posts
	})
}

// ClearFilter resets the active filter and restores the full list in server
// order.
func (e *Engine) ClearFilter() {
	e.update(func(s *State) {
		s.ActiveFilter = Filter{}
		s.VisiblePosts = s.AllPosts
	})
}

// SelectPost records the post open in a detail view. No membership check
// against the cache: direct navigation may select a post the list has not
// loaded yet.
func (e *Engine) SelectPost(p blogclient.Post) {
	e.update(func(s *State) {
		s.SelectedPost = &p
	})
}

// ResolvePost finds the post for a detail view opened with only an
// identifier. It prefers the current selection, then scans the cache and
// selects the match. ErrPostUnavailable means the cache has not populated
// yet; the caller should re-resolve after the next Load.
func (e *Engine) ResolvePost(id string) (*blogclient.Post, error) {
	e.mu.Lock()
	if e.state.SelectedPost != nil && e.state.SelectedPost.ID == id {
		p := *e.state.SelectedPost
		e.mu.Unlock()
		return &p, nil
	}

	for _, p := range e.state.AllPosts {
		if p.ID == id {
			e.mu.Unlock()
			e.SelectPost(p)
			return &p, nil
		}
	}
	e.mu.Unlock()

	return nil, ErrPostUnavailable
}

// CreatePost publishes a new post and re-fetches the whole collection on
// success, so the cache picks up the server-assigned identifier, slug, and
// timestamps. Without a stored token it fails before any network call.
func (e *Engine) CreatePost(ctx context.Context, title, content string, tags []string, heroBanner string) error {
	token, err := e.token(ctx)
	if err != nil {
		e.update(func(s *State) {
			s.LastError = err.Error()
		})
		return err
	}

	e.update(func(s *State) {
		s.IsMutating = true
		s.LastError = ""
	})

	fields := &blogclient.PostFields{Title: title, Content: content, Tags: tags, HeroBannerURL: heroBanner}
	if _, err := e.api.CreatePost(ctx, token, fields); err != nil {
		e.logger.Error("failed to create post", slog.String("error", err.Error()))
		e.update(func(s *State) {
			s.IsMutating = false
			s.LastError = err.Error()
		})
		return err
	}

	e.update(func(s *State) {
		s.IsMutating = false
	})

	return e.Load(ctx)
}

// UpdatePost replaces an existing post wholesale and re-fetches on success,
// under the same contract as CreatePost.
func (e *Engine) UpdatePost(ctx context.Context, id, title, content string, tags []string, heroBanner string) error {
	token, err := e.token(ctx)
	if err != nil {
		e.update(func(s *State) {
			s.LastError = err.Error()
		})
		return err
	}

	e.update(func(s *State) {
		s.IsMutating = true
		s.LastError = ""
	})

	fields := &blogclient.PostFields{Title: title, Content: content, Tags: tags, HeroBannerURL: heroBanner}
	if _, err := e.api.UpdatePost(ctx, token, id, fields); err != nil {
		e.logger.Error("failed to update post", slog.String("id", id), slog.String("error", err.Error()))
		e.update(func(s *State) {
			s.IsMutating = false
			s.LastError = err.Error()
		})
		return err
	}

	e.update(func(s *State) {
		s.IsMutating = false
	})

	return e.Load(ctx)
}

// DeletePost removes a post. Unlike create and update it does not re-fetch;
// the presentation layer navigates away and triggers its own Load.
func (e *Engine) DeletePost(ctx context.Context, id string) error {
	token, err := e.token(ctx)
	if err != nil {
		e.update(func(s *State) {
			s.LastError = err.Error()
		})
		return err
	}

	if err := e.api.DeletePost(ctx, token, id); err != nil {
		e.logger.Error("failed to delete post", slog.String("id", id), slog.String("error", err.Error()))
		e.update(func(s *State) {
			s.LastError = err.Error()
		})
		return err
	}

	return nil
}

// GenerateSummary requests the AI summary for a post, waiting at most
// summaryWait before giving up so the presentation layer can offer a retry.
func (e *Engine) GenerateSummary(ctx context.Context, slug string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, summaryWait)
	defer cancel()

	return e.api.GenerateSummary(ctx, slug)
}

// AllTags returns every tag across the cached posts, deduplicated and sorted
// lexicographically. Computed on demand, never cached.
func (e *Engine) AllTags() []string {
	e.mu.Lock()
	defer e.mu.Unlock()

	return collectTags(e.state.AllPosts)
}

// ClearError resets the displayed error.
func (e *Engine) ClearError() {
	e.update(func(s *State) {
		s.LastError = ""
	})
}

func (e *Engine) token(ctx context.Context) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, credReadTimeout)
	defer cancel()

	token, err := e.creds.Token(ctx)
	if err != nil || token == "" {
		return "", ErrAuthRequired
	}

	return token, nil
}
