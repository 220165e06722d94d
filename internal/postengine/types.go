package postengine

import (
	"context"

	"github.com/pointlessduffin-21/duffin-blogs/internal/blogclient"
)

// APIClient is the remote API surface the engine drives. *blogclient.Client
// satisfies it.
type APIClient interface {
	ListPosts(ctx context.Context) ([]blogclient.Post, error)
	SearchPosts(ctx context.Context, query string) ([]blogclient.Post, error)
	PostsByTag(ctx context.Context, tag string) ([]blogclient.Post, error)
	CreatePost(ctx context.Context, token string, fields *blogclient.PostFields) (*blogclient.Post, error)
	UpdatePost(ctx context.Context, token, id string, fields *blogclient.PostFields) (*blogclient.Post, error)
	DeletePost(ctx context.Context, token, id string) error
	GenerateSummary(ctx context.Context, slug string) (string, error)
}

// TokenSource yields the stored bearer token. The engine re-reads it for
// every mutating call and never holds on to it. *credstore.Store satisfies
// it.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

type FilterKind int

const (
	FilterNone FilterKind = iota
	FilterQuery
	FilterTag
)

// Filter is the single active view-narrowing criterion: none, a free-text
// query, or one tag. Never more than one at a time.
type Filter struct {
	Kind  FilterKind
	Value string
}

// State is the engine's observable state. VisiblePosts is always derived
// from AllPosts and ActiveFilter; it is never mutated on its own.
type State struct {
	AllPosts     []blogclient.Post
	VisiblePosts []blogclient.Post
	ActiveFilter Filter
	SelectedPost *blogclient.Post
	IsLoading    bool
	IsMutating   bool
	LastError    string
}
