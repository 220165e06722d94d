package blogclient

// Post is the canonical post record. The server has shipped two generations
// of field names; the legacy aliases are populated when an older payload is
// decoded and the Display* accessors prefer the modern field first.
type Post struct {
	ID             string   `json:"_id"`
	Title          string   `json:"title"`
	Slug           string   `json:"slug"`
	Content        string   `json:"content"`
	ParsedContent  string   `json:"parsed_content"`
	AuthorID       string   `json:"author_id"`
	AuthorUsername string   `json:"author_username"`
	Timestamp      string   `json:"timestamp"`
	LastUpdated    string   `json:"last_updated"`
	Tags           []string `json:"tags"`
	HeroBannerURL  string   `json:"hero_banner_url"`
	AISummary      string   `json:"ai_summary"`

	LegacyAuthor    string `json:"author"`
	LegacyCreatedAt string `json:"created_at"`
	LegacyUpdatedAt string `json:"updated_at"`
	LegacyHeroImage string `json:"hero_image"`
	LegacySummary   string `json:"summary"`
}

type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// AuthResponse is returned by both the login and register endpoints.
type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// PostFields carries the author-editable fields of a post. Create and update
// both send the full set; the client never patches individual fields.
type PostFields struct {
	Title         string   `json:"title"`
	Content       string   `json:"content"`
	Tags          []string `json:"tags"`
	HeroBannerURL string   `json:"hero_banner_url,omitempty"`
}

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type postsResponse struct {
	Posts []Post `json:"posts"`
}

type summaryResponse struct {
	Summary string `json:"summary"`
}

// postEnvelope tolerates both response shapes the server has used for a
// single post: a bare Post object and a {"post": {...}} wrapper.
type postEnvelope struct {
	Post
	Wrapped *Post `json:"post"`
}

func (e *postEnvelope) post() *Post {
	if e.Wrapped != nil {
		return e.Wrapped
	}
	return &e.Post
}

// DisplayTitle returns the post title, or a placeholder when the server sent
// none.
func (p *Post) DisplayTitle() string {
	if p.Title != "" {
		return p.Title
	}
	return "Untitled Post"
}

// DisplayAuthor prefers the modern author_username field over the legacy
// author field.
func (p *Post) DisplayAuthor() string {
	if p.AuthorUsername != "" {
		return p.AuthorUsername
	}
	if p.LegacyAuthor != "" {
		return p.LegacyAuthor
	}
	return "Unknown Author"
}

// CreatedAt returns the raw creation timestamp string, preferring the modern
// field.
func (p *Post) CreatedAt() string {
	if p.Timestamp != "" {
		return p.Timestamp
	}
	return p.LegacyCreatedAt
}

// UpdatedAt returns the raw last-modified timestamp string, falling back to
// the creation time when the post has never been edited.
func (p *Post) UpdatedAt() string {
	if p.LastUpdated != "" {
		return p.LastUpdated
	}
	if p.LegacyUpdatedAt != "" {
		return p.LegacyUpdatedAt
	}
	return p.CreatedAt()
}

func (p *Post) HeroBanner() string {
	if p.HeroBannerURL != "" {
		return p.HeroBannerURL
	}
	return p.LegacyHeroImage
}

// Summary returns the AI-generated summary if one has been produced.
func (p *Post) Summary() string {
	if p.AISummary != "" {
		return p.AISummary
	}
	return p.LegacySummary
}

func (p *Post) HasSummary() bool {
	return p.Summary() != ""
}

// DisplayContent returns the server-rendered HTML when present, otherwise the
// raw author markup.
func (p *Post) DisplayContent() string {
	if p.ParsedContent != "" {
		return p.ParsedContent
	}
	return p.Content
}

// HasTag reports exact, case-sensitive tag membership.
func (p *Post) HasTag(tag string) bool {
	for _, t := range p.Tags {
		if t == tag {
			return true
		}
	}
	return false
}
