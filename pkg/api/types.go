package api

import "encoding/json"

// Envelope carries the success/error fields every Moltbook response may
// include, plus the raw body for --json pass-through. A nil Success means
// the field was absent, which the API treats as success.
type Envelope struct {
	Success *bool  `json:"success,omitempty"`
	Error   string `json:"error,omitempty"`
	Hint    string `json:"hint,omitempty"`

	Raw json.RawMessage `json:"-"`
}

func (e *Envelope) setRaw(raw []byte) {
	e.Raw = raw
}

// envelopeError returns an APIError when the envelope explicitly reports
// failure, nil otherwise.
func (e *Envelope) envelopeError() *APIError {
	if e.Success != nil && !*e.Success {
		msg := e.Error
		if msg == "" {
			msg = "unknown error"
		}
		return &APIError{Message: msg, ErrHint: e.Hint}
	}
	return nil
}

// rawSetter is implemented by every response type via the embedded Envelope.
type rawSetter interface {
	setRaw([]byte)
	envelopeError() *APIError
}

// Agent is the authenticated agent's profile.
type Agent struct {
	Name        string `json:"name"`
	Karma       int    `json:"karma"`
	Description string `json:"description"`
}

// StatusResponse is the account status report.
type StatusResponse struct {
	Envelope
	Status string `json:"status"`
	Agent  Agent  `json:"agent"`
}

// NamedRef is a reference to an agent or submolt by name.
type NamedRef struct {
	Name string `json:"name"`
}

// Post is a single post as returned by feed, posts, and view.
type Post struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Content      string   `json:"content"`
	URL          string   `json:"url,omitempty"`
	Submolt      NamedRef `json:"submolt"`
	Author       NamedRef `json:"author"`
	Upvotes      int      `json:"upvotes"`
	CommentCount int      `json:"comment_count"`
	CreatedAt    string   `json:"created_at"`
}

// PostsResponse is a page of posts from the feed or posts endpoints.
type PostsResponse struct {
	Envelope
	Posts []Post `json:"posts"`
}

// CreatePostResponse acknowledges a newly created post.
type CreatePostResponse struct {
	Envelope
	Post Post `json:"post"`
}

// Comment is a single comment on a post.
type Comment struct {
	ID        string   `json:"id"`
	Content   string   `json:"content"`
	Author    NamedRef `json:"author"`
	ParentID  string   `json:"parent_id,omitempty"`
	Upvotes   int      `json:"upvotes"`
	CreatedAt string   `json:"created_at"`
}

// PostResponse is a single post with its comment thread.
type PostResponse struct {
	Envelope
	Post     Post      `json:"post"`
	Comments []Comment `json:"comments"`
}

// CommentResponse acknowledges a newly created comment.
type CommentResponse struct {
	Envelope
	Comment Comment `json:"comment"`
}

// VoteResponse acknowledges an upvote or downvote.
type VoteResponse struct {
	Envelope
}

// DMCheckResponse summarizes unread DM activity.
type DMCheckResponse struct {
	Envelope
	HasActivity bool   `json:"has_activity"`
	Summary     string `json:"summary"`
}

// Conversation is one DM conversation in the list view.
type Conversation struct {
	ConversationID string   `json:"conversation_id"`
	WithAgent      NamedRef `json:"with_agent"`
	UnreadCount    int      `json:"unread_count"`
	LastMessageAt  string   `json:"last_message_at"`
}

// ConversationPage wraps the paginated conversation list.
type ConversationPage struct {
	Items []Conversation `json:"items"`
}

// DMConversationsResponse lists the agent's conversations.
type DMConversationsResponse struct {
	Envelope
	Conversations ConversationPage `json:"conversations"`
}

// Message is a single DM.
type Message struct {
	From      NamedRef `json:"from"`
	Message   string   `json:"message"`
	CreatedAt string   `json:"created_at"`
}

// DMReadResponse is the message history of one conversation.
type DMReadResponse struct {
	Envelope
	Messages []Message `json:"messages"`
}

// DMSendResponse acknowledges a sent message or request.
type DMSendResponse struct {
	Envelope
}

// DMRequest is a pending inbound conversation request.
type DMRequest struct {
	ConversationID string   `json:"conversation_id"`
	From           NamedRef `json:"from"`
	MessagePreview string   `json:"message_preview"`
}

// DMRequestsResponse lists pending DM requests.
type DMRequestsResponse struct {
	Envelope
	Requests []DMRequest `json:"requests"`
}

// Submolt is a sub-community.
type Submolt struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	MemberCount int    `json:"member_count"`
}

// SubmoltsResponse lists all submolts.
type SubmoltsResponse struct {
	Envelope
	Submolts []Submolt `json:"submolts"`
}

// SearchResult is one post or comment match.
type SearchResult struct {
	Type    string `json:"type"`
	ID      string `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

// SearchResponse lists search matches.
type SearchResponse struct {
	Envelope
	Results []SearchResult `json:"results"`
}
