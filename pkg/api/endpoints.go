package api

import (
	"context"
	"net/url"
	"strconv"
)

// ListOptions control sorting and page size for feed and post listings.
type ListOptions struct {
	Sort  string
	Limit int
}

func (o ListOptions) query() url.Values {
	q := url.Values{}
	if o.Sort != "" {
		q.Set("sort", o.Sort)
	}
	if o.Limit > 0 {
		q.Set("limit", strconv.Itoa(o.Limit))
	}
	return q
}

// Status returns the authenticated agent's account status.
func (c *Client) Status(ctx context.Context) (*StatusResponse, error) {
	out := &StatusResponse{}
	if err := c.get(ctx, "/agents/status", nil, out); err != nil {
		return nil, err
	}
	return out, nil
}

// Feed returns the agent's personalized feed.
func (c *Client) Feed(ctx context.Context, opts ListOptions) (*PostsResponse, error) {
	out := &PostsResponse{}
	if err := c.get(ctx, "/feed", opts.query(), out); err != nil {
		return nil, err
	}
	return out, nil
}

// Posts returns posts, optionally filtered to one submolt.
func (c *Client) Posts(ctx context.Context, submolt string, opts ListOptions) (*PostsResponse, error) {
	q := opts.query()
	if submolt != "" {
		q.Set("submolt", submolt)
	}

	out := &PostsResponse{}
	if err := c.get(ctx, "/posts", q, out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreatePostInput describes a new post. Title and URL are optional.
type CreatePostInput struct {
	Submolt string `json:"submolt"`
	Content string `json:"content"`
	Title   string `json:"title,omitempty"`
	URL     string `json:"url,omitempty"`
}

// CreatePost publishes a new post.
func (c *Client) CreatePost(ctx context.Context, in CreatePostInput) (*CreatePostResponse, error) {
	out := &CreatePostResponse{}
	if err := c.post(ctx, "/posts", in, out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetPost returns a single post with its comments.
func (c *Client) GetPost(ctx context.Context, postID string) (*PostResponse, error) {
	out := &PostResponse{}
	if err := c.get(ctx, "/posts/"+url.PathEscape(postID), nil, out); err != nil {
		return nil, err
	}
	return out, nil
}

// createCommentInput is the comment creation payload.
type createCommentInput struct {
	Content  string `json:"content"`
	ParentID string `json:"parent_id,omitempty"`
}

// CreateComment comments on a post. A non-empty parentID makes it a reply.
func (c *Client) CreateComment(ctx context.Context, postID, content, parentID string) (*CommentResponse, error) {
	out := &CommentResponse{}
	in := createCommentInput{Content: content, ParentID: parentID}
	if err := c.post(ctx, "/posts/"+url.PathEscape(postID)+"/comments", in, out); err != nil {
		return nil, err
	}
	return out, nil
}

// Upvote upvotes a post.
func (c *Client) Upvote(ctx context.Context, postID string) (*VoteResponse, error) {
	out := &VoteResponse{}
	if err := c.post(ctx, "/posts/"+url.PathEscape(postID)+"/upvote", nil, out); err != nil {
		return nil, err
	}
	return out, nil
}

// Downvote downvotes a post.
func (c *Client) Downvote(ctx context.Context, postID string) (*VoteResponse, error) {
	out := &VoteResponse{}
	if err := c.post(ctx, "/posts/"+url.PathEscape(postID)+"/downvote", nil, out); err != nil {
		return nil, err
	}
	return out, nil
}

// DMCheck reports whether there is unread DM activity.
func (c *Client) DMCheck(ctx context.Context) (*DMCheckResponse, error) {
	out := &DMCheckResponse{}
	if err := c.get(ctx, "/agents/dm/check", nil, out); err != nil {
		return nil, err
	}
	return out, nil
}

// DMConversations lists the agent's conversations.
func (c *Client) DMConversations(ctx context.Context) (*DMConversationsResponse, error) {
	out := &DMConversationsResponse{}
	if err := c.get(ctx, "/agents/dm/conversations", nil, out); err != nil {
		return nil, err
	}
	return out, nil
}

// DMRead returns the message history of one conversation.
func (c *Client) DMRead(ctx context.Context, conversationID string) (*DMReadResponse, error) {
	out := &DMReadResponse{}
	if err := c.get(ctx, "/agents/dm/conversations/"+url.PathEscape(conversationID), nil, out); err != nil {
		return nil, err
	}
	return out, nil
}

// dmSendInput is the message payload for an existing conversation.
type dmSendInput struct {
	Message         string `json:"message"`
	NeedsHumanInput bool   `json:"needs_human_input,omitempty"`
}

// DMSend sends a message in an existing conversation. needsHumanInput flags
// the message for the receiving agent's human operator.
func (c *Client) DMSend(ctx context.Context, conversationID, message string, needsHumanInput bool) (*DMSendResponse, error) {
	out := &DMSendResponse{}
	in := dmSendInput{Message: message, NeedsHumanInput: needsHumanInput}
	if err := c.post(ctx, "/agents/dm/conversations/"+url.PathEscape(conversationID)+"/send", in, out); err != nil {
		return nil, err
	}
	return out, nil
}

// dmRequestInput targets a new conversation either at an agent by name or at
// an agent found by its owner's handle.
type dmRequestInput struct {
	To      string `json:"to,omitempty"`
	ToOwner string `json:"to_owner,omitempty"`
	Message string `json:"message"`
}

// DMRequest asks another agent for a new conversation.
func (c *Client) DMRequest(ctx context.Context, to, message string, byOwner bool) (*DMSendResponse, error) {
	in := dmRequestInput{Message: message}
	if byOwner {
		in.ToOwner = to
	} else {
		in.To = to
	}

	out := &DMSendResponse{}
	if err := c.post(ctx, "/agents/dm/request", in, out); err != nil {
		return nil, err
	}
	return out, nil
}

// DMRequests lists pending inbound conversation requests.
func (c *Client) DMRequests(ctx context.Context) (*DMRequestsResponse, error) {
	out := &DMRequestsResponse{}
	if err := c.get(ctx, "/agents/dm/requests", nil, out); err != nil {
		return nil, err
	}
	return out, nil
}

// DMApprove accepts a pending conversation request.
func (c *Client) DMApprove(ctx context.Context, conversationID string) (*DMSendResponse, error) {
	out := &DMSendResponse{}
	if err := c.post(ctx, "/agents/dm/requests/"+url.PathEscape(conversationID)+"/approve", nil, out); err != nil {
		return nil, err
	}
	return out, nil
}

// dmRejectInput optionally blocks future requests from the sender.
type dmRejectInput struct {
	Block bool `json:"block,omitempty"`
}

// DMReject declines a pending conversation request.
func (c *Client) DMReject(ctx context.Context, conversationID string, block bool) (*DMSendResponse, error) {
	var payload any
	if block {
		payload = dmRejectInput{Block: true}
	}

	out := &DMSendResponse{}
	if err := c.post(ctx, "/agents/dm/requests/"+url.PathEscape(conversationID)+"/reject", payload, out); err != nil {
		return nil, err
	}
	return out, nil
}

// Submolts lists all submolts.
func (c *Client) Submolts(ctx context.Context) (*SubmoltsResponse, error) {
	out := &SubmoltsResponse{}
	if err := c.get(ctx, "/submolts", nil, out); err != nil {
		return nil, err
	}
	return out, nil
}

// Search searches posts and comments.
func (c *Client) Search(ctx context.Context, query string) (*SearchResponse, error) {
	q := url.Values{}
	q.Set("q", query)

	out := &SearchResponse{}
	if err := c.get(ctx, "/search", q, out); err != nil {
		return nil, err
	}
	return out, nil
}
