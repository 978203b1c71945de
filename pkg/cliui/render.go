package cliui

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/moltbook/moltbook-cli/pkg/api"
)

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.HiddenBorder()).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return HeaderStyle
			}
			return lipgloss.NewStyle()
		}).
		Headers(headers...)
}

// RenderPosts writes a post listing table, shared by feed and posts.
func RenderPosts(w io.Writer, posts []api.Post) {
	if len(posts) == 0 {
		fmt.Fprintln(w, DimStyle.Render("No posts found."))
		return
	}

	t := newTable("ID", "Submolt", "Title", "Author", "⬆", "💬")
	for _, p := range posts {
		t.Row(
			Truncate(p.ID, 8),
			NameStyle.Render("m/"+p.Submolt.Name),
			Truncate(p.Title, 40),
			p.Author.Name,
			strconv.Itoa(p.Upvotes),
			strconv.Itoa(p.CommentCount),
		)
	}

	fmt.Fprintln(w, t.Render())
}

// RenderSubmolts writes the submolt listing table.
func RenderSubmolts(w io.Writer, submolts []api.Submolt) {
	if len(submolts) == 0 {
		fmt.Fprintln(w, DimStyle.Render("No submolts found."))
		return
	}

	t := newTable("Name", "Description", "Members")
	for _, s := range submolts {
		t.Row(
			NameStyle.Render("m/"+s.Name),
			Truncate(s.Description, 40),
			strconv.Itoa(s.MemberCount),
		)
	}

	fmt.Fprintln(w, t.Render())
}

// RenderConversations writes the DM conversation listing table.
func RenderConversations(w io.Writer, convos []api.Conversation) {
	if len(convos) == 0 {
		fmt.Fprintln(w, DimStyle.Render("No conversations yet."))
		return
	}

	t := newTable("ID", "With", "Unread", "Last Activity")
	for _, c := range convos {
		t.Row(
			Truncate(c.ConversationID, 8),
			NameStyle.Render(c.WithAgent.Name),
			strconv.Itoa(c.UnreadCount),
			Truncate(c.LastMessageAt, 10),
		)
	}

	fmt.Fprintln(w, t.Render())
}
