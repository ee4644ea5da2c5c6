package dashboard

import (
	"html"
	"marquee/internal/domain/chats"
	"marquee/internal/domain/events"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/microcosm-cc/bluemonday"
)

const unknownUser = "Unknown User"

// plainText strips every tag; descriptions are authored in a rich-text
// editor but searched and shown as text.
var plainText = bluemonday.StrictPolicy()

// EventView is an event with every optional field resolved.
type EventView struct {
	ID              uuid.UUID `json:"id"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	EventDate       time.Time `json:"event_date"`
	CreatorID       uuid.UUID `json:"creator_id"`
	CreatorName     string    `json:"creator_name"`
	SeekingCreators bool      `json:"seeking_creators"`
	Status          string    `json:"status"`
	Applications    int       `json:"applications"`
}

// ChatView is a chat thread with every optional field resolved.
type ChatView struct {
	ID            uuid.UUID `json:"id"`
	EventID       uuid.UUID `json:"event_id"`
	EventTitle    string    `json:"event_title"`
	HostName      string    `json:"host_name"`
	HostEmail     string    `json:"host_email"`
	HostAvatar    string    `json:"host_avatar,omitempty"`
	CreatorName   string    `json:"creator_name"`
	CreatorEmail  string    `json:"creator_email"`
	CreatorAvatar string    `json:"creator_avatar,omitempty"`
	LastMessageAt time.Time `json:"last_message_at"`
	Unread        int       `json:"unread"`
}

// Counterpart returns the name shown for the other party of the chat.
func (c ChatView) Counterpart(hostView bool) string {
	if hostView {
		return c.CreatorName
	}
	return c.HostName
}

// AvatarResolver turns a stored avatar id into a URL. It returns "" when
// no avatar can be produced.
type AvatarResolver interface {
	AvatarURL(publicID string) string
}

func normalizeEvents(rows []events.Event) []EventView {
	out := make([]EventView, 0, len(rows))
	for _, e := range rows {
		out = append(out, EventView{
			ID:              e.ID,
			Title:           e.Title,
			Description:     stripMarkup(deref(e.Description)),
			EventDate:       e.EventDate,
			CreatorID:       e.CreatorID,
			CreatorName:     displayName(e.CreatorName, deref(e.CreatorEmail)),
			SeekingCreators: e.SeekingCreators,
			Status:          e.Status,
			Applications:    e.Applications,
		})
	}
	return out
}

func normalizeChats(rows []chats.Chat, avatars AvatarResolver) []ChatView {
	out := make([]ChatView, 0, len(rows))
	for _, c := range rows {
		hostEmail := deref(c.HostEmail)
		creatorEmail := deref(c.CreatorEmail)
		unread := 0
		if c.UnreadCount != nil {
			unread = *c.UnreadCount
		}
		out = append(out, ChatView{
			ID:            c.ID,
			EventID:       c.EventID,
			EventTitle:    deref(c.EventTitle),
			HostName:      displayName(c.HostName, hostEmail),
			HostEmail:     hostEmail,
			HostAvatar:    avatarURL(avatars, c.HostAvatarPublicID),
			CreatorName:   displayName(c.CreatorName, creatorEmail),
			CreatorEmail:  creatorEmail,
			CreatorAvatar: avatarURL(avatars, c.CreatorAvatarPublicID),
			LastMessageAt: c.LastMessageAt,
			Unread:        unread,
		})
	}
	return out
}

// displayName falls back from the profile name to the local part of the
// email, then to "Unknown User".
func displayName(name *string, email string) string {
	if name != nil {
		if n := strings.TrimSpace(*name); n != "" {
			return n
		}
	}
	if local, _, _ := strings.Cut(email, "@"); strings.TrimSpace(local) != "" {
		return strings.TrimSpace(local)
	}
	return unknownUser
}

func avatarURL(avatars AvatarResolver, publicID *string) string {
	if avatars == nil || publicID == nil || *publicID == "" {
		return ""
	}
	return avatars.AvatarURL(*publicID)
}

func stripMarkup(s string) string {
	if s == "" {
		return ""
	}
	return strings.TrimSpace(html.UnescapeString(plainText.Sanitize(s)))
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
