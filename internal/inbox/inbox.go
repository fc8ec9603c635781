// Package inbox computes which notifications a viewer sees and which of them are unread.
package inbox

import (
	"sort"
	"time"

	"apt-be-svc/internal/models"
)

// Roles a viewer can have
const (
	RoleAdmin  = "admin"
	RoleTenant = "tenant"
)

// Viewer is whoever is looking at the notification list.
type Viewer struct {
	ID     string `json:"id"`
	Role   string `json:"role"`
	RoomID string `json:"room_id,omitempty"`
}

// IsAdmin reports whether the viewer has the admin role.
func (v Viewer) IsAdmin() bool {
	return v.Role == RoleAdmin
}

// Visible reports whether n is addressed to v. Admins see everything except
// parcel notices; tenants see what is scoped to their own room.
func Visible(v Viewer, n models.Notification) bool {
	if v.IsAdmin() {
		return n.Type != models.NotificationParcel
	}
	if v.Role != RoleTenant || v.RoomID == "" || n.RoomID == nil {
		return false
	}
	return *n.RoomID == v.RoomID
}

// Unread reports whether v has not read n yet. The legacy read flag counts as read for everyone.
func Unread(v Viewer, n models.Notification) bool {
	if n.Read != nil && *n.Read {
		return false
	}
	return !FromSlice(n.ReadBy).Contains(v.ID)
}

// Item is one notification as shown to a viewer.
type Item struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	RoomID    *string   `json:"room_id,omitempty"`
	Unread    bool      `json:"unread"`
	CreatedAt time.Time `json:"created_at"`
}

// View is the viewer's inbox, newest first.
type View struct {
	Items       []Item `json:"items"`
	UnreadCount int    `json:"unread_count"`
}

// Build derives the viewer's inbox from the full notification snapshot. The
// unread count is recomputed here every time and never stored.
func Build(v Viewer, notifications []models.Notification) View {
	view := View{Items: make([]Item, 0)}
	for _, n := range notifications {
		if !Visible(v, n) {
			continue
		}
		unread := Unread(v, n)
		if unread {
			view.UnreadCount++
		}
		view.Items = append(view.Items, Item{
			ID:        n.ID,
			Type:      n.Type,
			Title:     n.Title,
			Message:   n.Message,
			RoomID:    n.RoomID,
			Unread:    unread,
			CreatedAt: n.CreatedAt,
		})
	}

	sort.SliceStable(view.Items, func(i, j int) bool {
		if !view.Items[i].CreatedAt.Equal(view.Items[j].CreatedAt) {
			return view.Items[i].CreatedAt.After(view.Items[j].CreatedAt)
		}
		return view.Items[i].ID > view.Items[j].ID
	})
	return view
}

// UnreadIDs lists the visible notifications v has not read.
func UnreadIDs(v Viewer, notifications []models.Notification) []string {
	var ids []string
	for _, n := range notifications {
		if Visible(v, n) && Unread(v, n) {
			ids = append(ids, n.ID)
		}
	}
	return ids
}
