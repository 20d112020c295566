// internal/api/messages.go
//
// Admin view over inbound contact messages: list with unread count, toggle
// or set the read flag, delete by ID.  Deletion takes the ID from the query
// string so the admin UI can issue it as a plain DELETE without a body.

package api

import (
	"net/http"

	"github.com/skjuv/portfolio/internal/portfolio"
)

type messagesResponse struct {
	Messages    []portfolio.Message `json:"messages"`
	UnreadCount int                 `json:"unreadCount"`
}

func (h *Handlers) GetMessages(w http.ResponseWriter, r *http.Request) {
	data, err := h.store.Read(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "reading portfolio data failed")
		return
	}

	msgs := data.Messages
	if msgs == nil {
		msgs = []portfolio.Message{}
	}
	unread := 0
	for _, m := range msgs {
		if !m.Read {
			unread++
		}
	}
	writeJSON(w, http.StatusOK, messagesResponse{Messages: msgs, UnreadCount: unread})
}

type putMessageRequest struct {
	ID   string `json:"id"`
	Read *bool  `json:"read"` // nil toggles the current value
}

func (h *Handlers) PutMessage(w http.ResponseWriter, r *http.Request) {
	var req putMessageRequest
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if req.ID == "" {
		writeError(w, http.StatusBadRequest, "id required")
		return
	}

	found := false
	_, err := h.store.Update(r.Context(), func(d *portfolio.Data) *portfolio.Data {
		for i := range d.Messages {
			if d.Messages[i].ID != req.ID {
				continue
			}
			if req.Read != nil {
				d.Messages[i].Read = *req.Read
			} else {
				d.Messages[i].Read = !d.Messages[i].Read
			}
			found = true
		}
		return d
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, "saving message failed")
		return
	}
	if !found {
		writeError(w, http.StatusNotFound, "message not found")
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

func (h *Handlers) DeleteMessage(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "id required")
		return
	}

	found := false
	_, err := h.store.Update(r.Context(), func(d *portfolio.Data) *portfolio.Data {
		kept := d.Messages[:0:0]
		for _, m := range d.Messages {
			if m.ID == id {
				found = true
				continue
			}
			kept = append(kept, m)
		}
		d.Messages = kept
		return d
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, "deleting message failed")
		return
	}
	if !found {
		writeError(w, http.StatusNotFound, "message not found")
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}
