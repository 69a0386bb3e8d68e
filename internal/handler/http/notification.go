package http

import (
	"net/http"

	"github.com/clockwise-hr/timetrack-backend-go/internal/domain/notification"
	"github.com/clockwise-hr/timetrack-backend-go/internal/handler/http/response"
)

type NotificationHandler interface {
	List(w http.ResponseWriter, r *http.Request)
}

type notificationHandlerImpl struct {
	notificationService notification.Service
}

func NewNotificationHandler(notificationService notification.Service) NotificationHandler {
	return &notificationHandlerImpl{
		notificationService: notificationService,
	}
}

// List implements NotificationHandler. Read-only audit view over the
// notification log.
func (h *notificationHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	page, limit := pagination(r)
	filter := notification.ListFilter{
		RecipientID: queryString(r, "recipient_id"),
		Type:        queryString(r, "type"),
		Page:        page,
		Limit:       limit,
	}

	result, err := h.notificationService.List(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, result.Entries, &response.Meta{
		Page:       result.Page,
		Limit:      result.Limit,
		TotalItems: result.TotalCount,
	})
}
