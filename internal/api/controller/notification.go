package controller

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/hirewire/hirewire-backend/internal/api/response"
	"github.com/hirewire/hirewire-backend/internal/domain"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type notificationController struct {
	NotificationUseCase domain.NotificationUC
}

func NewNotificationController(nu domain.NotificationUC) *notificationController {
	return &notificationController{
		NotificationUseCase: nu,
	}
}

type ListNotificationsRes struct {
	Notifications []domain.Notification `json:"notifications"`
	Page          int                   `json:"page"`
	PageSize      int                   `json:"pageSize"`
}

// List notifications godoc
//
// @Summary     List the acting user's notifications
// @Description Returns notifications newest first, optionally filtered to unread only.
// @Tags        notification
// @Produce     json
// @Param       unread   query bool false "Only unread notifications"
// @Param       page     query int  false "Page number, default 1"
// @Param       pageSize query int  false "Page size, default 20"
// @Success     200 {object} ListNotificationsRes
// @Router      /notification/list [get]
func (nc notificationController) ListNotifications(c *fiber.Ctx) error {
	ctx := c.Context()

	user, err := GetUserFromReq(c)
	if err != nil {
		return response.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	page, err := strconv.Atoi(c.Query("page", "1"))
	if err != nil || page < 1 {
		return response.SendError(c, fiber.StatusBadRequest, "unable to parse page number")
	}

	pageSize, err := strconv.Atoi(c.Query("pageSize", "20"))
	if err != nil || pageSize < 1 {
		return response.SendError(c, fiber.StatusBadRequest, "unable to parse page size")
	}

	unreadOnly := c.QueryBool("unread", false)

	notifications, err := nc.NotificationUseCase.ListByUser(ctx, user.UserId, unreadOnly, page, pageSize)
	if err != nil {
		return response.SendError(c, fiber.StatusInternalServerError, "unable to list notifications")
	}

	return response.SendSuccess(c, ListNotificationsRes{
		Notifications: notifications,
		Page:          page,
		PageSize:      pageSize,
	}, "")
}

type NotificationCountRes struct {
	Count int64 `json:"count"`
}

// Get unread count godoc
//
// @Summary     Count the acting user's unread notifications
// @Description The count is recomputed from the store on every call, never cached.
// @Tags        notification
// @Produce     json
// @Success     200 {object} NotificationCountRes
// @Router      /notification/count [get]
func (nc notificationController) GetUnreadCount(c *fiber.Ctx) error {
	ctx := c.Context()

	user, err := GetUserFromReq(c)
	if err != nil {
		return response.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	count, err := nc.NotificationUseCase.CountUnread(ctx, user.UserId)
	if err != nil {
		return response.SendError(c, fiber.StatusInternalServerError, "unable to count notifications")
	}

	return response.SendSuccess(c, NotificationCountRes{Count: count}, "")
}

// Mark notification read godoc
//
// @Summary     Mark one notification as read
// @Description Marks exactly the notification matching both the id and the acting user.
// @Tags        notification
// @Produce     json
// @Param       notificationId path string true "Notification ID"
// @Success     200 {object} response.CommonResponse
// @Router      /notification/read/{notificationId} [patch]
func (nc notificationController) MarkNotificationRead(c *fiber.Ctx) error {
	ctx := c.Context()

	user, err := GetUserFromReq(c)
	if err != nil {
		return response.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	notificationId, err := primitive.ObjectIDFromHex(c.Params("notificationId"))
	if err != nil {
		return response.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	if err := nc.NotificationUseCase.MarkRead(ctx, notificationId, user.UserId); err != nil {
		return response.SendError(c, statusForErr(err), err.Error())
	}

	return response.SendSuccess(c, nil, "notification marked read")
}

type MarkAllReadRes struct {
	Updated int64 `json:"updated"`
}

// Mark all notifications read godoc
//
// @Summary     Mark every notification of the acting user as read
// @Tags        notification
// @Produce     json
// @Success     200 {object} MarkAllReadRes
// @Router      /notification/read-all [patch]
func (nc notificationController) MarkAllNotificationsRead(c *fiber.Ctx) error {
	ctx := c.Context()

	user, err := GetUserFromReq(c)
	if err != nil {
		return response.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	updated, err := nc.NotificationUseCase.MarkAllRead(ctx, user.UserId)
	if err != nil {
		return response.SendError(c, fiber.StatusInternalServerError, "unable to mark notifications read")
	}

	return response.SendSuccess(c, MarkAllReadRes{Updated: updated}, "")
}

// Delete notification godoc
//
// @Summary     Delete one notification
// @Description Removes a single notification owned by the acting user.
// @Tags        notification
// @Produce     json
// @Param       notificationId path string true "Notification ID"
// @Success     200 {object} response.CommonResponse
// @Router      /notification/{notificationId} [delete]
func (nc notificationController) DeleteNotification(c *fiber.Ctx) error {
	ctx := c.Context()

	user, err := GetUserFromReq(c)
	if err != nil {
		return response.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	notificationId, err := primitive.ObjectIDFromHex(c.Params("notificationId"))
	if err != nil {
		return response.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	if err := nc.NotificationUseCase.Delete(ctx, notificationId, user.UserId); err != nil {
		return response.SendError(c, statusForErr(err), err.Error())
	}

	return response.SendSuccess(c, nil, "notification deleted successfully")
}

type ClearNotificationsRes struct {
	Deleted int64 `json:"deleted"`
}

// Clear notifications godoc
//
// @Summary     Delete every notification of the acting user
// @Tags        notification
// @Produce     json
// @Success     200 {object} ClearNotificationsRes
// @Router      /notification/clear [delete]
func (nc notificationController) ClearNotifications(c *fiber.Ctx) error {
	ctx := c.Context()

	user, err := GetUserFromReq(c)
	if err != nil {
		return response.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	deleted, err := nc.NotificationUseCase.DeleteAll(ctx, user.UserId)
	if err != nil {
		return response.SendError(c, fiber.StatusInternalServerError, "unable to clear notifications")
	}

	return response.SendSuccess(c, ClearNotificationsRes{Deleted: deleted}, "")
}
