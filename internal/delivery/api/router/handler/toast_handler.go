package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"churchadmin/internal/delivery/api/response"
	deliverycontext "churchadmin/internal/delivery/context"
	domainerrors "churchadmin/internal/domain/errors"
	"churchadmin/internal/domain/service"
	"churchadmin/internal/errors"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
	"github.com/labstack/echo/v4"
)

const streamWriteTimeout = 5 * time.Second

// ShowToastInput is the body of POST /toasts.
type ShowToastInput struct {
	Message string            `json:"message" validate:"required"`
	Kind    service.ToastKind `json:"kind"`
}

// streamSnapshot is the first frame of a stream: the queue as it was when the
// client connected.
type streamSnapshot struct {
	Type   string          `json:"type"`
	Toasts []service.Toast `json:"toasts"`
}

// ToastHandler serves /toasts.
type ToastHandler struct {
	notifier service.Notifier
	logger   *slog.Logger
}

// NewToastHandler is the constructor for ToastHandler, injected by Fx.
func NewToastHandler(notifier service.Notifier, logger *slog.Logger) *ToastHandler {
	return &ToastHandler{notifier: notifier, logger: logger}
}

// List returns the queued toasts.
func (h *ToastHandler) List(c echo.Context) error {
	return response.List(c, h.notifier.List())
}

// Show queues a toast. Unknown kinds are shown as info.
func (h *ToastHandler) Show(c echo.Context) error {
	var input ShowToastInput
	if err := bindBody(c, &input); err != nil {
		return err
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	return response.Success(c, http.StatusCreated, h.notifier.Show(input.Message, input.Kind))
}

// Dismiss hides a toast before its timer.
func (h *ToastHandler) Dismiss(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("id inválido")
	}

	if !h.notifier.Dismiss(id) {
		return domainerrors.ErrNotFound.WithDetails("toast " + c.Param("id"))
	}

	return response.NoContent(c)
}

// Stream upgrades to a WebSocket and forwards lifecycle events until either
// side goes away.
func (h *ToastHandler) Stream(c echo.Context) error {
	logger := deliverycontext.GetLoggerOrDefault(c.Request().Context(), h.logger)

	// Hijacked connections keep the server's deadlines.
	rc := http.NewResponseController(c.Response())
	_ = rc.SetReadDeadline(time.Time{})
	_ = rc.SetWriteDeadline(time.Time{})

	conn, err := websocket.Accept(c.Response(), c.Request(), nil)
	if err != nil {
		// Accept has already written the failure response.
		logger.Warn("Toast stream upgrade failed", slog.Any("error", err))

		return nil
	}
	defer conn.CloseNow()

	events, cancel := h.notifier.Subscribe()
	defer cancel()

	// The client sends nothing; CloseRead handles control frames and cancels
	// ctx when the peer closes.
	ctx := conn.CloseRead(c.Request().Context())

	if err := writeFrame(ctx, conn, streamSnapshot{Type: "snapshot", Toasts: h.notifier.List()}); err != nil {
		return nil
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-events:
			if !ok {
				conn.Close(websocket.StatusGoingAway, "notifier closed")

				return nil
			}
			if err := writeFrame(ctx, conn, event); err != nil {
				logger.Debug("Toast stream closed", slog.Any("error", err))

				return nil
			}
		}
	}
}

func writeFrame(ctx context.Context, conn *websocket.Conn, v any) error {
	ctx, cancel := context.WithTimeout(ctx, streamWriteTimeout)
	defer cancel()

	return errors.WithStack(wsjson.Write(ctx, conn, v))
}
