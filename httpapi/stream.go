package httpapi

import (
	"context"
	"net/http"
	"time"
	"unicode/utf8"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

const (
	minStreamInterval = time.Millisecond
	maxStreamInterval = 10 * time.Second
	writeWait         = time.Second
	// maxCloseReason is the control frame payload limit minus the status code.
	maxCloseReason    = 123
)

// stream upgrades to a websocket and steps the solve on a ticker, writing one
// StepResponse per tick. A terminal step is followed by a normal close frame.
// The client closing the socket stops the ticker.
func (mc *MazeController) stream(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	interval := mc.stepInterval
	if raw := ctx.Query("interval"); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil || d < minStreamInterval || d > maxStreamInterval {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "interval must be a duration between 1ms and 10s"})
			return
		}
		interval = d
	}
	if _, _, err := mc.store.SolveState(id); err != nil {
		abortWithError(ctx, err)
		return
	}

	conn, err := mc.upgrader.Upgrade(ctx.Writer, ctx.Request, nil)
	if err != nil {
		mc.logError("upgrade failed for solve %s: %v", id, err)
		return
	}
	defer conn.Close()

	// The read loop only watches for the client going away.
	done, cancel := context.WithCancel(ctx.Request.Context())
	defer cancel()
	go func() {
		defer cancel()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-done.Done():
			return
		case <-ticker.C:
		}

		info, err := mc.store.Step(id)
		if err != nil {
			code := websocket.CloseInternalServerErr
			if statusFor(err) == http.StatusNotFound {
				code = websocket.ClosePolicyViolation
			}
			mc.closeWith(conn, code, err.Error())
			return
		}

		_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := conn.WriteJSON(toStepResponse(info)); err != nil {
			mc.logError("writing step of solve %s: %v", id, err)
			return
		}
		if info.Result.Terminal() {
			mc.closeWith(conn, websocket.CloseNormalClosure, info.Result.Kind.String())
			return
		}
	}
}

func (mc *MazeController) closeWith(conn *websocket.Conn, code int, reason string) {
	msg := websocket.FormatCloseMessage(code, closeReason(reason))
	if err := conn.WriteControl(websocket.CloseMessage, msg, time.Now().Add(writeWait)); err != nil {
		mc.logError("closing stream: %v", err)
	}
}

// closeReason truncates reason to maxCloseReason bytes on a rune boundary.
func closeReason(reason string) string {
	if len(reason) <= maxCloseReason {
		return reason
	}
	cut := maxCloseReason
	for cut > 0 && !utf8.RuneStart(reason[cut]) {
		cut--
	}
	return reason[:cut]
}
