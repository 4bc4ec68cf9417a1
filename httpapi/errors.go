package httpapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/katalvlaran/lvmaze/grid"
	"github.com/katalvlaran/lvmaze/maze"
	"github.com/katalvlaran/lvmaze/search"
	"github.com/katalvlaran/lvmaze/session"
)

// badRequest lists the domain errors caused by client input.
var badRequest = []error{
	maze.ErrTooSmall,
	maze.ErrUnknownTopology,
	grid.ErrUnknownTopology,
	search.ErrUnknownAlgorithm,
	search.ErrOptionViolation,
	session.ErrTooLarge,
	session.ErrBadParams,
}

// statusFor maps a domain error to an HTTP status.
func statusFor(err error) int {
	if errors.Is(err, session.ErrNotFound) {
		return http.StatusNotFound
	}
	for _, target := range badRequest {
		if errors.Is(err, target) {
			return http.StatusBadRequest
		}
	}
	return http.StatusInternalServerError
}

// abortWithError writes {"error": msg} with the mapped status.
func abortWithError(ctx *gin.Context, err error) {
	ctx.JSON(statusFor(err), gin.H{"error": err.Error()})
}
