package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"railbook/internal/service"
	"railbook/internal/session"
)

// DashboardHandler renders the train schedule listing.
type DashboardHandler struct {
	schedule service.ScheduleService
}

// NewDashboardHandler creates a new dashboard handler.
func NewDashboardHandler(schedule service.ScheduleService) *DashboardHandler {
	return &DashboardHandler{schedule: schedule}
}

// Dashboard lists all trains with their display category and the static
// route station lists.
func (h *DashboardHandler) Dashboard(c echo.Context) error {
	claims, ok := session.FromContext(c)
	if !ok {
		return c.Redirect(http.StatusSeeOther, "/")
	}

	trains, err := h.schedule.ListTrains(c.Request().Context())
	if err != nil {
		session.Flash(c, "Could not load the train schedule.")
		return c.Redirect(http.StatusSeeOther, "/")
	}

	return c.Render(http.StatusOK, "dashboard.html", echo.Map{
		"Username": claims.UserID,
		"Trains":   trains,
		"Routes":   service.RouteStations,
	})
}
