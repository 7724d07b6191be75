package handler

import (
	"fmt"
	"net/http"
	"net/url"
	"sort"

	"github.com/labstack/echo/v4"

	"railbook/internal/errors"
	"railbook/internal/service"
	"railbook/internal/session"
)

// BookingHandler drives the seat map, confirm, and finalize pages.
type BookingHandler struct {
	booking  service.BookingService
	schedule service.ScheduleService
	sessions *session.Manager
}

// NewBookingHandler creates a new booking handler.
func NewBookingHandler(booking service.BookingService, schedule service.ScheduleService, sessions *session.Manager) *BookingHandler {
	return &BookingHandler{booking: booking, schedule: schedule, sessions: sessions}
}

// SeatForm carries the seat chosen on the seat map or confirm page.
type SeatForm struct {
	SeatID string `form:"seat_id" validate:"required,max=8"`
}

// seatView is one seat map entry for the template.
type seatView struct {
	SeatID     string
	ReservedBy string
	Mine       bool
}

// SeatMap renders the seat map for a train and records the selection in
// the session, so /confirm and /book know the chosen train.
func (h *BookingHandler) SeatMap(c echo.Context) error {
	claims, ok := session.FromContext(c)
	if !ok {
		return c.Redirect(http.StatusSeeOther, "/")
	}

	trainID := c.Param("id")
	if trainID == "" {
		session.Flash(c, "No train selected.")
		return c.Redirect(http.StatusSeeOther, "/dashboard")
	}

	status, err := h.booking.SeatMap(c.Request().Context(), trainID)
	if err != nil {
		session.Flash(c, "Could not load the seat map.")
		return c.Redirect(http.StatusSeeOther, "/dashboard")
	}

	if err := h.sessions.Issue(c, claims.UserID, trainID); err != nil {
		session.Flash(c, "Could not update your session.")
		return c.Redirect(http.StatusSeeOther, "/dashboard")
	}

	seats := make([]seatView, 0, len(status))
	for seatID, reservedBy := range status {
		seats = append(seats, seatView{
			SeatID:     seatID,
			ReservedBy: reservedBy,
			Mine:       reservedBy != "" && reservedBy == claims.UserID,
		})
	}
	sort.Slice(seats, func(i, j int) bool { return seats[i].SeatID < seats[j].SeatID })

	return c.Render(http.StatusOK, "seats.html", echo.Map{
		"Username": claims.UserID,
		"TrainID":  trainID,
		"Seats":    seats,
		"Fares":    service.StandardFares(),
	})
}

// Confirm probes the chosen seat and shows the itinerary before booking.
// The probe is advisory; correctness rests on the atomic update in Book.
func (h *BookingHandler) Confirm(c echo.Context) error {
	claims, ok := session.FromContext(c)
	if !ok || claims.TrainID == "" {
		session.Flash(c, "Your session has no selected train.")
		return c.Redirect(http.StatusSeeOther, "/dashboard")
	}

	var form SeatForm
	if err := c.Bind(&form); err != nil {
		session.Flash(c, "No seat selected.")
		return c.Redirect(http.StatusSeeOther, seatMapPath(claims.TrainID))
	}
	if err := c.Validate(&form); err != nil {
		session.Flash(c, "No seat selected.")
		return c.Redirect(http.StatusSeeOther, seatMapPath(claims.TrainID))
	}

	train, err := h.schedule.GetTrain(c.Request().Context(), claims.TrainID)
	if err != nil {
		if err == errors.ErrTrainNotFound {
			session.Flash(c, "The selected train could not be found.")
		} else {
			session.Flash(c, "Could not load the train details.")
		}
		return c.Redirect(http.StatusSeeOther, "/dashboard")
	}

	if err := h.booking.CheckAvailable(c.Request().Context(), claims.TrainID, form.SeatID); err != nil {
		switch err {
		case errors.ErrSeatTaken:
			session.Flash(c, "That seat is already reserved.")
		case errors.ErrSeatNotFound:
			session.Flash(c, "That seat does not exist on this train.")
		default:
			session.Flash(c, "Could not check the seat, try again.")
		}
		return c.Redirect(http.StatusSeeOther, seatMapPath(claims.TrainID))
	}

	return c.Render(http.StatusOK, "confirm.html", echo.Map{
		"Username": claims.UserID,
		"Train":    train,
		"SeatID":   form.SeatID,
	})
}

// Book finalizes the reservation with a single conditional update.
// An already-reserved seat reports a duplicate and is never overwritten.
func (h *BookingHandler) Book(c echo.Context) error {
	claims, ok := session.FromContext(c)
	if !ok || claims.TrainID == "" {
		session.Flash(c, "Your booking details are incomplete.")
		return c.Redirect(http.StatusSeeOther, "/dashboard")
	}

	var form SeatForm
	if err := c.Bind(&form); err != nil {
		session.Flash(c, "Your booking details are incomplete.")
		return c.Redirect(http.StatusSeeOther, "/dashboard")
	}
	if err := c.Validate(&form); err != nil {
		session.Flash(c, "Your booking details are incomplete.")
		return c.Redirect(http.StatusSeeOther, "/dashboard")
	}

	reference, err := h.booking.Finalize(c.Request().Context(), claims.TrainID, form.SeatID, claims.UserID)
	if err != nil {
		switch err {
		case errors.ErrSeatTaken:
			session.Flash(c, "That seat was just reserved by someone else.")
			return c.Redirect(http.StatusSeeOther, seatMapPath(claims.TrainID))
		case errors.ErrSeatNotFound:
			session.Flash(c, "That seat does not exist on this train.")
			return c.Redirect(http.StatusSeeOther, "/dashboard")
		default:
			session.Flash(c, "The booking could not be processed.")
			return c.Redirect(http.StatusSeeOther, "/dashboard")
		}
	}

	session.Flash(c, fmt.Sprintf("Seat %s on %s is booked. Reference: %s", form.SeatID, claims.TrainID, reference))
	return c.Redirect(http.StatusSeeOther, "/dashboard")
}

func seatMapPath(trainID string) string {
	return "/train/" + url.PathEscape(trainID) + "/seats"
}
