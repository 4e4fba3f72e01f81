package controllers

import (
	"log/slog"
	"net/http"

	"guestlist/internal/delivery/http/helpers"
	"guestlist/internal/domain"
	"guestlist/internal/phone"
)

// displayTimeLayout is the single supported date locale (ru-RU).
const displayTimeLayout = "02.01.2006 15:04"

type GuestsController struct {
	Logger   *slog.Logger
	Service  domain.RegistrationService
	Renderer domain.PageRenderer
}

func NewGuestsController(logger *slog.Logger, svc domain.RegistrationService, renderer domain.PageRenderer) *GuestsController {
	return &GuestsController{
		Logger:   logger,
		Service:  svc,
		Renderer: renderer,
	}
}

// List serves the guest listing, newest first. An unreadable ledger lists as
// empty rather than failing the page.
func (c *GuestsController) List(w http.ResponseWriter, r *http.Request) {
	entries := c.Service.List(r.Context())

	rows := make([]domain.GuestRow, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, domain.GuestRow{
			FullName:    e.FullName,
			Phone:       phone.Format(e.Phone),
			SubmittedAt: e.SubmittedAt.Local().Format(displayTimeLayout),
		})
	}

	body, err := c.Renderer.Render("guests.html", domain.GuestsPage{Guests: rows, Total: len(rows)})
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "render failed", "template", "guests.html", "err", err)
		helpers.WritePlainError(w, http.StatusInternalServerError)
		return
	}
	helpers.WriteHTML(w, http.StatusOK, body)
}
