package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"guestlist/internal/delivery/http/helpers"
	"guestlist/internal/domain"
	"guestlist/internal/phone"
)

// Inline form messages, keyed by field name in domain.RegisterPage.Errors.
const (
	msgNameRequired = "Введите ваше имя"
	msgPhoneInvalid = "Укажите корректный номер телефона"
	msgSubmitFailed = "Не удалось сохранить запись. Попробуйте ещё раз."
)

type RegisterController struct {
	Logger   *slog.Logger
	Service  domain.RegistrationService
	Renderer domain.PageRenderer
}

func NewRegisterController(logger *slog.Logger, svc domain.RegistrationService, renderer domain.PageRenderer) *RegisterController {
	return &RegisterController{
		Logger:   logger,
		Service:  svc,
		Renderer: renderer,
	}
}

// ShowForm serves the registration form.
func (c *RegisterController) ShowForm(w http.ResponseWriter, r *http.Request) {
	c.renderForm(w, r, http.StatusOK, domain.RegisterPage{})
}

// Submit handles a form submission. Valid input is appended to the ledger and
// answered with a redirect to the listing (post/redirect/get); invalid input
// re-renders the form with inline messages and leaves the ledger untouched.
func (c *RegisterController) Submit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		helpers.WritePlainError(w, http.StatusBadRequest)
		return
	}

	in := domain.SubmitInput{
		FullName: r.PostFormValue("full_name"),
		Phone:    r.PostFormValue("phone"),
	}

	if _, err := c.Service.Submit(r.Context(), in); err != nil {
		page := domain.RegisterPage{
			FullName: strings.TrimSpace(in.FullName),
			Phone:    phone.Format(in.Phone),
			Errors:   map[string]string{},
		}
		switch {
		case errors.Is(err, domain.ErrNameRequired):
			page.Errors["full_name"] = msgNameRequired
		case errors.Is(err, domain.ErrPhoneInvalid):
			page.Errors["phone"] = msgPhoneInvalid
		default:
			c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
			c.renderError(w, r)
			return
		}
		c.renderForm(w, r, http.StatusBadRequest, page)
		return
	}

	http.Redirect(w, r, "/guests", http.StatusSeeOther)
}

func (c *RegisterController) renderForm(w http.ResponseWriter, r *http.Request, statusCode int, page domain.RegisterPage) {
	body, err := c.Renderer.Render("register.html", page)
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "render failed", "template", "register.html", "err", err)
		helpers.WritePlainError(w, http.StatusInternalServerError)
		return
	}
	helpers.WriteHTML(w, statusCode, body)
}

func (c *RegisterController) renderError(w http.ResponseWriter, r *http.Request) {
	body, err := c.Renderer.Render("error.html", domain.ErrorPage{Message: msgSubmitFailed})
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "render failed", "template", "error.html", "err", err)
		helpers.WritePlainError(w, http.StatusInternalServerError)
		return
	}
	helpers.WriteHTML(w, http.StatusInternalServerError, body)
}
