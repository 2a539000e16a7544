package server

import (
	"errors"
	"net/http"
	"time"

	"hopebridge/pkg/types"
)

const redirectCookieName = "hopebridge_redirect"

func (s *Service) handleGetLogin(w http.ResponseWriter, r *http.Request) {
	if s.sessions.Current() != nil {
		s.logger.Info("user is already logged in, redirecting to dashboard")
		http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
		return
	}

	data := &types.LoginPageData{
		BasePageData: types.BasePageData{Title: "Login"},
	}

	if err := s.renderTemplate(w, "page.login", data); err != nil {
		s.logger.WithError(err).Error("failed to render login page")
		s.internalServerError(w)
	}
}

func (s *Service) handlePostLogin(w http.ResponseWriter, r *http.Request) {
	email := r.FormValue("email")
	password := r.FormValue("password")

	identity, err := s.sessions.Login(email, password)
	if err != nil {
		if !errors.Is(err, types.ErrInvalidInput) {
			s.logger.WithError(err).Error("login failed")
		}

		data := &types.LoginPageData{
			BasePageData: types.BasePageData{Title: "Login"},
			Email:        email,
			Error:        "Email and password are required.",
		}

		if err := s.renderTemplate(w, "page.login", data); err != nil {
			s.logger.WithError(err).Error("failed to render login page with error")
			s.internalServerError(w)
		}
		return
	}

	if err := s.setSessionCookie(w); err != nil {
		s.logger.WithError(err).Error("failed to encode session cookie")
		s.internalServerError(w)
		return
	}

	s.notifications.Notify("Login successful!", types.SeveritySuccess)
	s.logger.WithField("user_id", identity.ID).Info("user logged in")

	// Honor a pending unauthenticated redirect, then fall back to the
	// dashboard.
	if cookie, err := r.Cookie(redirectCookieName); err == nil {
		path := cookie.Value
		s.clearRedirectCookie(w)
		http.Redirect(w, r, path, http.StatusSeeOther)
		return
	}

	http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
}

func (s *Service) handleGetRegister(w http.ResponseWriter, r *http.Request) {
	if s.sessions.Current() != nil {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	data := &types.RegisterPageData{
		BasePageData: types.BasePageData{Title: "Register"},
		Roles:        types.Roles(),
	}

	if err := s.renderTemplate(w, "page.register", data); err != nil {
		s.logger.WithError(err).Error("failed to render register page")
		s.internalServerError(w)
	}
}

func (s *Service) handlePostRegister(w http.ResponseWriter, r *http.Request) {
	name := r.FormValue("name")
	email := r.FormValue("email")
	password := r.FormValue("password")
	role := r.FormValue("role")

	identity, err := s.sessions.Register(name, email, password, role)
	if err != nil {
		data := &types.RegisterPageData{
			BasePageData: types.BasePageData{Title: "Register"},
			Name:         name,
			Email:        email,
			Role:         role,
			Roles:        types.Roles(),
			Error:        "All fields are required.",
		}

		if err := s.renderTemplate(w, "page.register", data); err != nil {
			s.logger.WithError(err).Error("failed to render register page with error")
			s.internalServerError(w)
		}
		return
	}

	if err := s.setSessionCookie(w); err != nil {
		s.logger.WithError(err).Error("failed to encode session cookie")
		s.internalServerError(w)
		return
	}

	s.notifications.Notify("Registration successful!", types.SeveritySuccess)
	s.logger.WithField("user_id", identity.ID).Info("user registered")

	http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
}

func (s *Service) handlePostLogout(w http.ResponseWriter, r *http.Request) {
	s.sessions.Logout()
	s.clearSessionCookie(w)

	// The view state follows the original flow: logout lands on home.
	_ = s.views.Navigate(string(types.SectionHome))

	s.notifications.Notify("Logged out successfully", types.SeveritySuccess)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (s *Service) setSessionCookie(w http.ResponseWriter) error {
	encoded, err := s.cookie.Encode(s.config.CookieName, s.sessions.Token())
	if err != nil {
		return err
	}

	http.SetCookie(w, &http.Cookie{
		Name:     s.config.CookieName,
		Value:    encoded,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Path:     "/",
	})

	return nil
}

func (s *Service) clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     s.config.CookieName,
		Value:    "",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Path:     "/",
		MaxAge:   -1,
	})
}

func (s *Service) setRedirectCookie(w http.ResponseWriter, path string, age time.Duration) {
	http.SetCookie(w, &http.Cookie{
		Name:     redirectCookieName,
		Value:    path,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Path:     "/",
		MaxAge:   int(age.Seconds()),
	})
}

func (s *Service) clearRedirectCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     redirectCookieName,
		Value:    "",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Path:     "/",
		MaxAge:   -1,
	})
}
