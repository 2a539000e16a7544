package server

import (
	"net/http"

	"hopebridge/pkg/types"
)

func (s *Service) renderTemplate(w http.ResponseWriter, templateName string, data any) error {
	identity := s.sessions.Current()

	if setter, ok := data.(types.NavbarDataSetter); ok {
		navbar := types.NavbarData{ActiveSection: s.views.Section()}
		if identity != nil {
			navbar.IsAuthenticated = true
			navbar.UserName = identity.Name
			navbar.UserRole = identity.Role
		}
		setter.SetNavbarData(navbar)
	}

	if setter, ok := data.(types.NoticeSetter); ok {
		setter.SetNotification(s.notifications.Current())
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	return s.templates.ExecuteTemplate(w, templateName, data)
}

func (s *Service) internalServerError(w http.ResponseWriter) {
	http.Error(w, "internal server error", http.StatusInternalServerError)
}
