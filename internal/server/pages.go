package server

import (
	"errors"
	"net/http"
	"strconv"

	"hopebridge/internal/seed"
	"hopebridge/pkg/types"
)

func (s *Service) handleHome(w http.ResponseWriter, r *http.Request) {
	_ = s.views.Navigate(string(types.SectionHome))

	data := &types.HomePageData{
		BasePageData:  types.BasePageData{Title: "HopeBridge"},
		FeaturedNeeds: s.ledger.FeaturedNeeds(),
		NGOs:          s.ledger.ListNGOs(),
		Stats:         seed.Stats(),
	}

	if err := s.renderTemplate(w, "page.home", data); err != nil {
		s.logger.WithError(err).Error("failed to render home page")
		s.internalServerError(w)
	}
}

func (s *Service) handleNeeds(w http.ResponseWriter, r *http.Request) {
	_ = s.views.Navigate(string(types.SectionNeeds))

	// The three filter fields are replaced together; absent params mean no
	// constraint.
	q := r.URL.Query()
	filter := types.NeedFilter{Search: q.Get("q")}
	if category, ok := types.ParseNeedCategory(q.Get("category")); ok {
		filter.Category = category
	}
	if priority, ok := types.ParseNeedPriority(q.Get("priority")); ok {
		filter.Priority = priority
	}
	s.views.SetFilter(filter)

	data := &types.NeedsPageData{
		BasePageData: types.BasePageData{Title: "Browse Needs"},
		Needs:        s.ledger.ListNeeds(filter),
		Filter:       filter,
		Categories:   types.NeedCategories(),
		Priorities:   types.NeedPriorities(),
	}

	if err := s.renderTemplate(w, "page.needs", data); err != nil {
		s.logger.WithError(err).Error("failed to render needs page")
		s.internalServerError(w)
	}
}

func (s *Service) handleNGOs(w http.ResponseWriter, r *http.Request) {
	_ = s.views.Navigate(string(types.SectionNGOs))

	data := &types.NGOsPageData{
		BasePageData: types.BasePageData{Title: "Partner NGOs"},
		NGOs:         s.ledger.ListNGOs(),
	}

	if err := s.renderTemplate(w, "page.ngos", data); err != nil {
		s.logger.WithError(err).Error("failed to render ngos page")
		s.internalServerError(w)
	}
}

func (s *Service) handleNeedDetail(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(flowParam(r, "id"), 10, 64)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	need, err := s.ledger.Need(id)
	if err != nil {
		// A missing need never opens the detail view.
		s.logger.WithField("need_id", id).Warn("need detail for unknown need")
		http.Redirect(w, r, "/needs", http.StatusSeeOther)
		return
	}

	data := &types.NeedDetailPageData{
		BasePageData: types.BasePageData{Title: need.Title},
		Need:         need,
	}

	if ngo, err := s.ledger.NGO(need.NGOID); err == nil {
		data.NGO = ngo
	}

	if err := s.renderTemplate(w, "page.need-detail", data); err != nil {
		s.logger.WithError(err).Error("failed to render need detail page")
		s.internalServerError(w)
	}
}

func (s *Service) handleDashboard(w http.ResponseWriter, r *http.Request) {
	if err := s.views.Navigate(string(types.SectionDashboard)); err != nil {
		if errors.Is(err, types.ErrUnauthenticated) {
			http.Redirect(w, r, "/", http.StatusSeeOther)
			return
		}

		s.logger.WithError(err).Error("dashboard navigation failed")
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	if tab := r.URL.Query().Get("tab"); tab != "" {
		if err := s.views.SwitchTab(tab); err != nil {
			s.notifications.Notify("Something went wrong. Please try again.", types.SeverityError)
		}
	}

	data := &types.DashboardPageData{
		BasePageData: types.BasePageData{Title: "Dashboard"},
		Identity:     s.sessions.Current(),
		ActiveTab:    s.views.Tab(),
		Tabs:         types.DashboardTabs(),
		Needs:        s.ledger.ListNeeds(types.NeedFilter{}),
		NGOs:         s.ledger.ListNGOs(),
		Categories:   types.NeedCategories(),
		Priorities:   types.NeedPriorities(),
	}

	if err := s.renderTemplate(w, "page.dashboard", data); err != nil {
		s.logger.WithError(err).Error("failed to render dashboard page")
		s.internalServerError(w)
	}
}

func (s *Service) handleAbout(w http.ResponseWriter, r *http.Request) {
	_ = s.views.Navigate(string(types.SectionAbout))

	data := &types.AboutPageData{
		BasePageData: types.BasePageData{Title: "About"},
		Stats:        seed.Stats(),
	}

	if err := s.renderTemplate(w, "page.about", data); err != nil {
		s.logger.WithError(err).Error("failed to render about page")
		s.internalServerError(w)
	}
}

func (s *Service) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}
