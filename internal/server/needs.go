package server

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"hopebridge/internal/metrics"
	"hopebridge/pkg/types"

	"github.com/alexedwards/flow"
)

func flowParam(r *http.Request, name string) string {
	return flow.Param(r.Context(), name)
}

// handleDonate applies a simulated donation. The authentication check sits
// here, not in the ledger.
func (s *Service) handleDonate(w http.ResponseWriter, r *http.Request) {
	if s.sessions.Current() == nil {
		s.notifications.Notify("Please login to donate", types.SeverityError)
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	id, err := strconv.ParseInt(flowParam(r, "id"), 10, 64)
	if err != nil {
		http.Redirect(w, r, "/needs", http.StatusSeeOther)
		return
	}

	if err := r.ParseForm(); err != nil {
		s.notifications.Notify("Donation failed. Please try again.", types.SeverityError)
		http.Redirect(w, r, "/needs", http.StatusSeeOther)
		return
	}

	amount := 5
	if raw := r.FormValue("amount"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			s.notifications.Notify("Donation failed. Please try again.", types.SeverityError)
			http.Redirect(w, r, fmt.Sprintf("/need/%d", id), http.StatusSeeOther)
			return
		}
		amount = parsed
	}

	applied, err := s.ledger.Donate(id, amount)
	if err != nil {
		// Unknown need: log and return without mutating anything.
		s.logger.WithError(err).WithField("need_id", id).Warn("donation failed")
		http.Redirect(w, r, "/needs", http.StatusSeeOther)
		return
	}

	if applied > 0 {
		metrics.DonationsTotal.Inc()
		metrics.DonatedItemsTotal.Add(float64(applied))
	}

	s.notifications.Notify(fmt.Sprintf("Thank you for your donation! %d items contributed.", applied), types.SeveritySuccess)
	http.Redirect(w, r, fmt.Sprintf("/need/%d", id), http.StatusSeeOther)
}

func (s *Service) handlePostNeed(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		s.notifications.Notify("Posting failed. Please try again.", types.SeverityError)
		http.Redirect(w, r, "/dashboard?tab=postneed", http.StatusSeeOther)
		return
	}

	var input types.PostNeedInput
	if err := decoder.Decode(&input, r.PostForm); err != nil {
		s.logger.WithError(err).Error("failed to decode post need form")
		s.notifications.Notify("Posting failed. Please try again.", types.SeverityError)
		http.Redirect(w, r, "/dashboard?tab=postneed", http.StatusSeeOther)
		return
	}

	need, err := s.ledger.PostNeed(input)
	if err != nil {
		if errors.Is(err, types.ErrInvalidInput) {
			s.notifications.Notify("Please fill in all required fields.", types.SeverityError)
		} else {
			s.logger.WithError(err).Error("failed to post need")
			s.notifications.Notify("Posting failed. Please try again.", types.SeverityError)
		}

		http.Redirect(w, r, "/dashboard?tab=postneed", http.StatusSeeOther)
		return
	}

	metrics.NeedsPostedTotal.Inc()

	s.notifications.Notify("Need posted successfully!", types.SeveritySuccess)
	http.Redirect(w, r, fmt.Sprintf("/need/%d", need.ID), http.StatusSeeOther)
}
