package web

import (
	"encoding/json"
	"net/http"

	"newsletter-service/internal/domain"
	"newsletter-service/internal/usecase"
)

// statusFor collapses the error taxonomy to HTTP codes. The dispatch vs
// persistence distinction is deliberately invisible to clients; it stays on
// the error kind for logs and tests.
func statusFor(err error) int {
	switch domain.KindOf(err) {
	case domain.KindValidation:
		return http.StatusBadRequest
	case domain.KindUnauthorized:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// Handler for new subscription form posts.
func subscribeHandler(subUC usecase.SubscriptionUseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Invalid form body", http.StatusBadRequest)
			return
		}

		_, err := subUC.Subscribe(r.Context(), r.PostFormValue("email"), r.PostFormValue("name"))
		if err != nil {
			http.Error(w, err.Error(), statusFor(err))
			return
		}
		w.WriteHeader(http.StatusOK)
	}
}

// Handler for confirmation-link clicks.
func confirmHandler(confUC usecase.ConfirmationUseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token := r.URL.Query().Get("subscription_token")

		if err := confUC.Confirm(r.Context(), token); err != nil {
			http.Error(w, err.Error(), statusFor(err))
			return
		}
		w.WriteHeader(http.StatusOK)
	}
}

// The expected JSON request body for publishing a newsletter issue.
type publishRequest struct {
	Title   string `json:"title"`
	Content struct {
		HTML string `json:"html"`
		Text string `json:"text"`
	} `json:"content"`
}

// Handler for publishing a newsletter issue to all confirmed subscribers.
func publishHandler(newsUC usecase.NewsletterUseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req publishRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Invalid request body", http.StatusBadRequest)
			return
		}

		sent, err := newsUC.Publish(r.Context(), req.Title, req.Content.HTML, req.Content.Text)
		if err != nil {
			http.Error(w, err.Error(), statusFor(err))
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(map[string]int{"recipients": sent})
	}
}
