package rest

import "net/http"

// Handlers groups everything the router mounts.
type Handlers struct {
	Health       *HealthHandler
	Auth         *AuthHandler
	Chat         *ChatHandler
	Contexts     *ContextHandler
	Techniques   *TechniqueHandler
	Exercises    *ExerciseHandler
	Reminders    *ReminderHandler
	Subscription *SubscriptionHandler
	Webhook      *WebhookHandler
	Admin        *AdminHandler
}

// NewRouter mounts all REST routes on a fresh ServeMux.
func NewRouter(h Handlers) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /live", h.Health.Live)
	mux.HandleFunc("GET /ready", h.Health.Ready)
	mux.HandleFunc("GET /health", h.Health.Health)

	mux.HandleFunc("POST /api/v1/auth/register", h.Auth.Register)
	mux.HandleFunc("POST /api/v1/auth/login", h.Auth.Login)
	mux.HandleFunc("POST /api/v1/auth/refresh", h.Auth.Refresh)
	mux.HandleFunc("POST /api/v1/auth/logout", h.Auth.Logout)
	mux.HandleFunc("GET /api/v1/auth/verify-email", h.Auth.VerifyEmail)
	mux.HandleFunc("POST /api/v1/auth/resend-verification", h.Auth.ResendVerification)
	mux.HandleFunc("GET /api/v1/me", h.Auth.Me)
	mux.HandleFunc("PATCH /api/v1/me", h.Auth.UpdateProfile)
	mux.HandleFunc("DELETE /api/v1/me", h.Auth.DeleteAccount)

	mux.HandleFunc("POST /api/v1/chat/messages", h.Chat.SendMessage)

	mux.HandleFunc("POST /api/v1/contexts", h.Contexts.Create)
	mux.HandleFunc("GET /api/v1/contexts", h.Contexts.List)
	mux.HandleFunc("GET /api/v1/contexts/{id}", h.Contexts.Get)
	mux.HandleFunc("PATCH /api/v1/contexts/{id}", h.Contexts.Rename)
	mux.HandleFunc("DELETE /api/v1/contexts/{id}", h.Contexts.Delete)
	mux.HandleFunc("POST /api/v1/contexts/{id}/summarize", h.Contexts.Summarize)
	mux.HandleFunc("GET /api/v1/contexts/{id}/messages", h.Chat.History)

	mux.HandleFunc("GET /api/v1/techniques", h.Techniques.List)
	mux.HandleFunc("GET /api/v1/techniques/stats", h.Techniques.SessionStats)
	mux.HandleFunc("POST /api/v1/techniques/analyze", h.Techniques.Analyze)
	mux.HandleFunc("GET /api/v1/techniques/belief-change/steps", h.Techniques.BeliefSteps)
	mux.HandleFunc("POST /api/v1/techniques/belief-change", h.Techniques.BeliefChange)
	mux.HandleFunc("GET /api/v1/techniques/{id}", h.Techniques.Get)
	mux.HandleFunc("POST /api/v1/techniques/{id}/rate", h.Techniques.Rate)

	mux.HandleFunc("GET /api/v1/exercises", h.Exercises.List)
	mux.HandleFunc("GET /api/v1/exercises/{id}", h.Exercises.Get)
	mux.HandleFunc("POST /api/v1/exercises/{id}/start", h.Exercises.Start)
	mux.HandleFunc("POST /api/v1/exercises/{id}/advance", h.Exercises.Advance)
	mux.HandleFunc("POST /api/v1/exercises/{id}/complete", h.Exercises.Complete)
	mux.HandleFunc("GET /api/v1/journeys/{technique}", h.Exercises.Journey)

	mux.HandleFunc("GET /api/v1/reminders", h.Reminders.List)
	mux.HandleFunc("POST /api/v1/reminders", h.Reminders.Create)
	mux.HandleFunc("PATCH /api/v1/reminders/{id}", h.Reminders.Update)
	mux.HandleFunc("DELETE /api/v1/reminders/{id}", h.Reminders.Delete)

	mux.HandleFunc("GET /api/v1/subscription", h.Subscription.Current)
	mux.HandleFunc("GET /api/v1/subscription/quota", h.Subscription.Status)
	mux.HandleFunc("POST /api/v1/subscription/checkout", h.Subscription.StartCheckout)
	mux.HandleFunc("POST /api/v1/subscription/portal", h.Subscription.PortalURL)
	mux.HandleFunc("POST /api/v1/subscription/cancel", h.Subscription.CancelPlan)

	mux.HandleFunc("POST /webhooks/stripe", h.Webhook.Stripe)

	mux.HandleFunc("GET /api/v1/admin/dashboard", h.Admin.Dashboard)

	return mux
}
