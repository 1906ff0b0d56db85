package handler

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"

	"github.com/btspl-dev/asset-tracker/backend/internal/config"
	"github.com/btspl-dev/asset-tracker/backend/internal/domain"
	"github.com/btspl-dev/asset-tracker/backend/internal/repository"
)

type Handler struct {
	validate    *validator.Validate
	config      *config.Config
	repository  *repository.Repository
	translator  ut.Translator
	mailChannel *amqp.Channel
	redisClient *redis.Client

	Mux *chi.Mux
}

func NewHandler(cfg *config.Config, repo *repository.Repository, mailCh *amqp.Channel, rdb *redis.Client) (*Handler, error) {
	validate := validator.New(validator.WithRequiredStructEnabled())
	en := en.New()
	uni := ut.New(en, en)
	trans, _ := uni.GetTranslator("en")
	if err := en_translations.RegisterDefaultTranslations(validate, trans); err != nil {
		return nil, err
	}

	return &Handler{
		validate:    validate,
		config:      cfg,
		repository:  repo,
		translator:  trans,
		mailChannel: mailCh,
		redisClient: rdb,

		Mux: chi.NewRouter(),
	}, nil
}

func (h *Handler) RegisterRoutes() {
	h.Mux.Use(h.logger)
	h.Mux.Use(h.recoverer)

	h.Mux.Route("/auth", func(r chi.Router) {
		r.Post("/login", h.Login)
		r.Post("/logout", h.Logout)
		r.With(h.auth).Get("/session", h.Session)
	})

	// everything below requires a signed-in principal; each resource lists
	// its permitted roles explicitly, there is no role hierarchy
	h.Mux.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Route("/dashboard", func(r chi.Router) {
			r.Use(h.RequiredRole([]domain.Role{domain.RoleAdmin, domain.RoleHR, domain.RoleDirector}))
			r.Get("/stats", h.DashboardStats)
			r.With(h.RequiredRole([]domain.Role{domain.RoleAdmin})).Post("/warranty-alerts", h.SendWarrantyAlerts)
		})

		r.Route("/assets", func(r chi.Router) {
			r.Use(h.RequiredRole([]domain.Role{domain.RoleAdmin, domain.RoleHR, domain.RoleDirector}))
			r.Get("/", h.GetAllAssets)
			r.Get("/export", h.ExportAssets)
			r.With(h.RequiredRole([]domain.Role{domain.RoleAdmin, domain.RoleHR})).Post("/", h.CreateAsset)
			r.Route("/{id}", func(r chi.Router) {
				r.Use(h.assetCtx)
				r.Get("/", h.GetAsset)
				r.With(h.RequiredRole([]domain.Role{domain.RoleAdmin, domain.RoleHR})).With(h.preventEditRemovedAsset).Patch("/", h.UpdateAsset)
				r.With(h.RequiredRole([]domain.Role{domain.RoleAdmin, domain.RoleHR})).Post("/remove", h.RemoveAsset)
				r.With(h.RequiredRole([]domain.Role{domain.RoleAdmin, domain.RoleHR})).With(h.preventEditRemovedAsset).Post("/assign", h.AssignAsset)
				r.With(h.RequiredRole([]domain.Role{domain.RoleAdmin})).Delete("/", h.DeleteAsset)
			})
		})

		r.Route("/employees", func(r chi.Router) {
			r.Use(h.RequiredRole([]domain.Role{domain.RoleAdmin, domain.RoleHR}))
			r.Get("/", h.GetAllEmployees)
			r.Get("/export", h.ExportEmployees)
			r.Post("/", h.CreateEmployee)
			r.Route("/{id}", func(r chi.Router) {
				r.Use(h.employeeCtx)
				r.Get("/", h.GetEmployee)
				r.Patch("/", h.UpdateEmployee)
				r.With(h.RequiredRole([]domain.Role{domain.RoleAdmin})).Delete("/", h.DeleteEmployee)
			})
		})

		r.Route("/dropdown-options", func(r chi.Router) {
			r.Use(h.RequiredRole([]domain.Role{domain.RoleAdmin}))
			r.Get("/", h.GetAllDropdownOptions)
			r.Post("/", h.CreateDropdownOption)
			r.Route("/{id}", func(r chi.Router) {
				r.Use(h.dropdownOptionCtx)
				r.Patch("/", h.UpdateDropdownOption)
				r.Delete("/", h.DeleteDropdownOption)
			})
		})
	})
}
