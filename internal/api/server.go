package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/hagwonlab/academy-api/internal/config"
	"github.com/hagwonlab/academy-api/internal/models"
	"github.com/hagwonlab/academy-api/internal/service"
)

type Server struct {
	cfg         config.Config
	log         *slog.Logger
	auth        *service.AuthService
	users       *service.UserService
	academies   *service.AcademyService
	assignments *service.AssignmentService
	inquiries   *service.InquiryService
	points      *service.PointService
	catalog     *service.CatalogService
	homework    *service.HomeworkService
	messaging   *service.MessagingService
	content     *service.ContentService
	landing     *service.LandingService
	router      *chi.Mux
}

type Services struct {
	Auth        *service.AuthService
	Users       *service.UserService
	Academies   *service.AcademyService
	Assignments *service.AssignmentService
	Inquiries   *service.InquiryService
	Points      *service.PointService
	Catalog     *service.CatalogService
	Homework    *service.HomeworkService
	Messaging   *service.MessagingService
	Content     *service.ContentService
	Landing     *service.LandingService
}

func NewServer(cfg config.Config, log *slog.Logger, svcs Services) *Server {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	s := &Server{
		cfg:         cfg,
		log:         log,
		auth:        svcs.Auth,
		users:       svcs.Users,
		academies:   svcs.Academies,
		assignments: svcs.Assignments,
		inquiries:   svcs.Inquiries,
		points:      svcs.Points,
		catalog:     svcs.Catalog,
		homework:    svcs.Homework,
		messaging:   svcs.Messaging,
		content:     svcs.Content,
		landing:     svcs.Landing,
		router:      r,
	}

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/api", func(r chi.Router) {
		r.Post("/auth/signup", s.handleSignup)
		r.Post("/auth/login", s.handleLogin)
		r.Post("/inquiries", s.handleCreateInquiry)
		r.Get("/pricing/plans", s.handleListPlans)
		r.Get("/store/products", s.handleListProducts)
		r.Get("/landing/{slug}", s.handleGetLandingPage)

		r.Group(func(r chi.Router) {
			r.Use(s.authMiddleware)

			r.Post("/auth/logout", s.handleLogout)
			r.Get("/auth/me", s.handleGetMe)
			r.Post("/points/charge-requests", s.handleRequestCharge)
			r.Get("/points/charge-requests", s.handleListOwnCharges)
			r.Post("/homework", s.handleSubmitHomework)
			r.Get("/homework", s.handleListHomework)
			r.Get("/homework/{id}", s.handleGetHomework)

			r.Group(func(r chi.Router) {
				r.Use(s.requireRole(models.RoleTeacher))
				r.Post("/homework/{id}/grade", s.handleGradeHomework)
				r.Post("/homework/process-grading", s.handleProcessGrading)
				r.Post("/platforms/{platform}/generate", s.handleGenerateContent)
			})

			r.Group(func(r chi.Router) {
				r.Use(s.requireRole(models.RoleDirector))
				r.Route("/admin/users", func(r chi.Router) {
					r.Get("/", s.handleListUsers)
					r.Post("/", s.handleCreateUser)
					r.Get("/pending", s.handleListPendingUsers)
					r.Post("/approve", s.handleApproveUser)
					r.Get("/{id}", s.handleGetUser)
					r.Patch("/{id}", s.handleUpdateUser)
					r.Delete("/{id}", s.handleDeactivateUser)
				})
				r.Route("/admin/bot-assignments", func(r chi.Router) {
					r.Get("/", s.handleListAssignments)
					r.Post("/", s.handleCreateAssignment)
					r.Delete("/{id}", s.handleDeactivateAssignment)
				})
				r.Route("/admin/inquiries", func(r chi.Router) {
					r.Get("/", s.handleListInquiries)
					r.Post("/{id}/respond", s.handleRespondInquiry)
				})
				r.Route("/admin/point-charges", func(r chi.Router) {
					r.Get("/", s.handleListCharges)
					r.Post("/{id}/approve", s.handleApproveCharge)
					r.Post("/{id}/reject", s.handleRejectCharge)
				})
				r.Post("/messages/send", s.handleSendMessage)
				r.Get("/messages/logs", s.handleListMessageLogs)
				r.Route("/admin/kakao-channels", func(r chi.Router) {
					r.Get("/", s.handleListChannels)
					r.Post("/", s.handleCreateChannel)
				})
				r.Route("/admin/landing-pages", func(r chi.Router) {
					r.Get("/", s.handleListLandingPages)
					r.Post("/", s.handleCreateLandingPage)
					r.Patch("/{id}", s.handleUpdateLandingPage)
				})
			})

			r.Group(func(r chi.Router) {
				r.Use(s.requireRole(models.RoleAdmin))
				r.Route("/admin/academies", func(r chi.Router) {
					r.Get("/", s.handleListAcademies)
					r.Post("/", s.handleCreateAcademy)
					r.Get("/{id}", s.handleGetAcademy)
					r.Patch("/{id}", s.handleUpdateAcademy)
				})
				r.Post("/admin/store/products", s.handleCreateProduct)
				r.Patch("/admin/store/products/{id}", s.handleUpdateProduct)
				r.Post("/admin/pricing/plans", s.handleCreatePlan)
				r.Patch("/admin/pricing/plans/{id}", s.handleUpdatePlan)
			})
		})
	})

	return s
}

// Router exposes the handler tree, mainly for tests.
func (s *Server) Router() http.Handler {
	return s.router
}

func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:         s.cfg.ListenAddr,
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.log.Error("api shutdown error", "err", err)
		}
	}()

	s.log.Info("api listening", "addr", s.cfg.ListenAddr)
	if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("api listen: %w", err)
	}
	return nil
}

func parseID(value string) (int64, error) {
	return strconv.ParseInt(strings.TrimSpace(value), 10, 64)
}
