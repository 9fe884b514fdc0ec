package server

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"lasercraft/internal/catalog"
	"lasercraft/internal/infrastructure/metrics"
	"lasercraft/internal/intake"
)

// NewRouter mounts the public API. Catalog routes serve the storefront and
// admin panel; intake routes take customer submissions.
func NewRouter(catalogCtrl *catalog.Controller, intakeCtrl *intake.Controller, logger *zap.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(requestLogger(logger))
	r.Use(chimiddleware.Recoverer)
	r.Use(metrics.Middleware)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})
	r.Handle("/metrics", metrics.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Route("/products", func(r chi.Router) {
			r.Get("/", catalogCtrl.HandleListProducts)
			r.Post("/", catalogCtrl.HandleCreateProduct)
			r.Get("/{id}", catalogCtrl.HandleGetProduct)
			r.Put("/{id}", catalogCtrl.HandleUpdateProduct)
			r.Delete("/{id}", catalogCtrl.HandleDeleteProduct)
		})

		r.Route("/materials", func(r chi.Router) {
			r.Get("/", catalogCtrl.HandleListMaterials)
			r.Post("/", catalogCtrl.HandleCreateMaterial)
			r.Get("/{id}", catalogCtrl.HandleGetMaterial)
			r.Put("/{id}", catalogCtrl.HandleUpdateMaterial)
			r.Delete("/{id}", catalogCtrl.HandleDeleteMaterial)
		})

		r.Route("/testimonials", func(r chi.Router) {
			r.Get("/", catalogCtrl.HandleListTestimonials)
			r.Get("/featured", catalogCtrl.HandleListFeaturedTestimonials)
			r.Post("/", catalogCtrl.HandleCreateTestimonial)
			r.Put("/{id}", catalogCtrl.HandleUpdateTestimonial)
			r.Delete("/{id}", catalogCtrl.HandleDeleteTestimonial)
		})

		r.Route("/orders", func(r chi.Router) {
			r.Get("/", intakeCtrl.HandleListOrders)
			r.Post("/", intakeCtrl.HandleCreateOrder)
			r.Get("/{id}", intakeCtrl.HandleGetOrder)
			r.Put("/{id}/status", intakeCtrl.HandleUpdateOrderStatus)
		})

		r.Route("/inquiries", func(r chi.Router) {
			r.Get("/", intakeCtrl.HandleListInquiries)
			r.Post("/", intakeCtrl.HandleCreateInquiry)
			r.Get("/{id}", intakeCtrl.HandleGetInquiry)
			r.Put("/{id}/status", intakeCtrl.HandleUpdateInquiryStatus)
		})

		r.Route("/contact", func(r chi.Router) {
			r.Get("/", intakeCtrl.HandleListContactMessages)
			r.Post("/", intakeCtrl.HandleCreateContactMessage)
			r.Put("/{id}/status", intakeCtrl.HandleUpdateContactMessageStatus)
		})

		r.Post("/quote", intakeCtrl.HandleQuote)
	})

	return r
}

func requestLogger(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			logger.Info("request completed",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Duration("duration", time.Since(start)),
				zap.String("requestId", chimiddleware.GetReqID(r.Context())),
			)
		})
	}
}
