package http

import (
	"log/slog"
	"os"

	"github.com/constrack/backoffice-backend-go/internal/handler/http/middleware"
	"github.com/constrack/backoffice-backend-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

func NewRouter(
	JWTService jwt.Service,
	authHandler AuthHandler,
	employeeHandler EmployeeHandler,
	attendanceHandler AttendanceHandler,
	payrollHandler PayrollHandler,
	billingHandler BillingHandler,
	expenseHandler ExpenseHandler,
	fundHandler FundHandler,
	siteHandler SiteHandler,
	companyHandler CompanyHandler,
	masterHandler MasterHandler,
	frontendURL string,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "constrack-backoffice"),
		slog.String("version", "v1.0.0"),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{frontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link", "Content-Disposition"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelInfo,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/healthz"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", authHandler.Login)
			r.Post("/refresh", authHandler.RefreshToken)
			r.Post("/logout", authHandler.Logout)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired(JWTService.JWTAuth()))

			// User administration is admin-only, registration included.
			r.Route("/users", func(r chi.Router) {
				r.Use(middleware.RequireAdmin)
				r.Get("/", authHandler.ListUsers)
				r.Post("/", authHandler.Register)
				r.Patch("/{id}/role", authHandler.UpdateUserRole)
				r.Patch("/{id}/status", authHandler.SetUserActive)
			})

			r.Route("/employees", func(r chi.Router) {
				r.Get("/", employeeHandler.List)
				r.Get("/{id}", employeeHandler.GetByID)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireAdmin)
					r.Post("/", employeeHandler.Create)
					r.Put("/{id}", employeeHandler.Update)
					r.Delete("/{id}", employeeHandler.Delete)
				})

				// Salary structures hang off the employee they belong to.
				r.Route("/{employeeID}/salary-structures", func(r chi.Router) {
					r.Use(middleware.RequireAdmin)
					r.Get("/", payrollHandler.GetEmployeeStructures)
					r.Post("/", payrollHandler.CreateStructure)
				})
			})

			r.Route("/attendance", func(r chi.Router) {
				r.Post("/", attendanceHandler.Mark)
				r.Get("/", attendanceHandler.ListByDate)
				r.Get("/employee/{employeeID}", attendanceHandler.ListByEmployeeMonth)
			})

			r.Route("/payroll", func(r chi.Router) {
				r.Use(middleware.RequireAdmin)
				r.Delete("/salary-structures/{id}", payrollHandler.DeleteStructure)
				r.Post("/compute", payrollHandler.ComputeSalary)
				r.Route("/payments", func(r chi.Router) {
					r.Get("/", payrollHandler.ListPayments)
					r.Post("/", payrollHandler.SavePayment)
					r.Patch("/{id}/pay", payrollHandler.MarkPaid)
					r.Get("/{id}/payslip", payrollHandler.DownloadPayslip)
				})
			})

			r.Route("/bills", func(r chi.Router) {
				r.Use(middleware.RequireAdmin)
				r.Post("/compute-tax", billingHandler.ComputeTax)
				r.Get("/", billingHandler.List)
				r.Post("/", billingHandler.Create)
				r.Get("/{id}", billingHandler.GetByID)
				r.Patch("/{id}/pay", billingHandler.MarkPaid)
				r.Patch("/{id}/cancel", billingHandler.Cancel)
				r.Get("/{id}/invoice", billingHandler.Invoice)
			})

			r.Route("/expenses", func(r chi.Router) {
				r.Get("/", expenseHandler.List)
				r.Get("/summary", expenseHandler.MonthSummary)
				r.Get("/{id}", expenseHandler.GetByID)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireAdmin)
					r.Post("/", expenseHandler.Create)
					r.Put("/{id}", expenseHandler.Update)
					r.Delete("/{id}", expenseHandler.Delete)
				})
			})

			r.Route("/funds", func(r chi.Router) {
				r.Use(middleware.RequireAdmin)
				r.Get("/", fundHandler.List)
				r.Post("/", fundHandler.Create)
				r.Delete("/{id}", fundHandler.Delete)
				r.Get("/summary", fundHandler.Summary)
			})

			r.Route("/sites", func(r chi.Router) {
				r.Get("/", siteHandler.List)
				r.Get("/{id}", siteHandler.GetByID)
				r.Get("/{id}/progress", siteHandler.ListProgress)
				r.Post("/{id}/progress", siteHandler.AddProgress)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireAdmin)
					r.Post("/", siteHandler.Create)
					r.Put("/{id}", siteHandler.Update)
					r.Delete("/{id}", siteHandler.Delete)
					r.Delete("/{id}/progress/{progressID}", siteHandler.DeleteProgress)
				})
			})

			r.Route("/company/settings", func(r chi.Router) {
				r.Get("/", companyHandler.GetSettings)
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireAdmin)
					r.Put("/", companyHandler.UpdateSettings)
				})
			})

			r.Route("/departments", func(r chi.Router) {
				r.Get("/", masterHandler.ListDepartments)
				r.Get("/{id}", masterHandler.GetDepartment)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireAdmin)
					r.Post("/", masterHandler.CreateDepartment)
					r.Put("/{id}", masterHandler.UpdateDepartment)
					r.Delete("/{id}", masterHandler.DeleteDepartment)
				})
			})

			r.Route("/expense-categories", func(r chi.Router) {
				r.Get("/", masterHandler.ListCategories)
				r.Get("/{id}", masterHandler.GetCategory)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireAdmin)
					r.Post("/", masterHandler.CreateCategory)
					r.Put("/{id}", masterHandler.UpdateCategory)
					r.Delete("/{id}", masterHandler.DeleteCategory)
				})
			})
		})
	})
	return r
}
