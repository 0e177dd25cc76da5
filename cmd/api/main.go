package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/constrack/backoffice-backend-go/internal/config"
	appHTTP "github.com/constrack/backoffice-backend-go/internal/handler/http"
	"github.com/constrack/backoffice-backend-go/internal/pkg/database"
	"github.com/constrack/backoffice-backend-go/internal/pkg/jwt"
	"github.com/constrack/backoffice-backend-go/internal/repository/postgresql"
	attendanceService "github.com/constrack/backoffice-backend-go/internal/service/attendance"
	serviceAuth "github.com/constrack/backoffice-backend-go/internal/service/auth"
	billingService "github.com/constrack/backoffice-backend-go/internal/service/billing"
	companyService "github.com/constrack/backoffice-backend-go/internal/service/company"
	employeeService "github.com/constrack/backoffice-backend-go/internal/service/employee"
	expenseService "github.com/constrack/backoffice-backend-go/internal/service/expense"
	fundService "github.com/constrack/backoffice-backend-go/internal/service/fund"
	"github.com/constrack/backoffice-backend-go/internal/service/master"
	payrollService "github.com/constrack/backoffice-backend-go/internal/service/payroll"
	siteService "github.com/constrack/backoffice-backend-go/internal/service/site"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	if err := db.Migrate(context.Background(), cfg.App.MigrationsDir); err != nil {
		log.Fatal("Failed to run migrations: ", err)
	}

	userRepo := postgresql.NewUserRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	payrollRepo := postgresql.NewPayrollRepository(db)
	billRepo := postgresql.NewBillRepository(db)
	billMetadataRepo := postgresql.NewBillMetadataRepository(db)
	expenseRepo := postgresql.NewExpenseRepository(db)
	fundRepo := postgresql.NewFundRepository(db)
	siteRepo := postgresql.NewSiteRepository(db)
	settingsRepo := postgresql.NewCompanySettingsRepository(db)
	departmentRepo := postgresql.NewDepartmentRepository(db)
	categoryRepo := postgresql.NewCategoryRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	authSvc := serviceAuth.NewAuthService(userRepo, JWTService)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, employeeRepo)
	payrollSvc := payrollService.NewPayrollService(payrollRepo, attendanceRepo, employeeRepo)
	billingSvc := billingService.NewBillingService(db, billRepo, billMetadataRepo, settingsRepo)
	expenseSvc := expenseService.NewExpenseService(expenseRepo)
	fundSvc := fundService.NewFundService(fundRepo)
	siteSvc := siteService.NewSiteService(siteRepo)
	settingsSvc := companyService.NewSettingsService(settingsRepo)
	masterSvc := master.NewMasterService(departmentRepo, categoryRepo)

	authHandler := appHTTP.NewAuthHandler(JWTService, authSvc)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	payrollHandler := appHTTP.NewPayrollHandler(payrollSvc)
	billingHandler := appHTTP.NewBillingHandler(billingSvc)
	expenseHandler := appHTTP.NewExpenseHandler(expenseSvc)
	fundHandler := appHTTP.NewFundHandler(fundSvc)
	siteHandler := appHTTP.NewSiteHandler(siteSvc)
	companyHandler := appHTTP.NewCompanyHandler(settingsSvc)
	masterHandler := appHTTP.NewMasterHandler(masterSvc)

	router := appHTTP.NewRouter(
		JWTService,
		authHandler,
		employeeHandler,
		attendanceHandler,
		payrollHandler,
		billingHandler,
		expenseHandler,
		fundHandler,
		siteHandler,
		companyHandler,
		masterHandler,
		cfg.App.FrontendURL,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
