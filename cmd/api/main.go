package main

import (
	"log"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	httpadp "loan-management-backend/internal/adapter/http"
	idemp "loan-management-backend/internal/adapter/middleware"
	"loan-management-backend/internal/adapter/repository/mysql"
	"loan-management-backend/internal/config"
	"loan-management-backend/internal/domain/identity"
	"loan-management-backend/internal/infrastructure/cache"
	"loan-management-backend/internal/infrastructure/db"
	applicationUC "loan-management-backend/internal/usecase/application"
	loantypeUC "loan-management-backend/internal/usecase/loantype"
	paymentUC "loan-management-backend/internal/usecase/payment"
	reportUC "loan-management-backend/internal/usecase/report"
	reviewUC "loan-management-backend/internal/usecase/review"
	"loan-management-backend/pkg/logger"
)

func main() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	zl := logger.New(cfg.LogLevel, cfg.LogFormat)
	defer func() { _ = zl.Sync() }()

	gdb, err := db.OpenGorm(cfg.MySQLDSN())
	if err != nil {
		zl.Fatal("mysql connect", zap.Error(err))
	}
	rdb, err := cache.OpenRedis(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	if err != nil {
		zl.Fatal("redis connect", zap.Error(err))
	}

	loans := mysql.NewLoanRepository(gdb)
	loanTypes := mysql.NewLoanTypeRepository(gdb)
	emis := mysql.NewEMIRepository(gdb)
	uow := mysql.NewGormUoW(gdb)
	directory := identity.StaticDirectory(cfg.DirectoryEmails)

	applications := applicationUC.NewUsecase(loans, loanTypes, emis, zl)
	reviews := reviewUC.NewUsecase(loans, directory, uow, zl)
	payments := paymentUC.NewUsecase(emis, uow, zl)
	reports := reportUC.NewUsecase(loans, emis, directory)
	products := loantypeUC.NewUsecase(loanTypes, zl)

	h := httpadp.NewHandler()
	appH := httpadp.NewApplicationHandler(applications)
	officerH := httpadp.NewOfficerHandler(reviews)
	paymentH := httpadp.NewPaymentHandler(payments)
	reportH := httpadp.NewReportHandler(reports)
	typeH := httpadp.NewLoanTypeHandler(products)

	e := echo.New()
	e.HideBanner = true
	e.Validator = httpadp.NewValidator()
	e.Use(middleware.Logger(), middleware.Recover())

	idempTTL := time.Duration(cfg.IdempTTLSecs) * time.Second
	idempMW := idemp.IdempotencyMiddleware(rdb, idempTTL, zl)

	// health
	e.GET("/health", h.Health)

	// customer surface
	e.POST("/loans/apply", appH.Apply, idempMW)
	e.GET("/loans/mine", appH.MyLoans)
	e.GET("/loans/:loan_id", appH.LoanByID)
	e.GET("/loans/:loan_id/emis", appH.EMIsByLoan)
	e.GET("/loan-types", appH.LoanTypes)
	e.PUT("/emis/:emi_id/pay", paymentH.PayEMI, idempMW)
	e.POST("/loans/:loan_id/pay-all", paymentH.PayAll, idempMW)

	// officer surface
	e.GET("/officer/applications", officerH.Applications)
	e.PUT("/officer/loans/:loan_id/under-review", officerH.MarkUnderReview)
	e.PUT("/officer/loans/:loan_id/review", officerH.Review)
	e.GET("/officer/reports/outstanding", reportH.Outstanding)
	e.GET("/officer/reports/status", reportH.StatusCounts)
	e.GET("/officer/reports/overdue", reportH.Overdue)
	e.GET("/officer/reports/monthly", reportH.Monthly)

	// admin surface
	e.POST("/admin/loan-types", typeH.Create)
	e.PUT("/admin/loan-types/:loan_type_id", typeH.Update)
	e.GET("/admin/loan-types", typeH.List)

	addr := ":" + cfg.AppPort
	zl.Info("listening", zap.String("addr", addr))
	if err := e.Start(addr); err != nil {
		zl.Fatal("server stopped", zap.Error(err))
	}
}
