package main

import (
	"fmt"
	"net/http"

	"github.com/workbridge/hrms-backend-go/internal/config"
	appHTTP "github.com/workbridge/hrms-backend-go/internal/handler/http"
	"github.com/workbridge/hrms-backend-go/internal/pkg/database"
	"github.com/workbridge/hrms-backend-go/internal/pkg/jwt"
	"github.com/workbridge/hrms-backend-go/internal/repository/postgresql"
	attendanceService "github.com/workbridge/hrms-backend-go/internal/service/attendance"
	authService "github.com/workbridge/hrms-backend-go/internal/service/auth"
	payrollService "github.com/workbridge/hrms-backend-go/internal/service/payroll"
	payrunService "github.com/workbridge/hrms-backend-go/internal/service/payrun"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	txManager := postgresql.NewTxManager(db)
	userRepo := postgresql.NewUserRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	leaveRepo := postgresql.NewLeaveRepository(db)
	payrollRepo := postgresql.NewPayrollRepository(db)
	payrunRepo := postgresql.NewPayrunRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	authSvc := authService.NewAuthService(userRepo, JWTService)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo)
	payrollSvc := payrollService.NewPayrollService(txManager, payrollRepo, employeeRepo, attendanceRepo, leaveRepo)
	payrunSvc := payrunService.NewPayrunService(txManager, payrunRepo, leaveRepo)

	authHandler := appHTTP.NewAuthHandler(JWTService, authSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	payrollHandler := appHTTP.NewPayrollHandler(payrollSvc)
	payrunHandler := appHTTP.NewPayrunHandler(payrunSvc)

	router := appHTTP.NewRouter(
		JWTService,
		authHandler,
		attendanceHandler,
		payrollHandler,
		payrunHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
