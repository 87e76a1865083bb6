package main

import (
	"fmt"
	"net/http"

	"github.com/staffhub-dev/attendance-backend-go/internal/config"
	appHTTP "github.com/staffhub-dev/attendance-backend-go/internal/handler/http"
	"github.com/staffhub-dev/attendance-backend-go/internal/pkg/database"
	"github.com/staffhub-dev/attendance-backend-go/internal/pkg/jwt"
	"github.com/staffhub-dev/attendance-backend-go/internal/repository/postgresql"
	attendanceService "github.com/staffhub-dev/attendance-backend-go/internal/service/attendance"
	payrollService "github.com/staffhub-dev/attendance-backend-go/internal/service/payroll"
	settingService "github.com/staffhub-dev/attendance-backend-go/internal/service/setting"
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

	attendanceRepo := postgresql.NewAttendanceRepository(db)
	payrollRepo := postgresql.NewPayrollRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	settingRepo := postgresql.NewSettingRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret)
	attendanceSvc := attendanceService.NewAttendanceService(db, attendanceRepo)
	payrollSvc := payrollService.NewPayrollService(payrollRepo, attendanceRepo, employeeRepo, settingRepo)
	settingSvc := settingService.NewSettingService(settingRepo)

	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	payrollHandler := appHTTP.NewPayrollHandler(payrollSvc)
	settingHandler := appHTTP.NewSettingHandler(settingSvc)

	router := appHTTP.NewRouter(
		cfg,
		jwtService,
		attendanceHandler,
		payrollHandler,
		settingHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
