// File: cliniq/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cliniq/config"
	"cliniq/database"
	appointmentRepoPkg "cliniq/database/repository/appointment"
	doctorRepoPkg "cliniq/database/repository/doctor"
	patientRepoPkg "cliniq/database/repository/patient"
	prescriptionRepoPkg "cliniq/database/repository/prescription"
	scheduleRepoPkg "cliniq/database/repository/schedule"
	staffRepoPkg "cliniq/database/repository/staff"
	"cliniq/handlers"
	"cliniq/middleware"
	"cliniq/routes"
	"cliniq/services/appointment"
	"cliniq/services/auth"
	"cliniq/services/directory"
	"cliniq/services/doctor"
	"cliniq/services/patient"
	"cliniq/services/prescription"
	"cliniq/services/schedule"
	"cliniq/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRedis()

	storageService, err := utils.Cloudinary()
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize cloudinary storage service: %v", err)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	staffRepo := staffRepoPkg.NewMongoStaffRepo()
	doctorRepo := doctorRepoPkg.NewMongoDoctorRepo()
	patientRepo := patientRepoPkg.NewMongoPatientRepo()
	appointmentRepo := appointmentRepoPkg.NewMongoAppointmentRepo()
	prescriptionRepo := prescriptionRepoPkg.NewMongoPrescriptionRepo()
	scheduleRepo := scheduleRepoPkg.NewMongoScheduleRepo()

	// services.
	authService := &auth.DefaultAuthService{
		Staff:   staffRepo,
		Doctors: doctorRepo,
	}
	doctorService := &doctor.DefaultDoctorService{
		Repo: doctorRepo,
	}
	patientService := &patient.DefaultPatientService{
		Repo:         patientRepo,
		Appointments: appointmentRepo,
	}
	directoryService := &directory.DefaultDirectoryService{
		Patients: patientRepo,
	}
	appointmentService := &appointment.DefaultAppointmentService{
		Repo:     appointmentRepo,
		Doctors:  doctorRepo,
		Patients: patientRepo,
	}
	scheduleService := &schedule.DefaultScheduleService{
		Repo:         scheduleRepo,
		Appointments: appointmentRepo,
		SlotInterval: time.Duration(config.AppConfig.SlotIntervalMinutes) * time.Minute,
	}
	prescriptionService := &prescription.DefaultPrescriptionService{
		Repo:         prescriptionRepo,
		Appointments: appointmentRepo,
		Patients:     patientRepo,
		Doctors:      doctorRepo,
		Staff:        staffRepo,
	}

	authHandler := handlers.NewAuthHandler(authService)
	doctorHandler := handlers.NewDoctorHandler(doctorService, storageService)
	patientHandler := handlers.NewPatientHandler(patientService, directoryService)
	appointmentHandler := handlers.NewAppointmentHandler(appointmentService)
	scheduleHandler := handlers.NewScheduleHandler(scheduleService)
	prescriptionHandler := handlers.NewPrescriptionHandler(prescriptionService)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		StaffRepo:  staffRepo,
		DoctorRepo: doctorRepo,

		// Auth endpoints.
		RegisterStaffHandler: authHandler.RegisterStaffHandler,
		StaffLoginHandler:    authHandler.StaffLoginHandler,
		DoctorLoginHandler:   authHandler.DoctorLoginHandler,
		LogoutHandler:        authHandler.LogoutHandler,

		// Doctor roster endpoints.
		CreateDoctorHandler:   doctorHandler.CreateDoctorHandler,
		ListDoctorsHandler:    doctorHandler.ListDoctorsHandler,
		GetDoctorHandler:      doctorHandler.GetDoctorHandler,
		SetCredentialsHandler: doctorHandler.SetCredentialsHandler,
		UploadPhotoHandler:    doctorHandler.UploadPhotoHandler,

		// Availability endpoints.
		SetWeeklyWindowHandler:    scheduleHandler.SetWeeklyWindowHandler,
		GetWeeklyScheduleHandler:  scheduleHandler.GetWeeklyScheduleHandler,
		GetDoctorSlotsHandler:     scheduleHandler.GetDoctorSlotsHandler,
		GetClassifiedSlotsHandler: scheduleHandler.GetClassifiedSlotsHandler,

		// Patient endpoints.
		CreatePatientHandler:  patientHandler.CreatePatientHandler,
		ListPatientsHandler:   patientHandler.ListPatientsHandler,
		GetPatientHandler:     patientHandler.GetPatientHandler,
		LookupPatientHandler:  patientHandler.LookupPatientHandler,
		DoctorPatientsHandler: patientHandler.DoctorPatientsHandler,

		// Appointment endpoints.
		ScheduleAppointmentHandler: appointmentHandler.ScheduleHandler,
		ListAppointmentsHandler:    appointmentHandler.ListHandler,
		DoctorAppointmentsHandler:  appointmentHandler.DoctorListHandler,
		DeleteAppointmentHandler:   appointmentHandler.DeleteHandler,
		UpdateStatusHandler:        appointmentHandler.UpdateStatusHandler,
		AdminDashboardHandler:      appointmentHandler.AdminDashboardHandler,
		DoctorDashboardHandler:     appointmentHandler.DoctorDashboardHandler,
		ExportAppointmentsHandler:  appointmentHandler.ExportHandler,

		// Prescription endpoints.
		SavePrescriptionHandler:     prescriptionHandler.SaveHandler,
		SavePrescriptionFormHandler: prescriptionHandler.SaveFormHandler,
		GetPrescriptionHandler:      prescriptionHandler.GetHandler,
		PatientHistoryHandler:       prescriptionHandler.PatientHistoryHandler,
		PrintPrescriptionHandler:    prescriptionHandler.PrintHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	utils.StartHealthMonitor(map[string]*redis.Client{
		"cache": utils.GetCacheClient(),
		"auth":  utils.GetAuthCacheClient(),
	}, database.MongoClient)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
