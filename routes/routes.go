package routes

import (
	"net/http"
	"time"

	"cliniq/handlers"
	"cliniq/middleware"
	"cliniq/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes registers registration and login endpoints.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/auth")
	{
		api.POST("/register", hb.RegisterStaffHandler)
		api.POST("/login", hb.StaffLoginHandler)
		api.POST("/doctor/login", hb.DoctorLoginHandler)
	}

	// Logout works for whichever role the token carries.
	r.POST("/api/auth/logout", middleware.JWTAuthAnyMiddleware(hb.StaffRepo, hb.DoctorRepo), hb.LogoutHandler)
}

// RegisterAdminRoutes sets up the hospital staff portal endpoints.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/admin")
	{
		api.Use(middleware.JWTAuthAdminMiddleware(hb.StaffRepo))
		api.GET("/dashboard", hb.AdminDashboardHandler)

		// Doctor roster.
		api.POST("/doctors", hb.CreateDoctorHandler)
		api.GET("/doctors", hb.ListDoctorsHandler)
		api.GET("/doctors/:id", hb.GetDoctorHandler)
		api.PUT("/doctors/:id/credentials", hb.SetCredentialsHandler)
		api.POST("/doctors/:id/photo", hb.UploadPhotoHandler)
		api.PUT("/doctors/:id/slots", hb.SetWeeklyWindowHandler)
		api.GET("/doctors/:id/slots", hb.GetWeeklyScheduleHandler)
		api.GET("/doctors/:id/availability/:date", hb.GetClassifiedSlotsHandler)

		// Patients.
		api.POST("/patients", hb.CreatePatientHandler)
		api.GET("/patients", hb.ListPatientsHandler)
		api.GET("/patients/lookup", hb.LookupPatientHandler)
		api.GET("/patients/:id", hb.GetPatientHandler)

		// Appointments.
		api.POST("/appointments", hb.ScheduleAppointmentHandler)
		api.GET("/appointments", hb.ListAppointmentsHandler)
		api.GET("/appointments/export", hb.ExportAppointmentsHandler)
		api.DELETE("/appointments/:id", hb.DeleteAppointmentHandler)
	}

	// Legacy path the scheduling page polls for day availability.
	r.GET("/admin/get_doctor_slots/:doctorID/:date",
		middleware.JWTAuthAdminMiddleware(hb.StaffRepo), hb.GetDoctorSlotsHandler)
}

// RegisterDoctorRoutes sets up the doctor portal endpoints.
func RegisterDoctorRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/doctor")
	{
		api.Use(middleware.JWTAuthDoctorMiddleware(hb.DoctorRepo))
		api.GET("/dashboard", hb.DoctorDashboardHandler)
		api.GET("/appointments", hb.DoctorAppointmentsHandler)
		api.PUT("/appointments/:id/status", hb.UpdateStatusHandler)

		api.POST("/appointments/:id/prescription", hb.SavePrescriptionHandler)
		api.POST("/appointments/:id/prescription/form", hb.SavePrescriptionFormHandler)
		api.GET("/appointments/:id/prescription", hb.GetPrescriptionHandler)
		api.GET("/appointments/:id/prescription/print", hb.PrintPrescriptionHandler)

		api.GET("/patients", hb.DoctorPatientsHandler)
		api.GET("/patients/:id/history", hb.PatientHistoryHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, utils.GetHealthStatus())
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterAuthRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
	RegisterDoctorRoutes(r, hb)
	RegisterHealthRoute(r)
}
