package handlers

import (
	doctorRepoPkg "cliniq/database/repository/doctor"
	staffRepoPkg "cliniq/database/repository/staff"

	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all your endpoint handlers into one struct.
type HandlerBundle struct {
	StaffRepo  staffRepoPkg.StaffRepository
	DoctorRepo doctorRepoPkg.DoctorRepository

	// Auth endpoints
	RegisterStaffHandler gin.HandlerFunc
	StaffLoginHandler    gin.HandlerFunc
	DoctorLoginHandler   gin.HandlerFunc
	LogoutHandler        gin.HandlerFunc

	// Doctor roster endpoints
	CreateDoctorHandler   gin.HandlerFunc
	ListDoctorsHandler    gin.HandlerFunc
	GetDoctorHandler      gin.HandlerFunc
	SetCredentialsHandler gin.HandlerFunc
	UploadPhotoHandler    gin.HandlerFunc

	// Availability endpoints
	SetWeeklyWindowHandler    gin.HandlerFunc
	GetWeeklyScheduleHandler  gin.HandlerFunc
	GetDoctorSlotsHandler     gin.HandlerFunc
	GetClassifiedSlotsHandler gin.HandlerFunc

	// Patient endpoints
	CreatePatientHandler  gin.HandlerFunc
	ListPatientsHandler   gin.HandlerFunc
	GetPatientHandler     gin.HandlerFunc
	LookupPatientHandler  gin.HandlerFunc
	DoctorPatientsHandler gin.HandlerFunc

	// Appointment endpoints
	ScheduleAppointmentHandler gin.HandlerFunc
	ListAppointmentsHandler    gin.HandlerFunc
	DoctorAppointmentsHandler  gin.HandlerFunc
	DeleteAppointmentHandler   gin.HandlerFunc
	UpdateStatusHandler        gin.HandlerFunc
	AdminDashboardHandler      gin.HandlerFunc
	DoctorDashboardHandler     gin.HandlerFunc
	ExportAppointmentsHandler  gin.HandlerFunc

	// Prescription endpoints
	SavePrescriptionHandler     gin.HandlerFunc
	SavePrescriptionFormHandler gin.HandlerFunc
	GetPrescriptionHandler      gin.HandlerFunc
	PatientHistoryHandler       gin.HandlerFunc
	PrintPrescriptionHandler    gin.HandlerFunc
}
