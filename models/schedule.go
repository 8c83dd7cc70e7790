package models

// WeeklyWindow is a doctor's consulting window for one weekday, with an
// optional break in the middle. Times are HH:MM, 24-hour. At most one window
// exists per (doctor, day); setting a new one replaces the old.
type WeeklyWindow struct {
	ID         string `bson:"id" json:"id"`
	DoctorID   string `bson:"doctorId" json:"doctorId"`
	Day        string `bson:"day" json:"day"` // "Monday".."Sunday"
	StartTime  string `bson:"startTime" json:"startTime"`
	EndTime    string `bson:"endTime" json:"endTime"`
	BreakStart string `bson:"breakStart,omitempty" json:"breakStart,omitempty"`
	BreakEnd   string `bson:"breakEnd,omitempty" json:"breakEnd,omitempty"`
	HospitalID string `bson:"hospitalId" json:"hospitalId"`
}

// WeeklyWindowRequest defines the payload for setting a doctor's weekly window.
type WeeklyWindowRequest struct {
	Day        string `json:"day" binding:"required"`
	StartTime  string `json:"startTime" binding:"required"`
	EndTime    string `json:"endTime" binding:"required"`
	BreakStart string `json:"breakStart"`
	BreakEnd   string `json:"breakEnd"`
}
