package models

// TimeSlot is one generated booking interval for a doctor on a date.
// Start and End are HH:MM, 24-hour; the display fields are the lowercase
// 12-hour renderings the admin UI shows ("09:00" -> "09:00 am").
type TimeSlot struct {
	Start        string `json:"start"`
	End          string `json:"end"`
	DisplayStart string `json:"display_start"`
	DisplayEnd   string `json:"display_end"`
}

// SlotStatus classifies a generated slot against the booked set.
type SlotStatus string

const (
	SlotBookable SlotStatus = "bookable"
	SlotBooked   SlotStatus = "booked"
)

// ClassifiedSlot pairs a slot with its booked/bookable classification.
type ClassifiedSlot struct {
	TimeSlot
	Status SlotStatus `json:"status"`
}

// SlotAvailabilityResponse is the wire shape of the doctor-slots endpoint.
// A non-empty Error means the request failed regardless of HTTP status;
// callers must not interpret Slots or BookedSlots when it is set.
type SlotAvailabilityResponse struct {
	Error       string     `json:"error,omitempty"`
	Slots       []TimeSlot `json:"slots,omitempty"`
	BookedSlots []string   `json:"booked_slots,omitempty"`
}
