package models

// Vehicle is the active vehicle of a driver
type Vehicle struct {
	Make         string `json:"make,omitempty"`
	Model        string `json:"model,omitempty"`
	Color        string `json:"color,omitempty"`
	LicensePlate string `json:"licensePlate,omitempty"`
}

// AvailableDriver is a driver that can be assigned to a booking.
// The list is fetched each time the assignment dialog opens.
type AvailableDriver struct {
	DriverID      string   `json:"driverId"`
	FullName      string   `json:"fullName"`
	Rating        float64  `json:"rating"`
	TotalTrips    int      `json:"totalTrips"`
	OnlineStatus  string   `json:"onlineStatus"`
	ActiveVehicle *Vehicle `json:"activeVehicle,omitempty"`
}
