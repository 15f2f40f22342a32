// Package model defines domain entities for the application.
package model

// ChargingStatus represents the charging state reported by a vehicle.
type ChargingStatus string

const (
	ChargingStatusCharging    ChargingStatus = "Charging"
	ChargingStatusNotCharging ChargingStatus = "Not Charging"
	ChargingStatusScheduled   ChargingStatus = "Scheduled"
)

// IsValid checks if the charging status is one of the known states.
// Only the generator guarantees a valid status; the update path stores
// whatever the caller supplies.
func (s ChargingStatus) IsValid() bool {
	return s == ChargingStatusCharging || s == ChargingStatusNotCharging || s == ChargingStatusScheduled
}

// Vehicle represents the simulated telemetry and identity payload of a car.
// Field names on the wire follow the public API exactly.
type Vehicle struct {
	Brand                      string             `json:"brand"`
	Model                      string             `json:"model"`
	Year                       int                `json:"year"`
	VIN                        string             `json:"vin"`
	LicensePlate               string             `json:"license_plate"`
	InfotainmentCapabilities   []string           `json:"infotainment_capabilities"`
	Color                      string             `json:"color"`
	ChargingPortLocation       string             `json:"charging_port_location"`
	BatteryCapacity            float64            `json:"battery_capacity"`
	MaximumRange               float64            `json:"maximum_range"`
	ChargingConnectorTypes     []string           `json:"charging_connector_types"`
	ChargingCableTypes         []string           `json:"charging_cable_types"`
	GPSCoordinates             map[string]float64 `json:"gps_coordinates"`
	StateOfCharge              float64            `json:"state_of_charge"`
	Speed                      float64            `json:"speed"`
	InstantPowerConsumption    float64            `json:"instant_power_consumption"`
	HistoricalPowerConsumption []float64          `json:"historical_power_consumption"`
	RangeEstimation            float64            `json:"range_estimation"`
	ChargingStatus             ChargingStatus     `json:"charging_status"`
	ChargingPowerRate          float64            `json:"charging_power_rate"`
	BatteryTemperature         float64            `json:"battery_temperature"`
	ErrorCodes                 []string           `json:"error_codes"`
	MotorRPM                   float64            `json:"motor_rpm"`
	OdometerReading            float64            `json:"odometer_reading"`
	Battery12VVoltage          float64            `json:"battery_12v_voltage"`
	RegenerativeBrakingData    map[string]float64 `json:"regenerative_braking_data"`
	TirePressure               map[string]float64 `json:"tire_pressure"`
}
