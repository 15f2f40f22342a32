// Package generator produces randomized vehicle telemetry and user identity data.
package generator

import (
	"math/rand"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/DanielOuteiro/fakecar-api/internal/model"
)

// Fixed GPS position for every generated vehicle (Porto, Portugal).
const (
	PortoLatitude  = 41.1498379795316
	PortoLongitude = -8.65870106339955
)

// HistorySamples is the number of historical power consumption readings
// attached to a freshly generated vehicle.
const HistorySamples = 10

// carModels maps each supported brand to its model lineup.
var carModels = map[string][]string{
	"Tesla":    {"Model 3", "Model S", "Model X", "Model Y"},
	"BMW":      {"i4", "iX", "330e", "530e"},
	"Audi":     {"e-tron", "Q4 e-tron", "RS e-tron GT"},
	"Mercedes": {"EQS", "EQE", "EQA", "EQB"},
	"Porsche":  {"Taycan", "Taycan Cross Turismo"},
	"Volvo":    {"C40", "XC40 Recharge"},
}

// brands holds the brand names in a stable order so sampling is
// deterministic under a fixed seed (map iteration order is not).
var brands = []string{"Tesla", "BMW", "Audi", "Mercedes", "Porsche", "Volvo"}

var colors = []string{"Black", "White", "Blue", "Red", "Silver", "Green"}

var chargingPortLocations = []string{"Front", "Rear Left", "Rear Right"}

var chargingStatuses = []model.ChargingStatus{
	model.ChargingStatusCharging,
	model.ChargingStatusNotCharging,
	model.ChargingStatusScheduled,
}

// Identity enumerations used by Profile.
var (
	profileNames         = []string{"John Doe", "Jane Smith", "Alice Johnson", "Bob Wilson"}
	profileLanguages     = []string{"English", "Spanish", "French", "German"}
	profileNationalities = []string{"US", "UK", "FR", "DE", "ES"}
)

// Profile holds the randomized identity fields of a new user,
// everything except the code and the car.
type Profile struct {
	Name        string
	Age         int
	Language    string
	Nationality string
	PhoneNumber string
}

// Generator samples vehicles and user profiles from fixed domains.
// Safe for concurrent use; the underlying rand source is mutex-guarded.
type Generator struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// New creates a Generator seeded with the given value.
// A zero seed falls back to the current time, which is what production
// wants; tests pass a fixed seed to get reproducible vehicles.
func New(seed int64) *Generator {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Generator{rng: rand.New(rand.NewSource(seed))}
}

// Car returns a fully populated random vehicle.
// Every field is sampled independently; no cross-field consistency is
// attempted. GPS coordinates are pinned to Porto and error codes start
// empty. Never fails.
func (g *Generator) Car() model.Vehicle {
	g.mu.Lock()
	defer g.mu.Unlock()

	brand := brands[g.rng.Intn(len(brands))]
	models := carModels[brand]

	history := make([]float64, HistorySamples)
	for i := range history {
		history[i] = g.uniform(10, 30)
	}

	return model.Vehicle{
		Brand:                    brand,
		Model:                    models[g.rng.Intn(len(models))],
		Year:                     g.intBetween(2020, 2024),
		VIN:                      newVIN(),
		LicensePlate:             g.licensePlate(),
		InfotainmentCapabilities: []string{"Navigation", "Bluetooth", "WiFi", "Mobile App"},
		Color:                    colors[g.rng.Intn(len(colors))],
		ChargingPortLocation:     chargingPortLocations[g.rng.Intn(len(chargingPortLocations))],
		BatteryCapacity:          g.uniform(60, 100),
		MaximumRange:             g.uniform(250, 450),
		ChargingConnectorTypes:   []string{"Type 2", "CCS"},
		ChargingCableTypes:       []string{"Mode 3", "Mode 4"},
		GPSCoordinates: map[string]float64{
			"latitude":  PortoLatitude,
			"longitude": PortoLongitude,
		},
		StateOfCharge:              g.uniform(0, 100),
		Speed:                      g.uniform(0, 120),
		InstantPowerConsumption:    g.uniform(10, 30),
		HistoricalPowerConsumption: history,
		RangeEstimation:            g.uniform(150, 350),
		ChargingStatus:             chargingStatuses[g.rng.Intn(len(chargingStatuses))],
		ChargingPowerRate:          g.uniform(0, 150),
		BatteryTemperature:         g.uniform(20, 40),
		ErrorCodes:                 []string{},
		MotorRPM:                   g.uniform(0, 7000),
		OdometerReading:            g.uniform(0, 50000),
		Battery12VVoltage:          g.uniform(11.5, 12.8),
		RegenerativeBrakingData: map[string]float64{
			"power":      g.uniform(0, 50),
			"efficiency": g.uniform(0.8, 0.95),
		},
		TirePressure: map[string]float64{
			"front_left":  g.uniform(2.2, 2.4),
			"front_right": g.uniform(2.2, 2.4),
			"rear_left":   g.uniform(2.2, 2.4),
			"rear_right":  g.uniform(2.2, 2.4),
		},
	}
}

// Profile returns randomized identity fields for a new user.
func (g *Generator) Profile() Profile {
	g.mu.Lock()
	defer g.mu.Unlock()

	return Profile{
		Name:        profileNames[g.rng.Intn(len(profileNames))],
		Age:         g.intBetween(18, 80),
		Language:    profileLanguages[g.rng.Intn(len(profileLanguages))],
		Nationality: profileNationalities[g.rng.Intn(len(profileNationalities))],
		PhoneNumber: g.phoneNumber(),
	}
}

// uniform samples a float in [lo, hi). Caller must hold g.mu.
func (g *Generator) uniform(lo, hi float64) float64 {
	return lo + g.rng.Float64()*(hi-lo)
}

// intBetween samples an integer in [lo, hi]. Caller must hold g.mu.
func (g *Generator) intBetween(lo, hi int) int {
	return lo + g.rng.Intn(hi-lo+1)
}

// licensePlate builds one uppercase letter followed by a 3-digit number.
func (g *Generator) licensePlate() string {
	letter := byte('A' + g.rng.Intn(26))
	return string(letter) + strconv.Itoa(g.intBetween(100, 999))
}

// phoneNumber builds a plausible international number: +CC followed by
// nine digits.
func (g *Generator) phoneNumber() string {
	return "+" + strconv.Itoa(g.intBetween(1, 99)) + strconv.Itoa(g.intBetween(100000000, 999999999))
}

// newVIN derives a 17-character uppercase hex VIN from a fresh UUID.
// UUIDs come from crypto/rand, so VINs stay unique even under a fixed
// generator seed.
func newVIN() string {
	hex := strings.ReplaceAll(uuid.New().String(), "-", "")
	return strings.ToUpper(hex[:17])
}
