package generator

import (
	"reflect"
	"regexp"
	"testing"

	"github.com/DanielOuteiro/fakecar-api/internal/model"
)

var (
	vinPattern   = regexp.MustCompile(`^[0-9A-F]{17}$`)
	platePattern = regexp.MustCompile(`^[A-Z][0-9]{3}$`)
)

func TestGenerator_CarInvariants(t *testing.T) {
	g := New(1)

	for i := 0; i < 50; i++ {
		car := g.Car()

		models, ok := carModels[car.Brand]
		if !ok {
			t.Fatalf("unknown brand %q", car.Brand)
		}
		found := false
		for _, m := range models {
			if m == car.Model {
				found = true
			}
		}
		if !found {
			t.Errorf("model %q does not belong to brand %q", car.Model, car.Brand)
		}

		if !vinPattern.MatchString(car.VIN) {
			t.Errorf("VIN %q is not 17 uppercase hex characters", car.VIN)
		}

		if !platePattern.MatchString(car.LicensePlate) {
			t.Errorf("license plate %q does not match letter+3digits", car.LicensePlate)
		}

		if len(car.HistoricalPowerConsumption) != HistorySamples {
			t.Errorf("expected %d history samples, got %d", HistorySamples, len(car.HistoricalPowerConsumption))
		}

		if len(car.ErrorCodes) != 0 {
			t.Errorf("expected empty error codes, got %v", car.ErrorCodes)
		}

		if car.GPSCoordinates["latitude"] != PortoLatitude || car.GPSCoordinates["longitude"] != PortoLongitude {
			t.Errorf("expected Porto coordinates, got %v", car.GPSCoordinates)
		}

		for _, pos := range []string{"front_left", "front_right", "rear_left", "rear_right"} {
			if _, ok := car.TirePressure[pos]; !ok {
				t.Errorf("tire pressure missing position %q", pos)
			}
		}
		if len(car.TirePressure) != 4 {
			t.Errorf("expected exactly 4 tire positions, got %d", len(car.TirePressure))
		}

		if !car.ChargingStatus.IsValid() {
			t.Errorf("invalid charging status %q", car.ChargingStatus)
		}
	}
}

func TestGenerator_CarRanges(t *testing.T) {
	g := New(7)

	checks := []struct {
		name   string
		value  func(model.Vehicle) float64
		lo, hi float64
	}{
		{"battery_capacity", func(v model.Vehicle) float64 { return v.BatteryCapacity }, 60, 100},
		{"maximum_range", func(v model.Vehicle) float64 { return v.MaximumRange }, 250, 450},
		{"state_of_charge", func(v model.Vehicle) float64 { return v.StateOfCharge }, 0, 100},
		{"speed", func(v model.Vehicle) float64 { return v.Speed }, 0, 120},
		{"instant_power_consumption", func(v model.Vehicle) float64 { return v.InstantPowerConsumption }, 10, 30},
		{"range_estimation", func(v model.Vehicle) float64 { return v.RangeEstimation }, 150, 350},
		{"charging_power_rate", func(v model.Vehicle) float64 { return v.ChargingPowerRate }, 0, 150},
		{"battery_temperature", func(v model.Vehicle) float64 { return v.BatteryTemperature }, 20, 40},
		{"motor_rpm", func(v model.Vehicle) float64 { return v.MotorRPM }, 0, 7000},
		{"odometer_reading", func(v model.Vehicle) float64 { return v.OdometerReading }, 0, 50000},
		{"battery_12v_voltage", func(v model.Vehicle) float64 { return v.Battery12VVoltage }, 11.5, 12.8},
	}

	for i := 0; i < 50; i++ {
		car := g.Car()

		if car.Year < 2020 || car.Year > 2024 {
			t.Errorf("year %d out of [2020, 2024]", car.Year)
		}

		for _, c := range checks {
			v := c.value(car)
			if v < c.lo || v > c.hi {
				t.Errorf("%s = %f out of [%f, %f]", c.name, v, c.lo, c.hi)
			}
		}

		for _, sample := range car.HistoricalPowerConsumption {
			if sample < 10 || sample > 30 {
				t.Errorf("history sample %f out of [10, 30]", sample)
			}
		}

		if p := car.RegenerativeBrakingData["power"]; p < 0 || p > 50 {
			t.Errorf("regen power %f out of [0, 50]", p)
		}
		if e := car.RegenerativeBrakingData["efficiency"]; e < 0.8 || e > 0.95 {
			t.Errorf("regen efficiency %f out of [0.8, 0.95]", e)
		}
		for pos, p := range car.TirePressure {
			if p < 2.2 || p > 2.4 {
				t.Errorf("tire pressure %s = %f out of [2.2, 2.4]", pos, p)
			}
		}
	}
}

// TestGenerator_DeterministicUnderSeed pins the seedable-source
// behavior: two generators with the same seed produce identical
// vehicles, except the VIN which is derived from a crypto-random UUID.
func TestGenerator_DeterministicUnderSeed(t *testing.T) {
	a := New(42)
	b := New(42)

	carA := a.Car()
	carB := b.Car()

	carA.VIN = ""
	carB.VIN = ""

	if !reflect.DeepEqual(carA, carB) {
		t.Errorf("same seed produced different vehicles:\n%+v\n%+v", carA, carB)
	}

	if !reflect.DeepEqual(a.Profile(), b.Profile()) {
		t.Error("same seed produced different profiles")
	}
}

func TestFixedCodes(t *testing.T) {
	var codes CodeGenerator = FixedCodes{}

	for i := 0; i < 3; i++ {
		if got := codes.Code(); got != FixedUserCode {
			t.Errorf("expected %q, got %q", FixedUserCode, got)
		}
	}
}

func TestULIDCodes_Unique(t *testing.T) {
	var codes CodeGenerator = ULIDCodes{}

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		code := codes.Code()
		if len(code) != 26 {
			t.Fatalf("expected 26-char ULID, got %q", code)
		}
		if seen[code] {
			t.Fatalf("duplicate code %q", code)
		}
		seen[code] = true
	}
}
