package domain

import "fmt"

type VehicleClass string

const (
	VehicleCar   VehicleClass = "car"
	VehicleBus   VehicleClass = "bus"
	VehicleLorry VehicleClass = "lorry"
)

// VehicleClasses is the closed set of supported classes.
var VehicleClasses = []VehicleClass{VehicleCar, VehicleBus, VehicleLorry}

func ParseVehicleClass(s string) (VehicleClass, error) {
	switch VehicleClass(s) {
	case VehicleCar, VehicleBus, VehicleLorry:
		return VehicleClass(s), nil
	default:
		return "", fmt.Errorf("%w: unknown vehicle class %q", ErrValidation, s)
	}
}
