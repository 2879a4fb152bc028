// SPDX-License-Identifier: MIT

package vehicle

// Row is one observation of the vehicle-count dataset.
type Row struct {
	ID1   int64
	ID2   int64
	Route string
	Moto  float64
	Car   float64
	RV    float64
	Bus   float64
	Truck float64
}

// CarType is the bucket of a car count.
type CarType string

const (
	Low    CarType = "low"
	Medium CarType = "medium"
	High   CarType = "high"
)

// Bucket bounds: car ≤ LowMax is low, car ≤ MediumMax is medium, else high.
const (
	LowMax    = 15.0
	MediumMax = 25.0
)

// BusFactor: a row is flagged when bus > BusFactor × mean(bus).
const BusFactor = 2.0

// TruckMin: a route is kept when any of its rows has truck > TruckMin.
const TruckMin = 7.0

// Classify buckets a car count.
func Classify(car float64) CarType {
	switch {
	case car <= LowMax:
		return Low
	case car <= MediumMax:
		return Medium
	default:
		return High
	}
}
