package app

import (
	"context"

	"github.com/shravanmandadapu71-sys/parkx/internal/domain"
	"github.com/wb-go/wbf/logger"
)

// seedDemoPlots registers a couple of plots so the API is explorable
// without going through the land-upload flow first.
func (a *App) seedDemoPlots(ctx context.Context) {
	seeds := []domain.RegisterPlotInput{
		{
			Name:         "Plot A",
			OwnerName:    "R. Sharma",
			RegNumber:    "TS-09-4412",
			SurveyNumber: "SY-118/2",
			DocumentRef:  "demo/plot-a.pdf",
			Location:     domain.Location{Lat: 17.4401, Lng: 78.3489},
			Capacity: map[domain.VehicleClass]int{
				domain.VehicleCar: 5,
				domain.VehicleBus: 2,
			},
			InitialOccupied: map[domain.VehicleClass]int{
				domain.VehicleCar: 2,
				domain.VehicleBus: 1,
			},
		},
		{
			Name:         "Warehouse Yard",
			OwnerName:    "K. Reddy",
			RegNumber:    "TS-10-0078",
			SurveyNumber: "SY-201/5",
			DocumentRef:  "demo/warehouse-yard.pdf",
			Location:     domain.Location{Lat: 17.4932, Lng: 78.3912},
			Capacity: map[domain.VehicleClass]int{
				domain.VehicleCar:   3,
				domain.VehicleLorry: 2,
			},
			InitialOccupied: map[domain.VehicleClass]int{
				domain.VehicleCar:   3,
				domain.VehicleLorry: 1,
			},
		},
	}

	for _, in := range seeds {
		plot, err := a.registry.RegisterPlot(ctx, in)
		if err != nil {
			a.log.Error("seed plot failed",
				logger.String("name", in.Name),
				logger.String("error", err.Error()),
			)
			continue
		}
		a.log.LogAttrs(ctx, logger.InfoLevel, "seeded demo plot",
			logger.String("id", plot.ID),
			logger.String("name", plot.Name),
		)
	}
}
