package testutil

import (
	"context"
	"fmt"
	"testing"
	"time"

	"airline-backoffice/internal/data/entity"
	"airline-backoffice/internal/data/repository"

	"github.com/google/uuid"
)

// Fixture is one bookable flight and the rows it depends on.
type Fixture struct {
	Airline    entity.Airline
	Origin     entity.Airport
	Dest       entity.Airport
	Aircraft   entity.Aircraft
	Flight     entity.Flight
	Passengers []entity.Passenger
}

// SeedFlight inserts an airline, two airports, an aircraft with the given
// cabin, a scheduled flight departing tomorrow and n passengers.
func SeedFlight(t *testing.T, repo *repository.Repository, cabin entity.SeatCounts, passengers int) Fixture {
	t.Helper()

	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Second)
	departure := now.Add(24 * time.Hour)

	fx := Fixture{
		Airline: entity.Airline{
			Base:     newBase(now),
			Name:     "Garuda Indonesia",
			Code:     "GA",
			Country:  "Indonesia",
			IsActive: true,
		},
		Origin: entity.Airport{
			Base:     newBase(now),
			Name:     "Soekarno-Hatta International",
			Code:     "CGK",
			City:     "Jakarta",
			Country:  "Indonesia",
			Timezone: "Asia/Jakarta",
		},
		Dest: entity.Airport{
			Base:     newBase(now),
			Name:     "Ngurah Rai International",
			Code:     "DPS",
			City:     "Denpasar",
			Country:  "Indonesia",
			Timezone: "Asia/Makassar",
		},
	}

	fx.Aircraft = entity.Aircraft{
		Base:            newBase(now),
		AirlineID:       fx.Airline.ID,
		Model:           "Boeing 737-800",
		Registration:    "PK-GFA",
		TotalSeats:      cabin.Economy + cabin.Business + cabin.FirstClass,
		EconomySeats:    cabin.Economy,
		BusinessSeats:   cabin.Business,
		FirstClassSeats: cabin.FirstClass,
		Status:          entity.AircraftStatusActive,
	}

	fx.Flight = entity.Flight{
		Base:                 newBase(now),
		FlightNumber:         "GA404",
		AirlineID:            fx.Airline.ID,
		AircraftID:           fx.Aircraft.ID,
		OriginAirportID:      fx.Origin.ID,
		DestinationAirportID: fx.Dest.ID,
		DepartureTime:        departure,
		ArrivalTime:          departure.Add(110 * time.Minute),
		DurationMinutes:      110,
		EconomyPrice:         120,
		BusinessPrice:        480,
		FirstClassPrice:      950,
		Status:               entity.FlightStatusScheduled,
	}

	must(t, repo.Airline.Create(ctx, &fx.Airline))
	must(t, repo.Airport.Create(ctx, &fx.Origin))
	must(t, repo.Airport.Create(ctx, &fx.Dest))
	must(t, repo.Aircraft.Create(ctx, &fx.Aircraft))
	must(t, repo.Flight.Create(ctx, &fx.Flight))

	for i := range passengers {
		p := entity.Passenger{
			Base:      newBase(now),
			FirstName: "Passenger",
			LastName:  fmt.Sprintf("%02d", i+1),
			Email:     fmt.Sprintf("passenger%02d@example.com", i+1),
			Phone:     "+6281200000000",
		}
		must(t, repo.Passenger.Create(ctx, &p))
		fx.Passengers = append(fx.Passengers, p)
	}

	return fx
}

func newBase(now time.Time) entity.Base {
	return entity.Base{ID: uuid.New(), CreatedAt: now, UpdatedAt: now}
}

func must(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("seed: %v", err)
	}
}
