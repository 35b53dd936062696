package usecase

import (
	"context"
	"net/http"
	"sync"
	"testing"

	"airline-backoffice/internal/data/entity"
	"airline-backoffice/internal/data/repository"
	"airline-backoffice/internal/dto/request"
	"airline-backoffice/internal/seatmap"
	"airline-backoffice/internal/testutil"
	"airline-backoffice/pkg/failure"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestBookingService_ConcurrentCreateNeverOverbooks(t *testing.T) {
	db := testutil.PostgresStart(t)
	repo := repository.NewRepository(db, zap.NewNop())

	const seats, buyers = 3, 8
	fx := testutil.SeedFlight(t, repo, entity.SeatCounts{Economy: seats, Business: 1}, buyers)
	svc := NewBookingService(repo, seatmap.Default, zap.NewNop())

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		assigned []string
		rejected []error
	)
	for _, p := range fx.Passengers {
		wg.Add(1)
		go func(passengerID string) {
			defer wg.Done()
			resp, err := svc.Create(context.Background(), &request.CreateBookingRequest{
				FlightID:    fx.Flight.ID.String(),
				PassengerID: passengerID,
				SeatClass:   string(entity.SeatClassEconomy),
			})

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				rejected = append(rejected, err)
				return
			}
			assigned = append(assigned, resp.SeatNumber)
		}(p.ID.String())
	}
	wg.Wait()

	assert.ElementsMatch(t, []string{"10A", "10B", "10C"}, assigned)
	require.Len(t, rejected, buyers-seats)
	for _, err := range rejected {
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
		assert.EqualError(t, err, "No economy seats available")
	}

	count, err := repo.Booking.CountActiveByFlightAndClass(context.Background(), fx.Flight.ID, entity.SeatClassEconomy)
	require.NoError(t, err)
	assert.Equal(t, seats, count)
}
