package service

import (
	"context"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"railbook/internal/db"
	"railbook/internal/errors"
	"railbook/internal/model"
	"railbook/internal/repository"
)

func newSeatStore(t *testing.T, seats ...model.SeatReservation) repository.SeatRepository {
	t.Helper()

	store, err := db.Open(filepath.Join(t.TempDir(), "reserve.db"))
	require.NoError(t, err)
	require.NoError(t, store.AutoMigrate(&model.SeatReservation{}))
	for i := range seats {
		require.NoError(t, store.Create(&seats[i]).Error)
	}
	return repository.NewSeatRepository(store)
}

func TestBookingService_Finalize(t *testing.T) {
	ctx := context.Background()
	booking := NewBookingService(newSeatStore(t,
		model.SeatReservation{SeatID: "1A", TrainID: "KTX301"},
		model.SeatReservation{SeatID: "1B", TrainID: "KTX301"},
	))

	reference, err := booking.Finalize(ctx, "KTX301", "1A", "alice")
	require.NoError(t, err)
	assert.NotEmpty(t, reference)

	status, err := booking.SeatMap(ctx, "KTX301")
	require.NoError(t, err)
	assert.Equal(t, "alice", status["1A"])
	assert.Equal(t, "", status["1B"])

	// A second attempt reports a conflict and never overwrites the owner.
	_, err = booking.Finalize(ctx, "KTX301", "1A", "bob")
	assert.Equal(t, errors.ErrSeatTaken, err)

	status, err = booking.SeatMap(ctx, "KTX301")
	require.NoError(t, err)
	assert.Equal(t, "alice", status["1A"])
}

func TestBookingService_Finalize_UnknownSeat(t *testing.T) {
	ctx := context.Background()
	booking := NewBookingService(newSeatStore(t,
		model.SeatReservation{SeatID: "1A", TrainID: "KTX301"},
	))

	_, err := booking.Finalize(ctx, "KTX301", "99Z", "alice")
	assert.Equal(t, errors.ErrSeatNotFound, err)

	_, err = booking.Finalize(ctx, "KTX999", "1A", "alice")
	assert.Equal(t, errors.ErrSeatNotFound, err)
}

func TestBookingService_CheckAvailable(t *testing.T) {
	ctx := context.Background()
	booking := NewBookingService(newSeatStore(t,
		model.SeatReservation{SeatID: "1A", TrainID: "KTX301"},
		model.SeatReservation{SeatID: "1B", TrainID: "KTX301"},
	))

	assert.NoError(t, booking.CheckAvailable(ctx, "KTX301", "1A"))

	_, err := booking.Finalize(ctx, "KTX301", "1A", "alice")
	require.NoError(t, err)

	assert.Equal(t, errors.ErrSeatTaken, booking.CheckAvailable(ctx, "KTX301", "1A"))
	assert.Equal(t, errors.ErrSeatNotFound, booking.CheckAvailable(ctx, "KTX301", "99Z"))
}

func TestBookingService_SeatMap_UntouchedSeatsStayFree(t *testing.T) {
	ctx := context.Background()
	booking := NewBookingService(newSeatStore(t,
		model.SeatReservation{SeatID: "1A", TrainID: "KTX301"},
		model.SeatReservation{SeatID: "1B", TrainID: "KTX301"},
		model.SeatReservation{SeatID: "1A", TrainID: "무궁화2680"},
	))

	_, err := booking.Finalize(ctx, "KTX301", "1A", "alice")
	require.NoError(t, err)

	status, err := booking.SeatMap(ctx, "무궁화2680")
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"1A": ""}, status)
}

func TestBookingService_ConcurrentFinalize(t *testing.T) {
	ctx := context.Background()
	booking := NewBookingService(newSeatStore(t,
		model.SeatReservation{SeatID: "1A", TrainID: "KTX301"},
	))

	const attempts = 8
	results := make([]error, attempts)

	var wg sync.WaitGroup
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			user := string(rune('a' + i))
			_, results[i] = booking.Finalize(ctx, "KTX301", "1A", user)
		}(i)
	}
	wg.Wait()

	var successes, conflicts int
	for _, err := range results {
		switch err {
		case nil:
			successes++
		case errors.ErrSeatTaken:
			conflicts++
		default:
			t.Fatalf("unexpected finalize error: %v", err)
		}
	}

	assert.Equal(t, 1, successes)
	assert.Equal(t, attempts-1, conflicts)
}
