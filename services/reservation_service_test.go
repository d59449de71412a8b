package services_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/yeremiapane/restaurant-booking/models"
	"github.com/yeremiapane/restaurant-booking/services"
)

func seedTable(t *testing.T, svc *services.TableService) models.Table {
	table := models.Table{Name: "T1", Seats: 4, Location: "Main Hall"}
	if err := svc.Create(&table); err != nil {
		t.Fatalf("failed to seed table: %v", err)
	}
	return table
}

func TestReservationCreate(t *testing.T) {
	db := setupTestDB(t)
	table := seedTable(t, services.NewTableService(db))
	svc := services.NewReservationService(db)

	start := time.Now().Add(time.Hour).UTC()
	res := models.Reservation{
		CustomerName:    "John Doe",
		TableID:         table.ID,
		ReservationTime: start,
		DurationMinutes: 120,
	}
	err := svc.Create(&res)
	assert.NoError(t, err)
	assert.NotZero(t, res.ID)
	assert.False(t, res.CreatedAt.IsZero())
	// Response memuat representasi meja
	assert.Equal(t, table.ID, res.Table.ID)
	assert.Equal(t, "T1", res.Table.Name)
}

func TestReservationCreatePastTime(t *testing.T) {
	db := setupTestDB(t)
	table := seedTable(t, services.NewTableService(db))
	svc := services.NewReservationService(db)

	res := models.Reservation{
		CustomerName:    "Late Larry",
		TableID:         table.ID,
		ReservationTime: time.Now().Add(-time.Hour),
		DurationMinutes: 60,
	}
	assert.ErrorIs(t, svc.Create(&res), services.ErrPastReservationTime)
}

func TestReservationCreateTableMissing(t *testing.T) {
	db := setupTestDB(t)
	svc := services.NewReservationService(db)

	res := models.Reservation{
		CustomerName:    "Nobody",
		TableID:         999,
		ReservationTime: time.Now().Add(time.Hour),
		DurationMinutes: 60,
	}
	assert.ErrorIs(t, svc.Create(&res), services.ErrTableNotFound)
}

// Skenario: A mulai +1h selama 60m, B mulai +1h30m bentrok, C mulai +2h
// (tepat saat A selesai) tidak bentrok.
func TestReservationOverlap(t *testing.T) {
	db := setupTestDB(t)
	table := seedTable(t, services.NewTableService(db))
	svc := services.NewReservationService(db)

	base := time.Now().Add(time.Hour).UTC().Truncate(time.Second)

	a := models.Reservation{CustomerName: "A", TableID: table.ID, ReservationTime: base, DurationMinutes: 60}
	assert.NoError(t, svc.Create(&a))

	b := models.Reservation{CustomerName: "B", TableID: table.ID, ReservationTime: base.Add(30 * time.Minute), DurationMinutes: 60}
	assert.ErrorIs(t, svc.Create(&b), services.ErrTimeConflict)

	c := models.Reservation{CustomerName: "C", TableID: table.ID, ReservationTime: base.Add(60 * time.Minute), DurationMinutes: 60}
	assert.NoError(t, svc.Create(&c))
}

func TestReservationOverlapCandidateCoversExisting(t *testing.T) {
	db := setupTestDB(t)
	table := seedTable(t, services.NewTableService(db))
	svc := services.NewReservationService(db)

	base := time.Now().Add(2 * time.Hour).UTC()

	inner := models.Reservation{CustomerName: "inner", TableID: table.ID, ReservationTime: base.Add(30 * time.Minute), DurationMinutes: 30}
	assert.NoError(t, svc.Create(&inner))

	// Kandidat menutupi seluruh interval yang sudah ada
	outer := models.Reservation{CustomerName: "outer", TableID: table.ID, ReservationTime: base, DurationMinutes: 120}
	assert.ErrorIs(t, svc.Create(&outer), services.ErrTimeConflict)
}

func TestReservationOverlapDifferentTables(t *testing.T) {
	db := setupTestDB(t)
	tableSvc := services.NewTableService(db)
	svc := services.NewReservationService(db)

	first := seedTable(t, tableSvc)
	second := models.Table{Name: "T2", Seats: 2, Location: "Terrace"}
	assert.NoError(t, tableSvc.Create(&second))

	start := time.Now().Add(time.Hour).UTC()
	assert.NoError(t, svc.Create(&models.Reservation{CustomerName: "A", TableID: first.ID, ReservationTime: start, DurationMinutes: 60}))
	// Interval sama di meja berbeda tidak bentrok
	assert.NoError(t, svc.Create(&models.Reservation{CustomerName: "B", TableID: second.ID, ReservationTime: start, DurationMinutes: 60}))
}

func TestReservationOverlapTimezoneNormalized(t *testing.T) {
	db := setupTestDB(t)
	table := seedTable(t, services.NewTableService(db))
	svc := services.NewReservationService(db)

	loc := time.FixedZone("WIB", 7*3600)
	start := time.Now().Add(time.Hour).UTC().Truncate(time.Second)

	assert.NoError(t, svc.Create(&models.Reservation{CustomerName: "utc", TableID: table.ID, ReservationTime: start, DurationMinutes: 60}))

	// Instan yang sama dinyatakan dalam zona lain tetap terdeteksi bentrok
	sameInstant := start.In(loc)
	conflict, err := svc.HasTimeConflict(table.ID, sameInstant, 60, 0)
	assert.NoError(t, err)
	assert.True(t, conflict)
}

func TestReservationUpdatePartialMerge(t *testing.T) {
	db := setupTestDB(t)
	table := seedTable(t, services.NewTableService(db))
	svc := services.NewReservationService(db)

	start := time.Now().Add(time.Hour).UTC().Truncate(time.Second)
	res := models.Reservation{CustomerName: "Original", TableID: table.ID, ReservationTime: start, DurationMinutes: 60}
	assert.NoError(t, svc.Create(&res))

	// Hanya ubah nama; jadwal tidak berubah
	name := "Renamed"
	updated, err := svc.Update(res.ID, services.ReservationUpdate{CustomerName: &name})
	assert.NoError(t, err)
	assert.Equal(t, "Renamed", updated.CustomerName)
	assert.True(t, updated.ReservationTime.UTC().Equal(start))
	assert.Equal(t, 60, updated.DurationMinutes)
}

func TestReservationUpdateToConflict(t *testing.T) {
	db := setupTestDB(t)
	table := seedTable(t, services.NewTableService(db))
	svc := services.NewReservationService(db)

	base := time.Now().Add(time.Hour).UTC().Truncate(time.Second)
	a := models.Reservation{CustomerName: "A", TableID: table.ID, ReservationTime: base, DurationMinutes: 60}
	b := models.Reservation{CustomerName: "B", TableID: table.ID, ReservationTime: base.Add(2 * time.Hour), DurationMinutes: 60}
	assert.NoError(t, svc.Create(&a))
	assert.NoError(t, svc.Create(&b))

	// Geser B ke tengah interval A -> bentrok
	conflictTime := base.Add(30 * time.Minute)
	_, err := svc.Update(b.ID, services.ReservationUpdate{ReservationTime: &conflictTime})
	assert.ErrorIs(t, err, services.ErrTimeConflict)

	// Geser B ke slot kosong -> sukses, field lain tetap
	freeTime := base.Add(4 * time.Hour)
	updated, err := svc.Update(b.ID, services.ReservationUpdate{ReservationTime: &freeTime})
	assert.NoError(t, err)
	assert.True(t, updated.ReservationTime.UTC().Equal(freeTime))
	assert.Equal(t, "B", updated.CustomerName)
	assert.Equal(t, 60, updated.DurationMinutes)
}

func TestReservationUpdateExcludesSelf(t *testing.T) {
	db := setupTestDB(t)
	table := seedTable(t, services.NewTableService(db))
	svc := services.NewReservationService(db)

	start := time.Now().Add(time.Hour).UTC().Truncate(time.Second)
	res := models.Reservation{CustomerName: "Solo", TableID: table.ID, ReservationTime: start, DurationMinutes: 60}
	assert.NoError(t, svc.Create(&res))

	// Geser 15 menit; interval baru beririsan dengan interval lamanya sendiri
	shifted := start.Add(15 * time.Minute)
	updated, err := svc.Update(res.ID, services.ReservationUpdate{ReservationTime: &shifted})
	assert.NoError(t, err)
	assert.True(t, updated.ReservationTime.UTC().Equal(shifted))
}

func TestReservationUpdateNotFound(t *testing.T) {
	db := setupTestDB(t)
	svc := services.NewReservationService(db)

	name := "ghost"
	_, err := svc.Update(404, services.ReservationUpdate{CustomerName: &name})
	assert.ErrorIs(t, err, services.ErrReservationNotFound)
}

func TestReservationGetByTableID(t *testing.T) {
	db := setupTestDB(t)
	tableSvc := services.NewTableService(db)
	svc := services.NewReservationService(db)

	first := seedTable(t, tableSvc)
	second := models.Table{Name: "T2", Seats: 2, Location: "Bar"}
	assert.NoError(t, tableSvc.Create(&second))

	start := time.Now().Add(time.Hour).UTC()
	assert.NoError(t, svc.Create(&models.Reservation{CustomerName: "A", TableID: first.ID, ReservationTime: start, DurationMinutes: 60}))
	assert.NoError(t, svc.Create(&models.Reservation{CustomerName: "B", TableID: first.ID, ReservationTime: start.Add(2 * time.Hour), DurationMinutes: 60}))
	assert.NoError(t, svc.Create(&models.Reservation{CustomerName: "C", TableID: second.ID, ReservationTime: start, DurationMinutes: 60}))

	reservations, err := svc.GetByTableID(first.ID)
	assert.NoError(t, err)
	assert.Len(t, reservations, 2)
	for _, r := range reservations {
		assert.Equal(t, first.ID, r.TableID)
	}
}

func TestReservationDelete(t *testing.T) {
	db := setupTestDB(t)
	table := seedTable(t, services.NewTableService(db))
	svc := services.NewReservationService(db)

	res := models.Reservation{CustomerName: "Gone", TableID: table.ID, ReservationTime: time.Now().Add(time.Hour), DurationMinutes: 60}
	assert.NoError(t, svc.Create(&res))

	assert.NoError(t, svc.Delete(res.ID))
	assert.ErrorIs(t, svc.Delete(res.ID), services.ErrReservationNotFound)
}
