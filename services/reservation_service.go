package services

import (
	"errors"
	"time"

	"github.com/yeremiapane/restaurant-booking/models"
	"gorm.io/gorm"
)

// ReservationService menangani operasi reservasi meja, termasuk pengecekan
// bentrok jadwal pada satu meja.
//
// Catatan: pengecekan bentrok hanya di layer service, tanpa exclusion
// constraint di database. Dua request create yang berjalan bersamaan untuk
// meja dan rentang waktu yang sama bisa sama-sama lolos.
type ReservationService struct {
	db *gorm.DB
}

func NewReservationService(db *gorm.DB) *ReservationService {
	return &ReservationService{db: db}
}

// ReservationUpdate berisi field yang boleh diubah; nil berarti tidak diubah.
type ReservationUpdate struct {
	CustomerName    *string
	TableID         *uint
	ReservationTime *time.Time
	DurationMinutes *int
}

func (s *ReservationService) GetAll() ([]models.Reservation, error) {
	var reservations []models.Reservation
	if err := s.db.Preload("Table").Find(&reservations).Error; err != nil {
		return nil, err
	}
	return reservations, nil
}

func (s *ReservationService) GetByID(id uint) (*models.Reservation, error) {
	var reservation models.Reservation
	if err := s.db.Preload("Table").First(&reservation, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReservationNotFound
		}
		return nil, err
	}
	return &reservation, nil
}

func (s *ReservationService) GetByTableID(tableID uint) ([]models.Reservation, error) {
	var reservations []models.Reservation
	if err := s.db.Preload("Table").Where("table_id = ?", tableID).Find(&reservations).Error; err != nil {
		return nil, err
	}
	return reservations, nil
}

// HasTimeConflict mengecek apakah interval [start, start+duration) bentrok
// dengan reservasi lain pada meja yang sama. excludeID dipakai saat update
// agar reservasi itu sendiri tidak dihitung. Semua waktu dinormalisasi ke UTC
// sebelum dibandingkan; interval yang bersinggungan tepat di ujung (selesai
// persis saat yang lain mulai) tidak dianggap bentrok.
func (s *ReservationService) HasTimeConflict(tableID uint, start time.Time, durationMinutes int, excludeID uint) (bool, error) {
	query := s.db.Where("table_id = ?", tableID)
	if excludeID != 0 {
		query = query.Where("id != ?", excludeID)
	}

	var existing []models.Reservation
	if err := query.Find(&existing).Error; err != nil {
		return false, err
	}

	candStart := start.UTC()
	candEnd := candStart.Add(time.Duration(durationMinutes) * time.Minute)

	for _, r := range existing {
		resStart := r.ReservationTime.UTC()
		resEnd := r.EndTime()
		if resStart.Before(candEnd) && candStart.Before(resEnd) {
			return true, nil
		}
	}
	return false, nil
}

// Create memvalidasi lalu menyimpan reservasi baru.
// Urutan pengecekan: waktu harus di masa depan, meja harus ada, jadwal tidak
// boleh bentrok.
func (s *ReservationService) Create(reservation *models.Reservation) error {
	if !reservation.ReservationTime.UTC().After(time.Now().UTC()) {
		return ErrPastReservationTime
	}

	var table models.Table
	if err := s.db.First(&table, reservation.TableID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrTableNotFound
		}
		return err
	}

	conflict, err := s.HasTimeConflict(reservation.TableID, reservation.ReservationTime, reservation.DurationMinutes, 0)
	if err != nil {
		return err
	}
	if conflict {
		return ErrTimeConflict
	}

	if err := s.db.Omit("Table").Create(reservation).Error; err != nil {
		return err
	}
	return s.db.Preload("Table").First(reservation, reservation.ID).Error
}

// Update menerapkan perubahan parsial. Jika table_id, reservation_time, atau
// duration_minutes ikut berubah, pengecekan bentrok diulang dengan nilai
// gabungan (nilai lama untuk field yang tidak dikirim), tanpa menghitung
// reservasi yang sedang diupdate.
func (s *ReservationService) Update(id uint, upd ReservationUpdate) (*models.Reservation, error) {
	reservation, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	if upd.ReservationTime != nil && !upd.ReservationTime.UTC().After(time.Now().UTC()) {
		return nil, ErrPastReservationTime
	}

	if upd.TableID != nil || upd.ReservationTime != nil || upd.DurationMinutes != nil {
		tableID := reservation.TableID
		start := reservation.ReservationTime
		duration := reservation.DurationMinutes
		if upd.TableID != nil {
			tableID = *upd.TableID
		}
		if upd.ReservationTime != nil {
			start = *upd.ReservationTime
		}
		if upd.DurationMinutes != nil {
			duration = *upd.DurationMinutes
		}

		if upd.TableID != nil {
			var table models.Table
			if err := s.db.First(&table, tableID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return nil, ErrTableNotFound
				}
				return nil, err
			}
		}

		conflict, err := s.HasTimeConflict(tableID, start, duration, reservation.ID)
		if err != nil {
			return nil, err
		}
		if conflict {
			return nil, ErrTimeConflict
		}
	}

	if upd.CustomerName != nil {
		reservation.CustomerName = *upd.CustomerName
	}
	if upd.TableID != nil {
		reservation.TableID = *upd.TableID
	}
	if upd.ReservationTime != nil {
		reservation.ReservationTime = *upd.ReservationTime
	}
	if upd.DurationMinutes != nil {
		reservation.DurationMinutes = *upd.DurationMinutes
	}

	if err := s.db.Omit("Table").Save(reservation).Error; err != nil {
		return nil, err
	}
	return s.GetByID(reservation.ID)
}

func (s *ReservationService) Delete(id uint) error {
	var reservation models.Reservation
	if err := s.db.First(&reservation, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrReservationNotFound
		}
		return err
	}
	return s.db.Delete(&reservation).Error
}
