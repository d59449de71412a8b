package models

import "time"

type Reservation struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	CustomerName    string    `gorm:"type:varchar(100);not null;index" json:"customer_name"`
	TableID         uint      `gorm:"not null;index" json:"table_id"`
	Table           Table     `gorm:"foreignKey:TableID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"table"`
	ReservationTime time.Time `gorm:"not null;index" json:"reservation_time"`
	DurationMinutes int       `gorm:"not null" json:"duration_minutes"`
	CreatedAt       time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt       time.Time `gorm:"not null" json:"updated_at"`
}

// EndTime -> waktu selesai reservasi (start + durasi)
func (r *Reservation) EndTime() time.Time {
	return r.ReservationTime.UTC().Add(time.Duration(r.DurationMinutes) * time.Minute)
}
