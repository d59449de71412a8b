package services

import (
	"errors"

	"github.com/yeremiapane/restaurant-booking/models"
	"gorm.io/gorm"
)

// TableService menangani operasi CRUD meja
type TableService struct {
	db *gorm.DB
}

func NewTableService(db *gorm.DB) *TableService {
	return &TableService{db: db}
}

// TableUpdate berisi field yang boleh diubah; nil berarti tidak diubah.
type TableUpdate struct {
	Name     *string
	Seats    *int
	Location *string
}

func (s *TableService) GetAll() ([]models.Table, error) {
	var tables []models.Table
	if err := s.db.Find(&tables).Error; err != nil {
		return nil, err
	}
	return tables, nil
}

func (s *TableService) GetByID(id uint) (*models.Table, error) {
	var table models.Table
	if err := s.db.First(&table, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTableNotFound
		}
		return nil, err
	}
	return &table, nil
}

// FindWithSeats -> daftar meja dengan kapasitas minimal tertentu
func (s *TableService) FindWithSeats(seats int) ([]models.Table, error) {
	var tables []models.Table
	if err := s.db.Where("seats >= ?", seats).Find(&tables).Error; err != nil {
		return nil, err
	}
	return tables, nil
}

func (s *TableService) Create(table *models.Table) error {
	return s.db.Create(table).Error
}

func (s *TableService) Update(id uint, upd TableUpdate) (*models.Table, error) {
	table, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	if upd.Name != nil {
		table.Name = *upd.Name
	}
	if upd.Seats != nil {
		table.Seats = *upd.Seats
	}
	if upd.Location != nil {
		table.Location = *upd.Location
	}

	if err := s.db.Save(table).Error; err != nil {
		return nil, err
	}
	return table, nil
}

// Delete menghapus meja beserta seluruh reservasinya dalam satu transaksi.
func (s *TableService) Delete(id uint) error {
	table, err := s.GetByID(id)
	if err != nil {
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("table_id = ?", table.ID).Delete(&models.Reservation{}).Error; err != nil {
			return err
		}
		return tx.Delete(table).Error
	})
}
