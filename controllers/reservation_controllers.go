package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/restaurant-booking/models"
	"github.com/yeremiapane/restaurant-booking/services"
	"github.com/yeremiapane/restaurant-booking/utils"
)

var errCreateReservation = errors.New("could not create reservation: table might not exist or time slot is already booked")

type ReservationController struct {
	service *services.ReservationService
}

func NewReservationController(service *services.ReservationService) *ReservationController {
	return &ReservationController{service: service}
}

// GetAllReservations -> menampilkan seluruh reservasi
func (rc *ReservationController) GetAllReservations(c *gin.Context) {
	reservations, err := rc.service.GetAll()
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of reservations", reservations)
}

// GetReservationByID -> detail satu reservasi
func (rc *ReservationController) GetReservationByID(c *gin.Context) {
	id, err := parseID(c.Param("reservation_id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	reservation, err := rc.service.GetByID(id)
	if err != nil {
		if errors.Is(err, services.ErrReservationNotFound) {
			utils.RespondError(c, http.StatusNotFound, err)
			return
		}
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Reservation detail", reservation)
}

// GetReservationsByTable -> seluruh reservasi pada satu meja
func (rc *ReservationController) GetReservationsByTable(c *gin.Context) {
	tableID, err := parseID(c.Param("table_id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	reservations, err := rc.service.GetByTableID(tableID)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Reservations for table", reservations)
}

// CreateReservation -> membuat reservasi baru dengan pengecekan bentrok
func (rc *ReservationController) CreateReservation(c *gin.Context) {
	var req struct {
		CustomerName    string    `json:"customer_name" binding:"required,max=100"`
		TableID         uint      `json:"table_id" binding:"required"`
		ReservationTime time.Time `json:"reservation_time" binding:"required"`
		DurationMinutes int       `json:"duration_minutes" binding:"required,gte=1,lte=480"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	reservation := models.Reservation{
		CustomerName:    req.CustomerName,
		TableID:         req.TableID,
		ReservationTime: req.ReservationTime,
		DurationMinutes: req.DurationMinutes,
	}
	if err := rc.service.Create(&reservation); err != nil {
		switch {
		case errors.Is(err, services.ErrPastReservationTime):
			utils.RespondError(c, http.StatusBadRequest, err)
		case errors.Is(err, services.ErrTableNotFound), errors.Is(err, services.ErrTimeConflict):
			// Digabung jadi satu pesan generik, tidak membedakan meja hilang vs bentrok
			utils.RespondError(c, http.StatusBadRequest, errCreateReservation)
		default:
			utils.RespondError(c, http.StatusInternalServerError, err)
		}
		return
	}

	utils.InfoLogger.Printf("Reservation %d created for table %d at %s (%d min)",
		reservation.ID, reservation.TableID, reservation.ReservationTime.UTC().Format(time.RFC3339), reservation.DurationMinutes)
	utils.RespondJSON(c, http.StatusCreated, "Reservation created successfully", reservation)
}

// UpdateReservation -> update parsial, cek bentrok diulang bila jadwal berubah
func (rc *ReservationController) UpdateReservation(c *gin.Context) {
	id, err := parseID(c.Param("reservation_id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var req struct {
		CustomerName    *string    `json:"customer_name" binding:"omitempty,min=1,max=100"`
		TableID         *uint      `json:"table_id" binding:"omitempty,gt=0"`
		ReservationTime *time.Time `json:"reservation_time"`
		DurationMinutes *int       `json:"duration_minutes" binding:"omitempty,gte=1,lte=480"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	reservation, err := rc.service.Update(id, services.ReservationUpdate{
		CustomerName:    req.CustomerName,
		TableID:         req.TableID,
		ReservationTime: req.ReservationTime,
		DurationMinutes: req.DurationMinutes,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrPastReservationTime):
			utils.RespondError(c, http.StatusBadRequest, err)
		case errors.Is(err, services.ErrReservationNotFound),
			errors.Is(err, services.ErrTableNotFound),
			errors.Is(err, services.ErrTimeConflict):
			utils.RespondError(c, http.StatusNotFound,
				errors.New("reservation not found or time slot is already booked"))
		default:
			utils.RespondError(c, http.StatusInternalServerError, err)
		}
		return
	}

	utils.InfoLogger.Printf("Reservation %d updated", reservation.ID)
	utils.RespondJSON(c, http.StatusOK, "Reservation updated", reservation)
}

// DeleteReservation -> menghapus reservasi
func (rc *ReservationController) DeleteReservation(c *gin.Context) {
	id, err := parseID(c.Param("reservation_id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if err := rc.service.Delete(id); err != nil {
		if errors.Is(err, services.ErrReservationNotFound) {
			utils.RespondError(c, http.StatusNotFound, err)
			return
		}
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("Reservation %d deleted", id)
	c.Status(http.StatusNoContent)
}
