package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/restaurant-booking/models"
	"github.com/yeremiapane/restaurant-booking/services"
	"github.com/yeremiapane/restaurant-booking/utils"
)

type TableController struct {
	service *services.TableService
}

func NewTableController(service *services.TableService) *TableController {
	return &TableController{service: service}
}

// GetAllTables -> menampilkan seluruh meja
func (tc *TableController) GetAllTables(c *gin.Context) {
	tables, err := tc.service.GetAll()
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of tables", tables)
}

// GetAvailableTables -> daftar meja dengan kursi >= ?seats
func (tc *TableController) GetAvailableTables(c *gin.Context) {
	seats, err := strconv.Atoi(c.DefaultQuery("seats", "1"))
	if err != nil || seats < 1 {
		utils.RespondError(c, http.StatusBadRequest, errors.New("seats must be a positive integer"))
		return
	}

	tables, err := tc.service.FindWithSeats(seats)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Available tables", tables)
}

// GetTableByID -> detail satu meja
func (tc *TableController) GetTableByID(c *gin.Context) {
	id, err := parseID(c.Param("table_id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	table, err := tc.service.GetByID(id)
	if err != nil {
		respondTableError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Table detail", table)
}

// CreateTable -> menambahkan meja baru
func (tc *TableController) CreateTable(c *gin.Context) {
	var req struct {
		Name     string `json:"name" binding:"required,max=100"`
		Seats    int    `json:"seats" binding:"required,gte=1"`
		Location string `json:"location" binding:"required,max=100"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	table := models.Table{
		Name:     req.Name,
		Seats:    req.Seats,
		Location: req.Location,
	}
	if err := tc.service.Create(&table); err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("New table created: %s (seats=%d, location=%s)", table.Name, table.Seats, table.Location)
	utils.RespondJSON(c, http.StatusCreated, "Table created successfully", table)
}

// UpdateTable -> update parsial data meja
func (tc *TableController) UpdateTable(c *gin.Context) {
	id, err := parseID(c.Param("table_id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var req struct {
		Name     *string `json:"name" binding:"omitempty,min=1,max=100"`
		Seats    *int    `json:"seats" binding:"omitempty,gte=1"`
		Location *string `json:"location" binding:"omitempty,min=1,max=100"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	table, err := tc.service.Update(id, services.TableUpdate{
		Name:     req.Name,
		Seats:    req.Seats,
		Location: req.Location,
	})
	if err != nil {
		respondTableError(c, err)
		return
	}

	utils.InfoLogger.Printf("Table %d updated", table.ID)
	utils.RespondJSON(c, http.StatusOK, "Table updated", table)
}

// DeleteTable -> menghapus meja beserta reservasinya
func (tc *TableController) DeleteTable(c *gin.Context) {
	id, err := parseID(c.Param("table_id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if err := tc.service.Delete(id); err != nil {
		respondTableError(c, err)
		return
	}

	utils.InfoLogger.Printf("Table %d deleted", id)
	c.Status(http.StatusNoContent)
}

func respondTableError(c *gin.Context, err error) {
	if errors.Is(err, services.ErrTableNotFound) {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}
	utils.RespondError(c, http.StatusInternalServerError, err)
}

func parseID(raw string) (uint, error) {
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, errors.New("invalid id parameter")
	}
	return uint(id), nil
}
