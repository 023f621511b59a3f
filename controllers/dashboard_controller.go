package controllers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"hotel-manager/middleware"
	"hotel-manager/models"
	"hotel-manager/services"
	"hotel-manager/utils"
)

type DashboardController struct {
	dashboardSvc *services.DashboardService
	hotelSvc     *services.HotelService
	roomSvc      *services.RoomService
	customerSvc  *services.CustomerService
	bookingSvc   *services.BookingService
}

func NewDashboardController(
	dashboardSvc *services.DashboardService,
	hotelSvc *services.HotelService,
	roomSvc *services.RoomService,
	customerSvc *services.CustomerService,
	bookingSvc *services.BookingService,
) *DashboardController {
	return &DashboardController{
		dashboardSvc: dashboardSvc,
		hotelSvc:     hotelSvc,
		roomSvc:      roomSvc,
		customerSvc:  customerSvc,
		bookingSvc:   bookingSvc,
	}
}

// respondServiceError maps the service error taxonomy onto HTTP responses.
// Validation failures echo the field list back for form re-display; anything
// unexpected becomes a logged 500 with a generic message.
func respondServiceError(c *gin.Context, err error) {
	var verr *services.ValidationError
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "validation failed", "fields": verr.Fields})
	case errors.Is(err, services.ErrForbidden):
		utils.JSONError(c, http.StatusForbidden, "forbidden")
	case errors.Is(err, services.ErrNotFound), errors.Is(err, services.ErrIdentityMismatch):
		utils.JSONError(c, http.StatusNotFound, "not found")
	case errors.Is(err, services.ErrHasBookings):
		utils.JSONError(c, http.StatusConflict, "cannot delete: existing bookings reference this record")
	case errors.Is(err, services.ErrStaleRecord):
		utils.JSONError(c, http.StatusConflict, "the record was modified by another request; reload and try again")
	default:
		log.Printf("internal error: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "unexpected error")
	}
}

// Index routes an authenticated caller to the dashboard for their role.
func (dc *DashboardController) Index(c *gin.Context) {
	caller := middleware.CallerFrom(c)
	if caller.Role == services.RoleAdmin {
		utils.JSONOutcome(c, http.StatusOK, "success", "", "/Dashboard/Admin")
		return
	}
	utils.JSONOutcome(c, http.StatusOK, "success", "", "/Dashboard/Customer")
}

// Customer is the customer landing view: the room catalogue.
func (dc *DashboardController) Customer(c *gin.Context) {
	dc.AvailableRooms(c)
}

func (dc *DashboardController) AvailableRooms(c *gin.Context) {
	rooms, err := dc.roomSvc.Available(c.Request.Context(), middleware.CallerFrom(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, rooms)
}

func (dc *DashboardController) MyBookings(c *gin.Context) {
	bookings, err := dc.bookingSvc.MyBookings(c.Request.Context(), middleware.CallerFrom(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, bookings)
}

func (dc *DashboardController) Admin(c *gin.Context) {
	summary, err := dc.dashboardSvc.AdminSummary(c.Request.Context(), middleware.CallerFrom(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, summary)
}

func (dc *DashboardController) ManageCustomers(c *gin.Context) {
	customers, err := dc.customerSvc.List(c.Request.Context(), middleware.CallerFrom(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, customers)
}

func (dc *DashboardController) Rooms(c *gin.Context) {
	rooms, err := dc.roomSvc.List(c.Request.Context(), middleware.CallerFrom(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, rooms)
}

func (dc *DashboardController) Hotels(c *gin.Context) {
	hotels, err := dc.hotelSvc.List(c.Request.Context(), middleware.CallerFrom(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, hotels)
}

func (dc *DashboardController) CreateHotel(c *gin.Context) {
	var hotel models.Hotel
	if err := c.ShouldBindJSON(&hotel); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload")
		return
	}
	if err := dc.hotelSvc.Create(c.Request.Context(), middleware.CallerFrom(c), &hotel); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONOutcome(c, http.StatusCreated, "success", "Hotel created successfully!", "/Dashboard/Hotels")
}

// CreateRoomForm supplies the hotel list the create form needs.
func (dc *DashboardController) CreateRoomForm(c *gin.Context) {
	dc.Hotels(c)
}

func (dc *DashboardController) CreateRoom(c *gin.Context) {
	var room models.Room
	if err := c.ShouldBindJSON(&room); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload")
		return
	}
	if err := dc.roomSvc.Create(c.Request.Context(), middleware.CallerFrom(c), &room); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONOutcome(c, http.StatusCreated, "success", "Room created successfully!", "/Dashboard/Rooms")
}

func (dc *DashboardController) EditRoomForm(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	room, err := dc.roomSvc.GetByID(c.Request.Context(), middleware.CallerFrom(c), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, room)
}

func (dc *DashboardController) EditRoom(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var room models.Room
	if err := c.ShouldBindJSON(&room); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload")
		return
	}
	if err := dc.roomSvc.Update(c.Request.Context(), middleware.CallerFrom(c), id, &room); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONOutcome(c, http.StatusOK, "success", "Room updated successfully!", "/Dashboard/Rooms")
}

func (dc *DashboardController) DeleteRoom(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := dc.roomSvc.Delete(c.Request.Context(), middleware.CallerFrom(c), id); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONOutcome(c, http.StatusOK, "success", "Room deleted successfully!", "/Dashboard/Rooms")
}

func (dc *DashboardController) CreateCustomer(c *gin.Context) {
	var customer models.Customer
	if err := c.ShouldBindJSON(&customer); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload")
		return
	}
	if err := dc.customerSvc.Create(c.Request.Context(), middleware.CallerFrom(c), &customer); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONOutcome(c, http.StatusCreated, "success", "Customer created successfully!", "/Dashboard/ManageCustomers")
}

func (dc *DashboardController) DeleteCustomer(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := dc.customerSvc.Delete(c.Request.Context(), middleware.CallerFrom(c), id); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONOutcome(c, http.StatusOK, "success", "Customer deleted successfully!", "/Dashboard/ManageCustomers")
}

func pathID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid id")
		return 0, false
	}
	return uint(id), true
}
