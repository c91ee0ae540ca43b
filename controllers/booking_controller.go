package controllers

import (
	"net/http"
	"strconv"
	"time"

	"nomada-backend/models"
	"nomada-backend/services"
	"nomada-backend/utils"

	"github.com/gin-gonic/gin"
)

type BookingController struct {
	Bookings *services.BookingService
}

func NewBookingController(bookings *services.BookingService) *BookingController {
	return &BookingController{Bookings: bookings}
}

const dateLayout = "2006-01-02"

func parseDate(raw string) (time.Time, bool) {
	if t, err := time.Parse(dateLayout, raw); err == nil {
		return t, true
	}
	t, err := time.Parse(time.RFC3339, raw)
	return t, err == nil
}

func idParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid id")
		return 0, false
	}
	return uint(id), true
}

type createBookingPayload struct {
	Guest            models.Guest `json:"guest"`
	RoomNumber       string       `json:"roomNumber" binding:"required"`
	CheckInDate      string       `json:"checkInDate" binding:"required"`
	CheckOutDate     string       `json:"checkOutDate" binding:"required"`
	TotalAmountCents int64        `json:"totalAmountCents"`
	DoorCode         string       `json:"doorCode"`
}

func (bc *BookingController) Create(c *gin.Context) {
	var payload createBookingPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}

	checkIn, ok := parseDate(payload.CheckInDate)
	if !ok {
		utils.JSONError(c, http.StatusBadRequest, "invalid check-in date")
		return
	}
	checkOut, ok := parseDate(payload.CheckOutDate)
	if !ok {
		utils.JSONError(c, http.StatusBadRequest, "invalid check-out date")
		return
	}

	booking, err := bc.Bookings.CreateBooking(
		payload.Guest, payload.RoomNumber, checkIn, checkOut,
		payload.TotalAmountCents, payload.DoorCode,
	)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, booking)
}

// Availability answers GET /bookings/availability?room=304&checkIn=...&checkOut=...
func (bc *BookingController) Availability(c *gin.Context) {
	room := c.Query("room")
	checkIn, inOK := parseDate(c.Query("checkIn"))
	checkOut, outOK := parseDate(c.Query("checkOut"))
	if room == "" || !inOK || !outOK {
		utils.JSONError(c, http.StatusBadRequest, "room, checkIn and checkOut are required")
		return
	}

	available, err := bc.Bookings.CheckAvailability(room, checkIn, checkOut)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"available": available})
}

func (bc *BookingController) List(c *gin.Context) {
	bookings, err := bc.Bookings.GetAll()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, bookings)
}

func (bc *BookingController) Get(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	booking, err := bc.Bookings.GetByID(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, booking)
}

type bookingStatusPayload struct {
	Status string `json:"status" binding:"required"`
}

func (bc *BookingController) UpdateStatus(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var payload bookingStatusPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}
	booking, err := bc.Bookings.UpdateBookingStatus(id, payload.Status)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, booking)
}

func (bc *BookingController) SignContract(c *gin.Context) {
	bc.complianceAction(c, bc.Bookings.SignContract)
}

func (bc *BookingController) VerifyIdentity(c *gin.Context) {
	bc.complianceAction(c, bc.Bookings.VerifyIdentity)
}

func (bc *BookingController) MarkDepositPaid(c *gin.Context) {
	bc.complianceAction(c, bc.Bookings.MarkDepositPaid)
}

func (bc *BookingController) complianceAction(c *gin.Context, fn func(uint) (*models.Booking, error)) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	booking, err := fn(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, booking)
}

func (bc *BookingController) IssueDoorCode(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	code, err := bc.Bookings.IssueDoorCode(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"doorCode": code})
}

type unlockPayload struct {
	Code string `json:"code" binding:"required"`
}

// Unlock verifies the code a guest punched into the door panel for a room.
func (bc *BookingController) Unlock(c *gin.Context) {
	var payload unlockPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}
	if err := bc.Bookings.VerifyDoorCode(c.Param("number"), payload.Code); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"unlocked": true})
}
