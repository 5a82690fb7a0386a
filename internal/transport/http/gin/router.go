package httpgin

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/mashfiq/seatly/internal/domain"
	redisrepo "github.com/mashfiq/seatly/internal/repository/redis"
	"github.com/mashfiq/seatly/internal/service"
	"github.com/mashfiq/seatly/internal/service/assignment"
	"github.com/mashfiq/seatly/internal/service/billing"
	"github.com/mashfiq/seatly/internal/service/catalog"
	"github.com/mashfiq/seatly/internal/service/occupancy"
	"github.com/mashfiq/seatly/internal/service/seats"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func NewRouter(
	svcs *service.Services,
	idem *redisrepo.IdempotencyStore,
	logger *slog.Logger,
	middlewares ...gin.HandlerFunc,
) *gin.Engine {
	r := gin.New()

	r.Use(gin.Recovery(), LoggingMiddleware(logger), RequestIDMiddleware(), CORS())
	for _, m := range middlewares {
		if m != nil {
			r.Use(m)
		}
	}

	// Swagger UI
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// health
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Public API
	r.GET("/properties/:id", handleGetProperty(svcs))
	r.GET("/properties/:id/occupancy", handleGetOccupancy(svcs))

	r.GET("/layouts/:propertyID", handleGetLayout(svcs))
	r.POST("/layouts/:propertyID", handleGenerateLayout(svcs))

	r.GET("/seats", handleListSeats(svcs))
	r.POST("/seats/bulk", handleBulkCreateSeats(svcs))
	r.PUT("/seats/:id/status", handleUpdateSeatStatus(svcs))
	r.DELETE("/seats/:id", handleDeleteSeat(svcs))

	r.GET("/shifts", handleListShifts(svcs))

	r.POST("/bookings", handleCreateBooking(svcs, idem))

	r.GET("/assignments/:id", handleGetAssignment(svcs))
	r.POST("/assignments/:id/release", handleReleaseAssignment(svcs))
	r.POST("/assignments/:id/transfer", handleTransferSeat(svcs))

	r.GET("/students/:id", handleGetStudent(svcs))
	r.GET("/students/:id/billing", handleGetStudentBilling(svcs))

	r.PUT("/payments/:id/collect", handleCollectPayment(svcs))
	r.PUT("/payments/:id/complete", handleCompletePayment(svcs))
	r.PUT("/payments/:id/refund", handleRefundPayment(svcs))
	r.GET("/payments/overdue", handleListOverduePayments(svcs))

	// Admin-API
	// TODO: add admin middleware
	adm := r.Group("/admin")
	{
		adm.POST("/properties", handleCreateProperty(svcs))
		adm.POST("/shifts", handleCreateShift(svcs))
		adm.POST("/assignments", handleAssignSeat(svcs))
		adm.PUT("/students/:id/status", handleSetStudentStatus(svcs))
		adm.POST("/properties/:id/seats/clear", handleClearPropertySeats(svcs))
	}

	return r
}

// --- Handlers with Swagger annotations ---

// @Summary  Get property
// @Param    id  path  int  true  "Property ID"
// @Success  200  {object}  domain.Property
// @Failure  404  {object}  ErrorResponse
// @Router   /properties/{id} [get]
func handleGetProperty(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		propertyID, ok := parseInt64Param(c, "id")
		if !ok {
			return
		}
		p, err := svcs.Catalog.GetProperty(c.Request.Context(), propertyID)
		if err != nil {
			respondErr(c, err)
			return
		}
		// ETag + Cache-Control 60s
		writeJSONWithCache(c, http.StatusOK, p, "public, max-age=60", true)
	}
}

// @Summary  Occupancy counters by seat status
// @Param    id       path   int     true   "Property ID"
// @Param    section  query  string  false  "limit to one section"
// @Success  200  {object}  domain.SeatCounts
// @Failure  404  {object}  ErrorResponse
// @Router   /properties/{id}/occupancy [get]
func handleGetOccupancy(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		propertyID, ok := parseInt64Param(c, "id")
		if !ok {
			return
		}
		cnt, err := svcs.Occupancy.Summarize(
			c.Request.Context(),
			propertyID,
			c.Query("section"),
		)
		if err != nil {
			respondErr(c, err)
			return
		}
		// always fresh: counters move with every assignment
		c.Header("Cache-Control", "no-store")
		c.JSON(http.StatusOK, cnt)
	}
}

// @Summary  Get property layout
// @Param    propertyID  path  int  true  "Property ID"
// @Success  200  {object}  domain.Layout
// @Failure  404  {object}  ErrorResponse
// @Router   /layouts/{propertyID} [get]
func handleGetLayout(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		propertyID, ok := parseInt64Param(c, "propertyID")
		if !ok {
			return
		}
		l, err := svcs.Catalog.GetLayout(c.Request.Context(), propertyID)
		if err != nil {
			respondErr(c, err)
			return
		}
		// ETag + Cache-Control 60s
		writeJSONWithCache(c, http.StatusOK, l, "public, max-age=60", true)
	}
}

// @Summary  Generate and store the seat layout for a property
// @Param    propertyID  path  int  true  "Property ID"
// @Success  201  {object}  domain.Layout
// @Failure  404  {object}  ErrorResponse
// @Router   /layouts/{propertyID} [post]
func handleGenerateLayout(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		propertyID, ok := parseInt64Param(c, "propertyID")
		if !ok {
			return
		}
		l, err := svcs.Catalog.SaveLayout(c.Request.Context(), propertyID)
		if err != nil {
			respondErr(c, err)
			return
		}
		c.JSON(http.StatusCreated, l)
	}
}

// @Summary  List seats
// @Param    property_id  query  int     true   "Property ID"
// @Param    status       query  string  false  "available|occupied|prebooked|maintenance"
// @Param    section      query  string  false  "section filter"
// @Success  200  {array}   domain.Seat
// @Failure  400  {object}  ErrorResponse
// @Router   /seats [get]
func handleListSeats(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		propertyID, err := strconv.ParseInt(c.Query("property_id"), 10, 64)
		if err != nil {
			badRequest(c, "invalid property_id")
			return
		}
		out, err := svcs.Seats.List(
			c.Request.Context(),
			propertyID,
			domain.SeatStatus(c.Query("status")),
			c.Query("section"),
		)
		if err != nil {
			respondErr(c, err)
			return
		}
		// ETag + Cache-Control 15s (seat state churns)
		writeJSONWithCache(c, http.StatusOK, out, "public, max-age=15", true)
	}
}

// @Summary  Materialize seats from the stored layout
// @Param    req  body  BulkCreateSeatsRequest  true  "payload"
// @Success  201  {array}   domain.Seat
// @Failure  404  {object}  ErrorResponse
// @Failure  409  {object}  ErrorResponse  "seats already exist"
// @Router   /seats/bulk [post]
func handleBulkCreateSeats(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req BulkCreateSeatsRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err.Error())
			return
		}
		created, err := svcs.Seats.BulkCreateFromLayout(
			c.Request.Context(),
			req.PropertyID,
			req.Section,
		)
		if err != nil {
			respondErr(c, err)
			return
		}
		c.JSON(http.StatusCreated, created)
	}
}

// @Summary  Update seat status
// @Param    id   path  int                      true  "Seat ID"
// @Param    req  body  UpdateSeatStatusRequest  true  "payload"
// @Success  200  {object}  domain.Seat
// @Failure  400  {object}  ErrorResponse
// @Failure  404  {object}  ErrorResponse
// @Router   /seats/{id}/status [put]
func handleUpdateSeatStatus(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		seatID, ok := parseInt64Param(c, "id")
		if !ok {
			return
		}
		var req UpdateSeatStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err.Error())
			return
		}
		s, err := svcs.Seats.UpdateStatus(
			c.Request.Context(),
			seatID,
			domain.SeatStatus(req.Status),
		)
		if err != nil {
			respondErr(c, err)
			return
		}
		c.JSON(http.StatusOK, s)
	}
}

// @Summary  Delete seat
// @Param    id  path  int  true  "Seat ID"
// @Success  204
// @Failure  409  {object}  ErrorResponse  "seat has an active assignment"
// @Router   /seats/{id} [delete]
func handleDeleteSeat(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		seatID, ok := parseInt64Param(c, "id")
		if !ok {
			return
		}
		if err := svcs.Seats.Delete(c.Request.Context(), seatID); err != nil {
			respondErr(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}

// @Summary  List shifts
// @Success  200  {array}  domain.Shift
// @Router   /shifts [get]
func handleListShifts(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		out, err := svcs.Catalog.ListShifts(c.Request.Context())
		if err != nil {
			respondErr(c, err)
			return
		}
		// ETag + Cache-Control 60s
		writeJSONWithCache(c, http.StatusOK, out, "public, max-age=60", true)
	}
}

// @Summary  Book a seat (idempotent)
// @Param    req  body  BookingRequest  true  "payload"
// @Header   201  {string}  Idempotency-Key  "echo"
// @Success  201  {object}  assignment.BookingResult
// @Failure  400  {object}  ErrorResponse
// @Failure  409  {object}  ErrorResponse  "seat unavailable / idem in progress"
// @Failure  429  {object}  ErrorResponse  "rate limited"
// @Router   /bookings [post]
func handleCreateBooking(
	svcs *service.Services,
	idem *redisrepo.IdempotencyStore,
) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req BookingRequest
		if err := c.ShouldBind(&req); err != nil {
			badRequest(c, err.Error())
			return
		}
		moveIn, err := parseDate(req.MoveInDate)
		if err != nil {
			badRequest(c, "invalid move_in_date (YYYY-MM-DD or RFC3339)")
			return
		}

		idemKey := strings.TrimSpace(c.GetHeader("Idempotency-Key"))
		var idemStorageKey string
		if idem != nil && idemKey != "" {
			idemStorageKey = redisrepo.KeyIdemBooking(req.PropertyID, idemKey)

			if payload, ok, _ := idem.GetResult(
				c.Request.Context(),
				idemStorageKey,
			); ok {
				c.Header("Idempotency-Key", idemKey)
				c.Data(
					http.StatusCreated,
					"application/json; charset=utf-8",
					[]byte(payload),
				)
				return
			}

			locked, err := idem.AcquireLock(
				c.Request.Context(),
				idemStorageKey,
				60*time.Second,
			)
			if err != nil {
				respondErr(c, err)
				return
			}
			if !locked {
				if payload, ok, _ := idem.GetResult(
					c.Request.Context(),
					idemStorageKey,
				); ok {
					c.Header("Idempotency-Key", idemKey)
					c.Data(
						http.StatusCreated,
						"application/json; charset=utf-8",
						[]byte(payload),
					)
					return
				}
				c.Header("Retry-After", "1")
				c.JSON(
					http.StatusConflict,
					ErrorResponse{Error: "idempotency key in progress"},
				)
				return
			}
		}

		rlKey := "ip:" + c.ClientIP()

		res, err := svcs.Assignment.Book(
			c.Request.Context(),
			assignment.BookingInput{
				FullName:   req.FullName,
				Phone:      req.Phone,
				Email:      req.Email,
				PropertyID: req.PropertyID,
				SeatNumber: req.SeatNumber,
				ShiftID:    req.ShiftID,
				MoveInDate: moveIn,
				FeeCents:   req.FeeCents,
			},
			rlKey,
		)
		if err != nil {
			if idemStorageKey != "" && idem != nil {
				_ = idem.Release(c.Request.Context(), idemStorageKey)
			}
			if isRateLimitedErr(err) {
				c.Header("Retry-After", "60")
				c.JSON(
					http.StatusTooManyRequests,
					ErrorResponse{Error: err.Error()},
				)
				return
			}
			respondErr(c, err)
			return
		}

		if idemStorageKey != "" && idem != nil {
			b, _ := json.Marshal(res)
			_ = idem.SaveResult(c.Request.Context(), idemStorageKey, string(b))
			c.Header("Idempotency-Key", idemKey)
		}

		c.JSON(http.StatusCreated, res)
	}
}

// @Summary  Get assignment
// @Param    id  path  string  true  "Assignment ID (uuid)"
// @Success  200  {object}  domain.Assignment
// @Failure  404  {object}  ErrorResponse
// @Router   /assignments/{id} [get]
func handleGetAssignment(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseUUIDParam(c, "id")
		if !ok {
			return
		}
		a, err := svcs.Assignment.Get(c.Request.Context(), id)
		if err != nil {
			respondErr(c, err)
			return
		}
		c.JSON(http.StatusOK, a)
	}
}

// @Summary  Release assignment and free the seat
// @Param    id   path  string                    true   "Assignment ID (uuid)"
// @Param    req  body  ReleaseAssignmentRequest  false  "payload"
// @Success  200  {object}  domain.Assignment
// @Failure  404  {object}  ErrorResponse
// @Failure  409  {object}  ErrorResponse  "already completed"
// @Router   /assignments/{id}/release [post]
func handleReleaseAssignment(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseUUIDParam(c, "id")
		if !ok {
			return
		}
		var req ReleaseAssignmentRequest
		if c.Request.ContentLength > 0 {
			if err := c.ShouldBindJSON(&req); err != nil {
				badRequest(c, err.Error())
				return
			}
		}
		endDate := time.Now().UTC()
		if req.EndDate != "" {
			t, err := parseDate(req.EndDate)
			if err != nil {
				badRequest(c, "invalid end_date (YYYY-MM-DD or RFC3339)")
				return
			}
			endDate = t
		}
		a, err := svcs.Assignment.Release(c.Request.Context(), id, endDate)
		if err != nil {
			respondErr(c, err)
			return
		}
		c.JSON(http.StatusOK, a)
	}
}

// @Summary  Transfer an active assignment to another seat
// @Param    id   path  string               true  "Assignment ID (uuid)"
// @Param    req  body  TransferSeatRequest  true  "payload"
// @Success  200  {object}  domain.Assignment
// @Failure  409  {object}  ErrorResponse  "target seat unavailable"
// @Router   /assignments/{id}/transfer [post]
func handleTransferSeat(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseUUIDParam(c, "id")
		if !ok {
			return
		}
		var req TransferSeatRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err.Error())
			return
		}
		a, err := svcs.Assignment.TransferSeat(
			c.Request.Context(),
			id,
			req.NewSeatID,
		)
		if err != nil {
			respondErr(c, err)
			return
		}
		c.JSON(http.StatusOK, a)
	}
}

// @Summary  Get student with assignments and payment history
// @Param    id  path  int  true  "Student ID"
// @Success  200  {object}  domain.StudentDetail
// @Failure  404  {object}  ErrorResponse
// @Router   /students/{id} [get]
func handleGetStudent(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		studentID, ok := parseInt64Param(c, "id")
		if !ok {
			return
		}
		d, err := svcs.Catalog.GetStudentDetail(c.Request.Context(), studentID)
		if err != nil {
			respondErr(c, err)
			return
		}
		// ETag + Cache-Control 15s
		writeJSONWithCache(c, http.StatusOK, d, "public, max-age=15", true)
	}
}

// @Summary  Derived payment status for a student's current assignment
// @Param    id  path  int  true  "Student ID"
// @Success  200  {object}  billing.Summary
// @Failure  404  {object}  ErrorResponse
// @Router   /students/{id}/billing [get]
func handleGetStudentBilling(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		studentID, ok := parseInt64Param(c, "id")
		if !ok {
			return
		}
		sum, err := svcs.Billing.DeriveForStudent(c.Request.Context(), studentID)
		if err != nil {
			respondErr(c, err)
			return
		}
		// always fresh: status depends on the current clock
		c.Header("Cache-Control", "no-store")
		c.JSON(http.StatusOK, sum)
	}
}

// @Summary  Collect a partial payment
// @Param    id   path  string                 true  "Payment ID (uuid)"
// @Param    req  body  CollectPaymentRequest  true  "payload"
// @Success  200  {object}  domain.Payment
// @Failure  409  {object}  ErrorResponse  "closed or over-collection"
// @Router   /payments/{id}/collect [put]
func handleCollectPayment(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseUUIDParam(c, "id")
		if !ok {
			return
		}
		var req CollectPaymentRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err.Error())
			return
		}
		p, err := svcs.Billing.Collect(c.Request.Context(), id, req.AmountCents)
		if err != nil {
			respondErr(c, err)
			return
		}
		c.JSON(http.StatusOK, p)
	}
}

// @Summary  Settle a payment in full
// @Param    id   path  string                  true   "Payment ID (uuid)"
// @Param    req  body  CompletePaymentRequest  false  "payload"
// @Success  200  {object}  domain.Payment
// @Failure  409  {object}  ErrorResponse  "already closed"
// @Router   /payments/{id}/complete [put]
func handleCompletePayment(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseUUIDParam(c, "id")
		if !ok {
			return
		}
		var req CompletePaymentRequest
		_ = c.ShouldBindJSON(&req) // body optional
		p, err := svcs.Billing.Complete(c.Request.Context(), id, req.TransactionID)
		if err != nil {
			respondErr(c, err)
			return
		}
		c.JSON(http.StatusOK, p)
	}
}

// @Summary  Refund a payment
// @Param    id  path  string  true  "Payment ID (uuid)"
// @Success  200  {object}  domain.Payment
// @Failure  404  {object}  ErrorResponse
// @Router   /payments/{id}/refund [put]
func handleRefundPayment(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseUUIDParam(c, "id")
		if !ok {
			return
		}
		p, err := svcs.Billing.Refund(c.Request.Context(), id)
		if err != nil {
			respondErr(c, err)
			return
		}
		c.JSON(http.StatusOK, p)
	}
}

// @Summary  List overdue payments
// @Success  200  {array}  domain.Payment
// @Router   /payments/overdue [get]
func handleListOverduePayments(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		out, err := svcs.Billing.ListOverdue(c.Request.Context())
		if err != nil {
			respondErr(c, err)
			return
		}
		c.JSON(http.StatusOK, out)
	}
}

// @Summary  Create property
// @Param    req  body  CreatePropertyRequest  true  "payload"
// @Success  201  {object}  CreatePropertyResponse
// @Router   /admin/properties [post]
func handleCreateProperty(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreatePropertyRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err.Error())
			return
		}
		id, err := svcs.Catalog.CreateProperty(c.Request.Context(), domain.Property{
			Name:         req.Name,
			Address:      req.Address,
			TotalSeats:   req.TotalSeats,
			OpeningHours: req.OpeningHours,
		})
		if err != nil {
			respondErr(c, err)
			return
		}
		c.JSON(http.StatusCreated, CreatePropertyResponse{PropertyID: id})
	}
}

// @Summary  Create shift
// @Param    req  body  CreateShiftRequest  true  "payload"
// @Success  201  {object}  CreateShiftResponse
// @Router   /admin/shifts [post]
func handleCreateShift(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateShiftRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err.Error())
			return
		}
		id, err := svcs.Catalog.CreateShift(c.Request.Context(), domain.Shift{
			Name:      req.Name,
			StartTime: req.StartTime,
			EndTime:   req.EndTime,
			FeeCents:  req.FeeCents,
		})
		if err != nil {
			respondErr(c, err)
			return
		}
		c.JSON(http.StatusCreated, CreateShiftResponse{ShiftID: id})
	}
}

// @Summary  Assign a seat directly (back office)
// @Param    req  body  AssignSeatRequest  true  "payload"
// @Success  201  {object}  assignment.AssignResult
// @Failure  409  {object}  ErrorResponse  "seat unavailable"
// @Router   /admin/assignments [post]
func handleAssignSeat(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req AssignSeatRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err.Error())
			return
		}
		start, err := parseDate(req.StartDate)
		if err != nil {
			badRequest(c, "invalid start_date (YYYY-MM-DD or RFC3339)")
			return
		}
		res, err := svcs.Assignment.Assign(c.Request.Context(), assignment.AssignInput{
			StudentID: req.StudentID,
			SeatID:    req.SeatID,
			ShiftID:   req.ShiftID,
			StartDate: start,
			FeeCents:  req.FeeCents,
		})
		if err != nil {
			respondErr(c, err)
			return
		}
		c.JSON(http.StatusCreated, res)
	}
}

// @Summary  Set student status
// @Param    id   path  int                         true  "Student ID"
// @Param    req  body  SetStudentStatusRequest     true  "payload"
// @Success  200  {object}  domain.Student
// @Failure  404  {object}  ErrorResponse
// @Router   /admin/students/{id}/status [put]
func handleSetStudentStatus(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		studentID, ok := parseInt64Param(c, "id")
		if !ok {
			return
		}
		var req SetStudentStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err.Error())
			return
		}
		st, err := svcs.Catalog.SetStudentStatus(
			c.Request.Context(),
			studentID,
			domain.StudentStatus(req.Status),
		)
		if err != nil {
			respondErr(c, err)
			return
		}
		c.JSON(http.StatusOK, st)
	}
}

// @Summary  Delete all unassigned seats of a property
// @Param    id  path  int  true  "Property ID"
// @Success  200  {object}  map[string]int64
// @Failure  409  {object}  ErrorResponse  "active assignments present"
// @Router   /admin/properties/{id}/seats/clear [post]
func handleClearPropertySeats(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		propertyID, ok := parseInt64Param(c, "id")
		if !ok {
			return
		}
		n, err := svcs.Seats.ClearProperty(c.Request.Context(), propertyID)
		if err != nil {
			respondErr(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"deleted": n})
	}
}

// --- Helpers ---

func parseInt64Param(c *gin.Context, name string) (int64, bool) {
	s := c.Param(name)
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		badRequest(c, "invalid "+name)
		return 0, false
	}
	return v, true
}

func parseUUIDParam(c *gin.Context, name string) (uuid.UUID, bool) {
	v, err := uuid.Parse(c.Param(name))
	if err != nil {
		badRequest(c, "invalid "+name)
		return uuid.Nil, false
	}
	return v, true
}

func badRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: msg})
}

func isRateLimitedErr(err error) bool {
	return err != nil && strings.Contains(err.Error(), "rate limited")
}

func respondErr(c *gin.Context, err error) {
	if err == nil {
		c.Status(http.StatusNoContent)
		return
	}

	switch {
	// catalog service
	case errors.Is(err, catalog.ErrPropertyNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "property not found"})
		return
	case errors.Is(err, catalog.ErrPropertyConflict):
		c.JSON(http.StatusConflict, ErrorResponse{Error: "property conflict"})
		return
	case errors.Is(err, catalog.ErrLayoutNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "layout not found"})
		return
	case errors.Is(err, catalog.ErrShiftNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "shift not found"})
		return
	case errors.Is(err, catalog.ErrShiftConflict):
		c.JSON(http.StatusConflict, ErrorResponse{Error: "shift conflict"})
		return
	case errors.Is(err, catalog.ErrStudentNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "student not found"})
		return
	case errors.Is(err, catalog.ErrInvalidCapacity):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "total seats must be positive"})
		return
	case errors.Is(err, catalog.ErrInvalidStudentStatus):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid student status"})
		return
	// seats service
	case errors.Is(err, seats.ErrPropertyNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "property not found"})
		return
	case errors.Is(err, seats.ErrLayoutNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "layout not found"})
		return
	case errors.Is(err, seats.ErrSeatNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "seat not found"})
		return
	case errors.Is(err, seats.ErrSeatsExist):
		c.JSON(http.StatusConflict, ErrorResponse{Error: "seats already exist for property"})
		return
	case errors.Is(err, seats.ErrSeatAssigned):
		c.JSON(http.StatusConflict, ErrorResponse{Error: "seat has an active assignment"})
		return
	case errors.Is(err, seats.ErrInvalidStatus):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid seat status"})
		return
	// assignment service
	case errors.Is(err, assignment.ErrSeatUnavailable):
		c.JSON(http.StatusConflict, ErrorResponse{Error: "seat unavailable"})
		return
	case errors.Is(err, assignment.ErrSeatNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "seat not found"})
		return
	case errors.Is(err, assignment.ErrShiftNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "shift not found"})
		return
	case errors.Is(err, assignment.ErrPropertyNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "property not found"})
		return
	case errors.Is(err, assignment.ErrAssignmentNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "assignment not found"})
		return
	case errors.Is(err, assignment.ErrAlreadyCompleted):
		c.JSON(http.StatusConflict, ErrorResponse{Error: "assignment already completed"})
		return
	case errors.Is(err, assignment.ErrInvalidBooking):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid booking"})
		return
	// billing service
	case errors.Is(err, billing.ErrPaymentNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "payment not found"})
		return
	case errors.Is(err, billing.ErrPaymentClosed):
		c.JSON(http.StatusConflict, ErrorResponse{Error: "payment is closed"})
		return
	case errors.Is(err, billing.ErrOverCollection):
		c.JSON(http.StatusConflict, ErrorResponse{Error: "collection exceeds balance"})
		return
	case errors.Is(err, billing.ErrStudentNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "student not found"})
		return
	case errors.Is(err, billing.ErrInvalidAmount):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "amount must be positive"})
		return
	// occupancy service
	case errors.Is(err, occupancy.ErrPropertyNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "property not found"})
		return
	}

	c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
}
