package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/IvanPareja1/profitness-app-sub003/models"
	"github.com/IvanPareja1/profitness-app-sub003/services"
)

const dateLayout = "2006-01-02"

// currentUserID reads the id the auth middleware stored on the context.
func currentUserID(c *gin.Context) uint {
	return c.MustGet("userID").(uint)
}

// parseDateParam parses an optional YYYY-MM-DD query param, defaulting to
// the server's UTC today when absent. The date is an opaque calendar day;
// no timezone conversion happens anywhere downstream.
func parseDateParam(c *gin.Context, name string) (time.Time, bool) {
	raw := c.Query(name)
	if raw == "" {
		return models.DayKey(time.Now().UTC()), true
	}
	d, err := time.Parse(dateLayout, raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + name + ": use YYYY-MM-DD"})
		return time.Time{}, false
	}
	return models.DayKey(d), true
}

// parseRangeParams parses required start_date/end_date query params and
// rejects inverted ranges.
func parseRangeParams(c *gin.Context) (from, to time.Time, ok bool) {
	fromRaw, toRaw := c.Query("start_date"), c.Query("end_date")
	if fromRaw == "" || toRaw == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "start_date and end_date are required"})
		return
	}
	from, err := time.Parse(dateLayout, fromRaw)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid start_date: use YYYY-MM-DD"})
		return
	}
	to, err = time.Parse(dateLayout, toRaw)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid end_date: use YYYY-MM-DD"})
		return
	}
	if to.Before(from) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "end_date before start_date"})
		return
	}
	return models.DayKey(from), models.DayKey(to), true
}

func timeNowUTC() time.Time { return time.Now().UTC() }

// parseDateString parses a YYYY-MM-DD body field into a day key.
func parseDateString(raw string) (time.Time, error) {
	d, err := time.Parse(dateLayout, raw)
	if err != nil {
		return time.Time{}, err
	}
	return models.DayKey(d), nil
}

func isNotFound(err error) bool { return errors.Is(err, services.ErrNotFound) }

// respondError maps the service error taxonomy onto HTTP statuses.
func respondError(c *gin.Context, err error) {
	switch {
	case services.IsValidation(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
