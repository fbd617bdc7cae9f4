package request

import (
	"strconv"
	"strings"
	"time"

	"parkspot/internal/pkg/errs"
	"parkspot/internal/usecase/commands"
	"parkspot/internal/usecase/queries"

	"github.com/shopspring/decimal"
)

var ErrInvalidSearchQuery = errs.New("invalid search query")

type CreateSpotRequest struct {
	Title         string          `json:"title" binding:"required,max=255"`
	Address       string          `json:"address" binding:"required,max=500"`
	Lat           *float64        `json:"lat" binding:"required,min=-90,max=90"`
	Lng           *float64        `json:"lng" binding:"required,min=-180,max=180"`
	HourlyRate    decimal.Decimal `json:"hourly_rate" binding:"required"`
	OpenTime      string          `json:"open_time" binding:"required"`
	CloseTime     string          `json:"close_time" binding:"required"`
	AvailableDays []string        `json:"available_days" binding:"required,min=1"`
	TimeZone      string          `json:"time_zone"`
	TotalSlots    int             `json:"total_slots" binding:"required,min=1"`
}

func (r *CreateSpotRequest) ToInput() commands.CreateSpotInput {
	return commands.CreateSpotInput{
		Title:         strings.TrimSpace(r.Title),
		Address:       strings.TrimSpace(r.Address),
		Lat:           *r.Lat,
		Lng:           *r.Lng,
		HourlyRate:    r.HourlyRate,
		OpenTime:      r.OpenTime,
		CloseTime:     r.CloseTime,
		AvailableDays: r.AvailableDays,
		TimeZone:      r.TimeZone,
		TotalSlots:    r.TotalSlots,
	}
}

type UpdateSpotRequest struct {
	Title         *string          `json:"title" binding:"omitempty,max=255"`
	Address       *string          `json:"address" binding:"omitempty,max=500"`
	Lat           *float64         `json:"lat" binding:"omitempty,min=-90,max=90"`
	Lng           *float64         `json:"lng" binding:"omitempty,min=-180,max=180"`
	HourlyRate    *decimal.Decimal `json:"hourly_rate"`
	OpenTime      *string          `json:"open_time"`
	CloseTime     *string          `json:"close_time"`
	AvailableDays []string         `json:"available_days" binding:"omitempty,min=1"`
	TimeZone      *string          `json:"time_zone"`
	TotalSlots    *int             `json:"total_slots" binding:"omitempty,min=1"`
}

func (r *UpdateSpotRequest) ToInput() commands.UpdateSpotInput {
	return commands.UpdateSpotInput{
		Title:         r.Title,
		Address:       r.Address,
		Lat:           r.Lat,
		Lng:           r.Lng,
		HourlyRate:    r.HourlyRate,
		OpenTime:      r.OpenTime,
		CloseTime:     r.CloseTime,
		AvailableDays: r.AvailableDays,
		TimeZone:      r.TimeZone,
		TotalSlots:    r.TotalSlots,
	}
}

// SearchSpotsQuery binds raw query strings; ToCriteria does the parsing.
type SearchSpotsQuery struct {
	Lat      string `form:"lat" binding:"required"`
	Lng      string `form:"lng" binding:"required"`
	RadiusKm string `form:"radius_km"`
	Start    string `form:"start"`
	End      string `form:"end"`
	Slots    string `form:"slots"`
	Limit    string `form:"limit"`
}

const defaultSearchRadiusKm = 5.0

func (q *SearchSpotsQuery) ToCriteria() (queries.SearchCriteria, error) {
	var c queries.SearchCriteria
	var err error

	if c.Lat, err = strconv.ParseFloat(q.Lat, 64); err != nil {
		return c, errs.Wrap(ErrInvalidSearchQuery, "lat")
	}
	if c.Lng, err = strconv.ParseFloat(q.Lng, 64); err != nil {
		return c, errs.Wrap(ErrInvalidSearchQuery, "lng")
	}

	c.RadiusKm = defaultSearchRadiusKm
	if q.RadiusKm != "" {
		if c.RadiusKm, err = strconv.ParseFloat(q.RadiusKm, 64); err != nil {
			return c, errs.Wrap(ErrInvalidSearchQuery, "radius_km")
		}
	}

	if q.Start != "" {
		t, perr := time.Parse(time.RFC3339, q.Start)
		if perr != nil {
			return c, errs.Wrap(ErrInvalidSearchQuery, "start")
		}
		c.Start = &t
	}
	if q.End != "" {
		t, perr := time.Parse(time.RFC3339, q.End)
		if perr != nil {
			return c, errs.Wrap(ErrInvalidSearchQuery, "end")
		}
		c.End = &t
	}

	if q.Slots != "" {
		if c.Slots, err = strconv.Atoi(q.Slots); err != nil {
			return c, errs.Wrap(ErrInvalidSearchQuery, "slots")
		}
	}
	if q.Limit != "" {
		if c.Limit, err = strconv.Atoi(q.Limit); err != nil {
			return c, errs.Wrap(ErrInvalidSearchQuery, "limit")
		}
	}
	c.Limit = queries.ValidateLimit(c.Limit)

	return c, nil
}
