package httpapi

import (
	"errors"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/erenfn/climate-compare/internal/climate"
	"github.com/erenfn/climate-compare/internal/report"
	"github.com/erenfn/climate-compare/internal/store"
)

var validate = validator.New()

// RegisterRoutes wires the HTTP handlers into the Fiber app.
func RegisterRoutes(app *fiber.App, service *climate.Service, st climate.Store, cities []climate.City) {
	v1 := app.Group("/api/v1")

	v1.Get("/cities", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"cities":  cities,
			"minYear": climate.MinYear,
			"maxYear": climate.MaxYear,
		})
	})

	v1.Get("/cities/:city/report", func(c *fiber.Ctx) error {
		var req reportQuery
		if err := req.bind(c); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		if err := validate.Struct(req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		city, err := climate.LookupCity(cities, req.City)
		if err != nil {
			return toFiberError(err)
		}

		r, err := st.LatestReport(city)
		if err == nil && (req.Year == 0 || r.Year == req.Year) {
			return c.JSON(r)
		}
		if err != nil && !errors.Is(err, store.ErrNotFound) {
			return toFiberError(err)
		}

		year := req.Year
		if year == 0 {
			year = climate.MaxYear
		}
		r, err = service.BuildReport(city, year)
		if err != nil {
			return toFiberError(err)
		}
		st.SaveReport(r)
		return c.JSON(r)
	})

	v1.Get("/map", func(c *fiber.Ctx) error {
		var req mapQuery
		if err := req.bind(c); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		if err := validate.Struct(req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		sc, err := climate.ParseScenario(req.Scenario)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		snaps, err := service.SnapshotsFor(st, cities, req.Year)
		if err != nil {
			return toFiberError(err)
		}
		view, err := report.BuildMap(cities, snaps, sc)
		if err != nil {
			return toFiberError(err)
		}
		return c.JSON(view)
	})
}

// toFiberError maps domain errors to HTTP status codes.
func toFiberError(err error) error {
	switch {
	case errors.Is(err, climate.ErrUnknownCity), errors.Is(err, store.ErrNotFound):
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	case errors.Is(err, climate.ErrYearOutOfRange):
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	default:
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
}

// reportQuery holds the parameters of the report endpoint. Year is optional.
type reportQuery struct {
	City string `validate:"required"`
	Year int    `validate:"omitempty,gte=2003,lte=2019"`
}

func (q *reportQuery) bind(c *fiber.Ctx) error {
	q.City = c.Params("city")
	year, err := parseYear(c.Query("year"))
	if err != nil {
		return err
	}
	q.Year = year
	return nil
}

// mapQuery holds query parameters for the map endpoint.
type mapQuery struct {
	Year     int    `validate:"required,gte=2003,lte=2019"`
	Scenario string `validate:"required,oneof=low median high"`
}

func (q *mapQuery) bind(c *fiber.Ctx) error {
	year, err := parseYear(c.Query("year"))
	if err != nil {
		return err
	}
	q.Year = year
	q.Scenario = c.Query("scenario")
	return nil
}

// parseYear returns 0 for an empty value.
func parseYear(s string) (int, error) {
	if s == "" {
		return 0, nil
	}
	year, err := strconv.Atoi(s)
	if err != nil {
		return 0, errors.New("invalid year; use a four-digit year")
	}
	return year, nil
}
