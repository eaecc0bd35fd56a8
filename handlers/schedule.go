package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/padraicbc/umaplan/schedule"
)

// fanBonus accepts a JSON string or number. Anything else reads as blank,
// which the scheduler counts as zero.
type fanBonus string

func (b *fanBonus) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*b = fanBonus(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err == nil {
		*b = fanBonus(n.String())
		return nil
	}
	*b = ""
	return nil
}

type supportCard struct {
	Name     string   `json:"name"`
	Level    string   `json:"level"`
	FanBonus fanBonus `json:"fanBonus"`
}

type scheduleRequest struct {
	// Character is a character ID or exact name; empty plans without one.
	Character         string            `json:"character"`
	DistancePref      string            `json:"distancePref"`
	SupportCards      []supportCard     `json:"supportCards"`
	AptitudeOverrides map[string]string `json:"aptitudeOverrides"`
}

type scheduleResponse struct {
	schedule.Result
	TotalBonus float64 `json:"totalBonus"`
	Message    string  `json:"message"`
}

var distancePrefs = map[string]bool{
	"":              true,
	"Any":           true,
	schedule.Short:  true,
	schedule.Mile:   true,
	schedule.Medium: true,
	schedule.Long:   true,
}

// Schedule computes a race schedule for the posted deck and trainee.
func (h *Handler) Schedule(c echo.Context) error {
	var req scheduleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	req.Character = strings.TrimSpace(req.Character)
	req.DistancePref = strings.TrimSpace(req.DistancePref)
	if !distancePrefs[req.DistancePref] {
		return echo.NewHTTPError(http.StatusBadRequest, "distancePref must be Short, Mile, Medium, Long or Any")
	}

	var (
		races     []schedule.Race
		character *schedule.Character
	)
	g, ctx := errgroup.WithContext(c.Request().Context())
	g.Go(func() error {
		var err error
		races, err = h.catalog.Races(ctx)
		return err
	})
	if req.Character != "" {
		g.Go(func() error {
			var err error
			character, err = h.catalog.Character(ctx, req.Character)
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return h.catalogError(err)
	}

	pref := req.DistancePref
	if pref == "Any" {
		pref = ""
	} else if pref == "" && character != nil {
		pref = character.PreferredDistance
	}
	if len(req.AptitudeOverrides) > 0 {
		character = schedule.WithDistanceOverrides(character, req.AptitudeOverrides)
	}

	bonuses := make([]string, len(req.SupportCards))
	for i, sc := range req.SupportCards {
		bonuses[i] = string(sc.FanBonus)
	}

	res := h.planner.Build(schedule.Input{
		Bonuses:            bonuses,
		DistancePreference: pref,
		Races:              races,
		Character:          character,
	})
	h.log.Debug("schedule built",
		zap.String("character", req.Character),
		zap.String("distancePref", pref),
		zap.Float64("multiplier", res.Multiplier),
		zap.Int("races", len(res.Schedule)),
		zap.Int("totalFans", res.TotalFans),
	)

	return c.JSON(http.StatusOK, scheduleResponse{
		Result:     res,
		TotalBonus: schedule.TotalBonus(bonuses),
		Message:    res.Summary(),
	})
}
