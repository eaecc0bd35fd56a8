package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/padraicbc/umaplan/catalog"
	"github.com/padraicbc/umaplan/schedule"
)

type characterSummary struct {
	ID                string   `json:"id"`
	Name              string   `json:"name"`
	BaseName          string   `json:"baseName"`
	PreferredDistance string   `json:"preferredDistance"`
	Variant           string   `json:"variant,omitempty"`
	Released          bool     `json:"released"`
	ARatedDistances   []string `json:"aRatedDistances,omitempty"`
	Objectives        int      `json:"objectives"`
	LinkedObjectives  int      `json:"linkedObjectives"`
}

type characterDetail struct {
	schedule.Character
	BaseName       string                       `json:"baseName"`
	Variant        string                       `json:"variant,omitempty"`
	ObjectiveRaces []schedule.ObjectiveRace     `json:"objectiveRaces"`
	BestAptitudes  map[string]schedule.Aptitude `json:"bestAptitudes"`
	TotalStats     *int                         `json:"totalStats,omitempty"`
	Progress       schedule.Progress            `json:"progress"`
	NextObjective  *schedule.NextObjective      `json:"nextObjective,omitempty"`
	Recommended    []schedule.Race              `json:"recommendedRaces"`
}

// Races lists the race catalog, optionally filtered by year, distance and surface.
func (h *Handler) Races(c echo.Context) error {
	var q catalog.RaceQuery
	if y := c.QueryParam("year"); y != "" {
		year, err := strconv.Atoi(y)
		if err != nil || year < 1 || year > 3 {
			return echo.NewHTTPError(http.StatusBadRequest, "year must be 1, 2 or 3")
		}
		q.Year = year
	}
	q.Distance = c.QueryParam("distance")
	q.Surface = c.QueryParam("surface")

	races, err := h.catalog.Races(c.Request().Context())
	if err != nil {
		return h.catalogError(err)
	}
	cat := &catalog.Catalog{Races: races}
	return c.JSON(http.StatusOK, cat.FilterRaces(q))
}

// Race returns one catalog race by ID.
func (h *Handler) Race(c echo.Context) error {
	races, err := h.catalog.Races(c.Request().Context())
	if err != nil {
		return h.catalogError(err)
	}
	cat := &catalog.Catalog{Races: races}
	r, ok := cat.Race(c.Param("id"))
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "race not found")
	}
	return c.JSON(http.StatusOK, r)
}

// Characters lists trainees matching the name search, preferred distance,
// variant and release filters.
func (h *Handler) Characters(c echo.Context) error {
	q := catalog.Query{
		Search:   c.QueryParam("q"),
		Distance: c.QueryParam("distance"),
		Variant:  c.QueryParam("variant"),
	}
	if u := c.QueryParam("unreleased"); u != "" {
		include, err := strconv.ParseBool(u)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "unreleased must be a boolean")
		}
		q.IncludeUnreleased = include
	}

	chars, err := h.catalog.Characters(c.Request().Context())
	if err != nil {
		return h.catalogError(err)
	}
	cat := &catalog.Catalog{Characters: chars}
	filtered := cat.FilterCharacters(q)

	result := make([]characterSummary, len(filtered))
	for i := range filtered {
		ch := &filtered[i]
		linked := 0
		for _, o := range ch.Objectives {
			if o.RaceID != "" {
				linked++
			}
		}
		result[i] = characterSummary{
			ID:                ch.ID,
			Name:              ch.Name,
			BaseName:          catalog.BaseName(ch.Name),
			PreferredDistance: ch.PreferredDistance,
			Variant:           catalog.Variant(ch.Name),
			Released:          ch.IsReleased(),
			ARatedDistances:   schedule.RatedDistances(ch, schedule.RatingA),
			Objectives:        len(ch.Objectives),
			LinkedObjectives:  linked,
		}
	}
	return c.JSON(http.StatusOK, result)
}

// Variants lists the costume variants present in the catalog.
func (h *Handler) Variants(c echo.Context) error {
	chars, err := h.catalog.Characters(c.Request().Context())
	if err != nil {
		return h.catalogError(err)
	}
	cat := &catalog.Catalog{Characters: chars}
	variants := cat.Variants()
	if variants == nil {
		variants = []string{}
	}
	return c.JSON(http.StatusOK, variants)
}

// Character returns one trainee with resolved objectives and aptitude
// summaries. completed takes comma separated objective indices.
func (h *Handler) Character(c echo.Context) error {
	completed, err := parseIndices(c.QueryParam("completed"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	ctx := c.Request().Context()
	ch, err := h.catalog.Character(ctx, c.Param("id"))
	if err != nil {
		return h.catalogError(err)
	}
	races, err := h.catalog.Races(ctx)
	if err != nil {
		return h.catalogError(err)
	}

	detail := characterDetail{
		Character:      *ch,
		BaseName:       catalog.BaseName(ch.Name),
		Variant:        catalog.Variant(ch.Name),
		ObjectiveRaces: schedule.ObjectiveRaces(ch, races),
		BestAptitudes:  make(map[string]schedule.Aptitude),
		Progress:       schedule.CareerProgress(ch, completed),
		Recommended:    schedule.RecommendedRaces(ch, races, h.planner.Config().MinRating),
	}
	for _, cat := range []string{schedule.CategoryDistance, schedule.CategorySurface, schedule.CategoryStrategy} {
		if best, ok := schedule.BestAptitude(ch, cat); ok {
			detail.BestAptitudes[cat] = best
		}
	}
	if total, ok := schedule.TotalStats(ch, "fiveStar"); ok {
		detail.TotalStats = &total
	}
	if next, ok := schedule.FirstIncomplete(ch, completed, races); ok {
		detail.NextObjective = &next
	}
	if detail.ObjectiveRaces == nil {
		detail.ObjectiveRaces = []schedule.ObjectiveRace{}
	}
	if detail.Recommended == nil {
		detail.Recommended = []schedule.Race{}
	}
	return c.JSON(http.StatusOK, detail)
}

func parseIndices(s string) ([]int, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	var out []int
	for _, part := range strings.Split(s, ",") {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, errors.New("completed must be comma separated indices")
		}
		out = append(out, n)
	}
	return out, nil
}
