package etl

import (
	"strconv"
	"strings"
	"time"
)

// Typed views over one CSV row per source. Cells are parsed exactly once
// here; optional fields stay nil when the cell is blank or malformed.

type countryRow struct {
	name       string
	isoCode    string
	region     string
	subRegion  string
	status     string
	developed  string
	population *int64
	area       *int64
}

func parseCountryRow(t *table, row []string) countryRow {
	out := countryRow{
		name:       t.field(row, "Display_Name"),
		region:     t.field(row, "Region"),
		subRegion:  t.field(row, "Sub-Region"),
		status:     t.field(row, "Status"),
		developed:  t.field(row, "Developed"),
		population: parseOptionalInt64(t.field(row, "Population")),
		area:       parseOptionalInt64(t.field(row, "Area")),
	}
	if t.hasColumn("ISO_Code") {
		out.isoCode = t.field(row, "ISO_Code")
	}
	return out
}

type formerNameRow struct {
	current   string
	former    string
	startDate *time.Time
	endDate   *time.Time
}

func parseFormerNameRow(t *table, row []string) formerNameRow {
	return formerNameRow{
		current:   t.field(row, "current"),
		former:    t.field(row, "former"),
		startDate: parseDate(t.field(row, "start_date")),
		endDate:   parseDate(t.field(row, "end_date")),
	}
}

type matchRow struct {
	date       *time.Time
	homeTeam   string
	awayTeam   string
	homeScore  int
	awayScore  int
	scoresOK   bool
	tournament string
	city       string
	host       string
	neutral    bool
}

func parseMatchRow(t *table, row []string) matchRow {
	out := matchRow{
		date:       parseDate(t.field(row, "date")),
		homeTeam:   t.field(row, "home_team"),
		awayTeam:   t.field(row, "away_team"),
		tournament: t.field(row, "tournament"),
		city:       t.field(row, "city"),
		host:       t.field(row, "country"),
		neutral:    parseBoolFlag(t.field(row, "neutral")),
	}
	var homeOK, awayOK bool
	out.homeScore, homeOK = parseScore(t.field(row, "home_score"))
	out.awayScore, awayOK = parseScore(t.field(row, "away_score"))
	out.scoresOK = homeOK && awayOK
	return out
}

type goalRow struct {
	date     *time.Time
	homeTeam string
	awayTeam string
	team     string
	scorer   string
	minute   *int
	ownGoal  bool
	penalty  bool
}

func parseGoalRow(t *table, row []string) goalRow {
	out := goalRow{
		date:     parseDate(t.field(row, "date")),
		homeTeam: t.field(row, "home_team"),
		awayTeam: t.field(row, "away_team"),
		team:     t.field(row, "team"),
		scorer:   t.field(row, "scorer"),
		ownGoal:  parseBoolFlag(t.field(row, "own_goal")),
		penalty:  parseBoolFlag(t.field(row, "penalty")),
	}
	if t.hasColumn("minute") {
		out.minute = parseOptionalInt(t.field(row, "minute"))
	}
	if isNullToken(out.scorer) {
		out.scorer = ""
	}
	return out
}

type shootoutRow struct {
	date         *time.Time
	homeTeam     string
	awayTeam     string
	winner       string
	firstShooter string
}

func parseShootoutRow(t *table, row []string) shootoutRow {
	return shootoutRow{
		date:         parseDate(t.field(row, "date")),
		homeTeam:     t.field(row, "home_team"),
		awayTeam:     t.field(row, "away_team"),
		winner:       t.field(row, "winner"),
		firstShooter: t.field(row, "first_shooter"),
	}
}

// parseOptionalInt64 turns a cell into a nullable integer. Blank and "NA"
// style placeholders become nil; fractional values from spreadsheet exports
// (e.g. "38928346.0") are truncated.
func parseOptionalInt64(value string) *int64 {
	value = strings.TrimSpace(value)
	if value == "" || isNullToken(value) {
		return nil
	}
	if n, err := strconv.ParseInt(value, 10, 64); err == nil {
		return &n
	}
	if f, err := strconv.ParseFloat(value, 64); err == nil {
		n := int64(f)
		return &n
	}
	return nil
}

func parseOptionalInt(value string) *int {
	n := parseOptionalInt64(value)
	if n == nil {
		return nil
	}
	v := int(*n)
	return &v
}

// parseScore parses a non-negative score cell; malformed or negative values
// report ok=false.
func parseScore(value string) (int, bool) {
	n := parseOptionalInt64(value)
	if n == nil || *n < 0 {
		return 0, false
	}
	return int(*n), true
}

// parseBoolFlag accepts the boolean spellings seen across the exports.
// Anything unrecognized is false.
func parseBoolFlag(value string) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "true", "t", "yes", "y", "1":
		return true
	default:
		return false
	}
}

var dateLayouts = []string{
	"2006-01-02",
	"02/01/2006",
	"2006-01-02 15:04:05",
}

// parseDate parses a date cell, trying ISO order first and then the
// day-first form used by the goalscorers export. Malformed dates become nil
// rather than failing the row.
func parseDate(value string) *time.Time {
	value = strings.TrimSpace(value)
	if value == "" || isNullToken(value) {
		return nil
	}
	for _, layout := range dateLayouts {
		if ts, err := time.Parse(layout, value); err == nil {
			ts = time.Date(ts.Year(), ts.Month(), ts.Day(), 0, 0, 0, 0, time.UTC)
			return &ts
		}
	}
	return nil
}

func isNullToken(value string) bool {
	switch strings.ToLower(value) {
	case "na", "n/a", "nan", "null", "none":
		return true
	default:
		return false
	}
}
