package season

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"
)

// ErrInvalidCSV is returned when an import file cannot be read as results.
var ErrInvalidCSV = errors.New("season: invalid results csv")

// DateLayout is the date format used in result imports.
const DateLayout = "2006-01-02"

var csvColumns = []string{"event_id", "event_name", "date", "kind", "round", "player_id", "player_name", "score"}

// ParseResultsCSV reads event results from r. The first row must be the
// header; rows are grouped by event id in order of first appearance and keep
// their file order within each event.
func ParseResultsCSV(r io.Reader) ([]EventWithResults, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = len(csvColumns)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty file", ErrInvalidCSV)
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidCSV, err)
	}
	for i, col := range csvColumns {
		if strings.ToLower(strings.TrimSpace(header[i])) != col {
			return nil, fmt.Errorf("%w: column %d is %q, want %q", ErrInvalidCSV, i+1, header[i], col)
		}
	}

	var out []EventWithResults
	index := make(map[string]int)
	line := 1
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidCSV, err)
		}

		event, result, err := parseRecord(record)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrInvalidCSV, line, err)
		}

		i, ok := index[event.ID]
		if !ok {
			index[event.ID] = len(out)
			out = append(out, EventWithResults{Event: event})
			i = len(out) - 1
		} else if existing := out[i].Event; !existing.Date.Equal(event.Date) || existing.Kind != event.Kind {
			return nil, fmt.Errorf("%w: line %d: event %s redeclared with a different date or kind", ErrInvalidCSV, line, event.ID)
		}
		out[i].Results = append(out[i].Results, result)
	}
	return out, nil
}

func parseRecord(record []string) (Event, Result, error) {
	for i := range record {
		record[i] = strings.TrimSpace(record[i])
	}
	eventID, eventName, date, kind, round, playerID, playerName, score :=
		record[0], record[1], record[2], record[3], record[4], record[5], record[6], record[7]

	if eventID == "" {
		return Event{}, Result{}, errors.New("missing event_id")
	}
	d, err := time.Parse(DateLayout, date)
	if err != nil {
		return Event{}, Result{}, fmt.Errorf("bad date %q", date)
	}
	k, err := ParseEventKind(kind)
	if err != nil {
		return Event{}, Result{}, err
	}

	result := Result{Round: round, PlayerID: playerID, PlayerName: playerName}
	if score != "" {
		v, err := strconv.ParseFloat(score, 64)
		if err != nil {
			return Event{}, Result{}, fmt.Errorf("bad score %q", score)
		}
		result.Score = &v
	}
	return Event{ID: eventID, Name: eventName, Date: d, Kind: k}, result, nil
}

// ParseEventKind maps a kind column to an EventKind. Blank means points.
func ParseEventKind(s string) (EventKind, error) {
	switch EventKind(strings.ToUpper(s)) {
	case "", KindPoints:
		return KindPoints, nil
	case KindRace:
		return KindRace, nil
	}
	return "", fmt.Errorf("unknown event kind %q", s)
}
