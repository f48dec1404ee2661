package season_test

import (
	"strings"
	"testing"

	"github.com/mauv0809/season-standings/internal/season"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const header = "event_id,event_name,date,kind,round,player_id,player_name,score\n"

func TestParseResultsCSV(t *testing.T) {
	input := header +
		"e1,Opening,2025-03-01,points,,a,Ann,3\n" +
		"e2,Sprint,2025-03-08,RACE,heat1,a,Ann,12.3\n" +
		"e1,Opening,2025-03-01,POINTS,,b,Bea,\n" +
		"e2,Sprint,2025-03-08,RACE,heat1,b,Bea,9.9\n"

	events, err := season.ParseResultsCSV(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, events, 2)

	assert.Equal(t, "e1", events[0].Event.ID)
	assert.Equal(t, season.KindPoints, events[0].Event.Kind)
	assert.True(t, day(1).Equal(events[0].Event.Date))
	require.Len(t, events[0].Results, 2)
	assert.Equal(t, 3.0, *events[0].Results[0].Score)
	assert.Nil(t, events[0].Results[1].Score)

	assert.Equal(t, season.KindRace, events[1].Event.Kind)
	assert.Equal(t, "heat1", events[1].Results[1].Round)
	assert.Equal(t, 9.9, *events[1].Results[1].Score)
}

func TestParseResultsCSVErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"wrong header", "id,name,date,kind,round,player,player_name,score\n"},
		{"bad date", header + "e1,E,03/01/2025,,,a,Ann,1\n"},
		{"bad score", header + "e1,E,2025-03-01,,,a,Ann,lots\n"},
		{"bad kind", header + "e1,E,2025-03-01,relay,,a,Ann,1\n"},
		{"missing event", header + ",E,2025-03-01,,,a,Ann,1\n"},
		{"short row", header + "e1,E,2025-03-01\n"},
		{"redeclared", header + "e1,E,2025-03-01,,,a,Ann,1\ne1,E,2025-03-02,,,b,Bea,1\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := season.ParseResultsCSV(strings.NewReader(tt.input))
			assert.ErrorIs(t, err, season.ErrInvalidCSV)
		})
	}
}
