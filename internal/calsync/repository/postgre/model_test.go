package postgre

import (
	"testing"

	"gorm.io/datatypes"

	"familybridge/internal/calsync"
)

func TestSettingsColumnRoundTrip(t *testing.T) {
	in := calsync.Settings{Direction: calsync.DirectionPush, EventTypes: []string{"medication"}, FrequencyMinutes: 30}
	raw, err := encodeSettings(in)
	if err != nil {
		t.Fatalf("encodeSettings: %v", err)
	}

	got := connectionModel{Settings: raw}.toDomain().Settings
	if got.Direction != in.Direction || got.FrequencyMinutes != 30 || len(got.EventTypes) != 1 || got.EventTypes[0] != "medication" {
		t.Errorf("unexpected settings %+v", got)
	}
}

func TestSettingsColumnDefaults(t *testing.T) {
	tests := []struct {
		name string
		raw  datatypes.JSON
	}{
		{"empty object", datatypes.JSON(`{}`)},
		{"null column", nil},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := connectionModel{Settings: tc.raw}.toDomain().Settings
			if got.Direction != calsync.DirectionBidirectional || got.FrequencyMinutes != calsync.DefaultFrequencyMinutes {
				t.Errorf("defaults not applied: %+v", got)
			}
		})
	}
}

func TestTableName(t *testing.T) {
	if got := (connectionModel{}).TableName(); got != "external_calendar_syncs" {
		t.Errorf("TableName = %q", got)
	}
}
