package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/surrealdb/surrealdb.go/pkg/models"
)

func TestBuildSelect(t *testing.T) {
	tests := []struct {
		name      string
		filter    Filter
		limit     int
		wantQuery string
		wantVars  map[string]any
	}{
		{
			name:      "all documents",
			wantQuery: "SELECT * FROM type::table($tb) ORDER BY created_at",
			wantVars:  map[string]any{"tb": "analyticsevent"},
		},
		{
			name:      "limit",
			limit:     100,
			wantQuery: "SELECT * FROM type::table($tb) ORDER BY created_at LIMIT $limit",
			wantVars:  map[string]any{"tb": "analyticsevent", "limit": 100},
		},
		{
			name:      "filter keys are sorted",
			filter:    Filter{"type": "click", "label": "cta"},
			limit:     5,
			wantQuery: "SELECT * FROM type::table($tb) WHERE label = $f0 AND type = $f1 ORDER BY created_at LIMIT $limit",
			wantVars:  map[string]any{"tb": "analyticsevent", "f0": "cta", "f1": "click", "limit": 5},
		},
		{
			name:      "negative limit means none",
			filter:    Filter{"type": "click"},
			limit:     -1,
			wantQuery: "SELECT * FROM type::table($tb) WHERE type = $f0 ORDER BY created_at",
			wantVars:  map[string]any{"tb": "analyticsevent", "f0": "click"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, vars, err := buildSelect("analyticsevent", tt.filter, tt.limit)
			require.NoError(t, err)
			assert.Equal(t, tt.wantQuery, query)
			assert.Equal(t, tt.wantVars, vars)
		})
	}
}

func TestBuildSelect_RejectsUnsafeField(t *testing.T) {
	for _, key := range []string{"type; DELETE x", "a.b", "", "1abc"} {
		_, _, err := buildSelect("analyticsevent", Filter{key: "v"}, 0)
		assert.Error(t, err, key)
	}
}

func TestPlainValue(t *testing.T) {
	ts := time.Date(2025, 6, 1, 8, 30, 0, 0, time.UTC)

	assert.Equal(t, "analyticsevent:abc123", plainValue(models.RecordID{Table: "analyticsevent", ID: "abc123"}))
	assert.Equal(t, "analyticsevent:7", plainValue(&models.RecordID{Table: "analyticsevent", ID: 7}))
	assert.Equal(t, "2025-06-01T08:30:00Z", plainValue(models.CustomDateTime{Time: ts}))
	assert.Equal(t, "2025-06-01T08:30:00Z", plainValue(&models.CustomDateTime{Time: ts}))
	assert.Equal(t, "2025-06-01T08:30:00Z", plainValue(ts))
	assert.Equal(t, "plain", plainValue("plain"))
	assert.Nil(t, plainValue(nil))

	nested := map[string]any{
		"when": models.CustomDateTime{Time: ts},
		"refs": []any{models.RecordID{Table: "t", ID: "1"}, 2},
		"raw":  map[any]any{"k": "v"},
	}
	assert.Equal(t, map[string]any{
		"when": "2025-06-01T08:30:00Z",
		"refs": []any{"t:1", 2},
		"raw":  map[string]any{"k": "v"},
	}, plainValue(nested))
}
