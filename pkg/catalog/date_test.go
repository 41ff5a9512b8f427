package catalog_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/storefront/pkg/catalog"
)

func TestDate_JSON(t *testing.T) {
	var p catalog.Product
	require.NoError(t, json.Unmarshal([]byte(`{"id":1,"release_date":"19.05.2015","price":59.99}`), &p))
	assert.Equal(t, catalog.NewDate(2015, time.May, 19), p.ReleaseDate)

	out, err := json.Marshal(p.ReleaseDate)
	require.NoError(t, err)
	assert.Equal(t, `"19.05.2015"`, string(out))
}

func TestDate_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		in      string
		want    catalog.Date
		wantErr bool
	}{
		{`"01.12.2011"`, catalog.NewDate(2011, time.December, 1), false},
		{`""`, catalog.Date{}, false},
		{`null`, catalog.Date{}, false},
		{`"2011-12-01"`, catalog.Date{}, true},
		{`"31.02.2020"`, catalog.Date{}, true},
		{`12`, catalog.Date{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			var d catalog.Date
			err := d.UnmarshalJSON([]byte(tt.in))
			if tt.wantErr {
				assert.ErrorIs(t, err, catalog.ErrInvalidDate)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, d)
		})
	}
}

func TestDate_YAML(t *testing.T) {
	out, err := yaml.Marshal(map[string]catalog.Date{"released": catalog.NewDate(2022, time.February, 25)})
	require.NoError(t, err)
	assert.Equal(t, "released: 25.02.2022\n", string(out))

	assert.Empty(t, catalog.Date{}.String())
}
