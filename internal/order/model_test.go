package order

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCustomizations_UnmarshalStructured(t *testing.T) {
	var c Customizations
	err := json.Unmarshal([]byte(`{"size":"large","juice":"orange","boosts":["chia","protein"],"notes":"no ice"}`), &c)
	require.NoError(t, err)

	assert.Equal(t, "large", c.Size)
	assert.Equal(t, "orange", c.Juice)
	assert.Equal(t, []string{"chia", "protein"}, c.Boosts)
	assert.Equal(t, "no ice", c.Notes)
}

func TestCustomizations_UnmarshalLegacyList(t *testing.T) {
	// Early rows stored customizations as a bare list of strings.
	var c Customizations
	err := json.Unmarshal([]byte(`["extra ice","no banana"]`), &c)
	require.NoError(t, err)

	assert.Equal(t, []string{"extra ice", "no banana"}, c.Boosts)
	assert.Empty(t, c.Size)
	assert.Empty(t, c.Notes)
}

func TestCustomizations_UnmarshalNull(t *testing.T) {
	var c Customizations
	err := json.Unmarshal([]byte(`null`), &c)
	require.NoError(t, err)
	assert.True(t, c.IsZero())
}

func TestCustomizations_UnmarshalGarbage(t *testing.T) {
	var c Customizations
	assert.Error(t, json.Unmarshal([]byte(`[1,2,3]`), &c))
	assert.Error(t, json.Unmarshal([]byte(`"plain"`), &c))
}

func TestCustomizations_ScanValueRoundTrip(t *testing.T) {
	orig := Customizations{Size: "small", Boosts: []string{"spinach"}}

	v, err := orig.Value()
	require.NoError(t, err)

	var scanned Customizations
	require.NoError(t, scanned.Scan(v))
	assert.Equal(t, orig, scanned)
}

func TestCustomizations_ScanLegacyColumn(t *testing.T) {
	var c Customizations
	require.NoError(t, c.Scan([]byte(`["extra ice"]`)))
	assert.Equal(t, []string{"extra ice"}, c.Boosts)
}

func TestCustomizations_ScanNil(t *testing.T) {
	c := Customizations{Size: "stale"}
	require.NoError(t, c.Scan(nil))
	assert.True(t, c.IsZero())
}

func TestCustomizations_ScanUnsupported(t *testing.T) {
	var c Customizations
	assert.Error(t, c.Scan(42))
}

func TestOrderItem_WireShape(t *testing.T) {
	item := OrderItem{
		ID:         "i-1",
		OrderID:    "o-1",
		MenuItemID: "m-1",
		Name:       "Berry Blast",
		MenuItem:   ItemRef{Name: "Berry Blast"},
	}

	data, err := json.Marshal(item)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Contains(t, decoded, "menu_items")
	assert.Equal(t, "Berry Blast", decoded["menu_items"].(map[string]any)["name"])
}
