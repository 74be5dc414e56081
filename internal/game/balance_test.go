package game

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBalance_OverridesKeepDefaults(t *testing.T) {
	b, err := ParseBalance([]byte(`
prices:
  new_room: 7500
food:
  max_stock: 300
`))
	require.NoError(t, err)

	assert.Equal(t, 7500, b.Prices.NewRoom)
	assert.Equal(t, 300, b.Food.MaxStock)
	assert.Equal(t, 500, b.Prices.UpgradeRoom)
	assert.Equal(t, 10000, b.Starting.Money)
	assert.Equal(t, "John Doe", b.Starting.StaffName)
}

func TestParseBalance_Invalid(t *testing.T) {
	cases := map[string]string{
		"room quality":  "room:\n  quality: 6\n",
		"staff mood":    "staff:\n  happiness: 0.5\n",
		"food stock":    "starting:\n  food_stock: 500\n",
		"negative cost": "prices:\n  clean_room: -1\n",
		"thresholds":    "food:\n  medium_threshold: 80\n",
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := ParseBalance([]byte(doc))
			assert.ErrorIs(t, err, ErrInvalidBalance)
		})
	}
}

func TestParseBalance_Malformed(t *testing.T) {
	_, err := ParseBalance([]byte("prices: [1, 2"))
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidBalance)
}

func TestLoadBalance(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hotel.yaml")
	require.NoError(t, os.WriteFile(path, []byte("starting:\n  money: 2500\n"), 0o644))

	b, err := LoadBalance(path)
	require.NoError(t, err)
	assert.Equal(t, 2500, b.Starting.Money)

	_, err = LoadBalance(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestDefaultBalanceIsValid(t *testing.T) {
	assert.NoError(t, DefaultBalance().Validate())
}
