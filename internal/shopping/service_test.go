package shopping

import (
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/timeline-dev/timeline/internal/model"
	"github.com/timeline-dev/timeline/internal/store"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	st, err := store.Open(filepath.Join(t.TempDir(), "timeline.db"), "timeline", log)
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	return NewService(st, nil)
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestAddItem(t *testing.T) {
	svc := newTestService(t)

	item, err := svc.AddItem(ItemParams{Name: "Rice", ExpectedPrice: dec("85"), Priority: model.PriorityHigh})
	require.NoError(t, err)
	assert.NotEmpty(t, item.ID)
	assert.False(t, item.Bought, "new items start unbought")
	assert.False(t, item.CreatedAt.IsZero())

	items := svc.Items()
	require.Len(t, items, 1)
	assert.Equal(t, item.ID, items[0].ID)
	assert.Equal(t, "Rice", items[0].Name)
	assert.True(t, items[0].ExpectedPrice.Equal(dec("85")))
	assert.Equal(t, model.PriorityHigh, items[0].Priority)
}

func TestAddItem_Rejections(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.AddItem(ItemParams{Name: "  ", Priority: model.PriorityLow})
	require.Error(t, err)

	_, err = svc.AddItem(ItemParams{Name: "Milk", Priority: "urgent"})
	require.Error(t, err)

	_, err = svc.AddItem(ItemParams{Name: "Milk", ExpectedPrice: dec("-5"), Priority: model.PriorityLow})
	require.Error(t, err)

	assert.Empty(t, svc.Items())
}

func TestToggleBought_TwiceRestoresOriginal(t *testing.T) {
	svc := newTestService(t)

	item, err := svc.AddItem(ItemParams{Name: "Eggs", Priority: model.PriorityMedium})
	require.NoError(t, err)

	once, err := svc.ToggleBought(item.ID)
	require.NoError(t, err)
	assert.True(t, once.Bought)

	twice, err := svc.ToggleBought(item.ID)
	require.NoError(t, err)
	assert.False(t, twice.Bought)
}

func TestDelete_RemovesExactlyOne(t *testing.T) {
	svc := newTestService(t)

	a, err := svc.AddItem(ItemParams{Name: "A", Priority: model.PriorityLow})
	require.NoError(t, err)
	b, err := svc.AddItem(ItemParams{Name: "B", Priority: model.PriorityLow})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(a.ID))

	items := svc.Items()
	require.Len(t, items, 1)
	assert.Equal(t, b.ID, items[0].ID)
	assert.Equal(t, "B", items[0].Name)
}

func TestParsePrice(t *testing.T) {
	assert.True(t, ParsePrice("").IsZero())
	assert.True(t, ParsePrice("abc").IsZero())
	assert.True(t, ParsePrice("-3").IsZero())
	assert.True(t, ParsePrice("12.50").Equal(dec("12.50")))
}
