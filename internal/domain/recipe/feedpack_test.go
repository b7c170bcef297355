package recipe_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/featherlane/henhouse-go/internal/domain/recipe"
)

func TestFeedPackBySize(t *testing.T) {
	p, ok := recipe.FeedPackBySize(recipe.PackMedium)
	require.True(t, ok)
	assert.InDelta(t, 150.0, p.Units, 0.001)
	assert.InDelta(t, 120.0, p.Price, 0.001)

	_, ok = recipe.FeedPackBySize("jumbo")
	assert.False(t, ok)
}

func TestOptimalFeedPack(t *testing.T) {
	tests := []struct {
		name      string
		feed      float64
		livestock int
		money     float64
		wantSize  recipe.PackSize
		wantOK    bool
	}{
		{name: "small farm picks small", feed: 10, livestock: 5, money: 1000, wantSize: recipe.PackSmall, wantOK: true},
		{name: "mid farm picks medium", feed: 50, livestock: 20, money: 1000, wantSize: recipe.PackMedium, wantOK: true},
		{name: "big farm picks bulk", feed: 500, livestock: 80, money: 1000, wantSize: recipe.PackBulk, wantOK: true},
		{name: "emergency takes cheapest affordable", feed: 0, livestock: 80, money: 60, wantSize: recipe.PackSmall, wantOK: true},
		{name: "preferred unaffordable falls back", feed: 500, livestock: 80, money: 130, wantSize: recipe.PackMedium, wantOK: true},
		{name: "broke gets nothing", feed: 0, livestock: 5, money: 10, wantOK: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, ok := recipe.OptimalFeedPack(tt.feed, tt.livestock, tt.money)
			require.Equal(t, tt.wantOK, ok)
			if ok {
				assert.Equal(t, tt.wantSize, p.Size)
			}
		})
	}
}

func TestOptimalFeedPack_EmptyFarmDividesSafely(t *testing.T) {
	p, ok := recipe.OptimalFeedPack(0, 0, 1000)
	require.True(t, ok)
	assert.Equal(t, recipe.PackSmall, p.Size)
}
