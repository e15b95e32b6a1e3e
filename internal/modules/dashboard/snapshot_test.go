package dashboard

import (
	"testing"

	"github.com/aristath/investai/internal/modules/charts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTab(t *testing.T) {
	tests := []struct {
		in      string
		want    Tab
		wantErr bool
	}{
		{"Overview", TabOverview, false},
		{"technical", TabTechnical, false},
		{" FUNDAMENTALS ", TabFundamentals, false},
		{"News", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseTab(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnknownTab)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGetView_Overview(t *testing.T) {
	view, err := GetView("overview")
	require.NoError(t, err)

	assert.Equal(t, TabOverview, view.Tab)
	require.Len(t, view.Cards, 2)
	assert.Equal(t, "Nifty 50", view.Cards[0].Title)
	assert.Equal(t, "22,150", view.Cards[0].Value)
	assert.Equal(t, "0.8%", view.Cards[0].Delta)
	assert.True(t, view.Cards[0].DeltaPositive)
	assert.Equal(t, "Sensex", view.Cards[1].Title)
	assert.Equal(t, "purple", view.Cards[1].Color)

	require.NotNil(t, view.Insight)
	assert.Equal(t, "signal", view.Insight.Tag)
	require.NotNil(t, view.PriceAction)
	assert.Equal(t, []float64{120, 129, 126, 134, 141, 139, 148}, view.PriceAction.Points)
	assert.Empty(t, view.Levels)
	assert.Empty(t, view.Sectors)
}

func TestGetView_Technical(t *testing.T) {
	view, err := GetView("Technical")
	require.NoError(t, err)

	require.Len(t, view.Cards, 2)
	assert.Equal(t, "56.3", view.Cards[0].Value)
	assert.Equal(t, "2.1%", view.Cards[0].Delta)
	assert.Equal(t, "Bullish", view.Cards[1].Value)
	assert.Equal(t, "+", view.Cards[1].Delta)
	assert.True(t, view.Cards[1].DeltaPositive)

	assert.Equal(t, []Level{
		{Label: "Support 1", Value: "21,980"},
		{Label: "Support 2", Value: "21,750"},
		{Label: "Resistance 1", Value: "22,260"},
		{Label: "Resistance 2", Value: "22,520"},
	}, view.Levels)
	assert.Nil(t, view.Insight)
	assert.Nil(t, view.PriceAction)
}

func TestGetView_Fundamentals(t *testing.T) {
	view, err := GetView("Fundamentals")
	require.NoError(t, err)

	require.Len(t, view.Cards, 2)
	assert.Equal(t, "0.3%", view.Cards[0].Delta)
	assert.False(t, view.Cards[0].DeltaPositive)
	assert.Equal(t, "0.1%", view.Cards[1].Delta)
	assert.True(t, view.Cards[1].DeltaPositive)

	require.Len(t, view.Sectors, 6)
	assert.Equal(t, SectorScore{Name: "IT", Score: 72}, view.Sectors[0])
	assert.Equal(t, SectorScore{Name: "Pharma", Score: 55}, view.Sectors[5])
}

func TestGetView_Unknown(t *testing.T) {
	_, err := GetView("Options")
	assert.ErrorIs(t, err, ErrUnknownTab)
}

func TestCards_DeltaSign(t *testing.T) {
	assert.True(t, NumericCard("x", "1", 0, "indigo").DeltaPositive, "zero counts as positive")
	assert.False(t, NumericCard("x", "1", -0.01, "indigo").DeltaPositive)
	assert.False(t, TextCard("x", "Bearish", "-", "indigo").DeltaPositive)
	assert.True(t, TextCard("x", "Flat", "+0", "indigo").DeltaPositive)
}

func TestCards_Sparkline(t *testing.T) {
	card := NumericCard("x", "1", 1, "indigo")
	assert.Equal(t, charts.SparklinePath(cardSeries, charts.DefaultWidth, charts.DefaultHeight), card.Sparkline.Path)
	assert.NotEmpty(t, card.Sparkline.Path)
}
