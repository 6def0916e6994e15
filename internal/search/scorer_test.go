package search_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/basirah-app/backend/internal/models"
	"github.com/basirah-app/backend/internal/search"
)

var testWeights = search.Weights{KeywordBonus: 10, TitleBonus: 20}

func TestScoreGrowsWithContentLength(t *testing.T) {
	short := models.Candidate{Content: strings.Repeat("م", 50), Tier: models.TierArticle}
	long := models.Candidate{Content: strings.Repeat("م", 500), Tier: models.TierArticle}

	require.Greater(t, search.Score(long, nil, testWeights), search.Score(short, nil, testWeights))
}

func TestScoreTierWeighting(t *testing.T) {
	content := strings.Repeat("م", 100)
	article := models.Candidate{Content: content, Tier: models.TierArticle}
	description := models.Candidate{Content: content, Tier: models.TierDescription}
	title := models.Candidate{Content: content, Tier: models.TierTitle}

	require.Greater(t, search.Score(article, nil, testWeights), search.Score(description, nil, testWeights))
	require.Greater(t, search.Score(description, nil, testWeights), search.Score(title, nil, testWeights))
}

func TestScoreKeywordBonuses(t *testing.T) {
	base := models.Candidate{Content: "تجب الزكاة في المال", Tier: models.TierNotes}
	keywords := []string{"الزكاة"}

	without := search.Score(models.Candidate{Content: "تجب في المال اتفاقا", Tier: models.TierNotes}, keywords, testWeights)
	bodyHit := search.Score(base, keywords, testWeights)
	require.InDelta(t, 10, bodyHit-without, 0.5)

	titled := base
	titled.Title = "أحكام الزكاة"
	titleHit := search.Score(titled, keywords, testWeights)
	// title match adds the title bonus on top of the body bonus
	require.InDelta(t, 20, titleHit-bodyHit, 1.5)
}

func TestScoreNeverNegative(t *testing.T) {
	require.GreaterOrEqual(t, search.Score(models.Candidate{}, []string{"x"}, testWeights), 0.0)
}
