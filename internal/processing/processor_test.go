package processing_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/basirah-app/backend/internal/processing"
)

func TestCleanText(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "empty", input: "", want: ""},
		{name: "plain", input: "حكم زكاة الذهب", want: "حكم زكاة الذهب"},
		{name: "strips tags", input: "<p>الزكاة <b>واجبة</b></p>", want: "الزكاة واجبة"},
		{name: "decodes entities", input: "الزكاة&nbsp;واجبة &amp; مفروضة &quot;نصاً&quot;", want: `الزكاة واجبة & مفروضة "نصاً"`},
		{name: "collapses whitespace", input: "  foo\n\nbar\t baz  ", want: "foo bar baz"},
		{name: "tag spanning attributes", input: `<a href="https://example.com">رابط</a>`, want: "رابط"},
		{name: "encoded markup", input: "&lt;div&gt;نص&lt;/div&gt;", want: "نص"},
		{name: "apostrophe entity", input: "it&#39;s", want: "it's"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, processing.CleanText(tt.input))
		})
	}
}

func TestCleanTextLeavesNoMarkup(t *testing.T) {
	inputs := []string{
		"<p>a</p><div>b</div>",
		"&lt;script&gt;x&lt;/script&gt;",
		"<br/><br/>&nbsp;&nbsp;",
	}
	entities := []string{"&nbsp;", "&amp;", "&lt;", "&gt;", "&quot;", "&#39;"}

	for _, input := range inputs {
		got := processing.CleanText(input)
		require.NotRegexp(t, `<[^>]*>`, got)
		for _, e := range entities {
			require.NotContains(t, got, e)
		}
	}
}

func TestQuestionKeywords(t *testing.T) {
	tests := []struct {
		name     string
		question string
		want     []string
	}{
		{name: "empty", question: "", want: nil},
		{name: "drops short tokens", question: "ما حكم زكاة الذهب؟", want: []string{"حكم", "زكاة", "الذهب"}},
		{name: "strips punctuation", question: "هل الصلاة، واجبة؟!", want: []string{"الصلاة", "واجبة"}},
		{name: "lowercases", question: "What Is Riba", want: []string{"what", "riba"}},
		{name: "deduplicates", question: "زكاة زكاة المال", want: []string{"زكاة", "المال"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, processing.QuestionKeywords(tt.question, 3))
		})
	}
}

func TestTruncate(t *testing.T) {
	require.Equal(t, "short", processing.Truncate("short", 10))
	require.Equal(t, "exact", processing.Truncate("exact", 5))

	long := strings.Repeat("م", 40)
	got := processing.Truncate(long, 20)
	require.Equal(t, 20, len([]rune(got)))
	require.True(t, strings.HasSuffix(got, processing.TruncationMarker))
}

func TestTitleFromText(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		maxWords int
		want     string
	}{
		{name: "empty", text: "", maxWords: 10, want: ""},
		{name: "first sentence", text: "الزكاة واجبة. وتجب في الذهب والفضة.", maxWords: 10, want: "الزكاة واجبة"},
		{name: "arabic question mark", text: "هل تجب الزكاة؟ نعم تجب.", maxWords: 10, want: "هل تجب الزكاة"},
		{name: "word cap", text: "كلمة واحدة اثنتان ثلاث أربع خمس", maxWords: 3, want: "كلمة واحدة اثنتان..."},
		{name: "no sentence end", text: "نص بلا نهاية جملة", maxWords: 10, want: "نص بلا نهاية جملة"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, processing.TitleFromText(tt.text, tt.maxWords))
		})
	}
}
