package page

import (
	"html/template"

	"review-sentiment/sentiment"
)

const (
	Icon          = "🎬"
	Heading       = "🎬 Movie Review Sentiment Analysis"
	Prompt        = "Write your review here:"
	ButtonText    = "Predict Sentiment"
	Footer        = "🔸 Made with Go"
	EmptyWarning  = "Please enter a review to analyze."
	PositiveTitle = "🌟 Predicted Sentiment: Positive"
	NegativeTitle = "☹️ Predicted Sentiment: Negative"
)

// View is the data rendered by index.html.
type View struct {
	Title      string
	Icon       string
	Heading    string
	Prompt     string
	ButtonText string
	Footer     string
	Background template.CSS // url(...) value for background-image
	Review     string
	Warning    string
	Result     string
	History    bool
}

// Renderer builds page views. The background is encoded once at startup.
type Renderer struct {
	title      string
	background template.CSS
	history    bool
}

// NewRenderer encodes backgroundPath (may be empty) for reuse on every page.
func NewRenderer(title, backgroundPath string, history bool) (*Renderer, error) {
	uri, err := EncodeBackground(backgroundPath)
	if err != nil {
		return nil, err
	}
	r := &Renderer{title: title, history: history}
	if uri != "" {
		// html/template rejects data: URLs unless marked safe; uri is our own
		// base64 output.
		r.background = template.CSS(`url("` + uri + `")`)
	}
	return r, nil
}

// Blank is the page before any prediction.
func (r *Renderer) Blank() View {
	return View{
		Title:      r.title,
		Icon:       Icon,
		Heading:    Heading,
		Prompt:     Prompt,
		ButtonText: ButtonText,
		Footer:     Footer,
		Background: r.background,
		History:    r.history,
	}
}

// Warn is the page after an empty submission.
func (r *Renderer) Warn(review string) View {
	v := r.Blank()
	v.Review = review
	v.Warning = EmptyWarning
	return v
}

// Result is the page after a successful prediction.
func (r *Renderer) Result(review string, label sentiment.Label) View {
	v := r.Blank()
	v.Review = review
	v.Result = ResultText(label)
	return v
}

// ResultText is the line shown for a label.
func ResultText(label sentiment.Label) string {
	if label == sentiment.Positive {
		return PositiveTitle
	}
	return NegativeTitle
}
