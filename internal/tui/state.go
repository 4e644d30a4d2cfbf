package tui

import (
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/log"

	"github.com/sant0-9/promptsia/internal/config"
	"github.com/sant0-9/promptsia/internal/history"
	"github.com/sant0-9/promptsia/internal/prompt"
)

type noticeKind int

const (
	noticeNone noticeKind = iota
	noticeInfo
	noticeWarning
	noticeError
)

type notice struct {
	kind noticeKind
	text string
}

type state struct {
	// Config
	config *config.Config
	apiKey string
	keyErr error
	logger *log.Logger

	// Backend
	generator     Generator
	providerError error
	store         *history.Store

	// Form
	focus          int
	media          prompt.MediaType
	category       int
	style          int
	selected       map[string]int
	customDuration textinput.Model
	description    textarea.Model

	// Generation
	generating bool
	spinner    spinner.Model
	last       *history.Entry

	notice notice

	// Settings
	settingsMode     string
	settingsSelected int
}

func newState() *state {
	desc := textarea.New()
	desc.Placeholder = "Ej: un gato astronauta flotando sobre la Tierra al atardecer"
	desc.CharLimit = 2000
	desc.ShowLineNumbers = false
	desc.SetHeight(4)
	desc.SetWidth(60)

	custom := textinput.New()
	custom.Placeholder = "ej: 2min, 45s"
	custom.CharLimit = 20
	custom.Width = 20

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	s := &state{
		media:          prompt.MediaImage,
		style:          len(prompt.Styles()) - 1,
		description:    desc,
		customDuration: custom,
		spinner:        sp,
	}
	s.resetCategory()
	return s
}

// resetCategory selects the media type's default category and its field defaults.
func (s *state) resetCategory() {
	s.category = 0
	def := prompt.DefaultCategory(s.media)
	for i, o := range prompt.Categories(s.media) {
		if prompt.Category(o.Value) == def {
			s.category = i
		}
	}
	s.resetExtras()
}

func (s *state) resetExtras() {
	s.selected = make(map[string]int)
	for _, f := range prompt.Fields(s.media, s.currentCategory()) {
		s.selected[f.Key] = optionIndex(f.Options, f.Default)
	}
}

func (s *state) currentCategory() prompt.Category {
	cats := prompt.Categories(s.media)
	return prompt.Category(cats[s.category].Value)
}

func (s *state) currentStyle() string {
	return prompt.Styles()[s.style].Value
}

// request builds the generation request from the form.
func (s *state) request() prompt.Request {
	extras := prompt.Extras{}
	for _, f := range prompt.Fields(s.media, s.currentCategory()) {
		v := f.Options[s.selected[f.Key]]
		switch f.Key {
		case prompt.FieldAspect:
			v = prompt.AspectRatio(v)
		case prompt.FieldDuration:
			v = prompt.Duration(v, s.customDuration.Value())
		}
		extras[f.Key] = v
	}

	return prompt.Request{
		Media:       s.media,
		Category:    s.currentCategory(),
		Description: s.description.Value(),
		Style:       s.currentStyle(),
		Extras:      extras,
	}
}

func (s *state) setNotice(kind noticeKind, text string) {
	s.notice = notice{kind: kind, text: text}
}

func optionIndex(opts []string, v string) int {
	for i, o := range opts {
		if o == v {
			return i
		}
	}
	return 0
}
