package presenter

import (
	"log/slog"

	"github.com/jangho/subcrop-go/config"
	"github.com/jangho/subcrop-go/domain/subtitle"
)

// TranscriptView exposes the raw OCR input and the cleaned output rows.
type TranscriptView interface {
	RawLines() []string
	SetCleanLines(lines []string)
}

// TextPresenter runs the subtitle post-processing over pasted OCR output:
// composition filtering followed by exact and fuzzy deduplication. The filter
// thresholds and dedupe threshold come from config so a saved setup applies
// to every run.
type TextPresenter struct {
	view   TranscriptView
	cfg    *config.Config
	logger *slog.Logger
}

func NewTextPresenter(view TranscriptView, cfg *config.Config, logger *slog.Logger) *TextPresenter {
	return &TextPresenter{view: view, cfg: cfg, logger: logger}
}

// Clean filters and deduplicates the pasted lines and writes the result back
// to the view.
func (p *TextPresenter) Clean() {
	if p == nil || p.view == nil || p.cfg == nil {
		return
	}
	raw := p.view.RawLines()
	filtered := subtitle.FilterLines(raw, subtitle.FilterOptions{
		KoreanOnly:     p.cfg.KoreanOnly,
		IncludeEnglish: p.cfg.IncludeEnglish,
	})
	cleaned := subtitle.Dedupe(filtered, p.cfg.DedupeThreshold)
	p.view.SetCleanLines(cleaned)
	if p.logger != nil {
		p.logger.Info("transcript cleaned", "in", len(raw), "kept", len(cleaned))
	}
}
