// internal/platform/ui/pterm_presenter.go
package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/pterm/pterm"
)

// PTermPresenter renders run progress with pterm: a header box, one
// success line per discovery and a final summary section.
type PTermPresenter struct {
	started time.Time
}

func NewPTermPresenter() *PTermPresenter {
	return &PTermPresenter{}
}

func (p *PTermPresenter) Start(info RunInfo) {
	p.started = time.Now()

	pterm.DefaultHeader.
		WithBackgroundStyle(pterm.NewStyle(pterm.BgCyan)).
		WithTextStyle(pterm.NewStyle(pterm.FgBlack)).
		Println("randomnet - random live-website discovery")

	pterm.Println()

	panel := pterm.DefaultBox.
		WithTitle("Run Configuration").
		WithTitleTopCenter().
		WithRightPadding(4).
		WithLeftPadding(4).
		WithBoxStyle(pterm.NewStyle(pterm.FgCyan))

	text := fmt.Sprintf("Target: %s live sites\n", pterm.Cyan(info.Target))
	text += fmt.Sprintf("Batch size: %d\n", info.BatchSize)
	text += fmt.Sprintf("Probe timeout: %s\n", info.Timeout)
	text += fmt.Sprintf("Handler: %s\n", pterm.Yellow(info.Handler))
	text += fmt.Sprintf("Vocabulary: %d words\n", info.Words)
	text += fmt.Sprintf("Suffixes: %s", strings.Join(info.Suffixes, ", "))

	panel.Println(text)
	pterm.Println()
}

func (p *PTermPresenter) BatchStarted(batch, size int, remaining int64) {
	pterm.Info.Printfln("batch %d: probing %d candidates (%d to go)", batch, size, remaining)
}

func (p *PTermPresenter) Discovered(hit Hit, remaining int64) {
	line := pterm.Cyan(hit.URL)
	if hit.Title != "" {
		line += pterm.Gray(" - " + hit.Title)
	}
	pterm.Success.Printfln("%s", line)
}

func (p *PTermPresenter) Finish(s Summary) {
	pterm.Println()
	pterm.DefaultSection.Println("Summary")

	data := pterm.TableData{
		{"Found", fmt.Sprintf("%d", s.Found)},
		{"Batches", fmt.Sprintf("%d", s.Batches)},
		{"Probes", fmt.Sprintf("%d", s.Probes)},
		{"Dead", fmt.Sprintf("%d", s.Dead)},
		{"Timeouts", fmt.Sprintf("%d", s.Timeouts)},
		{"Transport errors", fmt.Sprintf("%d", s.TransportErrors)},
		{"Elapsed", s.Elapsed.Round(time.Millisecond).String()},
	}
	_ = pterm.DefaultTable.WithData(data).Render()
}
