// internal/platform/ui/noop_presenter.go
package ui

// NoopPresenter renders nothing. Used in tests and with --ui none.
type NoopPresenter struct{}

func NewNoopPresenter() *NoopPresenter { return &NoopPresenter{} }

func (NoopPresenter) Start(RunInfo)                {}
func (NoopPresenter) BatchStarted(int, int, int64) {}
func (NoopPresenter) Discovered(Hit, int64)        {}
func (NoopPresenter) Finish(Summary)               {}
