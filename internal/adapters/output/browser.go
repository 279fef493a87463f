// internal/adapters/output/browser.go
package output

import (
	"os/exec"
	"runtime"

	"randomnet/internal/core/domain"
)

// BrowserSink opens each discovered URL in the default system browser.
type BrowserSink struct {
	// run launches the opener; swapped out in tests.
	run func(name string, args ...string) error
}

// NewBrowserSink creates a sink that shells out to the platform opener.
func NewBrowserSink() *BrowserSink {
	return &BrowserSink{
		run: func(name string, args ...string) error {
			return exec.Command(name, args...).Start()
		},
	}
}

func (s *BrowserSink) Name() string { return "browser" }

func (s *BrowserSink) Handle(d domain.Discovery) error {
	name, args := openerCommand(runtime.GOOS, d.URL)
	return s.run(name, args...)
}

func openerCommand(goos, url string) (string, []string) {
	switch goos {
	case "darwin":
		return "open", []string{url}
	case "windows":
		return "rundll32", []string{"url.dll,FileProtocolHandler", url}
	default:
		return "xdg-open", []string{url}
	}
}
