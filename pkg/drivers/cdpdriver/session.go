// Package cdpdriver runs the page model on top of chromedp.
package cdpdriver

import (
	"context"
	"fmt"

	"github.com/bf2fc6cc711aee1a0c2a/browser-steps/pkg/browser"
	"github.com/bf2fc6cc711aee1a0c2a/browser-steps/pkg/config"
	"github.com/bf2fc6cc711aee1a0c2a/browser-steps/pkg/logger"
	"github.com/chromedp/chromedp"
)

type Session struct {
	tabCtx      context.Context
	cancelTab   context.CancelFunc
	cancelAlloc context.CancelFunc
}

var _ browser.Session = &Session{}
var _ browser.Driver = &Session{}

func allocatorOptions(cfg *config.BrowserConfig) []chromedp.ExecAllocatorOption {
	opts := append([]chromedp.ExecAllocatorOption{}, chromedp.DefaultExecAllocatorOptions[:]...)
	opts = append(opts,
		chromedp.Flag("headless", cfg.Headless),
		chromedp.Flag("disable-gpu", cfg.Headless),
		chromedp.Flag("no-first-run", true),
		chromedp.Flag("disable-extensions", true),
		chromedp.WindowSize(cfg.WindowWidth, cfg.WindowHeight),
	)
	return opts
}

// New launches chrome and opens a blank tab. The browser lives until Close
// is called or ctx is cancelled.
func New(ctx context.Context, cfg *config.BrowserConfig) (*Session, error) {
	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, allocatorOptions(cfg)...)
	tabCtx, cancelTab := chromedp.NewContext(allocCtx,
		chromedp.WithLogf(logger.Logger.V(10).Infof),
		chromedp.WithErrorf(logger.Logger.V(2).Infof),
	)

	if err := chromedp.Run(tabCtx, chromedp.Navigate("about:blank")); err != nil {
		cancelTab()
		cancelAlloc()
		return nil, fmt.Errorf("could not start chrome: %w", err)
	}

	logger.Logger.V(2).Infof("chromedp session started, headless=%t", cfg.Headless)
	return &Session{tabCtx: tabCtx, cancelTab: cancelTab, cancelAlloc: cancelAlloc}, nil
}

func (s *Session) Page() browser.Page {
	return browser.NewPage(&document{session: s})
}

func (s *Session) Driver() browser.Driver {
	return s
}

func (s *Session) Supports(capability browser.Capability) bool {
	switch capability {
	case browser.CapabilityResizeWindow, browser.CapabilityScreenshot, browser.CapabilityScript:
		return true
	default:
		return false
	}
}

func (s *Session) ExecuteScript(ctx context.Context, code string) error {
	return s.run(ctx, chromedp.Evaluate(browser.DiscardResult(code), nil))
}

func (s *Session) Screenshot(ctx context.Context) ([]byte, error) {
	var buf []byte
	if err := s.run(ctx, chromedp.FullScreenshot(&buf, 100)); err != nil {
		return nil, err
	}
	return buf, nil
}

func (s *Session) ResizeWindow(ctx context.Context, width, height int) error {
	return s.run(ctx, chromedp.EmulateViewport(int64(width), int64(height)))
}

func (s *Session) Close() error {
	err := chromedp.Cancel(s.tabCtx)
	s.cancelTab()
	s.cancelAlloc()
	if err != nil {
		return fmt.Errorf("could not close browser: %w", err)
	}
	return nil
}

// run executes actions on the tab, bounded by the deadline and cancellation of ctx.
func (s *Session) run(ctx context.Context, actions ...chromedp.Action) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	runCtx, cancel := context.WithCancel(s.tabCtx)
	defer cancel()
	if deadline, ok := ctx.Deadline(); ok {
		runCtx, cancel = context.WithDeadline(runCtx, deadline)
		defer cancel()
	}
	stop := context.AfterFunc(ctx, cancel)
	defer stop()

	return chromedp.Run(runCtx, actions...)
}
