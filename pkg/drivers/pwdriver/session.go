// Package pwdriver runs the page model on top of playwright-go.
package pwdriver

import (
	"context"
	"fmt"
	"time"

	"github.com/bf2fc6cc711aee1a0c2a/browser-steps/pkg/browser"
	"github.com/bf2fc6cc711aee1a0c2a/browser-steps/pkg/config"
	"github.com/bf2fc6cc711aee1a0c2a/browser-steps/pkg/logger"
	"github.com/playwright-community/playwright-go"
)

type Session struct {
	pw      *playwright.Playwright
	browser playwright.Browser
	page    playwright.Page
}

var _ browser.Session = &Session{}
var _ browser.Driver = &Session{}

// New starts playwright and opens a chromium page sized to the configured window.
func New(cfg *config.BrowserConfig) (*Session, error) {
	pw, err := playwright.Run()
	if err != nil {
		return nil, fmt.Errorf("could not start playwright: %w", err)
	}

	b, err := pw.Chromium.Launch(playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(cfg.Headless),
	})
	if err != nil {
		_ = pw.Stop()
		return nil, fmt.Errorf("could not launch browser: %w", err)
	}

	page, err := b.NewPage(playwright.BrowserNewPageOptions{
		Viewport: &playwright.Size{
			Width:  cfg.WindowWidth,
			Height: cfg.WindowHeight,
		},
	})
	if err != nil {
		_ = b.Close()
		_ = pw.Stop()
		return nil, fmt.Errorf("could not create page: %w", err)
	}
	if cfg.StepTimeout > 0 {
		page.SetDefaultTimeout(float64(cfg.StepTimeout.Milliseconds()))
		page.SetDefaultNavigationTimeout(float64(cfg.StepTimeout.Milliseconds()))
	}

	logger.Logger.V(2).Infof("playwright session started, headless=%t", cfg.Headless)
	return &Session{pw: pw, browser: b, page: page}, nil
}

func (s *Session) Page() browser.Page {
	return browser.NewPage(&document{page: s.page})
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
	if err := ctx.Err(); err != nil {
		return err
	}
	_, err := s.page.Evaluate(browser.DiscardResult(code))
	return err
}

func (s *Session) Screenshot(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.page.Screenshot(playwright.PageScreenshotOptions{
		FullPage: playwright.Bool(true),
		Timeout:  timeoutMillis(ctx),
	})
}

func (s *Session) ResizeWindow(ctx context.Context, width, height int) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.page.SetViewportSize(width, height)
}

func (s *Session) Close() error {
	if err := s.browser.Close(); err != nil {
		_ = s.pw.Stop()
		return fmt.Errorf("could not close browser: %w", err)
	}
	return s.pw.Stop()
}

// timeoutMillis converts the context deadline into a playwright timeout.
// A nil result keeps the page default.
func timeoutMillis(ctx context.Context) *float64 {
	deadline, ok := ctx.Deadline()
	if !ok {
		return nil
	}
	remaining := time.Until(deadline)
	if remaining < time.Millisecond {
		remaining = time.Millisecond
	}
	return playwright.Float(float64(remaining.Milliseconds()))
}
