package browser

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/playwright-community/playwright-go"
	"github.com/sirupsen/logrus"

	"pageprobe/domain/interfaces"
)

type playwrightSession struct {
	pw      *playwright.Playwright
	browser playwright.Browser
	context playwright.BrowserContext
	page    playwright.Page
	store   interfaces.SessionStore
	logger  *logrus.Logger
}

// NewPlaywrightSession - launches a chromium session. A previously saved
// session state (cookies, local storage) is restored from the store when one
// exists, and written back on Close.
func NewPlaywrightSession(store interfaces.SessionStore, logger *logrus.Logger) (interfaces.Session, error) {
	pw, err := playwright.Run()
	if err != nil {
		return nil, fmt.Errorf("failed to start playwright: %w", err)
	}

	contextOptions := playwright.BrowserNewContextOptions{
		Viewport: &playwright.Size{
			Width:  1280,
			Height: 720,
		},
		JavaScriptEnabled: playwright.Bool(true),
	}

	if store != nil {
		if data, err := store.LoadState(); err == nil && data != nil {
			var storageState playwright.StorageState
			if err := json.Unmarshal(data, &storageState); err == nil {
				contextOptions.StorageState = storageState.ToOptionalStorageState()
			} else {
				logger.WithError(err).Warn("ignoring unreadable session state")
			}
		}
	}

	headless := os.Getenv("PAGEPROBE_HEADLESS") != "false"
	chromium, err := pw.Chromium.Launch(playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(headless),
	})
	if err != nil {
		pw.Stop()
		return nil, fmt.Errorf("failed to launch browser: %w", err)
	}

	browserContext, err := chromium.NewContext(contextOptions)
	if err != nil {
		chromium.Close()
		pw.Stop()
		return nil, fmt.Errorf("failed to create context: %w", err)
	}

	page, err := browserContext.NewPage()
	if err != nil {
		chromium.Close()
		pw.Stop()
		return nil, fmt.Errorf("failed to create page: %w", err)
	}

	logger.WithField("headless", headless).Info("playwright session started")

	return &playwrightSession{
		pw:      pw,
		browser: chromium,
		context: browserContext,
		page:    page,
		store:   store,
		logger:  logger,
	}, nil
}

// Navigate - navigates to the specified URL
func (s *playwrightSession) Navigate(ctx context.Context, url string) error {
	_, err := s.page.Goto(url, playwright.PageGotoOptions{
		WaitUntil: playwright.WaitUntilStateNetworkidle,
		Timeout:   playwright.Float(30000),
	})
	return err
}

// Element - returns a lazy handle for the first match of selector
func (s *playwrightSession) Element(selector string) interfaces.Element {
	return NewPlaywrightElement(s.page.Locator(selector).First())
}

// Elements - returns the collection of all matches of selector
func (s *playwrightSession) Elements(selector string) interfaces.Collection {
	return &playwrightCollection{locator: s.page.Locator(selector)}
}

// Close - saves session state and shuts the browser down
func (s *playwrightSession) Close() error {
	if s.store != nil {
		if state, err := s.context.StorageState(); err == nil {
			if data, err := json.Marshal(state); err == nil {
				if err := s.store.SaveState(data); err != nil {
					s.logger.WithError(err).Warn("failed to save session state")
				}
			}
		}
	}

	if err := s.browser.Close(); err != nil {
		return fmt.Errorf("failed to close browser: %w", err)
	}
	return s.pw.Stop()
}

var _ interfaces.Session = (*playwrightSession)(nil)
