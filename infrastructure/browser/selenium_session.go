package browser

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/tebeka/selenium"
	"github.com/tebeka/selenium/chrome"

	"pageprobe/domain/interfaces"
)

const chromeDriverPort = 9515

type seleniumSession struct {
	wd      selenium.WebDriver
	service *selenium.Service
	logger  *logrus.Logger
}

// findChromeDriver - finds ChromeDriver executable path
func findChromeDriver() (string, error) {
	if path := os.Getenv("BROWSER_DRIVER_PATH"); path != "" {
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}

	commonPaths := []string{
		"/usr/local/bin/chromedriver",
		"/usr/bin/chromedriver",
		"/opt/homebrew/bin/chromedriver",
		filepath.Join(os.Getenv("HOME"), "bin", "chromedriver"),
	}

	for _, path := range commonPaths {
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}

	if path, err := exec.LookPath("chromedriver"); err == nil {
		return path, nil
	}

	return "", fmt.Errorf("chromedriver not found. Please install it or set BROWSER_DRIVER_PATH environment variable")
}

// NewSeleniumSession - starts chromedriver and opens a chrome session
func NewSeleniumSession(logger *logrus.Logger) (interfaces.Session, error) {
	driverPath, err := findChromeDriver()
	if err != nil {
		return nil, fmt.Errorf("failed to find chromedriver: %w", err)
	}
	logger.Infof("Using ChromeDriver at: %s", driverPath)

	service, err := selenium.NewChromeDriverService(driverPath, chromeDriverPort)
	if err != nil {
		return nil, fmt.Errorf("failed to start chromedriver: %w", err)
	}

	caps := selenium.Capabilities{
		"browserName": "chrome",
	}
	chromeCaps := chrome.Capabilities{
		Args: []string{
			"--disable-blink-features=AutomationControlled",
			"--disable-dev-shm-usage",
			"--no-sandbox",
		},
	}
	if os.Getenv("PAGEPROBE_HEADLESS") != "false" {
		chromeCaps.Args = append(chromeCaps.Args, "--headless=new")
	}
	caps.AddChrome(chromeCaps)

	wd, err := selenium.NewRemote(caps, fmt.Sprintf("http://localhost:%d/wd/hub", chromeDriverPort))
	if err != nil {
		service.Stop()
		return nil, fmt.Errorf("failed to create webdriver: %w", err)
	}

	logger.Info("selenium session started")

	return &seleniumSession{
		wd:      wd,
		service: service,
		logger:  logger,
	}, nil
}

// Navigate - navigates browser to specified URL
func (s *seleniumSession) Navigate(ctx context.Context, url string) error {
	s.logger.Infof("Navigating to: %s", url)
	return s.wd.Get(url)
}

// Element - returns a lazy handle for the first match of selector
func (s *seleniumSession) Element(selector string) interfaces.Element {
	return NewSeleniumElement(s.wd, selector)
}

// Elements - returns the collection of all matches of selector
func (s *seleniumSession) Elements(selector string) interfaces.Collection {
	return &seleniumCollection{wd: s.wd, selector: selector}
}

// Close - quits the webdriver session and stops chromedriver
func (s *seleniumSession) Close() error {
	if err := s.wd.Quit(); err != nil {
		s.logger.Warnf("Failed to quit webdriver: %v", err)
	}
	return s.service.Stop()
}

var _ interfaces.Session = (*seleniumSession)(nil)
