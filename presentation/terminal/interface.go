package terminal

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"pageprobe/application/query"
	"pageprobe/domain/interfaces"
	"pageprobe/infrastructure/browser"
	"pageprobe/infrastructure/storage"
)

// Inspector is an interactive shell for probing element state on a live
// page with the query predicates.
type Inspector struct {
	session interfaces.Session
	logger  *logrus.Logger
	reader  *bufio.Reader
}

func NewInspector() (*Inspector, error) {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		// .env file is optional
		fmt.Println("Warning: .env file not found, using environment variables")
	}

	// Setup logger
	logger := logrus.New()
	logger.SetLevel(logrus.InfoLevel)
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})

	// Initialize browser session
	var session interfaces.Session
	var err error
	switch backend := os.Getenv("PAGEPROBE_BACKEND"); backend {
	case "", "playwright":
		session, err = browser.NewPlaywrightSession(storage.NewSessionState(), logger)
	case "selenium":
		session, err = browser.NewSeleniumSession(logger)
	default:
		return nil, fmt.Errorf("unknown backend %q (want playwright or selenium)", backend)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to initialize browser: %w", err)
	}

	return &Inspector{
		session: session,
		logger:  logger,
		reader:  bufio.NewReader(os.Stdin),
	}, nil
}

func (i *Inspector) Run() error {
	defer i.session.Close()

	fmt.Println("pageprobe inspector")
	fmt.Println("===================")
	fmt.Println("Commands:")
	fmt.Println("  open <url>")
	fmt.Println("  check <predicate> <selector> [class]   predicates: exists, notexists,")
	fmt.Println("        hasclass, displayed, notdisplayed, hidden, nothidden,")
	fmt.Println("        focused, notfocused, text")
	fmt.Println("  describe <selector>")
	fmt.Println("  quit")
	fmt.Println()

	for {
		fmt.Print("> ")
		input, err := i.reader.ReadString('\n')
		if err != nil {
			return err
		}

		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}

		if input == "quit" || input == "exit" || input == "q" {
			return nil
		}

		if err := i.dispatch(input); err != nil {
			fmt.Printf("error: %v\n", err)
		}
	}
}

func (i *Inspector) dispatch(input string) error {
	fields := strings.Fields(input)
	ctx := context.Background()

	switch fields[0] {
	case "open":
		if len(fields) != 2 {
			return fmt.Errorf("usage: open <url>")
		}
		return i.session.Navigate(ctx, fields[1])

	case "check":
		if len(fields) < 3 {
			return fmt.Errorf("usage: check <predicate> <selector> [class]")
		}
		return i.check(fields[1], fields[2], fields[3:])

	case "describe":
		if len(fields) != 2 {
			return fmt.Errorf("usage: describe <selector>")
		}
		snap, err := query.Describe(i.session.Element(fields[1]))
		if err != nil {
			return err
		}
		snap.Selector = fields[1]
		out, err := json.MarshalIndent(snap, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(out))
		return nil

	default:
		return fmt.Errorf("unknown command %q", fields[0])
	}
}

func (i *Inspector) check(predicate, selector string, args []string) error {
	element := i.session.Element(selector)

	var result any
	var err error
	switch predicate {
	case "exists":
		result, err = query.Exists(i.session.Elements(selector))
	case "notexists":
		result, err = query.NotExists(i.session.Elements(selector))
	case "hasclass":
		if len(args) != 1 {
			return fmt.Errorf("usage: check hasclass <selector> <class>")
		}
		result, err = query.HasClass(element, args[0])
	case "displayed":
		result, err = query.IsDisplayed(element)
	case "notdisplayed":
		result, err = query.IsNotDisplayed(element)
	case "hidden":
		result, err = query.IsHidden(element)
	case "nothidden":
		result, err = query.IsNotHidden(element)
	case "focused":
		result, err = query.IsFocused(element)
	case "notfocused":
		result, err = query.IsNotFocused(element)
	case "text":
		result, err = query.InnerText(element)
	default:
		return fmt.Errorf("unknown predicate %q", predicate)
	}
	if err != nil {
		return err
	}

	fmt.Printf("%v\n", result)
	return nil
}

func (i *Inspector) Close() error {
	return i.session.Close()
}
