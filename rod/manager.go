package rod

import (
	"fmt"
	"sync"

	"github.com/fwojciec/digest"
	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
)

// DefaultMaxPages is the number of pages a browser renders before it is
// replaced. Ad-heavy news pages make Chrome's memory grow quickly.
const DefaultMaxPages = 50

// DefaultUserAgent replaces Chrome's headless user agent, which many news
// sites answer with a bot wall.
const DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

// BrowserManager hands out a shared headless browser and replaces it after
// it has rendered maxPages pages. A browser is only replaced when no lease
// on it is outstanding.
//
// BrowserManager is safe for concurrent use.
type BrowserManager struct {
	mu       sync.Mutex
	browser  *rod.Browser
	launcher *launcher.Launcher
	pages    int64
	active   int
	closed   bool

	maxPages  int64
	userAgent string
	images    bool
}

// ManagerOption configures a BrowserManager.
type ManagerOption func(*BrowserManager)

// WithMaxPages sets the number of pages rendered before the browser is replaced.
func WithMaxPages(n int64) ManagerOption {
	return func(bm *BrowserManager) {
		bm.maxPages = n
	}
}

// WithBrowserUserAgent overrides DefaultUserAgent.
func WithBrowserUserAgent(ua string) ManagerOption {
	return func(bm *BrowserManager) {
		bm.userAgent = ua
	}
}

// WithImages enables image loading. Images are off by default since only
// article text is extracted.
func WithImages(enabled bool) ManagerOption {
	return func(bm *BrowserManager) {
		bm.images = enabled
	}
}

// NewBrowserManager launches a headless Chrome browser.
// Close must be called when the BrowserManager is no longer needed.
func NewBrowserManager(opts ...ManagerOption) (*BrowserManager, error) {
	bm := &BrowserManager{
		maxPages:  DefaultMaxPages,
		userAgent: DefaultUserAgent,
	}
	for _, opt := range opts {
		opt(bm)
	}

	browser, lnchr, err := bm.launch()
	if err != nil {
		return nil, err
	}
	bm.browser, bm.launcher = browser, lnchr
	return bm, nil
}

// Acquire returns the current browser and a release func that must be called
// once the page is done. A worn-out browser is replaced first when nobody
// else holds it.
func (bm *BrowserManager) Acquire() (*rod.Browser, func(), error) {
	bm.mu.Lock()
	defer bm.mu.Unlock()

	if bm.closed {
		return nil, nil, digest.Errorf(digest.EINVALID, "browser is closed")
	}
	if bm.pages >= bm.maxPages && bm.active == 0 {
		bm.recycle()
	}

	bm.active++
	var once sync.Once
	release := func() {
		once.Do(func() {
			bm.mu.Lock()
			defer bm.mu.Unlock()
			bm.active--
			bm.pages++
		})
	}
	return bm.browser, release, nil
}

// Close releases browser resources. Close is safe to call multiple times.
func (bm *BrowserManager) Close() error {
	bm.mu.Lock()
	defer bm.mu.Unlock()

	if bm.closed {
		return nil
	}
	bm.closed = true

	var err error
	if bm.browser != nil {
		err = bm.browser.Close()
		bm.browser = nil
	}
	if bm.launcher != nil {
		bm.launcher.Kill()
		bm.launcher = nil
	}
	return err
}

// LauncherPID returns the process ID of the browser launcher, or 0 when closed.
func (bm *BrowserManager) LauncherPID() int {
	bm.mu.Lock()
	defer bm.mu.Unlock()
	if bm.launcher == nil {
		return 0
	}
	return bm.launcher.PID()
}

// launch starts a browser configured for reading articles.
func (bm *BrowserManager) launch() (*rod.Browser, *launcher.Launcher, error) {
	lnchr := launcher.New().
		Set("disable-background-timer-throttling").
		Set("disable-renderer-backgrounding").
		Set("disable-dev-shm-usage").
		Set("disable-notifications").
		Set("mute-audio").
		Set("user-agent", bm.userAgent).
		Leakless(true).
		Headless(true)
	if !bm.images {
		lnchr = lnchr.Set("blink-settings", "imagesEnabled=false")
	}

	u, err := lnchr.Launch()
	if err != nil {
		return nil, nil, fmt.Errorf("launching browser: %w", err)
	}

	browser := rod.New().ControlURL(u)
	if err := browser.Connect(); err != nil {
		lnchr.Kill()
		return nil, nil, fmt.Errorf("connecting to browser: %w", err)
	}
	return browser, lnchr, nil
}

// recycle replaces the browser, keeping the old one if a new one cannot be
// launched. Must be called with mu held and no active leases.
func (bm *BrowserManager) recycle() {
	browser, lnchr, err := bm.launch()
	if err != nil {
		return
	}

	if bm.browser != nil {
		_ = bm.browser.Close()
	}
	if bm.launcher != nil {
		bm.launcher.Kill()
	}
	bm.browser, bm.launcher = browser, lnchr
	bm.pages = 0
}
