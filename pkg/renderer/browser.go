package renderer

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/cdproto/runtime"
	"github.com/chromedp/chromedp"
	"golang.org/x/sync/singleflight"

	"github.com/ashramseva/donation-api/pkg/receiptdoc"
)

// A4 paper size in inches for PrintToPDF.
const (
	paperWidthIn  = 8.27
	paperHeightIn = 11.69
)

// DefaultRenderTimeout bounds a single page render, including navigation
// and web-font loading.
const DefaultRenderTimeout = 20 * time.Second

// BrowserRenderer prints the HTML representation of the draw program
// through a shared headless Chrome instance. The browser process is heavy,
// so it is launched lazily exactly once and shared by all requests; each
// render opens its own tab, which is closed on every exit path.
type BrowserRenderer struct {
	res     receiptdoc.Provider
	timeout time.Duration

	sf singleflight.Group

	mu          sync.Mutex
	browserCtx  context.Context
	browserStop context.CancelFunc

	// launch is swapped out in tests to count launches without Chrome.
	launch func() (context.Context, context.CancelFunc, error)
}

// NewBrowserRenderer creates the headless-browser backend. The browser is
// not launched until the first render.
func NewBrowserRenderer(res receiptdoc.Provider, timeout time.Duration) *BrowserRenderer {
	if timeout <= 0 {
		timeout = DefaultRenderTimeout
	}
	r := &BrowserRenderer{res: res, timeout: timeout}
	r.launch = r.launchChrome
	return r
}

func (r *BrowserRenderer) Name() string        { return NameBrowser }
func (r *BrowserRenderer) ContentType() string { return "application/pdf" }

// Render implements Renderer.
func (r *BrowserRenderer) Render(ctx context.Context, doc *receiptdoc.Document) ([]byte, error) {
	html, err := buildHTML(doc, r.res)
	if err != nil {
		return nil, err
	}

	browserCtx, err := r.ensureBrowser()
	if err != nil {
		return nil, fmt.Errorf("renderer: browser launch: %w", err)
	}

	// New tab per request; cancel closes the tab even when the render
	// fails or times out.
	tabCtx, closeTab := chromedp.NewContext(browserCtx)
	defer closeTab()

	tabCtx, cancelTimeout := context.WithTimeout(tabCtx, r.timeout)
	defer cancelTimeout()

	// Honor the caller's deadline/cancellation as well.
	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			closeTab()
		case <-done:
		}
	}()

	var pdf []byte
	err = chromedp.Run(tabCtx,
		chromedp.Navigate("about:blank"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			tree, err := page.GetFrameTree().Do(ctx)
			if err != nil {
				return err
			}
			return page.SetDocumentContent(tree.Frame.ID, html).Do(ctx)
		}),
		// Wait for the embedded web fonts to finish loading; capturing
		// before this point would bake fallback glyphs into the PDF.
		chromedp.Evaluate(`document.fonts.ready.then(() => true)`, nil,
			func(p *runtime.EvaluateParams) *runtime.EvaluateParams {
				return p.WithAwaitPromise(true)
			}),
		chromedp.ActionFunc(func(ctx context.Context) error {
			buf, _, err := page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(paperWidthIn).
				WithPaperHeight(paperHeightIn).
				WithMarginTop(0.4).
				WithMarginBottom(0.4).
				WithMarginLeft(0.45).
				WithMarginRight(0.45).
				Do(ctx)
			if err != nil {
				return err
			}
			pdf = buf
			return nil
		}),
	)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, fmt.Errorf("renderer: browser render aborted: %w", ctxErr)
		}
		return nil, fmt.Errorf("renderer: browser render: %w", err)
	}
	if len(pdf) == 0 {
		return nil, fmt.Errorf("renderer: browser produced an empty document")
	}
	return pdf, nil
}

// ensureBrowser returns the shared browser context, launching the process
// on first use. Concurrent first-callers share one in-flight launch via
// singleflight; nobody races to start a second Chrome.
func (r *BrowserRenderer) ensureBrowser() (context.Context, error) {
	r.mu.Lock()
	if r.browserCtx != nil && r.browserCtx.Err() == nil {
		ctx := r.browserCtx
		r.mu.Unlock()
		return ctx, nil
	}
	r.mu.Unlock()

	_, err, _ := r.sf.Do("launch", func() (interface{}, error) {
		r.mu.Lock()
		alive := r.browserCtx != nil && r.browserCtx.Err() == nil
		r.mu.Unlock()
		if alive {
			return nil, nil
		}

		browserCtx, stop, err := r.launch()
		if err != nil {
			return nil, err
		}
		r.mu.Lock()
		r.browserCtx, r.browserStop = browserCtx, stop
		r.mu.Unlock()
		return nil, nil
	})
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.browserCtx == nil {
		return nil, fmt.Errorf("browser not available")
	}
	return r.browserCtx, nil
}

// launchChrome starts the shared headless Chrome process and verifies it
// is reachable.
func (r *BrowserRenderer) launchChrome() (context.Context, context.CancelFunc, error) {
	allocCtx, cancelAlloc := chromedp.NewExecAllocator(context.Background(),
		append(chromedp.DefaultExecAllocatorOptions[:],
			chromedp.Flag("disable-dev-shm-usage", true),
			chromedp.Flag("no-sandbox", true),
		)...)

	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx)
	stop := func() {
		cancelBrowser()
		cancelAlloc()
	}

	// Force the process to start now so launch failures surface here, not
	// on the first render.
	startCtx, cancel := context.WithTimeout(browserCtx, 30*time.Second)
	defer cancel()
	if err := chromedp.Run(startCtx); err != nil {
		stop()
		return nil, nil, err
	}
	return browserCtx, stop, nil
}

// Shutdown terminates the shared browser process. Safe to call when the
// browser was never launched.
func (r *BrowserRenderer) Shutdown() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.browserStop != nil {
		r.browserStop()
		r.browserCtx, r.browserStop = nil, nil
	}
}
