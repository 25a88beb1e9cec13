package navigation

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/navkit/navshell/internal/logging"
	"github.com/navkit/navshell/internal/logging/events"
)

// configRelPath is the tree location relative to the shell's root directory.
const configRelPath = "config/navigation.json"

// Provider loads the navigation tree from a remote root or a local
// directory. Load never fails outward: any fetch or decode problem falls
// back to the embedded default tree.
type Provider struct {
	// Root is where the shell document lives: an http(s) base URL or a
	// local directory. Empty means the current working directory.
	Root string
	// DocPath is the document's site-relative path, used to climb back to
	// the site root at any nesting depth.
	DocPath string
	Client  *http.Client
}

// RelativeRoot computes the ../ prefix that climbs from the document's
// directory back to the shell root, so the same tree location works at any
// nesting depth.
func RelativeRoot(docPath string) string {
	dir := path.Dir(strings.TrimPrefix(docPath, "/"))
	if dir == "." || dir == "/" {
		return ""
	}
	depth := strings.Count(dir, "/") + 1
	return strings.Repeat("../", depth)
}

// Load fetches and normalizes the navigation tree. The returned config is
// always structurally valid.
func (p *Provider) Load(ctx context.Context) Config {
	cfg, err := p.load(ctx)
	if err != nil {
		logging.Warnf("navigation config unavailable, using embedded default: %v", err)
		events.Config.Fallback(p.source(), err)
		return Default()
	}
	cfg.Normalize()
	if len(cfg.Sections) == 0 {
		logging.Warnf("navigation config at %s has no sections, using embedded default", p.source())
		events.Config.Fallback(p.source(), fmt.Errorf("empty tree"))
		return Default()
	}
	events.Config.Loaded(p.source(), len(cfg.Sections))
	return cfg
}

func (p *Provider) source() string {
	rel := RelativeRoot(p.DocPath) + configRelPath
	if p.isRemote() {
		raw := strings.TrimSuffix(p.Root, "/") + "/" + rel
		u, err := url.Parse(raw)
		if err != nil {
			return raw
		}
		u.Path = path.Clean(u.Path)
		return u.String()
	}
	return filepath.Clean(filepath.Join(p.Root, filepath.FromSlash(rel)))
}

func (p *Provider) isRemote() bool {
	return strings.HasPrefix(p.Root, "http://") || strings.HasPrefix(p.Root, "https://")
}

func (p *Provider) load(ctx context.Context) (Config, error) {
	if p.isRemote() {
		return p.fetch(ctx)
	}
	return p.read()
}

func (p *Provider) fetch(ctx context.Context) (Config, error) {
	client := p.Client
	if client == nil {
		client = &http.Client{Timeout: 5 * time.Second}
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.source(), nil)
	if err != nil {
		return Config{}, fmt.Errorf("build config request: %w", err)
	}
	resp, err := client.Do(req)
	if err != nil {
		return Config{}, fmt.Errorf("fetch %s: %w", p.source(), err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return Config{}, fmt.Errorf("fetch %s: status %d", p.source(), resp.StatusCode)
	}
	var cfg Config
	if err := json.NewDecoder(resp.Body).Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode %s: %w", p.source(), err)
	}
	return cfg, nil
}

func (p *Provider) read() (Config, error) {
	data, err := os.ReadFile(p.source())
	if err != nil {
		return Config{}, fmt.Errorf("read %s: %w", p.source(), err)
	}
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("decode %s: %w", p.source(), err)
	}
	return cfg, nil
}

// Watch monitors a local tree file and delivers re-loaded configs on the
// returned channel until ctx is cancelled. Remote roots are not watched.
func (p *Provider) Watch(ctx context.Context) (<-chan Config, error) {
	if p.isRemote() {
		return nil, nil
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create config watcher: %w", err)
	}
	if err := watcher.Add(filepath.Dir(p.source())); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("watch %s: %w", p.source(), err)
	}
	updates := make(chan Config, 1)
	gate := newThrottle(250 * time.Millisecond)
	go func() {
		defer watcher.Close()
		defer close(updates)
		target := filepath.Clean(p.source())
		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != target {
					continue
				}
				if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
					continue
				}
				gate.wait()
				cfg := p.Load(ctx)
				select {
				case updates <- cfg:
				case <-ctx.Done():
					return
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				logging.Error(err)
			}
		}
	}()
	return updates, nil
}
