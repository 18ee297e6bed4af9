package update

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/Masterminds/semver/v3"
	"github.com/avast/retry-go/v4"
	"github.com/rs/zerolog"
	"golang.org/x/term"

	"github.com/Validium-Chain/validium-cli/internal/constants"
)

const (
	fetchAttempts   = 2
	fetchRetryDelay = 100 * time.Millisecond
)

// githubRelease is the part of the GitHub releases API response we read.
type githubRelease struct {
	TagName string `json:"tag_name"`
}

// cacheState stores the data for our update check cache.
type cacheState struct {
	LatestVersion string    `json:"latest_version"`
	LastCheck     time.Time `json:"last_check"`
}

// Checker looks up the latest published release at most once per interval.
type Checker struct {
	log         *zerolog.Logger
	client      *http.Client
	releasesURL string
	cachePath   string
	interval    time.Duration
	now         func() time.Time
}

type Option func(*Checker)

func WithHTTPClient(client *http.Client) Option {
	return func(c *Checker) { c.client = client }
}

func WithReleasesURL(url string) Option {
	return func(c *Checker) { c.releasesURL = url }
}

func WithCachePath(path string) Option {
	return func(c *Checker) { c.cachePath = path }
}

func WithClock(now func() time.Time) Option {
	return func(c *Checker) { c.now = now }
}

func NewChecker(log *zerolog.Logger, opts ...Option) *Checker {
	c := &Checker{
		log:         log,
		client:      &http.Client{Timeout: constants.UpdateCheckTimeout},
		releasesURL: constants.ReleasesAPIURL,
		interval:    constants.UpdateCheckInterval,
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.cachePath == "" {
		if path, err := defaultCachePath(); err != nil {
			log.Debug().Msgf("Failed to get user home directory: %v", err)
		} else {
			c.cachePath = path
		}
	}
	return c
}

// Enabled reports whether an update check should run for this invocation. Checks are skipped
// when opted out or when nobody is at the terminal to read the notice.
func Enabled() bool {
	if os.Getenv(constants.NoUpdateCheckEnvVar) == "1" || os.Getenv("CI") != "" {
		return false
	}
	if os.Getenv(constants.ForceUpdateCheckEnv) == "1" {
		return true
	}
	return term.IsTerminal(int(os.Stderr.Fd()))
}

// Pending is an update check running in the background.
type Pending struct {
	done   chan struct{}
	notice string
}

// Start runs Check in a goroutine. The caller never waits on it unless it asks for the notice.
func (c *Checker) Start(ctx context.Context, currentVersion string) *Pending {
	p := &Pending{done: make(chan struct{})}
	go func() {
		defer close(p.done)
		p.notice = c.Check(ctx, currentVersion)
	}()
	return p
}

// Notice returns the update notice if the check finishes within grace, or "" otherwise.
func (p *Pending) Notice(grace time.Duration) string {
	if p == nil {
		return ""
	}
	select {
	case <-p.done:
		return p.notice
	case <-time.After(grace):
		return ""
	}
}

// Check compares currentVersion with the latest release and returns a notice when an upgrade
// is available. Every failure is logged at debug level and yields "".
func (c *Checker) Check(ctx context.Context, currentVersion string) string {
	forceCheck := os.Getenv(constants.ForceUpdateCheckEnv) == "1"
	if currentVersion == constants.DevelopmentVersion && !forceCheck {
		c.log.Debug().Msgf("Current version is '%s', skipping update check. (Set %s=1 to override)", constants.DevelopmentVersion, constants.ForceUpdateCheckEnv)
		return ""
	}

	// Release builds carry "version v0.1.0" or plain "v0.1.0".
	cleanedVersion := strings.TrimSpace(strings.Replace(currentVersion, "version", "", 1))

	currentSemVer, err := semver.NewVersion(cleanedVersion)
	if err != nil {
		c.log.Debug().Msgf("Failed to parse current version (original: '%s', cleaned: '%s'): %v", currentVersion, cleanedVersion, err)
		return ""
	}

	cache := c.loadCache()
	now := c.now()
	latestVersionString := cache.LatestVersion

	if now.Sub(cache.LastCheck) > c.interval || forceCheck {
		c.log.Debug().Msg("Update cache expired or empty. Fetching latest release.")
		latest, fetchErr := c.fetchLatestVersion(ctx)
		if fetchErr != nil {
			// stale data (if any) is still used below
			c.log.Debug().Msgf("Failed to fetch latest version: %v", fetchErr)
		} else {
			latestVersionString = latest
			c.saveCache(cacheState{LatestVersion: latest, LastCheck: now})
		}
	} else {
		c.log.Debug().Msgf("Using cached latest version: %s", latestVersionString)
	}

	if latestVersionString == "" {
		c.log.Debug().Msg("No latest version available to compare.")
		return ""
	}

	latestSemVer, err := semver.NewVersion(latestVersionString)
	if err != nil {
		c.log.Debug().Msgf("Failed to parse latest tag '%s': %v", latestVersionString, err)
		return ""
	}

	if !latestSemVer.GreaterThan(currentSemVer) {
		c.log.Debug().Msgf("Current version %s is up-to-date.", currentSemVer.String())
		return ""
	}

	return Notice(currentSemVer.String(), latestSemVer.String())
}

// Notice is the message shown when latest is newer than current.
func Notice(current, latest string) string {
	return fmt.Sprintf("Update available! You're running %s, but %s is the latest.\n"+
		"Visit %s to upgrade.",
		current, latest, constants.ReleasesURL)
}

func defaultCachePath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, constants.UpdateCacheDirName, constants.UpdateCacheFileName), nil
}

func (c *Checker) loadCache() cacheState {
	if c.cachePath == "" {
		return cacheState{}
	}

	data, err := os.ReadFile(c.cachePath)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			c.log.Debug().Msgf("Failed to read update cache: %v", err)
		}
		return cacheState{}
	}

	var state cacheState
	if err := json.Unmarshal(data, &state); err != nil {
		// overwritten on the next successful fetch
		c.log.Debug().Msgf("Update cache corrupted, ignoring: %v", err)
		return cacheState{}
	}
	return state
}

func (c *Checker) saveCache(state cacheState) {
	if c.cachePath == "" {
		return
	}

	data, err := json.Marshal(state)
	if err != nil {
		c.log.Debug().Msgf("Failed to encode update cache: %v", err)
		return
	}
	if err := os.MkdirAll(filepath.Dir(c.cachePath), 0750); err != nil {
		c.log.Debug().Msgf("Failed to create update cache directory: %v", err)
		return
	}
	if err := os.WriteFile(c.cachePath, data, 0640); err != nil {
		c.log.Debug().Msgf("Failed to save update cache: %v", err)
	}
}

// fetchLatestVersion retries transport errors and 5xx responses once. Anything else is final.
func (c *Checker) fetchLatestVersion(ctx context.Context) (string, error) {
	var latest string
	err := retry.Do(
		func() error {
			var err error
			latest, err = c.fetchLatestRelease(ctx)
			return err
		},
		retry.Context(ctx),
		retry.Attempts(fetchAttempts),
		retry.Delay(fetchRetryDelay),
		retry.LastErrorOnly(true),
	)
	if err != nil {
		return "", err
	}
	return latest, nil
}

func (c *Checker) fetchLatestRelease(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.releasesURL, nil)
	if err != nil {
		return "", retry.Unrecoverable(fmt.Errorf("failed to create request: %w", err))
	}
	req.Header.Set("User-Agent", constants.UpdateUserAgentValue)
	req.Header.Set("Accept", "application/vnd.github.v3+json")

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to fetch latest release: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusInternalServerError {
		return "", fmt.Errorf("releases API returned non-200 status: %s", resp.Status)
	}
	if resp.StatusCode != http.StatusOK {
		return "", retry.Unrecoverable(fmt.Errorf("releases API returned non-200 status: %s", resp.Status))
	}

	var release githubRelease
	if err := json.NewDecoder(resp.Body).Decode(&release); err != nil {
		return "", retry.Unrecoverable(fmt.Errorf("failed to decode releases API response: %w", err))
	}
	if release.TagName == "" {
		return "", retry.Unrecoverable(errors.New("releases API response contained no tag_name"))
	}

	return release.TagName, nil
}
