// Command spotkeep resolves Spotify OAuth credentials from the local
// cache and the Bitwarden secret store, refreshing or re-authorizing as
// needed, then reports the user's currently playing track.
package main

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spotkeep/spotkeep/internal/bitwarden"
	"github.com/spotkeep/spotkeep/internal/cache"
	"github.com/spotkeep/spotkeep/internal/config"
	"github.com/spotkeep/spotkeep/internal/creds"
	"github.com/spotkeep/spotkeep/internal/logging"
	"github.com/spotkeep/spotkeep/spotify"
)

var Version = "dev"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// stdioConsole is the interactive operator step: the authorization URL
// goes to stdout, the pasted redirect URL comes back on stdin.
type stdioConsole struct{}

func (stdioConsole) ShowAuthURL(url string) {
	fmt.Fprintf(os.Stdout, "Paste this into your browser to authorize this app:\n%s\n", url)
}

func (stdioConsole) ReadRedirectURL() (string, error) {
	fmt.Fprint(os.Stdout, "Paste the full redirected URL: ")

	scanner := bufio.NewScanner(os.Stdin)
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}

		return "", fmt.Errorf("no input")
	}

	return scanner.Text(), nil
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := logging.NewLogger(cfg.Environment)
	logger.Info("spotkeep starting",
		slog.String("version", Version),
		slog.String("user", cfg.UserID),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	bwCfg, err := bitwarden.LoadConfig(cfg.BitwardenConfigPath)
	if err != nil {
		return fmt.Errorf("loading secret store config: %w", err)
	}

	store := bitwarden.NewClient(bwCfg, nil, logger.With("component", "bitwarden"))
	localCache := cache.New(cfg.CacheDir)
	client := spotify.NewClient(nil, logger.With("component", "spotify"))

	resolver := creds.NewResolver(localCache, store, creds.DefaultKeys(), cfg.Scope,
		logger.With("component", "resolver"))
	manager := creds.NewManager(resolver, client, logger.With("component", "lifecycle"))

	app, err := resolver.ResolveAppAuth(ctx)
	if err != nil {
		return fmt.Errorf("resolving application identity: %w", err)
	}

	user, err := setupUserAuth(ctx, cfg, app, resolver, manager, client, logger)
	if err != nil {
		return err
	}

	logger.Info("credentials are ready")

	return reportCurrentlyPlaying(ctx, client, user, logger)
}

// setupUserAuth resolves the user credential, refreshing it when it is
// merely stale and falling back to the interactive authorization flow
// when neither store has anything usable.
func setupUserAuth(ctx context.Context, cfg *config.Config, app *creds.AppAuthData,
	resolver *creds.Resolver, manager *creds.Manager, client *spotify.Client,
	logger *slog.Logger,
) (*creds.UserAuthData, error) {
	user := resolver.ResolveUserAuth(ctx, cfg.UserID)
	if user != nil {
		fresh, err := manager.Refresh(ctx, app, user, cfg.UserID)
		if err != nil {
			return nil, fmt.Errorf("refreshing credentials: %w", err)
		}

		return fresh, nil
	}

	logger.Warn("no usable credentials found, starting interactive authorization")

	flow := creds.NewFlow(creds.FlowConfig{
		AuthorizeURL: spotify.AuthorizeURL,
		RedirectURI:  cfg.RedirectURI,
		Scope:        cfg.Scope,
	}, stdioConsole{}, client, resolver, logger.With("component", "authflow"))

	user, err := flow.Run(ctx, app, cfg.UserID)
	if err != nil {
		return nil, fmt.Errorf("interactive authorization: %w", err)
	}

	return user, nil
}

func reportCurrentlyPlaying(ctx context.Context, client *spotify.Client,
	user *creds.UserAuthData, logger *slog.Logger,
) error {
	playing, err := client.CurrentlyPlaying(ctx, user.AccessToken)
	if err != nil {
		return fmt.Errorf("fetching currently playing track: %w", err)
	}

	if playing == nil || !playing.IsPlaying {
		logger.Info("nothing is playing right now")
		return nil
	}

	track := playing.Track()
	if track == nil {
		logger.Warn("playing item is not a track", "type", playing.CurrentlyPlayingType)
		return nil
	}

	artists := make([]string, 0, len(track.Artists))
	for _, a := range track.Artists {
		artists = append(artists, a.Name)
	}

	logger.Info("currently playing",
		slog.String("track", track.Name),
		slog.Any("artists", artists),
		slog.String("album", track.Album.Name),
	)

	return nil
}
