// Package cli provides command definitions for skillrouter.
package cli

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/klauern/skillrouter/internal/assemble"
	"github.com/klauern/skillrouter/internal/catalogio"
	"github.com/klauern/skillrouter/internal/cliui"
	"github.com/klauern/skillrouter/internal/config"
	"github.com/klauern/skillrouter/internal/content"
	"github.com/klauern/skillrouter/internal/dependency"
	"github.com/klauern/skillrouter/internal/discovery"
	"github.com/klauern/skillrouter/internal/hook"
	"github.com/klauern/skillrouter/internal/logging"
	"github.com/klauern/skillrouter/internal/model"
	"github.com/klauern/skillrouter/internal/router"
)

// components bundles the pieces every command needs: a routable catalog, a
// skill-content loader, and the config they were built from.
type components struct {
	router *router.Router
	loader *content.Loader
	cfg    *config.Config
}

// buildComponents loads configuration, the catalog, and constructs a Router
// wired to an Anthropic provider only when an API key is configured.
func buildComponents() (*components, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	cat, err := catalogio.Load(cfg.Catalog)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}

	var provider discovery.Provider
	if cfg.Anthropic.APIKey != "" {
		provider = discovery.NewAnthropicProvider(discovery.AnthropicConfig{
			APIKey:    cfg.Anthropic.APIKey,
			Model:     cfg.Anthropic.Model,
			MaxTokens: cfg.Anthropic.MaxTokens,
		})
	}

	r := router.New(cat, provider, router.Config{TriggerThreshold: cfg.Matcher.TriggerThreshold}, logging.Default())
	loader := content.New(cfg.SkillsRoot)

	return &components{router: r, loader: loader, cfg: cfg}, nil
}

func routeCommand() *cli.Command {
	return &cli.Command{
		Name:      "route",
		Usage:     "Route a query and print the assembled skill context",
		ArgsUsage: "[query]",
		Description: `Routes a single query through the three-tier pipeline and prints the
assembled <skill_context> block to stdout.

   With no query argument, the query is read from the PROMPT environment
   variable if set, else from stdin — the mode used when skillrouter runs as
   a Claude Code hook.`,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			c, err := buildComponents()
			if err != nil {
				return err
			}

			if q := strings.Join(cmd.Args().Slice(), " "); strings.TrimSpace(q) != "" {
				result := c.router.Route(ctx, q)
				printRouteStatus(result)
				block := assemble.Assemble(result, c.router.Catalog(), c.loader)
				if block != "" {
					fmt.Println(block)
				}
				return nil
			}

			return hook.RunCLI(ctx, c.router, c.loader, os.Stdin, os.Stdout)
		},
	}
}

func printRouteStatus(result model.RouteResult) {
	switch result.Type {
	case model.RouteError:
		fmt.Fprintln(os.Stderr, cliui.StatusError("no route resolved"))
	default:
		fmt.Fprintln(os.Stderr, cliui.StatusMatched(fmt.Sprintf("%s %q (tier %d)", result.Type, result.Matched, result.Tier)))
	}
	for _, w := range result.Warnings {
		fmt.Fprintln(os.Stderr, cliui.StatusWarning(w.Message))
	}
}

func serveCommand() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Serve the routing pipeline over HTTP",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "addr",
				Value: ":8080",
				Usage: "Address to listen on",
			},
		},
		Description: `Serves the routing pipeline over HTTP. POST /reload re-loads and
   validates the configured catalog file and, on success, atomically swaps it
   into the running Router and invalidates the skill-content cache — the
   long-running equivalent of the one-shot "reload" command, which has no
   running Router to swap into.`,
		Action: func(_ context.Context, cmd *cli.Command) error {
			c, err := buildComponents()
			if err != nil {
				return err
			}

			mux := http.NewServeMux()
			mux.Handle("/", hook.Handler(c.router, c.loader))
			mux.HandleFunc("/reload", reloadHandler(c))

			addr := cmd.String("addr")
			logging.Info("serving routing pipeline", logging.Path(addr))
			return http.ListenAndServe(addr, mux)
		},
	}
}

// reloadHandler composes catalogio.Load, Router.Swap and
// content.Loader.Invalidate into a single POST endpoint, per DESIGN.md's
// stated reload composition.
func reloadHandler(c *components) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		if req.Method != http.MethodPost {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}

		cat, err := catalogio.Load(c.cfg.Catalog)
		if err != nil {
			logging.Error("reload failed", logging.Err(err))
			http.Error(w, fmt.Sprintf("reload failed: %v", err), http.StatusInternalServerError)
			return
		}

		c.router.Swap(cat)
		c.loader.Invalidate()
		logging.Info("catalog reloaded", logging.Count(len(cat.Skills)))
		fmt.Fprintln(w, "reloaded")
	}
}

func reloadCommand() *cli.Command {
	return &cli.Command{
		Name:  "reload",
		Usage: "Re-load and validate the catalog file without starting a server",
		Description: `Loads the configured catalog file, runs the same validation a running
   server applies on reload, and prints each dependency cycle as a warning
   without failing the command. An unresolved reference fails validation and
   the command. Use this to sanity-check a catalog edit before redeploying.`,
		Action: func(_ context.Context, _ *cli.Command) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			cat, err := catalogio.Load(cfg.Catalog)
			if err != nil {
				return fmt.Errorf("failed to load catalog: %w", err)
			}

			fmt.Fprintln(os.Stderr, cliui.StatusMatched(fmt.Sprintf("loaded catalog: %d skills, %d tasks", len(cat.Skills), len(cat.Tasks))))
			for _, cycle := range dependency.DetectCycles(cat) {
				fmt.Fprintln(os.Stderr, cliui.StatusWarning("dependency cycle: "+strings.Join(cycle, " -> ")))
			}
			return nil
		},
	}
}
