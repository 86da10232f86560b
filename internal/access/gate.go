package access

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"
)

// roleParam is the navigation query parameter carrying an explicit role.
const roleParam = "role"

// Gate resolves the session role and enforces page access.
type Gate struct {
	store  KV
	logger *slog.Logger
}

// NewGate constructs a Gate over the given role store.
func NewGate(store KV, logger *slog.Logger) *Gate {
	if logger == nil {
		logger = slog.Default()
	}
	return &Gate{store: store, logger: logger}
}

// Resolve builds the request grant. An explicit known role in the
// navigation query wins and is persisted for later navigations;
// otherwise the persisted value applies. Persistence failures are
// logged and otherwise ignored.
func (g *Gate) Resolve(ctx context.Context, query url.Values) Grant {
	if value := query.Get(roleParam); value != "" {
		role, err := ParseRole(value)
		if err != nil {
			g.logger.Debug("ignore navigation role", slog.Any("error", err))
		} else {
			if g.store != nil {
				if err := g.store.Set(ctx, roleKey, value); err != nil {
					g.logger.Debug("persist role", slog.String("role", value), slog.Any("error", err))
				}
			}
			return NewGrant(role)
		}
	}
	if g.store == nil {
		return Grant{}
	}
	stored, err := g.store.Get(ctx, roleKey)
	if err != nil {
		return Grant{}
	}
	role, err := ParseRole(stored)
	if err != nil {
		return Grant{}
	}
	return NewGrant(role)
}

// Forget clears the persisted role assignment. Storage failures are
// swallowed the same way persistence failures are.
func (g *Gate) Forget(ctx context.Context) {
	if g.store == nil {
		return
	}
	if err := g.store.Set(ctx, roleKey, ""); err != nil {
		g.logger.Debug("clear role", slog.Any("error", err))
	}
}

type grantContextKey struct{}

// ContextWithGrant stores the grant in context.
func ContextWithGrant(ctx context.Context, g Grant) context.Context {
	return context.WithValue(ctx, grantContextKey{}, g)
}

// GrantFromContext extracts the grant from context.
func GrantFromContext(ctx context.Context) Grant {
	g, _ := ctx.Value(grantContextKey{}).(Grant)
	return g
}

// Middleware authorizes every page request. A denied request is
// redirected and the rest of the chain never runs.
func (g *Gate) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		page := RequestPage(r.URL.Path)
		grant := g.Resolve(ctx, r.URL.Query())

		decision := Authorize(grant, page)
		if !decision.Allow {
			http.Redirect(w, r, "/"+decision.RedirectTo, http.StatusSeeOther)
			return
		}

		next.ServeHTTP(w, r.WithContext(ContextWithGrant(ctx, grant)))
	})
}
