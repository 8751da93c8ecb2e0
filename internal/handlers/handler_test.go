// Copyright (c) 2026 Brightsite Labs <hello@brightsite.dev>
// All rights reserved. See LICENSE for details.

// handler_test.go provides shared test infrastructure for handler integration
// tests. Tests are skipped when PostgreSQL or Valkey are unavailable.
package handlers

import (
	"context"
	"database/sql"
	"log/slog"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/redis/go-redis/v9"

	"brightsite/internal/cache"
	"brightsite/internal/database"
	"brightsite/internal/engine"
	"brightsite/internal/forms"
	"brightsite/internal/middleware"
	"brightsite/internal/render"
	"brightsite/internal/selection"
	"brightsite/internal/session"
	"brightsite/internal/store"
	"brightsite/internal/stylevars"
)

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// testDB opens a connection to the test PostgreSQL and runs migrations.
func testDB(t *testing.T) *sql.DB {
	t.Helper()

	host := envOr("POSTGRES_HOST", "localhost")
	port := envOr("POSTGRES_PORT", "5432")
	user := envOr("POSTGRES_USER", "brightsite")
	pass := envOr("POSTGRES_PASSWORD", "changeme")
	name := envOr("POSTGRES_DB", "brightsite")
	dsn := "postgres://" + user + ":" + pass + "@" + host + ":" + port + "/" + name + "?sslmode=disable"

	db, err := sql.Open("pgx", dsn)
	if err != nil {
		t.Skipf("skipping: cannot open DB: %v", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		t.Skipf("skipping: DB not reachable: %v", err)
	}

	if err := database.Migrate(db); err != nil {
		db.Close()
		t.Fatalf("migrate: %v", err)
	}
	goose.SetBaseFS(nil)

	t.Cleanup(func() { db.Close() })
	return db
}

// testValkeyClient returns a Redis client for handler tests on DB 15.
func testValkeyClient(t *testing.T) *redis.Client {
	t.Helper()

	host := envOr("VALKEY_HOST", "localhost")
	port := envOr("VALKEY_PORT", "6379")
	password := os.Getenv("VALKEY_PASSWORD")

	client := redis.NewClient(&redis.Options{
		Addr:     host + ":" + port,
		Password: password,
		DB:       15,
	})

	ctx := context.Background()
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		t.Skipf("skipping: Valkey not reachable: %v", err)
	}

	t.Cleanup(func() {
		// Clean up test session, selection, and cache keys.
		for _, pattern := range []string{"session:*", "selection:*", "page:*"} {
			keys, _ := client.Keys(ctx, pattern).Result()
			if len(keys) > 0 {
				client.Del(ctx, keys...)
			}
		}
		client.Close()
	})

	return client
}

// testEnv holds all dependencies for handler integration tests.
type testEnv struct {
	DB           *sql.DB
	Valkey       *redis.Client
	Renderer     *render.Renderer
	Sessions     *session.Store
	PageStore    *store.PageContentStore
	SectionStore *store.SectionStore
	NavStore     *store.NavStore
	Testimonials *store.TestimonialStore
	Submissions  *store.SubmissionStore
	SettingStore *store.SiteSettingStore
	UserStore    *store.UserStore
	MediaStore   *store.MediaStore
	Vars         *stylevars.Namespace
	Selection    *selection.Store
	Engine       *engine.Engine
	PageCache    *cache.PageCache
	Admin        *Admin
	Auth         *Auth
	Public       *Public
}

// newTestEnv creates a complete test environment with all handler dependencies.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db := testDB(t)
	vk := testValkeyClient(t)

	renderer, err := render.New(true)
	if err != nil {
		t.Fatalf("render.New: %v", err)
	}

	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))

	sessions := session.NewStore(vk)
	pageStore := store.NewPageContentStore(db)
	sectionStore := store.NewSectionStore(db)
	navStore := store.NewNavStore(db)
	testimonialStore := store.NewTestimonialStore(db)
	submissionStore := store.NewSubmissionStore(db)
	settingStore := store.NewSiteSettingStore(db)
	userStore := store.NewUserStore(db)
	mediaStore := store.NewMediaStore(db)

	vars := stylevars.New()
	sel := selection.New(vk, settingStore, vars, log)
	sel.Load(context.Background())

	eng := engine.New(pageStore, sectionStore, testimonialStore, navStore, settingStore, sel, vars, log)
	pageCache := cache.NewPageCache(vk, 1*time.Minute)
	formSvc := forms.New(submissionStore, nil, log)

	admin := NewAdmin(renderer, pageStore, sectionStore, navStore, testimonialStore,
		submissionStore, settingStore, mediaStore, nil, sel, eng, pageCache)
	auth := NewAuth(renderer, sessions, userStore)
	public := NewPublic(eng, formSvc, vars, pageCache)

	return &testEnv{
		DB:           db,
		Valkey:       vk,
		Renderer:     renderer,
		Sessions:     sessions,
		PageStore:    pageStore,
		SectionStore: sectionStore,
		NavStore:     navStore,
		Testimonials: testimonialStore,
		Submissions:  submissionStore,
		SettingStore: settingStore,
		UserStore:    userStore,
		MediaStore:   mediaStore,
		Vars:         vars,
		Selection:    sel,
		Engine:       eng,
		PageCache:    pageCache,
		Admin:        admin,
		Auth:         auth,
		Public:       public,
	}
}

// ctxWithSession adds session data to a context using the middleware key.
func ctxWithSession(ctx context.Context, data *session.Data) context.Context {
	return context.WithValue(ctx, middleware.SessionKey, data)
}

// testSession creates a session.Data for testing.
func testSession(userID uuid.UUID, email, role string, twoFADone bool) *session.Data {
	return &session.Data{
		UserID:      userID,
		Email:       email,
		DisplayName: "Test User",
		Role:        role,
		TwoFADone:   twoFADone,
	}
}

// withChiURLParams adds chi URL parameters to a request.
func withChiURLParams(r *http.Request, params map[string]string) *http.Request {
	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// cleanPages removes page content and section rows by page id.
func cleanPages(t *testing.T, db *sql.DB, pageIDs ...string) {
	t.Helper()
	for _, id := range pageIDs {
		db.Exec("DELETE FROM sections WHERE page_id = $1", id)
		db.Exec("DELETE FROM page_content WHERE page_id = $1", id)
	}
}

// cleanSelections removes persisted appearance selections so a test run
// starts from catalog defaults.
func cleanSelections(t *testing.T, db *sql.DB) {
	t.Helper()
	db.Exec("DELETE FROM site_settings WHERE key IN ('colorTheme', 'designTemplate', 'websiteTemplate', 'website-template')")
}
