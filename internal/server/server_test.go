package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"sync"
	"testing"

	"bookery/internal/config"
	"bookery/internal/database"
	"bookery/internal/models"

	"github.com/alicebob/miniredis/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

// One server per test binary: the Prometheus middleware registers collectors
// globally, so the app cannot be rebuilt per test.
var (
	testSetup sync.Once
	testSrv   *Server
	testApp   *fiber.App
	userSeq   int
)

func testServer(t *testing.T) (*fiber.App, *Server) {
	t.Helper()
	testSetup.Do(func() {
		db, err := database.ConnectSQLite(":memory:")
		if err != nil {
			panic(err)
		}

		mr, err := miniredis.Run()
		if err != nil {
			panic(err)
		}
		rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})

		uploadDir, err := os.MkdirTemp("", "bookery-test-uploads")
		if err != nil {
			panic(err)
		}

		cfg := &config.Config{
			JWTSecret: "test-secret",
			Port:      "8460",
			UploadDir: uploadDir,
			Env:       "test",
		}

		testSrv, err = NewServerWithDeps(cfg, db, rdb)
		if err != nil {
			panic(err)
		}

		testApp = fiber.New(fiber.Config{
			ErrorHandler: func(c *fiber.Ctx, err error) error {
				return models.RespondWithError(c, fiber.StatusInternalServerError,
					models.NewInternalError(err))
			},
		})
		testSrv.SetupRoutes(testApp)
	})
	return testApp, testSrv
}

const testPassword = "ReadingList1!long"

// registerUser creates a fresh account through the API and returns the user
// plus their session cookie.
func registerUser(t *testing.T) (models.User, string) {
	t.Helper()
	app, _ := testServer(t)

	userSeq++
	name := fmt.Sprintf("reader_%d", userSeq)
	resp := doJSON(t, app, http.MethodPost, "/register", fiber.Map{
		"name":     name,
		"email":    name + "@example.com",
		"password": testPassword,
	}, "")
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	cookie := sessionCookieOf(t, resp)
	var body struct {
		User models.User `json:"user"`
	}
	decodeJSON(t, resp, &body)
	require.NotZero(t, body.User.ID)
	return body.User, cookie
}

// makeAdmin flips the is_admin flag directly in the store.
func makeAdmin(t *testing.T, userID uint) {
	t.Helper()
	_, srv := testServer(t)
	require.NoError(t, srv.db.Model(&models.User{}).Where("id = ?", userID).
		Update("is_admin", true).Error)
}

// seedBook writes a catalog entry directly to the store.
func seedBook(t *testing.T, title string, price float64) models.Book {
	t.Helper()
	_, srv := testServer(t)

	userSeq++
	book := models.Book{
		Title:  title,
		Author: "Test Author",
		ISBN:   fmt.Sprintf("97800000%05d", userSeq),
		Price:  price,
	}
	require.NoError(t, srv.db.Create(&book).Error)
	return book
}

// userPath builds an owner-scoped route for the given user.
func userPath(userID uint, suffix string) string {
	return fmt.Sprintf("/user/%d%s", userID, suffix)
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body interface{}, cookie string) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if cookie != "" {
		req.AddCookie(&http.Cookie{Name: sessionCookieName, Value: cookie})
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeJSON(t *testing.T, resp *http.Response, dest interface{}) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(dest))
}

func sessionCookieOf(t *testing.T, resp *http.Response) string {
	t.Helper()
	for _, c := range resp.Cookies() {
		if c.Name == sessionCookieName {
			return c.Value
		}
	}
	t.Fatal("no session cookie in response")
	return ""
}
