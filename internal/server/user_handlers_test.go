package server

import (
	"bytes"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"bookery/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublicProfileHidesAccountFields(t *testing.T) {
	app, _ := testServer(t)
	user, cookie := registerUser(t)

	resp := doJSON(t, app, http.MethodPatch, userPath(user.ID, ""), fiber.Map{
		"bio":   "Rereads The Left Hand of Darkness every winter.",
		"title": "Night Librarian",
	}, cookie)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = doJSON(t, app, http.MethodGet, fmt.Sprintf("/users/%d", user.ID), nil, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var raw map[string]interface{}
	decodeJSON(t, resp, &raw)
	assert.Equal(t, "Rereads The Left Hand of Darkness every winter.", raw["bio"])
	assert.Equal(t, "Night Librarian", raw["title"])
	assert.NotContains(t, raw, "email")
	assert.NotContains(t, raw, "is_admin")
}

func TestPublicProfileUnknownUserIs404(t *testing.T) {
	app, _ := testServer(t)
	resp := doJSON(t, app, http.MethodGet, "/users/999999", nil, "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestProfileBioTooLongIs400(t *testing.T) {
	app, _ := testServer(t)
	user, cookie := registerUser(t)

	resp := doJSON(t, app, http.MethodPatch, userPath(user.ID, ""), fiber.Map{
		"bio": strings.Repeat("x", 501),
	}, cookie)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestChangeEmailRequiresPassword(t *testing.T) {
	app, _ := testServer(t)
	user, cookie := registerUser(t)

	resp := doJSON(t, app, http.MethodPut, userPath(user.ID, "/email"), fiber.Map{
		"password": "WrongPassword1!long",
		"email":    "new-" + user.Email,
	}, cookie)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp = doJSON(t, app, http.MethodPut, userPath(user.ID, "/email"), fiber.Map{
		"password": testPassword,
		"email":    "new-" + user.Email,
	}, cookie)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		User models.User `json:"user"`
	}
	decodeJSON(t, resp, &body)
	assert.Equal(t, "new-"+user.Email, body.User.Email)
}

func TestAvatarUpload(t *testing.T) {
	app, _ := testServer(t)
	user, cookie := registerUser(t)

	png := append([]byte("\x89PNG\r\n\x1a\n"), make([]byte, 64)...)

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile("avatar", "me.png")
	require.NoError(t, err)
	_, err = part.Write(png)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, userPath(user.ID, "/avatar"), &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	req.AddCookie(&http.Cookie{Name: sessionCookieName, Value: cookie})

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		User models.User `json:"user"`
	}
	decodeJSON(t, resp, &body)
	assert.True(t, strings.HasPrefix(body.User.Avatar, "/media/"))
}

func TestDeleteAccountClearsSession(t *testing.T) {
	app, _ := testServer(t)
	user, cookie := registerUser(t)

	resp := doJSON(t, app, http.MethodDelete, userPath(user.ID, ""), nil, cookie)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	// The account is gone.
	resp = doJSON(t, app, http.MethodPost, "/login", fiber.Map{
		"emailOrName": user.Email,
		"password":    testPassword,
	}, "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	// The old cookie no longer resolves to an identity.
	resp = doJSON(t, app, http.MethodGet, "/token", nil, cookie)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var body struct {
		User *models.User `json:"user"`
	}
	decodeJSON(t, resp, &body)
	assert.Nil(t, body.User)
}

func TestCatalogSearchAndGenreFilter(t *testing.T) {
	app, srv := testServer(t)

	book := seedBook(t, "The Unbroken Kettle", 10.00)
	genre := models.Genre{Name: "Kitchenware Fantasy"}
	require.NoError(t, srv.db.FirstOrCreate(&genre, models.Genre{Name: genre.Name}).Error)
	require.NoError(t, srv.db.Model(&book).Association("Genres").Append(&genre))

	resp := doJSON(t, app, http.MethodGet, "/books/?search=Unbroken%20Kettle", nil, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var books []models.Book
	decodeJSON(t, resp, &books)
	require.Len(t, books, 1)
	assert.Equal(t, book.ID, books[0].ID)

	resp = doJSON(t, app, http.MethodGet, "/books/?genre=Kitchenware%20Fantasy", nil, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decodeJSON(t, resp, &books)
	require.Len(t, books, 1)
	assert.Equal(t, book.ID, books[0].ID)

	resp = doJSON(t, app, http.MethodGet, "/books/?search=no%20such%20book%20anywhere", nil, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decodeJSON(t, resp, &books)
	assert.Empty(t, books)
}

func TestHealthEndpoints(t *testing.T) {
	app, _ := testServer(t)

	for _, path := range []string{"/health", "/health/live", "/health/ready"} {
		resp := doJSON(t, app, http.MethodGet, path, nil, "")
		assert.Equal(t, http.StatusOK, resp.StatusCode, path)
	}
}
