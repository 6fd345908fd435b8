package server

import (
	"fmt"
	"net/http"
	"testing"

	"bookery/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createThread(t *testing.T, cookie, title string) models.Thread {
	t.Helper()
	app, _ := testServer(t)

	resp := doJSON(t, app, http.MethodPost, "/threads/create", fiber.Map{
		"title":   title,
		"content": "What is everyone reading this month?",
	}, cookie)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var thread models.Thread
	decodeJSON(t, resp, &thread)
	require.NotZero(t, thread.ID)
	return thread
}

func TestThreadListIsPublic(t *testing.T) {
	app, _ := testServer(t)
	_, cookie := registerUser(t)
	createThread(t, cookie, "August reading circle")

	// No session at all.
	resp := doJSON(t, app, http.MethodGet, "/threads", nil, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var threads []models.Thread
	decodeJSON(t, resp, &threads)
	assert.NotEmpty(t, threads)
}

func TestThreadCreateValidation(t *testing.T) {
	app, _ := testServer(t)
	_, cookie := registerUser(t)

	resp := doJSON(t, app, http.MethodPost, "/threads/create", fiber.Map{
		"title":   "",
		"content": "no title",
	}, cookie)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestThreadUpdateByStrangerIsForbidden(t *testing.T) {
	app, _ := testServer(t)
	_, authorCookie := registerUser(t)
	_, strangerCookie := registerUser(t)
	thread := createThread(t, authorCookie, "Hugo award predictions")

	threadPath := fmt.Sprintf("/threads/%d", thread.ID)
	resp := doJSON(t, app, http.MethodPut, threadPath, fiber.Map{
		"title": "hijacked",
	}, strangerCookie)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp = doJSON(t, app, http.MethodPut, threadPath, fiber.Map{
		"title": "Hugo award predictions 2026",
	}, authorCookie)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var updated models.Thread
	decodeJSON(t, resp, &updated)
	assert.Equal(t, "Hugo award predictions 2026", updated.Title)
}

func TestThreadCommentAlertsSubscribers(t *testing.T) {
	app, _ := testServer(t)
	author, authorCookie := registerUser(t)
	commenter, commenterCookie := registerUser(t)
	thread := createThread(t, authorCookie, "Backlist gems")

	resp := doJSON(t, app, http.MethodPost,
		fmt.Sprintf("/threads/%d/comments", thread.ID),
		fiber.Map{"content": "Try The Goblin Emperor."}, commenterCookie)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	// The author auto-follows their thread and gets alerted; the commenter
	// does not alert themselves.
	resp = doJSON(t, app, http.MethodGet, "/alerts/", nil, authorCookie)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var alerts []models.Alert
	decodeJSON(t, resp, &alerts)

	var hit *models.Alert
	for i := range alerts {
		if alerts[i].Type == models.AlertThreadComment &&
			alerts[i].ThreadID != nil && *alerts[i].ThreadID == thread.ID {
			hit = &alerts[i]
		}
	}
	require.NotNil(t, hit)
	assert.Equal(t, commenter.ID, hit.ActorID)
	assert.Equal(t, author.ID, hit.UserID)

	resp = doJSON(t, app, http.MethodGet, "/alerts/", nil, commenterCookie)
	decodeJSON(t, resp, &alerts)
	for _, a := range alerts {
		if a.ThreadID != nil && *a.ThreadID == thread.ID {
			t.Fatalf("commenter received alert for own comment: %+v", a)
		}
	}
}

func TestThreadFollowUnfollow(t *testing.T) {
	app, _ := testServer(t)
	_, authorCookie := registerUser(t)
	_, readerCookie := registerUser(t)
	thread := createThread(t, authorCookie, "Translated fiction picks")

	followPath := fmt.Sprintf("/threads/%d/follow", thread.ID)
	resp := doJSON(t, app, http.MethodPost, followPath, nil, readerCookie)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	// Following twice stays settled.
	resp = doJSON(t, app, http.MethodPost, followPath, nil, readerCookie)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = doJSON(t, app, http.MethodDelete, followPath, nil, readerCookie)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestThreadDeleteByAuthor(t *testing.T) {
	app, _ := testServer(t)
	_, authorCookie := registerUser(t)
	thread := createThread(t, authorCookie, "Short story collections")

	threadPath := fmt.Sprintf("/threads/%d", thread.ID)
	resp := doJSON(t, app, http.MethodDelete, threadPath, nil, authorCookie)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = doJSON(t, app, http.MethodGet, threadPath, nil, authorCookie)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
