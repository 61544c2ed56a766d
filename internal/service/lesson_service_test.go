package service

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/edtrack/edtrack-go/internal/apperr"
	"github.com/edtrack/edtrack-go/internal/config"
	"github.com/edtrack/edtrack-go/internal/domain"
	"github.com/edtrack/edtrack-go/internal/restclient"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newServiceClient(t *testing.T, handler http.Handler) *restclient.Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := restclient.New(config.APIConfig{BaseURL: server.URL})
	require.NoError(t, err)
	return client
}

func TestListByCourseTreats404AsEmpty(t *testing.T) {
	t.Parallel()

	router := chi.NewRouter()
	router.Get("/courses/{id}/lessons", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"message":"no lessons for course"}`))
	})

	svc, err := NewLessonService(newServiceClient(t, router), nil)
	require.NoError(t, err)

	lessons, err := svc.ListByCourse(context.Background(), "empty-course")
	require.NoError(t, err, "404 on the nested collection is an expected-empty case")
	assert.NotNil(t, lessons)
	assert.Empty(t, lessons)
}

func TestGetLesson404PropagatesAsNotFound(t *testing.T) {
	t.Parallel()

	router := chi.NewRouter()
	router.Get("/courses/{id}/lessons/{lessonID}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	svc, err := NewLessonService(newServiceClient(t, router), nil)
	require.NoError(t, err)

	_, err = svc.Get(context.Background(), "abc", 42)
	require.Error(t, err)
	assert.True(t, apperr.IsNotFound(err), "a single-entity 404 is a real not-found")
}

func TestListByCourseServerErrorPropagates(t *testing.T) {
	t.Parallel()

	router := chi.NewRouter()
	router.Get("/courses/{id}/lessons", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	svc, err := NewLessonService(newServiceClient(t, router), nil)
	require.NoError(t, err)

	_, err = svc.ListByCourse(context.Background(), "abc")
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindServer), "only 404 is absorbed, not 5xx")
}

func TestListByCourseMapsLessons(t *testing.T) {
	t.Parallel()

	router := chi.NewRouter()
	router.Get("/courses/{id}/lessons", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"success":true,"data":[
			{"id":5,"courseId":"abc","title":"Intro","order":1},
			{"id":7,"courseId":"abc","title":"Types","order":2}
		]}`))
	})

	svc, err := NewLessonService(newServiceClient(t, router), nil)
	require.NoError(t, err)

	lessons, err := svc.ListByCourse(context.Background(), "abc")
	require.NoError(t, err)
	require.Len(t, lessons, 2)
	assert.Equal(t, int64(5), lessons[0].ID)
	assert.Equal(t, 2, lessons[1].Position)
}

func TestBulkDeleteCarriesIDsInOneRequest(t *testing.T) {
	t.Parallel()

	var requests atomic.Int32
	var gotBody map[string][]int64

	router := chi.NewRouter()
	router.Delete("/courses/{id}/lessons", func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		_, _ = w.Write([]byte(`{"success":true}`))
	})

	svc, err := NewLessonService(newServiceClient(t, router), nil)
	require.NoError(t, err)

	require.NoError(t, svc.BulkDelete(context.Background(), "abc", []int64{5, 7}))
	assert.Equal(t, int32(1), requests.Load(), "bulk delete is a single request")
	assert.Equal(t, []int64{5, 7}, gotBody["ids"])
}

func TestUploadSendsIndexedMultipartFields(t *testing.T) {
	t.Parallel()

	router := chi.NewRouter()
	router.Post("/courses/{id}/lessons", func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))

		assert.Equal(t, "Intro", r.FormValue("request[0].Title"))
		assert.Equal(t, "Welcome", r.FormValue("request[0].Content"))
		assert.Equal(t, "Types", r.FormValue("request[1].Title"))

		file, header, err := r.FormFile("request[0].File")
		require.NoError(t, err)
		content, _ := io.ReadAll(file)
		assert.Equal(t, "intro.pdf", header.Filename)
		assert.Equal(t, "pdf-bytes", string(content))

		// Second lesson carries no file.
		_, _, err = r.FormFile("request[1].File")
		assert.Error(t, err)

		_, _ = w.Write([]byte(`[{"id":5,"courseId":"abc","title":"Intro","order":1},
			{"id":6,"courseId":"abc","title":"Types","order":2}]`))
	})

	svc, err := NewLessonService(newServiceClient(t, router), nil)
	require.NoError(t, err)

	lessons, err := svc.Upload(context.Background(), "abc", []domain.LessonUpload{
		{Title: "Intro", Content: "Welcome", FileName: "intro.pdf", File: strings.NewReader("pdf-bytes")},
		{Title: "Types"},
	})
	require.NoError(t, err)
	assert.Len(t, lessons, 2)
}

func TestReorderSendsNewOrder(t *testing.T) {
	t.Parallel()

	var gotBody map[string][]int64
	router := chi.NewRouter()
	router.Put("/courses/{id}/lessons/order", func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		_, _ = w.Write([]byte(`{"success":true}`))
	})

	svc, err := NewLessonService(newServiceClient(t, router), nil)
	require.NoError(t, err)

	require.NoError(t, svc.Reorder(context.Background(), "abc", []int64{7, 5, 9}))
	assert.Equal(t, []int64{7, 5, 9}, gotBody["ids"])
}

func TestLessonInputValidationSkipsNetwork(t *testing.T) {
	t.Parallel()

	var called atomic.Bool
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called.Store(true)
	})

	svc, err := NewLessonService(newServiceClient(t, handler), nil)
	require.NoError(t, err)

	tests := []struct {
		name string
		call func() error
	}{
		{name: "empty course id on list", call: func() error {
			_, err := svc.ListByCourse(context.Background(), "")
			return err
		}},
		{name: "non-positive lesson id on get", call: func() error {
			_, err := svc.Get(context.Background(), "abc", 0)
			return err
		}},
		{name: "empty ids on bulk delete", call: func() error {
			return svc.BulkDelete(context.Background(), "abc", nil)
		}},
		{name: "negative id on bulk delete", call: func() error {
			return svc.BulkDelete(context.Background(), "abc", []int64{-1})
		}},
		{name: "empty uploads", call: func() error {
			_, err := svc.Upload(context.Background(), "abc", nil)
			return err
		}},
		{name: "untitled upload", call: func() error {
			_, err := svc.Upload(context.Background(), "abc", []domain.LessonUpload{{Content: "x"}})
			return err
		}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.call()
			require.Error(t, err)
			assert.True(t, apperr.IsKind(err, apperr.KindValidation))
		})
	}

	assert.False(t, called.Load(), "local validation must not issue requests")
}

func TestNewLessonServiceRequiresClient(t *testing.T) {
	t.Parallel()

	_, err := NewLessonService(nil, nil)
	assert.Error(t, err)
}
