package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"daily_diet/internal/models"
	"daily_diet/internal/service"
)

// authedServices builds a Service whose session resolver accepts any cookie
// and resolves it to userID.
func authedServices(userID string) (*service.Service, *mockMeals, *mockSummary) {
	meals := &mockMeals{}
	summary := &mockSummary{}
	s := &service.Service{
		Sessions: &mockSessions{userID: userID},
		Meals:    meals,
		Summary:  summary,
	}
	return s, meals, summary
}

func doJSON(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	req.AddCookie(sessionCookie("valid"))
	r.ServeHTTP(w, req)
	return w
}

func TestMealRoutes_RequireSession(t *testing.T) {
	s, _, _ := authedServices("")
	s.Sessions = &mockSessions{err: service.ErrUnauthenticated}
	r := newTestRouter(s)

	routes := []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/meals"},
		{http.MethodGet, "/meals"},
		{http.MethodGet, "/meals/m-1"},
		{http.MethodPut, "/meals/m-1"},
		{http.MethodDelete, "/meals/m-1"},
		{http.MethodGet, "/meals/summary"},
	}
	for _, rt := range routes {
		t.Run(rt.method+" "+rt.path, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(rt.method, rt.path, nil)
			r.ServeHTTP(w, req)
			if w.Code != http.StatusUnauthorized {
				t.Fatalf("expected 401 without session, got %d", w.Code)
			}
		})
	}
}

func TestCreateMeal(t *testing.T) {
	s, meals, _ := authedServices("u-1")
	now := time.Now().UTC().Truncate(time.Second)
	meals.createMeal = models.Meal{
		ID: "m-1", UserID: "u-1", Name: "Lunch", Description: "soup",
		IsOnDiet: false, RecordedAt: now, CreatedAt: now,
	}
	r := newTestRouter(s)

	w := doJSON(r, http.MethodPost, "/meals", `{"name":"Lunch","description":"soup","is_on_diet":false}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("status=%d, body=%s", w.Code, w.Body.String())
	}

	var resp struct {
		Meal models.Meal `json:"meal"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if resp.Meal.ID != "m-1" || resp.Meal.Name != "Lunch" {
		t.Fatalf("unexpected meal: %+v", resp.Meal)
	}

	if meals.lastUserID != "u-1" {
		t.Fatalf("create scoped to %q, want u-1", meals.lastUserID)
	}
	// explicit false must survive the required binding
	if meals.lastInput.IsOnDiet {
		t.Fatalf("is_on_diet=false was lost in binding")
	}
}

func TestCreateMeal_Validation(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{name: "missing name", body: `{"is_on_diet":true}`},
		{name: "missing diet flag", body: `{"name":"Lunch"}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s, _, _ := authedServices("u-1")
			r := newTestRouter(s)

			w := doJSON(r, http.MethodPost, "/meals", tc.body)
			if w.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d (body=%s)", w.Code, w.Body.String())
			}
		})
	}
}

func TestListMeals(t *testing.T) {
	s, meals, _ := authedServices("u-1")
	now := time.Now().UTC().Truncate(time.Second)
	meals.listResp = []models.Meal{
		{ID: "m-1", UserID: "u-1", Name: "Breakfast", RecordedAt: now, CreatedAt: now},
		{ID: "m-2", UserID: "u-1", Name: "Lunch", IsOnDiet: true, RecordedAt: now, CreatedAt: now},
	}
	r := newTestRouter(s)

	w := doJSON(r, http.MethodGet, "/meals", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d, body=%s", w.Code, w.Body.String())
	}

	var resp struct {
		Meals []models.Meal `json:"meals"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(resp.Meals) != 2 || resp.Meals[0].ID != "m-1" || resp.Meals[1].ID != "m-2" {
		t.Fatalf("unexpected meals: %+v", resp.Meals)
	}
	if meals.lastUserID != "u-1" {
		t.Fatalf("list scoped to %q, want u-1", meals.lastUserID)
	}
}

func TestGetMeal(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		s, meals, _ := authedServices("u-1")
		meals.getMeal = models.Meal{ID: "m-1", UserID: "u-1", Name: "Dinner"}
		r := newTestRouter(s)

		w := doJSON(r, http.MethodGet, "/meals/m-1", "")
		if w.Code != http.StatusOK {
			t.Fatalf("status=%d, body=%s", w.Code, w.Body.String())
		}
		var resp struct {
			Meal models.Meal `json:"meal"`
		}
		_ = json.Unmarshal(w.Body.Bytes(), &resp)
		if resp.Meal.ID != "m-1" {
			t.Fatalf("unexpected meal: %+v", resp.Meal)
		}
		if meals.lastMealID != "m-1" || meals.lastUserID != "u-1" {
			t.Fatalf("get called with user=%q meal=%q", meals.lastUserID, meals.lastMealID)
		}
	})

	t.Run("absent or foreign-owned → 404", func(t *testing.T) {
		s, meals, _ := authedServices("u-1")
		meals.getErr = service.ErrMealNotFound
		r := newTestRouter(s)

		w := doJSON(r, http.MethodGet, "/meals/m-other", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d (body=%s)", w.Code, w.Body.String())
		}
	})
}

func TestUpdateMeal(t *testing.T) {
	t.Run("accepted", func(t *testing.T) {
		s, meals, _ := authedServices("u-1")
		meals.updateMeal = models.Meal{ID: "m-1", UserID: "u-1", Name: "Edited"}
		r := newTestRouter(s)

		w := doJSON(r, http.MethodPut, "/meals/m-1", `{"name":"Edited","description":"Edited too","is_on_diet":true}`)
		if w.Code != http.StatusAccepted {
			t.Fatalf("expected 202, got %d (body=%s)", w.Code, w.Body.String())
		}
		if meals.lastInput.Name != "Edited" || !meals.lastInput.IsOnDiet {
			t.Fatalf("update input not forwarded: %+v", meals.lastInput)
		}
	})

	t.Run("not found", func(t *testing.T) {
		s, meals, _ := authedServices("u-1")
		meals.updateErr = service.ErrMealNotFound
		r := newTestRouter(s)

		w := doJSON(r, http.MethodPut, "/meals/m-x", `{"name":"Edited","is_on_diet":true}`)
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("invalid body", func(t *testing.T) {
		s, _, _ := authedServices("u-1")
		r := newTestRouter(s)

		w := doJSON(r, http.MethodPut, "/meals/m-1", `{"description":"no name or flag"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestDeleteMeal(t *testing.T) {
	t.Run("accepted", func(t *testing.T) {
		s, meals, _ := authedServices("u-1")
		r := newTestRouter(s)

		w := doJSON(r, http.MethodDelete, "/meals/m-1", "")
		if w.Code != http.StatusAccepted {
			t.Fatalf("expected 202, got %d (body=%s)", w.Code, w.Body.String())
		}
		if meals.lastMealID != "m-1" || meals.lastUserID != "u-1" {
			t.Fatalf("delete called with user=%q meal=%q", meals.lastUserID, meals.lastMealID)
		}
	})

	t.Run("already deleted → 404, not a crash", func(t *testing.T) {
		s, meals, _ := authedServices("u-1")
		meals.deleteErr = service.ErrMealNotFound
		r := newTestRouter(s)

		w := doJSON(r, http.MethodDelete, "/meals/m-1", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestMealSummary(t *testing.T) {
	s, _, summary := authedServices("u-1")
	summary.resp = models.MealSummary{Total: 3, OnDiet: 1, OffDiet: 2}
	r := newTestRouter(s)

	w := doJSON(r, http.MethodGet, "/meals/summary", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d, body=%s", w.Code, w.Body.String())
	}

	var resp struct {
		Summary models.MealSummary `json:"summary"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if resp.Summary != (models.MealSummary{Total: 3, OnDiet: 1, OffDiet: 2}) {
		t.Fatalf("unexpected summary: %+v", resp.Summary)
	}
	if summary.lastUserID != "u-1" {
		t.Fatalf("summary scoped to %q, want u-1", summary.lastUserID)
	}
}

func TestHealth(t *testing.T) {
	s, _, _ := authedServices("u-1")
	r := newTestRouter(s)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var m map[string]string
	_ = json.Unmarshal(w.Body.Bytes(), &m)
	if m["status"] != statusOK {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
}
