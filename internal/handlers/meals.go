package handlers

import (
	"errors"
	"net/http"
	"time"

	"daily_diet/internal/service"

	"github.com/gin-gonic/gin"
)

// Common response/error constants to avoid magic strings and typos.
const (
	statusOK = "ok"

	errRegisterUser   = "failed to register user"
	errResolveSession = "failed to resolve session"
	errCreateMeal     = "failed to create meal"
	errListMeals      = "failed to list meals"
	errGetMeal        = "failed to load meal"
	errUpdateMeal     = "failed to update meal"
	errDeleteMeal     = "failed to delete meal"
	errSummary        = "failed to summarize meals"

	errMealNotFound = "meal not found"
)

// Centralized error logging and response.
func (h *Handler) logAndJSONError(c *gin.Context, httpCode int, userMsg, logKey string, err error, kv ...interface{}) {
	if h.log != nil && err != nil {
		fields := append([]interface{}{"err", err}, kv...)
		h.log.Errorw(logKey, fields...)
	}
	c.JSON(httpCode, gin.H{"error": userMsg})
}

// mealRequest is the create/update payload. IsOnDiet is a pointer so that an
// explicit false still passes the required binding.
type mealRequest struct {
	Name        string    `json:"name" binding:"required"`
	Description string    `json:"description"`
	IsOnDiet    *bool     `json:"is_on_diet" binding:"required"`
	RecordedAt  time.Time `json:"recorded_at,omitempty"` // optional; defaults to now
}

func (r mealRequest) toInput() service.MealInput {
	return service.MealInput{
		Name:        r.Name,
		Description: r.Description,
		IsOnDiet:    *r.IsOnDiet,
		RecordedAt:  r.RecordedAt,
	}
}

// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": statusOK,
	})
}

// @Summary      Create meal
// @Tags         meals
// @Accept       json
// @Produce      json
// @Param        body  body   mealRequest  true  "Meal payload"
// @Success      201   {object}  map[string]interface{}  "meal"
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /meals [post]
func (h *Handler) createMeal(c *gin.Context) {
	var req mealRequest
	if ok := h.bindJSONOrBadRequest(c, &req); !ok {
		return
	}

	meal, err := h.services.Meals.Create(c.Request.Context(), currentUserID(c), req.toInput())
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errCreateMeal, "meal_create_failed", err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"meal": meal})
}

// @Summary      List meals
// @Description  Returns the caller's meals in creation order.
// @Tags         meals
// @Produce      json
// @Success      200  {object}  map[string]interface{}  "meals"
// @Failure      401  {object}  map[string]string
// @Router       /meals [get]
func (h *Handler) listMeals(c *gin.Context) {
	meals, err := h.services.Meals.List(c.Request.Context(), currentUserID(c))
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errListMeals, "meal_list_failed", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"meals": meals})
}

// @Summary      Get meal
// @Description  404 covers both a missing meal and a meal owned by another user.
// @Tags         meals
// @Produce      json
// @Param        id   path   string  true  "Meal id"
// @Success      200  {object}  map[string]interface{}  "meal"
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /meals/{id} [get]
func (h *Handler) getMeal(c *gin.Context) {
	meal, err := h.services.Meals.Get(c.Request.Context(), currentUserID(c), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrMealNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": errMealNotFound})
			return
		}
		h.logAndJSONError(c, http.StatusInternalServerError, errGetMeal, "meal_get_failed", err, "meal_id", c.Param("id"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"meal": meal})
}

// @Summary      Edit meal
// @Tags         meals
// @Accept       json
// @Param        id    path   string       true  "Meal id"
// @Param        body  body   mealRequest  true  "Replacement fields"
// @Success      202
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /meals/{id} [put]
func (h *Handler) updateMeal(c *gin.Context) {
	var req mealRequest
	if ok := h.bindJSONOrBadRequest(c, &req); !ok {
		return
	}

	if _, err := h.services.Meals.Update(c.Request.Context(), currentUserID(c), c.Param("id"), req.toInput()); err != nil {
		if errors.Is(err, service.ErrMealNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": errMealNotFound})
			return
		}
		h.logAndJSONError(c, http.StatusInternalServerError, errUpdateMeal, "meal_update_failed", err, "meal_id", c.Param("id"))
		return
	}
	c.Status(http.StatusAccepted)
}

// @Summary      Delete meal
// @Description  Hard delete. Deleting an unknown or already-deleted id answers 404.
// @Tags         meals
// @Param        id   path   string  true  "Meal id"
// @Success      202
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /meals/{id} [delete]
func (h *Handler) deleteMeal(c *gin.Context) {
	if err := h.services.Meals.Delete(c.Request.Context(), currentUserID(c), c.Param("id")); err != nil {
		if errors.Is(err, service.ErrMealNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": errMealNotFound})
			return
		}
		h.logAndJSONError(c, http.StatusInternalServerError, errDeleteMeal, "meal_delete_failed", err, "meal_id", c.Param("id"))
		return
	}
	c.Status(http.StatusAccepted)
}

// @Summary      Meal summary
// @Description  Derived counts over the caller's meals; zeros when there are none.
// @Tags         meals
// @Produce      json
// @Success      200  {object}  map[string]interface{}  "summary"
// @Failure      401  {object}  map[string]string
// @Router       /meals/summary [get]
func (h *Handler) mealSummary(c *gin.Context) {
	summary, err := h.services.Summary.Summarize(c.Request.Context(), currentUserID(c))
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errSummary, "meal_summary_failed", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"summary": summary})
}
