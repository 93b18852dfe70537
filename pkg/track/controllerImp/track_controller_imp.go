package controllerImp

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"cereagis/pkg/track/service"
)

type TrackCtrl struct{ svc service.TrackService }

func New(svc service.TrackService) *TrackCtrl { return &TrackCtrl{svc} }

func (h *TrackCtrl) Rename(c echo.Context) error {
	clientID := c.Get("sid").(string)
	id, _ := strconv.Atoi(c.Param("track_id"))
	var body struct {
		Name string `json:"name"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	t, err := h.svc.Rename(uint(id), clientID, body.Name)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, t)
}

func (h *TrackCtrl) Reorder(c echo.Context) error {
	clientID := c.Get("sid").(string)
	fieldID, _ := strconv.Atoi(c.Param("field_id"))
	var body struct {
		TrackIDs []uint `json:"track_ids"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	tracks, err := h.svc.Reorder(uint(fieldID), clientID, body.TrackIDs)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, tracks)
}
