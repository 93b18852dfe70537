package controllerImp

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"cereagis/pkg/field/service"
)

type FieldCtrl struct{ svc service.FieldService }

func New(svc service.FieldService) *FieldCtrl { return &FieldCtrl{svc} }

func (h *FieldCtrl) List(c echo.Context) error {
	clientID := c.Get("sid").(string)
	fields, err := h.svc.List(c.Param("id"), clientID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, fields)
}

func (h *FieldCtrl) Get(c echo.Context) error {
	clientID := c.Get("sid").(string)
	id, _ := strconv.Atoi(c.Param("field_id"))
	detail, err := h.svc.Detail(uint(id), clientID)
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "not found"})
	}
	return c.JSON(http.StatusOK, detail)
}

func (h *FieldCtrl) Reset(c echo.Context) error {
	clientID := c.Get("sid").(string)
	id, _ := strconv.Atoi(c.Param("field_id"))
	f, err := h.svc.Reset(uint(id), clientID)
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, f)
}

func (h *FieldCtrl) Export(c echo.Context) error {
	clientID := c.Get("sid").(string)
	id, _ := strconv.Atoi(c.Param("field_id"))
	data, err := h.svc.ExportZip(uint(id), clientID)
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": err.Error()})
	}
	c.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename="field_%d.zip"`, id))
	return c.Blob(http.StatusOK, "application/zip", data)
}
