package controllerImp

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"

	"cereagis/pkg/bundle/service"
	"cereagis/pkg/cerea"
)

type BundleCtrl struct {
	svc         service.BundleService
	maxUploadMB int64
}

func New(svc service.BundleService, maxUploadMB int64) *BundleCtrl {
	return &BundleCtrl{svc: svc, maxUploadMB: maxUploadMB}
}

func (h *BundleCtrl) Upload(c echo.Context) error {
	clientID := c.Get("sid").(string)

	mode := c.FormValue("mode")
	if mode == "" {
		mode = cerea.ModeCerea
	}

	fh, err := c.FormFile("file")
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "missing zip upload"})
	}
	if fh.Size > h.maxUploadMB<<20 {
		return c.JSON(http.StatusRequestEntityTooLarge,
			map[string]string{"error": fmt.Sprintf("upload exceeds %d MB", h.maxUploadMB)})
	}
	src, err := fh.Open()
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	defer src.Close()
	data, err := io.ReadAll(src)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	result, err := h.svc.Import(clientID, mode, data)
	if err != nil {
		var verr *service.ValidationError
		if errors.As(err, &verr) {
			return c.JSON(http.StatusUnprocessableEntity,
				map[string]any{"error": verr.Error(), "report": verr.Report})
		}
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, result)
}

func (h *BundleCtrl) Get(c echo.Context) error {
	clientID := c.Get("sid").(string)
	s, err := h.svc.Get(c.Param("id"), clientID)
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "not found"})
	}
	return c.JSON(http.StatusOK, s)
}

func (h *BundleCtrl) Delete(c echo.Context) error {
	clientID := c.Get("sid").(string)
	if err := h.svc.Delete(c.Param("id"), clientID); err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "not found"})
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "deleted"})
}

func (h *BundleCtrl) Export(c echo.Context) error {
	clientID := c.Get("sid").(string)
	id := c.Param("id")
	data, err := h.svc.ExportZip(id, clientID)
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": err.Error()})
	}
	c.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename="cerea_export_%s.zip"`, id))
	return c.Blob(http.StatusOK, "application/zip", data)
}

func (h *BundleCtrl) Report(c echo.Context) error {
	clientID := c.Get("sid").(string)
	id := c.Param("id")
	data, err := h.svc.ReportXLSX(id, clientID)
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": err.Error()})
	}
	c.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename="cerea_report_%s.xlsx"`, id))
	return c.Blob(http.StatusOK,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}
