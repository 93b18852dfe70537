package main

import (
	"log"
	"os"
	"path/filepath"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"cereagis/config"
	"cereagis/database"
	"cereagis/router"

	// Bundle import/export
	bundleCtrlImp "cereagis/pkg/bundle/controllerImp"
	bundleRepoImp "cereagis/pkg/bundle/repositoryImp"
	bundleSvcImp "cereagis/pkg/bundle/serviceImp"

	// Field
	fieldCtrlImp "cereagis/pkg/field/controllerImp"
	fieldRepoImp "cereagis/pkg/field/repositoryImp"
	fieldSvcImp "cereagis/pkg/field/serviceImp"

	// Track
	trackCtrlImp "cereagis/pkg/track/controllerImp"
	trackRepoImp "cereagis/pkg/track/repositoryImp"
	trackSvcImp "cereagis/pkg/track/serviceImp"

	// Health
	healthCtrlImp "cereagis/pkg/health/controllerImp"
)

func main() {
	// 1) Config
	cfg := config.Load()

	// 2) Working directory for extracted bundles
	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		log.Fatalf("data dir: %v", err)
	}

	// 3) DB (sqlite) + automigrate
	db := database.OpenSQLite(cfg.DBPath)

	// 4) Echo
	e := echo.New()
	e.Use(echoMiddleware.Recover())

	// Static preview front-end
	e.Static("/static", cfg.StaticDir)
	e.File("/", filepath.Join(cfg.StaticDir, "index.html"))
	if _, err := os.Stat(filepath.Join(cfg.StaticDir, "index.html")); err != nil {
		log.Printf("WARN: %s/index.html not found: %v", cfg.StaticDir, err)
	}

	// 5) Repos/Services/Controllers
	bRepo := bundleRepoImp.New(db)
	fRepo := fieldRepoImp.New(db)
	tRepo := trackRepoImp.New(db)

	bSvc := bundleSvcImp.New(bRepo, cfg.DataDir)
	fSvc := fieldSvcImp.New(fRepo, bRepo)
	tSvc := trackSvcImp.New(tRepo)

	bCtrl := bundleCtrlImp.New(bSvc, cfg.MaxUploadMB)
	fCtrl := fieldCtrlImp.New(fSvc)
	tCtrl := trackCtrlImp.New(tSvc)
	hCtrl := healthCtrlImp.NewHealthCtrl(db, cfg.DataDir)

	// 6) Router
	r := router.New(e, bCtrl, fCtrl, tCtrl, hCtrl)

	// 7) Start
	log.Printf("listening on :%s", cfg.Port)
	if err := r.Start(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
