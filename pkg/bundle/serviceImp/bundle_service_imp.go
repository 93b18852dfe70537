package serviceImp

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"cereagis/entities"
	"cereagis/pkg/bundle"
	"cereagis/pkg/bundle/repository"
	svc "cereagis/pkg/bundle/service"
	"cereagis/pkg/cerea"
	"cereagis/pkg/geo"
	"cereagis/pkg/shape"
)

type bundleSvc struct {
	repo    repository.BundleRepository
	dataDir string
}

func New(repo repository.BundleRepository, dataDir string) svc.BundleService {
	return &bundleSvc{repo: repo, dataDir: dataDir}
}

func (s *bundleSvc) Import(clientID, mode string, zipData []byte) (*svc.ImportResult, error) {
	if mode != cerea.ModeCerea && mode != cerea.ModeShapefile {
		return nil, fmt.Errorf("unknown import mode %q", mode)
	}

	id := uuid.NewString()
	workDir := filepath.Join(s.dataDir, id)
	if err := os.MkdirAll(workDir, 0o755); err != nil {
		return nil, err
	}
	cleanup := func() { os.RemoveAll(workDir) }

	if err := bundle.ExtractZip(zipData, workDir); err != nil {
		cleanup()
		return nil, err
	}

	root := cerea.ResolveImportRoot(workDir, mode)
	report := cerea.Validate(mode, root)
	if len(report.Issues) > 0 {
		cleanup()
		return nil, &svc.ValidationError{Report: report}
	}

	var center geo.Point
	if mode == cerea.ModeCerea {
		c, err := cerea.ReadCenter(cerea.ResolveUniversePath(root))
		if err != nil {
			cleanup()
			return nil, err
		}
		center = c
	}

	session := &entities.ImportSession{
		ID:       id,
		ClientID: clientID,
		Mode:     mode,
		WorkDir:  workDir,
		RootPath: root,
		CenterX:  center.X,
		CenterY:  center.Y,
	}
	if err := s.loadFarms(session, center); err != nil {
		cleanup()
		return nil, err
	}

	// One live bundle per client. The previous session is dropped only
	// now, after the new bundle parsed cleanly; a rejected upload leaves
	// it untouched.
	oldDirs, err := s.repo.PurgeClient(clientID)
	if err != nil {
		cleanup()
		return nil, err
	}
	if err := s.repo.CreateSession(session); err != nil {
		cleanup()
		return nil, err
	}
	for _, dir := range oldDirs {
		if dir != "" {
			if err := os.RemoveAll(dir); err != nil {
				log.Printf("[bundle] remove old workdir %s: %v", dir, err)
			}
		}
	}

	log.Printf("[bundle] imported session %s mode=%s farms=%d fields=%d",
		id, mode, report.Stats.Farms, report.Stats.Fields)
	return &svc.ImportResult{Session: session, Report: report}, nil
}

// loadFarms parses every farm/field of the resolved root into the session
// tree. Fields without any usable source are skipped, like the original
// bundles tolerate empty field folders.
func (s *bundleSvc) loadFarms(session *entities.ImportSession, center geo.Point) error {
	for _, farmName := range cerea.Farms(session.RootPath) {
		farm := entities.Farm{SessionID: session.ID, Name: farmName}

		var fieldNames []string
		if session.Mode == cerea.ModeCerea {
			fieldNames = cerea.FieldsOf(filepath.Join(session.RootPath, farmName))
		} else {
			fieldNames = cerea.ExportedFields(filepath.Join(session.RootPath, farmName))
		}

		for _, fieldName := range fieldNames {
			if !bundle.HasSources(session.Mode, session.RootPath, farmName, fieldName) {
				continue
			}
			contour, tracks, err := bundle.LoadField(session.Mode, session.RootPath, farmName, fieldName, center)
			if err != nil {
				return err
			}
			field := entities.Field{
				SessionID: session.ID,
				FarmName:  farmName,
				Name:      fieldName,
				Contour:   contour,
			}
			for i, t := range tracks {
				field.Tracks = append(field.Tracks, entities.Track{
					SessionID:   session.ID,
					SourceIndex: t.ID,
					Position:    i + 1,
					Name:        t.Name,
					SourceName:  t.Name,
					Points:      t.Points,
				})
			}
			farm.Fields = append(farm.Fields, field)
		}
		session.Farms = append(session.Farms, farm)
	}
	return nil
}

func (s *bundleSvc) Get(id, clientID string) (*entities.ImportSession, error) {
	return s.repo.SessionSummary(id, clientID)
}

func (s *bundleSvc) Delete(id, clientID string) error {
	session, err := s.repo.FindSession(id, clientID)
	if err != nil {
		return err
	}
	if err := s.repo.DeleteSession(session); err != nil {
		return err
	}
	if session.WorkDir != "" {
		if err := os.RemoveAll(session.WorkDir); err != nil {
			log.Printf("[bundle] remove workdir %s: %v", session.WorkDir, err)
		}
	}
	return nil
}

func (s *bundleSvc) ExportZip(id, clientID string) ([]byte, error) {
	session, err := s.repo.SessionTree(id, clientID)
	if err != nil {
		return nil, err
	}

	exportDir, err := os.MkdirTemp(s.dataDir, "export-")
	if err != nil {
		return nil, err
	}
	defer os.RemoveAll(exportDir)

	exported := 0
	for _, farm := range session.Farms {
		for _, field := range farm.Fields {
			if len(field.Contour) == 0 && len(field.Tracks) == 0 {
				continue
			}
			tracks := make([]shape.Track, 0, len(field.Tracks))
			for _, t := range field.Tracks {
				tracks = append(tracks, shape.Track{ID: t.SourceIndex, Name: t.Name, Points: t.Points})
			}
			if err := shape.ExportField(exportDir, farm.Name, field.Name, field.Contour, tracks); err != nil {
				return nil, err
			}
			exported++
		}
	}
	if exported == 0 {
		return nil, fmt.Errorf("session %s has nothing to export", id)
	}

	data, err := bundle.ZipDir(exportDir)
	if err != nil {
		return nil, err
	}
	if err := s.repo.ClearDirty(session.ID); err != nil {
		return nil, err
	}
	log.Printf("[bundle] exported session %s fields=%d bytes=%d", id, exported, len(data))
	return data, nil
}

func (s *bundleSvc) ReportXLSX(id, clientID string) ([]byte, error) {
	session, err := s.repo.SessionTree(id, clientID)
	if err != nil {
		return nil, err
	}

	farms := make([]shape.FarmSummary, 0, len(session.Farms))
	for _, farm := range session.Farms {
		summary := shape.FarmSummary{Name: farm.Name}
		for _, field := range farm.Fields {
			fs := shape.FieldSummary{Name: field.Name, HasContour: len(field.Contour) > 0}
			for _, t := range field.Tracks {
				fs.Tracks = append(fs.Tracks, shape.Track{ID: t.SourceIndex, Name: t.Name, Points: t.Points})
			}
			summary.Fields = append(summary.Fields, fs)
		}
		farms = append(farms, summary)
	}
	return shape.Report(farms)
}
