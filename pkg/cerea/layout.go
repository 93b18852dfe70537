package cerea

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Import modes. A bundle either carries the raw Cerea txt layout
// (farm/field folders with contour.txt and patterns.txt next to a
// universe.txt) or a previously exported shapefile layout (farm folders
// with contours/ and patterns/ subfolders).
const (
	ModeCerea     = "cerea"
	ModeShapefile = "shapefile"
)

// ContourFileName and PatternsFileName are the per-field source files of
// the txt layout.
const (
	ContourFileName  = "contour.txt"
	PatternsFileName = "patterns.txt"
	UniverseFileName = "universe.txt"
)

// Report is the outcome of validating an import root. Issues are fatal for
// the import, warnings are informational only.
type Report struct {
	Issues   []string `json:"issues"`
	Warnings []string `json:"warnings"`
	Stats    Stats    `json:"stats"`
}

type Stats struct {
	Farms  int `json:"farms"`
	Fields int `json:"fields"`
}

func subdirs(dir string) []string {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}
	var out []string
	for _, e := range entries {
		if e.IsDir() {
			out = append(out, e.Name())
		}
	}
	sort.Strings(out)
	return out
}

// Farms lists the farm folder names under an import root.
func Farms(root string) []string {
	return subdirs(root)
}

// FieldsOf lists the field folder names under a farm folder.
func FieldsOf(farmPath string) []string {
	return subdirs(farmPath)
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// looksLikeFieldDir reports whether a folder is plausibly a Cerea field
// folder. Real field folders carry contour/pattern files but may also be
// empty; wrapper folders usually contain further subfolders.
func looksLikeFieldDir(dir string) bool {
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return false
	}
	if exists(filepath.Join(dir, ContourFileName)) || exists(filepath.Join(dir, PatternsFileName)) {
		return true
	}
	return len(subdirs(dir)) == 0
}

func hasCereaFarms(root string) bool {
	for _, farm := range subdirs(root) {
		for _, field := range subdirs(filepath.Join(root, farm)) {
			if looksLikeFieldDir(filepath.Join(root, farm, field)) {
				return true
			}
		}
	}
	return false
}

// ResolveUniversePath locates universe.txt for an import root. Some bundles
// zip the farm folders one level below the universe file, so the parent is
// tried as well. Returns "" when not found.
func ResolveUniversePath(root string) string {
	direct := filepath.Join(root, UniverseFileName)
	if exists(direct) {
		return direct
	}
	parent := filepath.Join(filepath.Dir(root), UniverseFileName)
	if exists(parent) {
		return parent
	}
	return ""
}

// ResolveImportRoot finds the actual bundle root inside an extracted zip.
// Zips commonly wrap the payload in one extra folder, so the extract dir
// and its immediate subdirectories are all candidates. Falls back to the
// extract dir itself when nothing matches.
func ResolveImportRoot(extractDir, mode string) string {
	candidates := []string{extractDir}
	for _, d := range subdirs(extractDir) {
		candidates = append(candidates, filepath.Join(extractDir, d))
	}

	if mode == ModeCerea {
		for _, candidate := range candidates {
			if !exists(filepath.Join(candidate, UniverseFileName)) {
				continue
			}
			if hasCereaFarms(candidate) {
				return candidate
			}
			// universe.txt above the farm wrapper: descend one level.
			var nested []string
			for _, sub := range subdirs(candidate) {
				if hasCereaFarms(filepath.Join(candidate, sub)) {
					nested = append(nested, filepath.Join(candidate, sub))
				}
			}
			if len(nested) > 0 {
				sort.Strings(nested)
				return nested[0]
			}
		}
		return extractDir
	}

	for _, candidate := range candidates {
		for _, farm := range subdirs(candidate) {
			farmPath := filepath.Join(candidate, farm)
			if exists(filepath.Join(farmPath, "patterns")) || exists(filepath.Join(farmPath, "contours")) {
				return candidate
			}
		}
	}
	return extractDir
}

// MissingSidecars returns the extensions of the sidecar files a shapefile
// needs but is missing (.shx, .dbf, .prj).
func MissingSidecars(shpPath string) []string {
	base := strings.TrimSuffix(shpPath, filepath.Ext(shpPath))
	var missing []string
	for _, ext := range []string{".shx", ".dbf", ".prj"} {
		if !exists(base + ext) {
			missing = append(missing, ext)
		}
	}
	return missing
}

// ExportedFields lists the field names of a farm folder in the shapefile
// layout, derived from *_patterns.shp and *_contour.shp file names.
func ExportedFields(farmPath string) []string {
	names := map[string]bool{}
	if matches, err := filepath.Glob(filepath.Join(farmPath, "patterns", "*_patterns.shp")); err == nil {
		for _, m := range matches {
			base := strings.TrimSuffix(filepath.Base(m), ".shp")
			names[strings.TrimSuffix(base, "_patterns")] = true
		}
	}
	if matches, err := filepath.Glob(filepath.Join(farmPath, "contours", "*_contour.shp")); err == nil {
		for _, m := range matches {
			base := strings.TrimSuffix(filepath.Base(m), ".shp")
			names[strings.TrimSuffix(base, "_contour")] = true
		}
	}
	out := make([]string, 0, len(names))
	for n := range names {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}

// FieldSources returns the contour and patterns source paths of a field
// for the given mode. The paths may not exist; callers check.
func FieldSources(mode, root, farm, field string) (contour, patterns string) {
	if mode == ModeCerea {
		fieldPath := filepath.Join(root, farm, field)
		return filepath.Join(fieldPath, ContourFileName), filepath.Join(fieldPath, PatternsFileName)
	}
	farmPath := filepath.Join(root, farm)
	return filepath.Join(farmPath, "contours", field+"_contour.shp"),
		filepath.Join(farmPath, "patterns", field+"_patterns.shp")
}

// Validate checks an import root and reports fatal issues, warnings about
// optional parts and farm/field counts.
func Validate(mode, root string) Report {
	var rep Report
	farms := Farms(root)
	rep.Stats.Farms = len(farms)
	if len(farms) == 0 {
		rep.Issues = append(rep.Issues, "No farm folders found in import root.")
		return rep
	}

	if mode == ModeCerea {
		rep.validateCerea(root, farms)
	} else {
		rep.validateShapefile(root, farms)
	}
	return rep
}

func (rep *Report) validateCerea(root string, farms []string) {
	if ResolveUniversePath(root) == "" {
		rep.Issues = append(rep.Issues, "Missing required file: "+UniverseFileName)
	}

	for _, farm := range farms {
		fields := FieldsOf(filepath.Join(root, farm))
		if len(fields) == 0 {
			rep.Warnings = append(rep.Warnings, "No field folders in farm: "+farm)
			continue
		}
		for _, field := range fields {
			rep.Stats.Fields++
			contourPath, patternsPath := FieldSources(ModeCerea, root, farm, field)
			hasContour, hasPatterns := exists(contourPath), exists(patternsPath)
			if !hasContour {
				rep.Warnings = append(rep.Warnings,
					fmt.Sprintf("Missing optional %s: %s/%s", ContourFileName, farm, field))
			}
			if !hasPatterns {
				rep.Warnings = append(rep.Warnings,
					fmt.Sprintf("Missing optional %s: %s/%s", PatternsFileName, farm, field))
			}
			if !hasContour && !hasPatterns {
				rep.Warnings = append(rep.Warnings,
					fmt.Sprintf("No source files in field folder: %s/%s (needs %s and/or %s)",
						farm, field, ContourFileName, PatternsFileName))
			}
		}
	}
}

func (rep *Report) validateShapefile(root string, farms []string) {
	for _, farm := range farms {
		farmPath := filepath.Join(root, farm)
		if !exists(filepath.Join(farmPath, "patterns")) {
			rep.Warnings = append(rep.Warnings, "Missing optional folder: "+farm+"/patterns")
		}
		if !exists(filepath.Join(farmPath, "contours")) {
			rep.Warnings = append(rep.Warnings, "Missing optional folder: "+farm+"/contours")
		}

		fields := ExportedFields(farmPath)
		if len(fields) == 0 {
			rep.Warnings = append(rep.Warnings,
				"No field shapefiles found in farm: "+farm+" (expected *_patterns.shp and/or *_contour.shp)")
			continue
		}

		for _, field := range fields {
			rep.Stats.Fields++
			contourPath, patternsPath := FieldSources(ModeShapefile, root, farm, field)
			rep.checkShapefile(patternsPath, farm+"/patterns", "patterns shapefile")
			rep.checkShapefile(contourPath, farm+"/contours", "contour shapefile")
		}
	}
}

func (rep *Report) checkShapefile(shpPath, relDir, kind string) {
	name := filepath.Base(shpPath)
	if !exists(shpPath) {
		rep.Warnings = append(rep.Warnings,
			fmt.Sprintf("Missing optional %s: %s/%s", kind, relDir, name))
		return
	}
	if missing := MissingSidecars(shpPath); len(missing) > 0 {
		rep.Warnings = append(rep.Warnings,
			fmt.Sprintf("Missing sidecar(s) for %s: %s/%s -> %s",
				kind, relDir, name, strings.Join(missing, ", ")))
	}
}
