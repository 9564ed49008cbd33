package excel

import (
	"errors"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"volunteer-match/internal/models"
)

// Roster column headers.
const (
	ColName                = "Name"
	ColDate                = "Date"
	ColLanguagesKnown      = "Languages Known"
	ColLocationCoordinates = "Location Coordinates"
	ColSession             = "Session"
	ColQualification       = "Qualification"
)

var rosterColumns = []string{
	ColName, ColDate, ColLanguagesKnown, ColLocationCoordinates, ColSession, ColQualification,
}

var ErrMissingColumn = errors.New("missing roster column")

func OpenFile(filename string) (*excelize.File, error) {
	return excelize.OpenFile(filename)
}

// ReadSheet reads the roster from sheetName. The first row is the header and
// columns are located by name, so their order in the workbook does not matter.
func ReadSheet(f *excelize.File, sheetName string) ([]models.Volunteer, error) {
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}

	index := make(map[string]int, len(rows[0]))
	for i, h := range rows[0] {
		h = strings.TrimSpace(h)
		if _, dup := index[h]; !dup {
			index[h] = i
		}
	}
	for _, col := range rosterColumns {
		if _, ok := index[col]; !ok {
			return nil, fmt.Errorf("%w: %q", ErrMissingColumn, col)
		}
	}

	cell := func(row []string, col string) string {
		i := index[col]
		if i >= len(row) {
			return "" // excelize drops trailing empty cells
		}
		return row[i]
	}

	var volunteers []models.Volunteer
	for i, row := range rows {
		if i == 0 {
			continue // Skip header
		}
		if isBlank(row) {
			continue
		}

		volunteers = append(volunteers, models.Volunteer{
			RowIndex:            i + 1,
			Name:                cell(row, ColName),
			Date:                cell(row, ColDate),
			LanguagesKnown:      cell(row, ColLanguagesKnown),
			LocationCoordinates: cell(row, ColLocationCoordinates),
			Session:             cell(row, ColSession),
			Qualification:       cell(row, ColQualification),
		})
	}
	return volunteers, nil
}

func isBlank(row []string) bool {
	for _, v := range row {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}

// WriteRoster writes volunteers to a new workbook at path in the layout
// ReadSheet expects.
func WriteRoster(path string, data []models.Volunteer, sheetName string) error {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(sheetName)
	if err != nil {
		return err
	}

	sw, err := f.NewStreamWriter(sheetName)
	if err != nil {
		return err
	}

	headers := make([]interface{}, len(rosterColumns))
	for i, col := range rosterColumns {
		headers[i] = col
	}
	if err := sw.SetRow("A1", headers); err != nil {
		return err
	}

	for i, v := range data {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := []interface{}{
			v.Name, v.Date, v.LanguagesKnown, v.LocationCoordinates, v.Session, v.Qualification,
		}
		if err := sw.SetRow(cell, row); err != nil {
			return err
		}
	}

	if err := sw.Flush(); err != nil {
		return err
	}

	f.SetActiveSheet(index)
	// Delete default sheet if exists
	if sheetName != "Sheet1" {
		f.DeleteSheet("Sheet1")
	}

	return f.SaveAs(path)
}

// Store is the read-only roster shared by all requests. It is never mutated
// after Load, so concurrent readers need no locking.
type Store struct {
	volunteers []models.Volunteer
}

func NewStore(volunteers []models.Volunteer) *Store {
	return &Store{volunteers: volunteers}
}

// Load reads the roster once at startup. A missing or unreadable workbook
// yields an empty store; the failure is logged, not returned.
func Load(path, sheetName string, log *zap.Logger) *Store {
	log = log.With(zap.String("path", path), zap.String("sheet", sheetName))

	f, err := OpenFile(path)
	if err != nil {
		log.Warn("roster unavailable, serving empty dataset", zap.Error(err))
		return NewStore(nil)
	}
	defer f.Close()

	volunteers, err := ReadSheet(f, sheetName)
	if err != nil {
		log.Warn("roster unreadable, serving empty dataset", zap.Error(err))
		return NewStore(nil)
	}

	log.Info("roster loaded", zap.Int("rows", len(volunteers)))
	return NewStore(volunteers)
}

// AllRecords returns the roster in row order. The slice is a copy.
func (s *Store) AllRecords() []models.Volunteer {
	out := make([]models.Volunteer, len(s.volunteers))
	copy(out, s.volunteers)
	return out
}

func (s *Store) IsEmpty() bool {
	return len(s.volunteers) == 0
}

func (s *Store) Len() int {
	return len(s.volunteers)
}
