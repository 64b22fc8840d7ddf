package checks

import (
	"fmt"
	"reflect"
	"strings"

	"grimoire/core/database"
	"grimoire/feature/words/models"

	"gorm.io/gorm"
)

// SchemaReport is the result of comparing the database with the word models.
type SchemaReport struct {
	Matched bool                   `json:"matched"`
	Tables  map[string]TableReport `json:"tables"`
	Errors  []string               `json:"errors"`
}

type TableReport struct {
	MissingColumns []string `json:"missing_columns"`
	TypeMismatches []string `json:"type_mismatches"`
	Status         string   `json:"status"` // "ok", "missing", "error"
}

// Type names some databases report in place of the declared one.
var typeAliases = map[string][]string{
	"varchar": {"character varying"},
	"text":    {"longtext", "mediumtext"},
}

// CheckSchema verifies the database schema using the gorm models as the source of truth.
func CheckSchema(db *gorm.DB) (*SchemaReport, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}

	report := &SchemaReport{
		Matched: true,
		Tables:  make(map[string]TableReport),
		Errors:  []string{},
	}

	for _, entity := range models.Entities() {
		tabler, ok := entity.(interface{ TableName() string })
		if !ok {
			return nil, fmt.Errorf("model %T does not implement TableName", entity)
		}
		tableName := tabler.TableName()

		actualCols, err := database.GetTableColumns(db, tableName)
		if err != nil {
			report.Errors = append(report.Errors, fmt.Sprintf("Failed to inspect table %s: %v", tableName, err))
			report.Matched = false
			continue
		}

		tblReport := compareTable(reflect.TypeOf(entity).Elem(), actualCols)
		if tblReport.Status != "ok" {
			report.Matched = false
		}
		report.Tables[tableName] = tblReport
	}

	return report, nil
}

func compareTable(model reflect.Type, actualCols []database.ColumnInfo) TableReport {
	tblReport := TableReport{
		MissingColumns: []string{},
		TypeMismatches: []string{},
		Status:         "ok",
	}

	if len(actualCols) == 0 {
		tblReport.Status = "missing"
	}

	actualMap := make(map[string]database.ColumnInfo, len(actualCols))
	for _, col := range actualCols {
		actualMap[col.Field] = col
	}

	for i := 0; i < model.NumField(); i++ {
		gormTag := model.Field(i).Tag.Get("gorm")

		// Associations carry no column.
		colName := parseGormTag(gormTag, "column")
		if colName == "" {
			continue
		}

		actCol, exists := actualMap[colName]
		if !exists {
			tblReport.MissingColumns = append(tblReport.MissingColumns, colName)
			if tblReport.Status == "ok" {
				tblReport.Status = "error"
			}
			continue
		}

		expType := strings.ToLower(parseGormTag(gormTag, "type"))
		if expType != "" && !typeMatches(expType, actCol.Type) {
			tblReport.TypeMismatches = append(tblReport.TypeMismatches,
				fmt.Sprintf("%s: expected %s, got %s", colName, expType, actCol.Type))
			tblReport.Status = "error"
		}
	}

	return tblReport
}

// typeMatches compares base type names, ignoring lengths.
func typeMatches(expected, actual string) bool {
	base, _, _ := strings.Cut(expected, "(")
	if strings.Contains(actual, base) {
		return true
	}
	for _, alias := range typeAliases[base] {
		if strings.Contains(actual, alias) {
			return true
		}
	}
	return false
}

func parseGormTag(tag, key string) string {
	for _, p := range strings.Split(tag, ";") {
		if v, ok := strings.CutPrefix(p, key+":"); ok {
			return v
		}
	}
	return ""
}
