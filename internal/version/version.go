// Package version - метаданные сборки, вшиваемые через -ldflags.
package version

import (
	"fmt"
	"time"
)

// Заполняются линковщиком; пустые значения означают локальную сборку.
var (
	BuildDate   string // YYYY-MM-DD (UTC)
	BuildCommit string
	BuildBranch string
)

// Номер сборки считается в днях от старта проекта.
var projectEpoch = time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)

// Info - структурированные метаданные сборки.
type Info struct {
	BuildID   int    `json:"buildId"`
	BuildDate string `json:"buildDate"`
	Commit    string `json:"commit"`
	Branch    string `json:"branch"`
}

// BuildID возвращает порядковый номер сборки - число полных суток
// между эпохой проекта и BuildDate.
func BuildID() (int, error) {
	if BuildDate == "" {
		return 0, fmt.Errorf("BuildDate is empty")
	}
	t, err := time.ParseInLocation("2006-01-02", BuildDate, time.UTC)
	if err != nil {
		return 0, fmt.Errorf("invalid BuildDate %q: %w", BuildDate, err)
	}
	if t.Before(projectEpoch) {
		return 0, fmt.Errorf("BuildDate %s is before project epoch", BuildDate)
	}
	// Часы вместо календарной арифметики: обе даты в UTC, DST не мешает
	return int(t.Sub(projectEpoch).Hours() / 24), nil
}

// Get собирает метаданные; ошибку номера сборки прячет в нулевой ID.
func Get() Info {
	id, _ := BuildID()
	return Info{
		BuildID:   id,
		BuildDate: BuildDate,
		Commit:    orElse(BuildCommit, "unknown"),
		Branch:    orElse(BuildBranch, "unknown"),
	}
}

// String - человекочитаемая строка для /version и стартового лога.
func String() string {
	if BuildDate == "" {
		return "Build local (no build metadata)"
	}
	info := Get()
	return fmt.Sprintf("Build %d (%s) commit[%s] branch[%s]",
		info.BuildID, info.BuildDate, info.Commit, info.Branch)
}

func orElse(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}
