package services

import (
	"bytes"
	"log"
	"time"

	"github.com/xuri/excelize/v2"

	"cutting_report/internal/models"
	"cutting_report/internal/redis"
	"cutting_report/pkg/sheets"
)

// DataService produces normalized order rows for a workbook URL. Results are
// cached for one fetch interval; every failure mode collapses to an empty
// row set so the reporting path never sees an error.
type DataService interface {
	LoadRows(url string) []models.OrderRow
	InvalidateAll()
}

type dataService struct {
	client *sheets.Client
	cache  *redis.Client
	ttl    time.Duration
}

func NewDataService(client *sheets.Client, cache *redis.Client, ttl time.Duration) DataService {
	return &dataService{client: client, cache: cache, ttl: ttl}
}

func (s *dataService) LoadRows(url string) []models.OrderRow {
	if url == "" {
		return nil
	}

	if rows, err := s.cache.GetRows(url); err == nil {
		return rows
	} else if err != redis.ErrNotFound {
		log.Printf("Warning: row cache read failed: %v", err)
	}

	body, err := s.client.Fetch(url)
	if err != nil {
		log.Printf("Warning: workbook fetch failed: %v", err)
		return nil
	}

	sheet, err := readFirstSheet(body)
	if err != nil {
		log.Printf("Warning: workbook parse failed: %v", err)
		return nil
	}

	rows := NormalizeRows(sheet)
	if err := s.cache.SetRows(url, rows, s.ttl); err != nil {
		log.Printf("Warning: row cache write failed: %v", err)
	}
	return rows
}

// InvalidateAll drops the cached rows for every unit, used after the link
// config changes.
func (s *dataService) InvalidateAll() {
	if err := s.cache.FlushRows(); err != nil {
		log.Printf("Warning: row cache flush failed: %v", err)
	}
}

// readFirstSheet opens workbook bytes and returns the first sheet as raw
// cell text. Raw values keep percent cells as fractions and date cells as
// serials instead of display strings.
func readFirstSheet(body []byte) ([][]string, error) {
	f, err := excelize.OpenReader(bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	return f.GetRows(sheet, excelize.Options{RawCellValue: true})
}
